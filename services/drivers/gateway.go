package drivers

import (
	"context"

	"github.com/ciatoslog/dispatch/internal/pkg/models"
)

// DriverGW defines the outbound driver event publisher
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/ciatoslog/dispatch/services/drivers DriverGW
type DriverGW interface {
	PublishDriverEvent(ctx context.Context, event models.DriverEvent) error
}
