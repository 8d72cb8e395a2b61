package loads

import (
	"context"

	"github.com/ciatoslog/dispatch/internal/pkg/models"
)

// LoadGW publishes load events
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/ciatoslog/dispatch/services/loads LoadGW
type LoadGW interface {
	PublishLoadEvent(ctx context.Context, event models.LoadEvent) error
}
