package reference

import (
	"context"

	"github.com/ciatoslog/dispatch/internal/pkg/models"
)

// ReferenceUC defines the interface for the settings catalog
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/ciatoslog/dispatch/services/reference ReferenceUC
type ReferenceUC interface {
	ListVehicleTypes(ctx context.Context) ([]models.VehicleType, error)
	ListLanes(ctx context.Context) ([]models.Lane, error)
	ListSegments(ctx context.Context) ([]string, error)
	ListCommissionRules(ctx context.Context) ([]models.CommissionRule, error)
	AddSegment(ctx context.Context, name string) ([]string, error)
	RemoveSegment(ctx context.Context, name string) ([]string, error)
}
