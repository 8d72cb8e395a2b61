package drivers

import (
	"context"

	"github.com/ciatoslog/dispatch/internal/pkg/models"
)

// DriverUC defines the interface for driver records and their route history
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/ciatoslog/dispatch/services/drivers DriverUC
type DriverUC interface {
	OnboardDriver(ctx context.Context, draft models.DriverDraft) (*models.Driver, error)
	GetDriver(ctx context.Context, driverID string) (*models.Driver, error)
	ListDrivers(ctx context.Context, search string) ([]*models.Driver, error)
	SetDriverStatus(ctx context.Context, driverID string, status string) (*models.Driver, error)
	SetDocumentsExpired(ctx context.Context, driverID string, expired bool) (*models.Driver, error)
	RecordManualRoute(ctx context.Context, driverID string, req models.ManualRouteRequest) (*models.ManualRoute, error)
	RemoveRoute(ctx context.Context, driverID string, entryID string) (*models.Driver, error)
	SummarizeTopRoutes(ctx context.Context, driverID string, limit int) ([]models.RouteSummary, error)
}
