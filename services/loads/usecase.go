package loads

import (
	"context"

	"github.com/ciatoslog/dispatch/internal/pkg/models"
)

// LoadUC defines the interface for the load lifecycle
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/ciatoslog/dispatch/services/loads LoadUC
type LoadUC interface {
	CreateLoad(ctx context.Context, draft models.LoadDraft) (*models.Load, error)
	GetLoad(ctx context.Context, loadID string) (*models.Load, error)
	ListLoads(ctx context.Context, status string) ([]*models.Load, error)
	Board(ctx context.Context) ([]models.BoardColumn, error)
	Summary(ctx context.Context) (*models.PipelineSummary, error)
	SetStatus(ctx context.Context, loadID string, status string) (*models.Load, error)
	AssignDriver(ctx context.Context, loadID string, req models.AssignDriverRequest) (*models.Load, error)
	FinalizeDelivery(ctx context.Context, loadID string) (*models.Load, error)
	CancelLoad(ctx context.Context, loadID string) (*models.Load, error)
	ListEvents(ctx context.Context, loadID string) ([]models.LoadEvent, error)
}
