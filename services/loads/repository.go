package loads

import (
	"context"

	"github.com/ciatoslog/dispatch/internal/pkg/models"
)

// LoadRepo is the append-only journal of load events
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/ciatoslog/dispatch/services/loads LoadRepo
type LoadRepo interface {
	AppendEvent(ctx context.Context, event models.LoadEvent) error
	ListEvents(ctx context.Context, loadID string) ([]models.LoadEvent, error)
}
