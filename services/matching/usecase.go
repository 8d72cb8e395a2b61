package matching

import (
	"context"

	"github.com/ciatoslog/dispatch/internal/pkg/models"
)

// MatchingUC defines the interface for driver recommendations
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/ciatoslog/dispatch/services/matching MatchingUC
type MatchingUC interface {
	Recommend(ctx context.Context, loadID string, limit int) (*models.Recommendation, error)
	OtherEligible(ctx context.Context, loadID string, search string) ([]models.Candidate, error)
}
