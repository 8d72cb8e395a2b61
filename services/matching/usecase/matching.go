package usecase

import (
	"context"

	"github.com/ciatoslog/dispatch/internal/pkg/logger"
	"github.com/ciatoslog/dispatch/internal/pkg/models"
	"github.com/ciatoslog/dispatch/internal/pkg/store"
	"github.com/ciatoslog/dispatch/services/matching"
)

// matchingUC implements matching.MatchingUC over the entity store
type matchingUC struct {
	cfg   *models.Config
	store store.Store
}

// NewMatchingUC creates a new matching use case
func NewMatchingUC(cfg *models.Config, st store.Store) matching.MatchingUC {
	return &matchingUC{
		cfg:   cfg,
		store: st,
	}
}

// cutoff is how many ranked drivers make the recommendation; everyone after
// it is an other eligible driver
func (uc *matchingUC) cutoff() int {
	if uc.cfg.Dispatch.RecommendationLimit > 0 {
		return uc.cfg.Dispatch.RecommendationLimit
	}
	return 3
}

// limit can shorten the recommendation but never push it past the cutoff, so
// the recommended and other eligible lists never share a driver
func (uc *matchingUC) limit(requested int) int {
	n := uc.cutoff()
	if requested > 0 && requested < n {
		return requested
	}
	return n
}

// rank loads the load and the ranked eligible drivers in one read
func (uc *matchingUC) rank(ctx context.Context, loadID string) (*models.Load, []models.Candidate, error) {
	var (
		load   *models.Load
		ranked []models.Candidate
	)
	err := uc.store.View(ctx, func(tx store.ReadTx) error {
		l, err := tx.Load(loadID)
		if err != nil {
			return err
		}
		switch l.Status {
		case models.LoadStatusCancelled:
			return models.ErrLoadCancelled
		case models.LoadStatusDelivered:
			return models.ErrLoadDelivered
		}
		load = l.Clone()
		ranked = Rank(tx.Drivers(), l, uc.cfg.Dispatch.DefaultVehicleType)
		return nil
	})
	return load, ranked, err
}

// Recommend returns the best scored eligible drivers for a load together with
// the suggested payment split. No eligible driver is an empty list, not an
// error.
func (uc *matchingUC) Recommend(ctx context.Context, loadID string, limit int) (*models.Recommendation, error) {
	load, ranked, err := uc.rank(ctx, loadID)
	if err != nil {
		return nil, err
	}

	n := uc.limit(limit)
	if len(ranked) > n {
		ranked = ranked[:n]
	}

	advance := models.SuggestedAdvance(load.Value, uc.cfg.Dispatch.SuggestedAdvanceRate)
	rec := &models.Recommendation{
		LoadID:           load.ID,
		Route:            load.Path(),
		VehicleType:      load.RequiredVehicleType(uc.cfg.Dispatch.DefaultVehicleType),
		Recommended:      ranked,
		SuggestedAdvance: advance,
		SuggestedBalance: load.Value - advance,
	}

	logger.Debug("Drivers recommended",
		logger.String("load_id", load.ID),
		logger.Int("candidates", len(ranked)))
	return rec, nil
}

// OtherEligible returns the eligible drivers ranked after the recommendation
// cutoff, filtered by name or plate, in ranking order
func (uc *matchingUC) OtherEligible(ctx context.Context, loadID string, search string) ([]models.Candidate, error) {
	_, ranked, err := uc.rank(ctx, loadID)
	if err != nil {
		return nil, err
	}

	n := uc.cutoff()
	out := make([]models.Candidate, 0)
	if len(ranked) <= n {
		return out, nil
	}
	for _, c := range ranked[n:] {
		d := models.Driver{Name: c.Name, Plate: c.Plate}
		if d.MatchesSearch(search) {
			out = append(out, c)
		}
	}
	return out, nil
}
