package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/ciatoslog/dispatch/internal/pkg/logger"
	"github.com/ciatoslog/dispatch/internal/pkg/models"
	"github.com/ciatoslog/dispatch/internal/pkg/retry"
	"github.com/ciatoslog/dispatch/internal/pkg/store"
	"github.com/ciatoslog/dispatch/services/loads"
	"github.com/google/uuid"
)

const (
	PolicyPermissive = "permissive"
	PolicyStrict     = "strict"
)

// loadUC implements loads.LoadUC over the entity store
type loadUC struct {
	cfg     *models.Config
	store   store.Store
	repo    loads.LoadRepo
	gw      loads.LoadGW
	retrier *retry.Retrier
	clock   models.Clock
	strict  bool
}

// Option customizes a load usecase
type Option func(*loadUC)

// WithClock pins the time source used for load dates and history entries
func WithClock(clock models.Clock) Option {
	return func(uc *loadUC) { uc.clock = clock }
}

// WithRetrier replaces the retrier used for post-commit side effects
func WithRetrier(r *retry.Retrier) Option {
	return func(uc *loadUC) { uc.retrier = r }
}

// NewLoadUC creates a new load use case. repo and gw may be nil, in which
// case events are neither journaled nor published.
func NewLoadUC(
	cfg *models.Config,
	st store.Store,
	repo loads.LoadRepo,
	gw loads.LoadGW,
	opts ...Option,
) (loads.LoadUC, error) {
	uc := &loadUC{
		cfg:     cfg,
		store:   st,
		repo:    repo,
		gw:      gw,
		retrier: retry.New(retry.DefaultConfig()),
		clock:   models.Now,
	}

	switch cfg.Dispatch.TransitionPolicy {
	case "", PolicyPermissive:
	case PolicyStrict:
		uc.strict = true
	default:
		return nil, fmt.Errorf("unknown transition policy %q", cfg.Dispatch.TransitionPolicy)
	}

	for _, opt := range opts {
		opt(uc)
	}
	return uc, nil
}

func (uc *loadUC) today() string {
	return models.Today(uc.clock)
}

func (uc *loadUC) newEvent(kind models.LoadEventType, load *models.Load, from models.LoadStatus) models.LoadEvent {
	return models.LoadEvent{
		EventID:    uuid.NewString(),
		Type:       kind,
		LoadID:     load.ID,
		FromStatus: from,
		ToStatus:   load.Status,
		DriverID:   load.DriverID,
		OccurredAt: uc.clock().UTC(),
	}
}

// emit journals and publishes an event of a committed command. Failures are
// logged and never reach the caller.
func (uc *loadUC) emit(ctx context.Context, event models.LoadEvent) {
	ctx = context.WithoutCancel(ctx)

	if uc.repo != nil {
		err := uc.retrier.Do(ctx, "journal load event", func(ctx context.Context) error {
			return uc.repo.AppendEvent(ctx, event)
		})
		if err != nil {
			logger.WarnCtx(ctx, "Failed to journal load event",
				logger.String("load_id", event.LoadID),
				logger.String("event_type", string(event.Type)),
				logger.Err(err))
		}
	}

	if uc.gw != nil {
		err := uc.retrier.Do(ctx, "publish load event", func(ctx context.Context) error {
			return uc.gw.PublishLoadEvent(ctx, event)
		})
		if err != nil {
			logger.WarnCtx(ctx, "Failed to publish load event",
				logger.String("load_id", event.LoadID),
				logger.String("event_type", string(event.Type)),
				logger.Err(err))
		}
	}
}

// GetLoad returns a copy of one load
func (uc *loadUC) GetLoad(ctx context.Context, loadID string) (*models.Load, error) {
	var out *models.Load
	err := uc.store.View(ctx, func(tx store.ReadTx) error {
		load, err := tx.Load(loadID)
		if err != nil {
			return err
		}
		out = load.Clone()
		return nil
	})
	return out, err
}

// ListLoads returns the loads in board order, optionally restricted to one
// status
func (uc *loadUC) ListLoads(ctx context.Context, status string) ([]*models.Load, error) {
	var filter models.LoadStatus
	if status != "" {
		s, err := models.ParseLoadStatus(status)
		if err != nil {
			return nil, err
		}
		filter = s
	}

	out := make([]*models.Load, 0)
	err := uc.store.View(ctx, func(tx store.ReadTx) error {
		for _, l := range tx.Loads() {
			if filter == "" || l.Status == filter {
				out = append(out, l.Clone())
			}
		}
		return nil
	})
	return out, err
}

// Board groups every load into one column per status, in pipeline order
func (uc *loadUC) Board(ctx context.Context) ([]models.BoardColumn, error) {
	order := models.PipelineOrder()
	columns := make([]models.BoardColumn, len(order))
	index := make(map[models.LoadStatus]int, len(order))
	for i, s := range order {
		columns[i] = models.BoardColumn{Status: s, Loads: make([]*models.Load, 0)}
		index[s] = i
	}

	err := uc.store.View(ctx, func(tx store.ReadTx) error {
		for _, l := range tx.Loads() {
			col := &columns[index[l.Status]]
			col.Loads = append(col.Loads, l.Clone())
			col.Count++
			col.TotalValue += l.Value
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return columns, nil
}

const unassignedRep = "unassigned"

// Summary totals the load book. Cancelled loads are counted per status but
// left out of the money figures.
func (uc *loadUC) Summary(ctx context.Context) (*models.PipelineSummary, error) {
	summary := &models.PipelineSummary{
		ByStatus: make(map[models.LoadStatus]int),
		ByRep:    make([]models.RepSummary, 0),
	}
	repIndex := make(map[string]int)

	err := uc.store.View(ctx, func(tx store.ReadTx) error {
		for _, l := range tx.Loads() {
			summary.TotalLoads++
			summary.ByStatus[l.Status]++
			if l.Status == models.LoadStatusCancelled {
				continue
			}
			summary.Revenue += l.Value
			summary.Cost += l.Cost

			rep := l.CommercialRep
			if rep == "" {
				rep = unassignedRep
			}
			i, ok := repIndex[rep]
			if !ok {
				i = len(summary.ByRep)
				repIndex[rep] = i
				summary.ByRep = append(summary.ByRep, models.RepSummary{CommercialRep: rep})
			}
			summary.ByRep[i].Loads++
			summary.ByRep[i].Revenue += l.Value
			summary.ByRep[i].Margin += l.Margin()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	summary.NetMargin = summary.Revenue - summary.Cost
	if summary.Revenue > 0 {
		summary.MarginPercent = summary.NetMargin / summary.Revenue * 100
	}
	return summary, nil
}

// ListEvents returns the journaled history of a load, oldest first
func (uc *loadUC) ListEvents(ctx context.Context, loadID string) ([]models.LoadEvent, error) {
	if uc.repo == nil {
		return nil, models.ErrJournalUnavailable
	}
	if _, err := uc.GetLoad(ctx, loadID); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return uc.repo.ListEvents(ctx, loadID)
}
