package usecase

import (
	"context"
	"strings"

	"github.com/ciatoslog/dispatch/internal/pkg/ledger"
	"github.com/ciatoslog/dispatch/internal/pkg/logger"
	"github.com/ciatoslog/dispatch/internal/pkg/models"
	"github.com/ciatoslog/dispatch/internal/pkg/retry"
	"github.com/ciatoslog/dispatch/internal/pkg/store"
	"github.com/ciatoslog/dispatch/internal/utils"
	"github.com/ciatoslog/dispatch/services/drivers"
	"github.com/google/uuid"
)

const defaultTopRoutes = 3

// driverUC implements drivers.DriverUC over the entity store
type driverUC struct {
	store   store.Store
	gw      drivers.DriverGW
	retrier *retry.Retrier
	clock   models.Clock
}

// Option customizes a driver usecase
type Option func(*driverUC)

// WithClock pins the time source used for route dates and events
func WithClock(clock models.Clock) Option {
	return func(uc *driverUC) { uc.clock = clock }
}

// WithRetrier replaces the retrier used for event publishing
func WithRetrier(r *retry.Retrier) Option {
	return func(uc *driverUC) { uc.retrier = r }
}

// NewDriverUC creates a new driver use case. gw may be nil.
func NewDriverUC(st store.Store, gw drivers.DriverGW, opts ...Option) drivers.DriverUC {
	uc := &driverUC{
		store:   st,
		gw:      gw,
		retrier: retry.New(retry.DefaultConfig()),
		clock:   models.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

func (uc *driverUC) publish(ctx context.Context, kind models.DriverEventType, d *models.Driver, entryID string, route *models.Route) {
	if uc.gw == nil {
		return
	}
	event := models.DriverEvent{
		EventID:    uuid.NewString(),
		Type:       kind,
		DriverID:   d.ID,
		Status:     d.Status,
		EntryID:    entryID,
		Route:      route,
		OccurredAt: uc.clock().UTC(),
	}

	ctx = context.WithoutCancel(ctx)
	err := uc.retrier.Do(ctx, "publish driver event", func(ctx context.Context) error {
		return uc.gw.PublishDriverEvent(ctx, event)
	})
	if err != nil {
		logger.WarnCtx(ctx, "Failed to publish driver event",
			logger.String("driver_id", event.DriverID),
			logger.String("event_type", string(event.Type)),
			logger.Err(err))
	}
}

// mutate runs fn against the canonical driver record and returns a copy of
// the result
func (uc *driverUC) mutate(ctx context.Context, driverID string, fn func(tx store.Tx, d *models.Driver) error) (*models.Driver, error) {
	var out *models.Driver
	err := uc.store.Update(ctx, func(tx store.Tx) error {
		d, err := tx.Driver(driverID)
		if err != nil {
			return err
		}
		if err := fn(tx, d); err != nil {
			return err
		}
		out = d.Clone()
		return nil
	})
	return out, err
}

// OnboardDriver registers a new transport partner as available
func (uc *driverUC) OnboardDriver(ctx context.Context, draft models.DriverDraft) (*models.Driver, error) {
	draft.Normalize()
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	var created *models.Driver
	err := uc.store.Update(ctx, func(tx store.Tx) error {
		if _, ok := tx.VehicleType(draft.VehicleType); !ok {
			return models.ErrUnknownVehicleType
		}
		d := &models.Driver{
			ID:          tx.NewDriverID(),
			Name:        draft.Name,
			EntityType:  draft.EntityType,
			TaxID:       draft.TaxID,
			Phone:       draft.Phone,
			VehicleType: draft.VehicleType,
			Plate:       draft.Plate,
			ANTT:        draft.ANTT,
			Rating:      draft.Rating,
			Status:      models.DriverStatusAvailable,
			PaymentKey:  draft.PaymentKey,
			History:     []models.RouteEntry{},
		}
		tx.InsertDriver(d)
		created = d.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Driver onboarded",
		logger.String("driver_id", created.ID),
		logger.String("tax_id", utils.MaskDocument(created.TaxID)),
		logger.String("vehicle_type", created.VehicleType))
	uc.publish(ctx, models.DriverEventOnboarded, created, "", nil)
	return created, nil
}

// GetDriver returns a copy of one driver
func (uc *driverUC) GetDriver(ctx context.Context, driverID string) (*models.Driver, error) {
	var out *models.Driver
	err := uc.store.View(ctx, func(tx store.ReadTx) error {
		d, err := tx.Driver(driverID)
		if err != nil {
			return err
		}
		out = d.Clone()
		return nil
	})
	return out, err
}

// ListDrivers returns the drivers whose name or plate matches search, in
// registration order
func (uc *driverUC) ListDrivers(ctx context.Context, search string) ([]*models.Driver, error) {
	out := make([]*models.Driver, 0)
	err := uc.store.View(ctx, func(tx store.ReadTx) error {
		for _, d := range tx.Drivers() {
			if d.MatchesSearch(search) {
				out = append(out, d.Clone())
			}
		}
		return nil
	})
	return out, err
}

// SetDriverStatus changes a driver's availability
func (uc *driverUC) SetDriverStatus(ctx context.Context, driverID string, status string) (*models.Driver, error) {
	target, err := models.ParseDriverStatus(status)
	if err != nil {
		return nil, err
	}

	d, err := uc.mutate(ctx, driverID, func(_ store.Tx, d *models.Driver) error {
		d.Status = target
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.publish(ctx, models.DriverEventStatusChanged, d, "", nil)
	return d, nil
}

// SetDocumentsExpired flags a driver's documents. Drivers with expired
// documents are never offered for a load.
func (uc *driverUC) SetDocumentsExpired(ctx context.Context, driverID string, expired bool) (*models.Driver, error) {
	d, err := uc.mutate(ctx, driverID, func(_ store.Tx, d *models.Driver) error {
		d.DocsExpired = expired
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.publish(ctx, models.DriverEventStatusChanged, d, "", nil)
	return d, nil
}

// RecordManualRoute declares that a driver runs a route. Repeated
// declarations are all kept.
func (uc *driverUC) RecordManualRoute(ctx context.Context, driverID string, req models.ManualRouteRequest) (*models.ManualRoute, error) {
	path := models.Route{
		Origin:      strings.TrimSpace(req.Origin),
		Destination: strings.TrimSpace(req.Destination),
	}
	if path.Origin == "" || path.Destination == "" {
		return nil, models.ErrInvalidDraft
	}
	freq, err := models.ParseFrequency(req.Frequency)
	if err != nil {
		return nil, err
	}

	var entry models.ManualRoute
	d, err := uc.mutate(ctx, driverID, func(_ store.Tx, d *models.Driver) error {
		entry = ledger.RecordManualRoute(d, path, freq, models.Today(uc.clock))
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.publish(ctx, models.DriverEventRouteRecorded, d, entry.ID, &path)
	return &entry, nil
}

// RemoveRoute drops one history entry. An entry that is already gone leaves
// the history as it is and is not an error.
func (uc *driverUC) RemoveRoute(ctx context.Context, driverID string, entryID string) (*models.Driver, error) {
	var (
		removed bool
		path    models.Route
	)
	d, err := uc.mutate(ctx, driverID, func(_ store.Tx, d *models.Driver) error {
		for _, e := range d.History {
			if e.EntryID() == entryID {
				path = e.Path()
				break
			}
		}
		removed = ledger.RemoveRoute(d, entryID)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !removed {
		logger.Debug("Route entry already removed",
			logger.String("driver_id", driverID),
			logger.String("entry_id", entryID))
		return d, nil
	}
	uc.publish(ctx, models.DriverEventRouteRemoved, d, entryID, &path)
	return d, nil
}

// SummarizeTopRoutes returns the driver's most frequent routes
func (uc *driverUC) SummarizeTopRoutes(ctx context.Context, driverID string, limit int) ([]models.RouteSummary, error) {
	if limit <= 0 {
		limit = defaultTopRoutes
	}
	var out []models.RouteSummary
	err := uc.store.View(ctx, func(tx store.ReadTx) error {
		d, err := tx.Driver(driverID)
		if err != nil {
			return err
		}
		out = ledger.SummarizeTopRoutes(d, limit)
		return nil
	})
	return out, err
}
