package usecase

import (
	"context"
	"errors"

	"github.com/ciatoslog/dispatch/internal/pkg/ledger"
	"github.com/ciatoslog/dispatch/internal/pkg/logger"
	"github.com/ciatoslog/dispatch/internal/pkg/models"
	"github.com/ciatoslog/dispatch/internal/pkg/store"
)

// CreateLoad opens a new load in NEGOTIATION with a fresh id and today's date
func (uc *loadUC) CreateLoad(ctx context.Context, draft models.LoadDraft) (*models.Load, error) {
	draft.Normalize()
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	var created *models.Load
	err := uc.store.Update(ctx, func(tx store.Tx) error {
		if draft.VehicleTypeRequired != "" {
			if _, ok := tx.VehicleType(draft.VehicleTypeRequired); !ok {
				return models.ErrUnknownVehicleType
			}
		}

		load := &models.Load{
			ID:                  tx.NextLoadID(),
			Date:                uc.today(),
			Customer:            draft.Customer,
			Origin:              draft.Origin,
			Destination:         draft.Destination,
			Value:               draft.Value,
			Cost:                draft.Cost,
			Status:              models.LoadStatusNegotiation,
			VehicleTypeRequired: draft.VehicleTypeRequired,
			CommercialRep:       draft.CommercialRep,
			Unit:                draft.Unit,
		}
		tx.InsertLoad(load)
		created = load.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Load created",
		logger.String("load_id", created.ID),
		logger.String("route", created.Path().String()))
	uc.emit(ctx, uc.newEvent(models.LoadEventCreated, created, ""))
	return created, nil
}

// SetStatus moves a load to any column of the board. Moving to CANCELLED is a
// cancellation; moving to DELIVERED fires the delivery side effect when a
// driver is assigned.
func (uc *loadUC) SetStatus(ctx context.Context, loadID string, status string) (*models.Load, error) {
	target, err := models.ParseLoadStatus(status)
	if err != nil {
		return nil, err
	}
	if target == models.LoadStatusCancelled {
		return uc.CancelLoad(ctx, loadID)
	}

	var (
		updated   *models.Load
		from      models.LoadStatus
		tripAdded bool
	)
	err = uc.store.Update(ctx, func(tx store.Tx) error {
		load, err := tx.Load(loadID)
		if err != nil {
			return err
		}
		if load.Status.Terminal() {
			return models.ErrLoadCancelled
		}
		from = load.Status

		if uc.strict {
			if !models.CanTransition(from, target) {
				return models.ErrIllegalTransition
			}
			if (target == models.LoadStatusInTransit || target == models.LoadStatusDelivered) && load.DriverID == "" {
				return models.ErrNoDriverAssigned
			}
		}

		if !target.HoldsDriver() && load.DriverID != "" {
			if err := releaseDriver(tx, load); err != nil {
				return err
			}
			load.DetachDriver()
		}

		load.Status = target
		if target == models.LoadStatusDelivered && load.DriverID != "" {
			added, err := uc.recordDelivery(tx, load)
			if err != nil {
				return err
			}
			tripAdded = added
		}

		updated = load.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}

	kind := models.LoadEventStatusChanged
	if target == models.LoadStatusDelivered {
		kind = models.LoadEventDelivered
	}
	event := uc.newEvent(kind, updated, from)
	event.TripAdded = tripAdded
	uc.emit(ctx, event)
	return updated, nil
}

// AssignDriver puts an eligible driver on a load and sets its payment split.
// Dispatch scheduling moves the load to IN_TRANSIT, commercial
// self-scheduling to AWAITING_SCHEDULING.
func (uc *loadUC) AssignDriver(ctx context.Context, loadID string, req models.AssignDriverRequest) (*models.Load, error) {
	target, err := req.Mode.TargetStatus()
	if err != nil {
		return nil, err
	}

	var (
		updated *models.Load
		from    models.LoadStatus
	)
	err = uc.store.Update(ctx, func(tx store.Tx) error {
		load, err := tx.Load(loadID)
		if err != nil {
			return err
		}
		switch load.Status {
		case models.LoadStatusCancelled:
			return models.ErrLoadCancelled
		case models.LoadStatusDelivered:
			return models.ErrLoadDelivered
		}

		driver, err := tx.Driver(req.DriverID)
		if err != nil {
			return err
		}
		reassigned := load.DriverID == driver.ID
		if !reassigned && !driver.EligibleFor(load, uc.cfg.Dispatch.DefaultVehicleType) {
			return models.ErrDriverNotEligible
		}

		advance := models.SuggestedAdvance(load.Value, uc.cfg.Dispatch.SuggestedAdvanceRate)
		if req.Advance != nil {
			advance = *req.Advance
			if advance < 0 || advance > load.Value {
				return models.ErrInvalidAdvance
			}
		}
		balance := load.Value - advance

		if load.DriverID != "" && !reassigned {
			if err := releaseDriver(tx, load); err != nil {
				return err
			}
		}

		from = load.Status
		load.DriverID = driver.ID
		load.DriverName = driver.Name
		load.Plate = driver.Plate
		load.Advance = &advance
		load.Balance = &balance
		load.Status = target
		driver.Status = models.DriverStatusEnRoute

		updated = load.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Driver assigned to load",
		logger.String("load_id", updated.ID),
		logger.String("driver_id", updated.DriverID),
		logger.String("status", string(updated.Status)))
	uc.emit(ctx, uc.newEvent(models.LoadEventAssigned, updated, from))
	return updated, nil
}

// FinalizeDelivery marks a load with a driver as DELIVERED. Repeating it only
// re-confirms the status: the trip is counted once.
func (uc *loadUC) FinalizeDelivery(ctx context.Context, loadID string) (*models.Load, error) {
	var (
		updated   *models.Load
		from      models.LoadStatus
		tripAdded bool
	)
	err := uc.store.Update(ctx, func(tx store.Tx) error {
		load, err := tx.Load(loadID)
		if err != nil {
			return err
		}
		if load.Status.Terminal() {
			return models.ErrLoadCancelled
		}
		if load.DriverID == "" {
			return models.ErrNoDriverAssigned
		}
		if uc.strict && !models.CanTransition(load.Status, models.LoadStatusDelivered) {
			return models.ErrIllegalTransition
		}

		from = load.Status
		load.Status = models.LoadStatusDelivered
		added, err := uc.recordDelivery(tx, load)
		if err != nil {
			return err
		}
		tripAdded = added
		updated = load.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Load delivered",
		logger.String("load_id", updated.ID),
		logger.String("driver_id", updated.DriverID),
		logger.Bool("trip_added", tripAdded))
	event := uc.newEvent(models.LoadEventDelivered, updated, from)
	event.TripAdded = tripAdded
	uc.emit(ctx, event)
	return updated, nil
}

// CancelLoad moves a load to CANCELLED and frees its driver. Cancelling a
// cancelled load changes nothing.
func (uc *loadUC) CancelLoad(ctx context.Context, loadID string) (*models.Load, error) {
	var (
		updated  *models.Load
		from     models.LoadStatus
		released string
		changed  bool
	)
	err := uc.store.Update(ctx, func(tx store.Tx) error {
		load, err := tx.Load(loadID)
		if err != nil {
			return err
		}
		switch load.Status {
		case models.LoadStatusCancelled:
			updated = load.Clone()
			return nil
		case models.LoadStatusDelivered:
			return models.ErrLoadDelivered
		}

		if load.DriverID != "" {
			if err := releaseDriver(tx, load); err != nil {
				return err
			}
			released = load.DriverID
			load.DetachDriver()
		}

		from = load.Status
		load.Status = models.LoadStatusCancelled
		changed = true
		updated = load.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !changed {
		return updated, nil
	}

	event := uc.newEvent(models.LoadEventCancelled, updated, from)
	event.DriverID = released
	uc.emit(ctx, event)
	return updated, nil
}

// recordDelivery credits the assigned driver with the trip. The ledger append,
// the trip counter and freeing the driver move together, inside the caller's
// store update; a repeated delivery skips all three.
func (uc *loadUC) recordDelivery(tx store.Tx, load *models.Load) (bool, error) {
	driver, err := tx.Driver(load.DriverID)
	if err != nil {
		return false, err
	}

	if !ledger.RecordSystemTrip(driver, load.Path(), load.ID, uc.today()) {
		return false, nil
	}
	driver.CompletedTrips++
	if driver.Status == models.DriverStatusEnRoute && !onOtherLoad(tx, driver.ID, load.ID) {
		driver.Status = models.DriverStatusAvailable
	}
	return true, nil
}

// releaseDriver makes the driver taken off load available again. A delivered
// load already freed its driver, and a driver still carrying another load
// stays en route. Blocked drivers stay blocked; an unknown driver is left
// alone.
func releaseDriver(tx store.Tx, load *models.Load) error {
	if load.Status == models.LoadStatusDelivered {
		return nil
	}
	driver, err := tx.Driver(load.DriverID)
	if errors.Is(err, models.ErrDriverNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if driver.Status == models.DriverStatusEnRoute && !onOtherLoad(tx, driver.ID, load.ID) {
		driver.Status = models.DriverStatusAvailable
	}
	return nil
}

// onOtherLoad reports whether driverID is assigned to an open load other than
// loadID
func onOtherLoad(tx store.Tx, driverID, loadID string) bool {
	for _, l := range tx.Loads() {
		if l.ID == loadID || l.DriverID != driverID {
			continue
		}
		if l.Status != models.LoadStatusDelivered && !l.Status.Terminal() {
			return true
		}
	}
	return false
}
