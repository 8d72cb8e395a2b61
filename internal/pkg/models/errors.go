package models

import (
	"errors"
	"fmt"
)

// Error categories. Every domain error wraps exactly one of them so callers
// can branch with errors.Is without knowing the specific failure.
var (
	ErrNotFound     = errors.New("not found")
	ErrPrecondition = errors.New("precondition failed")
	ErrInvalidInput = errors.New("invalid input")
)

var (
	ErrLoadNotFound   = fmt.Errorf("load %w", ErrNotFound)
	ErrDriverNotFound = fmt.Errorf("driver %w", ErrNotFound)

	ErrLoadCancelled      = fmt.Errorf("%w: load is cancelled", ErrPrecondition)
	ErrLoadDelivered      = fmt.Errorf("%w: load is already delivered", ErrPrecondition)
	ErrNoDriverAssigned   = fmt.Errorf("%w: load has no driver assigned", ErrPrecondition)
	ErrDriverNotEligible  = fmt.Errorf("%w: driver is not eligible for this load", ErrPrecondition)
	ErrIllegalTransition  = fmt.Errorf("%w: status transition not allowed", ErrPrecondition)
	ErrJournalUnavailable = fmt.Errorf("%w: load event journal is not configured", ErrPrecondition)

	ErrInvalidStatus       = fmt.Errorf("%w: unknown status", ErrInvalidInput)
	ErrInvalidDraft        = fmt.Errorf("%w: incomplete record", ErrInvalidInput)
	ErrUnknownVehicleType  = fmt.Errorf("%w: unknown vehicle type", ErrInvalidInput)
	ErrInvalidAdvance      = fmt.Errorf("%w: advance must be between zero and the load value", ErrInvalidInput)
	ErrInvalidFrequency    = fmt.Errorf("%w: unknown route frequency", ErrInvalidInput)
	ErrInvalidAssignMode   = fmt.Errorf("%w: unknown assignment mode", ErrInvalidInput)
	ErrInvalidDriverStatus = fmt.Errorf("%w: unknown driver status", ErrInvalidInput)
)
