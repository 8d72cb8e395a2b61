package usecase

import (
	"context"
	"strings"

	"github.com/ciatoslog/dispatch/internal/pkg/logger"
	"github.com/ciatoslog/dispatch/internal/pkg/models"
	"github.com/ciatoslog/dispatch/internal/pkg/store"
	"github.com/ciatoslog/dispatch/services/reference"
)

type referenceUC struct {
	store store.Store
}

// NewReferenceUC creates a new reference data use case
func NewReferenceUC(st store.Store) reference.ReferenceUC {
	return &referenceUC{store: st}
}

func (uc *referenceUC) ListVehicleTypes(ctx context.Context) ([]models.VehicleType, error) {
	var out []models.VehicleType
	err := uc.store.View(ctx, func(tx store.ReadTx) error {
		out = tx.VehicleTypes()
		return nil
	})
	return nonNil(out), err
}

func (uc *referenceUC) ListLanes(ctx context.Context) ([]models.Lane, error) {
	var out []models.Lane
	err := uc.store.View(ctx, func(tx store.ReadTx) error {
		out = tx.Lanes()
		return nil
	})
	return nonNil(out), err
}

func (uc *referenceUC) ListSegments(ctx context.Context) ([]string, error) {
	var out []string
	err := uc.store.View(ctx, func(tx store.ReadTx) error {
		out = tx.Segments()
		return nil
	})
	return nonNil(out), err
}

func (uc *referenceUC) ListCommissionRules(ctx context.Context) ([]models.CommissionRule, error) {
	var out []models.CommissionRule
	err := uc.store.View(ctx, func(tx store.ReadTx) error {
		out = tx.CommissionRules()
		return nil
	})
	return nonNil(out), err
}

// AddSegment appends a market segment. A name already listed is ignored.
func (uc *referenceUC) AddSegment(ctx context.Context, name string) ([]string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, models.ErrInvalidDraft
	}

	var out []string
	err := uc.store.Update(ctx, func(tx store.Tx) error {
		if tx.AddSegment(name) {
			logger.Info("Segment added", logger.String("segment", name))
		}
		out = tx.Segments()
		return nil
	})
	return nonNil(out), err
}

// RemoveSegment drops a market segment; an unknown name is a no-op
func (uc *referenceUC) RemoveSegment(ctx context.Context, name string) ([]string, error) {
	name = strings.TrimSpace(name)

	var out []string
	err := uc.store.Update(ctx, func(tx store.Tx) error {
		tx.RemoveSegment(name)
		out = tx.Segments()
		return nil
	})
	return nonNil(out), err
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
