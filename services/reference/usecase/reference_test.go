package usecase

import (
	"context"
	"testing"

	"github.com/ciatoslog/dispatch/internal/pkg/models"
	"github.com/ciatoslog/dispatch/internal/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() *store.MemoryStore {
	return store.NewMemoryStore(models.ReferenceData{
		VehicleTypes:    []models.VehicleType{{Name: "Truck", CapacityTons: 14, VolumeM3: 50, Active: true}},
		Lanes:           []models.Lane{{Origin: "São Paulo/SP", Destination: "Curitiba/PR", DistanceKm: 408}},
		Segments:        []string{"Agronegócio", "Bebidas"},
		CommissionRules: []models.CommissionRule{{Label: "Carga seca", Percent: 3}},
	}, nil, nil)
}

func TestListReferenceData(t *testing.T) {
	uc := NewReferenceUC(newTestStore())
	ctx := context.Background()

	vts, err := uc.ListVehicleTypes(ctx)
	require.NoError(t, err)
	assert.Len(t, vts, 1)

	lanes, err := uc.ListLanes(ctx)
	require.NoError(t, err)
	assert.Equal(t, 408.0, lanes[0].DistanceKm)

	rules, err := uc.ListCommissionRules(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Carga seca", rules[0].Label)
}

func TestListReferenceData_EmptyCatalog(t *testing.T) {
	uc := NewReferenceUC(store.NewMemoryStore(models.ReferenceData{}, nil, nil))

	segments, err := uc.ListSegments(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, segments)
	assert.Empty(t, segments)
}

func TestAddSegment(t *testing.T) {
	uc := NewReferenceUC(newTestStore())
	ctx := context.Background()

	segments, err := uc.AddSegment(ctx, "  Química ")
	require.NoError(t, err)
	assert.Equal(t, []string{"Agronegócio", "Bebidas", "Química"}, segments)

	segments, err = uc.AddSegment(ctx, "Bebidas")
	require.NoError(t, err)
	assert.Len(t, segments, 3)

	_, err = uc.AddSegment(ctx, "   ")
	assert.ErrorIs(t, err, models.ErrInvalidDraft)
}

func TestRemoveSegment(t *testing.T) {
	uc := NewReferenceUC(newTestStore())
	ctx := context.Background()

	segments, err := uc.RemoveSegment(ctx, "Agronegócio")
	require.NoError(t, err)
	assert.Equal(t, []string{"Bebidas"}, segments)

	segments, err = uc.RemoveSegment(ctx, "Agronegócio")
	require.NoError(t, err)
	assert.Equal(t, []string{"Bebidas"}, segments)
}
