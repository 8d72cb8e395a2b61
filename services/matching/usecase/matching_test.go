package usecase

import (
	"context"
	"testing"

	"github.com/ciatoslog/dispatch/internal/pkg/models"
	"github.com/ciatoslog/dispatch/internal/pkg/store"
	"github.com/ciatoslog/dispatch/services/matching"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUC() matching.MatchingUC {
	cfg := &models.Config{}
	cfg.Dispatch.DefaultVehicleType = "Truck"
	cfg.Dispatch.RecommendationLimit = 3
	cfg.Dispatch.SuggestedAdvanceRate = 0.4

	avail := models.DriverStatusAvailable
	drivers := []*models.Driver{
		{ID: "D1", Name: "João Silva", Plate: "ABC-1234", VehicleType: "Truck", Status: avail, Rating: 4.8, CompletedTrips: 152,
			History: []models.RouteEntry{system("a", spCuritiba), system("b", spCuritiba)}},
		{ID: "D2", Name: "Carlos Souza", Plate: "XYZ-5678", VehicleType: "Truck", Status: avail, Rating: 4.5, CompletedTrips: 89,
			History: []models.RouteEntry{manual("m", spCuritiba, models.FrequencyAlways)}},
		{ID: "D3", Name: "Pedro Alves", Plate: "QWE-9876", VehicleType: "Truck", Status: avail, Rating: 4.1, CompletedTrips: 20},
		{ID: "D4", Name: "Ana Lima", Plate: "RTY-1111", VehicleType: "Truck", Status: avail, Rating: 3.9, CompletedTrips: 10},
		{ID: "D5", Name: "Paulo Reis", Plate: "PLR-2222", VehicleType: "Truck", Status: avail, Rating: 3.5},
		{ID: "D6", Name: "Rita Bloqueada", Plate: "BLK-0000", VehicleType: "Truck", Status: models.DriverStatusBlocked, Rating: 5},
		{ID: "D7", Name: "Carreteiro", Plate: "CAR-7777", VehicleType: "Carreta LS (Lonada)", Status: avail, Rating: 5},
	}
	loads := []*models.Load{
		{ID: "1024", Origin: spCuritiba.Origin, Destination: spCuritiba.Destination, Value: 4500, Status: models.LoadStatusAwaitingScheduling},
		{ID: "1025", Origin: "A", Destination: "B", Value: 1000, Status: models.LoadStatusCancelled},
		{ID: "1026", Origin: "A", Destination: "B", Value: 1000, Status: models.LoadStatusReadyToSchedule, VehicleTypeRequired: "Bitrem"},
	}
	return NewMatchingUC(cfg, store.NewMemoryStore(models.ReferenceData{}, drivers, loads))
}

func TestRecommend(t *testing.T) {
	uc := newTestUC()

	rec, err := uc.Recommend(context.Background(), "1024", 0)
	require.NoError(t, err)

	require.Len(t, rec.Recommended, 3)
	assert.Equal(t, "D1", rec.Recommended[0].DriverID)
	assert.InDelta(t, 136.6, rec.Recommended[0].Score, 1e-9)
	assert.Equal(t, "D2", rec.Recommended[1].DriverID)
	assert.InDelta(t, 76.95, rec.Recommended[1].Score, 1e-9)
	assert.Equal(t, "D3", rec.Recommended[2].DriverID)

	assert.Equal(t, "Truck", rec.VehicleType)
	assert.Equal(t, spCuritiba, rec.Route)
	assert.Equal(t, 1800.0, rec.SuggestedAdvance)
	assert.Equal(t, 2700.0, rec.SuggestedBalance)
}

func TestRecommend_CustomLimit(t *testing.T) {
	rec, err := newTestUC().Recommend(context.Background(), "1024", 1)
	require.NoError(t, err)
	require.Len(t, rec.Recommended, 1)
	assert.Equal(t, "D1", rec.Recommended[0].DriverID)
}

func TestRecommend_LimitNeverOverlapsOthers(t *testing.T) {
	uc := newTestUC()
	ctx := context.Background()

	rec, err := uc.Recommend(ctx, "1024", 5)
	require.NoError(t, err)
	others, err := uc.OtherEligible(ctx, "1024", "")
	require.NoError(t, err)

	require.Len(t, rec.Recommended, 3)
	for _, o := range others {
		for _, r := range rec.Recommended {
			assert.NotEqual(t, r.DriverID, o.DriverID)
		}
	}
	assert.Len(t, others, 2)
}

func TestRecommend_NoEligibleDrivers(t *testing.T) {
	uc := newTestUC()

	rec, err := uc.Recommend(context.Background(), "1026", 0)
	require.NoError(t, err)
	assert.Empty(t, rec.Recommended)
	assert.Equal(t, "Bitrem", rec.VehicleType)

	others, err := uc.OtherEligible(context.Background(), "1026", "")
	require.NoError(t, err)
	assert.Empty(t, others)
}

func TestRecommend_Rejections(t *testing.T) {
	uc := newTestUC()

	_, err := uc.Recommend(context.Background(), "1025", 0)
	assert.ErrorIs(t, err, models.ErrLoadCancelled)

	_, err = uc.Recommend(context.Background(), "9999", 0)
	assert.ErrorIs(t, err, models.ErrLoadNotFound)
}

func TestOtherEligible_DisjointFromRecommended(t *testing.T) {
	uc := newTestUC()
	ctx := context.Background()

	rec, err := uc.Recommend(ctx, "1024", 0)
	require.NoError(t, err)
	others, err := uc.OtherEligible(ctx, "1024", "")
	require.NoError(t, err)

	ids := make([]string, 0, len(others))
	for _, c := range others {
		ids = append(ids, c.DriverID)
	}
	assert.Equal(t, []string{"D4", "D5"}, ids)

	for _, r := range rec.Recommended {
		assert.NotContains(t, ids, r.DriverID)
	}
	assert.NotContains(t, ids, "D6")
	assert.NotContains(t, ids, "D7")
}

func TestOtherEligible_Search(t *testing.T) {
	uc := newTestUC()
	ctx := context.Background()

	byName, err := uc.OtherEligible(ctx, "1024", "paulo")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "D5", byName[0].DriverID)

	byPlate, err := uc.OtherEligible(ctx, "1024", "rty")
	require.NoError(t, err)
	require.Len(t, byPlate, 1)
	assert.Equal(t, "D4", byPlate[0].DriverID)

	// recommended drivers never show up, even when they match the search
	none, err := uc.OtherEligible(ctx, "1024", "joão")
	require.NoError(t, err)
	assert.Empty(t, none)
}
