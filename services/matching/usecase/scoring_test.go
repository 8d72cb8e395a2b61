package usecase

import (
	"testing"

	"github.com/ciatoslog/dispatch/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var spCuritiba = models.Route{Origin: "São Paulo/SP", Destination: "Curitiba/PR"}

func system(id string, path models.Route) models.RouteEntry {
	return models.SystemRoute{ID: id, Route: path, LoadID: "L-" + id}
}

func manual(id string, path models.Route, f models.Frequency) models.RouteEntry {
	return models.ManualRoute{ID: id, Route: path, Frequency: f}
}

func TestScore_DirectRouteMatch(t *testing.T) {
	d := &models.Driver{
		ID: "D1", Rating: 4.8, CompletedTrips: 152,
		History: []models.RouteEntry{system("a", spCuritiba), system("b", spCuritiba)},
	}

	c := Score(d, spCuritiba)

	assert.InDelta(t, 136.6, c.Score, 1e-9)
	assert.Equal(t, 2, c.SystemMatches)
	assert.Equal(t, "Specialist: 2 trips on this route.", c.Reason)
}

func TestScore_ManualOnly(t *testing.T) {
	tests := []struct {
		name   string
		freq   models.Frequency
		want   float64
		reason string
	}{
		{"always", models.FrequencyAlways, 76.95, "Manually enabled (always)."},
		{"occasionally", models.FrequencyOccasionally, 46.95, "Manually enabled (occasionally)."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &models.Driver{
				ID: "E", Rating: 4.5, CompletedTrips: 89,
				History: []models.RouteEntry{manual("m", spCuritiba, tt.freq)},
			}

			c := Score(d, spCuritiba)

			assert.InDelta(t, tt.want, c.Score, 1e-9)
			assert.Equal(t, tt.freq, c.ManualFrequency)
			assert.Equal(t, tt.reason, c.Reason)
		})
	}
}

func TestScore_SystemMatchSuppressesManualBonus(t *testing.T) {
	d := &models.Driver{
		History: []models.RouteEntry{
			manual("m", spCuritiba, models.FrequencyAlways),
			system("s", spCuritiba),
		},
	}

	c := Score(d, spCuritiba)

	assert.InDelta(t, 100, c.Score, 1e-9)
	assert.Empty(t, c.ManualFrequency)
}

func TestScore_RouteIsDirectionSensitive(t *testing.T) {
	reverse := models.Route{Origin: spCuritiba.Destination, Destination: spCuritiba.Origin}
	d := &models.Driver{Rating: 4, History: []models.RouteEntry{system("s", reverse)}}

	c := Score(d, spCuritiba)

	assert.InDelta(t, 20, c.Score, 1e-9)
	assert.Equal(t, reasonAvailable, c.Reason)
}

func TestRank_FiltersIneligible(t *testing.T) {
	load := &models.Load{ID: "1024", Origin: spCuritiba.Origin, Destination: spCuritiba.Destination}
	drivers := []*models.Driver{
		{ID: "ok", VehicleType: "Truck", Status: models.DriverStatusAvailable},
		{ID: "busy", VehicleType: "Truck", Status: models.DriverStatusEnRoute},
		{ID: "blocked", VehicleType: "Truck", Status: models.DriverStatusBlocked},
		{ID: "expired", VehicleType: "Truck", Status: models.DriverStatusAvailable, DocsExpired: true},
		{ID: "wrong-vehicle", VehicleType: "Bitrem", Status: models.DriverStatusAvailable},
	}

	ranked := Rank(drivers, load, "Truck")

	require.Len(t, ranked, 1)
	assert.Equal(t, "ok", ranked[0].DriverID)
}

func TestRank_StableOnTies(t *testing.T) {
	load := &models.Load{Origin: "A", Destination: "B", VehicleTypeRequired: "Truck"}
	drivers := []*models.Driver{
		{ID: "first", VehicleType: "Truck", Status: models.DriverStatusAvailable, Rating: 4},
		{ID: "best", VehicleType: "Truck", Status: models.DriverStatusAvailable, Rating: 5},
		{ID: "second", VehicleType: "Truck", Status: models.DriverStatusAvailable, Rating: 4},
		{ID: "third", VehicleType: "Truck", Status: models.DriverStatusAvailable, Rating: 4},
	}

	ranked := Rank(drivers, load, "Carreta")

	ids := make([]string, len(ranked))
	for i, c := range ranked {
		ids[i] = c.DriverID
	}
	assert.Equal(t, []string{"best", "first", "second", "third"}, ids)
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Score, ranked[i].Score)
	}
}
