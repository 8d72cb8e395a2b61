package ledger

import (
	"testing"

	"github.com/ciatoslog/dispatch/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	spCuritiba = models.Route{Origin: "São Paulo/SP", Destination: "Curitiba/PR"}
	curitibaSP = models.Route{Origin: "Curitiba/PR", Destination: "São Paulo/SP"}
	rioBH      = models.Route{Origin: "Rio de Janeiro/RJ", Destination: "Belo Horizonte/MG"}
)

func TestRecordSystemTrip_Idempotent(t *testing.T) {
	d := &models.Driver{ID: "D1"}

	assert.True(t, RecordSystemTrip(d, spCuritiba, "1024", "2024-03-01"))
	assert.False(t, RecordSystemTrip(d, spCuritiba, "1024", "2024-03-02"))

	require.Len(t, d.History, 1)
	sys, ok := d.History[0].(models.SystemRoute)
	require.True(t, ok)
	assert.Equal(t, "1024", sys.LoadID)
	assert.Equal(t, "2024-03-01", sys.Date)
	assert.NotEmpty(t, sys.ID)
}

func TestRecordSystemTrip_ManualEntryDoesNotBlock(t *testing.T) {
	d := &models.Driver{ID: "D1"}
	RecordManualRoute(d, spCuritiba, models.FrequencyAlways, "")

	assert.True(t, RecordSystemTrip(d, spCuritiba, "1024", "2024-03-01"))
	assert.Len(t, d.History, 2)
}

func TestRecordManualRoute_KeepsDuplicates(t *testing.T) {
	d := &models.Driver{ID: "D2"}

	first := RecordManualRoute(d, spCuritiba, models.FrequencyOccasionally, "")
	second := RecordManualRoute(d, spCuritiba, models.FrequencyAlways, "")

	assert.Len(t, d.History, 2)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestRemoveRoute_StaleIDIsNoop(t *testing.T) {
	d := &models.Driver{ID: "D1"}
	a := RecordManualRoute(d, spCuritiba, models.FrequencyAlways, "")
	b := RecordManualRoute(d, rioBH, models.FrequencyAlways, "")

	assert.True(t, RemoveRoute(d, a.ID))
	assert.False(t, RemoveRoute(d, a.ID))

	require.Len(t, d.History, 1)
	assert.Equal(t, b.ID, d.History[0].EntryID())
}

func TestSystemMatches_DirectionSensitive(t *testing.T) {
	d := &models.Driver{ID: "D1"}
	RecordSystemTrip(d, spCuritiba, "1", "")
	RecordSystemTrip(d, spCuritiba, "2", "")
	RecordSystemTrip(d, curitibaSP, "3", "")
	RecordManualRoute(d, spCuritiba, models.FrequencyAlways, "")

	assert.Equal(t, 2, SystemMatches(d, spCuritiba))
	assert.Equal(t, 1, SystemMatches(d, curitibaSP))
	assert.Equal(t, 0, SystemMatches(d, rioBH))
}

func TestFirstManual(t *testing.T) {
	d := &models.Driver{ID: "D1"}
	RecordManualRoute(d, spCuritiba, models.FrequencyOccasionally, "")
	RecordManualRoute(d, spCuritiba, models.FrequencyAlways, "")

	m, ok := FirstManual(d, spCuritiba)
	require.True(t, ok)
	assert.Equal(t, models.FrequencyOccasionally, m.Frequency)

	_, ok = FirstManual(d, rioBH)
	assert.False(t, ok)
}

func TestSummarizeTopRoutes(t *testing.T) {
	d := &models.Driver{ID: "D1"}
	RecordManualRoute(d, rioBH, models.FrequencyAlways, "")
	RecordSystemTrip(d, spCuritiba, "1", "")
	RecordSystemTrip(d, curitibaSP, "2", "")
	RecordSystemTrip(d, spCuritiba, "3", "")
	RecordSystemTrip(d, curitibaSP, "4", "")

	got := SummarizeTopRoutes(d, 3)

	require.Len(t, got, 3)
	assert.Equal(t, models.RouteSummary{Route: spCuritiba, Count: 2}, got[0])
	assert.Equal(t, models.RouteSummary{Route: curitibaSP, Count: 2}, got[1])
	assert.Equal(t, models.RouteSummary{Route: rioBH, Count: 1}, got[2])

	assert.Len(t, SummarizeTopRoutes(d, 1), 1)
	assert.Empty(t, SummarizeTopRoutes(&models.Driver{}, 3))
}
