package usecase

import (
	"fmt"
	"sort"

	"github.com/ciatoslog/dispatch/internal/pkg/ledger"
	"github.com/ciatoslog/dispatch/internal/pkg/models"
)

const (
	systemMatchBase  = 100.0
	systemMatchExtra = 5.0
	manualAlways     = 50.0
	manualOccasional = 20.0
	ratingWeight     = 5.0
	tripsDivisor     = 20.0
)

const reasonAvailable = "Available driver"

// Score rates one driver for a route. A system match outweighs any manual
// declaration; the manual bonus only counts when there is no system match.
func Score(d *models.Driver, path models.Route) models.Candidate {
	c := models.Candidate{
		DriverID:       d.ID,
		Name:           d.Name,
		Plate:          d.Plate,
		VehicleType:    d.VehicleType,
		Rating:         d.Rating,
		CompletedTrips: d.CompletedTrips,
		PaymentKey:     d.PaymentKey,
		Reason:         reasonAvailable,
	}

	if n := ledger.SystemMatches(d, path); n > 0 {
		c.SystemMatches = n
		c.Score = systemMatchBase + systemMatchExtra*float64(n-1)
		c.Reason = fmt.Sprintf("Specialist: %d trips on this route.", n)
	} else if m, ok := ledger.FirstManual(d, path); ok {
		c.ManualFrequency = m.Frequency
		if m.Frequency == models.FrequencyAlways {
			c.Score = manualAlways
		} else {
			c.Score = manualOccasional
		}
		c.Reason = fmt.Sprintf("Manually enabled (%s).", m.Frequency)
	}

	c.Score += d.Rating*ratingWeight + float64(d.CompletedTrips)/tripsDivisor
	return c
}

// Rank scores every driver eligible for load and sorts them by descending
// score. Equal scores keep the order of drivers.
func Rank(drivers []*models.Driver, load *models.Load, defaultVehicleType string) []models.Candidate {
	path := load.Path()
	out := make([]models.Candidate, 0, len(drivers))
	for _, d := range drivers {
		if !d.EligibleFor(load, defaultVehicleType) {
			continue
		}
		out = append(out, Score(d, path))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}
