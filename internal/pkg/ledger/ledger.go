// Package ledger maintains the per-driver route history that feeds matching.
// Every function mutates the driver it is given; callers run them inside a
// store update so the check and the append are one step.
package ledger

import (
	"sort"

	"github.com/ciatoslog/dispatch/internal/pkg/models"
	"github.com/google/uuid"
)

// RecordSystemTrip appends a system-inferred entry for a delivered load. It
// returns false without touching the history when an entry for loadID exists.
func RecordSystemTrip(d *models.Driver, path models.Route, loadID, date string) bool {
	if HasTripForLoad(d, loadID) {
		return false
	}
	d.History = append(d.History, models.SystemRoute{
		ID:     uuid.NewString(),
		Route:  path,
		LoadID: loadID,
		Date:   date,
	})
	return true
}

// HasTripForLoad reports whether a system entry already carries loadID
func HasTripForLoad(d *models.Driver, loadID string) bool {
	for _, e := range d.History {
		if sys, ok := e.(models.SystemRoute); ok && sys.LoadID == loadID {
			return true
		}
	}
	return false
}

// RecordManualRoute appends an operator-declared entry. Duplicates are kept.
func RecordManualRoute(d *models.Driver, path models.Route, freq models.Frequency, date string) models.ManualRoute {
	entry := models.ManualRoute{
		ID:        uuid.NewString(),
		Route:     path,
		Frequency: freq,
		Date:      date,
	}
	d.History = append(d.History, entry)
	return entry
}

// RemoveRoute drops the entry with the given id. An unknown id leaves the
// history untouched and returns false.
func RemoveRoute(d *models.Driver, entryID string) bool {
	for i, e := range d.History {
		if e.EntryID() == entryID {
			d.History = append(d.History[:i:i], d.History[i+1:]...)
			return true
		}
	}
	return false
}

// SystemMatches counts system entries for exactly this route
func SystemMatches(d *models.Driver, path models.Route) int {
	n := 0
	for _, e := range d.History {
		if e.Kind() == models.RouteKindSystem && e.Path() == path {
			n++
		}
	}
	return n
}

// FirstManual returns the earliest manual entry for exactly this route
func FirstManual(d *models.Driver, path models.Route) (models.ManualRoute, bool) {
	for _, e := range d.History {
		if m, ok := e.(models.ManualRoute); ok && m.Path() == path {
			return m, true
		}
	}
	return models.ManualRoute{}, false
}

// SummarizeTopRoutes groups every entry by route and returns the limit most
// frequent ones, ties in first-seen order.
func SummarizeTopRoutes(d *models.Driver, limit int) []models.RouteSummary {
	var out []models.RouteSummary
	index := make(map[models.Route]int)
	for _, e := range d.History {
		path := e.Path()
		if i, ok := index[path]; ok {
			out[i].Count++
			continue
		}
		index[path] = len(out)
		out = append(out, models.RouteSummary{Route: path, Count: 1})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	if out == nil {
		out = []models.RouteSummary{}
	}
	return out
}
