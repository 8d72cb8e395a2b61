package models

import (
	"encoding/json"
	"strings"
)

// Route is an exact, direction-sensitive origin -> destination pair
type Route struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

func (r Route) String() string {
	return r.Origin + " → " + r.Destination
}

// RouteKind distinguishes how a history entry came to exist
type RouteKind string

const (
	RouteKindSystem RouteKind = "system"
	RouteKindManual RouteKind = "manual"
)

// Frequency is how often a driver declares running a route
type Frequency string

const (
	FrequencyAlways       Frequency = "always"
	FrequencyOccasionally Frequency = "occasionally"
)

// ParseFrequency validates a raw frequency value
func ParseFrequency(raw string) (Frequency, error) {
	f := Frequency(strings.ToLower(strings.TrimSpace(raw)))
	switch f {
	case FrequencyAlways, FrequencyOccasionally:
		return f, nil
	}
	return "", ErrInvalidFrequency
}

// RouteEntry is one observation that a driver operated a route.
// It is implemented only by SystemRoute and ManualRoute.
type RouteEntry interface {
	EntryID() string
	Path() Route
	Kind() RouteKind
	routeEntry()
}

// SystemRoute is inferred from a delivered load
type SystemRoute struct {
	ID     string `json:"id"`
	Route
	LoadID string `json:"load_id"`
	Date   string `json:"date"`
}

func (r SystemRoute) EntryID() string { return r.ID }
func (r SystemRoute) Path() Route     { return r.Route }
func (r SystemRoute) Kind() RouteKind { return RouteKindSystem }
func (SystemRoute) routeEntry()       {}

// MarshalJSON adds the kind discriminator
func (r SystemRoute) MarshalJSON() ([]byte, error) {
	type plain SystemRoute
	return json.Marshal(struct {
		Kind RouteKind `json:"kind"`
		plain
	}{Kind: RouteKindSystem, plain: plain(r)})
}

// ManualRoute is declared by an operator
type ManualRoute struct {
	ID        string    `json:"id"`
	Route
	Frequency Frequency `json:"frequency"`
	Date      string    `json:"date,omitempty"`
}

func (r ManualRoute) EntryID() string { return r.ID }
func (r ManualRoute) Path() Route     { return r.Route }
func (r ManualRoute) Kind() RouteKind { return RouteKindManual }
func (ManualRoute) routeEntry()       {}

// MarshalJSON adds the kind discriminator
func (r ManualRoute) MarshalJSON() ([]byte, error) {
	type plain ManualRoute
	return json.Marshal(struct {
		Kind RouteKind `json:"kind"`
		plain
	}{Kind: RouteKindManual, plain: plain(r)})
}

// RouteSummary counts history entries for one route
type RouteSummary struct {
	Route
	Count int `json:"count"`
}

// ManualRouteRequest declares a route for a driver
type ManualRouteRequest struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Frequency   string `json:"frequency"`
}
