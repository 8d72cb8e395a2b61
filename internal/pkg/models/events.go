package models

import (
	"time"
)

// LoadEventType names what happened to a load
type LoadEventType string

const (
	LoadEventCreated       LoadEventType = "created"
	LoadEventStatusChanged LoadEventType = "status_changed"
	LoadEventAssigned      LoadEventType = "assigned"
	LoadEventDelivered     LoadEventType = "delivered"
	LoadEventCancelled     LoadEventType = "cancelled"
)

// LoadEvent is published and journaled after every committed load command
type LoadEvent struct {
	EventID    string        `json:"event_id" db:"event_id"`
	Type       LoadEventType `json:"type" db:"event_type"`
	LoadID     string        `json:"load_id" db:"load_id"`
	FromStatus LoadStatus    `json:"from_status,omitempty" db:"from_status"`
	ToStatus   LoadStatus    `json:"to_status" db:"to_status"`
	DriverID   string        `json:"driver_id,omitempty" db:"driver_id"`
	TripAdded  bool          `json:"trip_added,omitempty" db:"trip_added"`
	OccurredAt time.Time     `json:"occurred_at" db:"occurred_at"`
}

// DriverEventType names what happened to a driver record
type DriverEventType string

const (
	DriverEventOnboarded     DriverEventType = "onboarded"
	DriverEventStatusChanged DriverEventType = "status_changed"
	DriverEventRouteRecorded DriverEventType = "route_recorded"
	DriverEventRouteRemoved  DriverEventType = "route_removed"
)

// DriverEvent is published after every committed driver command
type DriverEvent struct {
	EventID    string          `json:"event_id"`
	Type       DriverEventType `json:"type"`
	DriverID   string          `json:"driver_id"`
	Status     DriverStatus    `json:"status,omitempty"`
	EntryID    string          `json:"entry_id,omitempty"`
	Route      *Route          `json:"route,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
}
