package models

import (
	"math"
	"strings"
)

// LoadStatus represents a stage of the load pipeline
type LoadStatus string

const (
	LoadStatusNegotiation        LoadStatus = "NEGOTIATION"
	LoadStatusDocumentation      LoadStatus = "DOCUMENTATION"
	LoadStatusReadyToSchedule    LoadStatus = "READY_TO_SCHEDULE"
	LoadStatusAwaitingScheduling LoadStatus = "AWAITING_SCHEDULING"
	LoadStatusInTransit          LoadStatus = "IN_TRANSIT"
	LoadStatusDelivered          LoadStatus = "DELIVERED"
	LoadStatusCancelled          LoadStatus = "CANCELLED"
)

var pipelineOrder = []LoadStatus{
	LoadStatusNegotiation,
	LoadStatusDocumentation,
	LoadStatusReadyToSchedule,
	LoadStatusAwaitingScheduling,
	LoadStatusInTransit,
	LoadStatusDelivered,
	LoadStatusCancelled,
}

// PipelineOrder returns every status in board order, cancelled last
func PipelineOrder() []LoadStatus {
	out := make([]LoadStatus, len(pipelineOrder))
	copy(out, pipelineOrder)
	return out
}

// ParseLoadStatus validates a raw status value
func ParseLoadStatus(raw string) (LoadStatus, error) {
	s := LoadStatus(strings.ToUpper(strings.TrimSpace(raw)))
	if !s.Valid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

// Valid reports whether s is one of the defined statuses
func (s LoadStatus) Valid() bool {
	for _, known := range pipelineOrder {
		if s == known {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transition may leave s
func (s LoadStatus) Terminal() bool {
	return s == LoadStatusCancelled
}

// rank is the position of s on the happy path; cancelled has no rank
func (s LoadStatus) rank() int {
	for i, known := range pipelineOrder[:len(pipelineOrder)-1] {
		if s == known {
			return i
		}
	}
	return -1
}

// HoldsDriver reports whether a load in status s may carry an assigned driver
func (s LoadStatus) HoldsDriver() bool {
	return s.rank() >= LoadStatusAwaitingScheduling.rank()
}

// allowedTransitions is the strict pipeline table. Same-status moves are
// re-confirmations and are not listed.
var allowedTransitions = map[LoadStatus][]LoadStatus{
	LoadStatusNegotiation:        {LoadStatusDocumentation, LoadStatusCancelled},
	LoadStatusDocumentation:      {LoadStatusNegotiation, LoadStatusReadyToSchedule, LoadStatusCancelled},
	LoadStatusReadyToSchedule:    {LoadStatusDocumentation, LoadStatusAwaitingScheduling, LoadStatusInTransit, LoadStatusCancelled},
	LoadStatusAwaitingScheduling: {LoadStatusReadyToSchedule, LoadStatusInTransit, LoadStatusCancelled},
	LoadStatusInTransit:          {LoadStatusDelivered, LoadStatusCancelled},
	LoadStatusDelivered:          {},
	LoadStatusCancelled:          {},
}

// CanTransition reports whether the strict table allows from -> to
func CanTransition(from, to LoadStatus) bool {
	if from == to {
		return true
	}
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// AssignMode says who schedules the load and therefore where it lands
type AssignMode string

const (
	AssignModeDispatch   AssignMode = "dispatch"
	AssignModeCommercial AssignMode = "commercial"
)

// TargetStatus returns the status a load moves to when a driver is assigned
func (m AssignMode) TargetStatus() (LoadStatus, error) {
	switch m {
	case "", AssignModeDispatch:
		return LoadStatusInTransit, nil
	case AssignModeCommercial:
		return LoadStatusAwaitingScheduling, nil
	default:
		return "", ErrInvalidAssignMode
	}
}

// Load is a freight shipment under negotiation or execution
type Load struct {
	ID                  string     `json:"id" mapstructure:"id"`
	Date                string     `json:"date" mapstructure:"date"`
	Customer            string     `json:"customer" mapstructure:"customer"`
	Origin              string     `json:"origin" mapstructure:"origin"`
	Destination         string     `json:"destination" mapstructure:"destination"`
	Value               float64    `json:"value" mapstructure:"value"`
	Cost                float64    `json:"cost" mapstructure:"cost"`
	Status              LoadStatus `json:"status" mapstructure:"status"`
	DriverID            string     `json:"driver_id,omitempty" mapstructure:"driver_id"`
	DriverName          string     `json:"driver,omitempty" mapstructure:"driver"`
	Plate               string     `json:"plate,omitempty" mapstructure:"plate"`
	Advance             *float64   `json:"advance,omitempty" mapstructure:"advance"`
	Balance             *float64   `json:"balance,omitempty" mapstructure:"balance"`
	VehicleTypeRequired string     `json:"vehicle_type_required,omitempty" mapstructure:"vehicle_type_required"`
	CommercialRep       string     `json:"commercial_rep,omitempty" mapstructure:"commercial_rep"`
	Unit                string     `json:"unit,omitempty" mapstructure:"unit"`
}

// Path returns the load's origin -> destination pair
func (l *Load) Path() Route {
	return Route{Origin: l.Origin, Destination: l.Destination}
}

// Margin is the gross value minus cost
func (l *Load) Margin() float64 {
	return l.Value - l.Cost
}

// Clone returns a deep copy of the load
func (l *Load) Clone() *Load {
	if l == nil {
		return nil
	}
	c := *l
	if l.Advance != nil {
		v := *l.Advance
		c.Advance = &v
	}
	if l.Balance != nil {
		v := *l.Balance
		c.Balance = &v
	}
	return &c
}

// RequiredVehicleType returns the vehicle type drivers must have, def when
// the load does not name one
func (l *Load) RequiredVehicleType(def string) string {
	if l.VehicleTypeRequired == "" {
		return def
	}
	return l.VehicleTypeRequired
}

// SuggestedAdvance is the upfront payment offered by default: rate of the
// value, rounded down to a whole amount
func SuggestedAdvance(value, rate float64) float64 {
	return math.Floor(value * rate)
}

// DetachDriver clears assignment and payment fields
func (l *Load) DetachDriver() {
	l.DriverID = ""
	l.DriverName = ""
	l.Plate = ""
	l.Advance = nil
	l.Balance = nil
}

// LoadDraft carries every Load field the caller controls at creation time
type LoadDraft struct {
	Customer            string  `json:"customer"`
	Origin              string  `json:"origin"`
	Destination         string  `json:"destination"`
	Value               float64 `json:"value"`
	Cost                float64 `json:"cost"`
	VehicleTypeRequired string  `json:"vehicle_type_required,omitempty"`
	CommercialRep       string  `json:"commercial_rep,omitempty"`
	Unit                string  `json:"unit,omitempty"`
}

// Normalize trims the free-text fields of the draft
func (d *LoadDraft) Normalize() {
	d.Customer = strings.TrimSpace(d.Customer)
	d.Origin = strings.TrimSpace(d.Origin)
	d.Destination = strings.TrimSpace(d.Destination)
	d.VehicleTypeRequired = strings.TrimSpace(d.VehicleTypeRequired)
	d.CommercialRep = strings.TrimSpace(d.CommercialRep)
	d.Unit = strings.TrimSpace(d.Unit)
}

// Validate checks the draft is complete
func (d *LoadDraft) Validate() error {
	if d.Customer == "" || d.Origin == "" || d.Destination == "" {
		return ErrInvalidDraft
	}
	if d.Value < 0 || d.Cost < 0 {
		return ErrInvalidDraft
	}
	return nil
}

// StatusChangeRequest moves a load to another pipeline column
type StatusChangeRequest struct {
	Status string `json:"status"`
}

// AssignDriverRequest selects a driver for a load
type AssignDriverRequest struct {
	DriverID string     `json:"driver_id"`
	Advance  *float64   `json:"advance,omitempty"`
	Mode     AssignMode `json:"mode,omitempty"`
}

// BoardColumn is one pipeline column of the load board
type BoardColumn struct {
	Status     LoadStatus `json:"status"`
	Count      int        `json:"count"`
	TotalValue float64    `json:"total_value"`
	Loads      []*Load    `json:"loads"`
}

// RepSummary aggregates the loads of one commercial representative
type RepSummary struct {
	CommercialRep string  `json:"commercial_rep"`
	Loads         int     `json:"loads"`
	Revenue       float64 `json:"revenue"`
	Margin        float64 `json:"margin"`
}

// PipelineSummary is the financial overview of the load book
type PipelineSummary struct {
	TotalLoads    int                `json:"total_loads"`
	ByStatus      map[LoadStatus]int `json:"by_status"`
	Revenue       float64            `json:"revenue"`
	Cost          float64            `json:"cost"`
	NetMargin     float64            `json:"net_margin"`
	MarginPercent float64            `json:"margin_percent"`
	ByRep         []RepSummary       `json:"by_rep"`
}
