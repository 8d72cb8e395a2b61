package models

import (
	"strings"
)

// DriverStatus represents the availability of a transport partner
type DriverStatus string

const (
	DriverStatusAvailable DriverStatus = "available"
	DriverStatusEnRoute   DriverStatus = "en_route"
	DriverStatusBlocked   DriverStatus = "blocked"
)

// ParseDriverStatus validates a raw driver status
func ParseDriverStatus(raw string) (DriverStatus, error) {
	s := DriverStatus(strings.ToLower(strings.TrimSpace(raw)))
	switch s {
	case DriverStatusAvailable, DriverStatusEnRoute, DriverStatusBlocked:
		return s, nil
	}
	return "", ErrInvalidDriverStatus
}

// EntityType is the legal form of a transport partner
type EntityType string

const (
	EntityIndividual EntityType = "individual"
	EntityCompany    EntityType = "company"
)

// Driver is a transport partner available for assignment
type Driver struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	EntityType     EntityType   `json:"entity_type"`
	TaxID          string       `json:"tax_id"`
	Phone          string       `json:"phone"`
	VehicleType    string       `json:"vehicle_type"`
	Plate          string       `json:"plate"`
	ANTT           string       `json:"antt"`
	Rating         float64      `json:"rating"`
	CompletedTrips int          `json:"completed_trips"`
	Status         DriverStatus `json:"status"`
	History        []RouteEntry `json:"history_routes"`
	PaymentKey     string       `json:"payment_key"`
	DocsExpired    bool         `json:"docs_expired"`
}

// Clone returns a deep copy of the driver. Route entries are values, so
// copying the slice is enough.
func (d *Driver) Clone() *Driver {
	if d == nil {
		return nil
	}
	c := *d
	c.History = make([]RouteEntry, len(d.History))
	copy(c.History, d.History)
	return &c
}

// MatchesSearch reports whether the driver's name contains term, case
// insensitive, or its plate contains the upper-cased term.
func (d *Driver) MatchesSearch(term string) bool {
	term = strings.TrimSpace(term)
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(d.Name), strings.ToLower(term)) {
		return true
	}
	return strings.Contains(d.Plate, strings.ToUpper(term))
}

// EligibleFor reports whether the driver may be offered for load: available,
// documents valid and the exact vehicle type the load requires
func (d *Driver) EligibleFor(load *Load, defaultVehicleType string) bool {
	return d.Status == DriverStatusAvailable &&
		!d.DocsExpired &&
		d.VehicleType == load.RequiredVehicleType(defaultVehicleType)
}

// DriverDraft carries the onboarding fields of a partner
type DriverDraft struct {
	Name        string     `json:"name"`
	EntityType  EntityType `json:"entity_type"`
	TaxID       string     `json:"tax_id"`
	Phone       string     `json:"phone"`
	VehicleType string     `json:"vehicle_type"`
	Plate       string     `json:"plate"`
	ANTT        string     `json:"antt"`
	PaymentKey  string     `json:"payment_key"`
	Rating      float64    `json:"rating"`
}

// Normalize trims the draft and upper-cases the plate
func (d *DriverDraft) Normalize() {
	d.Name = strings.TrimSpace(d.Name)
	d.TaxID = strings.TrimSpace(d.TaxID)
	d.Phone = strings.TrimSpace(d.Phone)
	d.VehicleType = strings.TrimSpace(d.VehicleType)
	d.Plate = strings.ToUpper(strings.TrimSpace(d.Plate))
	d.ANTT = strings.TrimSpace(d.ANTT)
	d.PaymentKey = strings.TrimSpace(d.PaymentKey)
	if d.EntityType == "" {
		d.EntityType = EntityIndividual
	}
}

// Validate checks the draft is complete
func (d *DriverDraft) Validate() error {
	if d.Name == "" || d.Plate == "" || d.VehicleType == "" {
		return ErrInvalidDraft
	}
	if d.EntityType != EntityIndividual && d.EntityType != EntityCompany {
		return ErrInvalidDraft
	}
	if d.Rating < 0 || d.Rating > 5 {
		return ErrInvalidDraft
	}
	return nil
}

// DriverStatusRequest changes a driver's availability
type DriverStatusRequest struct {
	Status string `json:"status"`
}

// DocumentsRequest flags a driver's documents as expired or valid
type DocumentsRequest struct {
	Expired bool `json:"expired"`
}
