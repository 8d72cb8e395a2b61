package models

// Candidate is a scored, eligible driver for a load
type Candidate struct {
	DriverID        string    `json:"driver_id"`
	Name            string    `json:"name"`
	Plate           string    `json:"plate"`
	VehicleType     string    `json:"vehicle_type"`
	Rating          float64   `json:"rating"`
	CompletedTrips  int       `json:"completed_trips"`
	PaymentKey      string    `json:"payment_key,omitempty"`
	Score           float64   `json:"score"`
	Reason          string    `json:"reason,omitempty"`
	SystemMatches   int       `json:"system_matches"`
	ManualFrequency Frequency `json:"manual_frequency,omitempty"`
}

// Recommendation is the ranked answer for a load awaiting assignment
type Recommendation struct {
	LoadID           string      `json:"load_id"`
	Route            Route       `json:"route"`
	VehicleType      string      `json:"vehicle_type"`
	Recommended      []Candidate `json:"recommended"`
	SuggestedAdvance float64     `json:"suggested_advance"`
	SuggestedBalance float64     `json:"suggested_balance"`
}
