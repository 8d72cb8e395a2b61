package models

// VehicleType is an entry of the vehicle catalog
type VehicleType struct {
	Name         string  `json:"name" mapstructure:"name"`
	CapacityTons float64 `json:"capacity_tons" mapstructure:"capacity_tons"`
	VolumeM3     float64 `json:"volume_m3" mapstructure:"volume_m3"`
	Active       bool    `json:"active" mapstructure:"active"`
}

// Lane is a priced reference route
type Lane struct {
	Origin        string  `json:"origin" mapstructure:"origin"`
	Destination   string  `json:"destination" mapstructure:"destination"`
	DistanceKm    float64 `json:"distance_km" mapstructure:"distance_km"`
	DurationHours float64 `json:"duration_hours" mapstructure:"duration_hours"`
	Toll          float64 `json:"toll" mapstructure:"toll"`
	Fuel          float64 `json:"fuel" mapstructure:"fuel"`
}

// CommissionRule is a commercial commission line, either a base rate per
// cargo type or a bonus on top of it
type CommissionRule struct {
	Label   string  `json:"label" mapstructure:"label"`
	Percent float64 `json:"percent" mapstructure:"percent"`
	Bonus   bool    `json:"bonus" mapstructure:"bonus"`
}

// ReferenceData is the settings catalog shared by every module
type ReferenceData struct {
	VehicleTypes    []VehicleType    `json:"vehicle_types" mapstructure:"vehicle_types"`
	Lanes           []Lane           `json:"lanes" mapstructure:"lanes"`
	Segments        []string         `json:"segments" mapstructure:"segments"`
	CommissionRules []CommissionRule `json:"commission_rules" mapstructure:"commission_rules"`
}

// SegmentRequest adds a market segment
type SegmentRequest struct {
	Name string `json:"name"`
}
