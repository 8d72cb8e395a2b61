package config

import (
	"fmt"

	"github.com/ciatoslog/dispatch/internal/pkg/models"
	"github.com/google/uuid"
	"github.com/spf13/viper"
)

// Seed is the initial content of the entity store
type Seed struct {
	Reference models.ReferenceData
	Drivers   []*models.Driver
	Loads     []*models.Load
}

type seedFile struct {
	Reference models.ReferenceData `mapstructure:"reference"`
	Drivers   []driverSeed         `mapstructure:"drivers"`
	Loads     []*models.Load       `mapstructure:"loads"`
}

type driverSeed struct {
	ID             string      `mapstructure:"id"`
	Name           string      `mapstructure:"name"`
	EntityType     string      `mapstructure:"entity_type"`
	TaxID          string      `mapstructure:"tax_id"`
	Phone          string      `mapstructure:"phone"`
	VehicleType    string      `mapstructure:"vehicle_type"`
	Plate          string      `mapstructure:"plate"`
	ANTT           string      `mapstructure:"antt"`
	Rating         float64     `mapstructure:"rating"`
	CompletedTrips int         `mapstructure:"completed_trips"`
	Status         string      `mapstructure:"status"`
	PaymentKey     string      `mapstructure:"payment_key"`
	DocsExpired    bool        `mapstructure:"docs_expired"`
	History        []routeSeed `mapstructure:"history"`
}

type routeSeed struct {
	Kind        string `mapstructure:"kind"`
	Origin      string `mapstructure:"origin"`
	Destination string `mapstructure:"destination"`
	LoadID      string `mapstructure:"load_id"`
	Frequency   string `mapstructure:"frequency"`
	Date        string `mapstructure:"date"`
}

// LoadSeed reads the seed document at path (YAML, JSON or TOML)
func LoadSeed(path string) (*Seed, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var raw seedFile
	if err := v.Unmarshal(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode seed file: %w", err)
	}

	seed := &Seed{Reference: raw.Reference}
	for _, ds := range raw.Drivers {
		d, err := ds.toDriver()
		if err != nil {
			return nil, fmt.Errorf("driver %s: %w", ds.ID, err)
		}
		seed.Drivers = append(seed.Drivers, d)
	}
	for _, l := range raw.Loads {
		status, err := models.ParseLoadStatus(string(l.Status))
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", l.ID, err)
		}
		l.Status = status
		seed.Loads = append(seed.Loads, l)
	}
	return seed, nil
}

func (ds driverSeed) toDriver() (*models.Driver, error) {
	status := models.DriverStatusAvailable
	if ds.Status != "" {
		s, err := models.ParseDriverStatus(ds.Status)
		if err != nil {
			return nil, err
		}
		status = s
	}
	entity := models.EntityType(ds.EntityType)
	if entity == "" {
		entity = models.EntityIndividual
	}

	d := &models.Driver{
		ID:             ds.ID,
		Name:           ds.Name,
		EntityType:     entity,
		TaxID:          ds.TaxID,
		Phone:          ds.Phone,
		VehicleType:    ds.VehicleType,
		Plate:          ds.Plate,
		ANTT:           ds.ANTT,
		Rating:         ds.Rating,
		CompletedTrips: ds.CompletedTrips,
		Status:         status,
		PaymentKey:     ds.PaymentKey,
		DocsExpired:    ds.DocsExpired,
	}
	for _, rs := range ds.History {
		entry, err := rs.toEntry()
		if err != nil {
			return nil, err
		}
		d.History = append(d.History, entry)
	}
	return d, nil
}

func (rs routeSeed) toEntry() (models.RouteEntry, error) {
	path := models.Route{Origin: rs.Origin, Destination: rs.Destination}
	switch models.RouteKind(rs.Kind) {
	case models.RouteKindSystem:
		if rs.LoadID == "" {
			return nil, fmt.Errorf("%w: system route without load id", models.ErrInvalidDraft)
		}
		return models.SystemRoute{ID: uuid.NewString(), Route: path, LoadID: rs.LoadID, Date: rs.Date}, nil
	case models.RouteKindManual:
		freq, err := models.ParseFrequency(rs.Frequency)
		if err != nil {
			return nil, err
		}
		return models.ManualRoute{ID: uuid.NewString(), Route: path, Frequency: freq, Date: rs.Date}, nil
	default:
		return nil, fmt.Errorf("%w: unknown route kind %q", models.ErrInvalidDraft, rs.Kind)
	}
}
