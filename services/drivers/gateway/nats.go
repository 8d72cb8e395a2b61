package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ciatoslog/dispatch/internal/pkg/constants"
	"github.com/ciatoslog/dispatch/internal/pkg/models"
	nrpkg "github.com/ciatoslog/dispatch/internal/pkg/newrelic"
	"github.com/ciatoslog/dispatch/services/drivers"
)

// Publisher sends raw messages to a subject
type Publisher interface {
	Publish(subject string, data []byte) error
}

// DriverGW publishes driver events to NATS
type DriverGW struct {
	publisher Publisher
}

// NewDriverGW creates a new driver gateway
func NewDriverGW(publisher Publisher) drivers.DriverGW {
	return &DriverGW{publisher: publisher}
}

func subjectFor(kind models.DriverEventType) (string, error) {
	switch kind {
	case models.DriverEventOnboarded:
		return constants.SubjectDriverOnboarded, nil
	case models.DriverEventStatusChanged:
		return constants.SubjectDriverStatusChanged, nil
	case models.DriverEventRouteRecorded:
		return constants.SubjectDriverRouteRecorded, nil
	case models.DriverEventRouteRemoved:
		return constants.SubjectDriverRouteRemoved, nil
	}
	return "", fmt.Errorf("no subject for driver event type %q", kind)
}

// PublishDriverEvent publishes event on the subject of its type
func (g *DriverGW) PublishDriverEvent(ctx context.Context, event models.DriverEvent) error {
	subject, err := subjectFor(event.Type)
	if err != nil {
		return err
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal driver event: %w", err)
	}

	return nrpkg.WithMessageSegment(ctx, subject, func() error {
		return g.publisher.Publish(subject, data)
	})
}
