package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ciatoslog/dispatch/internal/pkg/constants"
	"github.com/ciatoslog/dispatch/internal/pkg/models"
	nrpkg "github.com/ciatoslog/dispatch/internal/pkg/newrelic"
	"github.com/ciatoslog/dispatch/services/loads"
)

// NATSPublisher is the part of the NATS client the gateway needs
type NATSPublisher interface {
	Publish(subject string, data []byte) error
}

// LoadGW publishes load events to NATS
type LoadGW struct {
	publisher NATSPublisher
}

// NewLoadGW creates a new load gateway
func NewLoadGW(publisher NATSPublisher) loads.LoadGW {
	return &LoadGW{publisher: publisher}
}

var subjects = map[models.LoadEventType]string{
	models.LoadEventCreated:       constants.SubjectLoadCreated,
	models.LoadEventStatusChanged: constants.SubjectLoadStatusChanged,
	models.LoadEventAssigned:      constants.SubjectLoadAssigned,
	models.LoadEventDelivered:     constants.SubjectLoadDelivered,
	models.LoadEventCancelled:     constants.SubjectLoadCancelled,
}

// PublishLoadEvent publishes event on the subject of its type
func (g *LoadGW) PublishLoadEvent(ctx context.Context, event models.LoadEvent) error {
	subject, ok := subjects[event.Type]
	if !ok {
		return fmt.Errorf("no subject for load event type %q", event.Type)
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal load event: %w", err)
	}

	return nrpkg.WithMessageSegment(ctx, subject, func() error {
		return g.publisher.Publish(subject, data)
	})
}
