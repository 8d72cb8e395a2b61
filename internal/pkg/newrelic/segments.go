package newrelic

import (
	"context"

	"github.com/newrelic/go-agent/v3/newrelic"
)

// WithDatastoreSegment times a Postgres call against collection
func WithDatastoreSegment(ctx context.Context, collection, operation string, fn func() error) error {
	txn := FromContext(ctx)
	if txn == nil {
		return fn()
	}

	segment := newrelic.DatastoreSegment{
		StartTime:  txn.StartSegmentNow(),
		Product:    newrelic.DatastorePostgres,
		Collection: collection,
		Operation:  operation,
	}
	defer segment.End()

	return fn()
}

// WithMessageSegment times a publish to a NATS subject
func WithMessageSegment(ctx context.Context, subject string, fn func() error) error {
	txn := FromContext(ctx)
	if txn == nil {
		return fn()
	}

	segment := newrelic.MessageProducerSegment{
		StartTime:       txn.StartSegmentNow(),
		Library:         "NATS",
		DestinationType: newrelic.MessageTopic,
		DestinationName: subject,
	}
	defer segment.End()

	return fn()
}
