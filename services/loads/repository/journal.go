package repository

import (
	"context"
	"fmt"

	"github.com/ciatoslog/dispatch/internal/pkg/models"
	nrpkg "github.com/ciatoslog/dispatch/internal/pkg/newrelic"
	"github.com/jmoiron/sqlx"
)

const journalTable = "load_events"

const createJournalTable = `
	CREATE TABLE IF NOT EXISTS load_events (
		event_id    UUID PRIMARY KEY,
		event_type  TEXT NOT NULL,
		load_id     TEXT NOT NULL,
		from_status TEXT NOT NULL DEFAULT '',
		to_status   TEXT NOT NULL,
		driver_id   TEXT NOT NULL DEFAULT '',
		trip_added  BOOLEAN NOT NULL DEFAULT FALSE,
		occurred_at TIMESTAMPTZ NOT NULL
	);
	CREATE INDEX IF NOT EXISTS load_events_load_id_idx ON load_events (load_id, occurred_at);
`

// LoadJournal stores load events in PostgreSQL. It is an audit trail; the
// entity store stays the source of truth.
type LoadJournal struct {
	db *sqlx.DB
}

// NewLoadJournal creates a journal over db
func NewLoadJournal(db *sqlx.DB) *LoadJournal {
	return &LoadJournal{db: db}
}

// EnsureSchema creates the journal table when missing
func (r *LoadJournal) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createJournalTable); err != nil {
		return fmt.Errorf("failed to create load journal: %w", err)
	}
	return nil
}

// AppendEvent stores one event. Replaying an event id is ignored.
func (r *LoadJournal) AppendEvent(ctx context.Context, event models.LoadEvent) error {
	query := `
		INSERT INTO load_events (
			event_id, event_type, load_id, from_status, to_status, driver_id, trip_added, occurred_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (event_id) DO NOTHING
	`

	return nrpkg.WithDatastoreSegment(ctx, journalTable, "INSERT", func() error {
		_, err := r.db.ExecContext(ctx, query,
			event.EventID,
			event.Type,
			event.LoadID,
			event.FromStatus,
			event.ToStatus,
			event.DriverID,
			event.TripAdded,
			event.OccurredAt,
		)
		if err != nil {
			return fmt.Errorf("failed to append load event: %w", err)
		}
		return nil
	})
}

// ListEvents returns the events of one load, oldest first
func (r *LoadJournal) ListEvents(ctx context.Context, loadID string) ([]models.LoadEvent, error) {
	query := `
		SELECT event_id, event_type, load_id, from_status, to_status, driver_id, trip_added, occurred_at
		FROM load_events
		WHERE load_id = $1
		ORDER BY occurred_at, event_id
	`

	events := make([]models.LoadEvent, 0)
	err := nrpkg.WithDatastoreSegment(ctx, journalTable, "SELECT", func() error {
		return r.db.SelectContext(ctx, &events, query, loadID)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list load events: %w", err)
	}
	return events, nil
}
