package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ciatoslog/dispatch/internal/pkg/models"
	"github.com/ciatoslog/dispatch/services/loads/repository"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

var occurred = time.Date(2024, 5, 10, 14, 30, 0, 0, time.UTC)

func TestEnsureSchema(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewLoadJournal(db)

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS load_events")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.EnsureSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppendEvent(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewLoadJournal(db)

	event := models.LoadEvent{
		EventID:    "6f1c5a52-3f44-4a38-9d3e-0f3c6f2b9a11",
		Type:       models.LoadEventDelivered,
		LoadID:     "1024",
		FromStatus: models.LoadStatusInTransit,
		ToStatus:   models.LoadStatusDelivered,
		DriverID:   "D1",
		TripAdded:  true,
		OccurredAt: occurred,
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO load_events")).
		WithArgs(event.EventID, event.Type, event.LoadID, event.FromStatus, event.ToStatus, event.DriverID, true, occurred).
		WillReturnResult(sqlmock.NewResult(1, 1))

	assert.NoError(t, repo.AppendEvent(context.Background(), event))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppendEvent_Error(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewLoadJournal(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO load_events")).
		WillReturnError(errors.New("connection reset by peer"))

	err := repo.AppendEvent(context.Background(), models.LoadEvent{EventID: "e1", Type: models.LoadEventCreated, LoadID: "1027"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to append load event")
}

func TestListEvents(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewLoadJournal(db)

	rows := sqlmock.NewRows([]string{"event_id", "event_type", "load_id", "from_status", "to_status", "driver_id", "trip_added", "occurred_at"}).
		AddRow("e1", "created", "1024", "", "NEGOTIATION", "", false, occurred).
		AddRow("e2", "assigned", "1024", "READY_TO_SCHEDULE", "IN_TRANSIT", "D1", false, occurred.Add(time.Hour))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT event_id, event_type, load_id")).
		WithArgs("1024").
		WillReturnRows(rows)

	events, err := repo.ListEvents(context.Background(), "1024")
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, models.LoadEventCreated, events[0].Type)
	assert.Equal(t, models.LoadStatusInTransit, events[1].ToStatus)
	assert.Equal(t, "D1", events[1].DriverID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListEvents_Empty(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewLoadJournal(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT event_id")).
		WithArgs("1027").
		WillReturnRows(sqlmock.NewRows([]string{"event_id"}))

	events, err := repo.ListEvents(context.Background(), "1027")
	require.NoError(t, err)
	assert.NotNil(t, events)
	assert.Empty(t, events)
}
