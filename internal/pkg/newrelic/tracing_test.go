package newrelic

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ciatoslog/dispatch/internal/pkg/models"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestInitNewRelic_Disabled(t *testing.T) {
	cfg := &models.Config{}
	cfg.NewRelic.Enabled = false

	assert.Nil(t, InitNewRelic(cfg))
}

func TestHelpers_NilTransaction(t *testing.T) {
	assert.NotPanics(t, func() {
		SetTransactionName(nil, "Loads.Create")
		AddTransactionAttribute(nil, "load_id", "1027")
		NoticeTransactionError(nil, errors.New("boom"))
		assert.Nil(t, StartSegment(nil, "segment"))
	})
}

func TestSegments_RunWithoutTransaction(t *testing.T) {
	ctx := context.Background()
	calls := 0
	fn := func() error { calls++; return nil }

	assert.NoError(t, WithSegment(ctx, "LoadUC.CreateLoad", fn))
	assert.NoError(t, WithDatastoreSegment(ctx, "load_events", "INSERT", fn))
	assert.NoError(t, WithMessageSegment(ctx, "load.created", fn))
	assert.Equal(t, 3, calls)

	cause := errors.New("publish failed")
	assert.ErrorIs(t, WithMessageSegment(ctx, "load.created", func() error { return cause }), cause)
}

func TestMiddleware_NilApplication(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := Middleware(nil)(func(c echo.Context) error {
		assert.Nil(t, FromEchoContext(c))
		return c.NoContent(http.StatusNoContent)
	})

	assert.NoError(t, h(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
