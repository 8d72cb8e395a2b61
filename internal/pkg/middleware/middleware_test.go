package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/ciatoslog/dispatch/internal/pkg/constants"
	"github.com/ciatoslog/dispatch/internal/pkg/database"
	"github.com/ciatoslog/dispatch/internal/pkg/logger"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedis(t *testing.T) (*miniredis.Miniredis, *database.RedisClient) {
	mr := miniredis.RunT(t)
	return mr, &database.RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
}

func do(e *echo.Echo, method, path, idemKey string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if idemKey != "" {
		req.Header.Set(constants.HeaderIdempotencyKey, idemKey)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestPanicRecovery(t *testing.T) {
	e := echo.New()
	e.Use(PanicRecoveryWithZapMiddleware(logger.NewNopLogger()))
	e.GET("/boom", func(c echo.Context) error {
		panic("nil driver")
	})

	rec := do(e, http.MethodGet, "/boom", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "unexpected error")
}

func TestPanicRecovery_RequiresLogger(t *testing.T) {
	assert.Panics(t, func() { PanicRecoveryWithZapMiddleware(nil) })
}

func TestIdempotency(t *testing.T) {
	mr, client := newRedis(t)
	e := echo.New()
	e.Use(IdempotencyMiddleware(IdempotencyConfig{Redis: client, TTL: 10 * time.Second}))

	calls := 0
	e.POST("/loads/:loadID/assign", func(c echo.Context) error {
		calls++
		if c.Param("loadID") == "9999" {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "load not found"})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	t.Run("duplicate key on same route is rejected", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, do(e, http.MethodPost, "/loads/1024/assign", "abc").Code)
		assert.Equal(t, http.StatusConflict, do(e, http.MethodPost, "/loads/1024/assign", "abc").Code)
		assert.Equal(t, 1, calls)
	})

	t.Run("same key on another load is independent", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, do(e, http.MethodPost, "/loads/1025/assign", "abc").Code)
	})

	t.Run("no header passes through", func(t *testing.T) {
		before := calls
		do(e, http.MethodPost, "/loads/1024/assign", "")
		do(e, http.MethodPost, "/loads/1024/assign", "")
		assert.Equal(t, before+2, calls)
	})

	t.Run("failed request releases the key", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, do(e, http.MethodPost, "/loads/9999/assign", "retry-me").Code)
		assert.Equal(t, http.StatusNotFound, do(e, http.MethodPost, "/loads/9999/assign", "retry-me").Code)
	})

	t.Run("key expires after ttl", func(t *testing.T) {
		mr.FastForward(11 * time.Second)
		assert.Equal(t, http.StatusOK, do(e, http.MethodPost, "/loads/1024/assign", "abc").Code)
	})

	t.Run("redis down fails open", func(t *testing.T) {
		mr.Close()
		assert.Equal(t, http.StatusOK, do(e, http.MethodPost, "/loads/1024/assign", "new").Code)
	})
}

func TestRateLimiter(t *testing.T) {
	_, client := newRedis(t)
	e := echo.New()
	e.Use(RateLimiterMiddleware(RateLimiterConfig{Redis: client, Resource: "api", Limit: 2, Period: time.Minute}))
	e.GET("/loads", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	first := do(e, http.MethodGet, "/loads", "")
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "2", first.Header().Get(constants.HeaderRateLimit))
	assert.Equal(t, "1", first.Header().Get(constants.HeaderRateRemaining))

	assert.Equal(t, http.StatusOK, do(e, http.MethodGet, "/loads", "").Code)

	limited := do(e, http.MethodGet, "/loads", "")
	assert.Equal(t, http.StatusTooManyRequests, limited.Code)
	assert.Equal(t, "0", limited.Header().Get(constants.HeaderRateRemaining))
	assert.NotEmpty(t, limited.Header().Get(echo.HeaderRetryAfter))
}
