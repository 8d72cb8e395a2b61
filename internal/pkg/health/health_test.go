package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/ciatoslog/dispatch/internal/pkg/database"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(e *echo.Echo, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCheckAllHealth(t *testing.T) {
	svc := NewHealthService()
	svc.AddChecker("postgres", NewPostgresHealthChecker(nil))
	svc.AddChecker("nats", NewNATSHealthChecker(nil))
	svc.AddChecker("broken", CheckerFunc(func(ctx context.Context) error {
		return errors.New("connection refused")
	}))

	resp := svc.CheckAllHealth(context.Background())

	assert.Equal(t, "unhealthy", resp.Status)
	assert.Equal(t, "healthy", resp.Dependencies["postgres"].Status)
	assert.Equal(t, "healthy", resp.Dependencies["nats"].Status)
	assert.Equal(t, "connection refused", resp.Dependencies["broken"].Error)
}

func TestRedisHealthChecker(t *testing.T) {
	mr := miniredis.RunT(t)
	client := &database.RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	checker := NewRedisHealthChecker(client)

	assert.NoError(t, checker.CheckHealth(context.Background()))

	mr.Close()
	assert.Error(t, checker.CheckHealth(context.Background()))
}

func TestEndpoints(t *testing.T) {
	e := echo.New()
	svc := NewHealthService()
	RegisterHealthEndpoints(e, "dispatch", "1.2.0", svc)

	rec := serve(e, "/ping")
	require.Equal(t, http.StatusOK, rec.Code)
	var info BuildInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, "dispatch", info.ServiceName)
	assert.Equal(t, "1.2.0", info.Version)

	assert.Equal(t, http.StatusOK, serve(e, "/health").Code)
	assert.Equal(t, http.StatusOK, serve(e, "/health/live").Code)
	assert.Equal(t, http.StatusOK, serve(e, "/health/ready").Code)
	assert.Equal(t, http.StatusOK, serve(e, "/health/detailed").Code)

	svc.AddChecker("redis", CheckerFunc(func(ctx context.Context) error { return errors.New("down") }))

	assert.Equal(t, http.StatusServiceUnavailable, serve(e, "/health/ready").Code)
	rec = serve(e, "/health/detailed")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var detailed HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detailed))
	assert.Equal(t, "unhealthy", detailed.Dependencies["redis"].Status)
	assert.Equal(t, "1.2.0", detailed.Version)
}
