package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/ciatoslog/dispatch/internal/pkg/logger"
	"github.com/ciatoslog/dispatch/internal/pkg/models"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freePort(t *testing.T) int {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port
}

func TestShutdownManager_ReverseOrderAndFailures(t *testing.T) {
	sm := NewShutdownManager(logger.NewNopLogger())
	var order []string

	sm.Register("postgres", func(ctx context.Context) error {
		order = append(order, "postgres")
		return nil
	})
	sm.Register("nats", func(ctx context.Context) error {
		order = append(order, "nats")
		return errors.New("drain timeout")
	})
	sm.Register("redis", func(ctx context.Context) error {
		order = append(order, "redis")
		return nil
	})

	failed := sm.Shutdown(context.Background())

	assert.Equal(t, 1, failed)
	assert.Equal(t, []string{"redis", "nats", "postgres"}, order)
}

func TestGracefulServer_RunStopsOnContext(t *testing.T) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })

	sm := NewShutdownManager(logger.NewNopLogger())
	closed := false
	sm.Register("journal", func(ctx context.Context) error {
		closed = true
		return nil
	})

	cfg := models.ServerConfig{Host: "127.0.0.1", Port: freePort(t), ShutdownTimeout: 5}
	srv := NewGracefulServer(e, logger.NewNopLogger(), cfg, sm)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	require.Eventually(t, func() bool {
		return e.ListenerAddr() != nil
	}, 2*time.Second, 10*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
	assert.True(t, closed)
}
