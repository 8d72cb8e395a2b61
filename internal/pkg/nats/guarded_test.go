package nats

import (
	"errors"
	"testing"
	"time"

	"github.com/ciatoslog/dispatch/internal/pkg/circuitbreaker"
	"github.com/stretchr/testify/assert"
)

type flakyPublisher struct {
	err   error
	calls int
}

func (f *flakyPublisher) Publish(string, []byte) error {
	f.calls++
	return f.err
}

func TestGuardedPublisher_FailsFastWhenOpen(t *testing.T) {
	next := &flakyPublisher{err: errors.New("nats: connection closed")}
	breaker := circuitbreaker.New(circuitbreaker.Config{Name: "nats-events", FailureThreshold: 2, OpenTimeout: time.Hour})
	p := NewGuardedPublisher(next, breaker)

	assert.Error(t, p.Publish("load.created", []byte("{}")))
	assert.Error(t, p.Publish("load.created", []byte("{}")))
	assert.ErrorIs(t, p.Publish("load.created", []byte("{}")), circuitbreaker.ErrOpen)

	assert.Equal(t, 2, next.calls)
	assert.Equal(t, circuitbreaker.StateOpen, breaker.State())
}

func TestGuardedPublisher_PassesThrough(t *testing.T) {
	next := &flakyPublisher{}
	p := NewGuardedPublisher(next, circuitbreaker.New(circuitbreaker.DefaultConfig("nats-events")))

	assert.NoError(t, p.Publish("driver.status_changed", []byte("{}")))
	assert.Equal(t, 1, next.calls)
}
