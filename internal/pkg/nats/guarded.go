package nats

import (
	"context"

	"github.com/ciatoslog/dispatch/internal/pkg/circuitbreaker"
)

// publisher is satisfied by *Client
type publisher interface {
	Publish(subject string, data []byte) error
}

// GuardedPublisher fails fast while the broker keeps rejecting publishes, so
// the retrying event emitters do not stall commands on a dead connection
type GuardedPublisher struct {
	next    publisher
	breaker *circuitbreaker.CircuitBreaker
}

// NewGuardedPublisher wraps next with breaker
func NewGuardedPublisher(next publisher, breaker *circuitbreaker.CircuitBreaker) *GuardedPublisher {
	return &GuardedPublisher{next: next, breaker: breaker}
}

// Publish sends data unless the breaker is open
func (g *GuardedPublisher) Publish(subject string, data []byte) error {
	return g.breaker.Execute(context.Background(), func(context.Context) error {
		return g.next.Publish(subject, data)
	})
}
