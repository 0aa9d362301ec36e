package provider

import (
	"context"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
)

const (
	breakerInterval = 30 * time.Second
	breakerTimeout  = 15 * time.Second

	consecutiveFailureLimit = 5
)

// BreakerClient wraps a Client with a circuit breaker. After repeated
// consecutive provider failures further calls fail fast until the breaker
// half-opens. Individual lookups are never retried.
type BreakerClient struct {
	name    string
	cb      *gobreaker.CircuitBreaker
	wrapped Client
}

func NewBreakerClient(name string, wrapped Client) *BreakerClient {
	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    breakerInterval,
		Timeout:     breakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= consecutiveFailureLimit
		},
	}
	return &BreakerClient{
		name:    name,
		cb:      gobreaker.NewCircuitBreaker(settings),
		wrapped: wrapped,
	}
}

func (b *BreakerClient) Name() string {
	return b.wrapped.Name()
}

func (b *BreakerClient) Fetch(ctx context.Context, city string) (Reading, error) {
	result, err := b.cb.Execute(func() (interface{}, error) {
		return b.wrapped.Fetch(ctx, city)
	})
	if err != nil {
		return Reading{}, fmt.Errorf("%s unavailable: %w", b.name, err)
	}
	reading, ok := result.(Reading)
	if !ok {
		return Reading{}, fmt.Errorf("%s returned an unexpected result", b.name)
	}
	return reading, nil
}
