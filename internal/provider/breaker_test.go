package provider_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolosh/weather-lookup/internal/provider"
)

type stubClient struct {
	calls   int
	reading provider.Reading
	err     error
}

func (s *stubClient) Fetch(ctx context.Context, city string) (provider.Reading, error) {
	s.calls++
	return s.reading, s.err
}

func (s *stubClient) Name() string {
	return "stub"
}

func TestBreakerPassesThrough(t *testing.T) {
	stub := &stubClient{reading: provider.Reading{City: "London", Temperature: 12.0}}
	breaker := provider.NewBreakerClient("stub", stub)

	reading, err := breaker.Fetch(context.Background(), "London")
	require.NoError(t, err)
	assert.Equal(t, "London", reading.City)
	assert.Equal(t, "stub", breaker.Name())
}

func TestBreakerPreservesErrorTypes(t *testing.T) {
	stub := &stubClient{err: provider.ErrCityNotFound}
	breaker := provider.NewBreakerClient("stub", stub)

	_, err := breaker.Fetch(context.Background(), "Unknownville123")
	assert.ErrorIs(t, err, provider.ErrCityNotFound)
}

func TestBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	stub := &stubClient{err: errors.New("provider down")}
	breaker := provider.NewBreakerClient("stub", stub)

	for i := 0; i < 5; i++ {
		_, err := breaker.Fetch(context.Background(), "London")
		assert.Error(t, err)
	}
	assert.Equal(t, 5, stub.calls)

	// Breaker is open now; the wrapped client must not be called again.
	_, err := breaker.Fetch(context.Background(), "London")
	assert.Error(t, err)
	assert.Equal(t, 5, stub.calls)
}
