package provider_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/avolosh/weather-lookup/internal/config"
	"github.com/avolosh/weather-lookup/internal/provider"
)

type mockHTTPClient struct {
	doFunc func(req *http.Request) (*http.Response, error)
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return m.doFunc(req)
}

func testProviderConfig() config.ProviderConfig {
	return config.ProviderConfig{
		BaseURL: "https://api.openweathermap.org/data/2.5",
		APIKey:  "mock_api_key",
		Units:   "metric",
		Timeout: 10,
	}
}

const londonResponse = `{
	"name": "London",
	"sys": {"country": "GB"},
	"main": {"temp": 18.5, "feels_like": 17.9, "humidity": 72},
	"wind": {"speed": 4.1},
	"weather": [{"id": 500, "main": "Rain", "description": "light rain"}]
}`

func TestFetch(t *testing.T) {
	mockClient := &mockHTTPClient{
		doFunc: func(req *http.Request) (*http.Response, error) {
			wantURL := "https://api.openweathermap.org/data/2.5/weather?appid=mock_api_key&q=London&units=metric"
			if req.URL.String() != wantURL {
				return nil, fmt.Errorf("unexpected URL: %s", req.URL.String())
			}
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(strings.NewReader(londonResponse)),
			}, nil
		},
	}

	client := provider.NewOpenWeatherClient(testProviderConfig(), mockClient, zap.NewNop(), nil)

	reading, err := client.Fetch(context.Background(), "London")
	require.NoError(t, err)
	assert.Equal(t, "London", reading.City)
	assert.Equal(t, "GB", reading.Country)
	assert.Equal(t, 18.5, reading.Temperature)
	assert.Equal(t, 17.9, reading.FeelsLike)
	assert.Equal(t, 72, reading.Humidity)
	assert.Equal(t, 4.1, reading.WindSpeed)
	assert.Equal(t, 500, reading.ConditionCode)
	assert.Equal(t, "Rain", reading.Condition)
	assert.Equal(t, "light rain", reading.Description)
}

func TestFetch_CityNotFound(t *testing.T) {
	mockClient := &mockHTTPClient{
		doFunc: func(req *http.Request) (*http.Response, error) {
			return &http.Response{
				StatusCode: http.StatusNotFound,
				Body:       io.NopCloser(strings.NewReader(`{"cod":"404","message":"city not found"}`)),
			}, nil
		},
	}

	client := provider.NewOpenWeatherClient(testProviderConfig(), mockClient, zap.NewNop(), nil)

	reading, err := client.Fetch(context.Background(), "Unknownville123")
	assert.ErrorIs(t, err, provider.ErrCityNotFound)
	assert.Equal(t, provider.Reading{}, reading)
}

func TestFetch_InvalidAPIKey(t *testing.T) {
	mockClient := &mockHTTPClient{
		doFunc: func(req *http.Request) (*http.Response, error) {
			return &http.Response{
				StatusCode: http.StatusUnauthorized,
				Body:       io.NopCloser(strings.NewReader(`{"cod":401,"message":"Invalid API key"}`)),
			}, nil
		},
	}

	client := provider.NewOpenWeatherClient(testProviderConfig(), mockClient, zap.NewNop(), nil)

	_, err := client.Fetch(context.Background(), "London")
	assert.ErrorIs(t, err, provider.ErrUnauthorized)
}

func TestFetch_ProviderError(t *testing.T) {
	mockClient := &mockHTTPClient{
		doFunc: func(req *http.Request) (*http.Response, error) {
			return &http.Response{
				StatusCode: http.StatusInternalServerError,
				Body:       io.NopCloser(strings.NewReader(`{"error":"internal server error"}`)),
			}, nil
		},
	}

	client := provider.NewOpenWeatherClient(testProviderConfig(), mockClient, zap.NewNop(), nil)

	_, err := client.Fetch(context.Background(), "London")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, provider.ErrCityNotFound)
}

func TestFetch_NetworkFailure(t *testing.T) {
	mockClient := &mockHTTPClient{
		doFunc: func(req *http.Request) (*http.Response, error) {
			return nil, fmt.Errorf("dial tcp: connection refused")
		},
	}

	client := provider.NewOpenWeatherClient(testProviderConfig(), mockClient, zap.NewNop(), nil)

	_, err := client.Fetch(context.Background(), "London")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "request failed")
}

func TestFetch_MalformedJSON(t *testing.T) {
	mockClient := &mockHTTPClient{
		doFunc: func(req *http.Request) (*http.Response, error) {
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(strings.NewReader(`{not json`)),
			}, nil
		},
	}

	client := provider.NewOpenWeatherClient(testProviderConfig(), mockClient, zap.NewNop(), nil)

	_, err := client.Fetch(context.Background(), "London")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "malformed JSON")
}

func TestFetch_MissingConditions(t *testing.T) {
	mockClient := &mockHTTPClient{
		doFunc: func(req *http.Request) (*http.Response, error) {
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(strings.NewReader(`{"name":"London","weather":[]}`)),
			}, nil
		},
	}

	client := provider.NewOpenWeatherClient(testProviderConfig(), mockClient, zap.NewNop(), nil)

	_, err := client.Fetch(context.Background(), "London")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "missing weather conditions")
}
