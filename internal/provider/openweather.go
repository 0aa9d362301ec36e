// Package provider fetches current weather readings from OpenWeatherMap.
package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/avolosh/weather-lookup/internal/config"
	"github.com/avolosh/weather-lookup/pkg/telemetry"
)

var (
	ErrCityNotFound = errors.New("city not found")
	ErrUnauthorized = errors.New("provider rejected the API key")
)

// Reading is the parsed result of one successful lookup. It lives only
// until the next lookup replaces it.
type Reading struct {
	City          string  `json:"city"`
	Country       string  `json:"country"`
	Temperature   float64 `json:"temperature"`
	FeelsLike     float64 `json:"feels_like"`
	Humidity      int     `json:"humidity"`
	WindSpeed     float64 `json:"wind_speed"`
	ConditionCode int     `json:"condition_code"`
	Condition     string  `json:"condition"`
	Description   string  `json:"description"`
}

// Client fetches a current-weather reading for a city.
type Client interface {
	Fetch(ctx context.Context, city string) (Reading, error)
	Name() string
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type OpenWeatherClient struct {
	baseURL string
	apiKey  string
	units   string
	client  HTTPClient
	logger  *zap.Logger
	tele    *telemetry.Telemetry
}

type currentWeatherResponse struct {
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
	} `json:"sys"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Weather []struct {
		ID          int    `json:"id"`
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
}

// NewOpenWeatherClient builds a client for the current-weather endpoint.
// A nil httpClient gets a default one with the configured timeout.
func NewOpenWeatherClient(cfg config.ProviderConfig, httpClient HTTPClient, logger *zap.Logger, tele *telemetry.Telemetry) *OpenWeatherClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.TimeoutDuration()}
	}

	return &OpenWeatherClient{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		units:   cfg.Units,
		client:  httpClient,
		logger:  logger,
		tele:    tele,
	}
}

func (c *OpenWeatherClient) Name() string {
	return "openweathermap"
}

func (c *OpenWeatherClient) Fetch(ctx context.Context, city string) (Reading, error) {
	tracer := c.tele.GetTracer()
	ctx, span := tracer.Start(ctx, "openweathermap.Fetch")
	defer span.End()

	span.SetAttributes(
		attribute.String("city", city),
		attribute.String("provider", c.Name()),
	)

	u, err := url.Parse(fmt.Sprintf("%s/weather", c.baseURL))
	if err != nil {
		return Reading{}, err
	}

	q := u.Query()
	q.Set("q", city)
	q.Set("appid", c.apiKey)
	q.Set("units", c.units)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return Reading{}, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		span.SetAttributes(attribute.Bool("success", false))
		return Reading{}, fmt.Errorf("openweathermap request failed: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Warn("Failed to close response body", zap.Error(err))
		}
	}()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		span.SetAttributes(attribute.Bool("success", false))
		return Reading{}, fmt.Errorf("%w: %s", ErrCityNotFound, city)
	case http.StatusUnauthorized:
		span.SetAttributes(attribute.Bool("success", false))
		return Reading{}, ErrUnauthorized
	default:
		span.SetAttributes(attribute.Bool("success", false))
		return Reading{}, fmt.Errorf("openweathermap error: status %s", resp.Status)
	}

	var raw currentWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		span.SetAttributes(attribute.Bool("success", false))
		return Reading{}, fmt.Errorf("openweathermap returned malformed JSON: %w", err)
	}

	if len(raw.Weather) == 0 {
		span.SetAttributes(attribute.Bool("success", false))
		return Reading{}, errors.New("openweathermap response missing weather conditions")
	}

	span.SetAttributes(attribute.Bool("success", true))

	c.logger.Debug("Fetched current weather",
		zap.String("city", raw.Name),
		zap.Float64("temperature", raw.Main.Temp),
		zap.Int("condition_code", raw.Weather[0].ID))

	return Reading{
		City:          raw.Name,
		Country:       raw.Sys.Country,
		Temperature:   raw.Main.Temp,
		FeelsLike:     raw.Main.FeelsLike,
		Humidity:      raw.Main.Humidity,
		WindSpeed:     raw.Wind.Speed,
		ConditionCode: raw.Weather[0].ID,
		Condition:     raw.Weather[0].Main,
		Description:   raw.Weather[0].Description,
	}, nil
}
