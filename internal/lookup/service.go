// Package lookup orchestrates a single weather lookup: input validation,
// provider fetch, condition mapping and alert evaluation.
package lookup

import (
	"context"
	"errors"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/avolosh/weather-lookup/internal/alerts"
	"github.com/avolosh/weather-lookup/internal/conditions"
	"github.com/avolosh/weather-lookup/internal/config"
	"github.com/avolosh/weather-lookup/internal/provider"
	"github.com/avolosh/weather-lookup/pkg/telemetry"
)

var ErrEmptyCity = errors.New("city must not be empty")

// Result is everything the view needs for one lookup.
type Result struct {
	Reading provider.Reading `json:"reading"`
	Style   conditions.Style `json:"style"`
	Alert   *alerts.Alert    `json:"alert,omitempty"`
}

// MetricsRecorder receives lookup-level counters. A nil recorder is fine.
type MetricsRecorder interface {
	RecordCacheHit(ctx context.Context, cacheType string)
	RecordCacheMiss(ctx context.Context, cacheType string)
	RecordProviderCall(ctx context.Context, providerName string, success bool)
	RecordLookup(ctx context.Context, outcome string)
}

type Service struct {
	client     provider.Client
	cache      *readingCache
	thresholds alerts.Thresholds
	logger     *zap.Logger
	tele       *telemetry.Telemetry
	metrics    MetricsRecorder
}

func NewService(cfg *config.Config, client provider.Client, logger *zap.Logger, tele *telemetry.Telemetry) *Service {
	return &Service{
		client: client,
		cache:  newReadingCache(cfg.Lookup.CacheTTLDuration()),
		thresholds: alerts.Thresholds{
			HeatTemp: cfg.Alerts.HeatTemp,
			ColdTemp: cfg.Alerts.ColdTemp,
			SunTemp:  cfg.Alerts.SunTemp,
		},
		logger: logger,
		tele:   tele,
	}
}

// SetMetricsRecorder sets the metrics recorder for the service.
func (s *Service) SetMetricsRecorder(metrics MetricsRecorder) {
	s.metrics = metrics
}

// Lookup performs one user-initiated lookup. A blank city is rejected
// before any request goes out. One call, no retries; the caller decides
// what to show on failure.
func (s *Service) Lookup(ctx context.Context, city string) (*Result, error) {
	tracer := s.tele.GetTracer()
	ctx, span := tracer.Start(ctx, "lookup.Lookup")
	defer span.End()

	reqLogger := s.requestLogger(ctx)

	city = strings.TrimSpace(city)
	if city == "" {
		span.SetAttributes(attribute.Bool("success", false))
		return nil, ErrEmptyCity
	}

	span.SetAttributes(attribute.String("city", city))

	key := cacheKey(city)
	if cached := s.cache.get(key); cached != nil {
		reqLogger.Debug("Cache hit", zap.String("city", city))
		span.SetAttributes(attribute.Bool("cache_hit", true))

		if s.metrics != nil {
			s.metrics.RecordCacheHit(ctx, "reading")
			s.metrics.RecordLookup(ctx, "success")
		}

		return cached, nil
	}

	span.SetAttributes(attribute.Bool("cache_hit", false))

	if s.metrics != nil {
		s.metrics.RecordCacheMiss(ctx, "reading")
	}

	reading, err := s.client.Fetch(ctx, city)

	if s.metrics != nil {
		s.metrics.RecordProviderCall(ctx, s.client.Name(), err == nil)
	}

	if err != nil {
		span.SetAttributes(attribute.Bool("success", false))

		outcome := "error"
		if errors.Is(err, provider.ErrCityNotFound) {
			outcome = "not_found"
			reqLogger.Info("City not found", zap.String("city", city))
		} else {
			reqLogger.Error("Provider fetch failed",
				zap.String("city", city),
				zap.Error(err))
		}

		if s.metrics != nil {
			s.metrics.RecordLookup(ctx, outcome)
		}

		return nil, err
	}

	result := &Result{
		Reading: reading,
		Style:   conditions.Categorize(reading.ConditionCode),
		Alert:   alerts.Evaluate(reading.Temperature, conditions.Group(reading.ConditionCode), s.thresholds),
	}

	s.cache.set(key, result)

	span.SetAttributes(
		attribute.Bool("success", true),
		attribute.String("category", result.Style.Category),
		attribute.Bool("alert", result.Alert != nil),
	)

	if s.metrics != nil {
		s.metrics.RecordLookup(ctx, "success")
	}

	reqLogger.Info("Lookup completed",
		zap.String("city", reading.City),
		zap.Float64("temperature", reading.Temperature),
		zap.String("category", result.Style.Category),
		zap.Bool("alert", result.Alert != nil))

	return result, nil
}

// ClearCache drops all cached readings.
func (s *Service) ClearCache() {
	s.cache.clear()
}

func (s *Service) requestLogger(ctx context.Context) *zap.Logger {
	if reqID, ok := ctx.Value("request_id").(string); ok && reqID != "" {
		return s.logger.With(zap.String("request_id", reqID))
	}
	return s.logger
}
