package handlers

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/avolosh/weather-lookup/internal/server/middlewares"
)

// AppMetrics holds lookup-level counters. It satisfies the lookup
// service's MetricsRecorder interface.
type AppMetrics struct {
	mutex          sync.RWMutex
	cacheHits      int64
	cacheMisses    int64
	lookups        map[string]int64
	providerCalls  map[string]int64
	providerErrors map[string]int64
}

type MetricsHandler struct {
	logger      *zap.Logger
	httpMetrics *middlewares.HTTPMetrics
	appMetrics  *AppMetrics
}

func NewMetricsHandler(logger *zap.Logger, httpMetrics *middlewares.HTTPMetrics) *MetricsHandler {
	return &MetricsHandler{
		logger:      logger,
		httpMetrics: httpMetrics,
		appMetrics: &AppMetrics{
			lookups:        make(map[string]int64),
			providerCalls:  make(map[string]int64),
			providerErrors: make(map[string]int64),
		},
	}
}

// RecordCacheHit records a reading cache hit.
func (h *MetricsHandler) RecordCacheHit(ctx context.Context, cacheType string) {
	h.appMetrics.mutex.Lock()
	h.appMetrics.cacheHits++
	h.appMetrics.mutex.Unlock()
}

// RecordCacheMiss records a reading cache miss.
func (h *MetricsHandler) RecordCacheMiss(ctx context.Context, cacheType string) {
	h.appMetrics.mutex.Lock()
	h.appMetrics.cacheMisses++
	h.appMetrics.mutex.Unlock()
}

// RecordProviderCall records one outbound provider request.
func (h *MetricsHandler) RecordProviderCall(ctx context.Context, providerName string, success bool) {
	h.appMetrics.mutex.Lock()
	h.appMetrics.providerCalls[providerName]++
	if !success {
		h.appMetrics.providerErrors[providerName]++
	}
	h.appMetrics.mutex.Unlock()
}

// RecordLookup records one lookup by outcome (success, not_found, error).
func (h *MetricsHandler) RecordLookup(ctx context.Context, outcome string) {
	h.appMetrics.mutex.Lock()
	h.appMetrics.lookups[outcome]++
	h.appMetrics.mutex.Unlock()
}

// ServeMetrics exposes the counters in Prometheus text format.
func (h *MetricsHandler) ServeMetrics(c *gin.Context) {
	var b strings.Builder

	if h.httpMetrics != nil {
		requests, avgDuration, active := h.httpMetrics.Snapshot()

		b.WriteString("# HELP http_requests_total Total number of HTTP requests\n")
		b.WriteString("# TYPE http_requests_total counter\n")
		for key, count := range requests {
			b.WriteString("http_requests_total{route_status=\"" + key + "\"} " + strconv.FormatInt(count, 10) + "\n")
		}

		b.WriteString("\n# HELP http_request_duration_seconds_avg Average duration of HTTP requests\n")
		b.WriteString("# TYPE http_request_duration_seconds_avg gauge\n")
		b.WriteString("http_request_duration_seconds_avg " + strconv.FormatFloat(avgDuration, 'f', 6, 64) + "\n")

		b.WriteString("\n# HELP http_active_requests Number of active HTTP requests\n")
		b.WriteString("# TYPE http_active_requests gauge\n")
		b.WriteString("http_active_requests " + strconv.FormatInt(active, 10) + "\n")
	}

	h.appMetrics.mutex.RLock()

	b.WriteString("\n# HELP lookup_cache_hits_total Total reading cache hits\n")
	b.WriteString("# TYPE lookup_cache_hits_total counter\n")
	b.WriteString("lookup_cache_hits_total " + strconv.FormatInt(h.appMetrics.cacheHits, 10) + "\n")

	b.WriteString("\n# HELP lookup_cache_miss_total Total reading cache misses\n")
	b.WriteString("# TYPE lookup_cache_miss_total counter\n")
	b.WriteString("lookup_cache_miss_total " + strconv.FormatInt(h.appMetrics.cacheMisses, 10) + "\n")

	b.WriteString("\n# HELP lookups_total Total lookups by outcome\n")
	b.WriteString("# TYPE lookups_total counter\n")
	for outcome, count := range h.appMetrics.lookups {
		b.WriteString("lookups_total{outcome=\"" + outcome + "\"} " + strconv.FormatInt(count, 10) + "\n")
	}

	b.WriteString("\n# HELP provider_calls_total Total weather provider calls\n")
	b.WriteString("# TYPE provider_calls_total counter\n")
	for name, count := range h.appMetrics.providerCalls {
		b.WriteString("provider_calls_total{provider=\"" + name + "\"} " + strconv.FormatInt(count, 10) + "\n")
	}

	b.WriteString("\n# HELP provider_errors_total Total weather provider errors\n")
	b.WriteString("# TYPE provider_errors_total counter\n")
	for name, count := range h.appMetrics.providerErrors {
		b.WriteString("provider_errors_total{provider=\"" + name + "\"} " + strconv.FormatInt(count, 10) + "\n")
	}

	h.appMetrics.mutex.RUnlock()

	c.Header("Content-Type", "text/plain; version=0.0.4; charset=utf-8")
	c.String(200, b.String())
}
