package server

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/avolosh/weather-lookup/internal/config"
	"github.com/avolosh/weather-lookup/internal/lookup"
	"github.com/avolosh/weather-lookup/internal/provider"
	"github.com/avolosh/weather-lookup/internal/server/handlers"
	"github.com/avolosh/weather-lookup/internal/server/middlewares"
	"github.com/avolosh/weather-lookup/pkg/telemetry"
)

type Server struct {
	engine  *gin.Engine
	server  *http.Server
	service *lookup.Service
	logger  *zap.Logger
	tele    *telemetry.Telemetry
}

var (
	instance *Server
	once     sync.Once
)

func NewServer(logger *zap.Logger, tele *telemetry.Telemetry) *Server {
	once.Do(func() {
		cfg := config.GetConfig()

		client := provider.NewBreakerClient("openweathermap",
			provider.NewOpenWeatherClient(cfg.Provider, nil, logger, tele))
		service := lookup.NewService(cfg, client, logger, tele)

		gin.SetMode(gin.ReleaseMode)
		engine := gin.New()

		metricsMiddleware := middlewares.NewMetricsMiddleware()

		engine.Use(middlewares.RequestIDMiddleware())
		engine.Use(middlewares.LoggingMiddleware(logger, true))
		engine.Use(middlewares.RecoveryMiddleware(logger, true))
		engine.Use(middlewares.TelemetryMiddleware(tele))
		engine.Use(metricsMiddleware.Handler())

		instance = &Server{
			engine:  engine,
			service: service,
			logger:  logger,
			tele:    tele,
		}

		instance.setupRoutes(metricsMiddleware)
	})

	return instance
}

func (s *Server) setupRoutes(metricsMiddleware *middlewares.MetricsMiddleware) {
	metricsHandler := handlers.NewMetricsHandler(s.logger, metricsMiddleware.GetHTTPMetrics())
	s.service.SetMetricsRecorder(metricsHandler)

	// The lookup page and its endpoint
	s.engine.GET("/", handlers.NewIndexHandler(s.logger).Index)
	s.engine.GET("/weather", handlers.NewWeatherHandler(s.service, s.logger).GetWeather)

	// Health endpoints (Kubernetes friendly)
	healthHandler := handlers.NewHealthHandler(s.logger)
	s.engine.GET("/health", healthHandler.Health)
	s.engine.GET("/health/live", healthHandler.Liveness)
	s.engine.GET("/health/ready", healthHandler.Readiness)

	// Monitoring endpoints
	s.engine.GET("/metrics", metricsHandler.ServeMetrics)
}

func (s *Server) Start() error {
	cfg := config.GetConfig()

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      s.engine,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	s.logger.Info("Starting server", zap.String("addr", s.server.Addr))
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}

	return s.server.Shutdown(ctx)
}
