// Package api provides HTTP adapters for the hexagonal architecture
// These adapters handle incoming HTTP requests and translate them to use cases
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"skycast.app/internal/core/weather"
	"skycast.app/internal/ports"
	errorspkg "skycast.app/pkg/errors"
)

const readHeaderTimeout = 5 * time.Second

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port int
}

// HTTPServerAdapter implements HTTP server using Gin framework
type HTTPServerAdapter struct {
	router         *gin.Engine
	server         *http.Server
	config         ServerConfig
	weatherUseCase WeatherUseCase
	metrics        HTTPMetrics
	healthChecker  ports.SystemHealthChecker
	logger         ports.Logger
}

// Use case interface that the HTTP adapter depends on
type WeatherUseCase interface {
	GetCurrentWeather(ctx context.Context, coord ports.Coordinate) (*weather.WeatherInfo, error)
	GetDailyForecast(ctx context.Context, coord ports.Coordinate) []weather.DailyForecastEntry
	GetOverview(ctx context.Context, coord ports.Coordinate) (*weather.Overview, error)
	SearchCities(ctx context.Context, query string) []weather.CitySearchResult
}

// HTTPMetrics records served requests and exposes the metrics endpoint
type HTTPMetrics interface {
	RecordHTTPRequest(route, method string, status int)
	Handler() http.Handler
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config         ServerConfig
	WeatherUseCase WeatherUseCase
	Metrics        HTTPMetrics
	HealthChecker  ports.SystemHealthChecker
	Logger         ports.Logger
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}

	if err := registerValidators(); err != nil {
		return nil, errorspkg.NewConfigurationError("register request validators", err)
	}
	router := gin.New()

	server := &HTTPServerAdapter{
		router:         router,
		config:         opts.Config,
		weatherUseCase: opts.WeatherUseCase,
		metrics:        opts.Metrics,
		healthChecker:  opts.HealthChecker,
		logger:         opts.Logger,
	}

	router.Use(gin.Recovery(), requestIDMiddleware(), server.requestLogger())
	server.setupRoutes()

	server.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", opts.Config.Port),
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}
	return server, nil
}

// Validate checks if all required dependencies are provided.
// Metrics and health checks are optional.
func (opts *ServerOptions) Validate() error {
	if opts.WeatherUseCase == nil {
		return errorspkg.NewValidationError("weather use case is required")
	}
	if opts.Logger == nil {
		return errorspkg.NewValidationError("logger is required")
	}
	return nil
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/weather", s.getWeather)
		api.GET("/forecast", s.getForecast)
		api.GET("/overview", s.getOverview)
		api.GET("/cities", s.searchCities)
	}

	if s.healthChecker != nil {
		s.router.GET("/health", s.getHealth)
	}
	if s.metrics != nil {
		s.router.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	}
}

// Start serves HTTP until Shutdown is called. A clean shutdown returns nil.
func (s *HTTPServerAdapter) Start(_ context.Context) error {
	s.logger.Info("Starting HTTP server", ports.F("port", s.config.Port))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server
func (s *HTTPServerAdapter) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

// GetRouter returns the router for testing purposes
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}
