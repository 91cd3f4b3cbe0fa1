package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"skycast.app/internal/adapters/api"
	"skycast.app/internal/adapters/infrastructure"
	"skycast.app/internal/config"
	"skycast.app/internal/core/weather"
	"skycast.app/internal/ports"
)

type Application struct {
	config *config.Config

	// Use Cases
	weatherUseCase *weather.UseCase

	// Adapters
	httpAdapter *api.HTTPServerAdapter

	// Infrastructure
	container *DependencyContainer
	ports     *ports.ApplicationPorts
}

func NewApplication() (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	container, err := NewDependencyContainer(cfg, DependencyOptions{})
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	return NewApplicationWithDependencies(cfg, container)
}

// NewApplicationWithDependencies creates an application with provided dependencies (for testing)
func NewApplicationWithDependencies(cfg *config.Config, container *DependencyContainer) (*Application, error) {
	app := &Application{
		config:    cfg,
		container: container,
		ports:     container.ApplicationPorts(),
	}

	if err := app.initializeUseCases(); err != nil {
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializeUseCases() error {
	a.ports.Logger.Info("Initializing use cases...")

	weatherUseCase, err := weather.NewUseCase(weather.UseCaseDependencies{
		WeatherProvider: a.ports.WeatherProvider,
		Geocoder:        a.ports.Geocoder,
		Logger:          a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create weather use case: %w", err)
	}
	a.weatherUseCase = weatherUseCase

	return nil
}

func (a *Application) initializeAdapters() error {
	a.ports.Logger.Info("Initializing adapters...")

	serverConfig := a.ports.ConfigProvider.GetServerConfig()
	gin.SetMode(serverConfig.GinMode)

	systemHealthChecker := infrastructure.NewSystemHealthChecker(infrastructure.SystemHealthCheckerConfig{
		WeatherAPIChecker: infrastructure.NewWeatherAPIHealthChecker(a.ports.WeatherProvider, a.ports.ConfigProvider.GetProviderConfig()),
		GeocoderChecker:   infrastructure.NewGeocoderHealthChecker(a.ports.Geocoder),
		ConfigProvider:    a.ports.ConfigProvider,
	})

	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		Config:         api.ServerConfig{Port: serverConfig.Port},
		WeatherUseCase: a.weatherUseCase,
		Metrics:        a.container.MetricsCollector(),
		HealthChecker:  systemHealthChecker,
		Logger:         a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}
	a.httpAdapter = httpAdapter

	return nil
}

func (a *Application) Start(ctx context.Context) error {
	a.ports.Logger.Info("Starting application...",
		ports.F("provider", a.ports.WeatherProvider.GetProviderName()))

	if err := a.httpAdapter.Start(ctx); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}
	return nil
}

func (a *Application) Shutdown(ctx context.Context) error {
	a.ports.Logger.Info("Shutting down application...")

	if err := a.httpAdapter.Shutdown(ctx); err != nil {
		a.ports.Logger.Error("Error shutting down HTTP server", ports.F("error", err))
		return fmt.Errorf("shutdown HTTP server: %w", err)
	}

	a.ports.Logger.Info("Application shutdown complete")
	if err := a.container.Close(); err != nil {
		return fmt.Errorf("close dependencies: %w", err)
	}
	return nil
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.httpAdapter.GetRouter()
}

// GetWeatherUseCase returns the weather use case for testing
func (a *Application) GetWeatherUseCase() *weather.UseCase {
	return a.weatherUseCase
}
