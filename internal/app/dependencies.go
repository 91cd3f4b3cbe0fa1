package app

import (
	"github.com/prometheus/client_golang/prometheus"

	"skycast.app/internal/adapters/external"
	"skycast.app/internal/adapters/infrastructure"
	"skycast.app/internal/config"
	"skycast.app/internal/ports"
	"skycast.app/pkg/errors"
	"skycast.app/pkg/logger"
)

// DependencyContainer builds and owns the adapters behind the application ports
type DependencyContainer struct {
	config     *config.Config
	registry   *prometheus.Registry
	metrics    *infrastructure.PrometheusMetricsCollector
	fileLogger *infrastructure.FileLoggerAdapter
	ports      *ports.ApplicationPorts
}

// DependencyOptions allows tests to inject a registry. A nil registry gets a fresh one.
type DependencyOptions struct {
	Registry *prometheus.Registry
}

func NewDependencyContainer(cfg *config.Config, opts DependencyOptions) (*DependencyContainer, error) {
	container := &DependencyContainer{
		config:   cfg,
		registry: opts.Registry,
	}

	if err := container.initializePorts(); err != nil {
		return nil, err
	}
	return container, nil
}

func (c *DependencyContainer) initializePorts() error {
	level := logger.ParseLevel(c.config.Log.Level)
	stdoutLogger := infrastructure.NewSlogLoggerAdapter(logger.NewWithLevel(level).Logger)

	var appLogger ports.Logger = stdoutLogger
	if c.config.Weather.EnableLogging && c.config.Weather.LogFilePath != "" {
		fileLogger, err := infrastructure.NewFileLoggerAdapter(c.config.Weather.LogFilePath, level)
		if err != nil {
			return errors.NewConfigurationError("failed to create file logger", err)
		}
		c.fileLogger = fileLogger
		appLogger = infrastructure.NewMultiLogger(stdoutLogger, fileLogger)
		stdoutLogger.Info("File logging enabled", ports.F("path", c.config.Weather.LogFilePath))
	}

	configProvider := infrastructure.NewConfigProviderAdapter(c.config)
	providerConfig := configProvider.GetProviderConfig()

	var weatherProvider ports.WeatherProvider = external.NewOpenWeatherMapProviderAdapter(external.OpenWeatherMapProviderParams{
		APIKey:  providerConfig.APIKey,
		BaseURL: providerConfig.BaseURL,
		Timeout: providerConfig.RequestTimeout,
		Logger:  appLogger,
	})

	c.metrics = infrastructure.NewPrometheusMetricsCollector(c.registry)
	if providerConfig.EnableMetrics {
		weatherProvider = external.NewWeatherProviderMetricsDecorator(weatherProvider, c.metrics)
	}
	if providerConfig.EnableLogging {
		weatherProvider = external.NewWeatherProviderLoggingDecorator(weatherProvider, appLogger)
		appLogger.Info("Weather provider logging enabled")
	}

	geocoder := external.NewOpenWeatherMapGeocoderAdapter(external.OpenWeatherMapGeocoderParams{
		APIKey:  providerConfig.APIKey,
		BaseURL: providerConfig.GeoBaseURL,
		Timeout: providerConfig.RequestTimeout,
		Logger:  appLogger,
	})

	c.ports = &ports.ApplicationPorts{
		WeatherProvider: weatherProvider,
		Geocoder:        geocoder,
		ConfigProvider:  configProvider,
		Metrics:         c.metrics,
		Logger:          appLogger,
	}
	return nil
}

// ApplicationPorts returns the wired ports
func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

// MetricsCollector returns the Prometheus collector shared by providers and the HTTP layer
func (c *DependencyContainer) MetricsCollector() *infrastructure.PrometheusMetricsCollector {
	return c.metrics
}

// Close releases resources held by the container
func (c *DependencyContainer) Close() error {
	if c.fileLogger != nil {
		return c.fileLogger.Close()
	}
	return nil
}
