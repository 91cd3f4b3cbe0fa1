package infrastructure

import (
	"time"

	"skycast.app/internal/config"
	"skycast.app/internal/ports"
)

// ConfigProviderAdapter implements the ConfigProvider port
type ConfigProviderAdapter struct {
	config *config.Config
}

// NewConfigProviderAdapter creates a new config provider adapter
func NewConfigProviderAdapter(cfg *config.Config) *ConfigProviderAdapter {
	return &ConfigProviderAdapter{
		config: cfg,
	}
}

// GetProviderConfig returns weather provider configuration
func (c *ConfigProviderAdapter) GetProviderConfig() ports.ProviderConfig {
	return ports.ProviderConfig{
		APIKey:         c.config.Weather.OpenWeatherMapKey,
		BaseURL:        c.config.Weather.OpenWeatherMapBaseURL,
		GeoBaseURL:     c.config.Weather.GeoBaseURL,
		RequestTimeout: time.Duration(c.config.Weather.RequestTimeoutSeconds) * time.Second,
		EnableLogging:  c.config.Weather.EnableLogging,
		EnableMetrics:  c.config.Weather.EnableMetrics,
		LogFilePath:    c.config.Weather.LogFilePath,
	}
}

// GetServerConfig returns server configuration
func (c *ConfigProviderAdapter) GetServerConfig() ports.ServerConfig {
	return ports.ServerConfig{
		Port:    c.config.Server.Port,
		GinMode: c.config.Server.GinMode,
	}
}
