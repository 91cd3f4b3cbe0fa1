package infrastructure

import (
	"context"

	"skycast.app/internal/ports"
)

// SystemHealthChecker aggregates all health checks
type SystemHealthChecker struct {
	weatherAPIChecker ports.HealthChecker
	geocoderChecker   ports.HealthChecker
	configProvider    ports.ConfigProvider
}

// SystemHealthCheckerConfig holds the configuration for creating a system health checker
type SystemHealthCheckerConfig struct {
	WeatherAPIChecker ports.HealthChecker
	GeocoderChecker   ports.HealthChecker
	ConfigProvider    ports.ConfigProvider
}

// NewSystemHealthChecker creates a new system health checker
func NewSystemHealthChecker(config SystemHealthCheckerConfig) *SystemHealthChecker {
	return &SystemHealthChecker{
		weatherAPIChecker: config.WeatherAPIChecker,
		geocoderChecker:   config.GeocoderChecker,
		configProvider:    config.ConfigProvider,
	}
}

// CheckAll performs health checks on all components
func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	results := make(map[string]ports.HealthStatus)

	if s.weatherAPIChecker != nil {
		results["weatherAPI"] = s.weatherAPIChecker.Check(ctx)
	}

	if s.geocoderChecker != nil {
		results["geocoder"] = s.geocoderChecker.Check(ctx)
	}

	if s.configProvider != nil {
		providerConfig := s.configProvider.GetProviderConfig()
		results["config"] = ports.HealthStatus{
			Component: "config",
			Status:    "healthy",
			Details: map[string]interface{}{
				"baseURL":        providerConfig.BaseURL,
				"geoBaseURL":     providerConfig.GeoBaseURL,
				"requestTimeout": providerConfig.RequestTimeout.String(),
			},
		}
	}

	return results
}
