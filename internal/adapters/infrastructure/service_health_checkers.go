package infrastructure

import (
	"context"

	"skycast.app/internal/ports"
)

// WeatherAPIHealthChecker implements weather API health checking
type WeatherAPIHealthChecker struct {
	weatherProvider ports.WeatherProvider
	apiKeySet       bool
}

// NewWeatherAPIHealthChecker creates a new weather API health checker
func NewWeatherAPIHealthChecker(weatherProvider ports.WeatherProvider, config ports.ProviderConfig) *WeatherAPIHealthChecker {
	return &WeatherAPIHealthChecker{
		weatherProvider: weatherProvider,
		apiKeySet:       config.APIKey != "",
	}
}

// Check reports whether the provider is wired and has credentials.
// It does not call the provider, so a health check never spends API quota.
func (w *WeatherAPIHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "weatherAPI",
		Status:    "healthy",
		Details: map[string]interface{}{
			"apiKeyConfigured": w.apiKeySet,
		},
	}

	if w.weatherProvider == nil {
		status.Status = "unhealthy"
		status.Error = "weather provider is not available"
		return status
	}
	status.Details["provider"] = w.weatherProvider.GetProviderName()

	if !w.apiKeySet {
		status.Status = "unhealthy"
		status.Error = "API key is not configured"
	}

	return status
}

// GeocoderHealthChecker implements geocoder health checking
type GeocoderHealthChecker struct {
	geocoder ports.Geocoder
}

// NewGeocoderHealthChecker creates a new geocoder health checker
func NewGeocoderHealthChecker(geocoder ports.Geocoder) *GeocoderHealthChecker {
	return &GeocoderHealthChecker{geocoder: geocoder}
}

// Check reports geocoder availability. Geocoding is best effort, so a missing
// geocoder degrades the service instead of failing it.
func (g *GeocoderHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	if g.geocoder == nil {
		return ports.HealthStatus{
			Component: "geocoder",
			Status:    "degraded",
			Error:     "geocoder is not available",
		}
	}
	return ports.HealthStatus{Component: "geocoder", Status: "healthy"}
}
