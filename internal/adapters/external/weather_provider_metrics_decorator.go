package external

import (
	"context"
	"time"

	"skycast.app/internal/ports"
)

// WeatherProviderMetricsDecorator records call outcome and latency of every provider call
type WeatherProviderMetricsDecorator struct {
	provider ports.WeatherProvider
	metrics  ports.MetricsCollector
}

// NewWeatherProviderMetricsDecorator creates a new metrics decorator for weather providers
func NewWeatherProviderMetricsDecorator(provider ports.WeatherProvider, metrics ports.MetricsCollector) ports.WeatherProvider {
	return &WeatherProviderMetricsDecorator{
		provider: provider,
		metrics:  metrics,
	}
}

// FetchCurrentWeather records metrics around the wrapped call
func (d *WeatherProviderMetricsDecorator) FetchCurrentWeather(ctx context.Context, coord ports.Coordinate) *ports.CurrentWeatherPayload {
	startTime := time.Now()
	payload := d.provider.FetchCurrentWeather(ctx, coord)

	outcome := ports.FailureTransport
	if payload != nil {
		outcome = payload.Failure
	}
	d.metrics.RecordProviderCall(ctx, d.provider.GetProviderName(), "weather", outcome.String(), time.Since(startTime))

	return payload
}

// FetchForecast records metrics around the wrapped call
func (d *WeatherProviderMetricsDecorator) FetchForecast(ctx context.Context, coord ports.Coordinate) *ports.ForecastPayload {
	startTime := time.Now()
	payload := d.provider.FetchForecast(ctx, coord)

	outcome := ports.FailureTransport
	if payload != nil {
		outcome = payload.Failure
	}
	d.metrics.RecordProviderCall(ctx, d.provider.GetProviderName(), "forecast", outcome.String(), time.Since(startTime))

	return payload
}

// GetProviderName delegates to the wrapped provider
func (d *WeatherProviderMetricsDecorator) GetProviderName() string {
	return d.provider.GetProviderName()
}
