package external

import (
	"context"
	"time"

	"skycast.app/internal/ports"
)

// WeatherProviderLoggingDecorator decorates weather providers with structured logging
type WeatherProviderLoggingDecorator struct {
	provider ports.WeatherProvider
	logger   ports.Logger
}

// NewWeatherProviderLoggingDecorator creates a new logging decorator for weather providers
func NewWeatherProviderLoggingDecorator(provider ports.WeatherProvider, logger ports.Logger) ports.WeatherProvider {
	return &WeatherProviderLoggingDecorator{
		provider: provider,
		logger:   logger,
	}
}

// FetchCurrentWeather wraps the provider call with structured logging
func (d *WeatherProviderLoggingDecorator) FetchCurrentWeather(ctx context.Context, coord ports.Coordinate) *ports.CurrentWeatherPayload {
	providerName := d.provider.GetProviderName()
	d.logRequest(providerName, currentWeatherEndpoint, coord)

	startTime := time.Now()
	payload := d.provider.FetchCurrentWeather(ctx, coord)
	duration := time.Since(startTime)

	if !payload.Succeeded() {
		d.logFailure(providerName, currentWeatherEndpoint, coord, duration, failureFields(payload))
		return payload
	}

	d.logger.Info("Weather API request completed",
		ports.F("provider", providerName),
		ports.F("endpoint", currentWeatherEndpoint),
		ports.F("lat", coord.Latitude),
		ports.F("lon", coord.Longitude),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("cod", int(payload.Cod)),
		ports.F("location", payload.Name))

	return payload
}

// FetchForecast wraps the provider call with structured logging
func (d *WeatherProviderLoggingDecorator) FetchForecast(ctx context.Context, coord ports.Coordinate) *ports.ForecastPayload {
	providerName := d.provider.GetProviderName()
	d.logRequest(providerName, forecastEndpoint, coord)

	startTime := time.Now()
	payload := d.provider.FetchForecast(ctx, coord)
	duration := time.Since(startTime)

	if !payload.Succeeded() {
		d.logFailure(providerName, forecastEndpoint, coord, duration, forecastFailureFields(payload))
		return payload
	}

	d.logger.Info("Weather API request completed",
		ports.F("provider", providerName),
		ports.F("endpoint", forecastEndpoint),
		ports.F("lat", coord.Latitude),
		ports.F("lon", coord.Longitude),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("cod", payload.Cod.String()),
		ports.F("samples", len(payload.List)))

	return payload
}

// GetProviderName returns the name of the wrapped provider with logging indication
func (d *WeatherProviderLoggingDecorator) GetProviderName() string {
	return "logged(" + d.provider.GetProviderName() + ")"
}

func (d *WeatherProviderLoggingDecorator) logRequest(providerName, endpoint string, coord ports.Coordinate) {
	d.logger.Info("Weather API request started",
		ports.F("provider", providerName),
		ports.F("endpoint", endpoint),
		ports.F("lat", coord.Latitude),
		ports.F("lon", coord.Longitude),
		ports.F("event", "request"))
}

func (d *WeatherProviderLoggingDecorator) logFailure(providerName, endpoint string, coord ports.Coordinate, duration time.Duration, extra []ports.Field) {
	fields := []ports.Field{
		ports.F("provider", providerName),
		ports.F("endpoint", endpoint),
		ports.F("lat", coord.Latitude),
		ports.F("lon", coord.Longitude),
		ports.F("event", "error"),
		ports.F("duration_ms", duration.Milliseconds()),
	}
	d.logger.Error("Weather API request failed", append(fields, extra...)...)
}

func failureFields(payload *ports.CurrentWeatherPayload) []ports.Field {
	if payload == nil {
		return []ports.Field{ports.F("failure", ports.FailureTransport.String())}
	}
	return []ports.Field{
		ports.F("cod", int(payload.Cod)),
		ports.F("failure", payload.Failure.String()),
		ports.F("error", payload.Message.String()),
	}
}

func forecastFailureFields(payload *ports.ForecastPayload) []ports.Field {
	if payload == nil {
		return []ports.Field{ports.F("failure", ports.FailureTransport.String())}
	}
	return []ports.Field{
		ports.F("cod", payload.Cod.String()),
		ports.F("failure", payload.Failure.String()),
		ports.F("error", payload.Message.String()),
	}
}
