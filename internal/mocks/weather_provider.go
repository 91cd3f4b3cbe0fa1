// Package mocks holds testify mocks for the ports package.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"skycast.app/internal/ports"
)

// WeatherProvider is a mock type for the WeatherProvider type
type WeatherProvider struct {
	mock.Mock
}

// FetchCurrentWeather provides a mock function with given fields: ctx, coord
func (m *WeatherProvider) FetchCurrentWeather(ctx context.Context, coord ports.Coordinate) *ports.CurrentWeatherPayload {
	ret := m.Called(ctx, coord)

	if rf, ok := ret.Get(0).(func(context.Context, ports.Coordinate) *ports.CurrentWeatherPayload); ok {
		return rf(ctx, coord)
	}
	if ret.Get(0) == nil {
		return nil
	}
	return ret.Get(0).(*ports.CurrentWeatherPayload)
}

// FetchForecast provides a mock function with given fields: ctx, coord
func (m *WeatherProvider) FetchForecast(ctx context.Context, coord ports.Coordinate) *ports.ForecastPayload {
	ret := m.Called(ctx, coord)

	if rf, ok := ret.Get(0).(func(context.Context, ports.Coordinate) *ports.ForecastPayload); ok {
		return rf(ctx, coord)
	}
	if ret.Get(0) == nil {
		return nil
	}
	return ret.Get(0).(*ports.ForecastPayload)
}

// GetProviderName provides a mock function with no fields
func (m *WeatherProvider) GetProviderName() string {
	ret := m.Called()
	return ret.String(0)
}

// NewWeatherProvider creates a new instance of WeatherProvider. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewWeatherProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *WeatherProvider {
	m := &WeatherProvider{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
