package weather

import (
	"context"
	"strings"
	"time"

	"skycast.app/internal/ports"
	"skycast.app/pkg/errors"
)

// Mapper turns current-weather payloads into WeatherInfo
type Mapper struct {
	geocoder ports.Geocoder
	logger   ports.Logger
	now      func() time.Time
	location *time.Location
}

// MapperOptions holds the dependencies of a Mapper. Geocoder may be nil.
type MapperOptions struct {
	Geocoder ports.Geocoder
	Logger   ports.Logger
	Now      func() time.Time
	Location *time.Location
}

// NewMapper creates a new mapper, defaulting the clock to time.Now and the location to time.Local
func NewMapper(opts MapperOptions) *Mapper {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Logger == nil {
		opts.Logger = nopLogger{}
	}

	return &Mapper{
		geocoder: opts.Geocoder,
		logger:   opts.Logger,
		now:      opts.Now,
		location: opts.Location,
	}
}

// ToWeatherInfo maps a payload, failing with a provider error when the provider
// marked it as failed, or the condition list is empty, or the main block is missing.
func (m *Mapper) ToWeatherInfo(ctx context.Context, coord ports.Coordinate, payload *ports.CurrentWeatherPayload) (*WeatherInfo, error) {
	if payload == nil {
		return nil, errors.NewProviderError(500, "empty payload")
	}
	if payload.Cod != 200 || len(payload.Weather) == 0 || payload.Main == nil {
		return nil, errors.NewProviderError(int(payload.Cod), payload.Message.String())
	}

	condition := payload.Weather[0]
	main := payload.Main
	isDay := isDayIcon(condition.Icon)

	visibility := DefaultVisibility
	if payload.Visibility != nil {
		visibility = *payload.Visibility
	}

	var windSpeed float64
	if payload.Wind != nil {
		windSpeed = payload.Wind.Speed
	}

	var clouds int
	if payload.Clouds != nil {
		clouds = payload.Clouds.All
	}

	now := m.now().In(m.location)

	return &WeatherInfo{
		LocationName:     m.resolveLocationName(ctx, coord, payload.Name),
		Icon:             IconForCode(condition.ID, isDay),
		IconCode:         condition.Icon,
		Condition:        condition.Main,
		Description:      condition.Description,
		Temperature:      roundHalfUp(main.Temp),
		FeelsLike:        main.FeelsLike,
		FeelsLikeDisplay: roundHalfUp(main.FeelsLike),
		DayOfWeek:        now.Weekday().String(),
		IsDay:            isDay,
		Humidity:         main.Humidity,
		HumidityLabel:    HumidityDescription(main.Humidity),
		WindSpeed:        windSpeed,
		Pressure:         main.Pressure,
		Visibility:       visibility,
		Clouds:           clouds,
		RainProbability:  EstimateRainProbability(condition.ID, main.Humidity, clouds),
		UVIndex:          EstimateUVIndex(condition.ID, clouds, isDay),
		AirQuality:       EstimateAirQuality(main.Temp, coord.Latitude, now.Month()),
	}, nil
}

func (m *Mapper) resolveLocationName(ctx context.Context, coord ports.Coordinate, name string) string {
	if strings.TrimSpace(name) != "" {
		return name
	}
	if m.geocoder == nil {
		return UnknownLocation
	}

	place, err := m.geocoder.ReverseLookup(ctx, coord)
	if err != nil {
		m.logger.Warn("Reverse geocoding failed",
			ports.F("lat", coord.Latitude),
			ports.F("lon", coord.Longitude),
			ports.F("error", err))
		return UnknownLocation
	}
	if place == nil || strings.TrimSpace(place.Name) == "" {
		return UnknownLocation
	}

	return place.Name
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...ports.Field) {}
func (nopLogger) Info(string, ...ports.Field)  {}
func (nopLogger) Warn(string, ...ports.Field)  {}
func (nopLogger) Error(string, ...ports.Field) {}
