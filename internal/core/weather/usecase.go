package weather

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"skycast.app/internal/ports"
	"skycast.app/pkg/errors"
	"skycast.app/pkg/validation"
)

type UseCase struct {
	weatherProvider ports.WeatherProvider
	geocoder        ports.Geocoder
	logger          ports.Logger
	mapper          *Mapper
	aggregator      *Aggregator
}

type UseCaseDependencies struct {
	WeatherProvider ports.WeatherProvider
	Geocoder        ports.Geocoder
	Logger          ports.Logger
	Now             func() time.Time
	Location        *time.Location
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.WeatherProvider == nil {
		return nil, errors.NewValidationError("weather provider is required")
	}
	if deps.Geocoder == nil {
		return nil, errors.NewValidationError("geocoder is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	return &UseCase{
		weatherProvider: deps.WeatherProvider,
		geocoder:        deps.Geocoder,
		logger:          deps.Logger,
		mapper: NewMapper(MapperOptions{
			Geocoder: deps.Geocoder,
			Logger:   deps.Logger,
			Now:      deps.Now,
			Location: deps.Location,
		}),
		aggregator: NewAggregator(AggregatorOptions{
			Now:      deps.Now,
			Location: deps.Location,
		}),
	}, nil
}

func (uc *UseCase) GetCurrentWeather(ctx context.Context, coord ports.Coordinate) (*WeatherInfo, error) {
	uc.logger.Debug("Getting current weather",
		ports.F("lat", coord.Latitude),
		ports.F("lon", coord.Longitude))

	payload := uc.weatherProvider.FetchCurrentWeather(ctx, coord)
	info, err := uc.mapper.ToWeatherInfo(ctx, coord, payload)
	if err != nil {
		uc.logger.Error("Failed to map current weather",
			ports.F("lat", coord.Latitude),
			ports.F("lon", coord.Longitude),
			ports.F("failure", failureOf(payload)),
			ports.F("error", err))
		return nil, err
	}

	uc.logger.Debug("Current weather retrieved successfully",
		ports.F("summary", info.String()))
	return info, nil
}

func (uc *UseCase) GetDailyForecast(ctx context.Context, coord ports.Coordinate) []DailyForecastEntry {
	payload := uc.weatherProvider.FetchForecast(ctx, coord)
	if !payload.Succeeded() {
		uc.logger.Warn("Forecast unavailable",
			ports.F("lat", coord.Latitude),
			ports.F("lon", coord.Longitude),
			ports.F("cod", forecastCod(payload)))
	}

	return uc.aggregator.ToDailyForecast(payload)
}

// GetOverview fetches current weather and forecast concurrently.
// A forecast failure degrades to an empty list, a current weather failure fails the call.
func (uc *UseCase) GetOverview(ctx context.Context, coord ports.Coordinate) (*Overview, error) {
	var (
		current  *WeatherInfo
		forecast []DailyForecastEntry
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		info, err := uc.GetCurrentWeather(gctx, coord)
		if err != nil {
			return err
		}
		current = info
		return nil
	})
	g.Go(func() error {
		forecast = uc.GetDailyForecast(gctx, coord)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Overview{Current: current, Forecast: forecast}, nil
}

// SearchCities never fails: geocoding errors yield an empty list
func (uc *UseCase) SearchCities(ctx context.Context, query string) []CitySearchResult {
	query, ok := validation.TrimAndValidate(query)
	if !ok {
		return []CitySearchResult{}
	}

	places, err := uc.geocoder.Search(ctx, query, MaxSearchResults)
	if err != nil {
		uc.logger.Warn("City search failed",
			ports.F("query", query),
			ports.F("error", err))
		return []CitySearchResult{}
	}

	if len(places) > MaxSearchResults {
		places = places[:MaxSearchResults]
	}

	results := make([]CitySearchResult, 0, len(places))
	for i, place := range places {
		results = append(results, CitySearchResult{
			ID:          i,
			Name:        place.Name,
			Country:     place.Country,
			State:       place.State,
			DisplayName: displayName(place.Name, place.State, place.Country),
			Latitude:    place.Lat,
			Longitude:   place.Lon,
		})
	}

	uc.logger.Debug("City search completed",
		ports.F("query", query),
		ports.F("results", len(results)))
	return results
}

func failureOf(payload *ports.CurrentWeatherPayload) string {
	if payload == nil {
		return ports.FailureTransport.String()
	}
	return payload.Failure.String()
}

func forecastCod(payload *ports.ForecastPayload) string {
	if payload == nil {
		return ""
	}
	return payload.Cod.String()
}
