package external

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"skycast.app/internal/ports"
	"skycast.app/pkg/errors"
)

const (
	openWeatherMapGeoBaseURL = "https://api.openweathermap.org/geo/1.0"
	reverseEndpoint          = "/reverse"
	directEndpoint           = "/direct"
	maxDirectResults         = 5
)

// OpenWeatherMapGeocoderAdapter implements the Geocoder port on the OpenWeatherMap geocoding API
type OpenWeatherMapGeocoderAdapter struct {
	apiKey string
	client *resty.Client
	logger ports.Logger
}

// OpenWeatherMapGeocoderParams holds parameters for creating the geocoder
type OpenWeatherMapGeocoderParams struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
	Logger  ports.Logger
}

// NewOpenWeatherMapGeocoderAdapter creates a new geocoder adapter
func NewOpenWeatherMapGeocoderAdapter(params OpenWeatherMapGeocoderParams) *OpenWeatherMapGeocoderAdapter {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = openWeatherMapGeoBaseURL
	}
	logger := params.Logger
	if logger == nil {
		logger = nopLogger{}
	}

	return &OpenWeatherMapGeocoderAdapter{
		apiKey: params.APIKey,
		client: newRestyClient(baseURL, params.Timeout, logger),
		logger: logger,
	}
}

// ReverseLookup returns the nearest named place, or nil when there is none
func (g *OpenWeatherMapGeocoderAdapter) ReverseLookup(ctx context.Context, coord ports.Coordinate) (*ports.GeoPlace, error) {
	places, err := g.fetch(ctx, reverseEndpoint, map[string]string{
		"lat":   formatCoordinate(coord.Latitude),
		"lon":   formatCoordinate(coord.Longitude),
		"limit": "1",
	})
	if err != nil {
		return nil, err
	}

	if len(places) == 0 {
		g.logger.Debug("No place found for coordinate",
			ports.F("lat", coord.Latitude),
			ports.F("lon", coord.Longitude))
		return nil, nil
	}

	return &places[0], nil
}

// Search returns up to limit places matching the query. limit is capped at 5.
func (g *OpenWeatherMapGeocoderAdapter) Search(ctx context.Context, query string, limit int) ([]ports.GeoPlace, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []ports.GeoPlace{}, nil
	}
	if limit <= 0 || limit > maxDirectResults {
		limit = maxDirectResults
	}

	places, err := g.fetch(ctx, directEndpoint, map[string]string{
		"q":     query,
		"limit": strconv.Itoa(limit),
	})
	if err != nil {
		return nil, err
	}

	if len(places) > limit {
		places = places[:limit]
	}
	return places, nil
}

func (g *OpenWeatherMapGeocoderAdapter) fetch(ctx context.Context, endpoint string, params map[string]string) ([]ports.GeoPlace, error) {
	resp, err := g.client.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetQueryParam("appid", g.apiKey).
		Get(endpoint)
	if err != nil {
		return nil, errors.NewExternalAPIError("geocoding request failed", err)
	}

	if !resp.IsSuccess() {
		return nil, errors.NewExternalAPIError(fmt.Sprintf("geocoding API returned status %d", resp.StatusCode()), nil)
	}

	var places []ports.GeoPlace
	if err := json.Unmarshal(resp.Body(), &places); err != nil {
		return nil, errors.NewExternalAPIError("failed to decode geocoding response", err)
	}

	return places, nil
}
