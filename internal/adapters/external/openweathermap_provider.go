package external

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"skycast.app/internal/ports"
)

const (
	openWeatherMapBaseURL  = "https://api.openweathermap.org/data/2.5"
	currentWeatherEndpoint = "/weather"
	forecastEndpoint       = "/forecast"

	// Cod used for failures that never reached the provider or could not be read
	syntheticFailureCode = 500
)

// OpenWeatherMapProviderAdapter implements WeatherProvider port for OpenWeatherMap.
// It never returns errors; failures come back as payloads with a non-200 cod.
type OpenWeatherMapProviderAdapter struct {
	apiKey string
	client *resty.Client
	logger ports.Logger
}

// OpenWeatherMapProviderParams holds parameters for creating OpenWeatherMap provider
type OpenWeatherMapProviderParams struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
	Logger  ports.Logger
}

// NewOpenWeatherMapProviderAdapter creates a new OpenWeatherMap provider adapter
func NewOpenWeatherMapProviderAdapter(params OpenWeatherMapProviderParams) *OpenWeatherMapProviderAdapter {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = openWeatherMapBaseURL
	}
	logger := params.Logger
	if logger == nil {
		logger = nopLogger{}
	}

	return &OpenWeatherMapProviderAdapter{
		apiKey: params.APIKey,
		client: newRestyClient(baseURL, params.Timeout, logger),
		logger: logger,
	}
}

// FetchCurrentWeather retrieves current weather for a coordinate
func (p *OpenWeatherMapProviderAdapter) FetchCurrentWeather(ctx context.Context, coord ports.Coordinate) *ports.CurrentWeatherPayload {
	resp, err := p.get(ctx, currentWeatherEndpoint, coord)
	if err != nil {
		return &ports.CurrentWeatherPayload{
			Cod:     syntheticFailureCode,
			Message: ports.FlexString("Network error: " + err.Error()),
			Failure: ports.FailureTransport,
		}
	}

	if !resp.IsSuccess() {
		payload := &ports.CurrentWeatherPayload{}
		if err := json.Unmarshal(resp.Body(), payload); err != nil {
			payload = &ports.CurrentWeatherPayload{Message: ports.FlexString(httpErrorMessage(resp))}
		}
		if payload.Cod == 0 {
			payload.Cod = ports.StatusCode(resp.StatusCode())
		}
		payload.Failure = ports.FailureProvider
		return payload
	}

	payload := &ports.CurrentWeatherPayload{Cod: 200}
	if err := json.Unmarshal(resp.Body(), payload); err != nil {
		p.logger.Warn("Failed to decode OpenWeatherMap response",
			ports.F("endpoint", currentWeatherEndpoint),
			ports.F("error", err))
		return &ports.CurrentWeatherPayload{
			Cod:     syntheticFailureCode,
			Message: ports.FlexString("Error parsing response: " + err.Error()),
			Failure: ports.FailureDecode,
		}
	}
	if !payload.Succeeded() {
		payload.Failure = ports.FailureProvider
	}

	return payload
}

// FetchForecast retrieves the 5-day/3-hour forecast for a coordinate
func (p *OpenWeatherMapProviderAdapter) FetchForecast(ctx context.Context, coord ports.Coordinate) *ports.ForecastPayload {
	resp, err := p.get(ctx, forecastEndpoint, coord)
	if err != nil {
		return &ports.ForecastPayload{
			Cod:     ports.FlexString(strconv.Itoa(syntheticFailureCode)),
			Message: ports.FlexString("Network error: " + err.Error()),
			Failure: ports.FailureTransport,
		}
	}

	if !resp.IsSuccess() {
		payload := &ports.ForecastPayload{}
		if err := json.Unmarshal(resp.Body(), payload); err != nil {
			payload = &ports.ForecastPayload{Message: ports.FlexString(httpErrorMessage(resp))}
		}
		if payload.Cod == "" {
			payload.Cod = ports.FlexString(strconv.Itoa(resp.StatusCode()))
		}
		payload.Failure = ports.FailureProvider
		return payload
	}

	payload := &ports.ForecastPayload{}
	if err := json.Unmarshal(resp.Body(), payload); err != nil {
		p.logger.Warn("Failed to decode OpenWeatherMap response",
			ports.F("endpoint", forecastEndpoint),
			ports.F("error", err))
		return &ports.ForecastPayload{
			Cod:     ports.FlexString(strconv.Itoa(syntheticFailureCode)),
			Message: ports.FlexString("Error parsing response: " + err.Error()),
			Failure: ports.FailureDecode,
		}
	}
	if !payload.Succeeded() {
		payload.Failure = ports.FailureProvider
	}

	return payload
}

// GetProviderName returns the name of this weather provider
func (p *OpenWeatherMapProviderAdapter) GetProviderName() string {
	return "openweathermap"
}

func (p *OpenWeatherMapProviderAdapter) get(ctx context.Context, endpoint string, coord ports.Coordinate) (*resty.Response, error) {
	return p.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"lat":   formatCoordinate(coord.Latitude),
			"lon":   formatCoordinate(coord.Longitude),
			"appid": p.apiKey,
			"units": "metric",
		}).
		Get(endpoint)
}

func httpErrorMessage(resp *resty.Response) string {
	text := http.StatusText(resp.StatusCode())
	if text == "" {
		text = fmt.Sprintf("status %d", resp.StatusCode())
	}
	return "HTTP Error: " + text
}
