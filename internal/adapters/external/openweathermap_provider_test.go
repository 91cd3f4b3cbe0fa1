package external

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skycast.app/internal/ports"
)

var testCoord = ports.Coordinate{Latitude: 50.45, Longitude: 30.52}

const currentWeatherBody = `{
	"coord": {"lon": 30.52, "lat": 50.45},
	"weather": [{"id": 800, "main": "Clear", "description": "clear sky", "icon": "01d"}],
	"base": "stations",
	"main": {"temp": 22.4, "feels_like": 21.9, "temp_min": 21.0, "temp_max": 23.5, "pressure": 1016, "humidity": 50},
	"visibility": 10000,
	"wind": {"speed": 3.6, "deg": 220},
	"clouds": {"all": 10},
	"dt": 1704888000,
	"sys": {"country": "UA", "sunrise": 1704865000, "sunset": 1704895000},
	"timezone": 7200,
	"id": 703448,
	"name": "Kyiv",
	"cod": 200
}`

const forecastBody = `{
	"cod": "200",
	"message": 0,
	"cnt": 2,
	"list": [
		{
			"dt": 1704952800,
			"main": {"temp": 1.5, "feels_like": -2.0, "temp_min": 0.4, "temp_max": 1.9, "pressure": 1020, "humidity": 80},
			"weather": [{"id": 600, "main": "Snow", "description": "light snow", "icon": "13d"}],
			"clouds": {"all": 90},
			"wind": {"speed": 4.1, "deg": 180},
			"visibility": 8000,
			"pop": 0.4,
			"snow": {"3h": 0.3},
			"sys": {"pod": "d"},
			"dt_txt": "2024-01-11 06:00:00"
		},
		{
			"dt": 1704963600,
			"main": {"temp": 2.5, "feels_like": -1.0, "temp_min": 2.0, "temp_max": 2.9, "pressure": 1019, "humidity": 75},
			"weather": [{"id": 804, "main": "Clouds", "description": "overcast clouds", "icon": "04d"}],
			"clouds": {"all": 100},
			"wind": {"speed": 3.0, "deg": 170},
			"visibility": 10000,
			"pop": 0,
			"sys": {"pod": "d"},
			"dt_txt": "2024-01-11 09:00:00"
		}
	],
	"city": {"id": 703448, "name": "Kyiv", "coord": {"lat": 50.45, "lon": 30.52}, "country": "UA", "population": 2797553, "timezone": 7200, "sunrise": 1704865000, "sunset": 1704895000}
}`

func newTestProvider(t *testing.T, handler http.HandlerFunc) *OpenWeatherMapProviderAdapter {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewOpenWeatherMapProviderAdapter(OpenWeatherMapProviderParams{
		APIKey:  "test-api-key",
		BaseURL: server.URL,
		Logger:  &testLogger{},
	})
}

func respond(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func TestOpenWeatherMapProvider_FetchCurrentWeather_Success(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/weather", r.URL.Path)
		query := r.URL.Query()
		assert.Equal(t, "50.45", query.Get("lat"))
		assert.Equal(t, "30.52", query.Get("lon"))
		assert.Equal(t, "test-api-key", query.Get("appid"))
		assert.Equal(t, "metric", query.Get("units"))

		respond(http.StatusOK, currentWeatherBody)(w, r)
	})

	payload := provider.FetchCurrentWeather(context.Background(), testCoord)

	require.NotNil(t, payload)
	assert.True(t, payload.Succeeded())
	assert.Equal(t, ports.FailureNone, payload.Failure)
	assert.Equal(t, "Kyiv", payload.Name)
	require.NotNil(t, payload.Main)
	assert.Equal(t, 22.4, payload.Main.Temp)
	assert.Equal(t, 1016, payload.Main.Pressure)
	require.Len(t, payload.Weather, 1)
	assert.Equal(t, "01d", payload.Weather[0].Icon)
	require.NotNil(t, payload.Visibility)
	assert.Equal(t, 10000, *payload.Visibility)
	assert.Equal(t, "UA", payload.Sys.Country)
}

func TestOpenWeatherMapProvider_FetchCurrentWeather_Defaults(t *testing.T) {
	provider := newTestProvider(t, respond(http.StatusOK, `{
		"weather": [{"id": 500, "main": "Rain", "description": "light rain", "icon": "10n"}],
		"main": {"temp": 5.2, "humidity": 90}
	}`))

	payload := provider.FetchCurrentWeather(context.Background(), testCoord)

	assert.Equal(t, ports.StatusCode(200), payload.Cod)
	assert.Equal(t, ports.DefaultPressure, payload.Main.Pressure)
	assert.Equal(t, "", payload.Name)
	assert.Nil(t, payload.Visibility)
	assert.Nil(t, payload.Wind)
	assert.Nil(t, payload.Clouds)
}

func TestOpenWeatherMapProvider_FetchCurrentWeather_ProviderErrors(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantCod     ports.StatusCode
		wantMessage string
	}{
		{
			name:        "InvalidAPIKey",
			status:      http.StatusUnauthorized,
			body:        `{"cod": 401, "message": "Invalid API key. Please see https://openweathermap.org/faq#error401 for more info."}`,
			wantCod:     401,
			wantMessage: "Invalid API key. Please see https://openweathermap.org/faq#error401 for more info.",
		},
		{
			name:        "QuotedCod",
			status:      http.StatusNotFound,
			body:        `{"cod": "404", "message": "city not found"}`,
			wantCod:     404,
			wantMessage: "city not found",
		},
		{
			name:        "BodyWithoutCod",
			status:      http.StatusTooManyRequests,
			body:        `{"message": "rate limited"}`,
			wantCod:     429,
			wantMessage: "rate limited",
		},
		{
			name:        "NonJSONBody",
			status:      http.StatusBadGateway,
			body:        `<html>bad gateway</html>`,
			wantCod:     502,
			wantMessage: "HTTP Error: Bad Gateway",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := newTestProvider(t, respond(tt.status, tt.body))

			payload := provider.FetchCurrentWeather(context.Background(), testCoord)

			require.NotNil(t, payload)
			assert.False(t, payload.Succeeded())
			assert.Equal(t, tt.wantCod, payload.Cod)
			assert.Equal(t, tt.wantMessage, payload.Message.String())
			assert.Equal(t, ports.FailureProvider, payload.Failure)
		})
	}
}

func TestOpenWeatherMapProvider_FetchCurrentWeather_DecodeError(t *testing.T) {
	provider := newTestProvider(t, respond(http.StatusOK, `{"weather": [`))

	payload := provider.FetchCurrentWeather(context.Background(), testCoord)

	assert.Equal(t, ports.StatusCode(500), payload.Cod)
	assert.True(t, strings.HasPrefix(payload.Message.String(), "Error parsing response: "))
	assert.Equal(t, ports.FailureDecode, payload.Failure)
}

func TestOpenWeatherMapProvider_NilLogger(t *testing.T) {
	server := httptest.NewServer(respond(http.StatusOK, `not json`))
	t.Cleanup(server.Close)

	provider := NewOpenWeatherMapProviderAdapter(OpenWeatherMapProviderParams{
		APIKey:  "test-api-key",
		BaseURL: server.URL,
	})

	var payload *ports.CurrentWeatherPayload
	require.NotPanics(t, func() {
		payload = provider.FetchCurrentWeather(context.Background(), testCoord)
	})
	assert.Equal(t, ports.FailureDecode, payload.Failure)

	var forecast *ports.ForecastPayload
	require.NotPanics(t, func() {
		forecast = provider.FetchForecast(context.Background(), testCoord)
	})
	assert.Equal(t, ports.FailureDecode, forecast.Failure)
}

func TestOpenWeatherMapProvider_FetchCurrentWeather_TransportError(t *testing.T) {
	server := httptest.NewServer(respond(http.StatusOK, currentWeatherBody))
	baseURL := server.URL
	server.Close()

	provider := NewOpenWeatherMapProviderAdapter(OpenWeatherMapProviderParams{
		APIKey:  "test-api-key",
		BaseURL: baseURL,
		Logger:  &testLogger{},
	})

	payload := provider.FetchCurrentWeather(context.Background(), testCoord)

	assert.Equal(t, ports.StatusCode(500), payload.Cod)
	assert.True(t, strings.HasPrefix(payload.Message.String(), "Network error: "))
	assert.Equal(t, ports.FailureTransport, payload.Failure)
}

func TestOpenWeatherMapProvider_FetchCurrentWeather_CancelledContext(t *testing.T) {
	provider := newTestProvider(t, respond(http.StatusOK, currentWeatherBody))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	payload := provider.FetchCurrentWeather(ctx, testCoord)

	assert.Equal(t, ports.StatusCode(500), payload.Cod)
	assert.Equal(t, ports.FailureTransport, payload.Failure)
}

func TestOpenWeatherMapProvider_SingleAttempt(t *testing.T) {
	var hits int32
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		respond(http.StatusServiceUnavailable, `{"cod": 503, "message": "busy"}`)(w, r)
	})

	provider.FetchCurrentWeather(context.Background(), testCoord)
	provider.FetchForecast(context.Background(), testCoord)

	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
}

func TestOpenWeatherMapProvider_FetchForecast_Success(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/forecast", r.URL.Path)
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		respond(http.StatusOK, forecastBody)(w, r)
	})

	payload := provider.FetchForecast(context.Background(), testCoord)

	require.NotNil(t, payload)
	assert.True(t, payload.Succeeded())
	assert.Equal(t, ports.FailureNone, payload.Failure)
	assert.Equal(t, "0", payload.Message.String())
	assert.Equal(t, 2, payload.Count)
	require.Len(t, payload.List, 2)
	assert.Equal(t, 1.9, payload.List[0].Main.TempMax)
	require.NotNil(t, payload.List[0].Snow)
	assert.Equal(t, 0.3, payload.List[0].Snow.ThreeHours)
	assert.Equal(t, "d", payload.List[0].Sys.Pod)
	assert.Equal(t, "Kyiv", payload.City.Name)
}

func TestOpenWeatherMapProvider_FetchForecast_NumericCod(t *testing.T) {
	provider := newTestProvider(t, respond(http.StatusOK, `{"cod": 200, "message": 0, "cnt": 0, "list": []}`))

	payload := provider.FetchForecast(context.Background(), testCoord)

	assert.True(t, payload.Succeeded())
}

func TestOpenWeatherMapProvider_FetchForecast_MissingCod(t *testing.T) {
	provider := newTestProvider(t, respond(http.StatusOK, `{"cnt": 0, "list": []}`))

	payload := provider.FetchForecast(context.Background(), testCoord)

	assert.Equal(t, ports.FlexString(""), payload.Cod)
	assert.False(t, payload.Succeeded())
}

func TestOpenWeatherMapProvider_FetchForecast_Failures(t *testing.T) {
	t.Run("ProviderError", func(t *testing.T) {
		provider := newTestProvider(t, respond(http.StatusUnauthorized, `{"cod": 401, "message": "Invalid API key"}`))

		payload := provider.FetchForecast(context.Background(), testCoord)

		assert.Equal(t, ports.FlexString("401"), payload.Cod)
		assert.Equal(t, "Invalid API key", payload.Message.String())
		assert.Equal(t, ports.FailureProvider, payload.Failure)
	})

	t.Run("NonJSONBody", func(t *testing.T) {
		provider := newTestProvider(t, respond(http.StatusInternalServerError, `oops`))

		payload := provider.FetchForecast(context.Background(), testCoord)

		assert.Equal(t, ports.FlexString("500"), payload.Cod)
		assert.Equal(t, "HTTP Error: Internal Server Error", payload.Message.String())
	})

	t.Run("DecodeError", func(t *testing.T) {
		provider := newTestProvider(t, respond(http.StatusOK, `not json`))

		payload := provider.FetchForecast(context.Background(), testCoord)

		assert.Equal(t, ports.FlexString("500"), payload.Cod)
		assert.Equal(t, ports.FailureDecode, payload.Failure)
	})

	t.Run("TransportError", func(t *testing.T) {
		server := httptest.NewServer(respond(http.StatusOK, forecastBody))
		baseURL := server.URL
		server.Close()

		provider := NewOpenWeatherMapProviderAdapter(OpenWeatherMapProviderParams{
			APIKey:  "test-api-key",
			BaseURL: baseURL,
			Logger:  &testLogger{},
		})

		payload := provider.FetchForecast(context.Background(), testCoord)

		assert.Equal(t, ports.FlexString("500"), payload.Cod)
		assert.True(t, strings.HasPrefix(payload.Message.String(), "Network error: "))
		assert.Equal(t, ports.FailureTransport, payload.Failure)
	})
}

func TestOpenWeatherMapProvider_GetProviderName(t *testing.T) {
	provider := NewOpenWeatherMapProviderAdapter(OpenWeatherMapProviderParams{APIKey: "key", Logger: &testLogger{}})

	assert.Equal(t, "openweathermap", provider.GetProviderName())
}
