package external

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skycast.app/internal/ports"
)

// Simple test using concrete implementations instead of mocks
func TestWeatherProviderLoggingDecorator_BasicFunctionality(t *testing.T) {
	testProvider := &testWeatherProvider{
		name: "test-provider",
		current: &ports.CurrentWeatherPayload{
			Cod:  200,
			Name: "Kyiv",
		},
	}
	testLogger := &testLogger{entries: []logEntry{}}

	decorator := NewWeatherProviderLoggingDecorator(testProvider, testLogger)

	result := decorator.FetchCurrentWeather(context.Background(), testCoord)

	require.NotNil(t, result)
	assert.Equal(t, "Kyiv", result.Name)

	require.Equal(t, 2, len(testLogger.entries))

	requestLog := testLogger.entries[0]
	assert.Equal(t, "INFO", requestLog.level)
	assert.Equal(t, "Weather API request started", requestLog.message)
	assert.Equal(t, "test-provider", requestLog.fields["provider"])
	assert.Equal(t, "/weather", requestLog.fields["endpoint"])
	assert.Equal(t, 50.45, requestLog.fields["lat"])
	assert.Equal(t, "request", requestLog.fields["event"])

	responseLog := testLogger.entries[1]
	assert.Equal(t, "INFO", responseLog.level)
	assert.Equal(t, "Weather API request completed", responseLog.message)
	assert.Equal(t, "response", responseLog.fields["event"])
	assert.Equal(t, 200, responseLog.fields["cod"])
	assert.Equal(t, "Kyiv", responseLog.fields["location"])
	assert.Contains(t, responseLog.fields, "duration_ms")

	assert.Equal(t, "logged(test-provider)", decorator.GetProviderName())
}

func TestWeatherProviderLoggingDecorator_ErrorHandling(t *testing.T) {
	testProvider := &testWeatherProvider{
		name: "error-provider",
		current: &ports.CurrentWeatherPayload{
			Cod:     429,
			Message: "rate limit exceeded",
			Failure: ports.FailureProvider,
		},
	}
	testLogger := &testLogger{entries: []logEntry{}}

	decorator := NewWeatherProviderLoggingDecorator(testProvider, testLogger)

	result := decorator.FetchCurrentWeather(context.Background(), testCoord)

	assert.Equal(t, ports.StatusCode(429), result.Cod)

	require.Equal(t, 2, len(testLogger.entries))

	errorLog := testLogger.entries[1]
	assert.Equal(t, "ERROR", errorLog.level)
	assert.Equal(t, "Weather API request failed", errorLog.message)
	assert.Equal(t, "error-provider", errorLog.fields["provider"])
	assert.Equal(t, "error", errorLog.fields["event"])
	assert.Equal(t, 429, errorLog.fields["cod"])
	assert.Equal(t, "provider", errorLog.fields["failure"])
	assert.Equal(t, "rate limit exceeded", errorLog.fields["error"])
	assert.Contains(t, errorLog.fields, "duration_ms")
}

func TestWeatherProviderLoggingDecorator_Forecast(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		testProvider := &testWeatherProvider{
			name: "test-provider",
			forecast: &ports.ForecastPayload{
				Cod:  "200",
				List: make([]ports.ForecastEntry, 40),
			},
		}
		testLogger := &testLogger{entries: []logEntry{}}

		decorator := NewWeatherProviderLoggingDecorator(testProvider, testLogger)
		decorator.FetchForecast(context.Background(), testCoord)

		require.Equal(t, 2, len(testLogger.entries))
		assert.Equal(t, "/forecast", testLogger.entries[1].fields["endpoint"])
		assert.Equal(t, 40, testLogger.entries[1].fields["samples"])
	})

	t.Run("TransportFailure", func(t *testing.T) {
		testProvider := &testWeatherProvider{
			name: "test-provider",
			forecast: &ports.ForecastPayload{
				Cod:     "500",
				Message: "Network error: connection refused",
				Failure: ports.FailureTransport,
			},
		}
		testLogger := &testLogger{entries: []logEntry{}}

		decorator := NewWeatherProviderLoggingDecorator(testProvider, testLogger)
		decorator.FetchForecast(context.Background(), testCoord)

		require.Equal(t, 2, len(testLogger.entries))
		assert.Equal(t, "ERROR", testLogger.entries[1].level)
		assert.Equal(t, "transport", testLogger.entries[1].fields["failure"])
		assert.Equal(t, "500", testLogger.entries[1].fields["cod"])
	})
}

func TestWeatherProviderLoggingDecorator_DurationTracking(t *testing.T) {
	testProvider := &testWeatherProvider{
		name:    "slow-provider",
		current: &ports.CurrentWeatherPayload{Cod: 200},
		delay:   10 * time.Millisecond,
	}
	testLogger := &testLogger{entries: []logEntry{}}

	decorator := NewWeatherProviderLoggingDecorator(testProvider, testLogger)
	decorator.FetchCurrentWeather(context.Background(), testCoord)

	require.Equal(t, 2, len(testLogger.entries))

	duration, ok := testLogger.entries[1].fields["duration_ms"].(int64)
	assert.True(t, ok)
	assert.GreaterOrEqual(t, duration, int64(10))
}

// Test helper structs
type testWeatherProvider struct {
	name     string
	current  *ports.CurrentWeatherPayload
	forecast *ports.ForecastPayload
	delay    time.Duration
}

func (p *testWeatherProvider) FetchCurrentWeather(ctx context.Context, coord ports.Coordinate) *ports.CurrentWeatherPayload {
	if p.delay > 0 {
		time.Sleep(p.delay)
	}
	return p.current
}

func (p *testWeatherProvider) FetchForecast(ctx context.Context, coord ports.Coordinate) *ports.ForecastPayload {
	if p.delay > 0 {
		time.Sleep(p.delay)
	}
	return p.forecast
}

func (p *testWeatherProvider) GetProviderName() string {
	return p.name
}

type logEntry struct {
	level   string
	message string
	fields  map[string]interface{}
}

type testLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (l *testLogger) Debug(msg string, fields ...ports.Field) {
	l.addEntry("DEBUG", msg, fields...)
}

func (l *testLogger) Info(msg string, fields ...ports.Field) {
	l.addEntry("INFO", msg, fields...)
}

func (l *testLogger) Warn(msg string, fields ...ports.Field) {
	l.addEntry("WARN", msg, fields...)
}

func (l *testLogger) Error(msg string, fields ...ports.Field) {
	l.addEntry("ERROR", msg, fields...)
}

func (l *testLogger) addEntry(level, message string, fields ...ports.Field) {
	fieldMap := make(map[string]interface{})
	for _, field := range fields {
		fieldMap[field.Key] = field.Value
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, logEntry{
		level:   level,
		message: message,
		fields:  fieldMap,
	})
}

// Benchmark test
func BenchmarkWeatherProviderLoggingDecorator(b *testing.B) {
	testProvider := &testWeatherProvider{
		name:    "benchmark-provider",
		current: &ports.CurrentWeatherPayload{Cod: 200, Name: "Benchmark"},
	}
	testLogger := &testLogger{entries: []logEntry{}}

	decorator := NewWeatherProviderLoggingDecorator(testProvider, testLogger)

	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = decorator.FetchCurrentWeather(context.Background(), testCoord)
		}
	})
}
