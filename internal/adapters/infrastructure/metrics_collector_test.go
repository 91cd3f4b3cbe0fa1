package infrastructure

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusMetricsCollector_RecordProviderCall(t *testing.T) {
	collector := NewPrometheusMetricsCollector(prometheus.NewRegistry())
	ctx := context.Background()

	collector.RecordProviderCall(ctx, "openweathermap", "weather", "none", 120*time.Millisecond)
	collector.RecordProviderCall(ctx, "openweathermap", "weather", "none", 80*time.Millisecond)
	collector.RecordProviderCall(ctx, "openweathermap", "forecast", "transport", time.Second)

	assert.Equal(t, 2.0, testutil.ToFloat64(collector.providerRequests.WithLabelValues("openweathermap", "weather", "none")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.providerRequests.WithLabelValues("openweathermap", "forecast", "transport")))
	assert.Equal(t, 2, testutil.CollectAndCount(collector.providerLatency))
}

func TestPrometheusMetricsCollector_RecordHTTPRequest(t *testing.T) {
	collector := NewPrometheusMetricsCollector(nil)

	collector.RecordHTTPRequest("/api/weather", http.MethodGet, http.StatusOK)
	collector.RecordHTTPRequest("/api/weather", http.MethodGet, http.StatusBadGateway)

	assert.Equal(t, 1.0, testutil.ToFloat64(collector.httpRequests.WithLabelValues("/api/weather", "GET", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.httpRequests.WithLabelValues("/api/weather", "GET", "502")))
}

func TestPrometheusMetricsCollector_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		NewPrometheusMetricsCollector(nil)
		NewPrometheusMetricsCollector(nil)
	})
}

func TestPrometheusMetricsCollector_Handler(t *testing.T) {
	collector := NewPrometheusMetricsCollector(prometheus.NewRegistry())
	collector.RecordProviderCall(context.Background(), "openweathermap", "weather", "provider", 10*time.Millisecond)

	server := httptest.NewServer(collector.Handler())
	defer server.Close()

	resp, err := http.Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `skycast_provider_requests_total{endpoint="weather",outcome="provider",provider="openweathermap"} 1`)
	assert.Contains(t, string(body), "skycast_provider_request_duration_seconds_bucket")
}
