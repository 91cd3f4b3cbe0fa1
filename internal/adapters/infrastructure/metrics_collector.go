package infrastructure

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusMetricsCollector implements the MetricsCollector port on a Prometheus registry
type PrometheusMetricsCollector struct {
	registry         *prometheus.Registry
	providerRequests *prometheus.CounterVec
	providerLatency  *prometheus.HistogramVec
	httpRequests     *prometheus.CounterVec
}

// NewPrometheusMetricsCollector registers all collectors on registry.
// A nil registry gets a fresh one so tests never collide on the global default.
func NewPrometheusMetricsCollector(registry *prometheus.Registry) *PrometheusMetricsCollector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	factory := promauto.With(registry)

	return &PrometheusMetricsCollector{
		registry: registry,
		providerRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "skycast_provider_requests_total",
				Help: "Weather provider calls by endpoint and outcome",
			},
			[]string{"provider", "endpoint", "outcome"},
		),
		providerLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "skycast_provider_request_duration_seconds",
				Help:    "Weather provider call duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"provider", "endpoint"},
		),
		httpRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "skycast_http_requests_total",
				Help: "HTTP requests by route, method and status",
			},
			[]string{"route", "method", "status"},
		),
	}
}

// RecordProviderCall counts a provider call and observes its latency
func (m *PrometheusMetricsCollector) RecordProviderCall(ctx context.Context, provider, endpoint, outcome string, duration time.Duration) {
	m.providerRequests.WithLabelValues(provider, endpoint, outcome).Inc()
	m.providerLatency.WithLabelValues(provider, endpoint).Observe(duration.Seconds())
}

// RecordHTTPRequest counts a served HTTP request
func (m *PrometheusMetricsCollector) RecordHTTPRequest(route, method string, status int) {
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
}

// Handler exposes the registry in the Prometheus text format
func (m *PrometheusMetricsCollector) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry
func (m *PrometheusMetricsCollector) Registry() *prometheus.Registry {
	return m.registry
}
