package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for Centro Control
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Cache Metrics
	CacheHitsTotal   prometheus.CounterVec
	CacheMissesTotal prometheus.CounterVec

	// Provider Metrics
	ProviderCallsTotal   prometheus.CounterVec
	ProviderCallDuration prometheus.HistogramVec

	// Business Metrics
	FlightsAddedTotal    prometheus.Counter
	DiaryEntriesTotal    prometheus.Counter
	PhotosUploadedTotal  prometheus.Counter
	WorkoutsStartedTotal prometheus.Counter
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "centro_control_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "centro_control_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "centro_control_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		CacheHitsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "centro_control_cache_hits_total",
				Help: "Total cache hits by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),
		CacheMissesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "centro_control_cache_misses_total",
				Help: "Total cache misses by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),

		ProviderCallsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "centro_control_provider_calls_total",
				Help: "Outbound provider calls by provider and outcome",
			},
			[]string{"provider", "outcome"},
		),
		ProviderCallDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "centro_control_provider_call_duration_seconds",
				Help:    "Outbound provider call latency in seconds",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"provider"},
		),

		FlightsAddedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "centro_control_flights_added_total",
				Help: "Total flight records added",
			},
		),
		DiaryEntriesTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "centro_control_diary_entries_total",
				Help: "Total diary entries created",
			},
		),
		PhotosUploadedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "centro_control_photos_uploaded_total",
				Help: "Total photos confirmed as uploaded",
			},
		),
		WorkoutsStartedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "centro_control_workouts_started_total",
				Help: "Total gym workout sessions started",
			},
		),
	}
}
