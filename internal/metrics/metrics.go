package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for reachburo
type MetricsRegistry struct {
	// HTTP Metrics (serving mode)
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Route service metrics
	RouteLookupsTotal   prometheus.CounterVec
	RouteLookupDuration prometheus.HistogramVec

	// Cache Metrics
	CacheHitsTotal   prometheus.CounterVec
	CacheMissesTotal prometheus.CounterVec
	CacheEntries     prometheus.GaugeVec

	// Business Metrics
	EstimatesTotal   prometheus.Counter
	PairsEstimated   prometheus.Counter
	UnreachablePairs prometheus.Counter
}

// NewMetricsRegistry initializes a MetricsRegistry on the given registerer.
// Pass prometheus.DefaultRegisterer in binaries; tests use a fresh registry
// to avoid duplicate registration panics.
func NewMetricsRegistry(reg prometheus.Registerer) *MetricsRegistry {
	factory := promauto.With(reg)

	return &MetricsRegistry{
		// HTTP Metrics
		HTTPRequestsTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reachburo_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "reachburo_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "reachburo_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		// Route service metrics
		RouteLookupsTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reachburo_route_lookups_total",
				Help: "Total calls against the route-lookup service by endpoint and outcome",
			},
			[]string{"endpoint", "outcome"},
		),
		RouteLookupDuration: *factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "reachburo_route_lookup_duration_seconds",
				Help:    "Route-lookup service call latency in seconds",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint"},
		),

		// Cache Metrics
		CacheHitsTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reachburo_cache_hits_total",
				Help: "Total cache hits by cache name",
			},
			[]string{"cache"},
		),
		CacheMissesTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reachburo_cache_misses_total",
				Help: "Total cache misses by cache name",
			},
			[]string{"cache"},
		),
		CacheEntries: *factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "reachburo_cache_entries",
				Help: "Current number of live cache entries",
			},
			[]string{"cache"},
		),

		// Business Metrics
		EstimatesTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "reachburo_estimates_total",
				Help: "Total estimate runs completed",
			},
		),
		PairsEstimated: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "reachburo_pairs_estimated_total",
				Help: "Total airport pairs resolved (cache hits included)",
			},
		),
		UnreachablePairs: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "reachburo_unreachable_pairs_total",
				Help: "Airport pairs with no route within the stop budget",
			},
		),
	}
}
