package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const metricPrefix = "catalog_"

var (
	registerOnce sync.Once

	httpRequests *prometheus.CounterVec
	httpLatency  *prometheus.HistogramVec

	searchQueries    prometheus.Counter
	aggregations     *prometheus.CounterVec
	selectionChanges *prometheus.CounterVec
	shareDecodes     *prometheus.CounterVec
	exports          *prometheus.CounterVec
)

// Init registers the service metrics with the default registry. Safe to call
// more than once.
func Init() {
	registerOnce.Do(func() {
		httpRequests = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "http_requests_total",
				Help: "Total HTTP requests by route and status",
			},
			[]string{"route", "status"},
		)
		httpLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "http_request_seconds",
				Help:    "HTTP request latency by route",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route"},
		)
		searchQueries = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: metricPrefix + "search_queries_total",
				Help: "Total fuzzy search queries",
			},
		)
		aggregations = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "aggregations_total",
				Help: "Total derived-view computations by view",
			},
			[]string{"view"},
		)
		selectionChanges = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "selection_mutations_total",
				Help: "Total listing selection mutations by operation",
			},
			[]string{"op"},
		)
		shareDecodes = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "share_decodes_total",
				Help: "Total share-state decodes by result",
			},
			[]string{"result"},
		)
		exports = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "exports_total",
				Help: "Total course view exports by format",
			},
			[]string{"format"},
		)

		prometheus.MustRegister(
			httpRequests,
			httpLatency,
			searchQueries,
			aggregations,
			selectionChanges,
			shareDecodes,
			exports,
		)
	})
}

// ObserveHTTPRequest records one handled HTTP request.
func ObserveHTTPRequest(route, status string, seconds float64) {
	if httpRequests == nil {
		return
	}
	httpRequests.WithLabelValues(route, status).Inc()
	httpLatency.WithLabelValues(route).Observe(seconds)
}

// CountSearchQuery records one search index query.
func CountSearchQuery() {
	if searchQueries != nil {
		searchQueries.Inc()
	}
}

// CountAggregation records one derived-view computation.
func CountAggregation(view string) {
	if aggregations != nil {
		aggregations.WithLabelValues(view).Inc()
	}
}

// CountSelectionMutation records one mask mutation.
func CountSelectionMutation(op string) {
	if selectionChanges != nil {
		selectionChanges.WithLabelValues(op).Inc()
	}
}

// CountShareDecode records one share-state decode attempt.
func CountShareDecode(result string) {
	if shareDecodes != nil {
		shareDecodes.WithLabelValues(result).Inc()
	}
}

// CountExport records one export render.
func CountExport(format string) {
	if exports != nil {
		exports.WithLabelValues(format).Inc()
	}
}
