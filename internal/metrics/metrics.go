// Package metrics exposes Prometheus instrumentation for the search
// service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// SearchMetrics tracks search pipeline activity.
type SearchMetrics struct {
	SearchesTotal    prometheus.Counter
	SearchErrors     prometheus.Counter
	SearchDuration   prometheus.Histogram
	FacetCandidates  *prometheus.CounterVec
	StorageErrors    *prometheus.CounterVec
	HistorySizeGauge prometheus.Gauge
}

// NewSearchMetrics creates the search metric set and registers it with the
// given registerer.
func NewSearchMetrics(reg prometheus.Registerer) *SearchMetrics {
	m := &SearchMetrics{
		SearchesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "monument_search_searches_total",
			Help: "Total number of search calls.",
		}),
		SearchErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "monument_search_search_errors_total",
			Help: "Total number of search calls that failed.",
		}),
		SearchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "monument_search_duration_seconds",
			Help:    "Wall-clock duration of search calls.",
			Buckets: prometheus.DefBuckets,
		}),
		FacetCandidates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "monument_search_facet_candidates_total",
			Help: "Candidate matches produced, per facet.",
		}, []string{"facet"}),
		StorageErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "monument_search_storage_errors_total",
			Help: "Storage query failures, per operation.",
		}, []string{"op"}),
		HistorySizeGauge: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "monument_search_history_entries",
			Help: "Number of entries in the in-memory search history.",
		}),
	}

	reg.MustRegister(
		m.SearchesTotal,
		m.SearchErrors,
		m.SearchDuration,
		m.FacetCandidates,
		m.StorageErrors,
		m.HistorySizeGauge,
	)
	return m
}
