package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds search instrumentation for direct use in the search service.
type Metrics struct {
	SearchesTotal    *prometheus.CounterVec
	SearchErrors     *prometheus.CounterVec
	SearchDuration   prometheus.Histogram
	CandidatesScored prometheus.Counter
}

// New creates and registers search metrics with the given registry.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		SearchesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "subscout",
			Subsystem: "search",
			Name:      "requests_total",
			Help:      "Total catalog searches, per provider.",
		}, []string{"provider"}),
		SearchErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "subscout",
			Subsystem: "search",
			Name:      "errors_total",
			Help:      "Catalog searches that failed, per provider.",
		}, []string{"provider"}),
		SearchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "subscout",
			Subsystem: "search",
			Name:      "duration_seconds",
			Help:      "Duration of full multi-catalog searches.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
		CandidatesScored: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "subscout",
			Subsystem: "search",
			Name:      "candidates_scored_total",
			Help:      "Subtitle candidates matched and scored.",
		}),
	}

	reg.MustRegister(
		m.SearchesTotal,
		m.SearchErrors,
		m.SearchDuration,
		m.CandidatesScored,
	)

	return m
}
