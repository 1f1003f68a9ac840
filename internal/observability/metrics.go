package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the CSV load
// pipeline and the query API.
type Metrics struct {
	RowsStaged     *prometheus.CounterVec // label: table
	LoadsCompleted prometheus.Counter
	CommitFailures prometheus.Counter
	LoadDuration   prometheus.Histogram
}

// NewMetrics creates and registers all metrics with the default Prometheus
// registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		RowsStaged: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "surfsup",
			Name:      "rows_staged_total",
			Help:      "Rows staged for commit, by target table.",
		}, []string{"table"}),
		LoadsCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "surfsup",
			Name:      "loads_completed_total",
			Help:      "Batch loads that committed successfully.",
		}),
		CommitFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "surfsup",
			Name:      "commit_failures_total",
			Help:      "Batch commits that failed and rolled back.",
		}),
		LoadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "surfsup",
			Name:      "load_duration_seconds",
			Help:      "Duration of a complete read-stage-commit cycle.",
			Buckets:   []float64{0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30},
		}),
	}

	prometheus.MustRegister(
		m.RowsStaged,
		m.LoadsCompleted,
		m.CommitFailures,
		m.LoadDuration,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		RowsStaged:     prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "surfsup", Name: "rows_staged_total"}, []string{"table"}),
		LoadsCompleted: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "surfsup", Name: "loads_completed_total"}),
		CommitFailures: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "surfsup", Name: "commit_failures_total"}),
		LoadDuration:   prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "surfsup", Name: "load_duration_seconds"}),
	}
}
