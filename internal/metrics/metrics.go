// Package metrics holds the Prometheus collectors exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hospital_records"

var (
	SeedRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "seed",
		Name:      "runs_total",
		Help:      "Bulk seeding runs by preset and outcome.",
	}, []string{"preset", "status"})

	SeedDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "seed",
		Name:      "duration_seconds",
		Help:      "Wall time of a bulk seeding run.",
		Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
	}, []string{"preset"})

	SeededEntitiesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "seed",
		Name:      "entities_total",
		Help:      "Entities persisted by successful seeding runs.",
	}, []string{"kind"})

	RecordsTotal = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "store",
		Name:      "records",
		Help:      "Rows currently stored per record kind.",
	}, []string{"kind"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by method, route and status code.",
	}, []string{"method", "route", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})
)

// ObserveSeed records the outcome of one seeding run
func ObserveSeed(preset string, seconds float64, results map[string]int, err error) {
	SeedDuration.WithLabelValues(preset).Observe(seconds)
	if err != nil {
		SeedRunsTotal.WithLabelValues(preset, "error").Inc()
		return
	}
	SeedRunsTotal.WithLabelValues(preset, "success").Inc()
	for kind, n := range results {
		SeededEntitiesTotal.WithLabelValues(kind).Add(float64(n))
	}
}
