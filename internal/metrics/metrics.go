// Package metrics exposes Prometheus collectors for slot sessions served
// over SSH, and the HTTP router that publishes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names
const (
	MetricNameSpinsTotal        = "slots_spins_total"
	MetricNameOutcomesTotal     = "slots_outcomes_total"
	MetricNameSelectionsTotal   = "slots_selections_total"
	MetricNameSessionsActive    = "slots_sessions_active"
	MetricNameSessionsTotal     = "slots_sessions_total"
	MetricNameLoaderWaitSeconds = "slots_loader_wait_seconds"
)

// Label names and values
const (
	LabelResult = "result"
	LabelSymbol = "symbol"

	ResultWin  = "win"
	ResultLose = "lose"
)

// LoaderWaitBuckets covers a loader that finishes with the reveal up to one
// stuck for a minute.
var LoaderWaitBuckets = []float64{0, 0.1, 0.5, 1, 2, 5, 10, 30, 60}

// Game metrics
var (
	SpinsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSpinsTotal,
			Help: "Total number of spins started",
		},
	)

	OutcomesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameOutcomesTotal,
			Help: "Total number of settled spins by result",
		},
		[]string{LabelResult},
	)

	SelectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSelectionsTotal,
			Help: "Total number of target selections by symbol",
		},
		[]string{LabelSymbol},
	)
)

// Session metrics
var (
	SessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameSessionsActive,
			Help: "Number of connected play sessions",
		},
	)

	SessionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSessionsTotal,
			Help: "Total number of play sessions started",
		},
	)

	LoaderWaitSeconds = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameLoaderWaitSeconds,
			Help:    "Time the loading screen held after its reveal, waiting for assets",
			Buckets: LoaderWaitBuckets,
		},
	)
)
