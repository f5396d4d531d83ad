// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MatchRunsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "matching_runs_completed_total",
			Help: "Total number of completed ranking passes",
		},
		[]string{"anchor"},
	)

	MatchRunsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "matching_runs_failed_total",
			Help: "Total number of failed ranking passes",
		},
		[]string{"anchor", "error_code"},
	)

	MatchRunDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "matching_run_duration_seconds",
			Help: "Duration of a full ranking pass in seconds",
		},
		[]string{"anchor"},
	)

	MatchPairsScored = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "matching_pairs_scored_total",
			Help: "Total number of (job, candidate) pairs scored",
		},
		[]string{"anchor"},
	)

	MatchPairsAdmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "matching_pairs_admitted_total",
			Help: "Total number of pairs at or above the admission threshold",
		},
		[]string{"anchor"},
	)
)
