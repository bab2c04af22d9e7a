package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// FetchAttemptsTotal tracks every attempt the fallback fetcher makes
	FetchAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "supafetch_fetch_attempts_total",
			Help: "Total number of fetch attempts",
		},
		[]string{"route", "outcome"},
	)

	// FetchRecoveriesTotal tracks calls that only succeeded after a retry
	FetchRecoveriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "supafetch_fetch_recoveries_total",
			Help: "Total number of calls recovered by a retry",
		},
		[]string{"route"},
	)

	// FetchAttemptDuration tracks attempt latency
	FetchAttemptDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "supafetch_fetch_attempt_duration_seconds",
			Help:    "Fetch attempt latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	// ProbeUp is 1 when the last route probe succeeded
	ProbeUp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "supafetch_probe_up",
			Help: "Whether the last route probe succeeded",
		},
	)
)
