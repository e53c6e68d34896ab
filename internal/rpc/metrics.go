package rpc

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	calls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chaincache_rpc_calls_total",
			Help: "Node calls by JSON-RPC method and result (ok or the error class)",
		},
		[]string{"method", "result"},
	)

	callDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "chaincache_rpc_call_duration_seconds",
			Help:    "Duration of node calls including retries",
			Buckets: []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"method"},
	)

	retries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chaincache_rpc_retries_total",
			Help: "Retried node calls by JSON-RPC method",
		},
		[]string{"method"},
	)

	logsPerCall = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "chaincache_rpc_logs_per_call",
			Help:    "Number of logs returned by a successful eth_getLogs call",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8), //nolint:mnd
		},
	)
)

func observeCall(method string, start time.Time, err error) {
	result := "ok"
	if err != nil {
		result = classifyError(err)
	}

	calls.WithLabelValues(method, result).Inc()
	callDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
}

func retryInc(method string) {
	retries.WithLabelValues(method).Inc()
}
