package store

import (
	"time"

	"github.com/goran-ethernal/ChainCache/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	logsWritten = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chaincache_store_logs_written_total",
			Help: "Total number of logs written to the cache",
		},
	)

	logsDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chaincache_store_logs_dropped_total",
			Help: "Total number of cached logs removed, by reason",
		},
		[]string{"reason"},
	)

	callLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chaincache_store_call_lookups_total",
			Help: "Total number of eth_call cache lookups, by result",
		},
		[]string{"result"},
	)
)

func LogsWrittenAdd(n int) {
	logsWritten.Add(float64(n))
}

func LogsDroppedAdd(reason string, n int64) {
	logsDropped.WithLabelValues(reason).Add(float64(n))
}

func CallLookupInc(hit bool) {
	if hit {
		callLookups.WithLabelValues("hit").Inc()
		return
	}
	callLookups.WithLabelValues("miss").Inc()
}

func observe(operation string, start time.Time, err *error) {
	metrics.DBQueryObserve("cache", operation, time.Since(start), *err)
}
