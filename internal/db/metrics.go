package db

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	maintenanceRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chaincache_maintenance_runs_total",
			Help: "Maintenance runs by outcome",
		},
		[]string{"status"},
	)

	maintenanceSteps = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chaincache_maintenance_steps_total",
			Help: "Maintenance steps (compaction, wal_checkpoint, vacuum) by outcome",
		},
		[]string{"step", "status"},
	)

	maintenanceDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "chaincache_maintenance_duration_seconds",
			Help:    "Duration of a full maintenance run",
			Buckets: prometheus.ExponentialBuckets(0.01, 4, 8), //nolint:mnd
		},
	)

	maintenanceLastRun = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "chaincache_maintenance_last_run_timestamp_seconds",
			Help: "Unix time of the last maintenance run",
		},
	)

	coverageCompacted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chaincache_coverage_records_compacted_total",
			Help: "Coverage records removed by compaction",
		},
	)

	cacheFileBytes = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "chaincache_cache_file_bytes",
			Help: "Size of the cache database after the last maintenance run; reclaimed is the shrink of that run",
		},
		[]string{"kind"},
	)
)

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func maintenanceStepObserve(step string, err error) {
	maintenanceSteps.WithLabelValues(step, statusOf(err)).Inc()
}

func maintenanceRunObserve(duration time.Duration, err error) {
	maintenanceRuns.WithLabelValues(statusOf(err)).Inc()
	maintenanceDuration.Observe(duration.Seconds())
	maintenanceLastRun.SetToCurrentTime()
}

func cacheFileSizeSet(total int64, reclaimed uint64) {
	cacheFileBytes.WithLabelValues("total").Set(float64(total))
	cacheFileBytes.WithLabelValues("reclaimed").Set(float64(reclaimed))
}
