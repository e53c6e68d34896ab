package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	finalizedBlock = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "chaincache_finalized_block",
			Help: "The block number last resolved as final, per chain",
		},
		[]string{"chain_id"},
	)

	queries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chaincache_log_queries_total",
			Help: "Total number of log queries by cache outcome (hit, partial, miss)",
		},
		[]string{"outcome"},
	)

	blocksServed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chaincache_log_blocks_total",
			Help: "Total number of requested blocks by source (cache, rpc)",
		},
		[]string{"source"},
	)

	chunksFetched = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chaincache_log_chunks_fetched_total",
			Help: "Total number of eth_getLogs chunks fetched from the node",
		},
	)

	chunkSplits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chaincache_log_chunk_splits_total",
			Help: "Total number of chunks split after the node rejected their size",
		},
	)

	callRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chaincache_call_requests_total",
			Help: "Total number of eth_call requests by outcome (hit, miss, bypass)",
		},
		[]string{"outcome"},
	)
)

func FinalizedBlockSet(chainID string, block uint64) {
	finalizedBlock.WithLabelValues(chainID).Set(float64(block))
}

func QueryOutcomeInc(outcome string) {
	queries.WithLabelValues(outcome).Inc()
}

func BlocksServedAdd(source string, n uint64) {
	blocksServed.WithLabelValues(source).Add(float64(n))
}

func ChunksFetchedInc() {
	chunksFetched.Inc()
}

func ChunkSplitsInc() {
	chunkSplits.Inc()
}

func CallRequestInc(outcome string) {
	callRequests.WithLabelValues(outcome).Inc()
}
