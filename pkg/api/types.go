package api

import (
	"time"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/goran-ethernal/ChainCache/pkg/cache"
	"github.com/goran-ethernal/ChainCache/pkg/ranges"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code"`
}

// HealthResponse represents a health check response.
type HealthResponse struct {
	Status         string    `json:"status"`
	Timestamp      time.Time `json:"timestamp"`
	ChainID        uint64    `json:"chain_id"`
	Network        string    `json:"network,omitempty"`
	FinalizedBlock uint64    `json:"finalized_block,omitempty"`
	Error          string    `json:"error,omitempty"`
}

// CoverageResponse lists the cached and the missing parts of a query range.
type CoverageResponse struct {
	Query    cache.LogQuery `json:"query"`
	Covered  []ranges.Range `json:"covered"`
	Gaps     []ranges.Range `json:"gaps"`
	Complete bool           `json:"complete"`
}

// ChunksResponse is the partition of a block range into request sized chunks.
type ChunksResponse struct {
	FromBlock uint64         `json:"from_block"`
	ToBlock   uint64         `json:"to_block"`
	ChunkSize uint64         `json:"chunk_size"`
	Mode      string         `json:"mode"`
	Chunks    []ranges.Range `json:"chunks"`
}

// LogsResponse carries the logs matching a query.
type LogsResponse struct {
	ChainID   uint64      `json:"chain_id"`
	FromBlock uint64      `json:"from_block"`
	ToBlock   uint64      `json:"to_block"`
	Count     int         `json:"count"`
	Logs      []types.Log `json:"logs"`
}
