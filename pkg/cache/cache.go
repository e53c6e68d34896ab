package cache

import (
	"bytes"
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/goran-ethernal/ChainCache/pkg/ranges"
)

// ErrInvalidQuery is returned for log queries that cannot be planned.
var ErrInvalidQuery = errors.New("invalid log query")

const maxTopic0s = 64

// WildcardFilter is the filter hash of a query without topic0 restriction.
var WildcardFilter = common.Hash{}

// LogQuery selects the logs emitted by one contract within an inclusive block range,
// optionally restricted to a set of event signatures (topic0 values).
type LogQuery struct {
	ChainID   uint64         `json:"chain_id"`
	Address   common.Address `json:"address"`
	Topic0s   []common.Hash  `json:"topic0s,omitempty"`
	FromBlock uint64         `json:"from_block"`
	ToBlock   uint64         `json:"to_block"`
}

// Validate checks that the query has a chain and a well formed block range.
func (q LogQuery) Validate() error {
	if q.ChainID == 0 {
		return fmt.Errorf("%w: chain id is required", ErrInvalidQuery)
	}
	if q.FromBlock > q.ToBlock {
		return fmt.Errorf("%w: from block %d is after to block %d", ErrInvalidQuery, q.FromBlock, q.ToBlock)
	}
	if len(q.Topic0s) > maxTopic0s {
		return fmt.Errorf("%w: at most %d topic0 values are supported, got %d", ErrInvalidQuery, maxTopic0s, len(q.Topic0s))
	}

	return nil
}

// Range returns the block range of the query.
func (q LogQuery) Range() ranges.Range {
	return ranges.Range{Start: q.FromBlock, End: q.ToBlock}
}

// Key returns the coverage key of the query.
func (q LogQuery) Key() QueryKey {
	return QueryKey{ChainID: q.ChainID, Address: q.Address, FilterHash: FilterHash(q.Topic0s)}
}

// QueryKey identifies a coverage set: logs of Address on ChainID matching the topic0 filter behind FilterHash.
type QueryKey struct {
	ChainID    uint64
	Address    common.Address
	FilterHash common.Hash
}

// IsWildcard reports whether the key covers every event of the address.
func (k QueryKey) IsWildcard() bool {
	return k.FilterHash == WildcardFilter
}

// Wildcard returns the key of the unfiltered query for the same address.
func (k QueryKey) Wildcard() QueryKey {
	k.FilterHash = WildcardFilter
	return k
}

func (k QueryKey) String() string {
	if k.IsWildcard() {
		return fmt.Sprintf("%d/%s/*", k.ChainID, k.Address.Hex())
	}
	return fmt.Sprintf("%d/%s/%s", k.ChainID, k.Address.Hex(), k.FilterHash.Hex())
}

// FilterHash returns the keccak256 of the sorted, deduplicated topic0 values.
// No topics yields WildcardFilter, so the order and repetition of topics never changes the key.
func FilterHash(topic0s []common.Hash) common.Hash {
	if len(topic0s) == 0 {
		return WildcardFilter
	}

	sorted := slices.Clone(topic0s)
	slices.SortFunc(sorted, func(a, b common.Hash) int { return bytes.Compare(a[:], b[:]) })
	sorted = slices.Compact(sorted)

	buf := make([]byte, 0, len(sorted)*common.HashLength)
	for _, t := range sorted {
		buf = append(buf, t[:]...)
	}

	return crypto.Keccak256Hash(buf)
}

// SortLogs orders logs by block number and then log index.
func SortLogs(logs []types.Log) {
	slices.SortFunc(logs, func(a, b types.Log) int {
		if c := cmp.Compare(a.BlockNumber, b.BlockNumber); c != 0 {
			return c
		}
		return cmp.Compare(a.Index, b.Index)
	})
}

// Plan describes how a query is answered: the parts already cached and the calls needed for the rest.
type Plan struct {
	Query   LogQuery       `json:"query"`
	Covered []ranges.Range `json:"covered"`
	Gaps    []ranges.Range `json:"gaps"`
	// Chunks are inclusive block ranges, one eth_getLogs call each
	Chunks []ranges.Range `json:"chunks"`
}

// Store persists fetched logs and the block ranges each query key is known to be complete for.
type Store interface {
	// GetCoverage returns the merged ranges recorded for key, clipped to bounds.
	// Coverage of the wildcard key also counts for filtered keys of the same address.
	GetCoverage(ctx context.Context, key QueryKey, bounds ranges.Range) ([]ranges.Range, error)

	// GetLogs returns the stored logs of the query ordered by block and log index.
	GetLogs(ctx context.Context, query LogQuery) ([]types.Log, error)

	// StoreLogs saves logs fetched for key over covered and records covered as complete.
	StoreLogs(ctx context.Context, key QueryKey, covered ranges.Range, logs []types.Log) error

	// CompactCoverage merges overlapping and adjacent coverage records of key and returns the number removed.
	CompactCoverage(ctx context.Context, key QueryKey) (int, error)

	// InvalidateFrom drops logs and coverage of chainID at or above fromBlock.
	InvalidateFrom(ctx context.Context, chainID, fromBlock uint64) error

	// PruneBefore drops logs and coverage of chainID below beforeBlock.
	PruneBefore(ctx context.Context, chainID, beforeBlock uint64) error

	// Close releases the store.
	Close() error
}

// CallKey identifies an eth_call result: calldata sent to To on ChainID at a pinned block.
type CallKey struct {
	ChainID uint64
	To      common.Address
	Block   uint64
	Data    []byte
}

// DataHash returns the keccak256 of the calldata.
func (k CallKey) DataHash() common.Hash {
	return crypto.Keccak256Hash(k.Data)
}

// CallStore caches eth_call results pinned to finalized blocks.
type CallStore interface {
	// GetCall returns the cached result and whether it was found.
	GetCall(ctx context.Context, key CallKey) ([]byte, bool, error)

	// StoreCall saves the result of key.
	StoreCall(ctx context.Context, key CallKey, result []byte) error
}
