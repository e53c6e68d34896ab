package cache

import (
	"context"
	"fmt"
	"math/big"
	"slices"
	"strconv"

	"github.com/ethereum/go-ethereum"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/goran-ethernal/ChainCache/internal/common"
	"github.com/goran-ethernal/ChainCache/internal/logger"
	irpc "github.com/goran-ethernal/ChainCache/internal/rpc"
	itypes "github.com/goran-ethernal/ChainCache/internal/types"
	"github.com/goran-ethernal/ChainCache/pkg/cache"
	"github.com/goran-ethernal/ChainCache/pkg/config"
	"github.com/goran-ethernal/ChainCache/pkg/ranges"
	"github.com/goran-ethernal/ChainCache/pkg/rpc"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// Config holds the request planning settings of a LogCache.
type Config struct {
	// MaxBlocksPerCall is the widest block range sent in one eth_getLogs call
	MaxBlocksPerCall uint64

	// ChunkMode decides where chunk boundaries fall
	ChunkMode ranges.ChunkMode

	// MaxConcurrentCalls caps the number of chunks fetched in parallel
	MaxConcurrentCalls int

	// MaxChunks rejects queries whose gaps need more chunks; zero disables the check
	MaxChunks uint64

	// Finality decides the highest block recorded as covered
	Finality itypes.BlockFinality

	// FinalizedLag is only used with FinalityLatest
	FinalizedLag uint64
}

// ConfigFromRPC builds a Config from the rpc section of the configuration.
func ConfigFromRPC(cfg config.RPCConfig) (Config, error) {
	finality, err := itypes.ParseBlockFinality(cfg.Finality)
	if err != nil {
		return Config{}, err
	}

	return Config{
		MaxBlocksPerCall:   cfg.MaxBlocksPerCall,
		ChunkMode:          cfg.ChunkPolicy.Mode(),
		MaxConcurrentCalls: cfg.MaxConcurrentCalls,
		MaxChunks:          cfg.MaxChunksPerRequest,
		Finality:           finality,
		FinalizedLag:       cfg.FinalizedLag,
	}, nil
}

// LogCache answers eth_getLogs queries from the local store and fetches only the missing block ranges.
// Only blocks at or below the finalized block are recorded as covered.
type LogCache struct {
	cfg     Config
	chainID uint64
	rpc     rpc.EthClient
	store   cache.Store
	flight  singleflight.Group
	log     *logger.Logger
}

// NewLogCache creates a log cache for the chain served by client.
func NewLogCache(cfg Config, chainID uint64, client rpc.EthClient, store cache.Store, log *logger.Logger) (*LogCache, error) {
	if cfg.MaxBlocksPerCall == 0 {
		return nil, fmt.Errorf("%w: max blocks per call must be positive", ranges.ErrInvalidArgument)
	}
	if cfg.MaxConcurrentCalls <= 0 {
		cfg.MaxConcurrentCalls = 1
	}
	if !cfg.Finality.IsValid() {
		return nil, fmt.Errorf("invalid block finality: %q", cfg.Finality)
	}

	return &LogCache{
		cfg:     cfg,
		chainID: chainID,
		rpc:     client,
		store:   store,
		log:     log.WithComponent(common.ComponentLogCache),
	}, nil
}

// ChainID returns the chain served by this cache.
func (c *LogCache) ChainID() uint64 {
	return c.chainID
}

// FinalizedBlock resolves the current finalized block under the configured finality.
func (c *LogCache) FinalizedBlock(ctx context.Context) (uint64, error) {
	block, err := c.cfg.Finality.Resolve(ctx, c.rpc, c.cfg.FinalizedLag)
	if err != nil {
		return 0, err
	}

	FinalizedBlockSet(strconv.FormatUint(c.chainID, 10), block)

	return block, nil
}

func (c *LogCache) normalize(q cache.LogQuery) (cache.LogQuery, error) {
	if q.ChainID == 0 {
		q.ChainID = c.chainID
	}
	if q.ChainID != c.chainID {
		return q, fmt.Errorf("%w: chain %d is not served by this cache (chain %d)", cache.ErrInvalidQuery, q.ChainID, c.chainID)
	}

	return q, q.Validate()
}

// Plan computes the cached coverage of q, its gaps and the chunks needed to fill them.
// In aligned untrimmed mode the outer chunks of a gap extend to full grid cells and may
// refetch blocks that are already covered; the store ignores the duplicate rows.
// Queries needing more than MaxChunks chunks are rejected with ErrInvalidQuery.
func (c *LogCache) Plan(ctx context.Context, q cache.LogQuery) (*cache.Plan, error) {
	q, err := c.normalize(q)
	if err != nil {
		return nil, err
	}

	covered, err := c.store.GetCoverage(ctx, q.Key(), q.Range())
	if err != nil {
		return nil, fmt.Errorf("failed to get coverage: %w", err)
	}

	gaps, err := ranges.GetRangeGaps(q.FromBlock, q.ToBlock, covered)
	if err != nil {
		return nil, err
	}

	if err := c.checkChunkCount(gaps); err != nil {
		return nil, err
	}

	var chunks []ranges.Range
	for _, gap := range gaps {
		gapChunks, err := ranges.RangeToChunks(gap.Start, gap.End, c.cfg.MaxBlocksPerCall, c.cfg.ChunkMode)
		if err != nil {
			return nil, fmt.Errorf("failed to chunk gap %s: %w", gap, err)
		}
		for _, chunk := range gapChunks {
			chunks = append(chunks, ranges.ToInclusive(chunk, c.cfg.ChunkMode))
		}
	}

	// untrimmed aligned chunks of neighbouring gaps can land on the same grid cell
	chunks = slices.Compact(chunks)

	return &cache.Plan{Query: q, Covered: covered, Gaps: gaps, Chunks: chunks}, nil
}

func (c *LogCache) checkChunkCount(gaps []ranges.Range) error {
	if c.cfg.MaxChunks == 0 {
		return nil
	}

	var total uint64
	for _, gap := range gaps {
		n, err := ranges.CountChunks(gap.Start, gap.End, c.cfg.MaxBlocksPerCall, c.cfg.ChunkMode)
		if err != nil {
			return fmt.Errorf("failed to chunk gap %s: %w", gap, err)
		}
		if n > c.cfg.MaxChunks-total {
			return fmt.Errorf("%w: uncached ranges need more than %d calls of %d blocks",
				cache.ErrInvalidQuery, c.cfg.MaxChunks, c.cfg.MaxBlocksPerCall)
		}
		total += n
	}

	return nil
}

// GetLogs returns the logs matching q ordered by block number and log index.
// Missing ranges are fetched concurrently; finalized parts of them are written to the store.
func (c *LogCache) GetLogs(ctx context.Context, q cache.LogQuery) ([]types.Log, error) {
	plan, err := c.Plan(ctx, q)
	if err != nil {
		return nil, err
	}
	q = plan.Query

	var cachedBlocks uint64
	for _, r := range plan.Covered {
		cachedBlocks += r.Len()
	}
	BlocksServedAdd("cache", cachedBlocks)

	if len(plan.Chunks) == 0 {
		QueryOutcomeInc("hit")
		return c.store.GetLogs(ctx, q)
	}

	if len(plan.Covered) == 0 {
		QueryOutcomeInc("miss")
	} else {
		QueryOutcomeInc("partial")
	}

	finalized, err := c.FinalizedBlock(ctx)
	if err != nil {
		return nil, err
	}

	c.log.Debugf("query %s %s: %d gaps, %d chunks, finalized %d",
		q.Key(), q.Range(), len(plan.Gaps), len(plan.Chunks), finalized)

	unfinalized := make([][]types.Log, len(plan.Chunks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.cfg.MaxConcurrentCalls)

	for i, chunk := range plan.Chunks {
		g.Go(func() error {
			logs, err := c.fetchAndStore(gctx, q, chunk, finalized)
			if err != nil {
				return err
			}
			unfinalized[i] = logs
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	stored, err := c.store.GetLogs(ctx, q)
	if err != nil {
		return nil, err
	}

	result := stored
	for _, logs := range unfinalized {
		for _, l := range logs {
			if q.Range().Contains(l.BlockNumber) {
				result = append(result, l)
			}
		}
	}

	cache.SortLogs(result)

	return slices.CompactFunc(result, func(a, b types.Log) bool {
		return a.BlockNumber == b.BlockNumber && a.Index == b.Index
	}), nil
}

// fetchAndStore fetches chunk, records its finalized part and returns the logs above finalized.
// Concurrent requests for the same chunk and filter share one fetch. The shared fetch is detached
// from the cancellation of the request that started it; each caller stops waiting on its own ctx.
func (c *LogCache) fetchAndStore(ctx context.Context, q cache.LogQuery, chunk ranges.Range, finalized uint64) ([]types.Log, error) {
	key := q.Key()
	flightKey := fmt.Sprintf("%s/%s", key, chunk)
	fetchCtx := context.WithoutCancel(ctx)

	ch := c.flight.DoChan(flightKey, func() (any, error) {
		logs, err := c.fetchChunk(fetchCtx, q, chunk.Start, chunk.End)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch logs for %s %s: %w", key, chunk, err)
		}

		BlocksServedAdd("rpc", chunk.Len())

		if chunk.Start > finalized {
			return logs, nil
		}

		covered := ranges.Range{Start: chunk.Start, End: min(chunk.End, finalized)}
		split := len(logs)
		for i, l := range logs {
			if l.BlockNumber > covered.End {
				split = i
				break
			}
		}

		if err := c.store.StoreLogs(fetchCtx, key, covered, logs[:split]); err != nil {
			return nil, fmt.Errorf("failed to store logs for %s %s: %w", key, covered, err)
		}

		return logs[split:], nil
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res = <-ch:
	}
	if res.Err != nil {
		return nil, res.Err
	}

	if res.Shared {
		c.log.Debugf("chunk %s of %s served by a concurrent fetch", chunk, key)
	}

	return res.Val.([]types.Log), nil
}

// fetchChunk calls eth_getLogs for [from, to], splitting the range while the node rejects its size.
// A range suggested by the node is used as the first half when it starts at from.
func (c *LogCache) fetchChunk(ctx context.Context, q cache.LogQuery, from, to uint64) ([]types.Log, error) {
	filter := ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(from),
		ToBlock:   new(big.Int).SetUint64(to),
		Addresses: []ethcommon.Address{q.Address},
	}
	if len(q.Topic0s) > 0 {
		filter.Topics = [][]ethcommon.Hash{q.Topic0s}
	}

	logs, err := c.rpc.GetLogs(ctx, filter)
	if err == nil {
		ChunksFetchedInc()
		cache.SortLogs(logs)
		return logs, nil
	}

	if !irpc.ShouldSplitRange(err) {
		return nil, err
	}
	if from == to {
		return nil, fmt.Errorf("cannot split range further, block %d alone is rejected: %w", from, err)
	}

	ChunkSplitsInc()

	mid := from + (to-from)/2 //nolint:mnd
	if tooMany, data := irpc.IsTooManyResultsError(err); tooMany {
		if sFrom, sTo, ok := irpc.ParseSuggestedBlockRange(data); ok && sFrom == from && sTo < to {
			mid = sTo
		}
	}

	c.log.Infof("node rejected blocks %d-%d, retrying as %d-%d and %d-%d", from, to, from, mid, mid+1, to)

	left, err := c.fetchChunk(ctx, q, from, mid)
	if err != nil {
		return nil, err
	}

	right, err := c.fetchChunk(ctx, q, mid+1, to)
	if err != nil {
		return nil, err
	}

	return append(left, right...), nil
}
