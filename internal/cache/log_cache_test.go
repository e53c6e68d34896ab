package cache

import (
	"context"
	"errors"
	"math"
	"math/big"
	"path/filepath"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/goran-ethernal/ChainCache/internal/cache/store"
	"github.com/goran-ethernal/ChainCache/internal/logger"
	"github.com/goran-ethernal/ChainCache/internal/rpc/mocks"
	itypes "github.com/goran-ethernal/ChainCache/internal/types"
	"github.com/goran-ethernal/ChainCache/pkg/cache"
	cachemocks "github.com/goran-ethernal/ChainCache/pkg/cache/mocks"
	"github.com/goran-ethernal/ChainCache/pkg/config"
	"github.com/goran-ethernal/ChainCache/pkg/ranges"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	tokenAddr   = ethcommon.HexToAddress("0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d")
	transferSig = ethcommon.HexToHash("0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef")
)

type dataError struct {
	msg  string
	data string
}

func (e *dataError) Error() string          { return e.msg }
func (e *dataError) ErrorData() interface{} { return e.data }

func newTestStore(t *testing.T) *store.Store {
	t.Helper()

	cfg := config.CacheConfig{DB: config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "cache.sqlite")}}
	cfg.ApplyDefaults()

	s, err := store.Open(cfg, logger.NewNopLogger())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return s
}

func newTestLogCache(t *testing.T, cfg Config, client *mocks.EthClient, s cache.Store) *LogCache {
	t.Helper()

	if cfg.Finality == "" {
		cfg.Finality = itypes.FinalityFinalized
	}

	c, err := NewLogCache(cfg, 1, client, s, logger.NewNopLogger())
	require.NoError(t, err)

	return c
}

func blocks(from, to uint64) interface{} {
	return mock.MatchedBy(func(q ethereum.FilterQuery) bool {
		return q.FromBlock.Uint64() == from && q.ToBlock.Uint64() == to
	})
}

func transferAt(block uint64, index uint) types.Log {
	return types.Log{
		Address:     tokenAddr,
		BlockNumber: block,
		Index:       index,
		Topics:      []ethcommon.Hash{transferSig},
		Data:        []byte{},
	}
}

func expectFinalized(client *mocks.EthClient, block int64) {
	client.EXPECT().GetFinalizedBlockHeader(mock.Anything).
		Return(&types.Header{Number: big.NewInt(block)}, nil).Once()
}

func blockNumbers(logs []types.Log) []uint64 {
	out := make([]uint64, len(logs))
	for i, l := range logs {
		out[i] = l.BlockNumber
	}
	return out
}

func TestLogCache_ColdThenWarm(t *testing.T) {
	client := mocks.NewEthClient(t)
	s := newTestStore(t)
	c := newTestLogCache(t, Config{MaxBlocksPerCall: 100, ChunkMode: ranges.ModeDefault, MaxConcurrentCalls: 2}, client, s)

	expectFinalized(client, 1000)
	client.EXPECT().GetLogs(mock.Anything, blocks(100, 199)).Return([]types.Log{transferAt(150, 1), transferAt(150, 0)}, nil).Once()
	client.EXPECT().GetLogs(mock.Anything, blocks(200, 299)).Return(nil, nil).Once()
	client.EXPECT().GetLogs(mock.Anything, blocks(300, 349)).Return([]types.Log{transferAt(349, 0)}, nil).Once()

	q := cache.LogQuery{Address: tokenAddr, FromBlock: 100, ToBlock: 349}

	logs, err := c.GetLogs(context.Background(), q)
	require.NoError(t, err)
	require.Equal(t, []uint64{150, 150, 349}, blockNumbers(logs))
	require.Equal(t, uint(0), logs[0].Index)

	// served entirely from the store
	again, err := c.GetLogs(context.Background(), q)
	require.NoError(t, err)
	require.Equal(t, logs, again)

	inner, err := c.GetLogs(context.Background(), cache.LogQuery{Address: tokenAddr, FromBlock: 151, ToBlock: 348})
	require.NoError(t, err)
	require.Empty(t, inner)
}

func TestLogCache_Plan(t *testing.T) {
	tests := []struct {
		name      string
		mode      ranges.ChunkMode
		covered   []ranges.Range
		from, to  uint64
		expGaps   []ranges.Range
		expChunks []ranges.Range
	}{
		{
			name:      "cold default",
			mode:      ranges.ModeDefault,
			from:      390,
			to:        710,
			expGaps:   []ranges.Range{{Start: 390, End: 710}},
			expChunks: []ranges.Range{{Start: 390, End: 489}, {Start: 490, End: 589}, {Start: 590, End: 689}, {Start: 690, End: 710}},
		},
		{
			name:      "partial aligned trimmed",
			mode:      ranges.ModeAlignedTrimmed,
			covered:   []ranges.Range{{Start: 150, End: 250}},
			from:      100,
			to:        349,
			expGaps:   []ranges.Range{{Start: 100, End: 149}, {Start: 251, End: 349}},
			expChunks: []ranges.Range{{Start: 100, End: 149}, {Start: 251, End: 299}, {Start: 300, End: 349}},
		},
		{
			name:      "index mode chunks are returned inclusive",
			mode:      ranges.ModeIndex,
			from:      390,
			to:        710,
			expGaps:   []ranges.Range{{Start: 390, End: 710}},
			expChunks: []ranges.Range{{Start: 390, End: 489}, {Start: 490, End: 589}, {Start: 590, End: 689}, {Start: 690, End: 710}},
		},
		{
			name:      "aligned gaps in one grid cell share a chunk",
			mode:      ranges.ModeAligned,
			covered:   []ranges.Range{{Start: 10, End: 20}},
			from:      0,
			to:        99,
			expGaps:   []ranges.Range{{Start: 0, End: 9}, {Start: 21, End: 99}},
			expChunks: []ranges.Range{{Start: 0, End: 99}},
		},
		{
			name:    "fully covered",
			mode:    ranges.ModeDefault,
			covered: []ranges.Range{{Start: 0, End: 1000}},
			from:    10,
			to:      20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(t)
			key := cache.QueryKey{ChainID: 1, Address: tokenAddr}
			for _, r := range tt.covered {
				require.NoError(t, s.StoreLogs(context.Background(), key, r, nil))
			}

			c := newTestLogCache(t, Config{MaxBlocksPerCall: 100, ChunkMode: tt.mode}, mocks.NewEthClient(t), s)

			plan, err := c.Plan(context.Background(), cache.LogQuery{Address: tokenAddr, FromBlock: tt.from, ToBlock: tt.to})
			require.NoError(t, err)
			require.Equal(t, uint64(1), plan.Query.ChainID)
			require.Equal(t, tt.expGaps, plan.Gaps)
			require.Equal(t, tt.expChunks, plan.Chunks)
		})
	}
}

func TestLogCache_OnlyFinalizedBlocksAreCovered(t *testing.T) {
	client := mocks.NewEthClient(t)
	s := newTestStore(t)
	c := newTestLogCache(t, Config{MaxBlocksPerCall: 100, ChunkMode: ranges.ModeDefault}, client, s)

	expectFinalized(client, 250)
	client.EXPECT().GetLogs(mock.Anything, blocks(100, 199)).Return([]types.Log{transferAt(120, 0)}, nil).Once()
	client.EXPECT().GetLogs(mock.Anything, blocks(200, 299)).
		Return([]types.Log{transferAt(240, 0), transferAt(260, 0)}, nil).Once()

	logs, err := c.GetLogs(context.Background(), cache.LogQuery{Address: tokenAddr, FromBlock: 100, ToBlock: 299})
	require.NoError(t, err)
	require.Equal(t, []uint64{120, 240, 260}, blockNumbers(logs))

	covered, err := s.GetCoverage(context.Background(), cache.QueryKey{ChainID: 1, Address: tokenAddr},
		ranges.Range{Start: 0, End: 1000})
	require.NoError(t, err)
	require.Equal(t, []ranges.Range{{Start: 100, End: 250}}, covered)

	stored, err := s.GetLogs(context.Background(), cache.LogQuery{ChainID: 1, Address: tokenAddr, FromBlock: 0, ToBlock: 1000})
	require.NoError(t, err)
	require.Equal(t, []uint64{120, 240}, blockNumbers(stored))

	// the unfinalized tail is fetched again on the next query
	expectFinalized(client, 300)
	client.EXPECT().GetLogs(mock.Anything, blocks(251, 299)).Return([]types.Log{transferAt(260, 0)}, nil).Once()

	logs, err = c.GetLogs(context.Background(), cache.LogQuery{Address: tokenAddr, FromBlock: 100, ToBlock: 299})
	require.NoError(t, err)
	require.Equal(t, []uint64{120, 240, 260}, blockNumbers(logs))
}

func TestLogCache_QueryAboveFinalizedIsNotStored(t *testing.T) {
	client := mocks.NewEthClient(t)
	s := cachemocks.NewStore(t)
	c := newTestLogCache(t, Config{MaxBlocksPerCall: 1000, ChunkMode: ranges.ModeDefault}, client, s)

	q := cache.LogQuery{ChainID: 1, Address: tokenAddr, FromBlock: 500, ToBlock: 600}

	s.EXPECT().GetCoverage(mock.Anything, q.Key(), q.Range()).Return(nil, nil).Once()
	s.EXPECT().GetLogs(mock.Anything, q).Return(nil, nil).Once()
	expectFinalized(client, 400)
	client.EXPECT().GetLogs(mock.Anything, blocks(500, 600)).Return([]types.Log{transferAt(550, 2)}, nil).Once()

	logs, err := c.GetLogs(context.Background(), q)
	require.NoError(t, err)
	require.Equal(t, []uint64{550}, blockNumbers(logs))
}

func TestLogCache_SplitsRejectedRanges(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		setup func(client *mocks.EthClient)
	}{
		{
			name: "too many results with suggested range",
			err: &dataError{
				msg:  "query returned more than 10000 results",
				data: "Query returned more than 10000 results. Try with this block range [0x0, 0x13].",
			},
			setup: func(client *mocks.EthClient) {
				client.EXPECT().GetLogs(mock.Anything, blocks(0, 19)).Return([]types.Log{transferAt(5, 0)}, nil).Once()
				client.EXPECT().GetLogs(mock.Anything, blocks(20, 99)).Return([]types.Log{transferAt(80, 0)}, nil).Once()
			},
		},
		{
			name: "range too large halves the chunk",
			err:  errors.New("block range is too wide"),
			setup: func(client *mocks.EthClient) {
				client.EXPECT().GetLogs(mock.Anything, blocks(0, 49)).Return([]types.Log{transferAt(5, 0)}, nil).Once()
				client.EXPECT().GetLogs(mock.Anything, blocks(50, 99)).Return([]types.Log{transferAt(80, 0)}, nil).Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := mocks.NewEthClient(t)
			s := newTestStore(t)
			c := newTestLogCache(t, Config{MaxBlocksPerCall: 100, ChunkMode: ranges.ModeDefault}, client, s)

			expectFinalized(client, 1000)
			client.EXPECT().GetLogs(mock.Anything, blocks(0, 99)).Return(nil, tt.err).Once()
			tt.setup(client)

			logs, err := c.GetLogs(context.Background(), cache.LogQuery{Address: tokenAddr, FromBlock: 0, ToBlock: 99})
			require.NoError(t, err)
			require.Equal(t, []uint64{5, 80}, blockNumbers(logs))

			covered, err := s.GetCoverage(context.Background(), cache.QueryKey{ChainID: 1, Address: tokenAddr},
				ranges.Range{Start: 0, End: 99})
			require.NoError(t, err)
			require.Equal(t, []ranges.Range{{Start: 0, End: 99}}, covered)
		})
	}
}

func TestLogCache_SingleBlockCannotBeSplit(t *testing.T) {
	client := mocks.NewEthClient(t)
	c := newTestLogCache(t, Config{MaxBlocksPerCall: 100, ChunkMode: ranges.ModeDefault}, client, newTestStore(t))

	expectFinalized(client, 1000)
	client.EXPECT().GetLogs(mock.Anything, blocks(7, 7)).Return(nil, errors.New("block range too large")).Once()

	_, err := c.GetLogs(context.Background(), cache.LogQuery{Address: tokenAddr, FromBlock: 7, ToBlock: 7})
	require.ErrorContains(t, err, "cannot split range further")
}

func TestLogCache_RPCErrorLeavesNoCoverage(t *testing.T) {
	client := mocks.NewEthClient(t)
	s := newTestStore(t)
	c := newTestLogCache(t, Config{MaxBlocksPerCall: 100, ChunkMode: ranges.ModeDefault}, client, s)

	expectFinalized(client, 1000)
	client.EXPECT().GetLogs(mock.Anything, blocks(0, 99)).Return(nil, errors.New("execution reverted")).Once()

	_, err := c.GetLogs(context.Background(), cache.LogQuery{Address: tokenAddr, FromBlock: 0, ToBlock: 99})
	require.ErrorContains(t, err, "execution reverted")

	covered, err := s.GetCoverage(context.Background(), cache.QueryKey{ChainID: 1, Address: tokenAddr},
		ranges.Range{Start: 0, End: 99})
	require.NoError(t, err)
	require.Empty(t, covered)
}

func TestLogCache_TopicFilter(t *testing.T) {
	client := mocks.NewEthClient(t)
	s := newTestStore(t)
	c := newTestLogCache(t, Config{MaxBlocksPerCall: 1000, ChunkMode: ranges.ModeDefault}, client, s)

	expectFinalized(client, 1000)
	client.EXPECT().GetLogs(mock.Anything, mock.MatchedBy(func(q ethereum.FilterQuery) bool {
		return len(q.Topics) == 1 && len(q.Topics[0]) == 1 && q.Topics[0][0] == transferSig &&
			len(q.Addresses) == 1 && q.Addresses[0] == tokenAddr
	})).Return([]types.Log{transferAt(10, 0)}, nil).Once()

	q := cache.LogQuery{Address: tokenAddr, Topic0s: []ethcommon.Hash{transferSig}, FromBlock: 0, ToBlock: 100}
	logs, err := c.GetLogs(context.Background(), q)
	require.NoError(t, err)
	require.Len(t, logs, 1)

	// the filtered coverage does not serve unfiltered queries
	plan, err := c.Plan(context.Background(), cache.LogQuery{Address: tokenAddr, FromBlock: 0, ToBlock: 100})
	require.NoError(t, err)
	require.Equal(t, []ranges.Range{{Start: 0, End: 100}}, plan.Gaps)
}

func TestLogCache_CancelledCallerDoesNotFailSharedFetch(t *testing.T) {
	client := mocks.NewEthClient(t)
	s := newTestStore(t)
	c := newTestLogCache(t, Config{MaxBlocksPerCall: 100, ChunkMode: ranges.ModeDefault}, client, s)

	q := cache.LogQuery{Address: tokenAddr, FromBlock: 100, ToBlock: 199}

	fetching := make(chan struct{})
	release := make(chan struct{})
	client.EXPECT().GetLogs(mock.Anything, blocks(100, 199)).
		RunAndReturn(func(context.Context, ethereum.FilterQuery) ([]types.Log, error) {
			close(fetching)
			<-release
			return []types.Log{transferAt(120, 0), transferAt(180, 3)}, nil
		}).Once()

	expectFinalized(client, 1000)
	ctxA, cancelA := context.WithCancel(context.Background())
	defer cancelA()

	errA := make(chan error, 1)
	go func() {
		_, err := c.GetLogs(ctxA, q)
		errA <- err
	}()
	<-fetching

	secondPlanned := make(chan struct{})
	client.EXPECT().GetFinalizedBlockHeader(mock.Anything).
		Run(func(context.Context) { close(secondPlanned) }).
		Return(&types.Header{Number: big.NewInt(1000)}, nil).Once()

	type result struct {
		logs []types.Log
		err  error
	}
	resB := make(chan result, 1)
	go func() {
		logs, err := c.GetLogs(context.Background(), q)
		resB <- result{logs: logs, err: err}
	}()
	<-secondPlanned
	time.Sleep(50 * time.Millisecond)

	cancelA()
	require.ErrorIs(t, <-errA, context.Canceled)

	close(release)
	b := <-resB
	require.NoError(t, b.err)
	require.Equal(t, []uint64{120, 180}, blockNumbers(b.logs))

	covered, err := s.GetCoverage(context.Background(), cache.QueryKey{ChainID: 1, Address: tokenAddr},
		ranges.Range{Start: 0, End: 1000})
	require.NoError(t, err)
	require.Equal(t, []ranges.Range{{Start: 100, End: 199}}, covered)
}

func TestLogCache_TooManyChunks(t *testing.T) {
	client := mocks.NewEthClient(t)
	s := newTestStore(t)
	c := newTestLogCache(t, Config{MaxBlocksPerCall: 1, ChunkMode: ranges.ModeDefault, MaxChunks: 1000}, client, s)

	q := cache.LogQuery{Address: tokenAddr, FromBlock: 0, ToBlock: 3_000_000}

	_, err := c.Plan(context.Background(), q)
	require.ErrorIs(t, err, cache.ErrInvalidQuery)

	_, err = c.GetLogs(context.Background(), q)
	require.ErrorIs(t, err, cache.ErrInvalidQuery)

	_, err = c.Plan(context.Background(), cache.LogQuery{Address: tokenAddr, FromBlock: 0, ToBlock: math.MaxInt64})
	require.ErrorIs(t, err, cache.ErrInvalidQuery)

	// only the uncached part counts against the limit
	key := cache.QueryKey{ChainID: 1, Address: tokenAddr}
	require.NoError(t, s.StoreLogs(context.Background(), key, ranges.Range{Start: 0, End: 2_999_000}, nil))

	plan, err := c.Plan(context.Background(), q)
	require.NoError(t, err)
	require.Len(t, plan.Chunks, 1000)
}

func TestLogCache_InvalidQueries(t *testing.T) {
	c := newTestLogCache(t, Config{MaxBlocksPerCall: 100}, mocks.NewEthClient(t), cachemocks.NewStore(t))

	_, err := c.GetLogs(context.Background(), cache.LogQuery{ChainID: 137, Address: tokenAddr, FromBlock: 0, ToBlock: 1})
	require.ErrorIs(t, err, cache.ErrInvalidQuery)

	_, err = c.Plan(context.Background(), cache.LogQuery{Address: tokenAddr, FromBlock: 2, ToBlock: 1})
	require.ErrorIs(t, err, cache.ErrInvalidQuery)
}

func TestNewLogCache_Validation(t *testing.T) {
	_, err := NewLogCache(Config{}, 1, mocks.NewEthClient(t), cachemocks.NewStore(t), logger.NewNopLogger())
	require.ErrorIs(t, err, ranges.ErrInvalidArgument)

	_, err = NewLogCache(Config{MaxBlocksPerCall: 10, Finality: "pending"}, 1, mocks.NewEthClient(t),
		cachemocks.NewStore(t), logger.NewNopLogger())
	require.ErrorContains(t, err, "invalid block finality")
}

func TestConfigFromRPC(t *testing.T) {
	rpcCfg := config.RPCConfig{
		MaxBlocksPerCall:    500,
		ChunkPolicy:         config.ChunkPolicyConfig{RoundBounds: true, TrimOuterBounds: true},
		MaxConcurrentCalls:  3,
		MaxChunksPerRequest: 250,
		Finality:            "latest",
		FinalizedLag:        12,
	}

	cfg, err := ConfigFromRPC(rpcCfg)
	require.NoError(t, err)
	require.Equal(t, Config{
		MaxBlocksPerCall:   500,
		ChunkMode:          ranges.ModeAlignedTrimmed,
		MaxConcurrentCalls: 3,
		MaxChunks:          250,
		Finality:           itypes.FinalityLatest,
		FinalizedLag:       12,
	}, cfg)

	rpcCfg.Finality = "pending"
	_, err = ConfigFromRPC(rpcCfg)
	require.Error(t, err)
}
