package store

import (
	"context"
	"math/big"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/goran-ethernal/ChainCache/internal/db"
	"github.com/goran-ethernal/ChainCache/internal/logger"
	"github.com/goran-ethernal/ChainCache/pkg/cache"
	"github.com/goran-ethernal/ChainCache/pkg/config"
	"github.com/goran-ethernal/ChainCache/pkg/ranges"
	"github.com/stretchr/testify/require"
)

var (
	testAddr    = common.HexToAddress("0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d")
	otherAddr   = common.HexToAddress("0x00000000000000000000000000000000000000ff")
	transferSig = common.HexToHash("0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef")
	approvalSig = common.HexToHash("0x8c5be1e5ebec7d5bd14f71427d1e84f3dd0314c0f7b2291e5b200ac8c7c3b925")
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	cfg := config.CacheConfig{DB: config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "cache.sqlite")}}
	cfg.ApplyDefaults()

	s, err := Open(cfg, logger.NewNopLogger())
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, s.Close()) })

	return s
}

func makeLog(address common.Address, block uint64, index uint, topic0 common.Hash) types.Log {
	return types.Log{
		Address:     address,
		BlockNumber: block,
		BlockHash:   common.BigToHash(new(big.Int).SetUint64(block)),
		TxHash:      common.BigToHash(new(big.Int).SetUint64(block*1000 + uint64(index))),
		TxIndex:     index,
		Index:       index,
		Topics:      []common.Hash{topic0, common.BytesToHash(address.Bytes())},
		Data:        []byte{byte(block), byte(index)},
	}
}

func wildcardKey(chainID uint64) cache.QueryKey {
	return cache.QueryKey{ChainID: chainID, Address: testAddr}
}

func coverageRows(t *testing.T, s *Store, key cache.QueryKey) int {
	t.Helper()

	var n int
	err := s.DB().QueryRow(`SELECT COUNT(*) FROM log_coverage WHERE chain_id = ? AND address = ? AND filter_hash = ?`,
		key.ChainID, key.Address.Hex(), key.FilterHash.Hex()).Scan(&n)
	require.NoError(t, err)

	return n
}

func TestStore_StoreAndGetLogs(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	logs := []types.Log{
		makeLog(testAddr, 105, 3, transferSig),
		makeLog(testAddr, 101, 0, approvalSig),
		makeLog(testAddr, 105, 1, transferSig),
	}
	require.NoError(t, s.StoreLogs(ctx, wildcardKey(1), ranges.Range{Start: 100, End: 110}, logs))

	got, err := s.GetLogs(ctx, cache.LogQuery{ChainID: 1, Address: testAddr, FromBlock: 100, ToBlock: 110})
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, []uint64{101, 105, 105}, []uint64{got[0].BlockNumber, got[1].BlockNumber, got[2].BlockNumber})
	require.Equal(t, uint(1), got[1].Index)
	require.Equal(t, logs[2], got[1])

	filtered, err := s.GetLogs(ctx, cache.LogQuery{
		ChainID: 1, Address: testAddr, Topic0s: []common.Hash{approvalSig}, FromBlock: 100, ToBlock: 110,
	})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	require.Equal(t, approvalSig, filtered[0].Topics[0])

	other, err := s.GetLogs(ctx, cache.LogQuery{ChainID: 5, Address: testAddr, FromBlock: 100, ToBlock: 110})
	require.NoError(t, err)
	require.Empty(t, other)
}

func TestStore_StoreLogsIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	logs := []types.Log{makeLog(testAddr, 10, 0, transferSig)}
	require.NoError(t, s.StoreLogs(ctx, wildcardKey(1), ranges.Range{Start: 0, End: 20}, logs))
	require.NoError(t, s.StoreLogs(ctx, wildcardKey(1), ranges.Range{Start: 0, End: 20}, logs))

	got, err := s.GetLogs(ctx, cache.LogQuery{ChainID: 1, Address: testAddr, FromBlock: 0, ToBlock: 20})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, 1, coverageRows(t, s, wildcardKey(1)))
}

func TestStore_StoreLogsRejectsInvalidInput(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	err := s.StoreLogs(ctx, wildcardKey(1), ranges.Range{Start: 20, End: 10}, nil)
	require.ErrorIs(t, err, ranges.ErrInvalidArgument)

	err = s.StoreLogs(ctx, wildcardKey(1), ranges.Range{Start: 0, End: 5}, []types.Log{makeLog(testAddr, 6, 0, transferSig)})
	require.ErrorIs(t, err, cache.ErrInvalidQuery)

	// the failed write must not leave coverage behind
	covered, err := s.GetCoverage(ctx, wildcardKey(1), ranges.Range{Start: 0, End: 100})
	require.NoError(t, err)
	require.Empty(t, covered)
}

func TestStore_CoverageMergesOnWrite(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	key := wildcardKey(1)

	for _, r := range []ranges.Range{{Start: 0, End: 9}, {Start: 20, End: 29}, {Start: 10, End: 19}, {Start: 25, End: 40}} {
		require.NoError(t, s.StoreLogs(ctx, key, r, nil))
	}

	covered, err := s.GetCoverage(ctx, key, ranges.Range{Start: 0, End: 100})
	require.NoError(t, err)
	require.Equal(t, []ranges.Range{{Start: 0, End: 40}}, covered)
	require.Equal(t, 1, coverageRows(t, s, key))

	require.NoError(t, s.StoreLogs(ctx, key, ranges.Range{Start: 60, End: 70}, nil))
	covered, err = s.GetCoverage(ctx, key, ranges.Range{Start: 5, End: 65})
	require.NoError(t, err)
	require.Equal(t, []ranges.Range{{Start: 5, End: 40}, {Start: 60, End: 65}}, covered)
}

func TestStore_WildcardCoverageServesFilteredKeys(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	filtered := cache.LogQuery{ChainID: 1, Address: testAddr, Topic0s: []common.Hash{transferSig}}.Key()

	require.NoError(t, s.StoreLogs(ctx, filtered, ranges.Range{Start: 50, End: 80}, nil))
	require.NoError(t, s.StoreLogs(ctx, wildcardKey(1), ranges.Range{Start: 0, End: 60}, nil))

	covered, err := s.GetCoverage(ctx, filtered, ranges.Range{Start: 0, End: 100})
	require.NoError(t, err)
	require.Equal(t, []ranges.Range{{Start: 0, End: 80}}, covered)

	// filtered coverage does not count for the wildcard key
	covered, err = s.GetCoverage(ctx, wildcardKey(1), ranges.Range{Start: 0, End: 100})
	require.NoError(t, err)
	require.Equal(t, []ranges.Range{{Start: 0, End: 60}}, covered)

	// nor for another address
	covered, err = s.GetCoverage(ctx, cache.QueryKey{ChainID: 1, Address: otherAddr}, ranges.Range{Start: 0, End: 100})
	require.NoError(t, err)
	require.Empty(t, covered)
}

func insertRawCoverage(t *testing.T, s *Store, key cache.QueryKey, rs ...ranges.Range) {
	t.Helper()

	for _, r := range rs {
		_, err := s.DB().Exec(`INSERT INTO log_coverage (chain_id, address, filter_hash, from_block, to_block)
			VALUES (?, ?, ?, ?, ?)`, key.ChainID, key.Address.Hex(), key.FilterHash.Hex(), r.Start, r.End)
		require.NoError(t, err)
	}
}

func TestStore_CompactCoverage(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	key := wildcardKey(1)

	insertRawCoverage(t, s, key,
		ranges.Range{Start: 0, End: 10},
		ranges.Range{Start: 5, End: 15},
		ranges.Range{Start: 16, End: 20},
		ranges.Range{Start: 30, End: 40},
	)

	removed, err := s.CompactCoverage(ctx, key)
	require.NoError(t, err)
	require.Equal(t, 2, removed)
	require.Equal(t, 2, coverageRows(t, s, key))

	covered, err := s.GetCoverage(ctx, key, ranges.Range{Start: 0, End: 100})
	require.NoError(t, err)
	require.Equal(t, []ranges.Range{{Start: 0, End: 20}, {Start: 30, End: 40}}, covered)

	removed, err = s.CompactCoverage(ctx, key)
	require.NoError(t, err)
	require.Zero(t, removed)
}

func TestStore_CompactAllThroughMaintenance(t *testing.T) {
	cfg := config.CacheConfig{
		DB:          config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "cache.sqlite")},
		Maintenance: &config.MaintenanceConfig{CompactCoverage: true},
	}
	cfg.ApplyDefaults()

	s, err := Open(cfg, logger.NewNopLogger())
	require.NoError(t, err)
	defer s.Close()

	mainnet := wildcardKey(1)
	polygon := cache.QueryKey{ChainID: 137, Address: otherAddr, FilterHash: cache.FilterHash([]common.Hash{transferSig})}

	insertRawCoverage(t, s, mainnet, ranges.Range{Start: 0, End: 10}, ranges.Range{Start: 11, End: 20})
	insertRawCoverage(t, s, polygon, ranges.Range{Start: 0, End: 10}, ranges.Range{Start: 2, End: 3}, ranges.Range{Start: 50, End: 60})

	keys, err := s.Keys(context.Background())
	require.NoError(t, err)
	require.ElementsMatch(t, []cache.QueryKey{mainnet, polygon}, keys)

	require.NoError(t, s.Maintenance().RunMaintenance(context.Background()))

	metrics := s.Maintenance().GetMetrics()
	require.Equal(t, uint64(2), metrics.CoverageCompacted)
	require.Equal(t, 1, coverageRows(t, s, mainnet))
	require.Equal(t, 2, coverageRows(t, s, polygon))
}

func TestStore_InvalidateFrom(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	key := wildcardKey(1)

	require.NoError(t, s.StoreLogs(ctx, key, ranges.Range{Start: 0, End: 99}, []types.Log{
		makeLog(testAddr, 10, 0, transferSig),
		makeLog(testAddr, 60, 0, transferSig),
	}))
	require.NoError(t, s.StoreLogs(ctx, key, ranges.Range{Start: 150, End: 200}, nil))
	require.NoError(t, s.StoreLogs(ctx, wildcardKey(10), ranges.Range{Start: 0, End: 99},
		[]types.Log{makeLog(testAddr, 70, 0, transferSig)}))
	require.NoError(t, s.StoreCall(ctx, cache.CallKey{ChainID: 1, To: testAddr, Block: 80, Data: []byte{1}}, []byte{2}))

	require.NoError(t, s.InvalidateFrom(ctx, 1, 50))

	covered, err := s.GetCoverage(ctx, key, ranges.Range{Start: 0, End: 1000})
	require.NoError(t, err)
	require.Equal(t, []ranges.Range{{Start: 0, End: 49}}, covered)

	logs, err := s.GetLogs(ctx, cache.LogQuery{ChainID: 1, Address: testAddr, FromBlock: 0, ToBlock: 1000})
	require.NoError(t, err)
	require.Len(t, logs, 1)
	require.Equal(t, uint64(10), logs[0].BlockNumber)

	_, found, err := s.GetCall(ctx, cache.CallKey{ChainID: 1, To: testAddr, Block: 80, Data: []byte{1}})
	require.NoError(t, err)
	require.False(t, found)

	// other chains are untouched
	logs, err = s.GetLogs(ctx, cache.LogQuery{ChainID: 10, Address: testAddr, FromBlock: 0, ToBlock: 1000})
	require.NoError(t, err)
	require.Len(t, logs, 1)

	require.NoError(t, s.InvalidateFrom(ctx, 1, 0))
	covered, err = s.GetCoverage(ctx, key, ranges.Range{Start: 0, End: 1000})
	require.NoError(t, err)
	require.Empty(t, covered)
}

func TestStore_PruneBefore(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	key := wildcardKey(1)

	require.NoError(t, s.StoreLogs(ctx, key, ranges.Range{Start: 0, End: 40}, []types.Log{
		makeLog(testAddr, 5, 0, transferSig),
		makeLog(testAddr, 35, 0, transferSig),
	}))
	require.NoError(t, s.StoreLogs(ctx, key, ranges.Range{Start: 100, End: 120}, nil))

	require.NoError(t, s.PruneBefore(ctx, 1, 30))

	covered, err := s.GetCoverage(ctx, key, ranges.Range{Start: 0, End: 1000})
	require.NoError(t, err)
	require.Equal(t, []ranges.Range{{Start: 30, End: 40}, {Start: 100, End: 120}}, covered)

	logs, err := s.GetLogs(ctx, cache.LogQuery{ChainID: 1, Address: testAddr, FromBlock: 0, ToBlock: 1000})
	require.NoError(t, err)
	require.Len(t, logs, 1)
	require.Equal(t, uint64(35), logs[0].BlockNumber)

	require.NoError(t, s.PruneBefore(ctx, 1, 200))
	covered, err = s.GetCoverage(ctx, key, ranges.Range{Start: 0, End: 1000})
	require.NoError(t, err)
	require.Empty(t, covered)
}

func TestStore_CallCache(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	key := cache.CallKey{ChainID: 1, To: testAddr, Block: 17_000_000, Data: []byte{0x18, 0x16, 0x0d, 0xdd}}

	_, found, err := s.GetCall(ctx, key)
	require.NoError(t, err)
	require.False(t, found)

	require.NoError(t, s.StoreCall(ctx, key, []byte{0xaa}))
	require.NoError(t, s.StoreCall(ctx, key, []byte{0xbb}))

	result, found, err := s.GetCall(ctx, key)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, []byte{0xbb}, result)

	other := key
	other.Block++
	_, found, err = s.GetCall(ctx, other)
	require.NoError(t, err)
	require.False(t, found)

	require.NoError(t, s.StoreCall(ctx, other, nil))
	result, found, err = s.GetCall(ctx, other)
	require.NoError(t, err)
	require.True(t, found)
	require.Empty(t, result)
}

func TestStore_NewDoesNotOwnDB(t *testing.T) {
	cfg := config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "shared.sqlite")}
	cfg.ApplyDefaults()

	sqlDB, err := db.NewSQLiteDBFromConfig(cfg)
	require.NoError(t, err)
	defer sqlDB.Close()

	s, err := New(sqlDB, logger.NewNopLogger())
	require.NoError(t, err)
	require.NoError(t, s.Close())
	require.NoError(t, sqlDB.Ping())
}
