package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	ccommon "github.com/goran-ethernal/ChainCache/internal/common"
	"github.com/goran-ethernal/ChainCache/internal/db"
	"github.com/goran-ethernal/ChainCache/internal/logger"
	"github.com/goran-ethernal/ChainCache/internal/migrations"
	"github.com/goran-ethernal/ChainCache/pkg/cache"
	"github.com/goran-ethernal/ChainCache/pkg/config"
	"github.com/goran-ethernal/ChainCache/pkg/ranges"
	"github.com/russross/meddler"
)

var (
	_ cache.Store     = (*Store)(nil)
	_ cache.CallStore = (*Store)(nil)
	_ db.Compactor    = (*Store)(nil)
)

// SQLite stores integers as int64.
const maxBlock = math.MaxInt64

// Store is the SQLite implementation of cache.Store and cache.CallStore.
// Writes are serialised through writeMu; every operation also holds the maintenance operation lock.
type Store struct {
	db          *sql.DB
	ownsDB      bool
	maintenance db.Maintenance
	writeMu     sync.Mutex
	log         *logger.Logger
}

// New runs the cache migrations on sqlDB and returns a store over it.
// The caller keeps ownership of sqlDB.
func New(sqlDB *sql.DB, log *logger.Logger) (*Store, error) {
	log = log.WithComponent(ccommon.ComponentCacheStore)

	if err := migrations.RunMigrations(log, sqlDB); err != nil {
		return nil, fmt.Errorf("failed to migrate cache database: %w", err)
	}

	return &Store{
		db:          sqlDB,
		maintenance: &db.NoOpMaintenance{},
		log:         log,
	}, nil
}

// Open opens the database described by cfg, migrates it and attaches maintenance.
// Maintenance is not started; call Maintenance().Start.
func Open(cfg config.CacheConfig, log *logger.Logger) (*Store, error) {
	sqlDB, err := db.NewSQLiteDBFromConfig(cfg.DB)
	if err != nil {
		return nil, err
	}

	s, err := New(sqlDB, log)
	if err != nil {
		sqlDB.Close()
		return nil, err
	}

	s.ownsDB = true
	s.maintenance = db.NewMaintenanceCoordinator(cfg.DB.Path, sqlDB, cfg.Maintenance, s, log)

	return s, nil
}

// Maintenance returns the maintenance coordinator guarding this store.
func (s *Store) Maintenance() db.Maintenance {
	return s.maintenance
}

// DB returns the underlying database handle.
func (s *Store) DB() *sql.DB {
	return s.db
}

// GetCoverage returns the merged coverage of key and of its wildcard key, clipped to bounds.
func (s *Store) GetCoverage(ctx context.Context, key cache.QueryKey, bounds ranges.Range) (_ []ranges.Range, err error) {
	defer observe("get_coverage", time.Now(), &err)

	if err := bounds.Validate(); err != nil {
		return nil, err
	}

	unlock := s.maintenance.AcquireOperationLock()
	defer unlock()

	const query = `SELECT ` + coverageColumns + ` FROM log_coverage
		WHERE chain_id = ? AND address = ? AND filter_hash IN (?, ?) AND from_block <= ? AND to_block >= ?
		ORDER BY from_block ASC`

	var rows []*dbCoverage
	err = meddler.QueryAll(s.db, &rows, query,
		key.ChainID, key.Address.Hex(), key.FilterHash.Hex(), cache.WildcardFilter.Hex(),
		clampBlock(bounds.End), clampBlock(bounds.Start),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query coverage: %w", err)
	}

	clipped := make([]ranges.Range, 0, len(rows))
	for _, row := range rows {
		if r, ok := bounds.Intersect(ranges.Range{Start: row.FromBlock, End: row.ToBlock}); ok {
			clipped = append(clipped, r)
		}
	}

	return ranges.Merge(clipped)
}

// GetLogs returns the stored logs matching query ordered by block number and log index.
func (s *Store) GetLogs(ctx context.Context, query cache.LogQuery) (_ []types.Log, err error) {
	defer observe("get_logs", time.Now(), &err)

	if err := query.Validate(); err != nil {
		return nil, err
	}

	unlock := s.maintenance.AcquireOperationLock()
	defer unlock()

	var sb strings.Builder
	sb.WriteString(`SELECT ` + logColumns + ` FROM event_logs
		WHERE chain_id = ? AND address = ? AND block_number >= ? AND block_number <= ?`)
	args := []any{query.ChainID, query.Address.Hex(), clampBlock(query.FromBlock), clampBlock(query.ToBlock)}

	if len(query.Topic0s) > 0 {
		sb.WriteString(` AND topic0 IN (?` + strings.Repeat(", ?", len(query.Topic0s)-1) + `)`)
		for _, t := range query.Topic0s {
			args = append(args, t.Hex())
		}
	}
	sb.WriteString(` ORDER BY block_number ASC, log_index ASC`)

	var rows []*dbLog
	if err := meddler.QueryAll(s.db, &rows, sb.String(), args...); err != nil {
		return nil, fmt.Errorf("failed to query logs: %w", err)
	}

	logs := make([]types.Log, len(rows))
	for i, row := range rows {
		logs[i] = row.toEthLog()
	}

	return logs, nil
}

// StoreLogs saves logs and extends the coverage of key with covered.
// Coverage records overlapping or adjacent to covered are merged into one record.
func (s *Store) StoreLogs(ctx context.Context, key cache.QueryKey, covered ranges.Range, logs []types.Log) (err error) {
	defer observe("store_logs", time.Now(), &err)

	if err := covered.Validate(); err != nil {
		return err
	}
	if covered.End > maxBlock {
		return fmt.Errorf("%w: block %d exceeds the storable maximum", cache.ErrInvalidQuery, covered.End)
	}

	unlock := s.maintenance.AcquireOperationLock()
	defer unlock()

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		const insertLog = `INSERT INTO event_logs
			(chain_id, address, block_number, block_hash, tx_hash, tx_index, log_index, topic0, topic1, topic2, topic3, data)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (chain_id, block_number, log_index) DO NOTHING`

		stmt, err := tx.PrepareContext(ctx, insertLog)
		if err != nil {
			return fmt.Errorf("failed to prepare log insert: %w", err)
		}
		defer stmt.Close()

		written := 0
		for i := range logs {
			if !covered.Contains(logs[i].BlockNumber) {
				return fmt.Errorf("%w: log at block %d is outside covered range %s",
					cache.ErrInvalidQuery, logs[i].BlockNumber, covered)
			}

			row := fromEthLog(key.ChainID, &logs[i])
			res, err := stmt.ExecContext(ctx,
				row.ChainID, row.Address.Hex(), row.BlockNumber, row.BlockHash.Hex(), row.TxHash.Hex(),
				row.TxIndex, row.LogIndex,
				hexOrNil(row.Topic0), hexOrNil(row.Topic1), hexOrNil(row.Topic2), hexOrNil(row.Topic3),
				row.Data,
			)
			if err != nil {
				return fmt.Errorf("failed to insert log %d of block %d: %w", row.LogIndex, row.BlockNumber, err)
			}
			if n, _ := res.RowsAffected(); n > 0 {
				written++
			}
		}

		if err := s.mergeCoverage(ctx, tx, key, covered); err != nil {
			return err
		}

		LogsWrittenAdd(written)
		s.log.Debugf("stored %d new logs (%d received) for %s, covered %s", written, len(logs), key, covered)

		return nil
	})
}

// mergeCoverage replaces the records of key touching r with their union with r.
func (s *Store) mergeCoverage(ctx context.Context, tx *sql.Tx, key cache.QueryKey, r ranges.Range) error {
	lo := r.Start
	if lo > 0 {
		lo--
	}

	const query = `SELECT ` + coverageColumns + ` FROM log_coverage
		WHERE chain_id = ? AND address = ? AND filter_hash = ? AND from_block <= ? AND to_block >= ?`

	var touching []*dbCoverage
	err := meddler.QueryAll(tx, &touching, query,
		key.ChainID, key.Address.Hex(), key.FilterHash.Hex(), clampBlock(r.End+1), lo)
	if err != nil {
		return fmt.Errorf("failed to query coverage: %w", err)
	}

	merged := r
	for _, c := range touching {
		merged.Start = min(merged.Start, c.FromBlock)
		merged.End = max(merged.End, c.ToBlock)

		if _, err := tx.ExecContext(ctx, `DELETE FROM log_coverage WHERE id = ?`, c.ID); err != nil {
			return fmt.Errorf("failed to delete coverage: %w", err)
		}
	}

	return insertCoverage(tx, key, merged)
}

func insertCoverage(tx *sql.Tx, key cache.QueryKey, r ranges.Range) error {
	row := &dbCoverage{
		ChainID:    key.ChainID,
		Address:    key.Address,
		FilterHash: key.FilterHash,
		FromBlock:  r.Start,
		ToBlock:    r.End,
	}
	if err := meddler.Insert(tx, "log_coverage", row); err != nil {
		return fmt.Errorf("failed to insert coverage %s for %s: %w", r, key, err)
	}

	return nil
}

// CompactCoverage merges the overlapping and adjacent coverage records of key.
func (s *Store) CompactCoverage(ctx context.Context, key cache.QueryKey) (removed int, err error) {
	defer observe("compact_coverage", time.Now(), &err)

	unlock := s.maintenance.AcquireOperationLock()
	defer unlock()

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	err = s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		removed, err = s.compactKey(ctx, tx, key)
		return err
	})

	return removed, err
}

// CompactAll compacts the coverage of every stored key.
// It runs under the maintenance exclusive lock and therefore does not take the operation lock.
func (s *Store) CompactAll(ctx context.Context) (int, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	keys, err := s.keys(ctx)
	if err != nil {
		return 0, err
	}

	total := 0
	err = s.withTx(ctx, func(tx *sql.Tx) error {
		for _, key := range keys {
			removed, err := s.compactKey(ctx, tx, key)
			if err != nil {
				return err
			}
			total += removed
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return total, nil
}

// Keys lists every query key with recorded coverage.
func (s *Store) Keys(ctx context.Context) ([]cache.QueryKey, error) {
	unlock := s.maintenance.AcquireOperationLock()
	defer unlock()

	return s.keys(ctx)
}

func (s *Store) keys(ctx context.Context) ([]cache.QueryKey, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT DISTINCT chain_id, address, filter_hash FROM log_coverage ORDER BY chain_id, address, filter_hash`)
	if err != nil {
		return nil, fmt.Errorf("failed to list coverage keys: %w", err)
	}
	defer rows.Close()

	var keys []cache.QueryKey
	for rows.Next() {
		var (
			key             cache.QueryKey
			address, filter string
		)
		if err := rows.Scan(&key.ChainID, &address, &filter); err != nil {
			return nil, fmt.Errorf("failed to scan coverage key: %w", err)
		}
		key.Address = common.HexToAddress(address)
		key.FilterHash = common.HexToHash(filter)
		keys = append(keys, key)
	}

	return keys, rows.Err()
}

func (s *Store) compactKey(ctx context.Context, tx *sql.Tx, key cache.QueryKey) (int, error) {
	const query = `SELECT ` + coverageColumns + ` FROM log_coverage
		WHERE chain_id = ? AND address = ? AND filter_hash = ? ORDER BY from_block ASC`

	var rows []*dbCoverage
	if err := meddler.QueryAll(tx, &rows, query, key.ChainID, key.Address.Hex(), key.FilterHash.Hex()); err != nil {
		return 0, fmt.Errorf("failed to query coverage of %s: %w", key, err)
	}

	current := make([]ranges.Range, len(rows))
	for i, row := range rows {
		current[i] = ranges.Range{Start: row.FromBlock, End: row.ToBlock}
	}

	pairs, err := ranges.FindOverlaps(current, true)
	if err != nil {
		return 0, fmt.Errorf("corrupt coverage of %s: %w", key, err)
	}
	if len(pairs) == 0 {
		return 0, nil
	}

	merged, err := ranges.Merge(current)
	if err != nil {
		return 0, err
	}

	_, err = tx.ExecContext(ctx, `DELETE FROM log_coverage WHERE chain_id = ? AND address = ? AND filter_hash = ?`,
		key.ChainID, key.Address.Hex(), key.FilterHash.Hex())
	if err != nil {
		return 0, fmt.Errorf("failed to delete coverage of %s: %w", key, err)
	}

	for _, r := range merged {
		if err := insertCoverage(tx, key, r); err != nil {
			return 0, err
		}
	}

	removed := len(current) - len(merged)
	s.log.Debugf("compacted coverage of %s: %d records into %d", key, len(current), len(merged))

	return removed, nil
}

// InvalidateFrom drops the logs, coverage and call results of chainID at or above fromBlock.
// Coverage records crossing fromBlock are truncated to end right below it.
func (s *Store) InvalidateFrom(ctx context.Context, chainID, fromBlock uint64) (err error) {
	defer observe("invalidate", time.Now(), &err)

	unlock := s.maintenance.AcquireOperationLock()
	defer unlock()

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	from := clampBlock(fromBlock)

	return s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM event_logs WHERE chain_id = ? AND block_number >= ?`, chainID, from)
		if err != nil {
			return fmt.Errorf("failed to delete logs: %w", err)
		}
		deleted, _ := res.RowsAffected()

		if fromBlock > 0 {
			_, err = tx.ExecContext(ctx,
				`UPDATE log_coverage SET to_block = ? WHERE chain_id = ? AND from_block < ? AND to_block >= ?`,
				from-1, chainID, from, from)
			if err != nil {
				return fmt.Errorf("failed to truncate coverage: %w", err)
			}
		}

		if _, err = tx.ExecContext(ctx,
			`DELETE FROM log_coverage WHERE chain_id = ? AND from_block >= ?`, chainID, from); err != nil {
			return fmt.Errorf("failed to delete coverage: %w", err)
		}

		if _, err = tx.ExecContext(ctx,
			`DELETE FROM call_cache WHERE chain_id = ? AND block_number >= ?`, chainID, from); err != nil {
			return fmt.Errorf("failed to delete cached calls: %w", err)
		}

		LogsDroppedAdd("invalidate", deleted)
		s.log.Infof("invalidated chain %d from block %d, deleted %d logs", chainID, fromBlock, deleted)

		return nil
	})
}

// PruneBefore drops the logs, coverage and call results of chainID below beforeBlock.
// Coverage records crossing beforeBlock are trimmed to start at it.
func (s *Store) PruneBefore(ctx context.Context, chainID, beforeBlock uint64) (err error) {
	defer observe("prune", time.Now(), &err)

	unlock := s.maintenance.AcquireOperationLock()
	defer unlock()

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	before := clampBlock(beforeBlock)

	return s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM event_logs WHERE chain_id = ? AND block_number < ?`, chainID, before)
		if err != nil {
			return fmt.Errorf("failed to delete logs: %w", err)
		}
		deleted, _ := res.RowsAffected()

		if _, err = tx.ExecContext(ctx,
			`DELETE FROM log_coverage WHERE chain_id = ? AND to_block < ?`, chainID, before); err != nil {
			return fmt.Errorf("failed to delete coverage: %w", err)
		}

		if _, err = tx.ExecContext(ctx,
			`UPDATE log_coverage SET from_block = ? WHERE chain_id = ? AND from_block < ?`,
			before, chainID, before); err != nil {
			return fmt.Errorf("failed to trim coverage: %w", err)
		}

		if _, err = tx.ExecContext(ctx,
			`DELETE FROM call_cache WHERE chain_id = ? AND block_number < ?`, chainID, before); err != nil {
			return fmt.Errorf("failed to delete cached calls: %w", err)
		}

		LogsDroppedAdd("prune", deleted)
		s.log.Infof("pruned chain %d before block %d, deleted %d logs", chainID, beforeBlock, deleted)

		return nil
	})
}

// GetCall returns the cached result of key.
func (s *Store) GetCall(ctx context.Context, key cache.CallKey) (_ []byte, _ bool, err error) {
	defer observe("get_call", time.Now(), &err)

	unlock := s.maintenance.AcquireOperationLock()
	defer unlock()

	var row dbCall
	err = meddler.QueryRow(s.db, &row,
		`SELECT chain_id, to_address, block_number, data_hash, result FROM call_cache
		WHERE chain_id = ? AND to_address = ? AND block_number = ? AND data_hash = ?`,
		key.ChainID, key.To.Hex(), clampBlock(key.Block), key.DataHash().Hex())
	if errors.Is(err, sql.ErrNoRows) {
		CallLookupInc(false)
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to query cached call: %w", err)
	}

	CallLookupInc(true)

	return row.Result, true, nil
}

// StoreCall saves the result of key, replacing any previous value.
func (s *Store) StoreCall(ctx context.Context, key cache.CallKey, result []byte) (err error) {
	defer observe("store_call", time.Now(), &err)

	if key.Block > maxBlock {
		return fmt.Errorf("%w: block %d exceeds the storable maximum", cache.ErrInvalidQuery, key.Block)
	}
	if result == nil {
		result = []byte{}
	}

	unlock := s.maintenance.AcquireOperationLock()
	defer unlock()

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO call_cache (chain_id, to_address, block_number, data_hash, result)
		VALUES (?, ?, ?, ?, ?)`,
		key.ChainID, key.To.Hex(), key.Block, key.DataHash().Hex(), result)
	if err != nil {
		return fmt.Errorf("failed to store call result: %w", err)
	}

	return nil
}

// Close stops maintenance and closes the database when the store opened it.
func (s *Store) Close() error {
	if err := s.maintenance.Stop(); err != nil {
		s.log.Warnf("failed to stop maintenance: %v", err)
	}

	if !s.ownsDB {
		return nil
	}

	return s.db.Close()
}

func (s *Store) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			s.log.Errorf("failed to rollback transaction: %v", err)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func clampBlock(b uint64) uint64 {
	return min(b, maxBlock)
}

func hexOrNil(h *common.Hash) any {
	if h == nil {
		return nil
	}
	return h.Hex()
}

func fromEthLog(chainID uint64, l *types.Log) *dbLog {
	row := &dbLog{
		ChainID:     chainID,
		Address:     l.Address,
		BlockNumber: l.BlockNumber,
		BlockHash:   l.BlockHash,
		TxHash:      l.TxHash,
		TxIndex:     l.TxIndex,
		LogIndex:    l.Index,
		Data:        l.Data,
	}

	slots := []**common.Hash{&row.Topic0, &row.Topic1, &row.Topic2, &row.Topic3}
	for i := 0; i < len(l.Topics) && i < len(slots); i++ {
		topic := l.Topics[i]
		*slots[i] = &topic
	}

	return row
}

func (row *dbLog) toEthLog() types.Log {
	l := types.Log{
		Address:     row.Address,
		BlockNumber: row.BlockNumber,
		BlockHash:   row.BlockHash,
		TxHash:      row.TxHash,
		TxIndex:     row.TxIndex,
		Index:       row.LogIndex,
		Data:        row.Data,
		Topics:      []common.Hash{},
	}

	for _, t := range []*common.Hash{row.Topic0, row.Topic1, row.Topic2, row.Topic3} {
		if t == nil {
			break
		}
		l.Topics = append(l.Topics, *t)
	}

	return l
}
