package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/goran-ethernal/ChainCache/internal/common"
	"github.com/goran-ethernal/ChainCache/internal/logger"
	"github.com/goran-ethernal/ChainCache/pkg/config"
)

// Maintenance runs periodic housekeeping on the cache database.
type Maintenance interface {
	// Start begins background maintenance if enabled.
	Start(ctx context.Context) error
	// Stop stops background maintenance and waits for the worker to exit.
	Stop() error
	// AcquireOperationLock takes a shared lock for a regular database operation.
	// The returned function releases it.
	AcquireOperationLock() func()
	// GetMetrics returns counters of past maintenance runs.
	GetMetrics() MaintenanceMetrics
	// RunMaintenance performs one maintenance pass immediately.
	RunMaintenance(ctx context.Context) error
}

// Compactor rewrites stored coverage into its minimal form.
// It is invoked while maintenance holds the exclusive lock, so it must not call AcquireOperationLock.
type Compactor interface {
	CompactAll(ctx context.Context) (removed int, err error)
}

// NoOpMaintenance is used when no maintenance section is configured.
type NoOpMaintenance struct{}

func (m *NoOpMaintenance) Start(ctx context.Context) error          { return nil }
func (m *NoOpMaintenance) Stop() error                              { return nil }
func (m *NoOpMaintenance) RunMaintenance(ctx context.Context) error { return nil }
func (m *NoOpMaintenance) AcquireOperationLock() func()             { return func() {} }
func (m *NoOpMaintenance) GetMetrics() MaintenanceMetrics           { return MaintenanceMetrics{} }

// MaintenanceCoordinator serialises maintenance against regular operations.
// Operations hold the read side of opLock; a maintenance pass holds the write side.
type MaintenanceCoordinator struct {
	db        *sql.DB
	config    config.MaintenanceConfig
	dbPath    string
	compactor Compactor
	log       *logger.Logger

	opLock sync.RWMutex

	cancel context.CancelFunc
	wg     sync.WaitGroup

	metricsLock sync.Mutex
	lastRun     time.Time
	runs        uint64
	lastErr     error
	compacted   uint64
}

// NewMaintenanceCoordinator returns a coordinator for cfg, or a no-op when cfg is nil.
// compactor may be nil; it is only used when cfg.CompactCoverage is set.
func NewMaintenanceCoordinator(
	dbPath string,
	db *sql.DB,
	cfg *config.MaintenanceConfig,
	compactor Compactor,
	log *logger.Logger,
) Maintenance {
	if cfg == nil {
		return &NoOpMaintenance{}
	}

	m := newMaintenanceCoordinator(dbPath, db, *cfg, log)
	m.compactor = compactor

	return m
}

func newMaintenanceCoordinator(
	dbPath string,
	db *sql.DB,
	cfg config.MaintenanceConfig,
	log *logger.Logger,
) *MaintenanceCoordinator {
	return &MaintenanceCoordinator{
		db:     db,
		config: cfg,
		dbPath: dbPath,
		log:    log.WithComponent(common.ComponentMaintenance),
	}
}

// Start begins background maintenance if enabled.
func (m *MaintenanceCoordinator) Start(ctx context.Context) error {
	if !m.config.Enabled {
		m.log.Info("background maintenance is disabled")
		return nil
	}

	ctx, m.cancel = context.WithCancel(ctx)

	if m.config.VacuumOnStartup {
		m.log.Info("running startup maintenance")
		if err := m.RunMaintenance(ctx); err != nil {
			m.log.Warnf("startup maintenance failed: %v", err)
		}
	}

	m.wg.Add(1)
	go m.worker(ctx, m.config.CheckInterval.Duration)

	m.log.Infof("background maintenance started, interval: %v, checkpoint mode: %s, compact coverage: %t",
		m.config.CheckInterval.Duration, m.config.WALCheckpointMode, m.config.CompactCoverage)

	return nil
}

// Stop stops background maintenance and waits for completion.
func (m *MaintenanceCoordinator) Stop() error {
	if m.cancel == nil {
		return nil
	}

	m.cancel()
	m.wg.Wait()
	m.log.Info("background maintenance stopped")

	return nil
}

func (m *MaintenanceCoordinator) worker(ctx context.Context, interval time.Duration) {
	defer m.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := m.RunMaintenance(ctx); err != nil {
				m.log.Warnf("periodic maintenance failed: %v", err)
			}
		}
	}
}

// RunMaintenance compacts coverage (when configured), checkpoints the WAL and vacuums the database.
// It waits for in-flight operations and blocks new ones until it is done.
func (m *MaintenanceCoordinator) RunMaintenance(ctx context.Context) error {
	start := time.Now().UTC()

	m.opLock.Lock()
	defer m.opLock.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	initialSize, err := DBTotalSize(m.dbPath)
	if err != nil {
		m.log.Warnf("failed to get initial DB size: %v", err)
	}

	var (
		maintenanceErr error
		removed        int
	)

	if m.config.CompactCoverage && m.compactor != nil {
		removed, err = m.compactor.CompactAll(ctx)
		maintenanceStepObserve("compaction", err)
		if err != nil {
			m.log.Errorf("coverage compaction failed: %v", err)
			maintenanceErr = fmt.Errorf("coverage compaction failed: %w", err)
		} else if removed > 0 {
			coverageCompacted.Add(float64(removed))
			m.log.Infof("coverage compaction removed %d records", removed)
		}
	}

	err = m.walCheckpoint()
	maintenanceStepObserve("wal_checkpoint", err)
	if err != nil {
		m.log.Errorf("WAL checkpoint failed: %v", err)
		if maintenanceErr == nil {
			maintenanceErr = fmt.Errorf("WAL checkpoint failed: %w", err)
		}
	}

	err = Vacuum(m.db)
	maintenanceStepObserve("vacuum", err)
	if err != nil {
		m.log.Warnf("VACUUM failed: %v", err)
		if maintenanceErr == nil {
			maintenanceErr = err
		}
	}

	finalSize, err := DBTotalSize(m.dbPath)
	if err != nil {
		m.log.Warnf("failed to get final DB size: %v", err)
	}

	duration := time.Since(start)

	m.metricsLock.Lock()
	m.lastRun = time.Now().UTC()
	m.runs++
	m.lastErr = maintenanceErr
	if removed > 0 {
		m.compacted += uint64(removed)
	}
	m.metricsLock.Unlock()

	maintenanceRunObserve(duration, maintenanceErr)

	if maintenanceErr != nil {
		m.log.Warnf("maintenance completed with errors in %v: %v", duration, maintenanceErr)
		return maintenanceErr
	}

	var reclaimed uint64
	if initialSize > finalSize {
		reclaimed = uint64(initialSize - finalSize)
		m.log.Infof("maintenance reclaimed %d MB", common.BytesToMB(reclaimed))
	}
	cacheFileSizeSet(finalSize, reclaimed)

	m.log.Infof("maintenance completed in %v", duration)

	return nil
}

func (m *MaintenanceCoordinator) walCheckpoint() error {
	var mode string
	if err := m.db.QueryRow("PRAGMA journal_mode").Scan(&mode); err != nil {
		return fmt.Errorf("failed to check journal mode: %w", err)
	}

	if !strings.EqualFold(mode, "wal") {
		m.log.Debugf("journal mode is %s, skipping WAL checkpoint", mode)
		return nil
	}

	var busy, logFrames, checkpointed int
	err := m.db.QueryRow(fmt.Sprintf("PRAGMA wal_checkpoint(%s)", m.config.WALCheckpointMode)).
		Scan(&busy, &logFrames, &checkpointed)
	if err != nil {
		return fmt.Errorf("failed to execute WAL checkpoint: %w", err)
	}

	m.log.Debugf("WAL checkpoint %s: busy %d, log frames %d, checkpointed %d",
		m.config.WALCheckpointMode, busy, logFrames, checkpointed)

	if busy > 0 {
		m.log.Warnf("WAL checkpoint left %d busy pages", busy)
	}

	return nil
}

// AcquireOperationLock takes a shared lock for a regular database operation.
func (m *MaintenanceCoordinator) AcquireOperationLock() func() {
	m.opLock.RLock()
	return m.opLock.RUnlock
}

// GetMetrics returns counters of past maintenance runs.
func (m *MaintenanceCoordinator) GetMetrics() MaintenanceMetrics {
	m.metricsLock.Lock()
	defer m.metricsLock.Unlock()

	return MaintenanceMetrics{
		LastMaintenanceTime:  m.lastRun,
		MaintenanceCount:     m.runs,
		LastMaintenanceError: m.lastErr,
		CoverageCompacted:    m.compacted,
	}
}

// MaintenanceMetrics summarises past maintenance runs.
type MaintenanceMetrics struct {
	LastMaintenanceTime  time.Time
	MaintenanceCount     uint64
	LastMaintenanceError error
	CoverageCompacted    uint64
}
