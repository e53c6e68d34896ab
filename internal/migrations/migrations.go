package migrations

import (
	"database/sql"
	_ "embed"

	"github.com/goran-ethernal/ChainCache/internal/db"
	"github.com/goran-ethernal/ChainCache/internal/logger"
)

const prefix = "chaincache_"

//go:embed 001_log_cache.sql
var mig001 string

//go:embed 002_call_cache.sql
var mig002 string

// All returns the cache schema migrations in order.
func All() []db.Migration {
	return []db.Migration{
		{ID: "001_log_cache.sql", SQL: mig001, Prefix: prefix},
		{ID: "002_call_cache.sql", SQL: mig002, Prefix: prefix},
	}
}

// RunMigrations brings the cache schema of sqlDB up to date.
func RunMigrations(log *logger.Logger, sqlDB *sql.DB) error {
	return db.RunMigrations(log, sqlDB, All())
}
