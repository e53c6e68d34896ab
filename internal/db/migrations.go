package db

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/goran-ethernal/ChainCache/internal/logger"
	migrate "github.com/rubenv/sql-migrate"
)

const (
	upMarker   = "-- +migrate Up"
	downMarker = "-- +migrate Down"

	// NoLimitMigrations applies every pending migration.
	NoLimitMigrations = 0
)

// Migration is one embedded SQL file. Its text holds a "-- +migrate Down" section followed by a
// "-- +migrate Up" section. Prefix namespaces the migration id so several stores can share a database.
type Migration struct {
	ID     string
	SQL    string
	Prefix string
}

// RunMigrations applies all pending up migrations.
func RunMigrations(log *logger.Logger, db *sql.DB, migrations []Migration) error {
	return RunMigrationsExtended(log, db, migrations, migrate.Up, NoLimitMigrations)
}

// RunMigrationsExtended applies at most maxMigrations migrations in direction dir.
func RunMigrationsExtended(
	log *logger.Logger,
	db *sql.DB,
	migrations []Migration,
	dir migrate.MigrationDirection,
	maxMigrations int,
) error {
	source, err := memorySource(migrations)
	if err != nil {
		return err
	}

	if maxMigrations != NoLimitMigrations {
		migrate.SetIgnoreUnknown(true)
	}

	ids := make([]string, 0, len(source.Migrations))
	for _, m := range source.Migrations {
		ids = append(ids, m.Id)
	}
	list := strings.Join(ids, ", ")

	log.Debugf("running migrations (max %d/%d): %s", maxMigrations, len(ids), list)

	applied, err := migrate.ExecMax(db, driverName, source, dir, maxMigrations)
	if err != nil {
		return fmt.Errorf("failed to execute migrations (max %d/%d) %s: %w", maxMigrations, len(ids), list, err)
	}

	log.Infof("applied %d migrations out of: %s", applied, list)

	return nil
}

func memorySource(migrations []Migration) (*migrate.MemoryMigrationSource, error) {
	source := &migrate.MemoryMigrationSource{Migrations: make([]*migrate.Migration, 0, len(migrations))}

	for _, m := range migrations {
		down, up, found := strings.Cut(m.SQL, upMarker)
		if !found {
			return nil, fmt.Errorf("migration %s missing '%s' separator", m.ID, upMarker)
		}

		if _, after, ok := strings.Cut(down, downMarker); ok {
			down = after
		}

		source.Migrations = append(source.Migrations, &migrate.Migration{
			Id:   m.Prefix + m.ID,
			Up:   []string{strings.TrimSpace(up)},
			Down: []string{strings.TrimSpace(down)},
		})
	}

	return source, nil
}
