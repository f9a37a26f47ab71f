package schema

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// MigrationStatus reports the schema version before and after a migration.
type MigrationStatus struct {
	PreVersion  uint
	PostVersion uint
	Dirty       bool
}

// NewMigrator returns a golang-migrate instance reading the embedded files and
// writing to db.
func NewMigrator(db *sql.DB) (*migrate.Migrate, error) {
	source, err := iofs.New(Migrations, MigrationsDir)
	if err != nil {
		return nil, fmt.Errorf("iofs.New: %w", err)
	}
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("postgres.WithInstance: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("migrate.NewWithInstance: %w", err)
	}
	return m, nil
}

// MigrateUp applies every pending migration. Having nothing to apply is not
// an error.
func MigrateUp(m *migrate.Migrate) (*MigrationStatus, error) {
	return run(m, m.Up)
}

// MigrateDown reverts every migration, dropping all ledger tables.
func MigrateDown(m *migrate.Migrate) (*MigrationStatus, error) {
	return run(m, m.Down)
}

func run(m *migrate.Migrate, step func() error) (*MigrationStatus, error) {
	status := &MigrationStatus{}

	pre, _, err := version(m)
	if err != nil {
		return nil, fmt.Errorf("pre-migration version: %w", err)
	}
	status.PreVersion = pre

	if err = step(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return nil, err
	}

	status.PostVersion, status.Dirty, err = version(m)
	if err != nil {
		return nil, fmt.Errorf("post-migration version: %w", err)
	}
	return status, nil
}

func version(m *migrate.Migrate) (uint, bool, error) {
	v, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return v, dirty, err
}
