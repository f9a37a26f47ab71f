// Package schema owns the ledger DDL. The same embedded files back both
// Writer.Create (one-shot initialisation inside a transaction) and the
// golang-migrate source used by ledgerctl.
package schema

import (
	"context"
	"embed"
	"fmt"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"

	"github.com/carson-networks/ledger-server/internal/storage/pgerr"
)

// MigrationsDir is the directory inside Migrations holding the numbered files.
const MigrationsDir = "migrations"

const (
	createFile    = MigrationsDir + "/000001_create_ledger.up.sql"
	createVersion = 1

	// Table and layout golang-migrate's postgres driver keeps its version in.
	migrationsTable         = "schema_migrations"
	createMigrationsTable   = `CREATE TABLE IF NOT EXISTS ` + migrationsTable + ` (version bigint NOT NULL PRIMARY KEY, dirty boolean NOT NULL)`
	truncateMigrationsTable = `TRUNCATE ` + migrationsTable
)

//go:embed migrations/*.sql
var Migrations embed.FS

// ISchemaWriter creates the ledger tables.
type ISchemaWriter interface {
	Create(ctx context.Context) error
}

type Writer struct {
	exec bob.Executor
}

var _ ISchemaWriter = (*Writer)(nil)

func NewWriter(exec bob.Executor) *Writer {
	return &Writer{exec: exec}
}

// Create runs every CREATE statement and records the schema as migrated to
// the matching version, so a later `migrate up` has nothing to apply. Against
// a store that already holds the tables it fails with
// ledger.ErrSchemaAlreadyExists.
func (w *Writer) Create(ctx context.Context) error {
	ddl, err := Migrations.ReadFile(createFile)
	if err != nil {
		return fmt.Errorf("reading %s: %w", createFile, err)
	}
	if _, err := w.exec.ExecContext(ctx, string(ddl)); err != nil {
		return pgerr.Classify(err)
	}
	return w.recordVersion(ctx, createVersion)
}

func (w *Writer) recordVersion(ctx context.Context, version int64) error {
	for _, stmt := range []string{createMigrationsTable, truncateMigrationsTable} {
		if _, err := w.exec.ExecContext(ctx, stmt); err != nil {
			return pgerr.Classify(err)
		}
	}
	_, err := psql.Insert(
		im.Into(migrationsTable, "version", "dirty"),
		im.Values(psql.Arg(version), psql.Arg(false)),
	).Exec(ctx, w.exec)
	return pgerr.Classify(err)
}
