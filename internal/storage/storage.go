package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/ledger-server/internal/config"
	"github.com/carson-networks/ledger-server/internal/storage/pgerr"
)

// Storage is the handle every ledger operation is given. It holds no ledger
// state of its own; all reads and writes go to Postgres.
type Storage struct {
	DB     *sql.DB
	bobDB  bob.DB
	reader *Reader
}

func NewStorage(env *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", env.PostgresURL())
	if err != nil {
		return nil, fmt.Errorf("sql.Open: %w", err)
	}
	return FromDB(db), nil
}

// FromDB wraps an already opened database.
func FromDB(db *sql.DB) *Storage {
	bobDB := bob.NewDB(db)
	return &Storage{
		DB:     db,
		bobDB:  bobDB,
		reader: NewReader(bobDB),
	}
}

// Read returns the reader bound to the connection pool.
func (s *Storage) Read() *Reader {
	return s.reader
}

// Write begins a transaction. The caller owns it and must finish it with
// Commit or Rollback.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.bobDB.BeginTx(ctx, nil)
	if err != nil {
		return nil, pgerr.Classify(err)
	}
	return NewWriter(tx), nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return pgerr.Classify(s.DB.PingContext(ctx))
}

func (s *Storage) Close() error {
	return s.DB.Close()
}
