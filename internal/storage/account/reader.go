package account

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage/pgerr"
)

const (
	tableAccounts   = "accounts"
	tableAncestorTo = "ancestor_to"

	defaultListLimit = 20
	maxListLimit     = 100
)

var accountColumns = []any{"name", "balance", "increase_on"}

type Reader struct {
	exec bob.Executor
}

var _ IAccountReader = (*Reader)(nil)

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

func (r *Reader) List(ctx context.Context, filter *AccountFilter) (*AccountListResult, error) {
	limit := defaultListLimit
	offset := 0
	if filter != nil {
		if filter.Limit > 0 {
			limit = min(filter.Limit, maxListLimit)
		}
		offset = max(filter.Offset, 0)
	}

	query := psql.Select(
		sm.Columns(accountColumns...),
		sm.From(tableAccounts),
		sm.OrderBy(psql.Quote("name")).Asc(),
		sm.Limit(limit+1),
		sm.Offset(offset),
	)
	rows, err := bob.All(ctx, r.exec, query, scan.StructMapper[*Account]())
	if err != nil {
		return nil, pgerr.Classify(err)
	}

	if len(rows) == 0 {
		return &AccountListResult{Accounts: nil, NextCursor: nil}, nil
	}

	var nextCursor *AccountCursor
	if len(rows) > limit {
		rows = rows[:limit]
		nextCursor = &AccountCursor{
			Position: offset + limit,
			Limit:    limit,
		}
	}
	return &AccountListResult{Accounts: rows, NextCursor: nextCursor}, nil
}

// FindByName returns ledger.ErrAccountNotFound when no account has that name.
func (r *Reader) FindByName(ctx context.Context, name string) (*Account, error) {
	return findByName(ctx, r.exec, name)
}

// Descendants lists every account below name in the hierarchy, at any depth.
func (r *Reader) Descendants(ctx context.Context, name string) ([]*Account, error) {
	return r.related(ctx, name, "descendant_name", "ancestor_name")
}

// Ancestors lists every account above name in the hierarchy, at any depth.
func (r *Reader) Ancestors(ctx context.Context, name string) ([]*Account, error) {
	return r.related(ctx, name, "ancestor_name", "descendant_name")
}

func (r *Reader) related(ctx context.Context, name, want, match string) ([]*Account, error) {
	if _, err := r.FindByName(ctx, name); err != nil {
		return nil, err
	}
	query := psql.Select(
		sm.Columns(
			psql.Quote("a", "name"),
			psql.Quote("a", "balance"),
			psql.Quote("a", "increase_on"),
		),
		sm.From(tableAccounts).As("a"),
		sm.InnerJoin(tableAncestorTo).As("l").On(
			psql.Quote("l", want).EQ(psql.Quote("a", "name")),
		),
		sm.Where(psql.Quote("l", match).EQ(psql.Arg(name))),
		sm.OrderBy(psql.Quote("a", "name")).Asc(),
	)
	rows, err := bob.All(ctx, r.exec, query, scan.StructMapper[*Account]())
	if err != nil {
		return nil, pgerr.Classify(err)
	}
	return rows, nil
}

func findByName(ctx context.Context, exec bob.Executor, name string, mods ...bob.Mod[*dialect.SelectQuery]) (*Account, error) {
	query := psql.Select(append([]bob.Mod[*dialect.SelectQuery]{
		sm.Columns(accountColumns...),
		sm.From(tableAccounts),
		sm.Where(psql.Quote("name").EQ(psql.Arg(name))),
	}, mods...)...)
	row, err := bob.One(ctx, exec, query, scan.StructMapper[*Account]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", ledger.ErrAccountNotFound, name)
	}
	if err != nil {
		return nil, pgerr.Classify(err)
	}
	return row, nil
}
