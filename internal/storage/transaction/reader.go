package transaction

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"iter"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage/pgerr"
)

const (
	tableTransactions = "transactions"
	tableDebits       = "debits"
	tableCredits      = "credits"
	tableAncestorTo   = "ancestor_to"
)

type Reader struct {
	exec bob.Executor
}

var _ ITransactionReader = (*Reader)(nil)

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// selectTransactions builds the joined projection every read shares.
func selectTransactions(queryMods ...bob.Mod[*dialect.SelectQuery]) bob.BaseQuery[*dialect.SelectQuery] {
	base := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(
			psql.Quote("t", "id"),
			psql.Quote("t", "date"),
			psql.Quote("t", "amount"),
			psql.Quote("t", "currency"),
			psql.Quote("t", "description"),
			psql.Quote("d", "account_name").As("debit_account"),
			psql.Quote("c", "account_name").As("credit_account"),
			psql.Raw("ARRAY(SELECT g.tag_name FROM categorizes g WHERE g.transaction_id = t.id ORDER BY g.tag_name)").As("tags"),
			psql.Raw("ARRAY(SELECT a.name FROM attachments a WHERE a.transaction_id = t.id ORDER BY a.name)").As("attachments"),
		),
		sm.From(tableTransactions).As("t"),
		sm.InnerJoin(tableDebits).As("d").On(psql.Quote("d", "transaction_id").EQ(psql.Quote("t", "id"))),
		sm.InnerJoin(tableCredits).As("c").On(psql.Quote("c", "transaction_id").EQ(psql.Quote("t", "id"))),
	}
	return psql.Select(append(base, queryMods...)...)
}

func byDateThenID() []bob.Mod[*dialect.SelectQuery] {
	return []bob.Mod[*dialect.SelectQuery]{
		sm.OrderBy(psql.Quote("t", "date")).Asc(),
		sm.OrderBy(psql.Quote("t", "id")).Asc(),
	}
}

// All streams every transaction ordered by date. Each range over the returned
// sequence runs the query again, so it can be iterated more than once. Rows are
// fetched through a cursor and never held in memory all at once.
func (r *Reader) All(ctx context.Context) iter.Seq2[*Transaction, error] {
	return func(yield func(*Transaction, error) bool) {
		cursor, err := bob.Cursor(ctx, r.exec, selectTransactions(byDateThenID()...), scan.StructMapper[*Transaction]())
		if err != nil {
			yield(nil, pgerr.Classify(err))
			return
		}
		defer cursor.Close()

		for cursor.Next() {
			row, err := cursor.Get()
			if err != nil {
				yield(nil, pgerr.Classify(err))
				return
			}
			if !yield(row, nil) {
				return
			}
		}
		if err := cursor.Err(); err != nil {
			yield(nil, pgerr.Classify(err))
		}
	}
}

// ByDateRange returns transactions with Start <= date <= End ordered by date,
// ties kept in insertion order.
func (r *Reader) ByDateRange(ctx context.Context, dateRange DateRange) ([]*Transaction, error) {
	queryMods := append([]bob.Mod[*dialect.SelectQuery]{
		sm.Where(psql.Quote("t", "date").GTE(psql.Arg(dateRange.Start))),
		sm.Where(psql.Quote("t", "date").LTE(psql.Arg(dateRange.End))),
	}, byDateThenID()...)

	rows, err := bob.All(ctx, r.exec, selectTransactions(queryMods...), scan.StructMapper[*Transaction]())
	if err != nil {
		return nil, pgerr.Classify(err)
	}
	return rows, nil
}

// FindByID returns ledger.ErrNotFound when no transaction has that id.
func (r *Reader) FindByID(ctx context.Context, id int64) (*Transaction, error) {
	query := selectTransactions(sm.Where(psql.Quote("t", "id").EQ(psql.Arg(id))))
	row, err := bob.One(ctx, r.exec, query, scan.StructMapper[*Transaction]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: transaction %d", ledger.ErrNotFound, id)
	}
	if err != nil {
		return nil, pgerr.Classify(err)
	}
	return row, nil
}

// ForAccountSubtree returns the transactions posted against accountName or any
// of its descendants on either side, ordered by date.
func (r *Reader) ForAccountSubtree(ctx context.Context, accountName string) ([]*Transaction, error) {
	queryMods := append([]bob.Mod[*dialect.SelectQuery]{
		sm.Where(psql.Or(
			psql.Quote("d", "account_name").EQ(psql.Arg(accountName)),
			psql.Quote("c", "account_name").EQ(psql.Arg(accountName)),
			psql.Raw(
				"EXISTS (SELECT 1 FROM "+tableAncestorTo+" s WHERE s.ancestor_name = ? AND s.descendant_name IN (d.account_name, c.account_name))",
				accountName,
			),
		)),
	}, byDateThenID()...)

	rows, err := bob.All(ctx, r.exec, selectTransactions(queryMods...), scan.StructMapper[*Transaction]())
	if err != nil {
		return nil, pgerr.Classify(err)
	}
	return rows, nil
}
