package transaction

import (
	"context"
	"fmt"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage/pgerr"
)

type Writer struct {
	tx bob.Executor
	Reader
}

var _ ITransactionWriter = (*Writer)(nil)

func NewWriter(tx bob.Executor) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec: tx,
		},
	}
}

// Insert adds the transactions row and returns its generated id.
func (w *Writer) Insert(ctx context.Context, create *TransactionCreate) (int64, error) {
	query := psql.Insert(
		im.Into(tableTransactions, "date", "amount", "currency", "description"),
		im.Values(
			psql.Arg(create.Date),
			psql.Arg(create.Amount),
			psql.Arg(create.Currency),
			psql.Arg(create.Description),
		),
		im.Returning("id"),
	)
	id, err := bob.One(ctx, w.tx, query, scan.SingleColumnMapper[int64])
	if err != nil {
		return 0, pgerr.Classify(err)
	}
	return id, nil
}

func (w *Writer) LinkDebit(ctx context.Context, link AccountLink) error {
	return w.link(ctx, tableDebits, link)
}

func (w *Writer) LinkCredit(ctx context.Context, link AccountLink) error {
	return w.link(ctx, tableCredits, link)
}

func (w *Writer) link(ctx context.Context, table string, link AccountLink) error {
	_, err := psql.Insert(
		im.Into(table, "transaction_id", "account_name"),
		im.Values(psql.Arg(link.TransactionID), psql.Arg(link.AccountName)),
	).Exec(ctx, w.tx)
	return pgerr.Classify(err)
}

// Delete removes the transaction; the schema cascades to its debit, credit,
// tag and attachment rows.
func (w *Writer) Delete(ctx context.Context, id int64) error {
	result, err := psql.Delete(
		dm.From(tableTransactions),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	).Exec(ctx, w.tx)
	if err != nil {
		return pgerr.Classify(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return pgerr.Classify(err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: transaction %d", ledger.ErrNotFound, id)
	}
	return nil
}
