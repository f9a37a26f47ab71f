package attachment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage/pgerr"
)

const tableAttachments = "attachments"

type Reader struct {
	exec bob.Executor
}

var _ IAttachmentReader = (*Reader)(nil)

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

func (r *Reader) Find(ctx context.Context, transactionID int64, name string) (*Attachment, error) {
	query := psql.Select(
		sm.Columns("name", "transaction_id", "data"),
		sm.From(tableAttachments),
		sm.Where(psql.Quote("transaction_id").EQ(psql.Arg(transactionID))),
		sm.Where(psql.Quote("name").EQ(psql.Arg(name))),
	)
	row, err := bob.One(ctx, r.exec, query, scan.StructMapper[*Attachment]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: attachment %q on transaction %d", ledger.ErrNotFound, name, transactionID)
	}
	if err != nil {
		return nil, pgerr.Classify(err)
	}
	return row, nil
}
