package attachment

import (
	"context"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"

	"github.com/carson-networks/ledger-server/internal/storage/pgerr"
)

type Writer struct {
	tx bob.Executor
	Reader
}

var _ IAttachmentWriter = (*Writer)(nil)

func NewWriter(tx bob.Executor) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec: tx,
		},
	}
}

func (w *Writer) Insert(ctx context.Context, attachment *Attachment) error {
	_, err := psql.Insert(
		im.Into(tableAttachments, "name", "transaction_id", "data"),
		im.Values(psql.Arg(attachment.Name), psql.Arg(attachment.TransactionID), psql.Arg(attachment.Data)),
	).Exec(ctx, w.tx)
	return pgerr.Classify(err)
}
