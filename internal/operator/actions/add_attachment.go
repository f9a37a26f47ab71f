package actions

import (
	"context"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/attachment"
)

// AddAttachment stores a named blob on an existing transaction. Reusing a
// name on the same transaction is a constraint violation.
type AddAttachment struct {
	TransactionID int64
	Name          string
	Data          []byte
}

func (a *AddAttachment) Perform(ctx context.Context, writer *storage.Writer) error {
	if err := ledger.ValidateAttachmentNames([]string{a.Name}); err != nil {
		return err
	}
	if _, err := writer.Transaction.FindByID(ctx, a.TransactionID); err != nil {
		return err
	}
	return writer.Attachment.Insert(ctx, &attachment.Attachment{
		Name:          a.Name,
		TransactionID: a.TransactionID,
		Data:          a.Data,
	})
}
