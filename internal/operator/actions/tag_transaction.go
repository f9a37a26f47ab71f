package actions

import (
	"context"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage"
)

// TagTransaction adds tags to an existing transaction. Tags it already has
// are left alone.
type TagTransaction struct {
	TransactionID int64
	Tags          []string
}

func (t *TagTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	if err := ledger.ValidateTags(t.Tags); err != nil {
		return err
	}
	if _, err := writer.Transaction.FindByID(ctx, t.TransactionID); err != nil {
		return err
	}
	return tagTransaction(ctx, writer.Tag, t.TransactionID, t.Tags)
}
