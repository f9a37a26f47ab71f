package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/ledger-server/internal/storage/account"
	"github.com/carson-networks/ledger-server/internal/storage/attachment"
	"github.com/carson-networks/ledger-server/internal/storage/pgerr"
	"github.com/carson-networks/ledger-server/internal/storage/schema"
	"github.com/carson-networks/ledger-server/internal/storage/tag"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

// Finisher ends a database transaction.
type Finisher interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Writer groups every table writer bound to one database transaction.
type Writer struct {
	Tx          Finisher
	Schema      schema.ISchemaWriter
	Account     account.IAccountWriter
	Transaction transaction.ITransactionWriter
	Tag         tag.ITagWriter
	Attachment  attachment.IAttachmentWriter
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		Tx:          tx,
		Schema:      schema.NewWriter(tx),
		Account:     account.NewWriter(tx),
		Transaction: transaction.NewWriter(tx),
		Tag:         tag.NewWriter(tx),
		Attachment:  attachment.NewWriter(tx),
	}
}

func (w *Writer) Commit() error {
	return pgerr.Classify(w.Tx.Commit(context.Background()))
}

func (w *Writer) Rollback() error {
	return w.Tx.Rollback(context.Background())
}
