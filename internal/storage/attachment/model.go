package attachment

import "context"

// Attachment is a named blob owned by one transaction.
type Attachment struct {
	Name          string `db:"name"`
	TransactionID int64  `db:"transaction_id"`
	Data          []byte `db:"data"`
}

// IAttachmentReader defines the read side of attachment storage.
type IAttachmentReader interface {
	Find(ctx context.Context, transactionID int64, name string) (*Attachment, error)
}

// IAttachmentWriter defines attachment operations that must run inside a write transaction.
type IAttachmentWriter interface {
	IAttachmentReader
	Insert(ctx context.Context, attachment *Attachment) error
}
