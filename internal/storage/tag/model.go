package tag

import "context"

// Categorization links a tag to a transaction.
type Categorization struct {
	TagName       string
	TransactionID int64
}

// ITagReader defines the read side of tag storage.
type ITagReader interface {
	List(ctx context.Context) ([]string, error)
}

// ITagWriter defines tag operations that must run inside a write transaction.
type ITagWriter interface {
	ITagReader
	InsertIgnore(ctx context.Context, names []string) error
	LinkIgnore(ctx context.Context, links []Categorization) error
}
