package actions

import (
	"context"

	"github.com/carson-networks/ledger-server/internal/storage"
)

// InitializeSchema creates every ledger table. Against an initialised store it
// fails with ledger.ErrSchemaAlreadyExists and the rollback leaves data as is.
type InitializeSchema struct{}

func (i *InitializeSchema) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Schema.Create(ctx)
}
