package service

import (
	"context"

	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/storage"
)

// Processor runs a write action inside one database transaction.
type Processor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services.
type Service struct {
	Schema      *SchemaService
	Account     *AccountService
	Transaction *TransactionService
}

// NewService creates a new Service. Reads go straight to reader; writes are
// handed to processor.
func NewService(reader *storage.Reader, processor Processor) *Service {
	return &Service{
		Schema:      NewSchemaService(processor),
		Account:     NewAccountService(reader, processor),
		Transaction: NewTransactionService(reader, processor),
	}
}
