package service

import (
	"context"

	"github.com/carson-networks/ledger-server/internal/operator/actions"
)

// SchemaService creates the ledger tables.
type SchemaService struct {
	processor Processor
}

func NewSchemaService(processor Processor) *SchemaService {
	return &SchemaService{processor: processor}
}

// InitializeSchema returns ledger.ErrSchemaAlreadyExists when the tables are
// already present.
func (s *SchemaService) InitializeSchema(ctx context.Context) error {
	return s.processor.Process(ctx, &actions.InitializeSchema{})
}
