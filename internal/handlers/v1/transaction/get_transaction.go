package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/ledger-server/internal/service"
)

// TransactionIDInput addresses one transaction.
type TransactionIDInput struct {
	ID int64 `path:"id" minimum:"1" doc:"Transaction id"`
}

// TransactionOutput is the Huma output for a single transaction.
type TransactionOutput struct {
	Body Transaction
}

type transactionGetter interface {
	GetByID(ctx context.Context, id int64) (*service.Transaction, error)
	DeleteTransaction(ctx context.Context, id int64) (*service.Transaction, error)
}

// TransactionHandler handles GET and DELETE /v1/transaction/{id}.
type TransactionHandler struct {
	TransactionService transactionGetter
}

func NewTransactionHandler(svc transactionGetter) *TransactionHandler {
	return &TransactionHandler{TransactionService: svc}
}

func (h *TransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-transaction",
		Method:      http.MethodGet,
		Path:        "/v1/transaction/{id}",
		Summary:     "Get transaction",
		Tags:        []string{"Transactions"},
	}, h.get)
	huma.Register(api, huma.Operation{
		OperationID: "delete-transaction",
		Method:      http.MethodDelete,
		Path:        "/v1/transaction/{id}",
		Summary:     "Delete transaction",
		Description: "Deletes the transaction with its links and attachments and reverses its effect on both balances.",
		Tags:        []string{"Transactions"},
	}, h.delete)
}

func (h *TransactionHandler) get(ctx context.Context, input *TransactionIDInput) (*TransactionOutput, error) {
	tx, err := h.TransactionService.GetByID(ctx, input.ID)
	if err != nil {
		return nil, apierror.From("failed to get transaction", err)
	}
	return &TransactionOutput{Body: transactionToAPI(*tx)}, nil
}

func (h *TransactionHandler) delete(ctx context.Context, input *TransactionIDInput) (*TransactionOutput, error) {
	tx, err := h.TransactionService.DeleteTransaction(ctx, input.ID)
	if err != nil {
		return nil, apierror.From("failed to delete transaction", err)
	}
	return &TransactionOutput{Body: transactionToAPI(*tx)}, nil
}
