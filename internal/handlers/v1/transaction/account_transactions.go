package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/ledger-server/internal/service"
)

// AccountTransactionsInput names the account whose subtree is listed.
type AccountTransactionsInput struct {
	Name string `path:"name" minLength:"1" doc:"Account name"`
}

// AccountTransactionsOutput is the Huma output for an account rollup.
type AccountTransactionsOutput struct {
	Body TransactionListBody
}

type accountTransactionLister interface {
	ListForAccount(ctx context.Context, name string) ([]service.Transaction, error)
}

// AccountTransactionsHandler handles GET /v1/accounts/{name}/transactions.
type AccountTransactionsHandler struct {
	TransactionService accountTransactionLister
}

func NewAccountTransactionsHandler(svc accountTransactionLister) *AccountTransactionsHandler {
	return &AccountTransactionsHandler{TransactionService: svc}
}

func (h *AccountTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-account-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/accounts/{name}/transactions",
		Summary:     "List transactions under an account",
		Description: "Returns transactions posted to the account or any of its descendants, ordered by date.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *AccountTransactionsHandler) handle(ctx context.Context, input *AccountTransactionsInput) (*AccountTransactionsOutput, error) {
	txs, err := h.TransactionService.ListForAccount(ctx, input.Name)
	if err != nil {
		return nil, apierror.From("failed to list account transactions", err)
	}
	return &AccountTransactionsOutput{Body: TransactionListBody{Transactions: transactionsToAPI(txs)}}, nil
}
