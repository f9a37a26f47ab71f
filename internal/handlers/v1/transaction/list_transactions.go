package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/service"
)

// DateRange bounds a listing on transaction date, both ends inclusive.
type DateRange struct {
	Start string `json:"start" format:"date-time" doc:"Earliest date to include"`
	End   string `json:"end" format:"date-time" doc:"Latest date to include"`
}

// ListTransactionsBody is the request body for listing transactions.
type ListTransactionsBody struct {
	Range *DateRange `json:"range,omitempty" doc:"Restrict to a date range and order by date; absent lists everything in storage order"`
}

// ListTransactionsInput is the Huma input for listing transactions.
type ListTransactionsInput struct {
	Body ListTransactionsBody
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body TransactionListBody
}

type transactionLister interface {
	ListTransactions(ctx context.Context) ([]service.Transaction, error)
	GetByDateRange(ctx context.Context, start, end time.Time) ([]service.Transaction, error)
}

// ListTransactionsHandler handles POST /v1/transaction/list.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodPost,
		Path:        "/v1/transaction/list",
		Summary:     "List transactions",
		Description: "Returns every transaction, or those dated within an inclusive range ordered by date.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// parseListTransactionsInput returns nil bounds when no range was sent.
func parseListTransactionsInput(input *ListTransactionsInput) (start, end *time.Time, err error) {
	if input.Body.Range == nil {
		return nil, nil, nil
	}
	s, err := time.Parse(time.RFC3339, input.Body.Range.Start)
	if err != nil {
		return nil, nil, huma.NewError(http.StatusBadRequest, "invalid range start", err)
	}
	e, err := time.Parse(time.RFC3339, input.Body.Range.End)
	if err != nil {
		return nil, nil, huma.NewError(http.StatusBadRequest, "invalid range end", err)
	}
	if e.Before(s) {
		return nil, nil, huma.NewError(http.StatusBadRequest, "range end is before start")
	}
	return &s, &e, nil
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)
	start, end, err := parseListTransactionsInput(input)
	if err != nil {
		return nil, err
	}

	var transactions []service.Transaction
	stopTimer := logData.AddTiming("listTransactionsMs")
	if start != nil {
		transactions, err = h.TransactionService.GetByDateRange(ctx, *start, *end)
	} else {
		transactions, err = h.TransactionService.ListTransactions(ctx)
	}
	stopTimer()
	if err != nil {
		return nil, apierror.From("failed to list transactions", err)
	}
	logData.AddData("transactionCount", len(transactions))

	return &ListTransactionsOutput{Body: TransactionListBody{Transactions: transactionsToAPI(transactions)}}, nil
}
