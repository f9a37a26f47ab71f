package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/service"
)

// AttachmentBody is a file sent along with a new transaction.
type AttachmentBody struct {
	Name string `json:"name" minLength:"1" doc:"Attachment name, unique within the transaction"`
	Data []byte `json:"data" doc:"Base64 encoded file contents"`
}

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	Amount        string           `json:"amount" required:"true" doc:"Positive decimal amount"`
	Currency      string           `json:"currency" required:"true" minLength:"1" doc:"Currency code"`
	Date          string           `json:"date,omitempty" format:"date-time" doc:"RFC3339 transaction date, defaults to now"`
	Description   *string          `json:"description,omitempty" doc:"Free text description"`
	DebitAccount  string           `json:"debitAccount" required:"true" minLength:"1" doc:"Existing account posted on the debit side"`
	CreditAccount string           `json:"creditAccount" required:"true" minLength:"1" doc:"Existing account posted on the credit side"`
	Tags          []string         `json:"tags,omitempty" doc:"Tag names, created on first use"`
	Attachments   []AttachmentBody `json:"attachments,omitempty" doc:"Files stored with the transaction"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Status int
	Body   Transaction
}

type transactionPoster interface {
	PostTransaction(ctx context.Context, create service.TransactionCreate) (*service.Transaction, error)
}

// CreateTransactionHandler handles POST /v1/transaction.
type CreateTransactionHandler struct {
	TransactionService transactionPoster
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionPoster) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-transaction",
		Method:      http.MethodPost,
		Path:        "/v1/transaction",
		Summary:     "Create transaction",
		Description: "Posts a transaction between two existing accounts and updates both balances.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func parseCreateTransactionInput(input *CreateTransactionInput, now time.Time) (service.TransactionCreate, error) {
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return service.TransactionCreate{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	date := now
	if input.Body.Date != "" {
		date, err = time.Parse(time.RFC3339, input.Body.Date)
		if err != nil {
			return service.TransactionCreate{}, huma.NewError(http.StatusBadRequest, "invalid date", err)
		}
	}

	attachments := make([]service.Attachment, len(input.Body.Attachments))
	for i, a := range input.Body.Attachments {
		attachments[i] = service.Attachment{Name: a.Name, Data: a.Data}
	}

	return service.TransactionCreate{
		Date:          date,
		Amount:        amount,
		Currency:      input.Body.Currency,
		Description:   input.Body.Description,
		DebitAccount:  input.Body.DebitAccount,
		CreditAccount: input.Body.CreditAccount,
		Tags:          input.Body.Tags,
		Attachments:   attachments,
	}, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	logData := logging.GetLogData(ctx)

	create, err := parseCreateTransactionInput(input, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	stopTimer := logData.AddTiming("postTransactionMs")
	tx, err := h.TransactionService.PostTransaction(ctx, create)
	stopTimer()
	if err != nil {
		return nil, apierror.From("failed to create transaction", err)
	}
	logData.AddData("transactionID", tx.ID)

	return &CreateTransactionOutput{
		Status: http.StatusCreated,
		Body:   transactionToAPI(*tx),
	}, nil
}
