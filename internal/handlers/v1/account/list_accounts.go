package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/service"
)

// ListAccountsCursor represents a pagination cursor in responses.
type ListAccountsCursor struct {
	Position int `json:"position" doc:"Offset for the next page"`
	Limit    int `json:"limit" doc:"Page size"`
}

// ListAccountsInput is the Huma input for listing accounts.
type ListAccountsInput struct {
	Position int `query:"position" minimum:"0" doc:"Offset for pagination"`
	Limit    int `query:"limit" minimum:"0" maximum:"100" doc:"Page size, default 20"`
}

// ListAccountsResponseBody is the response body for listing accounts.
type ListAccountsResponseBody struct {
	Accounts   []Account           `json:"accounts" doc:"Page of accounts ordered by name"`
	NextCursor *ListAccountsCursor `json:"nextCursor,omitempty" doc:"Cursor to fetch the next page, absent on the last page"`
}

// ListAccountsOutput is the Huma output for listing accounts.
type ListAccountsOutput struct {
	Body ListAccountsResponseBody
}

type accountLister interface {
	ListAccounts(ctx context.Context, cursor *service.AccountCursor) ([]service.Account, *service.AccountCursor, error)
}

// ListAccountsHandler handles GET /v1/accounts.
type ListAccountsHandler struct {
	AccountService accountLister
}

// NewListAccountsHandler creates a new ListAccountsHandler.
func NewListAccountsHandler(svc accountLister) *ListAccountsHandler {
	return &ListAccountsHandler{AccountService: svc}
}

// Register registers the list accounts endpoint with the Huma API.
func (h *ListAccountsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-accounts",
		Method:      http.MethodGet,
		Path:        "/v1/accounts",
		Summary:     "List accounts",
		Description: "Returns a paginated list of accounts.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *ListAccountsHandler) handle(ctx context.Context, input *ListAccountsInput) (*ListAccountsOutput, error) {
	logData := logging.GetLogData(ctx)

	var cursor *service.AccountCursor
	if input.Position > 0 || input.Limit > 0 {
		cursor = &service.AccountCursor{Position: input.Position, Limit: input.Limit}
	}

	stopTimer := logData.AddTiming("listAccountsMs")
	accounts, next, err := h.AccountService.ListAccounts(ctx, cursor)
	stopTimer()
	if err != nil {
		return nil, apierror.From("failed to list accounts", err)
	}
	logData.AddData("accountCount", len(accounts))

	resp := ListAccountsResponseBody{Accounts: accountsToAPI(accounts)}
	if next != nil {
		resp.NextCursor = &ListAccountsCursor{Position: next.Position, Limit: next.Limit}
	}

	return &ListAccountsOutput{Body: resp}, nil
}
