package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/ledger-server/internal/service"
)

// AccountNameInput addresses one account by name.
type AccountNameInput struct {
	Name string `path:"name" minLength:"1" doc:"Account name"`
}

// GetAccountOutput is the Huma output for fetching one account.
type GetAccountOutput struct {
	Body Account
}

// AccountsOutput is the Huma output for any unpaginated list of accounts.
type AccountsOutput struct {
	Body struct {
		Accounts []Account `json:"accounts"`
	}
}

type accountGetter interface {
	GetAccount(ctx context.Context, name string) (*service.Account, error)
	ListDescendants(ctx context.Context, name string) ([]service.Account, error)
	ListAncestors(ctx context.Context, name string) ([]service.Account, error)
}

// GetAccountHandler serves single account reads and hierarchy lookups.
type GetAccountHandler struct {
	AccountService accountGetter
}

func NewGetAccountHandler(svc accountGetter) *GetAccountHandler {
	return &GetAccountHandler{AccountService: svc}
}

func (h *GetAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-account",
		Method:      http.MethodGet,
		Path:        "/v1/accounts/{name}",
		Summary:     "Get an account",
		Tags:        []string{"Accounts"},
	}, h.get)
	huma.Register(api, huma.Operation{
		OperationID: "list-account-descendants",
		Method:      http.MethodGet,
		Path:        "/v1/accounts/{name}/descendants",
		Summary:     "List descendant accounts",
		Description: "Returns every account below the named one, at any depth.",
		Tags:        []string{"Accounts"},
	}, h.descendants)
	huma.Register(api, huma.Operation{
		OperationID: "list-account-ancestors",
		Method:      http.MethodGet,
		Path:        "/v1/accounts/{name}/ancestors",
		Summary:     "List ancestor accounts",
		Description: "Returns every account above the named one.",
		Tags:        []string{"Accounts"},
	}, h.ancestors)
}

func (h *GetAccountHandler) get(ctx context.Context, input *AccountNameInput) (*GetAccountOutput, error) {
	acc, err := h.AccountService.GetAccount(ctx, input.Name)
	if err != nil {
		return nil, apierror.From("failed to get account", err)
	}
	return &GetAccountOutput{Body: accountToAPI(*acc)}, nil
}

func (h *GetAccountHandler) descendants(ctx context.Context, input *AccountNameInput) (*AccountsOutput, error) {
	accs, err := h.AccountService.ListDescendants(ctx, input.Name)
	if err != nil {
		return nil, apierror.From("failed to list descendants", err)
	}
	out := &AccountsOutput{}
	out.Body.Accounts = accountsToAPI(accs)
	return out, nil
}

func (h *GetAccountHandler) ancestors(ctx context.Context, input *AccountNameInput) (*AccountsOutput, error) {
	accs, err := h.AccountService.ListAncestors(ctx, input.Name)
	if err != nil {
		return nil, apierror.From("failed to list ancestors", err)
	}
	out := &AccountsOutput{}
	out.Body.Accounts = accountsToAPI(accs)
	return out, nil
}
