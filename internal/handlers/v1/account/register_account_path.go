package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/service"
)

// RegisterAccountPathBody is the request body for registering an account path.
type RegisterAccountPathBody struct {
	Path       string `json:"path" minLength:"1" doc:"Dotted account path, most ancestral first, e.g. Assets.Bank.Checking"`
	IncreaseOn string `json:"increaseOn,omitempty" doc:"Direction for accounts this call creates: debit or credit (OnDebit/OnCredit also accepted), defaults to debit"`
}

// RegisterAccountPathInput is the Huma input for registering an account path.
type RegisterAccountPathInput struct {
	Body RegisterAccountPathBody
}

// AncestorLink is one ancestor/descendant pair of the account closure.
type AncestorLink struct {
	Ancestor   string `json:"ancestor"`
	Descendant string `json:"descendant"`
}

// RegisterAccountPathResponse is the response body for registering an account path.
type RegisterAccountPathResponse struct {
	Accounts []string       `json:"accounts" doc:"Account names on the path, most ancestral first"`
	Links    []AncestorLink `json:"links" doc:"Every ancestor/descendant pair the path implies"`
}

// RegisterAccountPathOutput is the Huma output for registering an account path.
type RegisterAccountPathOutput struct {
	Status int
	Body   RegisterAccountPathResponse
}

type accountPathRegisterer interface {
	RegisterAccountPath(ctx context.Context, path string, increaseOn ledger.IncreaseOn) (*service.RegisteredPath, error)
}

// RegisterAccountPathHandler handles POST /v1/account-path.
type RegisterAccountPathHandler struct {
	AccountService accountPathRegisterer
}

func NewRegisterAccountPathHandler(svc accountPathRegisterer) *RegisterAccountPathHandler {
	return &RegisterAccountPathHandler{AccountService: svc}
}

func (h *RegisterAccountPathHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "register-account-path",
		Method:      http.MethodPost,
		Path:        "/v1/account-path",
		Summary:     "Register an account path",
		Description: "Creates any missing account on a dotted path and records every ancestor/descendant pair. Repeating a call is a no-op.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func parseRegisterAccountPathInput(input *RegisterAccountPathInput) (ledger.IncreaseOn, error) {
	if input.Body.IncreaseOn == "" {
		return ledger.OnDebit, nil
	}
	increaseOn, err := ledger.ParseIncreaseOn(input.Body.IncreaseOn)
	if err != nil {
		return "", huma.NewError(http.StatusBadRequest, "invalid increaseOn", err)
	}
	return increaseOn, nil
}

func (h *RegisterAccountPathHandler) handle(ctx context.Context, input *RegisterAccountPathInput) (*RegisterAccountPathOutput, error) {
	logData := logging.GetLogData(ctx)

	increaseOn, err := parseRegisterAccountPathInput(input)
	if err != nil {
		return nil, err
	}

	logData.AddData("accountPath", input.Body.Path)
	stopTimer := logData.AddTiming("registerAccountPathMs")
	registered, err := h.AccountService.RegisterAccountPath(ctx, input.Body.Path, increaseOn)
	stopTimer()
	if err != nil {
		return nil, apierror.From("failed to register account path", err)
	}

	resp := RegisterAccountPathResponse{
		Accounts: registered.Accounts,
		Links:    make([]AncestorLink, len(registered.Links)),
	}
	for i, link := range registered.Links {
		resp.Links[i] = AncestorLink{Ancestor: link.Ancestor, Descendant: link.Descendant}
	}

	return &RegisterAccountPathOutput{
		Status: http.StatusOK,
		Body:   resp,
	}, nil
}
