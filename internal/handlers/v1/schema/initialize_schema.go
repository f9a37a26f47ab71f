package schema

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/ledger-server/internal/logging"
)

// InitializeSchemaOutput is the Huma output for creating the ledger schema.
type InitializeSchemaOutput struct {
	Status int
}

type schemaInitializer interface {
	InitializeSchema(ctx context.Context) error
}

// InitializeSchemaHandler handles POST /v1/schema.
type InitializeSchemaHandler struct {
	SchemaService schemaInitializer
}

func NewInitializeSchemaHandler(svc schemaInitializer) *InitializeSchemaHandler {
	return &InitializeSchemaHandler{SchemaService: svc}
}

func (h *InitializeSchemaHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "initialize-schema",
		Method:        http.MethodPost,
		Path:          "/v1/schema",
		Summary:       "Initialize schema",
		Description:   "Creates every ledger table. Fails with 409 when the schema already exists.",
		Tags:          []string{"Schema"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *InitializeSchemaHandler) handle(ctx context.Context, _ *struct{}) (*InitializeSchemaOutput, error) {
	stopTimer := logging.GetLogData(ctx).AddTiming("initializeSchemaMs")
	err := h.SchemaService.InitializeSchema(ctx)
	stopTimer()
	if err != nil {
		return nil, apierror.From("failed to initialize schema", err)
	}
	return &InitializeSchemaOutput{Status: http.StatusCreated}, nil
}
