package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/ledger-server/internal/service"
)

// TagTransactionInput is the Huma input for tagging a transaction.
type TagTransactionInput struct {
	ID   int64 `path:"id" minimum:"1" doc:"Transaction id"`
	Body struct {
		Tags []string `json:"tags" minItems:"1" doc:"Tag names to add"`
	}
}

// ListTagsOutput is the Huma output for listing tags.
type ListTagsOutput struct {
	Body struct {
		Tags []string `json:"tags"`
	}
}

type tagService interface {
	TagTransaction(ctx context.Context, id int64, tags []string) (*service.Transaction, error)
	ListTags(ctx context.Context) ([]string, error)
}

// TagsHandler handles tagging transactions and listing tags.
type TagsHandler struct {
	TransactionService tagService
}

func NewTagsHandler(svc tagService) *TagsHandler {
	return &TagsHandler{TransactionService: svc}
}

func (h *TagsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "tag-transaction",
		Method:      http.MethodPost,
		Path:        "/v1/transaction/{id}/tags",
		Summary:     "Tag transaction",
		Description: "Adds tags to a transaction. Tags it already has are ignored.",
		Tags:        []string{"Tags"},
	}, h.tag)
	huma.Register(api, huma.Operation{
		OperationID: "list-tags",
		Method:      http.MethodGet,
		Path:        "/v1/tags",
		Summary:     "List tags",
		Tags:        []string{"Tags"},
	}, h.list)
}

func (h *TagsHandler) tag(ctx context.Context, input *TagTransactionInput) (*TransactionOutput, error) {
	tx, err := h.TransactionService.TagTransaction(ctx, input.ID, input.Body.Tags)
	if err != nil {
		return nil, apierror.From("failed to tag transaction", err)
	}
	return &TransactionOutput{Body: transactionToAPI(*tx)}, nil
}

func (h *TagsHandler) list(ctx context.Context, _ *struct{}) (*ListTagsOutput, error) {
	tags, err := h.TransactionService.ListTags(ctx)
	if err != nil {
		return nil, apierror.From("failed to list tags", err)
	}
	out := &ListTagsOutput{}
	out.Body.Tags = tags
	if out.Body.Tags == nil {
		out.Body.Tags = []string{}
	}
	return out, nil
}
