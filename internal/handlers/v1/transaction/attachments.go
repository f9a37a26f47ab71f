package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/ledger-server/internal/service"
)

// AddAttachmentInput is the Huma input for attaching a file to a transaction.
type AddAttachmentInput struct {
	ID   int64 `path:"id" minimum:"1" doc:"Transaction id"`
	Body AttachmentBody
}

// AddAttachmentOutput is the Huma output for attaching a file.
type AddAttachmentOutput struct {
	Status int
}

// GetAttachmentInput addresses one attachment.
type GetAttachmentInput struct {
	ID   int64  `path:"id" minimum:"1" doc:"Transaction id"`
	Name string `path:"name" minLength:"1" doc:"Attachment name"`
}

// GetAttachmentOutput returns the raw attachment bytes.
type GetAttachmentOutput struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}

type attachmentService interface {
	AddAttachment(ctx context.Context, a service.Attachment) error
	GetAttachment(ctx context.Context, transactionID int64, name string) (*service.Attachment, error)
}

// AttachmentsHandler stores and serves transaction attachments.
type AttachmentsHandler struct {
	TransactionService attachmentService
}

func NewAttachmentsHandler(svc attachmentService) *AttachmentsHandler {
	return &AttachmentsHandler{TransactionService: svc}
}

func (h *AttachmentsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "add-attachment",
		Method:        http.MethodPost,
		Path:          "/v1/transaction/{id}/attachments",
		Summary:       "Add attachment",
		Tags:          []string{"Attachments"},
		DefaultStatus: http.StatusCreated,
	}, h.add)
	huma.Register(api, huma.Operation{
		OperationID: "get-attachment",
		Method:      http.MethodGet,
		Path:        "/v1/transaction/{id}/attachments/{name}",
		Summary:     "Download attachment",
		Tags:        []string{"Attachments"},
	}, h.get)
}

func (h *AttachmentsHandler) add(ctx context.Context, input *AddAttachmentInput) (*AddAttachmentOutput, error) {
	err := h.TransactionService.AddAttachment(ctx, service.Attachment{
		TransactionID: input.ID,
		Name:          input.Body.Name,
		Data:          input.Body.Data,
	})
	if err != nil {
		return nil, apierror.From("failed to add attachment", err)
	}
	return &AddAttachmentOutput{Status: http.StatusCreated}, nil
}

func (h *AttachmentsHandler) get(ctx context.Context, input *GetAttachmentInput) (*GetAttachmentOutput, error) {
	a, err := h.TransactionService.GetAttachment(ctx, input.ID, input.Name)
	if err != nil {
		return nil, apierror.From("failed to get attachment", err)
	}
	return &GetAttachmentOutput{
		ContentType: http.DetectContentType(a.Data),
		Body:        a.Data,
	}, nil
}
