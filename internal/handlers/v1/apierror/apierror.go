// Package apierror turns ledger error kinds into huma status errors.
package apierror

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/ledger"
)

// Status returns the HTTP status code for err.
func Status(err error) int {
	switch {
	case ledger.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, ledger.ErrAccountNotFound), errors.Is(err, ledger.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ledger.ErrSchemaAlreadyExists), errors.Is(err, ledger.ErrConstraintViolation):
		return http.StatusConflict
	case errors.Is(err, ledger.ErrStorageUnavailable),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// From wraps err in a huma error carrying msg and the matching status.
// Server errors hide the underlying message from the client.
func From(msg string, err error) huma.StatusError {
	status := Status(err)
	if status >= http.StatusInternalServerError {
		return huma.NewError(status, msg)
	}
	return huma.NewError(status, msg, err)
}
