package handlers

import (
	"context"
	"errors"
	"net/http"

	"laptopcare/pkg"
)

var errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)

// fallbackError is the default branch of every sentinel switch: storage
// timeouts surface as retriable 503s, anything else is an opaque 500.
func fallbackError(err error) *pkg.AppError {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return pkg.NewDomainError("STORAGE_UNAVAILABLE", "Storage temporarily unavailable", err, http.StatusServiceUnavailable)
	}
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}
