package httphelpers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/evannetwork/vc-engine/pkg/helpers"
	"github.com/evannetwork/vc-engine/pkg/vc"
)

// StatusCode returns the HTTP status code for an error surfaced by the engine
func StatusCode(ctx context.Context, err error) int {
	_, cancel := context.WithTimeout(ctx, 1*time.Second)
	defer cancel()

	switch {
	case errors.Is(err, vc.ErrMissingId),
		errors.Is(err, vc.ErrJsonMalformed),
		errors.Is(err, vc.ErrDecodingError),
		errors.Is(err, vc.ErrJwsMalformed),
		errors.Is(err, vc.ErrInvalidPrivateKey):
		return http.StatusBadRequest
	case errors.Is(err, vc.ErrDocumentMismatch),
		errors.Is(err, vc.ErrBadSignature),
		errors.Is(err, vc.ErrUnknownKey),
		errors.Is(err, vc.ErrAmbiguousKey):
		return http.StatusUnprocessableEntity
	case errors.Is(err, vc.ErrRevoked):
		return http.StatusForbidden
	case errors.Is(err, vc.ErrStatusQueryFailed),
		errors.Is(err, vc.ErrDidResolutionFailed),
		errors.Is(err, vc.ErrNetworkError):
		return http.StatusBadGateway
	case errors.Is(err, vc.ErrSigningFailure):
		return http.StatusInternalServerError
	}

	if helperErr, ok := err.(*helpers.Error); ok {
		return inferStatusFromErrorTitle(helperErr.Title)
	}

	return inferStatusFromErrorString(err.Error())
}

// inferStatusFromErrorTitle maps error titles to HTTP status codes
func inferStatusFromErrorTitle(title string) int {
	title = strings.ToLower(title)

	switch {
	case contains(title, "not_found", "unknown_key"):
		return http.StatusNotFound
	case contains(title, "forbidden", "revoked"):
		return http.StatusForbidden
	case contains(title, "invalid", "validation", "malformed", "mismatch"):
		return http.StatusBadRequest
	case contains(title, "internal_server_error"):
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

// inferStatusFromErrorString infers HTTP status code from error message
func inferStatusFromErrorString(errStr string) int {
	switch {
	case contains(errStr, "not found", "missing", "unknown key"):
		return http.StatusNotFound
	case contains(errStr, "revoked", "forbidden"):
		return http.StatusForbidden
	case contains(errStr, "invalid", "validation", "malformed", "mismatch", "bad signature"):
		return http.StatusBadRequest
	case contains(errStr, "timeout", "deadline", "network"):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// contains checks if any of the substrings appear in the error string (case-insensitive)
func contains(errStr string, substrings ...string) bool {
	errLower := strings.ToLower(errStr)
	for _, substr := range substrings {
		if strings.Contains(errLower, strings.ToLower(substr)) {
			return true
		}
	}
	return false
}
