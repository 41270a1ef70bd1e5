package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/edubase/edubase-go/internal/model"
	"github.com/edubase/edubase-go/internal/services/auth"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeForbidden          = "FORBIDDEN"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeWeakPassphrase     = "WEAK_PASSPHRASE"
	CodeInvalidSheetURL    = "INVALID_SHEET_URL"
	CodeSheetUnavailable   = "SHEET_UNAVAILABLE"
	CodeNoDataSource       = "NO_DATA_SOURCE"
	CodeMalformedTable     = "MALFORMED_TABLE"
	CodeInternalError      = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrInvalidSheetURL):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidSheetURL, "Sheet share URL is not valid"}}
	case errors.Is(err, model.ErrSheetUnavailable):
		return &httpError{http.StatusBadGateway, APIError{CodeSheetUnavailable, "Sheet could not be fetched; ensure it is link-viewable"}}
	case errors.Is(err, model.ErrNoDataSource):
		return &httpError{http.StatusConflict, APIError{CodeNoDataSource, "No sheet URL is configured"}}
	case errors.Is(err, model.ErrMalformedTable):
		return &httpError{http.StatusBadRequest, APIError{CodeMalformedTable, "File could not be parsed"}}

	// Map auth errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		return &httpError{http.StatusUnauthorized, APIError{CodeInvalidCredentials, "Incorrect passphrase"}}
	case errors.Is(err, auth.ErrInvalidRole):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, "Role must be user or admin"}}
	case errors.Is(err, auth.ErrInvalidSession):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Invalid or expired session"}}
	case errors.Is(err, auth.ErrWeakPassphrase):
		return &httpError{http.StatusBadRequest, APIError{CodeWeakPassphrase, "Passphrase must be at least 4 characters"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Authentication required"}}
}

// NewForbiddenError creates a forbidden error for non-admin sessions
func NewForbiddenError() error {
	return &httpError{http.StatusForbidden, APIError{CodeForbidden, "Admin role required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
