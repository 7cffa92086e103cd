package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/emailwriter/internal/generation"
	"github.com/phrazzld/emailwriter/internal/redact"
)

// Client-facing messages.
const (
	MsgEmptyContent     = "Email content cannot be empty"
	MsgInvalidFormat    = "Invalid request format"
	MsgGenerationFailed = "Failed to generate email content"
	MsgErrorPrefix      = "Error generating email: "
	MsgUnexpected       = "An unexpected error occurred while generating the email"
	HealthMessage       = "Email Writer API is running!"
)

// maxCauseLength bounds the cause echoed to clients.
const maxCauseLength = 300

// MapErrorToStatusCode maps generation errors to HTTP status codes.
// Anything that is not the caller's fault is a 500.
func MapErrorToStatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, generation.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the body sent to the client for err.
// Taxonomy errors embed their redacted, single-line message; unknown errors
// get a generic message.
func GetSafeErrorMessage(err error) string {
	switch {
	case err == nil:
		return MsgUnexpected
	case errors.Is(err, generation.ErrInvalidInput):
		return MsgEmptyContent
	case errors.Is(err, generation.ErrUpstream),
		errors.Is(err, generation.ErrParse),
		errors.Is(err, generation.ErrGenerationFailed):
		cause := redact.SingleLine(redact.Error(err))
		return MsgErrorPrefix + redact.Truncate(cause, maxCauseLength)
	default:
		// Errors outside the taxonomy never went through redaction-aware
		// code, so their text is not echoed.
		return MsgUnexpected
	}
}
