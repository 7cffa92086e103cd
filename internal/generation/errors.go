package generation

import (
	"errors"
	"fmt"
)

// Common errors returned by the generation package
var (
	// ErrInvalidInput is returned when the request carries no usable content
	ErrInvalidInput = errors.New("email content cannot be empty")

	// ErrUpstream is returned when the upstream API call fails or yields no usable candidate
	ErrUpstream = errors.New("upstream generation API error")

	// ErrParse is returned when the upstream response is not valid JSON of the expected shape
	ErrParse = errors.New("failed to parse API response")

	// ErrGenerationFailed is returned when generation succeeded but produced no text
	ErrGenerationFailed = errors.New("failed to generate email content")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")
)

// Reasons carried by UpstreamError.
var (
	ErrNoCandidates      = errors.New("no candidates found in API response")
	ErrNoParts           = errors.New("no parts found in API response")
	ErrEmptyResponse     = errors.New("empty response from API")
	ErrUpstreamTimeout   = errors.New("upstream request timed out")
	ErrUpstreamStatus    = errors.New("upstream returned non-success status")
	ErrUpstreamTransport = errors.New("upstream request failed")
)

// UpstreamError describes a failed call to the upstream API. It matches both
// ErrUpstream and its Reason under errors.Is.
type UpstreamError struct {
	// Reason is one of the ErrNoCandidates ... ErrUpstreamTransport sentinels
	Reason error

	// StatusCode is the upstream HTTP status, zero when no response was received
	StatusCode int

	// Body is the raw upstream response body, kept for logs only
	Body string

	// Err is the underlying transport error, if any
	Err error
}

// NewUpstreamError builds an UpstreamError for reason wrapping cause.
func NewUpstreamError(reason error, statusCode int, body string, cause error) *UpstreamError {
	return &UpstreamError{
		Reason:     reason,
		StatusCode: statusCode,
		Body:       body,
		Err:        cause,
	}
}

func (e *UpstreamError) Error() string {
	msg := fmt.Sprintf("%v: %v", ErrUpstream, e.Reason)
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap exposes the package sentinel, the reason and the cause.
func (e *UpstreamError) Unwrap() []error {
	errs := []error{ErrUpstream}
	if e.Reason != nil {
		errs = append(errs, e.Reason)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// Timeout reports whether the upstream call exceeded its deadline.
func (e *UpstreamError) Timeout() bool {
	return errors.Is(e.Reason, ErrUpstreamTimeout)
}

// NewParseError wraps a JSON decoding failure as ErrParse.
func NewParseError(cause error) error {
	return fmt.Errorf("%w: %v", ErrParse, cause)
}
