package generation

import (
	"context"
)

// Generator defines the interface for writing an email from a short brief.
// This interface serves as a boundary between the HTTP layer and external
// generative-text services.
type Generator interface {
	// Generate builds a prompt from req, sends it upstream in a single attempt
	// and returns the trimmed email text.
	//
	// Errors match ErrInvalidInput, ErrUpstream (see UpstreamError) or ErrParse.
	Generate(ctx context.Context, req Request) (string, error)
}
