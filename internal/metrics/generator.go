package metrics

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/phrazzld/emailwriter/internal/generation"
)

// instrumentedGenerator records the latency and outcome of every call.
type instrumentedGenerator struct {
	next    generation.Generator
	backend string
}

// InstrumentGenerator wraps next so each Generate call is recorded under backend.
func InstrumentGenerator(next generation.Generator, backend string) generation.Generator {
	return &instrumentedGenerator{next: next, backend: backend}
}

func (g *instrumentedGenerator) Generate(ctx context.Context, req generation.Request) (string, error) {
	start := time.Now()
	text, err := g.next.Generate(ctx, req)
	RecordGeneration(g.backend, Outcome(text, err), time.Since(start))
	return text, err
}

// Outcome classifies the result of a Generate call.
func Outcome(text string, err error) string {
	switch {
	case err == nil && strings.TrimSpace(text) == "":
		return OutcomeFailed
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, generation.ErrInvalidInput):
		return OutcomeInvalidInput
	case errors.Is(err, generation.ErrUpstreamTimeout):
		return OutcomeTimeout
	case errors.Is(err, generation.ErrUpstream):
		return OutcomeUpstreamError
	case errors.Is(err, generation.ErrParse):
		return OutcomeParseError
	default:
		return OutcomeFailed
	}
}
