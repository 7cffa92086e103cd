package generation_test

import (
	"errors"
	"testing"

	"github.com/phrazzld/emailwriter/internal/generation"
	"github.com/stretchr/testify/assert"
)

func TestUpstreamError(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection reset")
	err := generation.NewUpstreamError(generation.ErrUpstreamStatus, 503, `{"error":"busy"}`, cause)

	assert.ErrorIs(t, err, generation.ErrUpstream)
	assert.ErrorIs(t, err, generation.ErrUpstreamStatus)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, generation.ErrParse)
	assert.False(t, err.Timeout())

	assert.Contains(t, err.Error(), "status 503")
	assert.Contains(t, err.Error(), "connection reset")
	assert.NotContains(t, err.Error(), "busy", "body must stay out of the message")

	var target *generation.UpstreamError
	assert.True(t, errors.As(err, &target))
	assert.Equal(t, 503, target.StatusCode)
}

func TestUpstreamError_Timeout(t *testing.T) {
	t.Parallel()

	err := generation.NewUpstreamError(generation.ErrUpstreamTimeout, 0, "", nil)
	assert.True(t, err.Timeout())
	assert.Equal(t, "upstream generation API error: upstream request timed out", err.Error())
}

func TestNewParseError(t *testing.T) {
	t.Parallel()

	err := generation.NewParseError(errors.New("unexpected end of JSON input"))
	assert.ErrorIs(t, err, generation.ErrParse)
	assert.NotErrorIs(t, err, generation.ErrUpstream)
}
