package redact

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestRedactString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		input       string
		mustContain []string
		mustNotHave []string
	}{
		{
			name:        "google api key",
			input:       "request rejected for AIzaSyA1234567890abcdefghijklmnopqrstu",
			mustContain: []string{RedactedKeyPlaceholder},
			mustNotHave: []string{"AIzaSyA1234567890"},
		},
		{
			name:        "api key header",
			input:       "x-goog-api-key: sk-live-0123456789abcdef",
			mustContain: []string{"x-goog-api-key: " + RedactedKeyPlaceholder},
			mustNotHave: []string{"0123456789abcdef"},
		},
		{
			name:        "key query parameter",
			input:       "GET /v1beta/models?key=supersecretvalue123",
			mustContain: []string{"key=" + RedactedKeyPlaceholder},
			mustNotHave: []string{"supersecretvalue123"},
		},
		{
			name:        "bearer token",
			input:       "Authorization: Bearer ya29.a0AfH6SMBx",
			mustContain: []string{"Bearer " + RedactedTokenPlaceholder},
			mustNotHave: []string{"ya29.a0AfH6SMBx"},
		},
		{
			name:        "upstream url",
			input:       `Post "http://127.0.0.1:41234/v1beta/models/gemini-2.0-flash:generateContent": context deadline exceeded`,
			mustContain: []string{RedactedURLPlaceholder, "context deadline exceeded"},
			mustNotHave: []string{"127.0.0.1", "gemini-2.0-flash"},
		},
		{
			name:        "bare address",
			input:       "dial tcp 10.0.0.12:443: connect: connection refused",
			mustContain: []string{RedactedHostPlaceholder, "connection refused"},
			mustNotHave: []string{"10.0.0.12"},
		},
		{
			name:        "email address",
			input:       "write to jane.doe@example.com about the invoice",
			mustContain: []string{RedactedEmailPlaceholder, "about the invoice"},
			mustNotHave: []string{"jane.doe@example.com"},
		},
		{
			name:        "stack trace",
			input:       "panic: boom\n\tmain.go:12\n\thandler.go:40",
			mustContain: []string{RedactedStackPlaceholder},
			mustNotHave: []string{"main.go:12"},
		},
		{
			name:        "nothing sensitive",
			input:       "no candidates found in API response",
			mustContain: []string{"no candidates found in API response"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := String(tc.input)
			for _, want := range tc.mustContain {
				assert.Contains(t, got, want)
			}
			for _, leaked := range tc.mustNotHave {
				assert.NotContains(t, got, leaked)
			}
		})
	}

	assert.Equal(t, "", String(""))
}

func TestRedactError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", Error(nil))

	err := errors.New("upstream said: invalid api_key=abcdefgh12345678")
	got := Error(err)
	assert.NotContains(t, got, "abcdefgh12345678")
	assert.Contains(t, got, RedactedKeyPlaceholder)
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abc...[truncated]", Truncate("abcdef", 3))
	assert.Equal(t, "unbounded", Truncate("unbounded", 0))
}

func TestTruncate_RuneBoundary(t *testing.T) {
	t.Parallel()

	// "é" is two bytes; a cut at 3 lands inside the second one.
	got := Truncate("ééé", 3)
	assert.Equal(t, "é...[truncated]", got)
	assert.True(t, utf8.ValidString(got))

	for max := 1; max < 12; max++ {
		assert.True(t, utf8.ValidString(Truncate("日本語のメール", max)), "max=%d", max)
	}
}

func TestSingleLine(t *testing.T) {
	t.Parallel()

	got := SingleLine("first line\n\tsecond   line\r\n")
	assert.Equal(t, "first line second line", got)
	assert.False(t, strings.ContainsAny(got, "\n\r\t"))
}
