// Package redact provides utilities for redacting sensitive information from strings
// before they are logged or returned in error responses. Upstream error messages and
// response bodies can echo API keys, endpoint URLs and the addresses in a user's
// brief; everything that leaves the process passes through here first.
package redact

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Constants for redaction placeholders
const (
	RedactedKeyPlaceholder   = "[REDACTED_KEY]"
	RedactedTokenPlaceholder = "[REDACTED_TOKEN]"
	RedactedURLPlaceholder   = "[REDACTED_URL]"
	RedactedHostPlaceholder  = "[REDACTED_HOST]"
	RedactedEmailPlaceholder = "[REDACTED_EMAIL]"
	RedactedStackPlaceholder = "[STACK_TRACE_REDACTED]"
)

type rule struct {
	pattern     *regexp.Regexp
	replacement string
}

// Rules are applied in order; keys are matched before URLs so a key in a
// query string is never left behind in a partially redacted URL.
var rules = []rule{
	// Google API keys
	{regexp.MustCompile(`AIza[0-9A-Za-z_\-]{20,}`), RedactedKeyPlaceholder},
	// labelled secrets: x-goog-api-key: ..., api_key=..., key=..., token "..."
	{
		regexp.MustCompile(`(?i)\b(x-goog-api-key|api[_-]?key|key|token|secret)(["'\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`),
		"${1}${2}" + RedactedKeyPlaceholder,
	},
	{regexp.MustCompile(`(?i)\bbearer\s+[A-Za-z0-9._\-]+`), "Bearer " + RedactedTokenPlaceholder},
	{regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`), "[REDACTED_JWT]"},
	{regexp.MustCompile(`(?i)\bhttps?://[^\s"'<>]+`), RedactedURLPlaceholder},
	{regexp.MustCompile(`\b\d{1,3}(?:\.\d{1,3}){3}(?::\d{1,5})?\b`), RedactedHostPlaceholder},
	{regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`), RedactedEmailPlaceholder},
	{regexp.MustCompile(`(?:goroutine \d+|panic:)[\s\S]*?(\n\t.*)+`), RedactedStackPlaceholder},
}

// String redacts sensitive information from the input string
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.replacement)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}

// Truncate shortens s to at most max bytes, marking the cut.
// The cut never splits a multi-byte rune.
func Truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "...[truncated]"
}

// SingleLine collapses s onto one line.
func SingleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
