package gemini

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"github.com/phrazzld/emailwriter/internal/generation"
	"google.golang.org/genai"
)

// generateContentResponse is the subset of the generateContent response
// the generators read. Text is a pointer so a missing or null field can be
// told apart from an empty string.
type generateContentResponse struct {
	Candidates []struct {
		Content *struct {
			Parts []struct {
				Text *string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// extractText parses a raw generateContent response body and returns the
// trimmed text of the first part of the first candidate.
func extractText(body []byte) (string, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return "", generation.NewParseError(errors.New("empty response body"))
	}

	var resp generateContentResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", generation.NewParseError(err)
	}

	if len(resp.Candidates) == 0 {
		return "", generation.NewUpstreamError(generation.ErrNoCandidates, 0, "", nil)
	}

	content := resp.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return "", generation.NewUpstreamError(generation.ErrNoParts, 0, "", nil)
	}

	return trimmedText(content.Parts[0].Text)
}

// extractSDKText applies the same rules to a response decoded by the genai client.
func extractSDKText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return "", generation.NewUpstreamError(generation.ErrNoCandidates, 0, "", nil)
	}

	content := resp.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 || content.Parts[0] == nil {
		return "", generation.NewUpstreamError(generation.ErrNoParts, 0, "", nil)
	}

	text := content.Parts[0].Text
	return trimmedText(&text)
}

func trimmedText(text *string) (string, error) {
	if text == nil {
		return "", generation.NewUpstreamError(generation.ErrEmptyResponse, 0, "", nil)
	}
	trimmed := strings.TrimSpace(*text)
	if trimmed == "" {
		return "", generation.NewUpstreamError(generation.ErrEmptyResponse, 0, "", nil)
	}
	return trimmed, nil
}
