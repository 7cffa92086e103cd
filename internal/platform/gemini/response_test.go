package gemini

import (
	"testing"

	"github.com/phrazzld/emailwriter/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestExtractText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		body        string
		expected    string
		expectedErr error
	}{
		{
			name:     "single candidate",
			body:     `{"candidates":[{"content":{"parts":[{"text":"Subject: Hi\n\nBody"}]}}]}`,
			expected: "Subject: Hi\n\nBody",
		},
		{
			name:     "text is trimmed",
			body:     `{"candidates":[{"content":{"parts":[{"text":"  \n Subject: Hi\n\nBody \n"}]}}]}`,
			expected: "Subject: Hi\n\nBody",
		},
		{
			name:     "only first part of first candidate is used",
			body:     `{"candidates":[{"content":{"parts":[{"text":"one"},{"text":"two"}]}},{"content":{"parts":[{"text":"three"}]}}]}`,
			expected: "one",
		},
		{
			name:     "unknown fields are ignored",
			body:     `{"candidates":[{"content":{"parts":[{"text":"ok"}],"role":"model"},"finishReason":"STOP"}],"usageMetadata":{}}`,
			expected: "ok",
		},
		{name: "empty candidates", body: `{"candidates":[]}`, expectedErr: generation.ErrNoCandidates},
		{name: "absent candidates", body: `{}`, expectedErr: generation.ErrNoCandidates},
		{name: "json null", body: `null`, expectedErr: generation.ErrNoCandidates},
		{name: "null content", body: `{"candidates":[{"content":null}]}`, expectedErr: generation.ErrNoParts},
		{name: "absent parts", body: `{"candidates":[{"content":{}}]}`, expectedErr: generation.ErrNoParts},
		{name: "empty parts", body: `{"candidates":[{"content":{"parts":[]}}]}`, expectedErr: generation.ErrNoParts},
		{name: "missing text", body: `{"candidates":[{"content":{"parts":[{}]}}]}`, expectedErr: generation.ErrEmptyResponse},
		{name: "null text", body: `{"candidates":[{"content":{"parts":[{"text":null}]}}]}`, expectedErr: generation.ErrEmptyResponse},
		{name: "whitespace text", body: `{"candidates":[{"content":{"parts":[{"text":" \n\t"}]}}]}`, expectedErr: generation.ErrEmptyResponse},
		{name: "empty body", body: ``, expectedErr: generation.ErrParse},
		{name: "not json", body: `<html>oops</html>`, expectedErr: generation.ErrParse},
		{name: "truncated json", body: `{"candidates":[`, expectedErr: generation.ErrParse},
		{name: "wrong shape", body: `{"candidates":"none"}`, expectedErr: generation.ErrParse},
		{name: "text not a string", body: `{"candidates":[{"content":{"parts":[{"text":42}]}}]}`, expectedErr: generation.ErrParse},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			text, err := extractText([]byte(tc.body))
			if tc.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.expectedErr)
				assert.Empty(t, text)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, text)
		})
	}
}

func TestExtractText_UpstreamReasonsMatchTaxonomy(t *testing.T) {
	t.Parallel()

	_, err := extractText([]byte(`{"candidates":[]}`))
	assert.ErrorIs(t, err, generation.ErrUpstream)
	assert.NotErrorIs(t, err, generation.ErrParse)

	_, err = extractText([]byte(`nope`))
	assert.ErrorIs(t, err, generation.ErrParse)
	assert.NotErrorIs(t, err, generation.ErrUpstream)
}

func TestExtractSDKText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		resp        *genai.GenerateContentResponse
		expected    string
		expectedErr error
	}{
		{name: "nil response", resp: nil, expectedErr: generation.ErrNoCandidates},
		{name: "no candidates", resp: &genai.GenerateContentResponse{}, expectedErr: generation.ErrNoCandidates},
		{
			name:        "nil content",
			resp:        &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}},
			expectedErr: generation.ErrNoParts,
		},
		{
			name: "empty text",
			resp: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{
				{Content: &genai.Content{Parts: []*genai.Part{{Text: "  "}}}},
			}},
			expectedErr: generation.ErrEmptyResponse,
		},
		{
			name: "text",
			resp: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{
				{Content: &genai.Content{Parts: []*genai.Part{{Text: " Subject: Hi\n\nBody\n"}}}},
			}},
			expected: "Subject: Hi\n\nBody",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			text, err := extractSDKText(tc.resp)
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, text)
		})
	}
}
