package generation_test

import (
	"encoding/json"
	"testing"

	"github.com/phrazzld/emailwriter/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequest_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want generation.Request
	}{
		{
			name: "canonical fields",
			body: `{"content":"Write to HR","tone":"formal"}`,
			want: generation.Request{Content: "Write to HR", Tone: "formal"},
		},
		{
			name: "legacy alias",
			body: `{"emailContent":"Write to HR"}`,
			want: generation.Request{Content: "Write to HR"},
		},
		{
			name: "canonical wins over alias",
			body: `{"content":"new","emailContent":"old"}`,
			want: generation.Request{Content: "new"},
		},
		{
			name: "explicit empty content is not replaced by alias",
			body: `{"content":"","emailContent":"old"}`,
			want: generation.Request{Content: ""},
		},
		{
			name: "null tone",
			body: `{"content":"x","tone":null}`,
			want: generation.Request{Content: "x"},
		},
		{
			name: "unknown fields ignored",
			body: `{"content":"x","subject":"ignored"}`,
			want: generation.Request{Content: "x"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var req generation.Request
			require.NoError(t, json.Unmarshal([]byte(tc.body), &req))
			assert.Equal(t, tc.want, req)
		})
	}
}

func TestRequest_UnmarshalJSON_WrongType(t *testing.T) {
	t.Parallel()

	var req generation.Request
	err := json.Unmarshal([]byte(`{"content":42}`), &req)
	assert.Error(t, err)
}

func TestRequest_Validate(t *testing.T) {
	t.Parallel()

	for _, content := range []string{"", " ", "\n\t  ", "\u00a0\u2003", "\r\n\x1f"} {
		err := generation.Request{Content: content, Tone: "formal"}.Validate()
		assert.ErrorIs(t, err, generation.ErrInvalidInput, "content %q", content)
	}

	assert.NoError(t, generation.Request{Content: "hello"}.Validate())
	assert.NoError(t, generation.Request{Content: "  padded  "}.Validate())
}
