package testutils

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFakeUpstream(t *testing.T) {
	t.Parallel()

	upstream := NewFakeUpstream(t, http.StatusOK, GeminiResponseBody("hi"))

	req, err := http.NewRequest(http.MethodPost, upstream.URL()+"/v1beta/models/m:generateContent",
		strings.NewReader(`{"contents":[{"parts":[{"text":"prompt \"quoted\""}]}]}`))
	require.NoError(t, err)
	req.Header.Set("x-goog-api-key", "k")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	CleanupResponseBody(t, resp)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, ReadBody(t, resp), `"text":"hi"`)

	recorded := upstream.Requests()
	require.Len(t, recorded, 1)
	assert.Equal(t, "/v1beta/models/m:generateContent", recorded[0].Path)
	assert.Equal(t, "k", recorded[0].APIKey)

	prompt, err := recorded[0].PromptText()
	require.NoError(t, err)
	assert.Equal(t, `prompt "quoted"`, prompt)
}

func TestGeminiResponseBody_EscapesText(t *testing.T) {
	t.Parallel()

	body := GeminiResponseBody("Subject: \"Hi\"\n\nBody")
	assert.Contains(t, body, `"text":"Subject: \"Hi\"\n\nBody"`)
}
