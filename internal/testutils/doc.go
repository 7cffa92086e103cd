// Package testutils provides testing utilities for the email writer.
//
// This package contains helpers for:
//  1. Standing up a fake Gemini generateContent upstream
//  2. Executing requests against a running API server
//  3. Asserting plain-text API responses
//
// # Fake Upstream
//
//	upstream := testutils.NewFakeUpstream(t, http.StatusOK, testutils.GeminiResponseBody("Subject: Hi"))
//	cfg.LLM.BaseURL = upstream.URL()
//	// ...
//	require.Len(t, upstream.Requests(), 1)
//	assert.Equal(t, "x-key", upstream.Requests()[0].APIKey)
//
// # API Requests
//
//	server := testutils.CreateTestServer(t, router)
//	resp, err := testutils.ExecuteGenerateRequest(t, server, `{"content":"hi"}`)
//	require.NoError(t, err)
//	testutils.AssertTextResponse(t, resp, http.StatusOK, "Subject: Hi")
package testutils
