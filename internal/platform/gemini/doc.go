// Package gemini provides implementations of the generation.Generator
// interface backed by Google's Gemini generateContent API.
//
// Two backends are available and selected by config.LLMConfig.Backend:
//
//  1. RESTGenerator ("rest", the default):
//     - Builds the request body by hand around the escaped prompt
//     - Sends a single POST to {base_url}/{api_version}/models/{model}:generateContent
//     - Authenticates with the x-goog-api-key header
//
//  2. SDKGenerator ("sdk"):
//     - Uses the google.golang.org/genai client against the same endpoint
//
// Both backends share the same extraction rules: the first part of the first
// candidate is the email, trimmed. Missing candidates, missing parts and empty
// text are upstream errors; a body that is not JSON of the expected shape is a
// parse error. Every call is a single attempt bounded by LLMConfig.Timeout.
package gemini
