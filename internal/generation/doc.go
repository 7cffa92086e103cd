// Package generation defines the boundary between the HTTP layer and the
// external generative-text service that writes emails. It owns the request
// model, the prompt template, the JSON-safe escaping used when the prompt is
// embedded in an upstream payload, and the error taxonomy every Generator
// implementation reports through.
package generation
