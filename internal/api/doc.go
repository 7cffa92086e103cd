// Package api handles the email writer's HTTP surface: request decoding and
// validation, dispatch to a generation.Generator, and mapping of generation
// errors to plain-text responses. Routing lives in cmd/server.
package api
