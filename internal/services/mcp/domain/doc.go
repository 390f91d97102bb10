// Package domain implements the TfL MCP tool and resource handlers.
//
// Handlers are closures over an upstream API so tests can substitute fakes.
// Upstream failures never surface as protocol errors; they become
// human-readable text results. Only caller misuse (blank or missing
// required arguments) returns an error to the host.
package domain
