// Package service assembles the TfL MCP server and runs its transport.
package service
