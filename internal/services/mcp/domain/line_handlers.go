package domain

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// GetLineStatusInput represents the MCP tool input for line statuses.
type GetLineStatusInput struct {
	Lines string `json:"lines" jsonschema:"comma-separated list of line names (e.g. victoria,northern,central)"`
}

// GetLineStatusTool defines the MCP tool schema for line statuses.
func GetLineStatusTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get-line-status",
		Description: "Get the current status of specified London transport lines",
	}
}

// GetLineStatusHandler fetches and formats the status of each requested
// line.
func GetLineStatusHandler(api API) mcp.ToolHandlerFor[GetLineStatusInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input GetLineStatusInput) (*mcp.CallToolResult, any, error) {
		lines := strings.TrimSpace(input.Lines)
		if lines == "" {
			return nil, nil, fmt.Errorf("lines parameter must not be empty")
		}

		// The upstream takes the line names as one comma-separated path
		// segment, so each name is escaped on its own and the commas stay
		// literal.
		names := strings.Split(lines, ",")
		for i, name := range names {
			names[i] = url.PathEscape(strings.TrimSpace(name))
		}

		statuses, ok := api.Get(ctx, "Line/"+strings.Join(names, ",")+"/Status", nil)
		entries := statuses.Array()
		if !ok || len(entries) == 0 {
			return textResult("Failed to retrieve line statuses"), nil, nil
		}

		blocks := make([]string, 0, len(entries))
		for _, line := range entries {
			blocks = append(blocks, formatLineStatus(line))
		}
		return textResult("Current Line Statuses:\n\n" + strings.Join(blocks, "\n")), nil, nil
	}
}
