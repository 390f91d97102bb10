package domain

import (
	"context"
	"net/url"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/tidwall/gjson"
)

// API is the upstream TfL surface handlers depend on. The boolean reports
// whether a JSON result was obtained; false is the only failure signal.
type API interface {
	Get(ctx context.Context, endpoint string, params url.Values) (gjson.Result, bool)
}

// searchModes restricts station searches and mode-scoped listings to the
// rail services this server covers.
const searchModes = "tube,overground,dlr"

// textResult wraps a text payload as a tool result.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}
