package domain

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// maxBikePoints caps how many bike points a search reports.
const maxBikePoints = 5

// SearchBikePointsInput represents the MCP tool input for bike point
// searches.
type SearchBikePointsInput struct {
	Location string `json:"location" jsonschema:"location name in London"`
}

// SearchBikePointsTool defines the MCP tool schema for bike point searches.
func SearchBikePointsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "search-bike-points",
		Description: "Search for bike points near a location",
	}
}

// SearchBikePointsHandler finds bike points near a location and reports
// the nearest ones in upstream ranking order.
func SearchBikePointsHandler(api API) mcp.ToolHandlerFor[SearchBikePointsInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SearchBikePointsInput) (*mcp.CallToolResult, any, error) {
		location := strings.TrimSpace(input.Location)
		if location == "" {
			return nil, nil, fmt.Errorf("location parameter must not be empty")
		}

		params := url.Values{}
		params.Set("query", location)
		result, ok := api.Get(ctx, "BikePoint/Search", params)
		points := result.Array()
		if !ok || len(points) == 0 {
			return textResult("Failed to search for bike points near " + location), nil, nil
		}

		if len(points) > maxBikePoints {
			points = points[:maxBikePoints]
		}
		blocks := make([]string, 0, len(points))
		for _, point := range points {
			blocks = append(blocks, formatBikePoint(point))
		}
		return textResult(fmt.Sprintf("Bike points near %s:\n\n%s", location, strings.Join(blocks, "\n"))), nil, nil
	}
}
