package domain

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// maxArrivals caps how many arrival predictions a station query reports.
	maxArrivals = 10
	// maxNearbyStops caps how many stops a radius search reports.
	maxNearbyStops = 10
	// maxRadiusMeters is the largest radius sent upstream; larger requests
	// are silently clamped.
	maxRadiusMeters = 1000
)

// resolveStationID looks up a station by name and returns the identifier of
// the first match. The search is restricted to the rail modes this server
// covers; no disambiguation is attempted among multiple matches.
func resolveStationID(ctx context.Context, api API, station string) (string, bool) {
	params := url.Values{}
	params.Set("modes", searchModes)
	result, ok := api.Get(ctx, "StopPoint/Search/"+url.PathEscape(station), params)
	if !ok {
		return "", false
	}
	matches := result.Get("matches").Array()
	if len(matches) == 0 {
		return "", false
	}
	return matches[0].Get("id").String(), true
}

// GetArrivalsInput represents the MCP tool input for arrival predictions.
type GetArrivalsInput struct {
	Station string `json:"station" jsonschema:"station name or ID"`
}

// GetArrivalsTool defines the MCP tool schema for arrival predictions.
func GetArrivalsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get-arrivals",
		Description: "Get arrival predictions for a specific station",
	}
}

// GetArrivalsHandler resolves a station and reports its next arrivals in
// expected-arrival order.
func GetArrivalsHandler(api API) mcp.ToolHandlerFor[GetArrivalsInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input GetArrivalsInput) (*mcp.CallToolResult, any, error) {
		station := strings.TrimSpace(input.Station)
		if station == "" {
			return nil, nil, fmt.Errorf("station parameter must not be empty")
		}

		stationID, ok := resolveStationID(ctx, api, station)
		if !ok {
			return textResult("Could not find station: " + station), nil, nil
		}

		result, ok := api.Get(ctx, "StopPoint/"+url.PathEscape(stationID)+"/Arrivals", nil)
		arrivals := result.Array()
		if !ok || len(arrivals) == 0 {
			return textResult("Failed to retrieve arrivals for " + station), nil, nil
		}

		// TfL emits uniform ISO-8601 timestamps, so the raw strings order
		// chronologically.
		sort.SliceStable(arrivals, func(i, j int) bool {
			return arrivals[i].Get("expectedArrival").String() < arrivals[j].Get("expectedArrival").String()
		})
		if len(arrivals) > maxArrivals {
			arrivals = arrivals[:maxArrivals]
		}

		now := time.Now()
		blocks := make([]string, 0, len(arrivals))
		for _, arrival := range arrivals {
			blocks = append(blocks, formatArrival(arrival, now))
		}
		return textResult(fmt.Sprintf("Next arrivals at %s:\n\n%s", station, strings.Join(blocks, "\n"))), nil, nil
	}
}

// GetStationInfoInput represents the MCP tool input for station details.
type GetStationInfoInput struct {
	Station string `json:"station" jsonschema:"station name or ID"`
}

// GetStationInfoTool defines the MCP tool schema for station details.
func GetStationInfoTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get-station-info",
		Description: "Get detailed information about a specific station including facilities, lines, and accessibility",
	}
}

// GetStationInfoHandler resolves a station and reports its detail record.
func GetStationInfoHandler(api API) mcp.ToolHandlerFor[GetStationInfoInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input GetStationInfoInput) (*mcp.CallToolResult, any, error) {
		station := strings.TrimSpace(input.Station)
		if station == "" {
			return nil, nil, fmt.Errorf("station parameter must not be empty")
		}

		stationID, ok := resolveStationID(ctx, api, station)
		if !ok {
			return textResult("Could not find station: " + station), nil, nil
		}

		detail, ok := api.Get(ctx, "StopPoint/"+url.PathEscape(stationID), nil)
		if !ok {
			return textResult("Failed to retrieve information for " + station), nil, nil
		}
		return textResult(formatStationInfo(detail)), nil, nil
	}
}

// FindStopsByRadiusInput represents the MCP tool input for radius searches.
// Pointers distinguish absent coordinates from zero values.
type FindStopsByRadiusInput struct {
	Lat    *float64 `json:"lat" jsonschema:"latitude of the center point"`
	Lon    *float64 `json:"lon" jsonschema:"longitude of the center point"`
	Radius *float64 `json:"radius" jsonschema:"radius in meters (max 1000)"`
}

// FindStopsByRadiusTool defines the MCP tool schema for radius searches.
func FindStopsByRadiusTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "find-stops-by-radius",
		Description: "Find stops within a specified radius of a location",
	}
}

// FindStopsByRadiusHandler reports stops around a coordinate. The radius is
// clamped to maxRadiusMeters before the upstream call; absent or
// non-positive radii default to the maximum.
func FindStopsByRadiusHandler(api API) mcp.ToolHandlerFor[FindStopsByRadiusInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input FindStopsByRadiusInput) (*mcp.CallToolResult, any, error) {
		if input.Lat == nil || input.Lon == nil {
			return nil, nil, fmt.Errorf("lat and lon parameters are required")
		}

		radius := float64(maxRadiusMeters)
		if input.Radius != nil && *input.Radius > 0 && *input.Radius < maxRadiusMeters {
			radius = *input.Radius
		}

		lat := formatCoordinate(*input.Lat)
		lon := formatCoordinate(*input.Lon)
		radiusText := formatCoordinate(radius)

		params := url.Values{}
		params.Set("lat", lat)
		params.Set("lon", lon)
		params.Set("radius", radiusText)
		params.Set("modes", searchModes)
		result, ok := api.Get(ctx, "StopPoint", params)
		stopPoints := result.Get("stopPoints")
		if !ok || !stopPoints.Exists() {
			return textResult(fmt.Sprintf("Failed to find stops within %sm of %s, %s", radiusText, lat, lon)), nil, nil
		}

		stops := stopPoints.Array()
		if len(stops) == 0 {
			return textResult(fmt.Sprintf("No stops found within %sm of %s, %s", radiusText, lat, lon)), nil, nil
		}
		if len(stops) > maxNearbyStops {
			stops = stops[:maxNearbyStops]
		}

		blocks := make([]string, 0, len(stops))
		for _, stop := range stops {
			blocks = append(blocks, formatNearbyStop(stop))
		}
		return textResult(fmt.Sprintf("Stops within %sm of %s, %s:\n\n%s", radiusText, lat, lon, strings.Join(blocks, "\n"))), nil, nil
	}
}

// formatCoordinate renders a coordinate or radius with no trailing zeros.
func formatCoordinate(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
