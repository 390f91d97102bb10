package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// maxStationListing caps the stations resource for readability.
const maxStationListing = 50

// Resource views mirror the tool call/format/fail pattern but take no
// input: an upstream failure renders the failure sentence as the resource
// text, never as a protocol error.

// LinesResource defines the static listing of all covered lines.
func LinesResource() *mcp.Resource {
	return &mcp.Resource{
		URI:         "tfl://lines",
		Name:        "TfL Lines",
		Description: "List of all TfL lines and their basic information",
		MIMEType:    "text/plain",
	}
}

// LinesResourceHandler renders every line for the covered modes.
func LinesResourceHandler(api API) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		result, ok := api.Get(ctx, "Line/Mode/"+searchModes, nil)
		lines := result.Array()
		if !ok || len(lines) == 0 {
			return resourceText(req, "Failed to retrieve lines data"), nil
		}

		blocks := make([]string, 0, len(lines))
		for _, line := range lines {
			blocks = append(blocks, fmt.Sprintf("Name: %s\nID: %s\nMode: %s\nRoutes: %d\n%s",
				line.Get("name").String(),
				line.Get("id").String(),
				line.Get("modeName").String(),
				len(line.Get("routeSections").Array()),
				blockSeparator))
		}
		return resourceText(req, "TfL Lines:\n\n"+strings.Join(blocks, "\n")), nil
	}
}

// StationsResource defines the static listing of stations.
func StationsResource() *mcp.Resource {
	return &mcp.Resource{
		URI:         "tfl://stations",
		Name:        "TfL Stations",
		Description: "List of all TfL stations and their basic information",
		MIMEType:    "text/plain",
	}
}

// StationsResourceHandler renders the first stations for the covered modes.
func StationsResourceHandler(api API) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		result, ok := api.Get(ctx, "StopPoint/Mode/"+searchModes, nil)
		stations := result.Get("stopPoints").Array()
		if !ok || len(stations) == 0 {
			return resourceText(req, "Failed to retrieve stations data"), nil
		}

		if len(stations) > maxStationListing {
			stations = stations[:maxStationListing]
		}
		blocks := make([]string, 0, len(stations))
		for _, station := range stations {
			blocks = append(blocks, fmt.Sprintf("Name: %s\nID: %s\nModes: %s\nZones: %s\nLines: %s\n%s",
				station.Get("commonName").String(),
				station.Get("id").String(),
				joinValues(station.Get("modes").Array()),
				joinValues(station.Get("zones").Array()),
				lineNames(station),
				blockSeparator))
		}
		return resourceText(req, fmt.Sprintf("TfL Stations (first %d):\n\n%s", maxStationListing, strings.Join(blocks, "\n"))), nil
	}
}

// ModesResource defines the static listing of transport modes.
func ModesResource() *mcp.Resource {
	return &mcp.Resource{
		URI:         "tfl://modes",
		Name:        "TfL Transport Modes",
		Description: "List of all available transport modes",
		MIMEType:    "text/plain",
	}
}

// ModesResourceHandler renders every transport mode with its service flags.
func ModesResourceHandler(api API) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		result, ok := api.Get(ctx, "Mode", nil)
		modes := result.Array()
		if !ok || len(modes) == 0 {
			return resourceText(req, "Failed to retrieve transport modes data"), nil
		}

		blocks := make([]string, 0, len(modes))
		for _, mode := range modes {
			blocks = append(blocks, fmt.Sprintf("Name: %s\nDescription: %s\nIs TfL Service: %s\nIs Scheduled Service: %s\n%s",
				mode.Get("modeName").String(),
				stringField(mode, "description", "No description available"),
				yesNo(mode.Get("isTflService").Bool()),
				yesNo(mode.Get("isScheduledService").Bool()),
				blockSeparator))
		}
		return resourceText(req, "TfL Transport Modes:\n\n"+strings.Join(blocks, "\n")), nil
	}
}

func yesNo(value bool) string {
	if value {
		return "Yes"
	}
	return "No"
}

// resourceText wraps text as a plain-text resource read result.
func resourceText(req *mcp.ReadResourceRequest, text string) *mcp.ReadResourceResult {
	uri := ""
	if req != nil && req.Params != nil {
		uri = req.Params.URI
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      uri,
				MIMEType: "text/plain",
				Text:     text,
			},
		},
	}
}
