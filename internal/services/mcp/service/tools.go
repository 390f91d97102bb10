package service

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/londontransit/tfl-mcp/internal/services/mcp/domain"
)

// registerTransitTools registers the five TfL query tools.
func registerTransitTools(server *mcp.Server, api domain.API) {
	mcp.AddTool(server, domain.GetLineStatusTool(), domain.GetLineStatusHandler(api))
	mcp.AddTool(server, domain.GetArrivalsTool(), domain.GetArrivalsHandler(api))
	mcp.AddTool(server, domain.SearchBikePointsTool(), domain.SearchBikePointsHandler(api))
	mcp.AddTool(server, domain.GetStationInfoTool(), domain.GetStationInfoHandler(api))
	mcp.AddTool(server, domain.FindStopsByRadiusTool(), domain.FindStopsByRadiusHandler(api))
}

// registerTransitResources registers the three static read-only views.
func registerTransitResources(server *mcp.Server, api domain.API) {
	server.AddResource(domain.LinesResource(), domain.LinesResourceHandler(api))
	server.AddResource(domain.StationsResource(), domain.StationsResourceHandler(api))
	server.AddResource(domain.ModesResource(), domain.ModesResourceHandler(api))
}
