// Package mcp parses MCP command flags and selects stdio or HTTP transport.
package mcp

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/londontransit/tfl-mcp/internal/platform/config"
	"github.com/londontransit/tfl-mcp/internal/platform/otel"
	"github.com/londontransit/tfl-mcp/internal/services/mcp/service"
)

// Config holds MCP command configuration.
type Config struct {
	AppID     string `env:"TFL_APP_ID"`
	AppKey    string `env:"TFL_APP_KEY"`
	BaseURL   string `env:"TFL_MCP_BASE_URL"  envDefault:"https://api.tfl.gov.uk"`
	HTTPAddr  string `env:"TFL_MCP_HTTP_ADDR" envDefault:"localhost:8081"`
	Transport string `env:"TFL_MCP_TRANSPORT" envDefault:"stdio"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "TfL API base URL")
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP server address (for HTTP transport)")
	fs.StringVar(&cfg.Transport, "transport", cfg.Transport, "Transport type: stdio or http")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the MCP protocol adapter.
func Run(ctx context.Context, cfg Config) error {
	shutdown, err := otel.Setup(ctx, "mcp")
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("otel shutdown: %v", err)
		}
	}()

	return service.Run(ctx, service.Config{
		BaseURL:   cfg.BaseURL,
		AppID:     cfg.AppID,
		AppKey:    cfg.AppKey,
		Transport: service.TransportKind(cfg.Transport),
		HTTPAddr:  cfg.HTTPAddr,
	})
}
