package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"github.com/universal-mcp/sentry/internal/common"
	"github.com/universal-mcp/sentry/internal/config"
	"github.com/universal-mcp/sentry/internal/mcp"
)

func main() {
	stdio := flag.Bool("stdio", false, "Use stdio transport (for Claude Desktop)")
	configFile := flag.String("config", "sentry-mcp.toml", "Path to config file")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Startup gate: a missing credential or malformed base URL means the
	// process must not begin serving invocations.
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	logger := common.NewLoggerFromConfig(cfg.Logging)

	registry, err := mcp.NewRegistry(mcp.Catalog)
	if err != nil {
		log.Fatalf("Invalid tool catalog: %v", err)
	}

	timeout := time.Duration(cfg.Sentry.TimeoutSeconds) * time.Second
	proxy := mcp.NewProxy(cfg.Sentry.BaseURL, cfg.Sentry.APIKey, timeout, logger)
	dispatcher := mcp.NewDispatcher(registry, proxy, logger)

	mcpServer := server.NewMCPServer(
		cfg.Server.Name,
		common.GetVersion(),
		server.WithToolCapabilities(true),
	)

	toolCount := mcp.RegisterTools(mcpServer, dispatcher)
	logger.Info().
		Int("tools", toolCount).
		Str("base_url", cfg.Sentry.BaseURL).
		Msg("sentry-mcp initialized")

	if *stdio {
		// Stdio transport — reads stdin, writes stdout
		if err := server.ServeStdio(mcpServer); err != nil {
			fmt.Fprintf(os.Stderr, "stdio server error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	port := cfg.Server.Port

	// Streamable HTTP transport — listens on configured port
	httpServer := server.NewStreamableHTTPServer(mcpServer,
		server.WithStateLess(true),
	)

	logger.Info().Str("port", port).Msg("starting MCP streamable HTTP")
	fmt.Fprintf(os.Stderr, "Starting MCP Streamable HTTP on :%s\n", port)

	if err := httpServer.Start(":" + port); err != nil {
		fmt.Fprintf(os.Stderr, "http server error: %v\n", err)
		os.Exit(1)
	}
}
