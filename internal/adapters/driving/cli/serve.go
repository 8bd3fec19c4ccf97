package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/brave-mcp/internal/adapters/driven/config"
	"github.com/custodia-labs/brave-mcp/internal/adapters/driving/mcp"
	"github.com/custodia-labs/brave-mcp/internal/connectors/brave"
	"github.com/custodia-labs/brave-mcp/internal/core/services"
	"github.com/custodia-labs/brave-mcp/internal/logger"
)

var serveConfigPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Brave Search MCP server",
	Long: `Start the Model Context Protocol server for Brave Search.

The transport is selected with the TRANSPORT environment variable:
  sse     HTTP transport on HOST:PORT (default, 0.0.0.0:8053)
  stdio   JSON-RPC over stdin/stdout, for MCP clients that spawn
          the server directly

Examples:
  # HTTP mode (default)
  brave-mcp serve

  # Stdio mode (for Claude Desktop)
  TRANSPORT=stdio brave-mcp serve

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "brave-search": {
        "command": "/path/to/brave-mcp",
        "args": ["serve"],
        "env": {"TRANSPORT": "stdio", "BRAVE_API_KEY": "..."}
      }
    }
  }`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "path to an optional TOML config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(serveConfigPath)
	if err != nil {
		return err
	}

	var opts []brave.Option
	if cfg.RequestsPerSecond > 0 || cfg.RequestsPerMonth > 0 {
		opts = append(opts, brave.WithRateLimits(cfg.RequestsPerSecond, cfg.RequestsPerMonth))
	}

	client, err := brave.New(cfg.APIKey, opts...)
	if err != nil {
		return err
	}
	defer client.Close()

	ports := &mcp.Ports{
		Search: services.NewSearchService(client),
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Transport == config.TransportStdio {
		logger.Info("Starting MCP server on stdio")
		return server.Run(ctx)
	}

	addr := cfg.Addr()
	// Status goes to stderr; stdout stays clean for transports.
	fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on http://%s\n", addr)
	return server.RunHTTP(ctx, addr)
}
