// Package cli wires the cobra commands for the brave-mcp binary.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/brave-mcp/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "brave-mcp",
	Short: "MCP server for the Brave Search API",
	Long: `brave-mcp exposes Brave web search and local business search as
Model Context Protocol tools for AI assistants.

A Brave API subscription token must be provided via the BRAVE_API_KEY
environment variable (a .env file in the working directory is honoured).`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging to stderr")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
