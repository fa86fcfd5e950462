// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs stdio-based MCP server for AI assistant integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/ticbuddy/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant
integration. The server communicates via stdin/stdout.

CLAUDE DESKTOP CONFIGURATION:

  {
    "mcpServers": {
      "ticbuddy": {
        "command": "ticbuddy",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  log_tic        Log a tic occurrence
  list_tics      List recent tic entries
  delete_tic     Delete a tic entry by ID
  get_streak     Current consecutive-day logging streak
  week_summary   Last 7 days by outcome
  get_profile    CBIT program phase and profile
  coaching_tip   Competing response for a tic type

AVAILABLE RESOURCES:

  ticbuddy://today      Today's entries and counts
  ticbuddy://streak     Logging streak
  ticbuddy://progress   Weekly progress dashboard`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(repo)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
