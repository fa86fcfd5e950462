// ABOUTME: Root Cobra command for the ticbuddy CLI.
// ABOUTME: Opens the badger store via PersistentPre/PostRunE and shares it with subcommands.
package main

import (
	"fmt"

	"github.com/harperreed/ticbuddy/internal/config"
	"github.com/harperreed/ticbuddy/internal/storage"
	"github.com/spf13/cobra"
)

var (
	cfg  *config.Config
	repo storage.Repository
)

var rootCmd = &cobra.Command{
	Use:   "ticbuddy",
	Short: "CBIT tic tracker and chat companion",
	Long: `TicBuddy is a CLI companion for CBIT (Comprehensive Behavioral
Intervention for Tics): it logs tic occurrences, tracks the four-week
program, and chats with an AI coach that can log tics for you.

QUICK START:

  $ ticbuddy profile init               # One-time setup
  $ ticbuddy log "Eye Blink" noticed    # Log a tic manually
  $ ticbuddy chat                       # Talk to the coach
  $ ticbuddy stats                      # Today, streak, and week summary

LOGGING:

  $ ticbuddy log "Throat Clearing" caught --urge 4
  $ ticbuddy log "Eye Blink" redirected --note "used slow blink"
  $ ticbuddy list                       # Recent entries
  $ ticbuddy delete abc12345            # Remove an entry

COACHING:

  $ ticbuddy coach "Eye Blink"          # Competing response for a tic

CHAT:

  Mention a tic in chat and the coach logs it automatically. The chat
  endpoint and bearer token come from TICBUDDY_PROXY_URL and
  TICBUDDY_AUTH_TOKEN (or the config file).

MCP INTEGRATION:

  Run 'ticbuddy mcp' to start the Model Context Protocol server for
  use with Claude Desktop or other MCP-compatible AI assistants.

DATA STORAGE:

  Entries, profile, and chat history are stored in a local badger
  database at ~/.local/share/ticbuddy.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		repo, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if repo != nil {
			return repo.Close()
		}
		return nil
	},
}
