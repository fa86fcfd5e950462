// ABOUTME: Interactive chat REPL against the AI coach.
// ABOUTME: Auto-logs tic entries the coach signals with the LOG_TIC tag.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/harperreed/ticbuddy/internal/chat"
	"github.com/spf13/cobra"
)

var chatClear bool

var chatCmd = &cobra.Command{
	Use:     "chat",
	Aliases: []string{"c"},
	Short:   "Chat with the TicBuddy coach",
	Long: `Start an interactive chat with the TicBuddy coach.

Mention a tic you noticed and the coach will offer to log it; when it
does, the entry appears in your log automatically. Type 'exit' or
press Ctrl+C to leave. The most recent 100 messages survive restarts.

The chat requires a proxy endpoint and bearer token, configured via
TICBUDDY_PROXY_URL and TICBUDDY_AUTH_TOKEN or the config file at
~/.config/ticbuddy/config.json.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.ProxyURL == "" {
			return fmt.Errorf("no chat endpoint configured: set TICBUDDY_PROXY_URL")
		}

		transport := chat.NewClient(cfg.ProxyURL, cfg.AuthToken)
		session, err := chat.NewSession(repo, transport)
		if err != nil {
			return fmt.Errorf("failed to start session: %w", err)
		}

		if chatClear {
			if err := session.ClearHistory(); err != nil {
				return fmt.Errorf("failed to clear history: %w", err)
			}
			color.Yellow("✗ Chat history cleared")
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		// Replay the tail of the restored conversation.
		msgs := session.Messages()
		if tail := 4; len(msgs) > tail {
			msgs = msgs[len(msgs)-tail:]
		}
		for _, m := range msgs {
			printMessage(string(m.Role), m.Content)
		}

		scanner := bufio.NewScanner(os.Stdin)
		prompt := color.New(color.Bold).Sprint("you> ")
		for {
			fmt.Print(prompt)
			if !scanner.Scan() {
				break
			}
			line := strings.TrimSpace(scanner.Text())
			if line == "exit" || line == "quit" {
				break
			}

			result, err := session.SendTurn(ctx, line)
			if errors.Is(err, context.Canceled) {
				break
			}
			if err != nil {
				return err
			}
			if result == nil {
				continue // empty input
			}

			printMessage("assistant", result.Reply)
			if result.LoggedEntry != nil {
				color.Green("✓ Logged %s %s (ID: %s)",
					result.LoggedEntry.DisplayName(),
					outcomeEmoji[result.LoggedEntry.Outcome],
					result.LoggedEntry.ID.String()[:8])
			}
		}

		return scanner.Err()
	},
}

func printMessage(role, content string) {
	label := color.CyanString("coach")
	if role == "user" {
		label = color.New(color.Bold).Sprint("you")
	}
	fmt.Printf("%s> %s\n", label, content)
}

func init() {
	chatCmd.Flags().BoolVar(&chatClear, "clear", false, "clear chat history before starting")
	rootCmd.AddCommand(chatCmd)
}
