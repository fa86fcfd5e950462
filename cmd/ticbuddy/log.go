// ABOUTME: CLI command for logging a tic occurrence manually.
// ABOUTME: Matches the type name against the enumerations, falls back to a custom label.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/ticbuddy/internal/intent"
	"github.com/harperreed/ticbuddy/internal/models"
	"github.com/spf13/cobra"
)

var (
	logUrge int
	logNote string
	logAt   string
)

var logCmd = &cobra.Command{
	Use:     "log <tic-type> [outcome]",
	Aliases: []string{"l"},
	Short:   "Log a tic occurrence",
	Long: `Log a tic occurrence. The tic type is matched against the known
motor and vocal types; anything else is kept as a custom label.

OUTCOMES:

  noticed      you noticed the tic (default, the week 1 goal)
  caught       you felt the urge before the tic
  redirected   you used your competing response
  tic_happened the tic happened uninterrupted

EXAMPLES:

  ticbuddy log "Eye Blink"
  ticbuddy log "Throat Clearing" caught --urge 4
  ticbuddy log "Eye Blink" redirected --note "slow blink worked"
  ticbuddy log "nose scrunch" noticed              # custom label`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ticType := args[0]

		outcome := models.OutcomeNoticed
		if len(args) == 2 {
			if !models.IsValidOutcome(args[1]) {
				return fmt.Errorf("unknown outcome: %s\nValid outcomes: noticed, caught, redirected, tic_happened", args[1])
			}
			outcome = models.Outcome(args[1])
		}

		// Route through the same tag grammar the chat uses so manual
		// and auto-logged entries infer categories identically.
		in := intent.Extract(fmt.Sprintf("[LOG_TIC: type=%s, outcome=%s]", ticType, outcome))
		if in == nil {
			return fmt.Errorf("invalid tic type: %q", ticType)
		}

		entry := in.ToEntry()
		if logUrge > 0 {
			entry.WithUrgeStrength(logUrge)
		}
		if logNote != "" {
			entry.WithNote(logNote)
		}
		if logAt != "" {
			t, err := parseTime(logAt)
			if err != nil {
				return fmt.Errorf("invalid timestamp: %s", logAt)
			}
			entry.WithDate(t)
		}

		if err := repo.AppendEntry(entry); err != nil {
			return fmt.Errorf("failed to log tic: %w", err)
		}

		color.Green("✓ Logged %s %s", entry.DisplayName(), outcomeEmoji[entry.Outcome])
		fmt.Printf("  %s %s\n",
			color.New(color.Faint).Sprint(entry.ID.String()[:8]),
			outcomeEncouragement[entry.Outcome])

		return nil
	},
}

func init() {
	logCmd.Flags().IntVarP(&logUrge, "urge", "u", 0, "premonitory urge strength (1-5)")
	logCmd.Flags().StringVarP(&logNote, "note", "n", "", "optional note")
	logCmd.Flags().StringVar(&logAt, "at", "", "timestamp (e.g. \"2025-03-14 15:04\")")
	rootCmd.AddCommand(logCmd)
}
