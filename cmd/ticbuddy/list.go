// ABOUTME: CLI command for listing tic entries.
// ABOUTME: Supports filtering by day and limiting results.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/ticbuddy/internal/models"
	"github.com/spf13/cobra"
)

var (
	listOn    string
	listLimit int
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tic entries",
	Long: `List recent tic entries from your log.

OUTPUT FORMAT:

  Each line shows: ID  TIMESTAMP  TYPE  OUTCOME  URGE  (NOTE)

  The ID is an 8-character prefix you can use with 'ticbuddy delete'.

EXAMPLES:

  ticbuddy list                  # Show last 20 entries
  ticbuddy list -n 50            # Show last 50 entries
  ticbuddy list --on 2025-03-14  # Show one day's entries`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var entries []*models.TicEntry
		var err error

		if listOn != "" {
			day, perr := parseTime(listOn)
			if perr != nil {
				return fmt.Errorf("invalid date: %s", listOn)
			}
			entries, err = repo.EntriesOn(day)
		} else {
			entries, err = repo.ListEntries(listLimit)
		}
		if err != nil {
			return fmt.Errorf("failed to list entries: %w", err)
		}

		if len(entries) == 0 {
			fmt.Println("No tic entries found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, e := range entries {
			note := ""
			if e.Note != nil && *e.Note != "" {
				note = faint.Sprintf(" (%s)", truncate(*e.Note, 30))
			}
			fmt.Printf("%s %s %s %s %s urge:%d%s\n",
				faint.Sprint(e.ID.String()[:8]),
				faint.Sprint(e.Date.Format("2006-01-02 15:04")),
				entryEmoji(e),
				padRight(e.DisplayName(), 16),
				padRight(string(e.Outcome), 12),
				e.UrgeStrength,
				note)
		}

		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listOn, "on", "", "show a single day (YYYY-MM-DD)")
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 20, "max entries to show")
	rootCmd.AddCommand(listCmd)
}
