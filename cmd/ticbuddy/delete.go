// ABOUTME: CLI command for deleting tic entries.
// ABOUTME: Accepts a full UUID or the 8-character prefix shown by 'list'.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/ticbuddy/internal/models"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a tic entry",
	Long: `Delete a tic entry by its ID or ID prefix.

The ID prefix is shown in the first column of 'ticbuddy list' output.

EXAMPLES:

  ticbuddy delete abc12345      # Delete by 8-char prefix
  ticbuddy rm abc1              # Short prefix (if unique)

CAUTION:

  This permanently deletes the entry. There is no undo.
  If the prefix matches multiple entries, an error is returned.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		idOrPrefix := strings.ToLower(args[0])

		entries, err := repo.ListEntries(0)
		if err != nil {
			return fmt.Errorf("failed to list entries: %w", err)
		}

		var match *models.TicEntry
		for _, e := range entries {
			if strings.HasPrefix(e.ID.String(), idOrPrefix) {
				if match != nil {
					return fmt.Errorf("ambiguous prefix %s: matches multiple entries", idOrPrefix)
				}
				match = e
			}
		}
		if match == nil {
			return fmt.Errorf("entry not found: %s", idOrPrefix)
		}

		if err := repo.RemoveEntry(match.ID); err != nil {
			return fmt.Errorf("failed to delete entry: %w", err)
		}

		color.Yellow("✗ Deleted %s", match.DisplayName())
		fmt.Printf("  %s %s\n",
			color.New(color.Faint).Sprint(match.ID.String()[:8]),
			match.Date.Format("2006-01-02 15:04"))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
