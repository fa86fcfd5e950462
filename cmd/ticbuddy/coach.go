// ABOUTME: CLI command for showing the competing response for a tic type.
// ABOUTME: Read-only view over the coaching library.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/ticbuddy/internal/coach"
	"github.com/spf13/cobra"
)

var coachCmd = &cobra.Command{
	Use:   "coach [tic-type]",
	Short: "Show the competing response for a tic",
	Long: `Show the recommended competing response for a tic type. With no
argument, shows the responses for your primary tics.

EXAMPLES:

  ticbuddy coach "Eye Blink"
  ticbuddy coach`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			printResponse(args[0])
			return nil
		}

		profile, err := repo.LoadProfile()
		if err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}
		if len(profile.PrimaryTics) == 0 {
			fmt.Println("No primary tics set. Run 'ticbuddy profile init' or pass a tic type.")
			return nil
		}
		for i, tic := range profile.PrimaryTics {
			if i > 0 {
				fmt.Println()
			}
			printResponse(tic)
		}
		return nil
	},
}

func printResponse(ticName string) {
	r, ok := coach.ResponseFor(ticName)
	if !ok {
		fmt.Println(coach.GenericGuidance)
		return
	}
	color.New(color.Bold).Printf("%s %s — %s\n", r.Emoji, r.ForTicType, r.Title)
	fmt.Println(r.Instruction)
	fmt.Printf("💡 %s\n", r.KidFriendlyTip)
	fmt.Printf("Hold for about %d seconds.\n", r.HoldDuration)
}

func init() {
	rootCmd.AddCommand(coachCmd)
}
