// ABOUTME: CLI command showing today's dashboard, streak, and the week summary.
// ABOUTME: Terminal report of the progress aggregates.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/ticbuddy/internal/progress"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:     "stats",
	Aliases: []string{"st"},
	Short:   "Show progress statistics",
	Long: `Show today's counts, your logging streak, and a 7-day summary.

The success rate is the share of tics you caught or redirected out of
everything you logged this week.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		agg := progress.NewAggregator(repo)

		profile, err := repo.LoadProfile()
		if err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}

		today, err := agg.Today()
		if err != nil {
			return fmt.Errorf("failed to summarize today: %w", err)
		}
		streak, err := agg.CurrentStreak()
		if err != nil {
			return fmt.Errorf("failed to compute streak: %w", err)
		}
		week, err := agg.Week()
		if err != nil {
			return fmt.Errorf("failed to summarize week: %w", err)
		}

		bold := color.New(color.Bold)
		faint := color.New(color.Faint)

		bold.Println(profile.CurrentPhase.Title())
		fmt.Println(profile.CurrentPhase.GoalText())
		fmt.Println()

		bold.Println("Today")
		fmt.Printf("  logged: %d  redirected: %d  caught: %d  noticed: %d\n",
			today.Total, today.Redirected, today.Caught, today.Noticed)
		if best, ok, err := agg.BestOutcomeToday(); err == nil && ok {
			fmt.Printf("  best outcome: %s %s\n", best, outcomeEmoji[best])
		}
		fmt.Printf("  streak: %d day(s) 🔥\n", streak)
		fmt.Println()

		bold.Println("Last 7 days")
		for _, day := range week.Days {
			bar := strings.Repeat("█", day.Total)
			if day.Total == 0 {
				bar = faint.Sprint("·")
			}
			fmt.Printf("  %s %s %s\n",
				faint.Sprint(day.Date.Format("Mon")),
				faint.Sprintf("%2d", day.Total),
				bar)
		}
		fmt.Printf("  total: %d  redirected: %d  caught: %d  success rate: %d%%\n",
			week.Total, week.Redirected, week.Caught, week.SuccessRate())

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
