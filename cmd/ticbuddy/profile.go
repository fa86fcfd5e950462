// ABOUTME: CLI commands for viewing and editing the CBIT program profile.
// ABOUTME: Handles onboarding, awareness level, competing response assignment, and reset.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/ticbuddy/internal/coach"
	"github.com/harperreed/ticbuddy/internal/models"
	"github.com/harperreed/ticbuddy/internal/program"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "View or edit your program profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, err := repo.LoadProfile()
		if err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}

		bold := color.New(color.Bold)
		name := profile.Name
		if name == "" {
			name = "(not set)"
		}
		bold.Printf("%s, age %d\n", name, profile.Age)
		fmt.Printf("program started: %s (%d days ago)\n",
			profile.ProgramStartDate.Format("2006-01-02"),
			profile.DaysSinceStart(time.Now()))
		fmt.Printf("phase: %s\n", profile.CurrentPhase.Title())
		fmt.Printf("awareness level: %d/5\n", profile.TicAwarenessLevel)

		if len(profile.PrimaryTics) > 0 {
			fmt.Println("primary tics:")
			for _, tic := range profile.PrimaryTics {
				line := "  • " + tic
				if cr, ok := profile.CompetingResponses[tic]; ok {
					line += color.New(color.Faint).Sprintf(" → %s", cr)
				}
				fmt.Println(line)
			}
		}
		if !profile.HasCompletedOnboarding {
			fmt.Println()
			fmt.Println("Run 'ticbuddy profile init' to finish setup.")
		}
		return nil
	},
}

var (
	initName      string
	initAge       int
	initTics      []string
	initAwareness int
)

var profileInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Set up your profile and start the program",
	Long: `Set up your profile: name, age, primary tics, and how often you
notice your tics (1 = rarely, 5 = always). Starts the program clock.

EXAMPLES:

  ticbuddy profile init --name Sam --age 11 \
      --tic "Eye Blink" --tic "Throat Clearing" --awareness 2`,
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, err := repo.LoadProfile()
		if err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}

		if initName != "" {
			profile.Name = initName
		}
		if initAge > 0 {
			profile.Age = initAge
		}
		if initAwareness >= 1 && initAwareness <= 5 {
			profile.TicAwarenessLevel = initAwareness
		}

		if len(initTics) > 0 {
			profile.PrimaryTics = nil
			profile.PrimaryTicCategories = nil
			for _, tic := range initTics {
				category := models.CategoryMotor
				if models.MatchVocalType(tic) != nil {
					category = models.CategoryVocal
				}
				profile.PrimaryTics = append(profile.PrimaryTics, tic)
				profile.PrimaryTicCategories = append(profile.PrimaryTicCategories, category)

				// Assign the library's competing response up front so
				// it is ready when the phase advances past week 1.
				if r, ok := coach.ResponseFor(tic); ok {
					profile.CompetingResponses[tic] = r.Title
				}
			}
		}

		if !profile.HasCompletedOnboarding {
			profile.ProgramStartDate = time.Now()
			profile.CurrentPhase = models.PhaseAwareness
			profile.HasCompletedOnboarding = true
		}

		if err := repo.SaveProfile(profile); err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}

		color.Green("✓ Profile saved")
		fmt.Println(profile.CurrentPhase.Description())
		return nil
	},
}

var profileAdvanceCmd = &cobra.Command{
	Use:   "advance",
	Short: "Advance the program phase if the schedule allows",
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, err := repo.LoadProfile()
		if err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}

		phase, changed, err := program.NewScheduler(repo).AdvanceIfNeeded(profile)
		if err != nil {
			return fmt.Errorf("failed to advance phase: %w", err)
		}
		if changed {
			color.Green("✓ Advanced to %s", phase.Title())
			fmt.Println(phase.Description())
		} else {
			fmt.Printf("Still in %s\n", phase.Title())
			fmt.Println(phase.GoalText())
		}
		return nil
	},
}

var resetConfirm bool

var profileResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear all entries and restart the program",
	Long: `Clear every tic entry and restart the program clock at week 1.
Your name, age, and chosen tics are preserved. Requires --yes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetConfirm {
			return fmt.Errorf("refusing to reset without --yes")
		}

		profile, err := repo.LoadProfile()
		if err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}

		if err := repo.ClearEntries(); err != nil {
			return fmt.Errorf("failed to clear entries: %w", err)
		}
		profile.ResetProgram(time.Now())
		if err := repo.SaveProfile(profile); err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}

		color.Yellow("✗ Program reset — back to week 1")
		return nil
	},
}

func init() {
	profileInitCmd.Flags().StringVar(&initName, "name", "", "your name")
	profileInitCmd.Flags().IntVar(&initAge, "age", 0, "your age")
	profileInitCmd.Flags().StringArrayVar(&initTics, "tic", nil,
		"primary tic (repeatable), e.g. \"Eye Blink\"")
	profileInitCmd.Flags().IntVar(&initAwareness, "awareness", 0,
		"how often you notice your tics (1-5)")
	profileResetCmd.Flags().BoolVar(&resetConfirm, "yes", false, "confirm the reset")

	profileCmd.AddCommand(profileInitCmd)
	profileCmd.AddCommand(profileAdvanceCmd)
	profileCmd.AddCommand(profileResetCmd)
	rootCmd.AddCommand(profileCmd)
}
