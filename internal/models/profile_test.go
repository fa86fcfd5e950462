// ABOUTME: Tests for profile defaults, program day math, and reset semantics.
package models

import (
	"testing"
	"time"
)

func TestNewProfileDefaults(t *testing.T) {
	p := NewProfile()
	if p.Age != 10 || p.CurrentPhase != PhaseAwareness || p.TicAwarenessLevel != 3 {
		t.Errorf("defaults = age %d phase %d awareness %d", p.Age, p.CurrentPhase, p.TicAwarenessLevel)
	}
	if p.CompetingResponses == nil {
		t.Error("CompetingResponses map should be initialized")
	}
}

func TestDaysSinceStart(t *testing.T) {
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.Local)
	p := NewProfile()

	p.ProgramStartDate = now.AddDate(0, 0, -10)
	if got := p.DaysSinceStart(now); got != 10 {
		t.Errorf("DaysSinceStart = %d, want 10", got)
	}

	p.ProgramStartDate = now
	if got := p.DaysSinceStart(now); got != 0 {
		t.Errorf("DaysSinceStart = %d, want 0 at start", got)
	}

	p.ProgramStartDate = now.AddDate(0, 0, 3)
	if got := p.DaysSinceStart(now); got != 0 {
		t.Errorf("DaysSinceStart = %d, want 0 for a future start", got)
	}
}

func TestResetProgram(t *testing.T) {
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.Local)
	p := NewProfile()
	p.Name = "Sam"
	p.PrimaryTics = []string{"Eye Blink"}
	p.CurrentPhase = PhaseAdvanced
	p.HasCompletedOnboarding = true
	p.ProgramStartDate = now.AddDate(0, 0, -30)

	p.ResetProgram(now)

	if p.CurrentPhase != PhaseAwareness {
		t.Errorf("CurrentPhase = %d, want back to 1", p.CurrentPhase)
	}
	if !p.ProgramStartDate.Equal(now) {
		t.Error("ProgramStartDate should move to now")
	}
	if p.HasCompletedOnboarding {
		t.Error("reset should clear the onboarding flag")
	}
	if p.Name != "Sam" || len(p.PrimaryTics) != 1 {
		t.Error("reset should preserve identity and chosen tics")
	}
}

func TestPhaseCopy(t *testing.T) {
	for _, p := range []Phase{PhaseAwareness, PhaseCompeting, PhaseBuilding, PhaseAdvanced, PhaseOngoing} {
		if p.Title() == "" || p.Description() == "" || p.GoalText() == "" {
			t.Errorf("phase %d is missing display copy", p)
		}
	}
}
