// ABOUTME: Profile model and the five-stage CBIT phase enum.
// ABOUTME: One profile exists per installation; phase only moves forward.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Phase is a stage in the four-week CBIT program plus the ongoing
// maintenance stage. Ordered; the stored phase never decreases.
type Phase int

const (
	PhaseAwareness Phase = 1 // week 1: just notice tics and urges
	PhaseCompeting Phase = 2 // week 2: introduce competing responses
	PhaseBuilding  Phase = 3 // week 3: build competing response fluency
	PhaseAdvanced  Phase = 4 // week 4: function-based interventions
	PhaseOngoing   Phase = 5 // maintenance
)

// Title returns the phase's display heading.
func (p Phase) Title() string {
	switch p {
	case PhaseAwareness:
		return "Week 1: Become a Tic Detective 🔍"
	case PhaseCompeting:
		return "Week 2: Learn Your Superpower 💪"
	case PhaseBuilding:
		return "Week 3: Practice Makes Perfect ⭐️"
	case PhaseAdvanced:
		return "Week 4: Level Up! 🚀"
	default:
		return "Ongoing: You're a Pro! 🏆"
	}
}

// Description returns the phase's longer coaching explanation.
func (p Phase) Description() string {
	switch p {
	case PhaseAwareness:
		return "This week, your only job is to notice when a tic happens. Don't worry about stopping it — just be aware. You're training your brain to pay attention!"
	case PhaseCompeting:
		return "Now we're going to learn a special move — a competing response. When you feel the urge to tic, you'll do this move instead. Your brain will start to learn a new path!"
	case PhaseBuilding:
		return "Keep using your competing response every time you feel the urge. The more you practice, the stronger the new brain pathway gets. You're literally rewiring your brain!"
	case PhaseAdvanced:
		return "Time to look at what makes tics worse — like stress or excitement — and make a plan for those times."
	default:
		return "You've built amazing skills. Keep practicing and logging. Remember: every day you practice, your brain gets stronger!"
	}
}

// GoalText returns the phase's one-line goal, used in prompts and the
// chat welcome message.
func (p Phase) GoalText() string {
	switch p {
	case PhaseAwareness:
		return "Just notice your tics. Log every one you catch! 🕵️"
	case PhaseCompeting:
		return "Try your competing response at least once today!"
	case PhaseBuilding:
		return "Use your competing response every time you notice the urge!"
	case PhaseAdvanced:
		return "Notice what triggers your tics and use your tools!"
	default:
		return "Keep logging and practicing your competing responses!"
	}
}

// Profile stores user setup info and CBIT program state.
type Profile struct {
	ID               uuid.UUID
	Name             string
	Age              int
	ProgramStartDate time.Time
	CurrentPhase     Phase

	// Primary tics chosen during onboarding, e.g. "Eye Blink".
	PrimaryTics          []string
	PrimaryTicCategories []Category

	// 1 = rarely notices own tics, 5 = always notices.
	TicAwarenessLevel int

	// Tic name → assigned competing response description.
	CompetingResponses map[string]string

	HasCompletedOnboarding bool
}

// NewProfile creates a profile with the reference defaults: age 10,
// program starting now, phase 1, moderate awareness.
func NewProfile() *Profile {
	return &Profile{
		ID:                 uuid.New(),
		Age:                10,
		ProgramStartDate:   time.Now(),
		CurrentPhase:       PhaseAwareness,
		TicAwarenessLevel:  3,
		CompetingResponses: map[string]string{},
	}
}

// DaysSinceStart returns whole days elapsed between the program start
// and now. Negative spans clamp to zero.
func (p *Profile) DaysSinceStart(now time.Time) int {
	days := int(now.Sub(p.ProgramStartDate).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// ResetProgram clears program state for a fresh start. Name, age, and
// chosen tics are preserved.
func (p *Profile) ResetProgram(now time.Time) {
	p.ProgramStartDate = now
	p.CurrentPhase = PhaseAwareness
	p.HasCompletedOnboarding = false
}
