// ABOUTME: CBIT program scheduler mapping elapsed days to phases.
// ABOUTME: Sole writer of the profile's current phase; never moves it backward.
package program

import (
	"fmt"
	"time"

	"github.com/harperreed/ticbuddy/internal/models"
	"github.com/harperreed/ticbuddy/internal/storage"
)

// RecommendedPhase returns the phase the program schedule calls for
// after the given number of elapsed days.
func RecommendedPhase(elapsedDays int) models.Phase {
	switch {
	case elapsedDays < 7:
		return models.PhaseAwareness
	case elapsedDays < 14:
		return models.PhaseCompeting
	case elapsedDays < 21:
		return models.PhaseBuilding
	case elapsedDays < 28:
		return models.PhaseAdvanced
	default:
		return models.PhaseOngoing
	}
}

// RecommendedPhaseFor derives the recommended phase from a profile's
// program clock.
func RecommendedPhaseFor(p *models.Profile, now time.Time) models.Phase {
	return RecommendedPhase(p.DaysSinceStart(now))
}

// Scheduler advances the stored phase when the schedule has moved past
// it.
type Scheduler struct {
	repo storage.Repository
	now  func() time.Time
}

// NewScheduler creates a scheduler over the given store.
func NewScheduler(repo storage.Repository) *Scheduler {
	return &Scheduler{repo: repo, now: time.Now}
}

// WithClock overrides the scheduler's clock. Intended for tests.
func (s *Scheduler) WithClock(now func() time.Time) *Scheduler {
	s.now = now
	return s
}

// AdvanceIfNeeded raises the profile's current phase to the
// recommended one and persists it. The stored phase never decreases,
// so stale or duplicate calls are no-ops. Returns the phase in effect
// afterward and whether it changed.
func (s *Scheduler) AdvanceIfNeeded(profile *models.Profile) (models.Phase, bool, error) {
	recommended := RecommendedPhaseFor(profile, s.now())
	if recommended <= profile.CurrentPhase {
		return profile.CurrentPhase, false, nil
	}
	profile.CurrentPhase = recommended
	if err := s.repo.SaveProfile(profile); err != nil {
		return profile.CurrentPhase, false, fmt.Errorf("save advanced profile: %w", err)
	}
	return recommended, true, nil
}
