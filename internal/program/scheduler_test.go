// ABOUTME: Tests for phase recommendation and advancement.
// ABOUTME: Validates boundaries, monotonicity, and the never-decrease invariant.
package program

import (
	"testing"
	"time"

	"github.com/harperreed/ticbuddy/internal/models"
	"github.com/harperreed/ticbuddy/internal/storage"
)

func TestRecommendedPhaseBoundaries(t *testing.T) {
	tests := []struct {
		days int
		want models.Phase
	}{
		{0, models.PhaseAwareness},
		{6, models.PhaseAwareness},
		{7, models.PhaseCompeting},
		{13, models.PhaseCompeting},
		{14, models.PhaseBuilding},
		{20, models.PhaseBuilding},
		{21, models.PhaseAdvanced},
		{27, models.PhaseAdvanced},
		{28, models.PhaseOngoing},
		{365, models.PhaseOngoing},
	}
	for _, tt := range tests {
		if got := RecommendedPhase(tt.days); got != tt.want {
			t.Errorf("RecommendedPhase(%d) = %d, want %d", tt.days, got, tt.want)
		}
	}
}

func TestRecommendedPhaseMonotonic(t *testing.T) {
	prev := RecommendedPhase(0)
	for days := 1; days <= 60; days++ {
		cur := RecommendedPhase(days)
		if cur < prev {
			t.Fatalf("RecommendedPhase decreased from %d to %d at day %d", prev, cur, days)
		}
		prev = cur
	}
}

func TestAdvanceIfNeeded(t *testing.T) {
	repo := storage.NewMemoryStore()
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.Local)

	profile := models.NewProfile()
	profile.ProgramStartDate = now.AddDate(0, 0, -8) // day 8 → week 2
	if err := repo.SaveProfile(profile); err != nil {
		t.Fatalf("SaveProfile failed: %v", err)
	}

	sched := NewScheduler(repo).WithClock(func() time.Time { return now })

	phase, changed, err := sched.AdvanceIfNeeded(profile)
	if err != nil {
		t.Fatalf("AdvanceIfNeeded failed: %v", err)
	}
	if !changed || phase != models.PhaseCompeting {
		t.Errorf("got phase %d changed=%v, want phase 2 changed=true", phase, changed)
	}

	// Duplicate call is a no-op.
	phase, changed, err = sched.AdvanceIfNeeded(profile)
	if err != nil {
		t.Fatalf("duplicate AdvanceIfNeeded failed: %v", err)
	}
	if changed || phase != models.PhaseCompeting {
		t.Errorf("duplicate call: got phase %d changed=%v, want phase 2 changed=false", phase, changed)
	}

	stored, err := repo.LoadProfile()
	if err != nil {
		t.Fatalf("LoadProfile failed: %v", err)
	}
	if stored.CurrentPhase != models.PhaseCompeting {
		t.Errorf("stored phase = %d, want 2", stored.CurrentPhase)
	}
}

func TestAdvanceNeverDecreases(t *testing.T) {
	repo := storage.NewMemoryStore()
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.Local)

	// Profile already confirmed at phase 4 but the clock only says
	// week 2 — a stale recommendation must not pull the phase back.
	profile := models.NewProfile()
	profile.ProgramStartDate = now.AddDate(0, 0, -8)
	profile.CurrentPhase = models.PhaseAdvanced
	if err := repo.SaveProfile(profile); err != nil {
		t.Fatalf("SaveProfile failed: %v", err)
	}

	sched := NewScheduler(repo).WithClock(func() time.Time { return now })
	phase, changed, err := sched.AdvanceIfNeeded(profile)
	if err != nil {
		t.Fatalf("AdvanceIfNeeded failed: %v", err)
	}
	if changed || phase != models.PhaseAdvanced {
		t.Errorf("got phase %d changed=%v, want phase 4 unchanged", phase, changed)
	}
}

func TestRecommendedPhaseForFutureStart(t *testing.T) {
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.Local)
	profile := models.NewProfile()
	profile.ProgramStartDate = now.AddDate(0, 0, 3) // clock skew
	if got := RecommendedPhaseFor(profile, now); got != models.PhaseAwareness {
		t.Errorf("future start: got phase %d, want 1", got)
	}
}
