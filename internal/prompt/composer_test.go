// ABOUTME: Tests for system instruction composition: phase rules, privacy, tone bands.
// ABOUTME: Asserts on substrings of the built instruction with a fixed clock.
package prompt

import (
	"strings"
	"testing"
	"time"

	"github.com/harperreed/ticbuddy/internal/models"
)

var testNow = time.Date(2025, 3, 14, 12, 0, 0, 0, time.Local)

func fixedComposer() *Composer {
	return NewComposer().WithClock(func() time.Time { return testNow })
}

func profileInWeek(week int) *models.Profile {
	p := models.NewProfile()
	p.Name = "Sam"
	p.Age = 9
	p.ProgramStartDate = testNow.AddDate(0, 0, -(week-1)*7)
	return p
}

func TestBuildWeekOneForbidsCompetingResponses(t *testing.T) {
	got := fixedComposer().Build(profileInWeek(1))

	if !strings.Contains(got, "The ONLY goal is to NOTICE tics") {
		t.Error("week 1 instruction missing noticing-only rule")
	}
	if !strings.Contains(got, "Do NOT suggest competing responses yet") {
		t.Error("week 1 instruction missing competing-response prohibition")
	}
	if !strings.Contains(got, "premonitory urge") {
		t.Error("week 1 instruction missing premonitory urge explanation")
	}
}

func TestBuildLaterPhaseEnumeratesResponses(t *testing.T) {
	p := profileInWeek(2)
	p.PrimaryTics = []string{"Eye Blink", "Throat Clearing"}

	got := fixedComposer().Build(p)

	if strings.Contains(got, "Do NOT suggest competing responses yet") {
		t.Error("week 2 instruction should not carry week 1 prohibition")
	}
	if !strings.Contains(got, "Eye Blink") || !strings.Contains(got, "Throat Clearing") {
		t.Error("instruction should enumerate the user's primary tics")
	}
	if !strings.Contains(got, "Slow Blink") {
		t.Error("instruction should include the library response title")
	}
}

func TestBuildGenericGuidanceWithoutLibraryMatch(t *testing.T) {
	p := profileInWeek(3)
	p.PrimaryTics = []string{"finger wiggle"}

	got := fixedComposer().Build(p)

	if !strings.Contains(got, "tense muscles opposing the tic") {
		t.Error("unmatched tics should fall back to generic guidance")
	}
}

func TestBuildNeverIncludesNameOrAge(t *testing.T) {
	p := profileInWeek(2)
	p.Name = "Maximilian"
	p.Age = 11

	got := fixedComposer().Build(p)

	if strings.Contains(got, "Maximilian") {
		t.Error("instruction must not contain the user's name")
	}
	if strings.Contains(got, "11") {
		t.Error("instruction must not contain the user's age")
	}
}

func TestBuildCategoryLine(t *testing.T) {
	tests := []struct {
		name       string
		categories []models.Category
		want       string
	}{
		{"motor only", []models.Category{models.CategoryMotor}, "The user has motor tics"},
		{"vocal only", []models.Category{models.CategoryVocal}, "The user has vocal tics"},
		{"both deduped", []models.Category{models.CategoryVocal, models.CategoryMotor, models.CategoryVocal}, "The user has motor and vocal tics"},
		{"empty", nil, "The user has motor and/or vocal tics"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := profileInWeek(1)
			p.PrimaryTicCategories = tt.categories
			got := fixedComposer().Build(p)
			if !strings.Contains(got, tt.want) {
				t.Errorf("instruction missing %q", tt.want)
			}
		})
	}
}

func TestBuildCategoryLineOmitsOtherCategory(t *testing.T) {
	p := profileInWeek(1)
	p.PrimaryTicCategories = []models.Category{models.CategoryMotor}

	got := fixedComposer().Build(p)

	if strings.Contains(got, "The user has motor and vocal") || strings.Contains(got, "vocal tics") {
		t.Error("motor-only profile should not mention vocal tics in the category line")
	}
}

func TestBuildToneBands(t *testing.T) {
	tests := []struct {
		age  int
		want string
	}{
		{8, "Use very simple words"},
		{11, "Use friendly, encouraging language"},
		{15, "slightly more mature tone"},
		{17, "Supportive peer tone"},
	}

	for _, tt := range tests {
		p := profileInWeek(1)
		p.Age = tt.age
		got := fixedComposer().Build(p)
		if !strings.Contains(got, tt.want) {
			t.Errorf("age %d: instruction missing %q", tt.age, tt.want)
		}
	}
}

func TestBuildAwarenessBands(t *testing.T) {
	tests := []struct {
		level int
		want  string
	}{
		{1, "LOW awareness"},
		{2, "LOW awareness"},
		{3, "moderate awareness"},
		{4, "HIGH awareness"},
		{5, "HIGH awareness"},
	}

	for _, tt := range tests {
		p := profileInWeek(1)
		p.TicAwarenessLevel = tt.level
		got := fixedComposer().Build(p)
		if !strings.Contains(got, tt.want) {
			t.Errorf("level %d: instruction missing %q", tt.level, tt.want)
		}
	}
}

func TestBuildIncludesTagInstruction(t *testing.T) {
	got := fixedComposer().Build(profileInWeek(1))

	if !strings.Contains(got, TagGrammar) {
		t.Error("instruction missing the log tag grammar")
	}
	if !strings.Contains(got, "automatically log it to the calendar") {
		t.Error("instruction missing the auto-log explanation")
	}
}

func TestBuildReflectsPhaseTitle(t *testing.T) {
	for week, wantPhase := range map[int]models.Phase{
		1: models.PhaseAwareness,
		2: models.PhaseCompeting,
		5: models.PhaseOngoing,
	} {
		got := fixedComposer().Build(profileInWeek(week))
		if !strings.Contains(got, wantPhase.Title()) {
			t.Errorf("week %d: instruction missing phase title %q", week, wantPhase.Title())
		}
	}
}

func TestBuildDeterministic(t *testing.T) {
	p := profileInWeek(2)
	p.PrimaryTics = []string{"Eye Blink", "Sniffing"}
	p.PrimaryTicCategories = []models.Category{models.CategoryMotor, models.CategoryVocal}

	c := fixedComposer()
	if c.Build(p) != c.Build(p) {
		t.Error("same profile and clock should produce identical instructions")
	}
}
