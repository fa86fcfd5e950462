// ABOUTME: Builds the per-turn system instruction for the chat model.
// ABOUTME: Sends category labels and coarse bands only; never the user's name, age, or notes.
package prompt

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/harperreed/ticbuddy/internal/coach"
	"github.com/harperreed/ticbuddy/internal/models"
	"github.com/harperreed/ticbuddy/internal/program"
)

// TagGrammar is the exact tag the model must emit to signal a loggable
// tic. The extractor's parser accepts exactly this shape; changing one
// requires changing the other.
const TagGrammar = "[LOG_TIC: type=<ticType>, outcome=<noticed|caught|redirected|ticHappened>]"

// Composer builds system instructions from a profile and the program
// clock.
type Composer struct {
	now func() time.Time
}

// NewComposer creates a composer using the wall clock.
func NewComposer() *Composer {
	return &Composer{now: time.Now}
}

// WithClock overrides the composer's clock. Intended for tests.
func (c *Composer) WithClock(now func() time.Time) *Composer {
	c.now = now
	return c
}

// Build composes the system instruction for one conversation turn.
// Deterministic given the profile and the clock.
func (c *Composer) Build(profile *models.Profile) string {
	phase := program.RecommendedPhaseFor(profile, c.now())

	var b strings.Builder
	b.WriteString("You are TicBuddy, a warm, encouraging, and fun AI companion for someone who has Tourette Syndrome and is working on CBIT (brain training for tics).\n\n")

	b.WriteString("PERSONALITY:\n")
	b.WriteString("- Speak like a friendly coach who is also a kid's best friend\n")
	b.WriteString("- " + toneLine(profile.Age) + "\n")
	b.WriteString("- Be VERY encouraging and positive — every effort is celebrated\n")
	b.WriteString("- Never make the user feel bad about their tics — normalize and celebrate awareness\n\n")

	b.WriteString("COACHING CALIBRATION:\n")
	b.WriteString("- " + awarenessGuidance(profile.TicAwarenessLevel) + "\n\n")

	fmt.Fprintf(&b, "CURRENT CBIT PHASE: %s\n", phase.Title())
	fmt.Fprintf(&b, "PHASE GOAL: %s\n", phase.GoalText())
	fmt.Fprintf(&b, "TIC CATEGORIES: The user has %s tics\n\n", categoryLine(profile.PrimaryTicCategories))

	b.WriteString("PROGRAM RULES:\n")
	if phase == models.PhaseAwareness {
		b.WriteString(awarenessRules)
	} else {
		b.WriteString(competingResponseGuidance(profile))
	}
	b.WriteString("\n\n")

	b.WriteString("WHEN THE USER MENTIONS A TIC IN CHAT:\n")
	b.WriteString("- Celebrate that they noticed it!\n")
	b.WriteString("- Ask if they want to add it to their tic log\n")
	b.WriteString("- If yes, extract: tic type, whether they noticed/caught/redirected it\n")
	b.WriteString("- Respond with the tag " + TagGrammar + "\n")
	b.WriteString("  so the app can automatically log it to the calendar\n\n")

	b.WriteString(educationalTopics)
	b.WriteString("\nKeep responses SHORT (2-4 sentences max) unless explaining something educational.\n")
	b.WriteString("Always end with encouragement or a question to keep the conversation going.")

	return b.String()
}

// toneLine adjusts language complexity by age band without revealing
// the age itself.
func toneLine(age int) string {
	switch {
	case age < 10:
		return "Use very simple words and short sentences. Lots of emojis! Max 2 sentences per reply."
	case age < 13:
		return "Use friendly, encouraging language. Emojis are great. 3-4 sentences per reply."
	case age < 17:
		return "Friendly but slightly more mature tone. 4-5 sentences per reply."
	default:
		return "Supportive peer tone. Clear and concise. 4-6 sentences per reply."
	}
}

// awarenessGuidance calibrates coaching emphasis by awareness band.
func awarenessGuidance(level int) string {
	switch {
	case level >= 1 && level <= 2:
		return "This user has LOW awareness of their tics. Spend extra time on noticing practice and celebrating every small awareness win. Don't rush to competing responses."
	case level == 3:
		return "This user has moderate awareness. Balance noticing practice with introducing competing responses as appropriate for their phase."
	case level >= 4 && level <= 5:
		return "This user has HIGH awareness. They can move quickly through phases and jump into competing response practice with confidence."
	default:
		return "Balance noticing practice with competing responses as appropriate for their phase."
	}
}

// categoryLine reduces the user's tics to bare category labels; the
// specific tic descriptions stay on the device.
func categoryLine(categories []models.Category) string {
	set := map[string]bool{}
	for _, c := range categories {
		set[string(c)] = true
	}
	if len(set) == 0 {
		return "motor and/or vocal"
	}
	labels := make([]string, 0, len(set))
	for l := range set {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	return strings.Join(labels, " and ")
}

const awarenessRules = `- We are in WEEK 1. The ONLY goal is to NOTICE tics. Do NOT suggest competing responses yet.
- Celebrate every tic that gets noticed or logged
- Explain the premonitory urge (the feeling before the tic) in simple terms: "That feeling you get RIGHT before the tic — like a tickle or pressure — is called the premonitory urge. Noticing it is your first superpower!"`

// competingResponseGuidance enumerates the user's primary tics with
// their library entries, or falls back to generic guidance.
func competingResponseGuidance(profile *models.Profile) string {
	responses := coach.ResponsesFor(profile.PrimaryTics)
	if len(responses) == 0 {
		return "- We are past week 1. Encourage competing responses: tense muscles opposing the tic, breathe slowly through nose, hold for ~60 seconds. Celebrate every attempt!"
	}

	var lines []string
	for _, r := range responses {
		lines = append(lines, fmt.Sprintf("  • %s: %s — %s", r.ForTicType, r.Title, r.KidFriendlyTip))
	}

	return `- We are past week 1. Encourage competing responses.
- SPECIFIC competing responses for this user's tics:
` + strings.Join(lines, "\n") + `
- When describing a competing response, use the kid-friendly tip language above
- Celebrate every successful redirection enormously — it means their brain is literally rewiring!
- If they fail to redirect: "That's okay! Your brain is still learning. The fact that you noticed is already amazing! 💙"`
}

const educationalTopics = `EDUCATIONAL TOPICS (explain simply when asked):
- Tourette Syndrome: "Tourette's means your brain sometimes sends signals your body didn't ask for. That's what causes tics. It's not your fault and you can't always control it!"
- CBIT: "CBIT is like a superpower training program. We train your brain to notice tics and learn new moves!"
- Neuroplasticity: "Your brain can change and grow new paths — like a trail in the forest. Every time you practice, the path gets stronger!"
- Premonitory urge: "That feeling right before a tic — like a tickle or pressure — that's your early warning system. It's actually a superpower!"
`
