// ABOUTME: Parses [LOG_TIC: ...] tags embedded in assistant replies.
// ABOUTME: Extracts a structured logging intent and strips the tag for display.
package intent

import (
	"regexp"
	"strings"

	"github.com/harperreed/ticbuddy/internal/models"
)

// LogIntent is a structured logging instruction parsed from a reply.
// It exists only to drive TicEntry creation and is never persisted.
type LogIntent struct {
	Category models.Category
	TypeName string
	Outcome  models.Outcome
	Count    int
}

var (
	// Full grammar: [LOG_TIC: type=<TYPE>, outcome=<OUTCOME>] where
	// TYPE excludes commas and closing brackets and OUTCOME excludes
	// closing brackets.
	tagPattern = regexp.MustCompile(`\[LOG_TIC: type=([^,\]]+), outcome=([^\]]+)\]`)

	// Looser pattern used for stripping, so a tag with a malformed
	// payload still disappears from the displayed text.
	stripPattern = regexp.MustCompile(`\[LOG_TIC:[^\]]+\]`)
)

// vocalKeywords drive category inference from the free-text type name.
var vocalKeywords = []string{"throat", "sniff", "grunt", "cough", "word", "hum", "vocal"}

// Extract parses the first [LOG_TIC: ...] tag in the text. Returns nil
// when no well-formed tag is present; that is the ordinary case for
// conversational replies, not an error.
func Extract(text string) *LogIntent {
	m := tagPattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}

	typeName := strings.TrimSpace(m[1])
	outcome := parseOutcome(m[2])

	category := models.CategoryMotor
	lower := strings.ToLower(typeName)
	for _, kw := range vocalKeywords {
		if strings.Contains(lower, kw) {
			category = models.CategoryVocal
			break
		}
	}

	return &LogIntent{
		Category: category,
		TypeName: typeName,
		Outcome:  outcome,
		Count:    1,
	}
}

// Strip removes every [LOG_TIC: ...] tag occurrence and trims the
// surrounding whitespace.
func Strip(text string) string {
	return strings.TrimSpace(stripPattern.ReplaceAllString(text, ""))
}

// parseOutcome maps the tag's outcome token to an Outcome.
// Unrecognized tokens degrade to "noticed" rather than discarding the
// whole intent.
func parseOutcome(token string) models.Outcome {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "caught":
		return models.OutcomeCaught
	case "redirected":
		return models.OutcomeRedirected
	case "tichappened", "tic_happened":
		return models.OutcomeHappened
	default:
		return models.OutcomeNoticed
	}
}

// ToEntry builds a TicEntry from the intent. The type name is matched
// only against the enumerations of the intent's own category, so a
// vocal type can never end up on a motor entry; anything unmatched
// becomes a custom label.
func (in *LogIntent) ToEntry() *models.TicEntry {
	e := models.NewTicEntry(in.Category).WithOutcome(in.Outcome)

	if in.Category == models.CategoryVocal {
		if vt := models.MatchVocalType(in.TypeName); vt != nil {
			return e.WithVocalType(*vt)
		}
	} else {
		if mt := models.MatchMotorType(in.TypeName); mt != nil {
			return e.WithMotorType(*mt)
		}
	}
	return e.WithCustomLabel(in.TypeName)
}
