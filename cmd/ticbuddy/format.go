// ABOUTME: Presentation lookups and small formatting helpers for the CLI.
// ABOUTME: Emoji and encouragement copy live here, off the domain types.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/ticbuddy/internal/models"
)

// outcomeEmoji maps outcomes to their display glyphs.
var outcomeEmoji = map[models.Outcome]string{
	models.OutcomeNoticed:    "👀",
	models.OutcomeCaught:     "⚡️",
	models.OutcomeRedirected: "🌟",
	models.OutcomeHappened:   "💙",
}

// outcomeEncouragement maps outcomes to their celebration lines.
var outcomeEncouragement = map[models.Outcome]string{
	models.OutcomeNoticed:    "Great job noticing! That's exactly what we practice in week 1.",
	models.OutcomeCaught:     "Amazing! Feeling the urge before the tic is a big deal!",
	models.OutcomeRedirected: "WOW! You redirected it! Your brain is changing! 🧠✨",
	models.OutcomeHappened:   "That's okay! Noticing it still counts. Keep going! 💙",
}

// motorEmoji maps motor tic types to glyphs.
var motorEmoji = map[models.MotorType]string{
	models.MotorEyeBlink:      "👁",
	models.MotorHeadJerk:      "🔄",
	models.MotorShoulderShrug: "🤷",
	models.MotorFacialGrimace: "😬",
	models.MotorArmJerk:       "💪",
	models.MotorLegJerk:       "🦵",
	models.MotorTouching:      "✋",
	models.MotorJumping:       "⬆️",
}

// vocalEmoji maps vocal tic types to glyphs.
var vocalEmoji = map[models.VocalType]string{
	models.VocalThroatClearing: "🗣",
	models.VocalSniffing:       "👃",
	models.VocalGrunting:       "😤",
	models.VocalCoughing:       "🤧",
	models.VocalWordOrPhrase:   "💬",
	models.VocalHumming:        "🎵",
}

// entryEmoji picks the glyph for an entry's tic type, with a fallback
// for custom labels.
func entryEmoji(e *models.TicEntry) string {
	if e.MotorType != nil {
		if em, ok := motorEmoji[*e.MotorType]; ok {
			return em
		}
	}
	if e.VocalType != nil {
		if em, ok := vocalEmoji[*e.VocalType]; ok {
			return em
		}
	}
	return "⚡️"
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

// parseTime accepts the common local timestamp formats used on flags.
func parseTime(s string) (time.Time, error) {
	formats := []string{
		"2006-01-02 15:04",
		"2006-01-02",
		time.RFC3339,
	}
	for _, f := range formats {
		if t, err := time.ParseInLocation(f, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time format: %s", s)
}
