// ABOUTME: TicEntry model plus category, type, and outcome enums.
// ABOUTME: One entry per logged tic occurrence, motor or vocal.
package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Category splits tics into the two clinical groups.
type Category string

const (
	CategoryMotor Category = "motor"
	CategoryVocal Category = "vocal"
)

// MotorType enumerates the supported motor tic types.
type MotorType string

const (
	MotorEyeBlink      MotorType = "Eye Blink"
	MotorHeadJerk      MotorType = "Head Jerk"
	MotorShoulderShrug MotorType = "Shoulder Shrug"
	MotorFacialGrimace MotorType = "Facial Grimace"
	MotorArmJerk       MotorType = "Arm Jerk"
	MotorLegJerk       MotorType = "Leg Jerk"
	MotorTouching      MotorType = "Touching"
	MotorJumping       MotorType = "Jumping"
)

// VocalType enumerates the supported vocal tic types.
type VocalType string

const (
	VocalThroatClearing VocalType = "Throat Clearing"
	VocalSniffing       VocalType = "Sniffing"
	VocalGrunting       VocalType = "Grunting"
	VocalCoughing       VocalType = "Coughing"
	VocalWordOrPhrase   VocalType = "Word or Phrase"
	VocalHumming        VocalType = "Humming"
)

// AllMotorTypes returns all enumerated motor tic types.
var AllMotorTypes = []MotorType{
	MotorEyeBlink, MotorHeadJerk, MotorShoulderShrug, MotorFacialGrimace,
	MotorArmJerk, MotorLegJerk, MotorTouching, MotorJumping,
}

// AllVocalTypes returns all enumerated vocal tic types.
var AllVocalTypes = []VocalType{
	VocalThroatClearing, VocalSniffing, VocalGrunting, VocalCoughing,
	VocalWordOrPhrase, VocalHumming,
}

// MatchMotorType finds the motor type whose name contains the given
// text, case-insensitively. Returns nil when nothing matches.
func MatchMotorType(name string) *MotorType {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return nil
	}
	for _, mt := range AllMotorTypes {
		if strings.Contains(strings.ToLower(string(mt)), needle) {
			t := mt
			return &t
		}
	}
	return nil
}

// MatchVocalType finds the vocal type whose name contains the given
// text, case-insensitively. Returns nil when nothing matches.
func MatchVocalType(name string) *VocalType {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return nil
	}
	for _, vt := range AllVocalTypes {
		if strings.Contains(strings.ToLower(string(vt)), needle) {
			t := vt
			return &t
		}
	}
	return nil
}

// Outcome is the ordered result of a tic occurrence.
type Outcome string

const (
	OutcomeNoticed    Outcome = "noticed"      // week 1: awareness only
	OutcomeCaught     Outcome = "caught"       // felt the urge before the tic
	OutcomeRedirected Outcome = "redirected"   // used the competing response
	OutcomeHappened   Outcome = "tic_happened" // could not redirect
)

// AllOutcomes returns all valid outcomes.
var AllOutcomes = []Outcome{
	OutcomeNoticed, OutcomeCaught, OutcomeRedirected, OutcomeHappened,
}

// IsValidOutcome checks if a string is a valid outcome.
func IsValidOutcome(s string) bool {
	for _, o := range AllOutcomes {
		if string(o) == s {
			return true
		}
	}
	return false
}

// Rank orders outcomes for "best of the day" comparisons.
// Redirected beats caught beats noticed; a tic that happened
// uninterrupted ranks below everything.
func (o Outcome) Rank() int {
	switch o {
	case OutcomeRedirected:
		return 3
	case OutcomeCaught:
		return 2
	case OutcomeNoticed:
		return 1
	default:
		return 0
	}
}

// TicEntry represents a single logged tic occurrence.
// Exactly one of MotorType, VocalType, or CustomLabel is set; the
// custom label covers tics outside the enumerations.
type TicEntry struct {
	ID           uuid.UUID
	Date         time.Time
	Category     Category
	MotorType    *MotorType
	VocalType    *VocalType
	CustomLabel  *string
	Outcome      Outcome
	UrgeStrength int // 1-5 premonitory urge scale
	Note         *string
}

// NewTicEntry creates an entry with a generated ID, the current time,
// outcome "noticed", and the minimum urge strength.
func NewTicEntry(category Category) *TicEntry {
	return &TicEntry{
		ID:           uuid.New(),
		Date:         time.Now(),
		Category:     category,
		Outcome:      OutcomeNoticed,
		UrgeStrength: 1,
	}
}

// WithMotorType sets an enumerated motor type and clears any label.
func (e *TicEntry) WithMotorType(mt MotorType) *TicEntry {
	e.MotorType = &mt
	e.VocalType = nil
	e.CustomLabel = nil
	return e
}

// WithVocalType sets an enumerated vocal type and clears any label.
func (e *TicEntry) WithVocalType(vt VocalType) *TicEntry {
	e.VocalType = &vt
	e.MotorType = nil
	e.CustomLabel = nil
	return e
}

// WithCustomLabel sets a free-text label and clears the enum types.
func (e *TicEntry) WithCustomLabel(label string) *TicEntry {
	e.CustomLabel = &label
	e.MotorType = nil
	e.VocalType = nil
	return e
}

// WithOutcome sets the outcome.
func (e *TicEntry) WithOutcome(o Outcome) *TicEntry {
	e.Outcome = o
	return e
}

// WithUrgeStrength sets the premonitory urge strength, clamped to 1-5.
func (e *TicEntry) WithUrgeStrength(n int) *TicEntry {
	if n < 1 {
		n = 1
	}
	if n > 5 {
		n = 5
	}
	e.UrgeStrength = n
	return e
}

// WithNote sets a free-text note.
func (e *TicEntry) WithNote(note string) *TicEntry {
	e.Note = &note
	return e
}

// WithDate sets a custom occurrence timestamp.
func (e *TicEntry) WithDate(t time.Time) *TicEntry {
	e.Date = t
	return e
}

// DisplayName returns the label to show for the entry's tic type.
func (e *TicEntry) DisplayName() string {
	if e.CustomLabel != nil {
		return *e.CustomLabel
	}
	if e.MotorType != nil {
		return string(*e.MotorType)
	}
	if e.VocalType != nil {
		return string(*e.VocalType)
	}
	return "Unknown Tic"
}
