// ABOUTME: CBIT competing response library keyed by tic type name.
// ABOUTME: Static data based on the published CBIT protocol (Woods et al., 2008).
package coach

import (
	"fmt"
	"strings"

	"github.com/harperreed/ticbuddy/internal/models"
)

// A competing response must be physically incompatible with the tic,
// subtle enough for public use, held for about a minute or until the
// urge passes, and simple enough for a child to learn.

// IsDiscreet applies to every entry in the library; no published
// response draws attention in public.
const IsDiscreet = true

// Response is one competing response recommendation.
type Response struct {
	ID             string
	ForTicType     string // matches a MotorType or VocalType value
	Title          string
	Instruction    string
	KidFriendlyTip string
	HoldDuration   int // seconds to hold
	Emoji          string
}

// MotorResponses covers the enumerated motor tic types.
var MotorResponses = []Response{
	{
		ID:             "cr_eyeblink",
		ForTicType:     string(models.MotorEyeBlink),
		Title:          "Slow Blink",
		Instruction:    "When you feel the urge to blink rapidly, slowly and gently close your eyes halfway (like you're sleepy) and hold for 5 seconds, then open slowly.",
		KidFriendlyTip: "Pretend you're a sleepy lion. Slow blinks only! 🦁",
		HoldDuration:   30,
		Emoji:          "👁",
	},
	{
		ID:             "cr_headjerk",
		ForTicType:     string(models.MotorHeadJerk),
		Title:          "Neck Press",
		Instruction:    "When you feel the urge to jerk your head, gently press the back of your head backward against an imaginary wall. Create a tiny bit of tension in your neck muscles. Hold gently.",
		KidFriendlyTip: "Be a turtle — pull your head in slowly! 🐢",
		HoldDuration:   60,
		Emoji:          "🔄",
	},
	{
		ID:             "cr_shouldershrug",
		ForTicType:     string(models.MotorShoulderShrug),
		Title:          "Shoulder Press Down",
		Instruction:    "When you feel the urge to shrug, push your shoulders DOWN instead — as if pressing them toward the floor. Hold gently for 1 minute.",
		KidFriendlyTip: "Pretend something heavy is on your shoulders, pushing them down. 📦",
		HoldDuration:   60,
		Emoji:          "🤷",
	},
	{
		ID:             "cr_facialgrimace",
		ForTicType:     string(models.MotorFacialGrimace),
		Title:          "Face Relax",
		Instruction:    "When you feel the urge to grimace, instead relax ALL the muscles in your face completely. Mouth slightly open, forehead smooth, jaw loose. Hold this relaxed position.",
		KidFriendlyTip: "Make your face like a sleeping puppy — totally relaxed! 🐶",
		HoldDuration:   45,
		Emoji:          "😬",
	},
	{
		ID:             "cr_armjerk",
		ForTicType:     string(models.MotorArmJerk),
		Title:          "Arm Press",
		Instruction:    "When you feel the urge to jerk your arm, press your arm firmly against the side of your body (or against your leg if sitting). Hold the gentle tension.",
		KidFriendlyTip: "Pin your arm to your side like a penguin! 🐧",
		HoldDuration:   60,
		Emoji:          "💪",
	},
	{
		ID:             "cr_legjerk",
		ForTicType:     string(models.MotorLegJerk),
		Title:          "Foot Press",
		Instruction:    "When you feel the urge in your leg, press your foot firmly into the floor. Feel the floor pushing back. Hold the steady pressure.",
		KidFriendlyTip: "Press your foot into the ground like you're squishing something! 🦶",
		HoldDuration:   60,
		Emoji:          "🦵",
	},
	{
		ID:             "cr_touching",
		ForTicType:     string(models.MotorTouching),
		Title:          "Fist Close",
		Instruction:    "When you feel the urge to touch, gently close your hand into a soft fist and squeeze slightly. Hold the squeeze. This keeps the hand occupied.",
		KidFriendlyTip: "Make a gentle fist like you're holding a butterfly — not too tight! 🦋",
		HoldDuration:   60,
		Emoji:          "✋",
	},
	{
		ID:             "cr_jumping",
		ForTicType:     string(models.MotorJumping),
		Title:          "Stand Still + Press Down",
		Instruction:    "When you feel the urge to jump, plant your feet firmly on the ground and press down through your heels. Bend knees slightly. Hold steady.",
		KidFriendlyTip: "Be a tree! Roots going into the ground. 🌳",
		HoldDuration:   60,
		Emoji:          "⬆️",
	},
}

// VocalResponses covers the enumerated vocal tic types.
var VocalResponses = []Response{
	{
		ID:             "cr_throatclear",
		ForTicType:     string(models.VocalThroatClearing),
		Title:          "Slow Nose Breath",
		Instruction:    "When you feel the urge to clear your throat, instead breathe in slowly through your nose (mouth closed) for 4 counts. Hold 2 counts. Out through nose for 4 counts. The urge will often pass.",
		KidFriendlyTip: "Breathe like you're smelling something AMAZING! 🌸",
		HoldDuration:   30,
		Emoji:          "🗣",
	},
	{
		ID:             "cr_sniffing",
		ForTicType:     string(models.VocalSniffing),
		Title:          "Mouth Breathe",
		Instruction:    "When you feel the urge to sniff, close your mouth, relax your nose, and breathe slowly through your mouth instead. The urge to sniff often disappears.",
		KidFriendlyTip: "Breathe like a fish for a few seconds! 🐠",
		HoldDuration:   20,
		Emoji:          "👃",
	},
	{
		ID:             "cr_grunting",
		ForTicType:     string(models.VocalGrunting),
		Title:          "Gentle Hum",
		Instruction:    "When you feel the urge to grunt, instead press your lips together and breathe smoothly through your nose. Keep your voice box still and relaxed.",
		KidFriendlyTip: "Be a quiet ninja! Lips together, breathe through your nose. 🥷",
		HoldDuration:   45,
		Emoji:          "😤",
	},
	{
		ID:             "cr_coughing",
		ForTicType:     string(models.VocalCoughing),
		Title:          "Swallow + Breathe",
		Instruction:    "When you feel the urge to cough, swallow once, then breathe in slowly through your nose. The swallow interrupts the cough urge.",
		KidFriendlyTip: "Swallow like you're drinking water, then breathe. 💧",
		HoldDuration:   20,
		Emoji:          "🤧",
	},
	{
		ID:             "cr_wordphrase",
		ForTicType:     string(models.VocalWordOrPhrase),
		Title:          "Lip Press + Breathe",
		Instruction:    "When you feel the urge to say the word or phrase, gently press your lips together and breathe slowly in through your nose. Keeping lips together makes it physically harder to vocalize.",
		KidFriendlyTip: "Zipper your lips! Press them together gently. 🤐",
		HoldDuration:   60,
		Emoji:          "💬",
	},
	{
		ID:             "cr_humming",
		ForTicType:     string(models.VocalHumming),
		Title:          "Silent Exhale",
		Instruction:    "When you feel the urge to hum, breathe out silently through slightly open lips — no voice, just air. This satisfies the need to exhale without the sound.",
		KidFriendlyTip: "Breathe out like you're blowing on hot soup — no sound! 🍜",
		HoldDuration:   20,
		Emoji:          "🎵",
	},
}

// ResponseFor looks up the competing response for a tic type name.
// The match is case-insensitive on the full name.
func ResponseFor(ticTypeName string) (Response, bool) {
	for _, r := range MotorResponses {
		if strings.EqualFold(r.ForTicType, ticTypeName) {
			return r, true
		}
	}
	for _, r := range VocalResponses {
		if strings.EqualFold(r.ForTicType, ticTypeName) {
			return r, true
		}
	}
	return Response{}, false
}

// ResponsesFor returns the library entries for the given tic names,
// skipping names without an entry.
func ResponsesFor(ticNames []string) []Response {
	var out []Response
	for _, name := range ticNames {
		if r, ok := ResponseFor(name); ok {
			out = append(out, r)
		}
	}
	return out
}

// GenericGuidance is the fallback coaching text for tics without a
// library entry.
const GenericGuidance = "When you feel the urge to tic, try tensing the muscles in the opposite direction gently for about 1 minute. Take slow deep breaths through your nose. The urge usually passes! 💪"

// ChatDescription returns a kid-friendly explanation of the competing
// response for a tic, or the generic guidance when none exists.
func ChatDescription(ticName string) string {
	r, ok := ResponseFor(ticName)
	if !ok {
		return GenericGuidance
	}
	return fmt.Sprintf("Here's your superpower move for %s:\n\n**%s** %s\n\n%s\n\n💡 Tip: %s\n\nTry holding it for about %d seconds. You've got this! 🌟",
		ticName, r.Title, r.Emoji, r.Instruction, r.KidFriendlyTip, r.HoldDuration)
}
