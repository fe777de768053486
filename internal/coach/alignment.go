package coach

import (
	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/internal/sentiment"
)

// Alignment is the relationship between inferred behavioral burnout and
// self-reported sentiment.
type Alignment string

const (
	// GenuineGood: behavior fine, words fine (or at worst neutral).
	GenuineGood Alignment = "GENUINE_GOOD"
	// VentingOK: behavior fine, words negative. Complaining while
	// performing well is healthy, not a crisis.
	VentingOK Alignment = "VENTING_OK"
	// Masking: behavior bad, words positive. The user reports fine
	// while the signals say otherwise. The most dangerous case to
	// miss; always surfaced to the intervention selector.
	Masking Alignment = "MASKING"
	// SilentDisengage: behavior bad, words neutral or absent.
	SilentDisengage Alignment = "SILENT_DISENGAGE"
	// ConfirmedBurnout: behavior bad, words negative. Both layers agree.
	ConfirmedBurnout Alignment = "CONFIRMED_BURNOUT"
)

// ClassifyAlignment cross-tabulates the burnout score against the most
// recent sentiment. Burnout counts as high at or above highThreshold.
//
// A masking phrase hint ("i'm fine", "all good") upgrades a high-burnout
// neutral reading to MASKING: dismissive-fine wording under bad behavior
// is the masking pattern even when the classifier scored it neutral.
func ClassifyAlignment(score, highThreshold float64, latest *sentiment.Result) Alignment {
	high := score >= highThreshold

	if latest == nil {
		if high {
			return SilentDisengage
		}
		return GenuineGood
	}

	if !high {
		if latest.Label == sentiment.Negative {
			return VentingOK
		}
		return GenuineGood
	}

	switch latest.Label {
	case sentiment.Positive:
		return Masking
	case sentiment.Negative:
		return ConfirmedBurnout
	default:
		if latest.MaskingHint {
			return Masking
		}
		return SilentDisengage
	}
}
