package coach

import (
	"testing"
	"time"

	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/internal/sentiment"
)

func sentimentResult(label sentiment.Label, masked bool) *sentiment.Result {
	return &sentiment.Result{
		Label:      label,
		Confidence: 0.8,
		RawText:    "some message",
		Timestamp:  time.Unix(1000, 0),
		MaskingHint: masked,
		Method:     "keyword",
	}
}

func TestAlignmentTruthTable(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		label sentiment.Label
		want  Alignment
	}{
		{"low positive", 0.2, sentiment.Positive, GenuineGood},
		{"low neutral", 0.2, sentiment.Neutral, GenuineGood},
		{"low negative", 0.2, sentiment.Negative, VentingOK},
		{"high positive", 0.7, sentiment.Positive, Masking},
		{"high neutral", 0.7, sentiment.Neutral, SilentDisengage},
		{"high negative", 0.7, sentiment.Negative, ConfirmedBurnout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyAlignment(tt.score, 0.5, sentimentResult(tt.label, false))
			if got != tt.want {
				t.Errorf("ClassifyAlignment(%.1f, %s) = %s, want %s",
					tt.score, tt.label, got, tt.want)
			}
		})
	}
}

func TestAlignmentHighThresholdBoundary(t *testing.T) {
	// High is inclusive: exactly 0.5 counts as high.
	got := ClassifyAlignment(0.5, 0.5, sentimentResult(sentiment.Positive, false))
	if got != Masking {
		t.Errorf("score exactly at threshold: got %s, want MASKING", got)
	}
	got = ClassifyAlignment(0.499, 0.5, sentimentResult(sentiment.Positive, false))
	if got != GenuineGood {
		t.Errorf("score just under threshold: got %s, want GENUINE_GOOD", got)
	}
}

func TestAlignmentMaskingHintUpgradesNeutral(t *testing.T) {
	// "i'm fine" scored neutral, but under bad behavior the dismissive
	// phrasing is the masking pattern.
	got := ClassifyAlignment(0.7, 0.5, sentimentResult(sentiment.Neutral, true))
	if got != Masking {
		t.Errorf("high + neutral + masking hint = %s, want MASKING", got)
	}
	// The hint does nothing while behavior is fine.
	got = ClassifyAlignment(0.2, 0.5, sentimentResult(sentiment.Neutral, true))
	if got != GenuineGood {
		t.Errorf("low + neutral + masking hint = %s, want GENUINE_GOOD", got)
	}
}

func TestAlignmentNoSentiment(t *testing.T) {
	if got := ClassifyAlignment(0.7, 0.5, nil); got != SilentDisengage {
		t.Errorf("high + silent = %s, want SILENT_DISENGAGE", got)
	}
	if got := ClassifyAlignment(0.2, 0.5, nil); got != GenuineGood {
		t.Errorf("low + silent = %s, want GENUINE_GOOD", got)
	}
}
