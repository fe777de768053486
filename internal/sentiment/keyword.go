package sentiment

import (
	"context"
	"strings"
	"time"
)

// KeywordAnalyzer is the deterministic lexicon classifier. Zero latency,
// zero cost, always returns a concrete Result — it is both the baseline
// analyzer and the fallback when a remote classifier is unavailable.
type KeywordAnalyzer struct {
	now func() time.Time
}

// NewKeywordAnalyzer creates a KeywordAnalyzer.
func NewKeywordAnalyzer() *KeywordAnalyzer {
	return &KeywordAnalyzer{now: time.Now}
}

// Analyze classifies text by lexicon matching. Empty or whitespace-only
// text yields neutral with low confidence, never an error.
func (a *KeywordAnalyzer) Analyze(_ context.Context, text string) Result {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Result{
			Label:      Neutral,
			Confidence: 0.1,
			RawText:    text,
			Timestamp:  a.now(),
			Method:     "keyword",
		}
	}

	neg := countMatches(negativePatterns, trimmed)
	pos := countMatches(positivePatterns, trimmed)
	masked := countMatches(maskingPatterns, trimmed) > 0

	label := Neutral
	switch {
	case neg > pos:
		label = Negative
	case pos > neg:
		label = Positive
	}

	// Confidence scales with match strength; a bare neutral is a weak
	// statement about the text, not a strong "definitely neutral".
	confidence := 0.3
	if matches := neg + pos; matches > 0 {
		confidence = 0.2 + 0.3*float64(matches)
		if confidence > 1 {
			confidence = 1
		}
	}

	return Result{
		Label:       label,
		Confidence:  confidence,
		RawText:     text,
		Timestamp:   a.now(),
		MaskingHint: masked,
		Method:      "keyword",
	}
}
