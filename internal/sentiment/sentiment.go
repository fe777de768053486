package sentiment

import (
	"context"
	"time"
)

// Label is the sentiment class of a message.
type Label string

const (
	Positive Label = "positive"
	Negative Label = "negative"
	Neutral  Label = "neutral"
)

// ValidLabel reports whether l is one of the defined labels.
func ValidLabel(l Label) bool {
	return l == Positive || l == Negative || l == Neutral
}

// Result is a classified message.
//
// RawText must always be populated: session reload reconstructs Results
// from the persisted shape and downstream consumers require the
// original text.
type Result struct {
	Label      Label     `json:"label"`
	Confidence float64   `json:"confidence"`
	RawText    string    `json:"raw_text"`
	Timestamp  time.Time `json:"timestamp"`
	// MaskingHint is set when the text matches an "I'm fine"-style
	// phrase that commonly hides distress. Alignment classification
	// uses it when behavior contradicts the words.
	MaskingHint bool `json:"masking_hint"`
	// Method names the analyzer that produced the result
	// ("keyword", "llm", "restored").
	Method string `json:"method"`
}

// Analyzer classifies free text. Implementations must be synchronous:
// every call returns a concrete Result, never a pending computation.
type Analyzer interface {
	Analyze(ctx context.Context, text string) Result
}
