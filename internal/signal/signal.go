package signal

import (
	"fmt"
	"sort"
	"time"
)

// Kind identifies a behavioral signal in the closed vocabulary.
type Kind string

const (
	RapidWABurst        Kind = "RAPID_WA_BURST"
	GhostLossStreak     Kind = "GHOST_LOSS_STREAK"
	HintAbuse           Kind = "HINT_ABUSE"
	SilenceAfterFailure Kind = "SILENCE_AFTER_FAILURE"
	SkipStreak          Kind = "SKIP_STREAK"
	NegativeSentiment   Kind = "NEGATIVE_SENTIMENT"
	LongIdle            Kind = "LONG_IDLE"
	ExcessiveTabSwitch  Kind = "EXCESSIVE_TAB_SWITCHES"
	SuccessfulSolve     Kind = "SUCCESSFUL_SOLVE"
	GhostWin            Kind = "GHOST_WIN"
	PositiveSentiment   Kind = "POSITIVE_SENTIMENT"
	ReturningAfterBreak Kind = "RETURNING_AFTER_BREAK"
)

// Definition describes one vocabulary entry: its base weight (positive
// weights raise burnout, negative weights relieve it) and a human
// description used in logs and response context.
type Definition struct {
	Kind        Kind
	Weight      float64
	Description string
}

// registry is the single authoritative vocabulary. Every consumer
// validates against it; there are no signal kinds outside this table.
var registry = map[Kind]Definition{
	RapidWABurst:        {RapidWABurst, 0.8, "3+ wrong answers within 2 minutes"},
	GhostLossStreak:     {GhostLossStreak, 0.7, "3+ consecutive ghost race losses"},
	HintAbuse:           {HintAbuse, 0.6, "3+ hints requested on the same problem"},
	SilenceAfterFailure: {SilenceAfterFailure, 0.6, "15+ min silence after a failed submission"},
	SkipStreak:          {SkipStreak, 0.5, "3+ problems skipped consecutively"},
	NegativeSentiment:   {NegativeSentiment, 0.5, "chat or voice text classified negative"},
	LongIdle:            {LongIdle, 0.4, "15+ min with no activity"},
	ExcessiveTabSwitch:  {ExcessiveTabSwitch, 0.3, "5+ editor focus switches within 30s"},
	SuccessfulSolve:     {SuccessfulSolve, -0.3, "problem solved"},
	GhostWin:            {GhostWin, -0.2, "ghost race won"},
	PositiveSentiment:   {PositiveSentiment, -0.2, "chat or voice text classified positive"},
	ReturningAfterBreak: {ReturningAfterBreak, -0.15, "first activity after an idle period"},
}

// ErrInvalidKind reports a signal kind outside the closed vocabulary.
// Callers must treat it as a boundary validation failure, never drop it.
type ErrInvalidKind struct {
	Kind Kind
}

func (e *ErrInvalidKind) Error() string {
	return fmt.Sprintf("invalid signal kind: %q", e.Kind)
}

// Lookup returns the definition for a kind, or ErrInvalidKind.
func Lookup(kind Kind) (Definition, error) {
	def, ok := registry[kind]
	if !ok {
		return Definition{}, &ErrInvalidKind{Kind: kind}
	}
	return def, nil
}

// Valid reports whether kind belongs to the vocabulary.
func Valid(kind Kind) bool {
	_, ok := registry[kind]
	return ok
}

// AllKinds returns every kind in the vocabulary, burnout-raising first,
// ordered by descending weight.
func AllKinds() []Kind {
	kinds := make([]Kind, 0, len(registry))
	for k := range registry {
		kinds = append(kinds, k)
	}
	// Stable order for display and tests.
	sort.Slice(kinds, func(i, j int) bool {
		a, b := registry[kinds[i]], registry[kinds[j]]
		if a.Weight != b.Weight {
			return a.Weight > b.Weight
		}
		return a.Kind < b.Kind
	})
	return kinds
}

// Signal is a single observed behavioral event. Immutable once built;
// the scorer consumes it and keeps only the derived (weight, timestamp)
// aggregate.
type Signal struct {
	Kind      Kind              `json:"kind"`
	Value     float64           `json:"value"` // magnitude; 1 for boolean-like signals
	Timestamp time.Time         `json:"timestamp"`
	Metadata  map[string]string `json:"metadata,omitempty"` // threaded through for context, never interpreted
}

// New builds a validated Signal. A zero value defaults to 1.
func New(kind Kind, value float64, ts time.Time, metadata map[string]string) (Signal, error) {
	if !Valid(kind) {
		return Signal{}, &ErrInvalidKind{Kind: kind}
	}
	if value == 0 {
		value = 1
	}
	return Signal{Kind: kind, Value: value, Timestamp: ts, Metadata: metadata}, nil
}

// Weight returns the signal's effective weight: base weight scaled by value.
func (s Signal) Weight() float64 {
	def, err := Lookup(s.Kind)
	if err != nil {
		return 0
	}
	return def.Weight * s.Value
}

// ChatMessage is free-text input from the user (chat or voice transcript).
type ChatMessage struct {
	Text      string
	Timestamp time.Time
	ProblemID string
}
