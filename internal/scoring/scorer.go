package scoring

import (
	"math"
	"sort"
	"time"

	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/internal/signal"
)

const (
	// DefaultDecayRate is the per-minute exponential decay constant.
	// A signal's contribution falls to ~37% after 10 minutes and is
	// negligible after ~30.
	DefaultDecayRate = 0.1

	// DefaultAlpha is the EMA smoothing factor. Favors responsiveness
	// over noise suppression.
	DefaultAlpha = 0.3

	// DefaultHistoryLimit caps the retained signal history per session.
	DefaultHistoryLimit = 50

	// DefaultScoreHistoryLimit caps the retained (timestamp, score)
	// samples used for trend detection.
	DefaultScoreHistoryLimit = 40
)

// Config holds scorer tuning parameters.
type Config struct {
	// DecayRate is the per-minute exponential decay constant (lambda).
	DecayRate float64
	// Alpha is the EMA smoothing factor in (0, 1].
	Alpha float64
	// HistoryLimit is the maximum number of retained signals.
	HistoryLimit int
	// ScoreHistoryLimit is the maximum number of retained score samples.
	ScoreHistoryLimit int
}

// DefaultConfig returns a Config with the reference tuning.
func DefaultConfig() Config {
	return Config{
		DecayRate:         DefaultDecayRate,
		Alpha:             DefaultAlpha,
		HistoryLimit:      DefaultHistoryLimit,
		ScoreHistoryLimit: DefaultScoreHistoryLimit,
	}
}

// Sample is one (timestamp, score) observation in the score history.
type Sample struct {
	Timestamp time.Time `json:"timestamp"`
	Score     float64   `json:"score"`
}

// Contribution reports how much a single signal added to the raw score.
type Contribution struct {
	Kind   signal.Kind
	Amount float64
}

// Result is a complete scoring pass over a signal history.
type Result struct {
	// Score is the smoothed, clamped burnout score in [0, 1].
	Score float64
	// Raw is the unclamped decayed weighted sum. May exceed 1 when
	// several high-weight signals land in the same window.
	Raw float64
	// Contributions lists the decayed per-signal amounts, most
	// impactful first, capped at five entries.
	Contributions []Contribution
}

// Scorer converts a signal history into a smoothed burnout score.
// It is stateless; all mutable state lives on the session.
type Scorer struct {
	cfg Config
}

// NewScorer creates a Scorer, filling zero config fields with defaults.
func NewScorer(cfg Config) *Scorer {
	if cfg.DecayRate <= 0 {
		cfg.DecayRate = DefaultDecayRate
	}
	if cfg.Alpha <= 0 || cfg.Alpha > 1 {
		cfg.Alpha = DefaultAlpha
	}
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = DefaultHistoryLimit
	}
	if cfg.ScoreHistoryLimit <= 0 {
		cfg.ScoreHistoryLimit = DefaultScoreHistoryLimit
	}
	return &Scorer{cfg: cfg}
}

// Config returns the effective configuration.
func (s *Scorer) Config() Config {
	return s.cfg
}

// DecayFactor returns the recency multiplier for a signal observed at
// signalTime, evaluated at now. Always in (0, 1].
func (s *Scorer) DecayFactor(signalTime, now time.Time) float64 {
	minutes := now.Sub(signalTime).Minutes()
	if minutes < 0 {
		minutes = 0
	}
	return math.Exp(-s.cfg.DecayRate * minutes)
}

// Raw computes the decayed weighted sum over the retained signals.
// The raw value is deliberately NOT clamped so that repeated bursts
// compound within a window; only the smoothed score is clamped.
// An empty history yields 0.
func (s *Scorer) Raw(signals []signal.Signal, now time.Time) (float64, []Contribution) {
	total := 0.0
	var contribs []Contribution
	for _, sig := range signals {
		c := sig.Weight() * s.DecayFactor(sig.Timestamp, now)
		total += c
		if math.Abs(c) > 0.001 {
			contribs = append(contribs, Contribution{Kind: sig.Kind, Amount: c})
		}
	}
	// Most impactful first; ties keep signal order.
	sort.SliceStable(contribs, func(i, j int) bool {
		return math.Abs(contribs[i].Amount) > math.Abs(contribs[j].Amount)
	})
	if len(contribs) > 5 {
		contribs = contribs[:5]
	}
	return total, contribs
}

// Update computes the new smoothed score from the previous score and
// the retained signal history. The smoothed value always lies between
// the previous score and the raw sum, then is clamped to [0, 1].
func (s *Scorer) Update(prevScore float64, signals []signal.Signal, now time.Time) Result {
	raw, contribs := s.Raw(signals, now)
	smoothed := s.cfg.Alpha*raw + (1-s.cfg.Alpha)*prevScore
	return Result{
		Score:         Clamp(smoothed, 0, 1),
		Raw:           raw,
		Contributions: contribs,
	}
}

// TrimSignals enforces the history cap, evicting oldest first.
func (s *Scorer) TrimSignals(signals []signal.Signal) []signal.Signal {
	if len(signals) <= s.cfg.HistoryLimit {
		return signals
	}
	return signals[len(signals)-s.cfg.HistoryLimit:]
}

// TrimSamples enforces the score history cap, evicting oldest first.
func (s *Scorer) TrimSamples(samples []Sample) []Sample {
	if len(samples) <= s.cfg.ScoreHistoryLimit {
		return samples
	}
	return samples[len(samples)-s.cfg.ScoreHistoryLimit:]
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
