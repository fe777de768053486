package scoring

import "github.com/Ahnaf-Jamil-52/idolcode-gemini-3/internal/signal"

// Well-known metric names tracked per session.
const (
	MetricFrustration = "frustration_index"
	MetricFatigue     = "fatigue_index"
	MetricFocus       = "focus_score"
)

// DefaultMetricAlpha is the EMA factor for per-metric sub-scores.
// Slower than the main score: metrics describe mood, not moments.
const DefaultMetricAlpha = 0.2

// DefaultMetrics returns the initial metric set for a fresh session.
func DefaultMetrics() map[string]float64 {
	return map[string]float64{
		MetricFrustration: 0.0,
		MetricFatigue:     0.0,
		MetricFocus:       1.0,
	}
}

// MetricTracker applies independent EMA smoothing to named sub-scores.
type MetricTracker struct {
	alpha float64
}

// NewMetricTracker creates a tracker; alpha <= 0 uses the default.
func NewMetricTracker(alpha float64) *MetricTracker {
	if alpha <= 0 || alpha > 1 {
		alpha = DefaultMetricAlpha
	}
	return &MetricTracker{alpha: alpha}
}

// Observe folds an instantaneous observation into the tracked metric,
// returning the new smoothed value clamped to [0, 1].
func (t *MetricTracker) Observe(metrics map[string]float64, name string, value float64) float64 {
	prev, ok := metrics[name]
	if !ok {
		prev = 0
	}
	next := Clamp(t.alpha*value+(1-t.alpha)*prev, 0, 1)
	metrics[name] = next
	return next
}

// ObserveSignal folds one incoming signal into the session metrics.
// Each signal kind maps to instantaneous targets for the affected
// sub-scores; unaffected metrics are left alone.
func (t *MetricTracker) ObserveSignal(metrics map[string]float64, kind signal.Kind) {
	switch kind {
	case signal.RapidWABurst, signal.GhostLossStreak, signal.SkipStreak, signal.NegativeSentiment:
		t.Observe(metrics, MetricFrustration, 1.0)
	case signal.LongIdle, signal.SilenceAfterFailure:
		t.Observe(metrics, MetricFatigue, 1.0)
		t.Observe(metrics, MetricFocus, 0.0)
	case signal.ExcessiveTabSwitch:
		t.Observe(metrics, MetricFocus, 0.0)
	case signal.SuccessfulSolve, signal.GhostWin, signal.PositiveSentiment:
		t.Observe(metrics, MetricFrustration, 0.0)
		t.Observe(metrics, MetricFocus, 1.0)
	case signal.ReturningAfterBreak:
		t.Observe(metrics, MetricFatigue, 0.0)
	case signal.HintAbuse:
		t.Observe(metrics, MetricFrustration, 0.7)
	}
}
