package scoring

import (
	"math"
	"testing"
	"time"

	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/internal/signal"
)

func mustSignal(t *testing.T, kind signal.Kind, value float64, ts time.Time) signal.Signal {
	t.Helper()
	sig, err := signal.New(kind, value, ts, nil)
	if err != nil {
		t.Fatalf("signal.New(%s): %v", kind, err)
	}
	return sig
}

func TestRaw_EmptyHistoryIsZero(t *testing.T) {
	s := NewScorer(DefaultConfig())
	raw, contribs := s.Raw(nil, time.Now())
	if raw != 0 {
		t.Errorf("Raw(empty) = %v, want 0", raw)
	}
	if len(contribs) != 0 {
		t.Errorf("contributions = %d, want 0", len(contribs))
	}
}

func TestDecayFactor_ReferencePoints(t *testing.T) {
	s := NewScorer(DefaultConfig())
	now := time.Now()

	cases := []struct {
		minutes float64
		want    float64
	}{
		{0, 1.0},
		{10, math.Exp(-1)},  // ~0.37
		{30, math.Exp(-3)},  // ~0.05
	}
	for _, tc := range cases {
		got := s.DecayFactor(now.Add(-time.Duration(tc.minutes)*time.Minute), now)
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("DecayFactor(%v min) = %v, want %v", tc.minutes, got, tc.want)
		}
	}
}

func TestRaw_DecayMonotonicity(t *testing.T) {
	s := NewScorer(DefaultConfig())
	base := time.Now()
	signals := []signal.Signal{
		mustSignal(t, signal.RapidWABurst, 1, base),
		mustSignal(t, signal.GhostLossStreak, 1, base),
	}

	early, _ := s.Raw(signals, base.Add(1*time.Minute))
	late, _ := s.Raw(signals, base.Add(5*time.Minute))
	if late > early {
		t.Errorf("raw at t2 (%v) > raw at t1 (%v); decay must be monotone", late, early)
	}
}

func TestRaw_UnclampedCompounding(t *testing.T) {
	s := NewScorer(DefaultConfig())
	now := time.Now()
	var signals []signal.Signal
	for range 3 {
		signals = append(signals, mustSignal(t, signal.RapidWABurst, 1, now))
	}

	raw, _ := s.Raw(signals, now)
	if raw <= 1 {
		t.Errorf("raw = %v, want > 1 for simultaneous high-weight burst", raw)
	}
}

func TestUpdate_SmoothingContraction(t *testing.T) {
	s := NewScorer(DefaultConfig())
	now := time.Now()
	signals := []signal.Signal{mustSignal(t, signal.RapidWABurst, 1, now)}

	prev := 0.2
	res := s.Update(prev, signals, now)
	lo, hi := prev, res.Raw
	if lo > hi {
		lo, hi = hi, lo
	}
	if res.Score < Clamp(lo, 0, 1) || res.Score > Clamp(hi, 0, 1) {
		t.Errorf("score %v outside [prev=%v, raw=%v]", res.Score, prev, res.Raw)
	}
}

func TestUpdate_ScoreBounds(t *testing.T) {
	s := NewScorer(DefaultConfig())
	now := time.Now()

	// Pile on burnout-raising signals, then relieving ones; score must
	// stay in [0, 1] at every step.
	score := 0.0
	var history []signal.Signal
	kinds := []signal.Kind{
		signal.RapidWABurst, signal.RapidWABurst, signal.GhostLossStreak,
		signal.HintAbuse, signal.SkipStreak, signal.NegativeSentiment,
		signal.SuccessfulSolve, signal.SuccessfulSolve, signal.GhostWin,
		signal.SuccessfulSolve, signal.SuccessfulSolve, signal.SuccessfulSolve,
	}
	for i, k := range kinds {
		ts := now.Add(time.Duration(i) * time.Second)
		history = append(history, mustSignal(t, k, 1, ts))
		res := s.Update(score, history, ts)
		if res.Score < 0 || res.Score > 1 {
			t.Fatalf("step %d: score %v out of [0,1]", i, res.Score)
		}
		score = res.Score
	}
}

func TestUpdate_ContributionsSortedAndCapped(t *testing.T) {
	s := NewScorer(DefaultConfig())
	now := time.Now()
	var signals []signal.Signal
	for _, k := range []signal.Kind{
		signal.LongIdle, signal.RapidWABurst, signal.GhostWin,
		signal.SkipStreak, signal.HintAbuse, signal.NegativeSentiment,
		signal.GhostLossStreak,
	} {
		signals = append(signals, mustSignal(t, k, 1, now))
	}

	res := s.Update(0, signals, now)
	if len(res.Contributions) != 5 {
		t.Fatalf("contributions = %d, want 5 (capped)", len(res.Contributions))
	}
	if res.Contributions[0].Kind != signal.RapidWABurst {
		t.Errorf("top contribution = %s, want RAPID_WA_BURST", res.Contributions[0].Kind)
	}
	for i := 1; i < len(res.Contributions); i++ {
		if math.Abs(res.Contributions[i].Amount) > math.Abs(res.Contributions[i-1].Amount) {
			t.Errorf("contributions not sorted at %d", i)
		}
	}
}

func TestTrim_EvictsOldestFirst(t *testing.T) {
	s := NewScorer(Config{HistoryLimit: 3, ScoreHistoryLimit: 2})
	now := time.Now()
	var signals []signal.Signal
	for i := range 5 {
		signals = append(signals, mustSignal(t, signal.LongIdle, 1, now.Add(time.Duration(i)*time.Second)))
	}

	trimmed := s.TrimSignals(signals)
	if len(trimmed) != 3 {
		t.Fatalf("trimmed length = %d, want 3", len(trimmed))
	}
	if !trimmed[0].Timestamp.Equal(now.Add(2 * time.Second)) {
		t.Errorf("oldest retained = %v, want the 3rd signal", trimmed[0].Timestamp)
	}

	samples := []Sample{{now, 0.1}, {now, 0.2}, {now, 0.3}}
	if got := s.TrimSamples(samples); len(got) != 2 || got[0].Score != 0.2 {
		t.Errorf("TrimSamples = %v, want last two", got)
	}
}

func TestMetricTracker_ObserveSignal(t *testing.T) {
	tracker := NewMetricTracker(0.5)
	metrics := DefaultMetrics()

	tracker.ObserveSignal(metrics, signal.RapidWABurst)
	if metrics[MetricFrustration] != 0.5 {
		t.Errorf("frustration = %v, want 0.5", metrics[MetricFrustration])
	}

	tracker.ObserveSignal(metrics, signal.SuccessfulSolve)
	if metrics[MetricFrustration] != 0.25 {
		t.Errorf("frustration after solve = %v, want 0.25", metrics[MetricFrustration])
	}
	if metrics[MetricFocus] != 1.0 {
		t.Errorf("focus = %v, want 1.0", metrics[MetricFocus])
	}

	tracker.ObserveSignal(metrics, signal.LongIdle)
	if metrics[MetricFatigue] != 0.5 {
		t.Errorf("fatigue = %v, want 0.5", metrics[MetricFatigue])
	}
}
