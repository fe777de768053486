package trend

import (
	"errors"
	"math"
	"testing"
)

func TestAnalyze_InsufficientData(t *testing.T) {
	d := NewDetector(DefaultConfig())

	for _, values := range [][]float64{nil, {0.5}, {0.4, 0.5}} {
		_, err := d.Analyze(values)
		if !errors.Is(err, ErrInsufficientData) {
			t.Errorf("Analyze(%v) err = %v, want ErrInsufficientData", values, err)
		}
	}
}

func TestAnalyze_PerfectLine(t *testing.T) {
	d := NewDetector(DefaultConfig())

	a, err := d.Analyze([]float64{0.1, 0.2, 0.3, 0.4, 0.5})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if math.Abs(a.Slope-0.1) > 1e-9 {
		t.Errorf("Slope = %v, want 0.1", a.Slope)
	}
	if math.Abs(a.RSquared-1.0) > 1e-9 {
		t.Errorf("RSquared = %v, want 1.0", a.RSquared)
	}
	if a.Direction != Deteriorating {
		t.Errorf("Direction = %s, want deteriorating", a.Direction)
	}
	if math.Abs(a.PredictedNext-0.6) > 1e-9 {
		t.Errorf("PredictedNext = %v, want 0.6", a.PredictedNext)
	}
	if a.SamplesToCritical != 2 {
		t.Errorf("SamplesToCritical = %d, want 2", a.SamplesToCritical)
	}
}

func TestAnalyze_RecoveringSlope(t *testing.T) {
	d := NewDetector(DefaultConfig())

	a, err := d.Analyze([]float64{0.8, 0.6, 0.4, 0.2})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if a.Direction != Recovering {
		t.Errorf("Direction = %s, want recovering", a.Direction)
	}
	if a.Slope >= 0 {
		t.Errorf("Slope = %v, want negative", a.Slope)
	}
	if a.SamplesToCritical != 0 {
		t.Errorf("SamplesToCritical = %d, want 0 when recovering", a.SamplesToCritical)
	}
}

func TestAnalyze_FlatIsStable(t *testing.T) {
	d := NewDetector(DefaultConfig())

	a, err := d.Analyze([]float64{0.4, 0.4, 0.4, 0.4})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if a.Direction != Stable {
		t.Errorf("Direction = %s, want stable", a.Direction)
	}
	if a.Slope != 0 {
		t.Errorf("Slope = %v, want 0", a.Slope)
	}
}

func TestAnalyze_WindowUsesOnlyRecent(t *testing.T) {
	d := NewDetector(Config{Window: 3})

	// Old rising values, recent falling: only the tail counts.
	a, err := d.Analyze([]float64{0.1, 0.2, 0.9, 0.6, 0.3})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if a.Slope >= 0 {
		t.Errorf("Slope = %v, want negative over window", a.Slope)
	}
	if a.DataPoints != 3 {
		t.Errorf("DataPoints = %d, want 3", a.DataPoints)
	}
}

func TestAnalyzeComposite_EqualWeights(t *testing.T) {
	d := NewDetector(DefaultConfig())

	series := map[string][]float64{
		"burnout":     {0.1, 0.2, 0.3},
		"frustration": {0.2, 0.4, 0.6},
	}
	c, err := d.AnalyzeComposite(series, nil)
	if err != nil {
		t.Fatalf("AnalyzeComposite: %v", err)
	}
	if math.Abs(c.Slope-0.15) > 1e-9 {
		t.Errorf("composite slope = %v, want 0.15", c.Slope)
	}
	if c.Direction != Deteriorating {
		t.Errorf("Direction = %s, want deteriorating", c.Direction)
	}
	if len(c.PerMetric) != 2 {
		t.Errorf("PerMetric count = %d, want 2", len(c.PerMetric))
	}
}

func TestAnalyzeComposite_SkipsShortSeries(t *testing.T) {
	d := NewDetector(DefaultConfig())

	series := map[string][]float64{
		"burnout": {0.1, 0.2, 0.3},
		"focus":   {0.9}, // too short, skipped
	}
	c, err := d.AnalyzeComposite(series, nil)
	if err != nil {
		t.Fatalf("AnalyzeComposite: %v", err)
	}
	if _, ok := c.PerMetric["focus"]; ok {
		t.Error("short series should be absent from PerMetric")
	}
}

func TestAnalyzeComposite_AllShortIsInsufficient(t *testing.T) {
	d := NewDetector(DefaultConfig())

	_, err := d.AnalyzeComposite(map[string][]float64{"a": {0.1}}, nil)
	if !errors.Is(err, ErrInsufficientData) {
		t.Errorf("err = %v, want ErrInsufficientData", err)
	}
}

func TestAnalyzeComposite_NegativeWeightInverts(t *testing.T) {
	d := NewDetector(DefaultConfig())

	// Focus rising is good; a negative weight makes its contribution
	// pull the composite toward recovering.
	series := map[string][]float64{"focus": {0.1, 0.4, 0.7}}
	c, err := d.AnalyzeComposite(series, map[string]float64{"focus": -1})
	if err != nil {
		t.Fatalf("AnalyzeComposite: %v", err)
	}
	if c.Slope >= 0 {
		t.Errorf("composite slope = %v, want negative", c.Slope)
	}
	if c.Direction != Recovering {
		t.Errorf("Direction = %s, want recovering", c.Direction)
	}
}
