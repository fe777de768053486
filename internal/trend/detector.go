package trend

import (
	"errors"
	"math"
)

// MinSamples is the minimum number of observations for a defined trend.
// Fewer must be reported as insufficient data, never as a flat slope:
// callers would otherwise misread "no trend" as "stable".
const MinSamples = 3

// ErrInsufficientData reports that too few samples exist for regression.
var ErrInsufficientData = errors.New("insufficient data for trend analysis")

// Direction classifies the slope of a fitted trend line.
type Direction string

const (
	Deteriorating Direction = "deteriorating"
	Stable        Direction = "stable"
	Recovering    Direction = "recovering"
)

// Analysis is a complete trend fit over a score series.
type Analysis struct {
	Direction  Direction
	Slope      float64 // change per observation
	Intercept  float64
	RSquared   float64 // goodness of fit, [0, 1]
	Confidence float64 // RSquared scaled by data coverage
	DataPoints int
	// PredictedNext extrapolates one observation ahead, clamped to [0, 1].
	PredictedNext float64
	// SamplesToCritical projects how many more observations until the
	// series crosses the critical threshold. 0 when not deteriorating
	// or already past it.
	SamplesToCritical int
}

// Config holds trend detector tuning.
type Config struct {
	// Window is the number of most recent samples used for regression.
	Window int
	// DeterioratingThreshold: slope at or above this is deteriorating.
	DeterioratingThreshold float64
	// RecoveringThreshold: slope at or below this is recovering.
	RecoveringThreshold float64
	// CriticalScore is the projection target for SamplesToCritical.
	CriticalScore float64
}

// DefaultConfig returns the reference tuning.
func DefaultConfig() Config {
	return Config{
		Window:                 5,
		DeterioratingThreshold: 0.1,
		RecoveringThreshold:    -0.1,
		CriticalScore:          0.7,
	}
}

// Detector fits least-squares trends over recent score history.
type Detector struct {
	cfg Config
}

// NewDetector creates a Detector, filling zero config fields with defaults.
func NewDetector(cfg Config) *Detector {
	def := DefaultConfig()
	if cfg.Window <= 0 {
		cfg.Window = def.Window
	}
	if cfg.DeterioratingThreshold == 0 {
		cfg.DeterioratingThreshold = def.DeterioratingThreshold
	}
	if cfg.RecoveringThreshold == 0 {
		cfg.RecoveringThreshold = def.RecoveringThreshold
	}
	if cfg.CriticalScore == 0 {
		cfg.CriticalScore = def.CriticalScore
	}
	return &Detector{cfg: cfg}
}

// Analyze fits an ordinary least-squares line over the most recent
// Window values (oldest first). Returns ErrInsufficientData for fewer
// than MinSamples observations.
func (d *Detector) Analyze(values []float64) (*Analysis, error) {
	if len(values) < MinSamples {
		return nil, ErrInsufficientData
	}

	window := values
	if len(window) > d.cfg.Window {
		window = window[len(window)-d.cfg.Window:]
	}

	slope, intercept, rSquared := linearRegression(window)

	dir := Stable
	switch {
	case slope >= d.cfg.DeterioratingThreshold:
		dir = Deteriorating
	case slope <= d.cfg.RecoveringThreshold:
		dir = Recovering
	}

	n := len(window)
	pointFactor := float64(n) / float64(d.cfg.Window)
	if pointFactor > 1 {
		pointFactor = 1
	}

	predicted := slope*float64(n) + intercept
	if predicted < 0 {
		predicted = 0
	} else if predicted > 1 {
		predicted = 1
	}

	current := window[n-1]
	toCritical := 0
	if slope > 0 && current < d.cfg.CriticalScore {
		toCritical = int(math.Ceil((d.cfg.CriticalScore - current) / slope))
		if toCritical < 1 {
			toCritical = 1
		}
	}

	return &Analysis{
		Direction:         dir,
		Slope:             slope,
		Intercept:         intercept,
		RSquared:          rSquared,
		Confidence:        rSquared * pointFactor,
		DataPoints:        n,
		PredictedNext:     predicted,
		SamplesToCritical: toCritical,
	}, nil
}

// linearRegression fits y = slope*x + intercept over values with x as
// the index 0..n-1. Returns (slope, intercept, rSquared).
func linearRegression(values []float64) (float64, float64, float64) {
	n := len(values)
	xMean := float64(n-1) / 2
	yMean := 0.0
	for _, v := range values {
		yMean += v
	}
	yMean /= float64(n)

	num, den := 0.0, 0.0
	for i, v := range values {
		dx := float64(i) - xMean
		num += dx * (v - yMean)
		den += dx * dx
	}
	if den == 0 {
		return 0, yMean, 0
	}
	slope := num / den
	intercept := yMean - slope*xMean

	ssRes, ssTot := 0.0, 0.0
	for i, v := range values {
		pred := slope*float64(i) + intercept
		ssRes += (v - pred) * (v - pred)
		ssTot += (v - yMean) * (v - yMean)
	}
	rSquared := 0.0
	if ssTot != 0 {
		rSquared = 1 - ssRes/ssTot
		if rSquared < 0 {
			rSquared = 0
		} else if rSquared > 1 {
			rSquared = 1
		}
	}
	return slope, intercept, rSquared
}
