package trend

// Composite is the weighted aggregate trend across multiple metrics.
type Composite struct {
	Direction Direction
	Slope     float64
	// PerMetric holds the individual fits that contributed. Metrics
	// with insufficient data are absent.
	PerMetric map[string]*Analysis
}

// compositeStableBand is the slope band treated as stable for the
// aggregate; narrower than per-metric thresholds since averaging
// already dampens noise.
const compositeStableBand = 0.05

// AnalyzeComposite fits each metric series and combines the slopes into
// a weighted average. Weights default to equal when weights is nil or
// missing an entry; a weight's sign may invert a metric whose decrease
// is the bad direction (e.g. focus).
//
// Returns ErrInsufficientData only when NO metric has enough samples:
// the composite must always be a defined number or an explicit marker.
func (d *Detector) AnalyzeComposite(series map[string][]float64, weights map[string]float64) (*Composite, error) {
	perMetric := make(map[string]*Analysis)
	slopeSum, weightSum := 0.0, 0.0

	for name, values := range series {
		a, err := d.Analyze(values)
		if err != nil {
			continue // insufficient data for this metric only
		}
		perMetric[name] = a

		w := 1.0
		if weights != nil {
			if ww, ok := weights[name]; ok {
				w = ww
			}
		}
		slopeSum += a.Slope * w
		weightSum += abs(w)
	}

	if len(perMetric) == 0 {
		return nil, ErrInsufficientData
	}

	slope := 0.0
	if weightSum > 0 {
		slope = slopeSum / weightSum
	}

	dir := Stable
	switch {
	case slope > compositeStableBand:
		dir = Deteriorating
	case slope < -compositeStableBand:
		dir = Recovering
	}

	return &Composite{Direction: dir, Slope: slope, PerMetric: perMetric}, nil
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
