package coach

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"os"
	"sync"
	"time"

	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/internal/scoring"
	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/internal/sentiment"
	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/internal/signal"
	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/internal/trend"
)

// SessionStore persists coach sessions. Load returns (nil, nil) when no
// session exists for the handle.
type SessionStore interface {
	Load(ctx context.Context, handle string) (*Session, error)
	Save(ctx context.Context, sess *Session) error
}

// EventRecorder appends pipeline events to an external log. Recording
// failures are reported to stderr and never fail the pipeline.
type EventRecorder interface {
	RecordSignal(ctx context.Context, handle string, sig signal.Signal, res *Result) error
	RecordIntervention(ctx context.Context, handle string, res *Result) error
}

// Result is the structured outcome of one pipeline run, returned to the
// hosting collaborator for display and delivery.
type Result struct {
	Score         float64                `json:"score"`
	Raw           float64                `json:"raw"`
	Contributions []scoring.Contribution `json:"contributions,omitempty"`

	State         State  `json:"state"`
	StateChanged  bool   `json:"state_changed"`
	TriggerReason string `json:"trigger_reason,omitempty"`

	Level      Level  `json:"intervention_level"`
	Message    string `json:"message,omitempty"`
	Suppressed bool   `json:"suppressed,omitempty"`

	Alignment Alignment          `json:"alignment"`
	Sentiment *sentiment.Result  `json:"sentiment,omitempty"`
	Metrics   map[string]float64 `json:"metrics"`

	TrendDirection trend.Direction `json:"trend_direction"`
	TrendSlope     float64         `json:"trend_slope"`

	// Derived hints for the editor collaborators.
	GhostSpeedModifier float64  `json:"ghost_speed_modifier"`
	NeedsAttention     bool     `json:"needs_attention"`
	RecommendedActions []string `json:"recommended_actions,omitempty"`
}

// Engine wires the pipeline together: ingest, score, classify,
// transition, select, emit. It carries no per-user state of its own; a
// pipeline run operates purely on the Session it loads, under that
// user's lock, so concurrent requests for different users never touch
// each other and concurrent requests for the same user serialize.
type Engine struct {
	cfg      Config
	scorer   *scoring.Scorer
	metrics  *scoring.MetricTracker
	detector *trend.Detector
	machine  *Machine
	selector *Selector

	analyzer  sentiment.Analyzer
	responder ResponseGenerator // optional; replaces template lookup
	store     SessionStore
	recorder  EventRecorder // optional

	mu    sync.Mutex
	locks map[string]*sync.Mutex

	now func() time.Time
}

// EngineOption configures optional engine collaborators.
type EngineOption func(*Engine)

// WithResponder swaps the template bank for a generator (typically
// LLM-backed) for message content.
func WithResponder(r ResponseGenerator) EngineOption {
	return func(e *Engine) { e.responder = r }
}

// WithRecorder attaches an event log for signals and interventions.
func WithRecorder(r EventRecorder) EngineOption {
	return func(e *Engine) { e.recorder = r }
}

// WithClock overrides the engine clock, for tests.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) { e.now = now }
}

// NewEngine creates an Engine. The analyzer defaults to the keyword
// classifier when nil.
func NewEngine(cfg Config, store SessionStore, analyzer sentiment.Analyzer, opts ...EngineOption) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("coach config: %w", err)
	}
	if store == nil {
		return nil, errors.New("coach: session store is required")
	}
	if analyzer == nil {
		analyzer = sentiment.NewKeywordAnalyzer()
	}

	e := &Engine{
		cfg:      cfg,
		scorer:   scoring.NewScorer(cfg.Scoring),
		metrics:  scoring.NewMetricTracker(scoring.DefaultMetricAlpha),
		detector: trend.NewDetector(cfg.Trend),
		machine:  NewMachine(cfg),
		selector: NewSelector(cfg, NewResponseBank(0)),
		analyzer: analyzer,
		store:    store,
		locks:    make(map[string]*sync.Mutex),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// lockUser acquires the per-user mutex, creating it on first use.
// Sessions must never be mutated by two pipeline runs concurrently.
func (e *Engine) lockUser(handle string) *sync.Mutex {
	e.mu.Lock()
	l, ok := e.locks[handle]
	if !ok {
		l = &sync.Mutex{}
		e.locks[handle] = l
	}
	e.mu.Unlock()
	l.Lock()
	return l
}

// ProcessSignal runs the pipeline for one behavioral signal. Unknown
// kinds are rejected before any session state is touched.
func (e *Engine) ProcessSignal(ctx context.Context, handle string, kind signal.Kind, value float64, metadata map[string]string) (*Result, error) {
	now := e.now()

	sig, err := signal.New(kind, value, now, metadata)
	if err != nil {
		return nil, err
	}

	l := e.lockUser(handle)
	defer l.Unlock()

	sess, err := e.load(ctx, handle, now)
	if err != nil {
		return nil, err
	}

	res := e.run(ctx, sess, &sig, nil, now)

	if err := e.store.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session for %q: %w", handle, err)
	}
	e.record(ctx, handle, &sig, res)
	return res, nil
}

// ProcessChat runs the pipeline for one free-text message. The message
// is classified and, when the verdict is positive or negative, also
// contributes the matching sentiment signal so a purely textual
// interaction still moves the score.
func (e *Engine) ProcessChat(ctx context.Context, handle, text, problemID string) (*Result, error) {
	now := e.now()

	verdict := e.analyzer.Analyze(ctx, text)

	l := e.lockUser(handle)
	defer l.Unlock()

	sess, err := e.load(ctx, handle, now)
	if err != nil {
		return nil, err
	}

	sess.appendSentiment(verdict)
	sess.MessageCountSession++
	sess.FailuresSinceLastMessage = 0
	sess.LastMessageAt = now

	var implicit *signal.Signal
	var kind signal.Kind
	switch verdict.Label {
	case sentiment.Negative:
		kind = signal.NegativeSentiment
	case sentiment.Positive:
		kind = signal.PositiveSentiment
	}
	if kind != "" {
		meta := map[string]string{"source": "chat"}
		if problemID != "" {
			meta["problem_id"] = problemID
		}
		sig, err := signal.New(kind, 1, now, meta)
		if err != nil {
			return nil, err
		}
		implicit = &sig
	}

	res := e.run(ctx, sess, implicit, &verdict, now)

	if err := e.store.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session for %q: %w", handle, err)
	}
	if implicit != nil {
		e.record(ctx, handle, implicit, res)
	} else {
		e.recordIntervention(ctx, handle, res)
	}
	return res, nil
}

// ResetSession reinitializes a user's session to creation defaults.
func (e *Engine) ResetSession(ctx context.Context, handle string) error {
	now := e.now()

	l := e.lockUser(handle)
	defer l.Unlock()

	sess, err := e.load(ctx, handle, now)
	if err != nil {
		return err
	}
	sess.Reset(now)
	if err := e.store.Save(ctx, sess); err != nil {
		return fmt.Errorf("save session for %q: %w", handle, err)
	}
	return nil
}

func (e *Engine) load(ctx context.Context, handle string, now time.Time) (*Session, error) {
	sess, err := e.store.Load(ctx, handle)
	if err != nil {
		return nil, fmt.Errorf("load session for %q: %w", handle, err)
	}
	if sess == nil {
		return NewSession(handle, now), nil
	}
	if err := sess.Hydrate(); err != nil {
		return nil, err
	}
	return sess, nil
}

// run is the shared pipeline body. Caller holds the user lock.
func (e *Engine) run(ctx context.Context, sess *Session, sig *signal.Signal, verdict *sentiment.Result, now time.Time) *Result {
	if sig != nil {
		sess.SignalHistory = e.scorer.TrimSignals(append(sess.SignalHistory, *sig))
		e.metrics.ObserveSignal(sess.Metrics, sig.Kind)
		if isFailure(sig.Kind) {
			sess.FailuresSinceLastMessage++
		}
	}
	for _, name := range []string{scoring.MetricFrustration, scoring.MetricFatigue, scoring.MetricFocus} {
		sess.appendMetricSample(name, sess.Metrics[name])
	}

	scored := e.scorer.Update(sess.BurnoutScore, sess.SignalHistory, now)
	sess.BurnoutScore = scored.Score
	sess.ScoreHistory = e.scorer.TrimSamples(append(sess.ScoreHistory, scoring.Sample{
		Timestamp: now,
		Score:     scored.Score,
	}))

	dir, slope := e.trend(sess)

	align := ClassifyAlignment(scored.Score, e.cfg.AlignmentHighScore, sess.LatestSentiment())
	if align != Masking && e.silentlyDisengaged(sess, scored.Score, now) {
		align = SilentDisengage
	}

	transition := e.machine.Step(sess, scored.Score, now)

	decision := e.selector.Select(sess, sess.CurrentState, scored.Score, align, dir, now)
	if e.responder != nil && decision.Message != "" {
		decision.Message = e.responder.Respond(ctx, sess, sess.CurrentState, align, dir)
	}

	sess.LastUpdated = now

	res := &Result{
		Score:          scored.Score,
		Raw:            scored.Raw,
		Contributions:  scored.Contributions,
		State:          sess.CurrentState,
		Level:          decision.Level,
		Message:        decision.Message,
		Suppressed:     decision.Suppressed,
		Alignment:      align,
		Sentiment:      verdict,
		Metrics:        maps.Clone(sess.Metrics),
		TrendDirection: dir,
		TrendSlope:     slope,
	}
	if transition != nil {
		res.StateChanged = true
		res.TriggerReason = transition.Reason
	}

	res.GhostSpeedModifier = ghostSpeed(sess.CurrentState, scored.Score)
	res.NeedsAttention = scored.Score >= 0.7 || align == Masking || sess.CurrentState == StateProtective
	res.RecommendedActions = recommendedActions(align, decision.Level, sess.CurrentState)
	return res
}

// trend fits the score history and folds the per-metric composite in.
// Too little data reads as stable with zero slope; the detector's
// insufficient-data signal is for callers that need to distinguish, and
// the pipeline deliberately treats it as "no trend yet".
func (e *Engine) trend(sess *Session) (trend.Direction, float64) {
	analysis, err := e.detector.Analyze(sess.ScoreValues())
	if err != nil {
		return trend.Stable, 0
	}

	dir, slope := analysis.Direction, analysis.Slope

	composite, err := e.detector.AnalyzeComposite(sess.MetricHistory, map[string]float64{
		scoring.MetricFrustration: 1,
		scoring.MetricFatigue:     1,
		scoring.MetricFocus:       -1, // falling focus reads as deterioration
	})
	if err == nil && dir == trend.Stable {
		dir = composite.Direction
	}
	return dir, slope
}

// silentlyDisengaged detects a user who stopped talking while failing:
// high burnout plus a failure streak plus message silence.
func (e *Engine) silentlyDisengaged(sess *Session, score float64, now time.Time) bool {
	if score < e.cfg.AlignmentHighScore {
		return false
	}
	if sess.LastMessageAt.IsZero() {
		return sess.FailuresSinceLastMessage >= e.cfg.DisengageFailuresMuted
	}
	return now.Sub(sess.LastMessageAt) > e.cfg.DisengageSilence &&
		sess.FailuresSinceLastMessage >= e.cfg.DisengageFailures
}

func (e *Engine) record(ctx context.Context, handle string, sig *signal.Signal, res *Result) {
	if e.recorder == nil {
		return
	}
	if err := e.recorder.RecordSignal(ctx, handle, *sig, res); err != nil {
		fmt.Fprintf(os.Stderr, "coach: record signal event: %v\n", err)
	}
	e.recordIntervention(ctx, handle, res)
}

func (e *Engine) recordIntervention(ctx context.Context, handle string, res *Result) {
	if e.recorder == nil {
		return
	}
	if res.Level == LevelNone && !res.StateChanged {
		return
	}
	if err := e.recorder.RecordIntervention(ctx, handle, res); err != nil {
		fmt.Fprintf(os.Stderr, "coach: record intervention event: %v\n", err)
	}
}

func isFailure(kind signal.Kind) bool {
	switch kind {
	case signal.RapidWABurst, signal.GhostLossStreak, signal.SkipStreak:
		return true
	}
	return false
}

// ghostSpeed derives the race-pacing hint the editor applies to the
// competitive ghost: 1.0 is full speed, lower values slow it down, near
// zero flips it cooperative.
func ghostSpeed(state State, score float64) float64 {
	var base float64
	switch state {
	case StateNormal:
		base = 1.0
	case StateWatching:
		base = 0.95
	case StateWarning:
		base = 0.7
	case StateProtective:
		base = 0.3
	case StateRecovery:
		base = 0.8
	}
	if score > 0.7 {
		base *= 0.5
	} else if score > 0.5 {
		base *= 0.7
	}
	return scoring.Clamp(base, 0, 1)
}

func recommendedActions(align Alignment, level Level, state State) []string {
	var actions []string

	switch align {
	case Masking:
		actions = append(actions,
			"PROBE: Ask how the user is actually feeling",
			"VALIDATE: Acknowledge that it's okay to struggle")
	case SilentDisengage:
		actions = append(actions,
			"INITIATE: Reach out to the user",
			"OFFER: Suggest something fun instead of hard")
	case ConfirmedBurnout:
		actions = append(actions,
			"VALIDATE: Acknowledge frustration",
			"SUGGEST: Offer a rest break")
	}

	switch state {
	case StateProtective:
		actions = append(actions,
			"MODE: Enable cooperative ghost",
			"CELEBRATE: Small wins only")
	case StateWarning:
		actions = append(actions,
			"SLOW: Reduce ghost speed",
			"REFRAME: This problem is tough for everyone")
	case StateRecovery:
		actions = append(actions,
			"ENCOURAGE: Gentle positive reinforcement",
			"EASY: Suggest easier problems")
	}

	if level == LevelUrgent {
		actions = append([]string{"IMMEDIATE: Stop and check in with the user"}, actions...)
	}

	if len(actions) > 5 {
		actions = actions[:5]
	}
	return actions
}
