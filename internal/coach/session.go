package coach

import (
	"time"

	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/internal/scoring"
	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/internal/sentiment"
	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/internal/signal"
)

// History caps not owned by the scorer.
const (
	sentimentHistoryLimit = 10
	metricHistoryLimit    = 40
)

// Session is the unit of persisted state per user. All mutation happens
// inside the engine pipeline under the per-user lock; nothing else
// writes to a Session.
//
// CurrentState is the single canonical state field. The machine reads
// it, transitions write it, and hydration restores it — there is no
// shadow copy anywhere.
type Session struct {
	UserHandle   string  `json:"user_handle"`
	BurnoutScore float64 `json:"burnout_score"`
	CurrentState State   `json:"current_state"`

	SignalHistory    []signal.Signal      `json:"signal_history"`
	SentimentHistory []sentiment.Result   `json:"sentiment_history"`
	ScoreHistory     []scoring.Sample     `json:"score_history"`
	Metrics          map[string]float64   `json:"metrics"`
	MetricHistory    map[string][]float64 `json:"metric_history"`

	FailuresSinceLastMessage int `json:"failures_since_last_message"`
	MessageCountSession      int `json:"message_count_session"`

	// BelowStreak counts consecutive observations below the current
	// state's de-escalation threshold. Escalation resets it.
	BelowStreak int `json:"below_streak"`

	// LastInterventionAt records when each intervention level last
	// emitted a message, for cooldown enforcement.
	LastInterventionAt map[Level]time.Time `json:"last_intervention_at"`

	StateEnteredAt time.Time `json:"state_entered_at"`
	// LastMessageAt is the user's most recent chat message, used by the
	// silent-disengagement check. Coach output timing lives in
	// LastInterventionAt.
	LastMessageAt time.Time `json:"last_message_at"`
	LastUpdated   time.Time `json:"last_updated"`
}

// NewSession creates a fresh session in its creation defaults.
func NewSession(handle string, now time.Time) *Session {
	return &Session{
		UserHandle:         handle,
		BurnoutScore:       0,
		CurrentState:       StateNormal,
		Metrics:            scoring.DefaultMetrics(),
		MetricHistory:      make(map[string][]float64),
		LastInterventionAt: make(map[Level]time.Time),
		StateEnteredAt:     now,
		LastUpdated:        now,
	}
}

// Reset reinitializes every field to its creation default, keeping the
// handle. Exposed to collaborators; the engine itself never deletes a
// session.
func (s *Session) Reset(now time.Time) {
	*s = *NewSession(s.UserHandle, now)
}

// Validate checks a hydrated session for the defects that a persisted
// shape can smuggle in: an out-of-vocabulary state, an out-of-range
// score, a stored sentiment missing its raw text, or a signal kind that
// left the vocabulary. Returns ErrMalformedSession on the first problem.
func (s *Session) Validate() error {
	if s.UserHandle == "" {
		return &ErrMalformedSession{Handle: s.UserHandle, Reason: "empty user handle"}
	}
	if !s.CurrentState.Valid() {
		return &ErrMalformedSession{
			Handle: s.UserHandle,
			Reason: "state outside the defined enum",
		}
	}
	if s.BurnoutScore < 0 || s.BurnoutScore > 1 {
		return &ErrMalformedSession{
			Handle: s.UserHandle,
			Reason: "burnout score outside [0,1]",
		}
	}
	for _, r := range s.SentimentHistory {
		if r.RawText == "" {
			return &ErrMalformedSession{
				Handle: s.UserHandle,
				Reason: "stored sentiment result missing raw_text",
			}
		}
		if !sentiment.ValidLabel(r.Label) {
			return &ErrMalformedSession{
				Handle: s.UserHandle,
				Reason: "stored sentiment result with unknown label",
			}
		}
	}
	for _, sig := range s.SignalHistory {
		if !signal.Valid(sig.Kind) {
			return &ErrMalformedSession{
				Handle: s.UserHandle,
				Reason: "stored signal with unknown kind",
			}
		}
	}
	return nil
}

// Hydrate repairs the nil-able containers after deserialization and
// then validates. A session that fails validation is unusable.
func (s *Session) Hydrate() error {
	if s.Metrics == nil {
		s.Metrics = scoring.DefaultMetrics()
	}
	if s.MetricHistory == nil {
		s.MetricHistory = make(map[string][]float64)
	}
	if s.LastInterventionAt == nil {
		s.LastInterventionAt = make(map[Level]time.Time)
	}
	return s.Validate()
}

// LatestSentiment returns the most recent sentiment result, or nil.
func (s *Session) LatestSentiment() *sentiment.Result {
	if len(s.SentimentHistory) == 0 {
		return nil
	}
	return &s.SentimentHistory[len(s.SentimentHistory)-1]
}

func (s *Session) appendSentiment(r sentiment.Result) {
	s.SentimentHistory = append(s.SentimentHistory, r)
	if len(s.SentimentHistory) > sentimentHistoryLimit {
		s.SentimentHistory = s.SentimentHistory[len(s.SentimentHistory)-sentimentHistoryLimit:]
	}
}

func (s *Session) appendMetricSample(name string, value float64) {
	series := append(s.MetricHistory[name], value)
	if len(series) > metricHistoryLimit {
		series = series[len(series)-metricHistoryLimit:]
	}
	s.MetricHistory[name] = series
}

// ScoreValues returns the score history as a plain value series for
// trend analysis.
func (s *Session) ScoreValues() []float64 {
	values := make([]float64, len(s.ScoreHistory))
	for i, sample := range s.ScoreHistory {
		values[i] = sample.Score
	}
	return values
}
