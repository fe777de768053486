package store

import (
	"context"
	"time"

	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/internal/coach"
	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/internal/llm"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SessionRepo persists coach sessions keyed by user handle. It
// satisfies coach.SessionStore, so an engine can be wired straight to
// the database.
type SessionRepo interface {
	// Load returns the session for handle, or (nil, nil) when none exists.
	Load(ctx context.Context, handle string) (*coach.Session, error)

	// Save upserts the session under its user handle.
	Save(ctx context.Context, sess *coach.Session) error

	// Delete removes the session for handle. Deleting a missing
	// session is not an error.
	Delete(ctx context.Context, handle string) error

	// Handles lists every user handle with a stored session.
	Handles(ctx context.Context) ([]string, error)
}

// SignalEventData captures one processed behavioral signal.
type SignalEventData struct {
	UserHandle string
	Kind       string
	Value      float64
	ScoreAfter float64
	StateAfter string
	Metadata   map[string]string
}

// SignalEventRecord is a stored signal event returned from queries.
type SignalEventRecord struct {
	UserHandle string
	Kind       string
	Value      float64
	ScoreAfter float64
	StateAfter string
	Metadata   map[string]string
	Sequence   int64
	Timestamp  time.Time
}

// InterventionEventData captures one intervention decision.
type InterventionEventData struct {
	UserHandle    string
	State         string
	Level         string
	Alignment     string
	Message       string
	Suppressed    bool
	TriggerReason string
	Score         float64
}

// InterventionEventRecord is a stored intervention event returned from
// queries.
type InterventionEventRecord struct {
	UserHandle    string
	State         string
	Level         string
	Alignment     string
	Message       string
	Suppressed    bool
	TriggerReason string
	Score         float64
	Sequence      int64
	Timestamp     time.Time
}

// LLMEventRecord is a stored LLM request event returned from queries.
type LLMEventRecord struct {
	ID           int
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
	Sequence     int64
	Timestamp    time.Time
}

// LLMUsage aggregates token counts for a group of LLM requests.
type LLMUsage struct {
	Requests     int
	InputTokens  int
	OutputTokens int
	Failures     int
	AvgLatencyMs int64
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendSignal records a processed behavioral signal.
	AppendSignal(ctx context.Context, data SignalEventData) error

	// AppendIntervention records an intervention decision.
	AppendIntervention(ctx context.Context, data InterventionEventData) error

	// AppendLLMRequest records an LLM API call event. The signature
	// matches llm.EventSink, so an EventRepo plugs directly into the
	// provider's logging middleware.
	AppendLLMRequest(ctx context.Context, ev llm.RequestEvent) error

	// QuerySignalEvents returns signal events for handle, newest first.
	// An empty handle matches all users.
	QuerySignalEvents(ctx context.Context, handle string, opts QueryOpts) ([]SignalEventRecord, error)

	// QueryInterventionEvents returns intervention events for handle,
	// newest first. An empty handle matches all users.
	QueryInterventionEvents(ctx context.Context, handle string, opts QueryOpts) ([]InterventionEventRecord, error)

	// QueryLLMEvents returns LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)

	// GetLLMEvent returns a single LLM request event by row ID.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)

	// LLMUsageByPurpose aggregates LLM usage grouped by purpose label.
	LLMUsageByPurpose(ctx context.Context) (map[string]LLMUsage, error)

	// LLMUsageByModel aggregates LLM usage grouped by model ID.
	LLMUsageByModel(ctx context.Context) (map[string]LLMUsage, error)
}
