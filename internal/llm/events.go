package llm

import "context"

// RequestEvent describes one LLM call for persistence. The logging
// middleware fills it in and hands it to an EventSink; this package
// stays independent of how the sink stores it.
type RequestEvent struct {
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
}

// EventSink receives request events from the logging middleware.
// The store's event repository implements it.
type EventSink interface {
	AppendLLMRequest(ctx context.Context, ev RequestEvent) error
}
