package llm

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
)

// captureSink records events handed to it by the logging middleware.
type captureSink struct {
	events []RequestEvent
	err    error
}

func (c *captureSink) AppendLLMRequest(_ context.Context, ev RequestEvent) error {
	c.events = append(c.events, ev)
	return c.err
}

func TestLoggingProvider_RecordsSuccess(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{
			Content: json.RawMessage(`{"label":"FRUSTRATED","confidence":0.9}`),
			Usage:   Usage{InputTokens: 50, OutputTokens: 12, TotalTokens: 62},
		},
	)
	sink := &captureSink{}
	p := WithLogging(mock, sink)

	ctx := WithPurpose(context.Background(), "sentiment")
	resp, err := p.Generate(ctx, Request{
		System:   "You are a supportive coding coach.",
		Messages: []Message{{Role: RoleUser, Content: "this problem is impossible"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(sink.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(sink.events))
	}
	ev := sink.events[0]
	if !ev.Success {
		t.Error("expected success event")
	}
	if ev.Purpose != "sentiment" {
		t.Errorf("purpose = %q, want sentiment", ev.Purpose)
	}
	if ev.InputTokens != 50 || ev.OutputTokens != 12 {
		t.Errorf("tokens = %d/%d, want 50/12", ev.InputTokens, ev.OutputTokens)
	}
	if !strings.Contains(ev.RequestBody, "supportive coding coach") {
		t.Errorf("request body missing system prompt: %q", ev.RequestBody)
	}
	if ev.ResponseBody != string(resp.Content) {
		t.Errorf("response body = %q, want %q", ev.ResponseBody, resp.Content)
	}
}

func TestLoggingProvider_RecordsFailure(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{}},
	)
	sink := &captureSink{}
	p := WithLogging(mock, sink)

	_, err := p.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "hello"}},
	})
	if err == nil {
		t.Fatal("expected error")
	}

	if len(sink.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(sink.events))
	}
	ev := sink.events[0]
	if ev.Success {
		t.Error("expected failure event")
	}
	if ev.ErrorMessage == "" {
		t.Error("expected error message on failure event")
	}
}

func TestLoggingProvider_SinkErrorDoesNotFailRequest(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{}`)},
	)
	sink := &captureSink{err: context.DeadlineExceeded}
	p := WithLogging(mock, sink)

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("sink error leaked into request: %v", err)
	}
}

func TestSerializeRequest(t *testing.T) {
	req := Request{
		System:   "coach system prompt",
		Messages: []Message{{Role: RoleUser, Content: "I keep losing ghost races"}},
		Schema: &Schema{
			Name: "sentiment-verdict",
			Definition: map[string]any{
				"type": "object",
			},
		},
	}

	out := serializeRequest(req)
	for _, want := range []string{"[system]", "coach system prompt", "[user]", "ghost races", "[schema: sentiment-verdict]"} {
		if !strings.Contains(out, want) {
			t.Errorf("serialized request missing %q:\n%s", want, out)
		}
	}
}
