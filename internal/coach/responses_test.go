package coach

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/internal/llm"
	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/internal/trend"
)

func TestLLMResponderUsesProvider(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"message":"Deep breath. This DP state is closer than it feels."}`),
	})
	r := NewLLMResponder(provider, NewResponseBank(0), time.Second)

	sess := NewSession("mia", time.Unix(1000, 0))
	got := r.Respond(context.Background(), sess, StateWarning, ConfirmedBurnout, trend.Deteriorating)
	if got != "Deep breath. This DP state is closer than it feels." {
		t.Errorf("message = %q", got)
	}
	if provider.CallCount() != 1 {
		t.Errorf("CallCount = %d, want 1", provider.CallCount())
	}
}

func TestLLMResponderFallsBackToTemplates(t *testing.T) {
	tests := []struct {
		name     string
		provider *llm.MockProvider
	}{
		{"provider error", llm.NewMockProvider()}, // empty queue errors
		{"malformed response", llm.NewMockProvider(llm.MockResponse{
			Content: json.RawMessage(`{"message":""}`),
		})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewLLMResponder(tt.provider, NewResponseBank(0), time.Second)
			sess := NewSession("nina", time.Unix(1000, 0))
			got := r.Respond(context.Background(), sess, StateProtective, ConfirmedBurnout, trend.Stable)
			if got == "" {
				t.Fatal("responder must always return a message")
			}
		})
	}
}

func TestLLMResponderNilProvider(t *testing.T) {
	r := NewLLMResponder(nil, NewResponseBank(0), time.Second)
	sess := NewSession("omar", time.Unix(1000, 0))
	if got := r.Respond(context.Background(), sess, StateRecovery, GenuineGood, trend.Recovering); got == "" {
		t.Fatal("nil provider must degrade to templates, not silence")
	}
}
