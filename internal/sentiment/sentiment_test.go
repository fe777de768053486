package sentiment

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/internal/llm"
)

func TestKeywordAnalyzerLabels(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Label
	}{
		{"frustration", "I'm so stuck on this, it's impossible", Negative},
		{"giving up", "forget it, I give up", Negative},
		{"self-doubt", "i suck at graphs, everyone else gets this", Negative},
		{"fatigue", "so tired, over it", Negative},
		{"breakthrough", "finally got it, that clicked", Positive},
		{"joy", "let's go!! that was awesome", Positive},
		{"growth", "I can see the pattern now, definitely getting better", Positive},
		{"neutral question", "what does the second test case expect?", Neutral},
		{"mixed leans negative", "got it but this problem is stupid and broken", Negative},
	}

	a := NewKeywordAnalyzer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.Analyze(context.Background(), tt.text)
			if got.Label != tt.want {
				t.Errorf("Analyze(%q).Label = %s, want %s", tt.text, got.Label, tt.want)
			}
			if got.RawText != tt.text {
				t.Errorf("RawText = %q, want original text preserved", got.RawText)
			}
			if got.Method != "keyword" {
				t.Errorf("Method = %q, want keyword", got.Method)
			}
		})
	}
}

func TestKeywordAnalyzerEmptyText(t *testing.T) {
	a := NewKeywordAnalyzer()
	for _, text := range []string{"", "   ", "\n\t"} {
		got := a.Analyze(context.Background(), text)
		if got.Label != Neutral {
			t.Errorf("Analyze(%q).Label = %s, want neutral", text, got.Label)
		}
		if got.Confidence >= 0.3 {
			t.Errorf("Analyze(%q).Confidence = %.2f, want low", text, got.Confidence)
		}
	}
}

func TestKeywordAnalyzerMaskingHint(t *testing.T) {
	a := NewKeywordAnalyzer()

	got := a.Analyze(context.Background(), "i'm fine, it's okay really")
	if !got.MaskingHint {
		t.Error("expected MaskingHint for dismissive-fine phrasing")
	}

	got = a.Analyze(context.Background(), "this problem is great fun")
	if got.MaskingHint {
		t.Error("unexpected MaskingHint for plain positive text")
	}
}

func TestKeywordConfidenceScalesWithMatches(t *testing.T) {
	a := NewKeywordAnalyzer()

	one := a.Analyze(context.Background(), "I'm stuck")
	three := a.Analyze(context.Background(), "I'm stuck, so tired, I give up")
	if three.Confidence <= one.Confidence {
		t.Errorf("confidence did not grow with matches: 1 match %.2f, 3 matches %.2f",
			one.Confidence, three.Confidence)
	}
	if three.Confidence > 1 {
		t.Errorf("confidence %.2f exceeds 1", three.Confidence)
	}
}

func TestHybridAnalyzerUsesLLM(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"label":"NEGATIVE","confidence":0.9,"masking_hint":false}`),
	})
	a := NewHybridAnalyzer(provider, DefaultHybridConfig())

	got := a.Analyze(context.Background(), "honestly this is fine I love segment trees")
	if got.Label != Negative {
		t.Errorf("Label = %s, want negative from LLM verdict", got.Label)
	}
	if got.Method != "llm" {
		t.Errorf("Method = %q, want llm", got.Method)
	}
	if got.Confidence != 0.9 {
		t.Errorf("Confidence = %.2f, want 0.9", got.Confidence)
	}
	if provider.CallCount() != 1 {
		t.Errorf("CallCount = %d, want 1", provider.CallCount())
	}
}

func TestHybridAnalyzerFallsBackOnProviderError(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{
		Err: errors.New("rate limited"),
	})
	a := NewHybridAnalyzer(provider, DefaultHybridConfig())

	got := a.Analyze(context.Background(), "I give up, this is impossible")
	if got.Label != Negative {
		t.Errorf("Label = %s, want negative from keyword fallback", got.Label)
	}
	if got.Method != "keyword" {
		t.Errorf("Method = %q, want keyword fallback", got.Method)
	}
}

func TestHybridAnalyzerFallsBackOnMalformedResponse(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid json", `not json at all`},
		{"unknown label", `{"label":"ANGRY","confidence":0.8,"masking_hint":false}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := llm.NewMockProvider(llm.MockResponse{
				Content: json.RawMessage(tt.content),
			})
			a := NewHybridAnalyzer(provider, DefaultHybridConfig())

			got := a.Analyze(context.Background(), "finally figured it out")
			if got.Method != "keyword" {
				t.Errorf("Method = %q, want keyword fallback", got.Method)
			}
			if got.Label != Positive {
				t.Errorf("Label = %s, want positive from fallback", got.Label)
			}
		})
	}
}

func TestHybridAnalyzerNilProvider(t *testing.T) {
	a := NewHybridAnalyzer(nil, DefaultHybridConfig())

	got := a.Analyze(context.Background(), "this is so confusing")
	if got.Method != "keyword" {
		t.Errorf("Method = %q, want keyword", got.Method)
	}
	if got.Label != Negative {
		t.Errorf("Label = %s, want negative", got.Label)
	}
}

func TestHybridAnalyzerMaskingUnionsLexicon(t *testing.T) {
	// LLM says no masking, but the lexicon disagrees. The hint is a union:
	// either source can raise it.
	provider := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"label":"POSITIVE","confidence":0.7,"masking_hint":false}`),
	})
	a := NewHybridAnalyzer(provider, DefaultHybridConfig())

	got := a.Analyze(context.Background(), "i'm fine, all good")
	if !got.MaskingHint {
		t.Error("expected MaskingHint from lexicon even when LLM says false")
	}
}
