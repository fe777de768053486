package sentiment

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/internal/llm"
)

// HybridConfig holds configuration for the LLM-backed analyzer.
type HybridConfig struct {
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
}

// DefaultHybridConfig returns sensible defaults.
func DefaultHybridConfig() HybridConfig {
	return HybridConfig{
		MaxTokens:   128,
		Temperature: 0.0,
		Timeout:     4 * time.Second,
	}
}

// HybridAnalyzer asks an LLM to classify sentiment and falls back to the
// keyword analyzer whenever the provider errors, times out, or returns a
// malformed response. Analyze never fails: a pipeline waiting on sentiment
// must always get a usable Result.
type HybridAnalyzer struct {
	provider llm.Provider
	fallback *KeywordAnalyzer
	cfg      HybridConfig
	now      func() time.Time
}

// NewHybridAnalyzer creates a hybrid analyzer. A nil provider degrades to
// pure keyword classification.
func NewHybridAnalyzer(provider llm.Provider, cfg HybridConfig) *HybridAnalyzer {
	return &HybridAnalyzer{
		provider: provider,
		fallback: NewKeywordAnalyzer(),
		cfg:      cfg,
		now:      time.Now,
	}
}

// llmOutput is the raw LLM response.
type llmOutput struct {
	Label       string  `json:"label"`
	Confidence  float64 `json:"confidence"`
	MaskingHint bool    `json:"masking_hint"`
}

// Analyze classifies text, preferring the LLM and degrading to keyword
// matching on any failure.
func (h *HybridAnalyzer) Analyze(ctx context.Context, text string) Result {
	if h.provider == nil || strings.TrimSpace(text) == "" {
		return h.fallback.Analyze(ctx, text)
	}

	ctx = llm.WithPurpose(ctx, "sentiment")
	if h.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.cfg.Timeout)
		defer cancel()
	}

	resp, err := h.provider.Generate(ctx, llm.Request{
		System: sentimentSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: text},
		},
		Schema:      sentimentSchema,
		MaxTokens:   h.cfg.MaxTokens,
		Temperature: h.cfg.Temperature,
	})
	if err != nil {
		return h.fallback.Analyze(context.WithoutCancel(ctx), text)
	}

	var raw llmOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return h.fallback.Analyze(context.WithoutCancel(ctx), text)
	}

	label := Label(strings.ToLower(raw.Label))
	if !ValidLabel(label) {
		return h.fallback.Analyze(context.WithoutCancel(ctx), text)
	}

	confidence := raw.Confidence
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}

	return Result{
		Label:       label,
		Confidence:  confidence,
		RawText:     text,
		Timestamp:   h.now(),
		MaskingHint: raw.MaskingHint || countMatches(maskingPatterns, text) > 0,
		Method:      "llm",
	}
}

const sentimentSystemPrompt = `You classify the emotional tone of short chat messages from someone doing competitive programming practice.

Instructions:
- Return exactly one label: POSITIVE, NEGATIVE, or NEUTRAL.
- Set masking_hint to true if the message sounds dismissively fine ("I'm ok", "whatever, it's fine") in a way that may hide frustration.
- Provide a confidence score (0.0-1.0).`

var sentimentSchema = &llm.Schema{
	Name:        "chat-sentiment",
	Description: "Sentiment classification of a practice-session chat message",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"label": map[string]any{
				"type":        "string",
				"enum":        []any{"POSITIVE", "NEGATIVE", "NEUTRAL"},
				"description": "The dominant emotional tone of the message",
			},
			"confidence": map[string]any{
				"type":        "number",
				"minimum":     0.0,
				"maximum":     1.0,
				"description": "Confidence in the label",
			},
			"masking_hint": map[string]any{
				"type":        "boolean",
				"description": "True when the message reads as forced positivity or dismissive fine-ness",
			},
		},
		"required":             []any{"label", "confidence", "masking_hint"},
		"additionalProperties": false,
	},
}
