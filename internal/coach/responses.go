package coach

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/internal/llm"
	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/internal/trend"
)

// ResponseBank holds the coaching message templates, keyed by alignment
// first, then state, with a generic fallback. Pick always returns a
// non-empty string; "say nothing" is the selector's call, not the
// bank's.
type ResponseBank struct {
	variant int
}

// NewResponseBank creates a bank. The variant offset rotates which
// template within a matching set is served first; 0 is fine.
func NewResponseBank(variant int) *ResponseBank {
	return &ResponseBank{variant: variant}
}

// Alignment-keyed templates take priority: the mismatch between words
// and behavior is more specific than the state alone.
var alignmentTemplates = map[Alignment][]string{
	Masking: {
		"How are you actually feeling about this problem? No wrong answer.",
		"Something feels different this session. Want to talk about it?",
		"It's okay to say this one is rough. Even strong solvers hit walls.",
	},
	SilentDisengage: {
		"Haven't heard from you in a while. How's it going? Need a hint?",
		"Still there? No pressure, just checking in.",
		"Want me to find something fun instead of hard?",
	},
	ConfirmedBurnout: {
		"You're pushing hard and it shows. A 10-minute break often unlocks solutions.",
		"No shame in pausing. You can pick up right where you left off.",
		"Rest is part of the journey. The problems will still be here.",
	},
	VentingOK: {
		"That's a tricky edge case. Most people miss it the first time.",
		"Frustration means you're pushing your limits. That's growth.",
		"This problem has a brutal acceptance rate. You're doing fine.",
	},
}

var stateTemplates = map[State][]string{
	StateWatching: {
		"Noted a rough patch. I'm keeping an eye on pace, nothing to change yet.",
		"Tough stretch. Take it one test case at a time.",
	},
	StateWarning: {
		"I see you're hitting some walls. Every top coder has been here.",
		"Let's slow down a bit. No rush. Quality thinking beats speed right now.",
	},
	StateProtective: {
		"Let's pause and reset. How about an easier problem to rebuild momentum?",
		"You've been going hard. A short break now pays off in the next hour.",
	},
	StateRecovery: {
		"Good recovery from earlier. That resilience is valuable.",
		"You're making great progress. Keep it up!",
		"One problem at a time. You've got this.",
	},
}

// Trend-specific variants refine the state message when the direction
// is known.
var trendTemplates = map[trend.Direction][]string{
	trend.Deteriorating: {
		"The last few attempts have been getting harder on you. Worth a reset?",
	},
	trend.Recovering: {
		"The trend is turning around. Nice work steadying the ship.",
	},
}

const genericTemplate = "Take it one step at a time. I'm here if you need anything."

// Pick returns a message for the given context. Lookup priority:
// alignment, then trend direction, then state, then the generic
// fallback. The variant index rotates within the matching set so
// consecutive messages differ.
func (b *ResponseBank) Pick(state State, align Alignment, dir trend.Direction, variant int) string {
	variant += b.variant

	if msgs, ok := alignmentTemplates[align]; ok && len(msgs) > 0 {
		return msgs[variant%len(msgs)]
	}
	if msgs, ok := trendTemplates[dir]; ok && len(msgs) > 0 && state != StateNormal {
		// Trend messages only refine an already-elevated state; give
		// them every third slot so state messages still dominate.
		if variant%3 == 2 {
			return msgs[variant%len(msgs)]
		}
	}
	if msgs, ok := stateTemplates[state]; ok && len(msgs) > 0 {
		return msgs[variant%len(msgs)]
	}
	return genericTemplate
}

// ResponseGenerator produces the coaching message for a decision.
// Implementations must always return a string or explicitly no message;
// a failure inside an implementation degrades to the template bank and
// is never surfaced to the pipeline.
type ResponseGenerator interface {
	Respond(ctx context.Context, sess *Session, state State, align Alignment, dir trend.Direction) string
}

// LLMResponder generates personalized coaching messages via an LLM,
// with the template bank as fallback on any provider failure.
type LLMResponder struct {
	provider llm.Provider
	bank     *ResponseBank
	timeout  time.Duration
}

// NewLLMResponder creates an LLMResponder. A nil provider degrades to
// pure template lookup.
func NewLLMResponder(provider llm.Provider, bank *ResponseBank, timeout time.Duration) *LLMResponder {
	if bank == nil {
		bank = NewResponseBank(0)
	}
	if timeout <= 0 {
		timeout = 4 * time.Second
	}
	return &LLMResponder{provider: provider, bank: bank, timeout: timeout}
}

type responderOutput struct {
	Message string `json:"message"`
}

// Respond asks the LLM for a short coaching message fitted to the
// current situation, falling back to templates on any failure.
func (r *LLMResponder) Respond(ctx context.Context, sess *Session, state State, align Alignment, dir trend.Direction) string {
	fallback := func() string {
		return r.bank.Pick(state, align, dir, sess.MessageCountSession)
	}
	if r.provider == nil {
		return fallback()
	}

	ctx = llm.WithPurpose(ctx, "coach-response")
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var sb strings.Builder
	sb.WriteString("Coaching state: " + state.String() + "\n")
	sb.WriteString("Alignment: " + string(align) + "\n")
	sb.WriteString("Trend: " + string(dir) + "\n")
	if latest := sess.LatestSentiment(); latest != nil {
		sb.WriteString("Last message from user: " + latest.RawText + "\n")
	}

	resp, err := r.provider.Generate(ctx, llm.Request{
		System: responderSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: sb.String()},
		},
		Schema:      responderSchema,
		MaxTokens:   128,
		Temperature: 0.7,
	})
	if err != nil {
		return fallback()
	}

	var out responderOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return fallback()
	}
	msg := strings.TrimSpace(out.Message)
	if len(msg) < 10 {
		return fallback()
	}
	return msg
}

const responderSystemPrompt = `You are a supportive coach for someone practicing competitive programming. Write ONE short message (under 200 characters) fitted to the situation described. Be warm and specific, never clinical. Do not mention scores, states, or monitoring.`

var responderSchema = &llm.Schema{
	Name:        "coach-message",
	Description: "A single short coaching message for the user",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"message": map[string]any{
				"type":        "string",
				"description": "The coaching message to show the user",
			},
		},
		"required":             []any{"message"},
		"additionalProperties": false,
	},
}
