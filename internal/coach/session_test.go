package coach

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/internal/scoring"
	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/internal/sentiment"
	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/internal/signal"
)

func populatedSession(t *testing.T) *Session {
	t.Helper()
	now := time.Unix(10000, 0).UTC()
	sess := NewSession("bob", now)
	sess.BurnoutScore = 0.62
	sess.CurrentState = StateWarning
	sess.FailuresSinceLastMessage = 2
	sess.MessageCountSession = 4
	sess.LastInterventionAt[LevelGentle] = now.Add(-3 * time.Minute)

	sig, err := signal.New(signal.RapidWABurst, 1, now.Add(-time.Minute), map[string]string{"problem_id": "1842B"})
	if err != nil {
		t.Fatal(err)
	}
	sess.SignalHistory = append(sess.SignalHistory, sig)
	sess.ScoreHistory = append(sess.ScoreHistory, scoring.Sample{Timestamp: now, Score: 0.62})
	sess.appendSentiment(sentiment.Result{
		Label:      sentiment.Negative,
		Confidence: 0.9,
		RawText:    "this problem is impossible",
		Timestamp:  now,
		Method:     "keyword",
	})
	return sess
}

func TestSessionRoundTrip(t *testing.T) {
	sess := populatedSession(t)

	raw, err := json.Marshal(sess)
	if err != nil {
		t.Fatal(err)
	}
	var restored Session
	if err := json.Unmarshal(raw, &restored); err != nil {
		t.Fatal(err)
	}
	if err := restored.Hydrate(); err != nil {
		t.Fatalf("hydration failed: %v", err)
	}

	if restored.CurrentState != sess.CurrentState {
		t.Errorf("state = %s, want %s", restored.CurrentState, sess.CurrentState)
	}
	if restored.BurnoutScore != sess.BurnoutScore {
		t.Errorf("score = %v, want %v", restored.BurnoutScore, sess.BurnoutScore)
	}
	latest := restored.LatestSentiment()
	if latest == nil || latest.RawText != "this problem is impossible" {
		t.Errorf("latest sentiment raw_text not preserved: %+v", latest)
	}
	if len(restored.SignalHistory) != 1 || restored.SignalHistory[0].Kind != signal.RapidWABurst {
		t.Errorf("signal history not preserved: %+v", restored.SignalHistory)
	}
	if !restored.LastInterventionAt[LevelGentle].Equal(sess.LastInterventionAt[LevelGentle]) {
		t.Error("intervention timestamps not preserved")
	}
}

func TestSessionRoundTripThroughMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	sess := populatedSession(t)

	if err := store.Save(ctx, sess); err != nil {
		t.Fatal(err)
	}
	restored, err := store.Load(ctx, "bob")
	if err != nil {
		t.Fatal(err)
	}
	if restored == nil {
		t.Fatal("session missing after save")
	}
	if restored.CurrentState != StateWarning || restored.BurnoutScore != 0.62 {
		t.Errorf("restored session mismatch: state %s score %v", restored.CurrentState, restored.BurnoutScore)
	}
}

func TestSessionValidateRejectsMalformed(t *testing.T) {
	now := time.Unix(10000, 0)

	tests := []struct {
		name   string
		mutate func(*Session)
	}{
		{"score out of range", func(s *Session) { s.BurnoutScore = 1.4 }},
		{"sentiment missing raw_text", func(s *Session) {
			s.SentimentHistory = append(s.SentimentHistory, sentiment.Result{
				Label: sentiment.Negative, Confidence: 0.9,
			})
		}},
		{"unknown sentiment label", func(s *Session) {
			s.SentimentHistory = append(s.SentimentHistory, sentiment.Result{
				Label: "angry", Confidence: 0.9, RawText: "x",
			})
		}},
		{"unknown signal kind", func(s *Session) {
			s.SignalHistory = append(s.SignalHistory, signal.Signal{
				Kind: "NOT_A_REAL_KIND", Value: 1, Timestamp: now,
			})
		}},
		{"empty handle", func(s *Session) { s.UserHandle = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := NewSession("carol", now)
			tt.mutate(sess)
			err := sess.Validate()
			var malformed *ErrMalformedSession
			if !errors.As(err, &malformed) {
				t.Fatalf("expected ErrMalformedSession, got %v", err)
			}
		})
	}
}

func TestSessionStateUnmarshalRejectsUnknown(t *testing.T) {
	var sess Session
	err := json.Unmarshal([]byte(`{"user_handle":"dave","current_state":"PANICKING"}`), &sess)
	if err == nil {
		t.Fatal("expected unmarshal failure for state outside the enum")
	}
}

func TestSessionReset(t *testing.T) {
	sess := populatedSession(t)
	reset := time.Unix(20000, 0)
	sess.Reset(reset)

	if sess.UserHandle != "bob" {
		t.Error("reset must keep the handle")
	}
	if sess.CurrentState != StateNormal || sess.BurnoutScore != 0 {
		t.Errorf("reset state = %s score %v", sess.CurrentState, sess.BurnoutScore)
	}
	if len(sess.SignalHistory) != 0 || len(sess.SentimentHistory) != 0 || len(sess.ScoreHistory) != 0 {
		t.Error("reset must clear histories")
	}
	if sess.Metrics[scoring.MetricFocus] != 1.0 {
		t.Error("reset must restore default metrics")
	}
}
