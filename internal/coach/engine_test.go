package coach

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/internal/scoring"
	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/internal/signal"
	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/internal/trend"
)

// testClock is an adjustable clock for engine tests.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newTestEngine(t *testing.T) (*Engine, *MemoryStore, *testClock) {
	t.Helper()
	store := NewMemoryStore()
	clock := newTestClock()
	e, err := NewEngine(DefaultConfig(), store, nil, WithClock(clock.Now))
	if err != nil {
		t.Fatal(err)
	}
	return e, store, clock
}

func TestEngineInvalidKindRejectedWithoutMutation(t *testing.T) {
	e, store, _ := newTestEngine(t)
	ctx := context.Background()

	_, err := e.ProcessSignal(ctx, "mallory", "NOT_A_REAL_KIND", 1, nil)
	var invalid *signal.ErrInvalidKind
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidKind, got %v", err)
	}
	if store.Len() != 0 {
		t.Error("rejected signal must not create or mutate a session")
	}
}

func TestEngineResultMetricsDetachedFromSession(t *testing.T) {
	e, store, _ := newTestEngine(t)
	ctx := context.Background()

	res, err := e.ProcessSignal(ctx, "alice", signal.RapidWABurst, 1, nil)
	if err != nil {
		t.Fatal(err)
	}

	// The result is handed to the caller after the per-user lock is
	// released; mutating it must not write through to the session.
	res.Metrics["frustration_index"] = 99

	sess, err := store.Load(ctx, "alice")
	if err != nil {
		t.Fatal(err)
	}
	if sess.Metrics["frustration_index"] == 99 {
		t.Error("result metrics alias the live session map")
	}
}

func TestEngineRapidWABurstScenario(t *testing.T) {
	e, store, clock := newTestEngine(t)
	ctx := context.Background()

	// alice hits three wrong-answer bursts within a minute.
	first, err := e.ProcessSignal(ctx, "alice", signal.RapidWABurst, 1, nil)
	if err != nil {
		t.Fatal(err)
	}
	if first.State != StateNormal || first.Message != "" {
		t.Errorf("first burst: state %s message %q, want NORMAL and silence", first.State, first.Message)
	}

	clock.Advance(30 * time.Second)
	second, err := e.ProcessSignal(ctx, "alice", signal.RapidWABurst, 1, nil)
	if err != nil {
		t.Fatal(err)
	}
	if second.Score <= 0.30 {
		t.Errorf("second burst: score %.2f, want above 0.30", second.Score)
	}
	if second.State != StateWatching || !second.StateChanged {
		t.Errorf("second burst: state %s (changed=%v), want NORMAL->WATCHING", second.State, second.StateChanged)
	}
	if second.Level != LevelMonitor {
		t.Errorf("second burst: level %s, want MONITOR", second.Level)
	}
	if second.Message != "" || !second.Suppressed {
		t.Errorf("MONITOR just after transition should be suppressed, got %q", second.Message)
	}
	if second.TriggerReason == "" {
		t.Error("transition must report its trigger")
	}

	clock.Advance(30 * time.Second)
	third, err := e.ProcessSignal(ctx, "alice", signal.RapidWABurst, 1, nil)
	if err != nil {
		t.Fatal(err)
	}
	if third.State.Severity() < StateWatching.Severity() {
		t.Errorf("third burst: state %s below WATCHING", third.State)
	}
	if third.Score <= second.Score {
		t.Errorf("bursts must compound: %.2f then %.2f", second.Score, third.Score)
	}

	// Persisted state survives across calls.
	sess, err := store.Load(ctx, "alice")
	if err != nil || sess == nil {
		t.Fatalf("session missing: %v", err)
	}
	if sess.CurrentState != third.State {
		t.Errorf("persisted state %s, result state %s", sess.CurrentState, third.State)
	}
}

func TestEngineScoreBoundsOverMixedSequence(t *testing.T) {
	e, _, clock := newTestEngine(t)
	ctx := context.Background()

	kinds := []signal.Kind{
		signal.RapidWABurst, signal.RapidWABurst, signal.GhostLossStreak,
		signal.HintAbuse, signal.SuccessfulSolve, signal.RapidWABurst,
		signal.SkipStreak, signal.GhostWin, signal.LongIdle,
		signal.RapidWABurst, signal.SuccessfulSolve, signal.ReturningAfterBreak,
	}
	for _, k := range kinds {
		res, err := e.ProcessSignal(ctx, "eve", k, 1, nil)
		if err != nil {
			t.Fatal(err)
		}
		if res.Score < 0 || res.Score > 1 {
			t.Fatalf("score %.3f outside [0,1] after %s", res.Score, k)
		}
		clock.Advance(20 * time.Second)
	}
}

func TestEngineMaskingScenario(t *testing.T) {
	e, _, clock := newTestEngine(t)
	ctx := context.Background()

	// Drive the score high with heavy signals.
	var last *Result
	for i := 0; i < 4; i++ {
		var err error
		last, err = e.ProcessSignal(ctx, "frank", signal.RapidWABurst, 1, nil)
		if err != nil {
			t.Fatal(err)
		}
		clock.Advance(20 * time.Second)
	}
	if last.Score < 0.5 {
		t.Fatalf("setup failed: score %.2f, want high burnout", last.Score)
	}

	// The user claims to be fine. Behavior says otherwise.
	res, err := e.ProcessChat(ctx, "frank", "i'm fine, all good, let's go", "")
	if err != nil {
		t.Fatal(err)
	}
	if res.Alignment != Masking {
		t.Fatalf("alignment = %s, want MASKING (sentiment %+v)", res.Alignment, res.Sentiment)
	}
	if res.Level.Rank() < LevelActive.Rank() {
		t.Errorf("masking must force level >= ACTIVE, got %s", res.Level)
	}
	if !res.NeedsAttention {
		t.Error("masking must set the attention flag")
	}
}

func TestEngineRecoveryScenario(t *testing.T) {
	e, store, clock := newTestEngine(t)
	ctx := context.Background()

	// Seed an elevated session directly, then watch twenty clean solves
	// walk it back down.
	now := clock.Now()
	sess := NewSession("grace", now)
	sess.BurnoutScore = 0.6
	sess.CurrentState = StateWarning
	sess.StateEnteredAt = now
	if err := store.Save(ctx, sess); err != nil {
		t.Fatal(err)
	}

	var last *Result
	for i := 0; i < 20; i++ {
		clock.Advance(time.Minute)
		var err error
		last, err = e.ProcessSignal(ctx, "grace", signal.SuccessfulSolve, 1, nil)
		if err != nil {
			t.Fatal(err)
		}
	}

	if last.State != StateNormal {
		t.Errorf("after 20 solves: state %s, want NORMAL", last.State)
	}
	if last.Score > 0.1 {
		t.Errorf("after 20 solves: score %.3f, want near zero", last.Score)
	}

	final, err := store.Load(ctx, "grace")
	if err != nil || final == nil {
		t.Fatalf("session missing: %v", err)
	}
	values := final.ScoreValues()
	det := trend.NewDetector(trend.Config{Window: 20})
	analysis, err := det.Analyze(values)
	if err != nil {
		t.Fatal(err)
	}
	if analysis.Slope >= 0 {
		t.Errorf("trend slope %.4f, want negative over the recovery window", analysis.Slope)
	}
}

func TestEngineChatMovesScore(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	// A purely textual interaction still moves the score via the
	// implicit sentiment signal.
	res, err := e.ProcessChat(ctx, "henry", "I give up, this is impossible and I hate it", "1842B")
	if err != nil {
		t.Fatal(err)
	}
	if res.Sentiment == nil || res.Sentiment.RawText == "" {
		t.Fatal("chat result must carry the sentiment with raw text")
	}
	if res.Score <= 0 {
		t.Errorf("negative chat should raise the score, got %.3f", res.Score)
	}

	neutral, err := e.ProcessChat(ctx, "henry", "what does test case two expect?", "")
	if err != nil {
		t.Fatal(err)
	}
	if neutral.Sentiment == nil {
		t.Fatal("neutral chat still returns a sentiment")
	}
}

func TestEngineChatResetsFailureCounter(t *testing.T) {
	e, store, clock := newTestEngine(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := e.ProcessSignal(ctx, "iris", signal.SkipStreak, 1, nil); err != nil {
			t.Fatal(err)
		}
		clock.Advance(10 * time.Second)
	}
	sess, _ := store.Load(ctx, "iris")
	if sess.FailuresSinceLastMessage != 3 {
		t.Fatalf("failures = %d, want 3", sess.FailuresSinceLastMessage)
	}

	if _, err := e.ProcessChat(ctx, "iris", "still trying", ""); err != nil {
		t.Fatal(err)
	}
	sess, _ = store.Load(ctx, "iris")
	if sess.FailuresSinceLastMessage != 0 {
		t.Errorf("failures after chat = %d, want 0", sess.FailuresSinceLastMessage)
	}
	if sess.MessageCountSession != 1 {
		t.Errorf("message count = %d, want 1", sess.MessageCountSession)
	}
}

func TestEngineResetSession(t *testing.T) {
	e, store, _ := newTestEngine(t)
	ctx := context.Background()

	if _, err := e.ProcessSignal(ctx, "judy", signal.RapidWABurst, 1, nil); err != nil {
		t.Fatal(err)
	}
	if err := e.ResetSession(ctx, "judy"); err != nil {
		t.Fatal(err)
	}
	sess, err := store.Load(ctx, "judy")
	if err != nil || sess == nil {
		t.Fatalf("session missing after reset: %v", err)
	}
	if sess.BurnoutScore != 0 || sess.CurrentState != StateNormal || len(sess.SignalHistory) != 0 {
		t.Errorf("reset left state behind: %+v", sess)
	}
}

func TestEngineMalformedSessionFailsLoudly(t *testing.T) {
	store := NewMemoryStore()
	clock := newTestClock()
	e, err := NewEngine(DefaultConfig(), store, nil, WithClock(clock.Now))
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	bad := NewSession("kate", clock.Now())
	bad.BurnoutScore = 7.5
	if err := store.Save(ctx, bad); err != nil {
		t.Fatal(err)
	}

	_, err = e.ProcessSignal(ctx, "kate", signal.LongIdle, 1, nil)
	var malformed *ErrMalformedSession
	if !errors.As(err, &malformed) {
		t.Fatalf("expected ErrMalformedSession, got %v", err)
	}
}

func TestEnginePerUserMutualExclusion(t *testing.T) {
	e, store, _ := newTestEngine(t)
	ctx := context.Background()

	const perWorker = 20
	var wg sync.WaitGroup
	for w := 0; w < 3; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				if _, err := e.ProcessSignal(ctx, "leo", signal.ExcessiveTabSwitch, 1, nil); err != nil {
					t.Error(err)
					return
				}
			}
		}()
	}
	wg.Wait()

	sess, err := store.Load(ctx, "leo")
	if err != nil || sess == nil {
		t.Fatalf("session missing: %v", err)
	}
	// Every run serialized: all 60 signals landed (history cap is 50).
	if len(sess.SignalHistory) != scoring.DefaultHistoryLimit {
		t.Errorf("signal history = %d, want %d", len(sess.SignalHistory), scoring.DefaultHistoryLimit)
	}
	if len(sess.ScoreHistory) != scoring.DefaultScoreHistoryLimit {
		t.Errorf("score history = %d, want %d", len(sess.ScoreHistory), scoring.DefaultScoreHistoryLimit)
	}
}
