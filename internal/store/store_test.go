package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/internal/coach"
	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/internal/llm"
	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/internal/signal"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSessionLoadMissing(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	sess, err := repo.Load(ctx, "nobody")
	if err != nil {
		t.Fatalf("load missing: %v", err)
	}
	if sess != nil {
		t.Fatal("expected nil session when none exists")
	}
}

func TestSessionSaveAndLoad(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	sess := coach.NewSession("alice", now)
	sess.BurnoutScore = 0.42
	sess.CurrentState = coach.StateWatching
	sess.FailuresSinceLastMessage = 3

	if err := repo.Save(ctx, sess); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Load(ctx, "alice")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got == nil {
		t.Fatal("expected non-nil session")
	}
	if got.UserHandle != "alice" {
		t.Errorf("user handle = %q, want %q", got.UserHandle, "alice")
	}
	if got.BurnoutScore != 0.42 {
		t.Errorf("burnout score = %v, want 0.42", got.BurnoutScore)
	}
	if got.CurrentState != coach.StateWatching {
		t.Errorf("state = %v, want %v", got.CurrentState, coach.StateWatching)
	}
	if got.FailuresSinceLastMessage != 3 {
		t.Errorf("failures = %d, want 3", got.FailuresSinceLastMessage)
	}
}

func TestSessionSaveUpserts(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	now := time.Now().UTC()
	sess := coach.NewSession("bob", now)
	if err := repo.Save(ctx, sess); err != nil {
		t.Fatalf("first save: %v", err)
	}

	sess.BurnoutScore = 0.77
	sess.CurrentState = coach.StateWarning
	if err := repo.Save(ctx, sess); err != nil {
		t.Fatalf("second save: %v", err)
	}

	count, err := s.Client().CoachSession.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("session rows = %d, want 1", count)
	}

	got, err := repo.Load(ctx, "bob")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.BurnoutScore != 0.77 {
		t.Errorf("burnout score = %v, want 0.77", got.BurnoutScore)
	}
	if got.CurrentState != coach.StateWarning {
		t.Errorf("state = %v, want %v", got.CurrentState, coach.StateWarning)
	}
}

func TestSessionDeleteAndHandles(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	now := time.Now().UTC()
	for _, h := range []string{"carol", "alice", "bob"} {
		if err := repo.Save(ctx, coach.NewSession(h, now)); err != nil {
			t.Fatalf("save %s: %v", h, err)
		}
	}

	handles, err := repo.Handles(ctx)
	if err != nil {
		t.Fatalf("handles: %v", err)
	}
	want := []string{"alice", "bob", "carol"}
	if len(handles) != len(want) {
		t.Fatalf("handles = %v, want %v", handles, want)
	}
	for i := range want {
		if handles[i] != want[i] {
			t.Errorf("handles[%d] = %q, want %q", i, handles[i], want[i])
		}
	}

	if err := repo.Delete(ctx, "bob"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	sess, err := repo.Load(ctx, "bob")
	if err != nil {
		t.Fatalf("load after delete: %v", err)
	}
	if sess != nil {
		t.Fatal("expected nil session after delete")
	}

	// Deleting a missing session is not an error.
	if err := repo.Delete(ctx, "bob"); err != nil {
		t.Fatalf("delete missing: %v", err)
	}
}

func TestSessionLoadMalformed(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	// A data column whose shape no longer matches the session type.
	_, err := s.Client().CoachSession.Create().
		SetUserHandle("mallory").
		SetBurnoutScore(0).
		SetCurrentState("NORMAL").
		SetData(map[string]any{
			"user_handle":   "mallory",
			"burnout_score": "very",
		}).
		Save(ctx)
	if err != nil {
		t.Fatalf("seed malformed row: %v", err)
	}

	_, err = repo.Load(ctx, "mallory")
	if err == nil {
		t.Fatal("expected error loading malformed session")
	}
	var malformed *coach.ErrMalformedSession
	if !errors.As(err, &malformed) {
		t.Fatalf("error = %v, want ErrMalformedSession", err)
	}
	if malformed.Handle != "mallory" {
		t.Errorf("handle = %q, want %q", malformed.Handle, "mallory")
	}
}

func TestAppendAndQuerySignalEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	appends := []SignalEventData{
		{UserHandle: "alice", Kind: "RAPID_WA_BURST", Value: 1, ScoreAfter: 0.24, StateAfter: "NORMAL"},
		{UserHandle: "bob", Kind: "SUCCESSFUL_SOLVE", Value: 1, ScoreAfter: 0.05, StateAfter: "NORMAL"},
		{UserHandle: "alice", Kind: "GHOST_LOSS_STREAK", Value: 1, ScoreAfter: 0.51, StateAfter: "WARNING",
			Metadata: map[string]string{"problem_id": "p-7"}},
	}
	for i, data := range appends {
		if err := repo.AppendSignal(ctx, data); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	records, err := repo.QuerySignalEvents(ctx, "alice", QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}
	// Newest first.
	if records[0].Kind != "GHOST_LOSS_STREAK" {
		t.Errorf("records[0].kind = %q, want GHOST_LOSS_STREAK", records[0].Kind)
	}
	if records[0].Metadata["problem_id"] != "p-7" {
		t.Errorf("metadata = %v, want problem_id=p-7", records[0].Metadata)
	}
	if records[1].Kind != "RAPID_WA_BURST" {
		t.Errorf("records[1].kind = %q, want RAPID_WA_BURST", records[1].Kind)
	}

	// Empty handle matches all users.
	all, err := repo.QuerySignalEvents(ctx, "", QueryOpts{})
	if err != nil {
		t.Fatalf("query all: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("all records = %d, want 3", len(all))
	}

	limited, err := repo.QuerySignalEvents(ctx, "alice", QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query limited: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("limited records = %d, want 1", len(limited))
	}
}

func TestAppendAndQueryInterventionEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendIntervention(ctx, InterventionEventData{
		UserHandle:    "alice",
		State:         "WARNING",
		Level:         "ACTIVE",
		Alignment:     "CONFIRMED_BURNOUT",
		Message:       "Let's take a short break.",
		TriggerReason: "score 0.61 crossed the WARNING threshold 0.50",
		Score:         0.61,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	err = repo.AppendIntervention(ctx, InterventionEventData{
		UserHandle: "alice",
		State:      "WARNING",
		Level:      "MONITOR",
		Suppressed: true,
		Score:      0.58,
	})
	if err != nil {
		t.Fatalf("append suppressed: %v", err)
	}

	records, err := repo.QueryInterventionEvents(ctx, "alice", QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}
	if !records[0].Suppressed {
		t.Error("expected newest record suppressed")
	}
	if records[1].Level != "ACTIVE" {
		t.Errorf("records[1].level = %q, want ACTIVE", records[1].Level)
	}
	if records[1].Message == "" {
		t.Error("expected non-empty message on delivered intervention")
	}
}

func TestAppendAndQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []llm.RequestEvent{
		{Provider: "anthropic", Model: "claude-sonnet-4-5", Purpose: "sentiment", InputTokens: 120, OutputTokens: 30, LatencyMs: 400, Success: true},
		{Provider: "anthropic", Model: "claude-sonnet-4-5", Purpose: "coach-response", InputTokens: 300, OutputTokens: 80, LatencyMs: 900, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "sentiment", InputTokens: 110, OutputTokens: 0, LatencyMs: 250, Success: false, ErrorMessage: "rate limited"},
	}
	for i, ev := range events {
		if err := repo.AppendLLMRequest(ctx, ev); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	records, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("records = %d, want 3", len(records))
	}
	if records[0].Purpose != "sentiment" || records[0].Success {
		t.Errorf("newest record = %+v, want failed sentiment call", records[0])
	}

	usage, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	sent := usage["sentiment"]
	if sent.Requests != 2 || sent.Failures != 1 {
		t.Errorf("sentiment usage = %+v, want 2 requests 1 failure", sent)
	}
	if sent.InputTokens != 230 {
		t.Errorf("sentiment input tokens = %d, want 230", sent.InputTokens)
	}
	resp := usage["coach-response"]
	if resp.Requests != 1 || resp.OutputTokens != 80 {
		t.Errorf("coach-response usage = %+v, want 1 request 80 output tokens", resp)
	}
}

func TestSequenceSharedAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendSignal(ctx, SignalEventData{UserHandle: "alice", Kind: "SKIP_STREAK", StateAfter: "NORMAL"}); err != nil {
		t.Fatalf("append signal: %v", err)
	}
	if err := repo.AppendIntervention(ctx, InterventionEventData{UserHandle: "alice", State: "NORMAL", Level: "NONE"}); err != nil {
		t.Fatalf("append intervention: %v", err)
	}
	if err := repo.AppendLLMRequest(ctx, llm.RequestEvent{Provider: "mock", Model: "mock", Purpose: "sentiment", Success: true}); err != nil {
		t.Fatalf("append llm: %v", err)
	}

	sigs, err := repo.QuerySignalEvents(ctx, "alice", QueryOpts{})
	if err != nil {
		t.Fatalf("query signals: %v", err)
	}
	ivs, err := repo.QueryInterventionEvents(ctx, "alice", QueryOpts{})
	if err != nil {
		t.Fatalf("query interventions: %v", err)
	}
	llms, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query llm events: %v", err)
	}

	if sigs[0].Sequence != 1 {
		t.Errorf("signal sequence = %d, want 1", sigs[0].Sequence)
	}
	if ivs[0].Sequence != 2 {
		t.Errorf("intervention sequence = %d, want 2", ivs[0].Sequence)
	}
	if llms[0].Sequence != 3 {
		t.Errorf("llm sequence = %d, want 3", llms[0].Sequence)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"coach_sessions", "signal_events", "intervention_events", "llm_request_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
			continue
		}
		if name != table {
			t.Errorf("table name = %q, want %q", name, table)
		}
	}
}

func TestRecorder(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	rec := NewRecorder(repo)
	ctx := context.Background()

	now := time.Now().UTC()
	sig, err := signal.New(signal.RapidWABurst, 1, now, map[string]string{"problem_id": "p-3"})
	if err != nil {
		t.Fatalf("new signal: %v", err)
	}
	res := &coach.Result{
		Score:         0.55,
		State:         coach.StateWarning,
		Level:         coach.LevelActive,
		Message:       "Rough patch. Want a hint?",
		Alignment:     coach.ConfirmedBurnout,
		TriggerReason: "score 0.55 crossed the WARNING threshold 0.50",
	}

	if err := rec.RecordSignal(ctx, "alice", sig, res); err != nil {
		t.Fatalf("record signal: %v", err)
	}
	if err := rec.RecordIntervention(ctx, "alice", res); err != nil {
		t.Fatalf("record intervention: %v", err)
	}

	sigs, err := repo.QuerySignalEvents(ctx, "alice", QueryOpts{})
	if err != nil {
		t.Fatalf("query signals: %v", err)
	}
	if len(sigs) != 1 {
		t.Fatalf("signal records = %d, want 1", len(sigs))
	}
	if sigs[0].Kind != string(signal.RapidWABurst) {
		t.Errorf("kind = %q, want %q", sigs[0].Kind, signal.RapidWABurst)
	}
	if sigs[0].ScoreAfter != 0.55 || sigs[0].StateAfter != "WARNING" {
		t.Errorf("record = %+v, want score 0.55 state WARNING", sigs[0])
	}

	ivs, err := repo.QueryInterventionEvents(ctx, "alice", QueryOpts{})
	if err != nil {
		t.Fatalf("query interventions: %v", err)
	}
	if len(ivs) != 1 {
		t.Fatalf("intervention records = %d, want 1", len(ivs))
	}
	if ivs[0].Level != "ACTIVE" || ivs[0].Alignment != string(coach.ConfirmedBurnout) {
		t.Errorf("record = %+v, want ACTIVE / CONFIRMED_BURNOUT", ivs[0])
	}
}
