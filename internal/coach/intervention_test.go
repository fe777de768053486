package coach

import (
	"strings"
	"testing"
	"time"

	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/internal/trend"
)

func newSelector() *Selector {
	return NewSelector(DefaultConfig(), NewResponseBank(0))
}

func TestSelectorBaselineMapping(t *testing.T) {
	tests := []struct {
		name  string
		state State
		score float64
		want  Level
	}{
		{"normal", StateNormal, 0.1, LevelNone},
		{"watching", StateWatching, 0.4, LevelMonitor},
		{"warning gentle", StateWarning, 0.55, LevelGentle},
		{"warning escalates to active", StateWarning, 0.65, LevelActive},
		{"protective active", StateProtective, 0.7, LevelActive},
		{"protective escalates to urgent", StateProtective, 0.85, LevelUrgent},
		{"recovery gentle", StateRecovery, 0.3, LevelGentle},
	}

	now := time.Unix(5000, 0)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := newSelector()
			sess := testSession(tt.state)
			d := sel.Select(sess, tt.state, tt.score, GenuineGood, trend.Stable, now)
			if d.Level != tt.want {
				t.Errorf("level = %s, want %s (%s)", d.Level, tt.want, d.Reason)
			}
		})
	}
}

func TestSelectorMaskingForcesActive(t *testing.T) {
	now := time.Unix(5000, 0)

	// Even from low-severity states, masking floors the level at
	// ACTIVE. The forcing rule is independent of the state mapping.
	for _, state := range []State{StateWatching, StateWarning, StateRecovery} {
		sel := newSelector()
		sess := testSession(state)
		d := sel.Select(sess, state, 0.72, Masking, trend.Stable, now)
		if d.Level.Rank() < LevelActive.Rank() {
			t.Errorf("state %s with masking: level = %s, want >= ACTIVE", state, d.Level)
		}
	}

	// PROTECTIVE with masking goes all the way to URGENT.
	sel := newSelector()
	sess := testSession(StateProtective)
	d := sel.Select(sess, StateProtective, 0.72, Masking, trend.Stable, now)
	if d.Level != LevelUrgent {
		t.Errorf("PROTECTIVE with masking: level = %s, want URGENT", d.Level)
	}
}

func TestSelectorFailureStreakEscalates(t *testing.T) {
	now := time.Unix(5000, 0)
	sel := newSelector()

	sess := testSession(StateWatching)
	sess.FailuresSinceLastMessage = 3
	d := sel.Select(sess, StateWatching, 0.4, GenuineGood, trend.Stable, now)
	if d.Level != LevelGentle {
		t.Errorf("3 failures in WATCHING: level = %s, want GENTLE", d.Level)
	}

	// Already at URGENT: the streak cannot push past the top.
	sess = testSession(StateProtective)
	sess.FailuresSinceLastMessage = 5
	d = sel.Select(sess, StateProtective, 0.9, GenuineGood, trend.Stable, now)
	if d.Level != LevelUrgent {
		t.Errorf("failures at URGENT: level = %s, want URGENT", d.Level)
	}
}

func TestSelectorCooldownIdempotence(t *testing.T) {
	now := time.Unix(5000, 0)
	sel := newSelector()

	// ACTIVE fires immediately, then suppresses within its window.
	sess := testSession(StateProtective)
	first := sel.Select(sess, StateProtective, 0.7, ConfirmedBurnout, trend.Stable, now)
	second := sel.Select(sess, StateProtective, 0.7, ConfirmedBurnout, trend.Stable, now.Add(30*time.Second))

	if first.Level != second.Level {
		t.Errorf("levels differ across cooldown window: %s then %s", first.Level, second.Level)
	}
	if first.Message == "" {
		t.Error("first ACTIVE selection should carry a message")
	}
	if second.Message != "" || !second.Suppressed {
		t.Errorf("second selection within 2m should be suppressed, got message %q", second.Message)
	}
	if !strings.Contains(second.Reason, "cooldown") {
		t.Errorf("suppression reason should name the cooldown, got %q", second.Reason)
	}

	// After the window the message flows again.
	third := sel.Select(sess, StateProtective, 0.7, ConfirmedBurnout, trend.Stable, now.Add(3*time.Minute))
	if third.Message == "" || third.Suppressed {
		t.Error("selection after cooldown should carry a message")
	}
}

func TestSelectorMonitorQuietAfterTransition(t *testing.T) {
	// MONITOR stays quiet for its full interval after entering a state:
	// the transition itself is already surfaced, chatter on top of it
	// is noise. A message is permitted once 10 minutes pass.
	entered := time.Unix(5000, 0)
	sel := newSelector()
	sess := testSession(StateWatching)
	sess.StateEnteredAt = entered

	early := sel.Select(sess, StateWatching, 0.4, GenuineGood, trend.Stable, entered.Add(10*time.Second))
	if early.Level != LevelMonitor {
		t.Fatalf("level = %s, want MONITOR", early.Level)
	}
	if early.Message != "" || !early.Suppressed {
		t.Errorf("MONITOR right after transition should be suppressed, got %q", early.Message)
	}

	late := sel.Select(sess, StateWatching, 0.4, GenuineGood, trend.Stable, entered.Add(10*time.Minute+time.Second))
	if late.Message == "" || late.Suppressed {
		t.Error("MONITOR after 10 minutes of silence should message")
	}
}

func TestSelectorUrgentHasNoCooldown(t *testing.T) {
	now := time.Unix(5000, 0)
	sel := newSelector()
	sess := testSession(StateProtective)

	for i := 0; i < 3; i++ {
		d := sel.Select(sess, StateProtective, 0.9, ConfirmedBurnout, trend.Stable, now.Add(time.Duration(i)*time.Second))
		if d.Level != LevelUrgent {
			t.Fatalf("call %d: level = %s, want URGENT", i, d.Level)
		}
		if d.Message == "" || d.Suppressed {
			t.Errorf("call %d: URGENT must always fire", i)
		}
	}
}

func TestResponseBankFallback(t *testing.T) {
	bank := NewResponseBank(0)

	// Alignment templates take priority.
	msg := bank.Pick(StateWarning, Masking, trend.Stable, 0)
	if msg == "" {
		t.Fatal("empty message for masking alignment")
	}

	// Unkeyed combination falls back to a non-empty generic.
	msg = bank.Pick(StateNormal, GenuineGood, trend.Stable, 0)
	if msg == "" {
		t.Fatal("bank must always return a non-empty message")
	}

	// Variants rotate.
	a := bank.Pick(StateRecovery, GenuineGood, trend.Stable, 0)
	b := bank.Pick(StateRecovery, GenuineGood, trend.Stable, 1)
	if a == b {
		t.Error("consecutive variants should differ for multi-template sets")
	}
}
