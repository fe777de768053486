package coach

import (
	"testing"
	"time"
)

func testSession(state State) *Session {
	sess := NewSession("tester", time.Unix(1000, 0))
	sess.CurrentState = state
	return sess
}

func TestMachineEscalation(t *testing.T) {
	tests := []struct {
		name  string
		from  State
		score float64
		want  State
	}{
		{"normal holds below threshold", StateNormal, 0.30, StateNormal},
		{"normal to watching", StateNormal, 0.31, StateWatching},
		{"watching to warning", StateWatching, 0.51, StateWarning},
		{"warning to protective", StateWarning, 0.66, StateProtective},
		{"one step only", StateNormal, 0.95, StateWatching},
		{"recovery respike to watching", StateRecovery, 0.35, StateWatching},
		{"recovery respike to warning", StateRecovery, 0.55, StateWarning},
	}

	m := NewMachine(DefaultConfig())
	now := time.Unix(2000, 0)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := testSession(tt.from)
			tr := m.Step(sess, tt.score, now)
			if sess.CurrentState != tt.want {
				t.Fatalf("state = %s, want %s", sess.CurrentState, tt.want)
			}
			if tt.from != tt.want {
				if tr == nil {
					t.Fatal("expected a transition record")
				}
				if tr.Reason == "" {
					t.Error("transition must report a trigger reason")
				}
				if sess.StateEnteredAt != now {
					t.Error("StateEnteredAt not stamped on transition")
				}
			} else if tr != nil {
				t.Errorf("unexpected transition %s -> %s", tr.From, tr.To)
			}
		})
	}
}

func TestMachineHysteresis(t *testing.T) {
	m := NewMachine(DefaultConfig())
	sess := testSession(StateProtective)
	now := time.Unix(2000, 0)

	// Two dips, an interruption, then three sustained dips.
	for i, step := range []struct {
		score float64
		want  State
	}{
		{0.35, StateProtective}, // dip 1
		{0.38, StateProtective}, // dip 2
		{0.45, StateProtective}, // back above threshold, streak resets
		{0.35, StateProtective}, // dip 1 again
		{0.30, StateProtective}, // dip 2
		{0.32, StateRecovery},   // dip 3: sustained, transition fires
	} {
		m.Step(sess, step.score, now.Add(time.Duration(i)*time.Minute))
		if sess.CurrentState != step.want {
			t.Fatalf("step %d (score %.2f): state = %s, want %s",
				i, step.score, sess.CurrentState, step.want)
		}
	}
}

func TestMachineSingleDipDoesNotTransition(t *testing.T) {
	m := NewMachine(DefaultConfig())
	sess := testSession(StateProtective)
	now := time.Unix(2000, 0)

	m.Step(sess, 0.39, now)
	if sess.CurrentState != StateProtective {
		t.Fatalf("single dip below 0.40 transitioned to %s", sess.CurrentState)
	}
}

func TestMachineRecoveryToNormal(t *testing.T) {
	m := NewMachine(DefaultConfig())
	sess := testSession(StateRecovery)
	now := time.Unix(2000, 0)

	m.Step(sess, 0.26, now)
	if sess.CurrentState != StateRecovery {
		t.Fatalf("score 0.26 should hold RECOVERY, got %s", sess.CurrentState)
	}
	tr := m.Step(sess, 0.24, now.Add(time.Minute))
	if sess.CurrentState != StateNormal {
		t.Fatalf("score 0.24 should complete recovery, got %s", sess.CurrentState)
	}
	if tr == nil || tr.From != StateRecovery || tr.To != StateNormal {
		t.Fatalf("unexpected transition record %+v", tr)
	}
}

func TestMachineFullCycle(t *testing.T) {
	m := NewMachine(DefaultConfig())
	sess := testSession(StateNormal)
	now := time.Unix(2000, 0)
	step := func(i int, score float64) {
		m.Step(sess, score, now.Add(time.Duration(i)*time.Minute))
	}

	scores := []float64{0.35, 0.55, 0.70} // climb the ladder
	for i, s := range scores {
		step(i, s)
	}
	if sess.CurrentState != StateProtective {
		t.Fatalf("after climb: state = %s, want PROTECTIVE", sess.CurrentState)
	}

	for i := 0; i < 3; i++ { // sustained cooldown
		step(10+i, 0.35)
	}
	if sess.CurrentState != StateRecovery {
		t.Fatalf("after sustained dips: state = %s, want RECOVERY", sess.CurrentState)
	}

	step(20, 0.20)
	if sess.CurrentState != StateNormal {
		t.Fatalf("after recovery: state = %s, want NORMAL", sess.CurrentState)
	}
}
