package coach

import (
	"fmt"
	"time"
)

// Transition records one state change and the condition that fired it.
type Transition struct {
	From   State     `json:"from"`
	To     State     `json:"to"`
	Reason string    `json:"reason"`
	Score  float64   `json:"score"`
	At     time.Time `json:"at"`
}

// Machine applies the transition rules to a session. It is stateless;
// the current state, the hysteresis counter, and the entry timestamp
// all live on the session.
//
// Escalation is immediate: crossing the next-higher threshold moves up
// one step with no delay, on every observation. De-escalation requires
// the score to hold below the relevant threshold for HysteresisWindow
// consecutive observations. Over-reacting to rising burnout is safer
// than under-reacting.
type Machine struct {
	cfg Config
}

// NewMachine creates a Machine.
func NewMachine(cfg Config) *Machine {
	return &Machine{cfg: cfg}
}

// Step advances the session's state for one observed score. Returns the
// transition that occurred, or nil when the state held. At most one
// step per observation, in either direction.
func (m *Machine) Step(sess *Session, score float64, now time.Time) *Transition {
	from := sess.CurrentState

	if to, reason := m.escalation(from, score); to != from {
		sess.BelowStreak = 0
		return m.apply(sess, from, to, reason, score, now)
	}

	to, reason := m.deescalation(sess, from, score)
	if to == from {
		return nil
	}
	sess.BelowStreak = 0
	return m.apply(sess, from, to, reason, score, now)
}

func (m *Machine) apply(sess *Session, from, to State, reason string, score float64, now time.Time) *Transition {
	sess.CurrentState = to
	sess.StateEnteredAt = now
	return &Transition{From: from, To: to, Reason: reason, Score: score, At: now}
}

func (m *Machine) escalation(from State, score float64) (State, string) {
	switch from {
	case StateNormal:
		if score > m.cfg.WatchingScore {
			return StateWatching, crossed(score, m.cfg.WatchingScore, StateWatching)
		}
	case StateWatching:
		if score > m.cfg.WarningScore {
			return StateWarning, crossed(score, m.cfg.WarningScore, StateWarning)
		}
	case StateWarning:
		if score > m.cfg.ProtectiveScore {
			return StateProtective, crossed(score, m.cfg.ProtectiveScore, StateProtective)
		}
	case StateRecovery:
		// A re-spike before full recovery climbs back onto the ladder.
		switch {
		case score > m.cfg.WarningScore:
			return StateWarning, fmt.Sprintf("score %.2f re-spiked above %.2f during recovery", score, m.cfg.WarningScore)
		case score > m.cfg.WatchingScore:
			return StateWatching, fmt.Sprintf("score %.2f re-spiked above %.2f during recovery", score, m.cfg.WatchingScore)
		}
	}
	return from, ""
}

func (m *Machine) deescalation(sess *Session, from State, score float64) (State, string) {
	switch from {
	case StateRecovery:
		// Immediate: recovery already is the hysteresis phase.
		if score < m.cfg.RecoveryExitScore {
			return StateNormal, fmt.Sprintf("score %.2f dropped below %.2f, recovery complete", score, m.cfg.RecoveryExitScore)
		}
		return from, ""
	case StateProtective:
		return m.sustained(sess, from, score, m.cfg.RecoveryEntryScore, StateRecovery)
	case StateWarning:
		return m.sustained(sess, from, score, m.cfg.WarningScore, StateWatching)
	case StateWatching:
		return m.sustained(sess, from, score, m.cfg.WatchingScore, StateNormal)
	}
	return from, ""
}

// sustained counts consecutive observations below threshold and steps
// down only once the hysteresis window fills. A single dip does not
// transition.
func (m *Machine) sustained(sess *Session, from State, score, threshold float64, to State) (State, string) {
	if score >= threshold {
		sess.BelowStreak = 0
		return from, ""
	}
	sess.BelowStreak++
	if sess.BelowStreak < m.cfg.HysteresisWindow {
		return from, ""
	}
	return to, fmt.Sprintf("score held below %.2f for %d observations", threshold, sess.BelowStreak)
}

func crossed(score, threshold float64, to State) string {
	return fmt.Sprintf("score %.2f crossed the %s threshold %.2f", score, to, threshold)
}
