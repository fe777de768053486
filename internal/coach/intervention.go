package coach

import (
	"fmt"
	"time"

	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/internal/trend"
)

// Level is the severity of a coaching action, totally ordered by rank.
// Comparisons always use the integer rank; the symbolic names do not
// sort in severity order.
type Level int

const (
	LevelNone Level = iota
	LevelMonitor
	LevelGentle
	LevelActive
	LevelUrgent
)

var levelNames = map[Level]string{
	LevelNone:    "NONE",
	LevelMonitor: "MONITOR",
	LevelGentle:  "GENTLE",
	LevelActive:  "ACTIVE",
	LevelUrgent:  "URGENT",
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// Rank returns the integer severity rank.
func (l Level) Rank() int { return int(l) }

// Valid reports whether l is a defined level.
func (l Level) Valid() bool {
	_, ok := levelNames[l]
	return ok
}

// ParseLevel converts a persisted level name back to a Level.
func ParseLevel(name string) (Level, error) {
	for l, n := range levelNames {
		if n == name {
			return l, nil
		}
	}
	return LevelNone, fmt.Errorf("unknown intervention level %q", name)
}

func (l Level) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("cannot marshal invalid level %d", int(l))
	}
	return []byte(l.String()), nil
}

func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// Decision is the outcome of intervention selection. A suppressed
// decision still carries the computed level (the UI burnout bar needs
// it); only the message is withheld. Suppression is an expected
// outcome, never an error.
type Decision struct {
	Level      Level
	Message    string
	Suppressed bool
	Reason     string
}

// Selector maps (state, score, alignment, streaks) to an intervention
// decision, enforcing per-level message cooldowns.
type Selector struct {
	cfg       Config
	responses *ResponseBank
}

// NewSelector creates a Selector using the given response bank.
func NewSelector(cfg Config, responses *ResponseBank) *Selector {
	if responses == nil {
		responses = NewResponseBank(0)
	}
	return &Selector{cfg: cfg, responses: responses}
}

// Select computes the intervention level and, cooldown permitting, a
// message. It records the emission time on the session when a message
// is produced.
func (s *Selector) Select(sess *Session, state State, score float64, align Alignment, dir trend.Direction, now time.Time) Decision {
	level, reason := s.level(sess, state, score, align)

	if level == LevelNone {
		return Decision{Level: LevelNone, Reason: reason}
	}

	if wait, ok := s.onCooldown(sess, level, now); ok {
		return Decision{
			Level:      level,
			Suppressed: true,
			Reason:     fmt.Sprintf("%s cooldown, %s remaining", level, wait.Round(time.Second)),
		}
	}

	msg := s.responses.Pick(state, align, dir, sess.MessageCountSession)
	sess.LastInterventionAt[level] = now
	return Decision{Level: level, Message: msg, Reason: reason}
}

// level applies the baseline state mapping, then the escalators, then
// the masking floor. All comparisons go through Level ranks.
func (s *Selector) level(sess *Session, state State, score float64, align Alignment) (Level, string) {
	var level Level
	var reason string

	switch state {
	case StateNormal:
		level, reason = LevelNone, "state NORMAL"
	case StateWatching:
		level, reason = LevelMonitor, "state WATCHING"
	case StateWarning:
		if score > s.cfg.WarningActiveScore {
			level, reason = LevelActive, fmt.Sprintf("state WARNING with score %.2f above %.2f", score, s.cfg.WarningActiveScore)
		} else {
			level, reason = LevelGentle, "state WARNING"
		}
	case StateProtective:
		switch {
		case align == Masking:
			level, reason = LevelUrgent, "state PROTECTIVE while masking"
		case score > s.cfg.ProtectiveUrgentScore:
			level, reason = LevelUrgent, fmt.Sprintf("state PROTECTIVE with score %.2f above %.2f", score, s.cfg.ProtectiveUrgentScore)
		default:
			level, reason = LevelActive, "state PROTECTIVE"
		}
	case StateRecovery:
		level, reason = LevelGentle, "state RECOVERY"
	}

	// Sustained failure without any message from the user escalates
	// one step.
	if s.cfg.FailureStreakEscalate > 0 &&
		sess.FailuresSinceLastMessage >= s.cfg.FailureStreakEscalate &&
		level.Rank() < LevelUrgent.Rank() {
		level = Level(level.Rank() + 1)
		reason = fmt.Sprintf("%s, escalated after %d consecutive failures", reason, sess.FailuresSinceLastMessage)
	}

	// Masking floors the level at ACTIVE regardless of the state
	// mapping. Reporting fine while behavior says otherwise is the
	// case the coach must never sit out.
	if align == Masking && level.Rank() < LevelActive.Rank() {
		level = LevelActive
		reason = "masking detected, forced to ACTIVE"
	}

	return level, reason
}

// onCooldown reports whether the level's message window is still
// closed, and how long remains. URGENT always fires. MONITOR and GENTLE
// additionally stay quiet for their full interval after a state
// change, so a fresh transition is not immediately followed by chatter.
func (s *Selector) onCooldown(sess *Session, level Level, now time.Time) (time.Duration, bool) {
	interval := s.interval(level)
	if interval <= 0 {
		return 0, false
	}

	last := sess.LastInterventionAt[level]
	if level.Rank() <= LevelGentle.Rank() && sess.StateEnteredAt.After(last) {
		last = sess.StateEnteredAt
	}
	if last.IsZero() {
		return 0, false
	}

	elapsed := now.Sub(last)
	if elapsed >= interval {
		return 0, false
	}
	return interval - elapsed, true
}

func (s *Selector) interval(level Level) time.Duration {
	switch level {
	case LevelMonitor:
		return s.cfg.MonitorCooldown
	case LevelGentle:
		return s.cfg.GentleCooldown
	case LevelActive:
		return s.cfg.ActiveCooldown
	default:
		return 0
	}
}
