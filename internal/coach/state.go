package coach

import "fmt"

// State is a phase of the coaching state machine.
//
// NORMAL, WATCHING, WARNING and PROTECTIVE form an escalation ladder
// ordered by severity. RECOVERY is a de-escalating phase entered from
// PROTECTIVE; it is not on the ladder and is tracked separately.
type State int

const (
	StateNormal State = iota
	StateWatching
	StateWarning
	StateProtective
	StateRecovery
)

var stateNames = map[State]string{
	StateNormal:     "NORMAL",
	StateWatching:   "WATCHING",
	StateWarning:    "WARNING",
	StateProtective: "PROTECTIVE",
	StateRecovery:   "RECOVERY",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Severity returns the integer escalation rank of a ladder state.
// All escalation comparisons go through this rank; comparing the
// symbolic names would invert WARNING and WATCHING ("warning" sorts
// before "watching").
func (s State) Severity() int {
	switch s {
	case StateNormal:
		return 0
	case StateWatching:
		return 1
	case StateWarning:
		return 2
	case StateProtective:
		return 3
	case StateRecovery:
		// RECOVERY ranks like WATCHING for escalation purposes: a
		// re-spike climbs back onto the ladder from there.
		return 1
	}
	return 0
}

// Valid reports whether s is a defined state.
func (s State) Valid() bool {
	_, ok := stateNames[s]
	return ok
}

// ParseState converts a persisted state name back to a State.
func ParseState(name string) (State, error) {
	for s, n := range stateNames {
		if n == name {
			return s, nil
		}
	}
	return StateNormal, fmt.Errorf("unknown coach state %q", name)
}

// MarshalText persists the symbolic name, not the integer rank, so the
// stored shape stays readable and rank renumbering cannot corrupt old
// sessions.
func (s State) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("cannot marshal invalid state %d", int(s))
	}
	return []byte(s.String()), nil
}

func (s *State) UnmarshalText(text []byte) error {
	parsed, err := ParseState(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
