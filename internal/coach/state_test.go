package coach

import "testing"

func TestSeverityOrdering(t *testing.T) {
	// "warning" sorts before "watching" alphabetically; the rank must
	// not.
	if !(StateNormal.Severity() < StateWatching.Severity() &&
		StateWatching.Severity() < StateWarning.Severity() &&
		StateWarning.Severity() < StateProtective.Severity()) {
		t.Fatal("ladder severity ranks are not strictly increasing")
	}
	if StateWarning.Severity() <= StateWatching.Severity() {
		t.Error("WARNING must outrank WATCHING")
	}
	if StateWarning.String() > StateWatching.String() {
		// Sanity check that the string comparison really does invert:
		// if it didn't, this test would not be guarding anything.
		t.Error("expected WARNING < WATCHING lexicographically")
	}
}

func TestStateParseRoundTrip(t *testing.T) {
	for _, s := range []State{StateNormal, StateWatching, StateWarning, StateProtective, StateRecovery} {
		parsed, err := ParseState(s.String())
		if err != nil {
			t.Fatalf("ParseState(%s): %v", s, err)
		}
		if parsed != s {
			t.Errorf("ParseState(%s) = %s", s, parsed)
		}
	}
	if _, err := ParseState("TILTED"); err == nil {
		t.Error("expected error for unknown state name")
	}
}

func TestLevelOrdering(t *testing.T) {
	levels := []Level{LevelNone, LevelMonitor, LevelGentle, LevelActive, LevelUrgent}
	for i := 1; i < len(levels); i++ {
		if levels[i].Rank() <= levels[i-1].Rank() {
			t.Errorf("%s must outrank %s", levels[i], levels[i-1])
		}
	}
}

func TestLevelParseRoundTrip(t *testing.T) {
	for _, l := range []Level{LevelNone, LevelMonitor, LevelGentle, LevelActive, LevelUrgent} {
		parsed, err := ParseLevel(l.String())
		if err != nil {
			t.Fatalf("ParseLevel(%s): %v", l, err)
		}
		if parsed != l {
			t.Errorf("ParseLevel(%s) = %s", l, parsed)
		}
	}
}
