package signal

import (
	"errors"
	"testing"
	"time"
)

func TestLookup_AllKindsHaveAuthoritativeWeights(t *testing.T) {
	want := map[Kind]float64{
		RapidWABurst:        0.8,
		GhostLossStreak:     0.7,
		HintAbuse:           0.6,
		SilenceAfterFailure: 0.6,
		SkipStreak:          0.5,
		NegativeSentiment:   0.5,
		LongIdle:            0.4,
		ExcessiveTabSwitch:  0.3,
		SuccessfulSolve:     -0.3,
		GhostWin:            -0.2,
		PositiveSentiment:   -0.2,
		ReturningAfterBreak: -0.15,
	}
	for kind, weight := range want {
		def, err := Lookup(kind)
		if err != nil {
			t.Fatalf("Lookup(%s) error: %v", kind, err)
		}
		if def.Weight != weight {
			t.Errorf("Lookup(%s).Weight = %v, want %v", kind, def.Weight, weight)
		}
		if def.Description == "" {
			t.Errorf("Lookup(%s) has empty description", kind)
		}
	}
	if len(want) != len(AllKinds()) {
		t.Errorf("vocabulary size = %d, want %d", len(AllKinds()), len(want))
	}
}

func TestLookup_UnknownKind(t *testing.T) {
	_, err := Lookup("NOT_A_REAL_KIND")
	var invalid *ErrInvalidKind
	if !errors.As(err, &invalid) {
		t.Fatalf("Lookup(unknown) error = %v, want *ErrInvalidKind", err)
	}
	if invalid.Kind != "NOT_A_REAL_KIND" {
		t.Errorf("ErrInvalidKind.Kind = %q", invalid.Kind)
	}
}

func TestNew_DefaultsValueToOne(t *testing.T) {
	sig, err := New(SuccessfulSolve, 0, time.Now(), nil)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if sig.Value != 1 {
		t.Errorf("Value = %v, want 1", sig.Value)
	}
}

func TestNew_RejectsUnknownKind(t *testing.T) {
	_, err := New("CODE_PASTE", 1, time.Now(), nil)
	var invalid *ErrInvalidKind
	if !errors.As(err, &invalid) {
		t.Fatalf("New(unknown kind) error = %v, want *ErrInvalidKind", err)
	}
}

func TestWeight_ScalesByValue(t *testing.T) {
	sig, err := New(LongIdle, 2, time.Now(), nil)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if got := sig.Weight(); got != 0.8 {
		t.Errorf("Weight = %v, want 0.8", got)
	}
}

func TestAllKinds_OrderedByDescendingWeight(t *testing.T) {
	kinds := AllKinds()
	for i := 1; i < len(kinds); i++ {
		prev, _ := Lookup(kinds[i-1])
		cur, _ := Lookup(kinds[i])
		if cur.Weight > prev.Weight {
			t.Errorf("AllKinds out of order: %s (%v) before %s (%v)",
				kinds[i-1], prev.Weight, kinds[i], cur.Weight)
		}
		if cur.Weight == prev.Weight && kinds[i] < kinds[i-1] {
			t.Errorf("equal-weight kinds not alphabetical: %s before %s",
				kinds[i-1], kinds[i])
		}
	}
}
