package rules

import (
	"errors"
	"testing"
)

func counts(r, g, b, w, e int) Counts {
	var c Counts
	c[Red], c[Green], c[Blue], c[White], c[Empty] = r, g, b, w, e
	return c
}

func TestStepTable(t *testing.T) {
	engine := DefaultEngine()

	tests := []struct {
		name    string
		current Color
		counts  Counts
		want    Color
	}{
		{"empty single producer", Empty, counts(3, 0, 0, 0, 5), Red},
		{"empty two producers cancel", Empty, counts(3, 3, 0, 0, 2), Empty},
		{"empty producers cancel with blue below threshold", Empty, counts(3, 3, 2, 0, 0), Empty},
		{"empty green producer with noise", Empty, counts(1, 3, 2, 2, 0), Green},
		{"empty blue producer", Empty, counts(0, 0, 3, 5, 0), Blue},
		{"empty no producer", Empty, counts(2, 4, 2, 0, 0), Empty},
		{"empty white neighbors never produce", Empty, counts(0, 0, 0, 3, 5), Empty},

		{"white full pressure", White, counts(1, 1, 1, 0, 5), White},
		{"white dominant red", White, counts(5, 0, 0, 0, 3), Red},
		{"white dominant blue", White, counts(1, 0, 4, 0, 3), Blue},
		{"white tie prefers red", White, counts(2, 2, 0, 0, 4), Red},
		{"white tie prefers green over blue", White, counts(0, 3, 3, 0, 2), Green},
		{"white no chromatic", White, counts(0, 0, 0, 8, 0), Empty},

		{"red blend", Red, counts(0, 1, 1, 0, 6), White},
		{"red blend despite survival", Red, counts(2, 1, 1, 0, 4), White},
		{"red survives on 2 over green spread", Red, counts(2, 3, 0, 0, 3), Red},
		{"red survives on 3", Red, counts(3, 0, 0, 0, 5), Red},
		{"red dies alone", Red, counts(1, 0, 0, 0, 7), Empty},
		{"red overcrowded", Red, counts(4, 0, 0, 0, 4), Empty},
		{"red taken by green", Red, counts(0, 3, 0, 0, 5), Green},
		{"red taken by blue", Red, counts(1, 0, 3, 0, 4), Blue},

		{"green blend", Green, counts(1, 0, 1, 0, 6), White},
		{"green taken by red", Green, counts(3, 0, 0, 0, 5), Red},
		{"green survives", Green, counts(0, 2, 3, 0, 3), Green},

		{"blue blend", Blue, counts(2, 2, 0, 0, 4), White},
		{"blue taken by green", Blue, counts(0, 3, 0, 0, 5), Green},
		{"blue survives", Blue, counts(3, 0, 3, 0, 2), Blue},

		{"invalid current color", Color(42), counts(3, 0, 0, 0, 5), Empty},
	}

	for _, tc := range tests {
		if got := engine.Step(tc.current, tc.counts); got != tc.want {
			t.Errorf("%s: Step(%v, %v) = %v, want %v", tc.name, tc.current, tc.counts, got, tc.want)
		}
	}
}

// With a positive threshold two spreading colors always blend to White, so the
// last-match spread order is only observable with a zero threshold.
func TestChromaticSpreadLastMatchWins(t *testing.T) {
	engine, err := NewEngine(0, []int{5})
	if err != nil {
		t.Fatalf("NewEngine() failed: %v", err)
	}

	// Both others have count 0 == threshold; no blend since neither is present.
	if got := engine.Step(Red, counts(1, 0, 0, 0, 7)); got != Blue {
		t.Errorf("red: expected last scanned color Blue, got %v", got)
	}
	if got := engine.Step(Green, counts(0, 1, 0, 0, 7)); got != Blue {
		t.Errorf("green: expected last scanned color Blue, got %v", got)
	}
	if got := engine.Step(Blue, counts(0, 0, 1, 0, 7)); got != Red {
		t.Errorf("blue: expected last scanned color Red, got %v", got)
	}

	// Empty requires exactly one candidate, so three zero counts cancel.
	if got := engine.Step(Empty, counts(0, 0, 0, 0, 8)); got != Empty {
		t.Errorf("empty: expected Empty with three candidates, got %v", got)
	}
}

func TestStepTotality(t *testing.T) {
	engine := DefaultEngine()
	colors := []Color{Empty, Red, Green, Blue, White}

	var c Counts
	var visit func(i, remaining int)
	checked := 0
	visit = func(i, remaining int) {
		if i == NumColors {
			for _, cur := range colors {
				if next := engine.Step(cur, c); !next.Valid() {
					t.Fatalf("Step(%v, %v) returned invalid color %d", cur, c, next)
				}
				checked++
			}
			return
		}
		for n := 0; n <= remaining; n++ {
			c[i] = n
			visit(i+1, remaining-n)
		}
		c[i] = 0
	}
	visit(0, 8)

	if checked == 0 {
		t.Fatal("no count combinations checked")
	}
}

func TestNewEngineValidation(t *testing.T) {
	if _, err := NewEngine(9, DefaultSurvivalCounts()); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter for threshold 9, got %v", err)
	}
	if _, err := NewEngine(3, []int{2, -1}); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter for survival -1, got %v", err)
	}

	engine, err := NewEngine(2, []int{1})
	if err != nil {
		t.Fatalf("NewEngine() failed: %v", err)
	}
	if got := engine.Step(Empty, counts(2, 0, 0, 0, 6)); got != Red {
		t.Errorf("custom threshold: expected Red, got %v", got)
	}
	if got := engine.Step(Red, counts(1, 0, 0, 0, 7)); got != Red {
		t.Errorf("custom survival: expected Red, got %v", got)
	}
	if got := engine.Step(Red, counts(2, 0, 0, 0, 6)); got != Empty {
		t.Errorf("custom survival: expected Empty, got %v", got)
	}
}

func TestParseColor(t *testing.T) {
	for _, c := range []Color{Empty, Red, Green, Blue, White} {
		parsed, err := ParseColor(c.String())
		if err != nil {
			t.Fatalf("ParseColor(%q) failed: %v", c.String(), err)
		}
		if parsed != c {
			t.Errorf("ParseColor(%q) = %v, want %v", c.String(), parsed, c)
		}
	}
	if _, err := ParseColor("purple"); err == nil {
		t.Error("expected error for unknown color")
	}
	if Color(7).Valid() {
		t.Error("Color(7) should be invalid")
	}
}

func TestCountColors(t *testing.T) {
	c := CountColors([]Color{Red, Red, Blue, Empty, White, Color(9)})
	if c[Red] != 2 || c[Blue] != 1 || c[Empty] != 1 || c[White] != 1 || c[Green] != 0 {
		t.Errorf("unexpected counts %v", c)
	}
	if c.Total() != 5 {
		t.Errorf("expected total 5, got %d", c.Total())
	}
}
