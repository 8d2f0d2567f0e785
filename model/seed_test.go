package model

import (
	"slices"
	"testing"

	"github.com/sheikhrachel/game-of-colors/rules"
)

func TestSeedColorsDeterministic(t *testing.T) {
	a, err := SeedColors(20, 10, SeedUniform, 0, NewRNG(42))
	if err != nil {
		t.Fatalf("SeedColors() failed: %v", err)
	}
	b, _ := SeedColors(20, 10, SeedUniform, 0, NewRNG(42))
	if !slices.Equal(a, b) {
		t.Fatal("same seed produced different generations")
	}

	c, _ := SeedColors(20, 10, SeedUniform, 0, NewRNG(43))
	if slices.Equal(a, c) {
		t.Error("different seeds produced identical generations")
	}

	// 200 uniform draws over five colors should hit every color.
	pop := rules.CountColors(a)
	for color := range rules.NumColors {
		if pop[color] == 0 {
			t.Errorf("uniform seed never drew %v", rules.Color(color))
		}
	}
}

func TestSeedColorsStrategies(t *testing.T) {
	empty, err := SeedColors(6, 6, SeedEmpty, 0.5, NewRNG(1))
	if err != nil {
		t.Fatalf("SeedColors(empty) failed: %v", err)
	}
	if pop := rules.CountColors(empty); pop[rules.Empty] != 36 {
		t.Errorf("empty strategy produced %v", pop)
	}

	none, _ := SeedColors(6, 6, SeedSparse, 0, NewRNG(1))
	if pop := rules.CountColors(none); pop[rules.Empty] != 36 {
		t.Errorf("sparse strategy at density 0 produced %v", pop)
	}

	if _, err := SeedColors(6, 6, SeedSparse, 1.5, NewRNG(1)); err == nil {
		t.Error("expected error for density 1.5")
	}
	if _, err := SeedColors(6, 6, SeedStrategy("gliders"), 0, NewRNG(1)); err == nil {
		t.Error("expected error for unknown strategy")
	}
	if _, err := SeedColors(0, 6, SeedUniform, 0, NewRNG(1)); err == nil {
		t.Error("expected error for zero width")
	}
}

func TestParseSeedStrategy(t *testing.T) {
	tests := map[string]SeedStrategy{
		"uniform": SeedUniform,
		"Sparse":  SeedSparse,
		" empty ": SeedEmpty,
		"":        SeedUniform,
	}
	for in, want := range tests {
		got, err := ParseSeedStrategy(in)
		if err != nil {
			t.Fatalf("ParseSeedStrategy(%q) failed: %v", in, err)
		}
		if got != want {
			t.Errorf("ParseSeedStrategy(%q) = %q, want %q", in, got, want)
		}
	}
	if _, err := ParseSeedStrategy("random"); err == nil {
		t.Error("expected error for unknown strategy")
	}
}

func TestWrapModeText(t *testing.T) {
	var m WrapMode
	if err := m.UnmarshalText([]byte("clipped")); err != nil {
		t.Fatalf("UnmarshalText() failed: %v", err)
	}
	if m != Clipped {
		t.Errorf("expected Clipped, got %v", m)
	}

	text, err := Toroidal.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() failed: %v", err)
	}
	if string(text) != "toroidal" {
		t.Errorf("expected \"toroidal\", got %q", text)
	}

	if err := m.UnmarshalText([]byte("spherical")); err == nil {
		t.Error("expected error for unknown wrap mode")
	}
	if _, err := WrapMode(9).MarshalText(); err == nil {
		t.Error("expected error marshalling unknown wrap mode")
	}
}
