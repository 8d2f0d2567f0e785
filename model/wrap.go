package model

import (
	"strings"

	"github.com/pkg/errors"
)

// WrapMode selects how neighbor lookups treat the grid edges
type WrapMode uint8

const (
	// Toroidal connects each edge to the opposite one
	Toroidal WrapMode = iota
	// Clipped omits neighbors that fall outside the grid
	Clipped
)

// Valid reports whether m is a known wrap mode
func (m WrapMode) Valid() bool {
	return m == Toroidal || m == Clipped
}

func (m WrapMode) String() string {
	switch m {
	case Toroidal:
		return "toroidal"
	case Clipped:
		return "clipped"
	}
	return "unknown"
}

// ParseWrapMode accepts "toroidal" (or "wrap", "torus") and "clipped" (or "clip")
func ParseWrapMode(s string) (WrapMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "toroidal", "torus", "wrap", "":
		return Toroidal, nil
	case "clipped", "clip":
		return Clipped, nil
	}
	return Toroidal, errors.Errorf("[ParseWrapMode] unknown wrap mode: %q", s)
}

// MarshalText implements encoding.TextMarshaler
func (m WrapMode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, errors.Errorf("[MarshalText] unknown wrap mode: %d", m)
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (m *WrapMode) UnmarshalText(text []byte) error {
	parsed, err := ParseWrapMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
