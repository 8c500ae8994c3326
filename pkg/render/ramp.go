package render

import (
	"fmt"
	"math"
)

// DefaultRamp orders glyphs from sparse/dark to dense/bright.
const DefaultRamp = " .:-=+*#%@"

// Ramp maps a brightness intensity in [0, 1] to one glyph from a fixed
// ordered character ramp.
type Ramp struct {
	glyphs []rune
}

// NewRamp creates a ramp from an ordered glyph string.
func NewRamp(glyphs string) (*Ramp, error) {
	r := []rune(glyphs)
	if len(r) < 2 {
		return nil, fmt.Errorf("ramp needs at least 2 glyphs, got %d", len(r))
	}
	return &Ramp{glyphs: r}, nil
}

// MustRamp is NewRamp for compile-time-constant ramps.
func MustRamp(glyphs string) *Ramp {
	r, err := NewRamp(glyphs)
	if err != nil {
		panic(err)
	}
	return r
}

// Glyph maps intensity linearly onto the ramp: round(intensity·(n-1)),
// clamped to valid index bounds.
func (r *Ramp) Glyph(intensity float64) rune {
	idx := int(math.Round(intensity * float64(len(r.glyphs)-1)))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(r.glyphs) {
		idx = len(r.glyphs) - 1
	}
	return r.glyphs[idx]
}

// Brightest returns the last glyph of the ramp.
func (r *Ramp) Brightest() rune {
	return r.glyphs[len(r.glyphs)-1]
}

// Darkest returns the first glyph of the ramp.
func (r *Ramp) Darkest() rune {
	return r.glyphs[0]
}

// Glyphs returns the ramp characters in order.
func (r *Ramp) Glyphs() []rune {
	out := make([]rune, len(r.glyphs))
	copy(out, r.glyphs)
	return out
}
