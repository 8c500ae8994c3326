package render

import "testing"

func TestRampGlyph(t *testing.T) {
	ramp := MustRamp(DefaultRamp)

	tests := []struct {
		name      string
		intensity float64
		want      rune
	}{
		{"full brightness", 1.0, '@'},
		{"zero", 0.0, ' '},
		{"ambient floor", 0.1, '.'},
		{"mid", 0.5, '+'},
		{"above one clamps", 2.0, '@'},
		{"negative clamps", -0.5, ' '},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ramp.Glyph(tt.intensity); got != tt.want {
				t.Errorf("Glyph(%v) = %q, want %q", tt.intensity, got, tt.want)
			}
		})
	}
}

func TestRampRounding(t *testing.T) {
	// Two glyphs split the range at 0.5, with the midpoint rounding up.
	ramp := MustRamp(" @")

	if got := ramp.Glyph(0.49); got != ' ' {
		t.Errorf("Glyph(0.49) = %q, want ' '", got)
	}
	if got := ramp.Glyph(0.5); got != '@' {
		t.Errorf("Glyph(0.5) = %q, want '@'", got)
	}
}

func TestRampEnds(t *testing.T) {
	ramp := MustRamp(DefaultRamp)
	if ramp.Darkest() != ' ' {
		t.Errorf("Darkest = %q", ramp.Darkest())
	}
	if ramp.Brightest() != '@' {
		t.Errorf("Brightest = %q", ramp.Brightest())
	}
}

func TestNewRampTooShort(t *testing.T) {
	for _, s := range []string{"", "@"} {
		if _, err := NewRamp(s); err == nil {
			t.Errorf("NewRamp(%q) succeeded, want error", s)
		}
	}
}
