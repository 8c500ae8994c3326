package render

import "testing"

func TestNewFrameBufferStartsBlank(t *testing.T) {
	fb := NewFrameBuffer(8, 4)

	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			if g := fb.GlyphAt(x, y); g != Blank {
				t.Errorf("glyph at (%d,%d) = %q, want blank", x, y, g)
			}
			if d := fb.DepthAt(x, y); d != 0 {
				t.Errorf("depth at (%d,%d) = %v, want 0", x, y, d)
			}
		}
	}
}

func TestSetCellAndClear(t *testing.T) {
	fb := NewFrameBuffer(8, 4)
	fb.SetCell(3, 2, '@', 0.5)

	if g := fb.GlyphAt(3, 2); g != '@' {
		t.Errorf("glyph = %q, want '@'", g)
	}
	if d := fb.DepthAt(3, 2); d != 0.5 {
		t.Errorf("depth = %v, want 0.5", d)
	}

	fb.Clear()
	if g := fb.GlyphAt(3, 2); g != Blank {
		t.Errorf("glyph after clear = %q, want blank", g)
	}
	if d := fb.DepthAt(3, 2); d != 0 {
		t.Errorf("depth after clear = %v, want 0", d)
	}
}

func TestSetCellOutOfBounds(t *testing.T) {
	fb := NewFrameBuffer(4, 4)

	// None of these should panic or affect the grid.
	fb.SetCell(-1, 0, '@', 1)
	fb.SetCell(0, -1, '@', 1)
	fb.SetCell(4, 0, '@', 1)
	fb.SetCell(0, 4, '@', 1)

	if s := fb.String(); s != "    \n    \n    \n    \n" {
		t.Errorf("grid modified by out-of-bounds writes:\n%q", s)
	}
}

func TestGlyphAtOutOfBounds(t *testing.T) {
	fb := NewFrameBuffer(4, 4)
	if g := fb.GlyphAt(-1, 10); g != Blank {
		t.Errorf("out-of-bounds glyph = %q, want blank", g)
	}
	if d := fb.DepthAt(99, 0); d != 0 {
		t.Errorf("out-of-bounds depth = %v, want 0", d)
	}
}

func TestRow(t *testing.T) {
	fb := NewFrameBuffer(3, 2)
	fb.SetCell(0, 1, '#', 1)
	fb.SetCell(2, 1, '.', 1)

	if row := fb.Row(0); row != "   " {
		t.Errorf("row 0 = %q", row)
	}
	if row := fb.Row(1); row != "# ." {
		t.Errorf("row 1 = %q", row)
	}
}

func TestRows(t *testing.T) {
	fb := NewFrameBuffer(3, 2)
	fb.SetCell(1, 0, '@', 1)

	rows := fb.Rows()
	if len(rows) != 2 {
		t.Fatalf("len(Rows()) = %d, want 2", len(rows))
	}
	if rows[0] != " @ " || rows[1] != "   " {
		t.Errorf("Rows() = %q", rows)
	}
}
