package render

import (
	uv "github.com/charmbracelet/ultraviolet"
)

// TerminalRenderer presents framebuffer contents on a terminal. Cells are
// cached per glyph so the hot loop never allocates; a ramp produces a small
// fixed alphabet, so the cache stays tiny.
type TerminalRenderer struct {
	term   *uv.Terminal
	width  int
	height int
	cells  map[rune]*uv.Cell
}

// NewTerminalRenderer creates a renderer drawing to term. The cell cache is
// pre-warmed with every ramp glyph plus the blank cell.
func NewTerminalRenderer(term *uv.Terminal, width, height int, ramp *Ramp) *TerminalRenderer {
	tr := &TerminalRenderer{
		term:   term,
		width:  width,
		height: height,
		cells:  make(map[rune]*uv.Cell, len(ramp.Glyphs())+1),
	}
	for _, g := range ramp.Glyphs() {
		tr.cell(g)
	}
	tr.cell(Blank)
	return tr
}

// GridSize returns the terminal grid dimensions in cells.
func (tr *TerminalRenderer) GridSize() (width, height int) {
	return tr.width, tr.height
}

// cell returns the cached terminal cell for a glyph, creating it on first
// use.
func (tr *TerminalRenderer) cell(glyph rune) *uv.Cell {
	if c, ok := tr.cells[glyph]; ok {
		return c
	}
	c := &uv.Cell{
		Content: string(glyph),
		Width:   1,
	}
	tr.cells[glyph] = c
	return c
}

// Render copies the framebuffer glyphs onto the terminal screen. Rows or
// columns beyond the framebuffer read as blank.
func (tr *TerminalRenderer) Render(fb *FrameBuffer) {
	for y := 0; y < tr.height; y++ {
		for x := 0; x < tr.width; x++ {
			tr.term.SetCell(x, y, tr.cell(fb.GlyphAt(x, y)))
		}
	}
}

// Flush pushes the pending screen contents to the terminal.
func (tr *TerminalRenderer) Flush() error {
	return tr.term.Display()
}
