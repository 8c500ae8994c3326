// Package render provides the software rasterization pipeline that turns
// triangle meshes into shaded character grids.
package render

// Blank is the glyph a cleared cell holds.
const Blank = ' '

// FrameBuffer is a fixed-size grid of glyphs with a parallel grid of
// inverse-depth values. Both are allocated once and reset (not reallocated)
// at the start of every frame. Within a frame the rasterizer is the only
// writer; the presentation layer reads it once the frame's triangles are
// all processed.
type FrameBuffer struct {
	Width  int
	Height int
	glyphs []rune    // Row-major
	depth  []float64 // Interpolated 1/w; 0 means nothing drawn yet
}

// NewFrameBuffer creates a cleared framebuffer with the given dimensions.
func NewFrameBuffer(width, height int) *FrameBuffer {
	fb := &FrameBuffer{
		Width:  width,
		Height: height,
		glyphs: make([]rune, width*height),
		depth:  make([]float64, width*height),
	}
	fb.Clear()
	return fb
}

// Clear resets every cell to the blank glyph and the depth sentinel.
func (fb *FrameBuffer) Clear() {
	n := len(fb.glyphs)
	if n == 0 {
		return
	}
	// Copy-doubling fills faster than a plain loop on large grids.
	fb.glyphs[0] = Blank
	fb.depth[0] = 0
	for i := 1; i < n; i *= 2 {
		copy(fb.glyphs[i:], fb.glyphs[:i])
		copy(fb.depth[i:], fb.depth[:i])
	}
}

// GlyphAt returns the glyph at (x, y), or the blank glyph out of bounds.
func (fb *FrameBuffer) GlyphAt(x, y int) rune {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return Blank
	}
	return fb.glyphs[y*fb.Width+x]
}

// DepthAt returns the stored inverse depth at (x, y), or the sentinel 0
// out of bounds.
func (fb *FrameBuffer) DepthAt(x, y int) float64 {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return 0
	}
	return fb.depth[y*fb.Width+x]
}

// SetCell stores a glyph and its inverse depth at (x, y). Out-of-bounds
// writes are dropped.
func (fb *FrameBuffer) SetCell(x, y int, glyph rune, invW float64) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	i := y*fb.Width + x
	fb.glyphs[i] = glyph
	fb.depth[i] = invW
}

// Row returns row y as a string. Out-of-range rows are empty.
func (fb *FrameBuffer) Row(y int) string {
	if y < 0 || y >= fb.Height {
		return ""
	}
	return string(fb.glyphs[y*fb.Width : (y+1)*fb.Width])
}

// Rows returns every row as a string slice.
func (fb *FrameBuffer) Rows() []string {
	rows := make([]string, fb.Height)
	for y := 0; y < fb.Height; y++ {
		rows[y] = fb.Row(y)
	}
	return rows
}

// String renders the whole grid, one row per line. Mostly useful for
// tests and debugging.
func (fb *FrameBuffer) String() string {
	buf := make([]rune, 0, (fb.Width+1)*fb.Height)
	for y := 0; y < fb.Height; y++ {
		buf = append(buf, fb.glyphs[y*fb.Width:(y+1)*fb.Width]...)
		buf = append(buf, '\n')
	}
	return string(buf)
}
