package render

import (
	"math"

	"github.com/nelsonogbuigwe/ascii-renderer/pkg/math3d"
	"github.com/nelsonogbuigwe/ascii-renderer/pkg/models"
)

// AmbientFloor is the minimum shading intensity, so no visible surface
// maps to a fully dark glyph.
const AmbientFloor = 0.1

// degenerateEps bounds the barycentric denominator below which a triangle
// has no usable area.
const degenerateEps = 1e-12

// FrameStats counts per-frame triangle outcomes.
type FrameStats struct {
	Drawn   int // Passed culling and clipping, rasterized
	Culled  int // Back-facing, discarded before transform
	Clipped int // At least one vertex behind the camera plane
}

// Rasterizer converts world-space triangles into shaded character cells.
// Depth conflicts are resolved per cell by the inverse-depth test, so the
// iteration order across triangles never affects the final image.
type Rasterizer struct {
	camera  *Camera
	fb      *FrameBuffer
	ramp    *Ramp
	light   math3d.Vec3 // Normalized light direction
	ambient float64
	Stats   FrameStats
}

// NewRasterizer creates a rasterizer drawing into fb with the given ramp.
func NewRasterizer(camera *Camera, fb *FrameBuffer, ramp *Ramp) *Rasterizer {
	return &Rasterizer{
		camera:  camera,
		fb:      fb,
		ramp:    ramp,
		light:   math3d.V3(0, 0, -1),
		ambient: AmbientFloor,
	}
}

// SetLight sets the light direction (normalized on the way in).
func (r *Rasterizer) SetLight(dir math3d.Vec3) {
	r.light = dir.Normalize()
}

// SetAmbient sets the minimum shading intensity.
func (r *Rasterizer) SetAmbient(floor float64) {
	r.ambient = floor
}

// ResetStats zeroes the frame statistics (call once per frame).
func (r *Rasterizer) ResetStats() {
	r.Stats = FrameStats{}
}

// screenVertex holds a vertex transformed to screen space.
type screenVertex struct {
	X, Y float64 // Screen coordinates (continuous; cell centers at +0.5)
	InvW float64 // 1/w, interpolated for perspective-correct depth
}

// shadedTriangle is a triangle fully prepared for scan conversion: screen
// vertices, one flat-shaded glyph, and the clamped integer bounding box.
type shadedTriangle struct {
	sv                     [3]screenVertex
	glyph                  rune
	minX, minY, maxX, maxY int
}

// prepare runs the per-triangle half of the pipeline: back-face culling,
// flat shading, clip-space transform, perspective divide, viewport
// transform, and bounding-box setup. Returns false if the triangle
// produces no cells.
func (r *Rasterizer) prepare(tri models.Triangle) (shadedTriangle, bool) {
	var st shadedTriangle

	// Back-face cull in world space: discard when the face normal points
	// away from the camera.
	normal := tri[1].Sub(tri[0]).Cross(tri[2].Sub(tri[0])).Normalize()
	view := r.camera.Eye.Sub(tri[0])
	if normal.Dot(view) >= 0 {
		r.Stats.Culled++
		return st, false
	}

	// Flat shading: one glyph per triangle.
	intensity := normal.Dot(r.light.Negate())
	if intensity < r.ambient {
		intensity = r.ambient
	}
	st.glyph = r.ramp.Glyph(intensity)

	// Transform to clip space. Any vertex behind or on the camera plane
	// discards the whole triangle; there is no near-plane clipping.
	viewProj := r.camera.ViewProjectionMatrix()
	for i := range 3 {
		clip := viewProj.MulVec4(math3d.V4FromV3(tri[i], 1))
		if clip.W <= 0 {
			r.Stats.Clipped++
			return st, false
		}

		// Perspective divide, then NDC to screen (Y flipped: rows grow
		// downward while NDC y grows upward).
		invW := 1 / clip.W
		st.sv[i].InvW = invW
		st.sv[i].X = (clip.X*invW + 1) * 0.5 * float64(r.fb.Width)
		st.sv[i].Y = (1 - clip.Y*invW) * 0.5 * float64(r.fb.Height)
	}

	// Integer bounding box: floor for min, ceil for max, clamped to the
	// grid, so adjacent triangles never leave off-by-one gaps.
	st.minX = int(math.Max(0, math.Floor(min3(st.sv[0].X, st.sv[1].X, st.sv[2].X))))
	st.maxX = int(math.Min(float64(r.fb.Width-1), math.Ceil(max3(st.sv[0].X, st.sv[1].X, st.sv[2].X))))
	st.minY = int(math.Max(0, math.Floor(min3(st.sv[0].Y, st.sv[1].Y, st.sv[2].Y))))
	st.maxY = int(math.Min(float64(r.fb.Height-1), math.Ceil(max3(st.sv[0].Y, st.sv[1].Y, st.sv[2].Y))))

	if st.minX > st.maxX || st.minY > st.maxY {
		// Entirely off-grid
		return st, false
	}

	r.Stats.Drawn++
	return st, true
}

// fill scan-converts a prepared triangle into the rows [rowMin, rowMax].
// Each covered cell interpolates 1/w with the barycentric weights; a
// strictly greater inverse depth wins the cell, so equal-depth ties keep
// the earlier-drawn triangle.
func (r *Rasterizer) fill(st shadedTriangle, rowMin, rowMax int) {
	yLo, yHi := st.minY, st.maxY
	if yLo < rowMin {
		yLo = rowMin
	}
	if yHi > rowMax {
		yHi = rowMax
	}

	for y := yLo; y <= yHi; y++ {
		for x := st.minX; x <= st.maxX; x++ {
			px, py := float64(x)+0.5, float64(y)+0.5

			bc := barycentric(
				st.sv[0].X, st.sv[0].Y,
				st.sv[1].X, st.sv[1].Y,
				st.sv[2].X, st.sv[2].Y,
				px, py,
			)
			if bc.X < 0 || bc.Y < 0 || bc.Z < 0 {
				continue
			}

			invW := bc.X*st.sv[0].InvW + bc.Y*st.sv[1].InvW + bc.Z*st.sv[2].InvW
			if invW > r.fb.DepthAt(x, y) {
				r.fb.SetCell(x, y, st.glyph, invW)
			}
		}
	}
}

// DrawTriangle rasterizes a single world-space triangle.
func (r *Rasterizer) DrawTriangle(tri models.Triangle) {
	st, ok := r.prepare(tri)
	if !ok {
		return
	}
	r.fill(st, 0, r.fb.Height-1)
}

// DrawMesh rasterizes every triangle of the mesh.
func (r *Rasterizer) DrawMesh(mesh *models.Mesh) {
	for _, tri := range mesh.Triangles {
		r.DrawTriangle(tri)
	}
}

// barycentric calculates barycentric coordinates for point (px, py) in the
// screen-space triangle (x0,y0)-(x1,y1)-(x2,y2). A degenerate triangle
// (near-zero denominator) returns all-negative coordinates, so every
// containment test fails and the triangle covers no cells.
func barycentric(x0, y0, x1, y1, x2, y2, px, py float64) math3d.Vec3 {
	v0x, v0y := x2-x0, y2-y0
	v1x, v1y := x1-x0, y1-y0
	v2x, v2y := px-x0, py-y0

	dot00 := v0x*v0x + v0y*v0y
	dot01 := v0x*v1x + v0y*v1y
	dot02 := v0x*v2x + v0y*v2y
	dot11 := v1x*v1x + v1y*v1y
	dot12 := v1x*v2x + v1y*v2y

	denom := dot00*dot11 - dot01*dot01
	if math.Abs(denom) < degenerateEps {
		return math3d.V3(-1, -1, -1)
	}

	invDenom := 1.0 / denom
	u := (dot11*dot02 - dot01*dot12) * invDenom
	v := (dot00*dot12 - dot01*dot02) * invDenom

	return math3d.V3(1-u-v, v, u)
}

func min3(a, b, c float64) float64 {
	return math.Min(a, math.Min(b, c))
}

func max3(a, b, c float64) float64 {
	return math.Max(a, math.Max(b, c))
}
