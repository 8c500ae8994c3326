// Package models provides triangle mesh loading and representation for the
// ASCII renderer.
package models

import (
	"math"

	"github.com/nelsonogbuigwe/ascii-renderer/pkg/math3d"
)

// Triangle is an ordered triple of world-space vertex positions.
// No shared-vertex indexing; adjacency across triangles is irrelevant
// to rendering.
type Triangle [3]math3d.Vec3

// Mesh is an ordered sequence of triangles. The loaded vertex data is kept
// immutable; the current orientation is recomputed from it at an absolute
// angle each frame, so long runs never accumulate floating-point drift the
// way compounding per-frame deltas would.
type Mesh struct {
	Triangles []Triangle // Current orientation, what the rasterizer consumes
	base      []Triangle // As loaded, never mutated after construction

	// Bounding box of the base vertices
	BoundsMin math3d.Vec3
	BoundsMax math3d.Vec3
}

// NewMesh creates a mesh from a triangle list.
func NewMesh(tris []Triangle) *Mesh {
	m := &Mesh{
		Triangles: make([]Triangle, len(tris)),
		base:      make([]Triangle, len(tris)),
	}
	copy(m.Triangles, tris)
	copy(m.base, tris)
	m.CalculateBounds()
	return m
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Triangles)
}

// CalculateBounds computes the axis-aligned bounding box of the base vertices.
func (m *Mesh) CalculateBounds() {
	if len(m.base) == 0 {
		m.BoundsMin = math3d.Zero3()
		m.BoundsMax = math3d.Zero3()
		return
	}

	m.BoundsMin = m.base[0][0]
	m.BoundsMax = m.base[0][0]

	for _, tri := range m.base {
		for _, v := range tri {
			m.BoundsMin = m.BoundsMin.Min(v)
			m.BoundsMax = m.BoundsMax.Max(v)
		}
	}
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() math3d.Vec3 {
	return m.BoundsMin.Add(m.BoundsMax).Scale(0.5)
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() math3d.Vec3 {
	return m.BoundsMax.Sub(m.BoundsMin)
}

// Transform applies a transformation matrix to every vertex, rebasing the
// immutable vertex data. Used once at load time to center and scale the
// model; per-frame rotation goes through SetRotationY instead.
func (m *Mesh) Transform(mat math3d.Mat4) {
	for i := range m.base {
		for j := range m.base[i] {
			m.base[i][j] = mat.MulVec3(m.base[i][j])
			m.Triangles[i][j] = m.base[i][j]
		}
	}
	m.CalculateBounds()
}

// NormalizeToUnit centers the mesh at the origin and scales its largest
// dimension to 2 world units, so any model fills the view the same way.
func (m *Mesh) NormalizeToUnit() {
	size := m.Size()
	maxDim := math.Max(size.X, math.Max(size.Y, size.Z))
	if maxDim == 0 {
		return
	}
	scale := 2.0 / maxDim
	center := m.Center()
	m.Transform(math3d.Scale(math3d.V3(scale, scale, scale)).
		Mul(math3d.Translate(center.Negate())))
}

// SetRotationY orients the mesh at the given absolute angle around the
// Y axis. Every vertex is recomputed fresh from the loaded positions:
// x' = x·cos + z·sin, z' = -x·sin + z·cos, y' = y.
func (m *Mesh) SetRotationY(angle float64) {
	c, s := math.Cos(angle), math.Sin(angle)
	for i := range m.base {
		for j := range m.base[i] {
			v := m.base[i][j]
			m.Triangles[i][j] = math3d.V3(
				c*v.X+s*v.Z,
				v.Y,
				-s*v.X+c*v.Z,
			)
		}
	}
}
