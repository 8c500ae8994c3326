package render

import (
	"math"

	"github.com/nelsonogbuigwe/ascii-renderer/pkg/math3d"
)

// Camera represents a look-at camera: an eye position watching a target
// point with a given up vector. The values may change between frames; the
// matrices are recomputed on demand.
type Camera struct {
	Eye    math3d.Vec3
	Target math3d.Vec3
	Up     math3d.Vec3

	// Projection parameters
	FOV    float64 // Vertical field of view in radians
	Aspect float64 // Width / height of the view plane
	Near   float64
	Far    float64

	// Cached matrices (computed on demand)
	viewMatrix     math3d.Mat4
	projMatrix     math3d.Mat4
	viewProjMatrix math3d.Mat4
	viewDirty      bool
	projDirty      bool
}

// NewCamera creates a camera with default settings: five units back on the
// Z axis, looking at the origin.
func NewCamera() *Camera {
	return &Camera{
		Eye:       math3d.V3(0, 0, -5),
		Target:    math3d.Zero3(),
		Up:        math3d.Up(),
		FOV:       math.Pi / 3, // 60 degrees
		Aspect:    1,
		Near:      0.1,
		Far:       100,
		viewDirty: true,
		projDirty: true,
	}
}

// SetEye sets the camera position.
func (c *Camera) SetEye(eye math3d.Vec3) {
	c.Eye = eye
	c.viewDirty = true
}

// SetTarget sets the look-at target.
func (c *Camera) SetTarget(target math3d.Vec3) {
	c.Target = target
	c.viewDirty = true
}

// SetUp sets the up vector.
func (c *Camera) SetUp(up math3d.Vec3) {
	c.Up = up
	c.viewDirty = true
}

// SetFOV sets the vertical field of view (in radians).
func (c *Camera) SetFOV(fov float64) {
	c.FOV = fov
	c.projDirty = true
}

// SetAspect sets the aspect ratio.
func (c *Camera) SetAspect(aspect float64) {
	c.Aspect = aspect
	c.projDirty = true
}

// SetClipPlanes sets the near and far clipping planes.
func (c *Camera) SetClipPlanes(near, far float64) {
	c.Near = near
	c.Far = far
	c.projDirty = true
}

// ViewMatrix returns the view matrix.
func (c *Camera) ViewMatrix() math3d.Mat4 {
	if c.viewDirty {
		c.viewMatrix = math3d.LookAt(c.Eye, c.Target, c.Up)
		c.viewDirty = false
	}
	return c.viewMatrix
}

// ProjectionMatrix returns the perspective projection matrix.
func (c *Camera) ProjectionMatrix() math3d.Mat4 {
	if c.projDirty {
		c.projMatrix = math3d.Perspective(c.FOV, c.Aspect, c.Near, c.Far)
		c.projDirty = false
	}
	return c.projMatrix
}

// ViewProjectionMatrix returns the combined view-projection matrix.
func (c *Camera) ViewProjectionMatrix() math3d.Mat4 {
	if c.viewDirty || c.projDirty {
		_ = c.ViewMatrix()
		_ = c.ProjectionMatrix()
		c.viewProjMatrix = c.projMatrix.Mul(c.viewMatrix)
	}
	return c.viewProjMatrix
}

// WorldToScreen transforms a world point to screen coordinates on a grid of
// the given size. Returns (screenX, screenY, invW, visible); points behind
// or on the camera plane are not visible.
func (c *Camera) WorldToScreen(worldPos math3d.Vec3, gridWidth, gridHeight int) (x, y, invW float64, visible bool) {
	clip := c.ViewProjectionMatrix().MulVec4(math3d.V4FromV3(worldPos, 1))
	if clip.W <= 0 {
		return 0, 0, 0, false
	}

	invW = 1 / clip.W
	x = (clip.X*invW + 1) * 0.5 * float64(gridWidth)
	y = (1 - clip.Y*invW) * 0.5 * float64(gridHeight) // Y flipped

	return x, y, invW, true
}
