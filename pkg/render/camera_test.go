package render

import (
	"math"
	"testing"

	"github.com/nelsonogbuigwe/ascii-renderer/pkg/math3d"
)

func TestWorldToScreenCenter(t *testing.T) {
	cam := NewCamera()
	cam.SetEye(math3d.V3(0, 0, -5))
	cam.SetTarget(math3d.Zero3())
	cam.SetAspect(80.0 / 24.0)

	x, y, invW, visible := cam.WorldToScreen(math3d.Zero3(), 80, 24)
	if !visible {
		t.Fatal("target point not visible")
	}
	if math.Abs(x-40) > 1e-9 || math.Abs(y-12) > 1e-9 {
		t.Errorf("target projects to (%v, %v), want (40, 12)", x, y)
	}
	if invW <= 0 {
		t.Errorf("invW = %v, want positive", invW)
	}
}

func TestWorldToScreenBehindCamera(t *testing.T) {
	cam := NewCamera()
	cam.SetEye(math3d.V3(0, 0, -5))
	cam.SetTarget(math3d.Zero3())

	if _, _, _, visible := cam.WorldToScreen(math3d.V3(0, 0, -10), 80, 24); visible {
		t.Error("point behind camera reported visible")
	}
}

func TestWorldToScreenYFlip(t *testing.T) {
	cam := NewCamera()
	cam.SetEye(math3d.V3(0, 0, -5))
	cam.SetTarget(math3d.Zero3())

	// World +Y is up; screen rows grow downward, so a raised point must
	// land above center.
	_, yUp, _, ok := cam.WorldToScreen(math3d.V3(0, 1, 0), 80, 24)
	if !ok {
		t.Fatal("raised point not visible")
	}
	if yUp >= 12 {
		t.Errorf("raised point at row %v, want above row 12", yUp)
	}
}

func TestDepthOrderingInvW(t *testing.T) {
	cam := NewCamera()
	cam.SetEye(math3d.V3(0, 0, -5))
	cam.SetTarget(math3d.Zero3())

	_, _, invNear, okNear := cam.WorldToScreen(math3d.V3(0, 0, -1), 80, 24)
	_, _, invFar, okFar := cam.WorldToScreen(math3d.V3(0, 0, 3), 80, 24)
	if !okNear || !okFar {
		t.Fatal("probe points not visible")
	}
	if invNear <= invFar {
		t.Errorf("near invW %v not greater than far invW %v", invNear, invFar)
	}
}

func TestViewProjectionCaching(t *testing.T) {
	cam := NewCamera()
	before := cam.ViewProjectionMatrix()

	// Unchanged camera returns the same matrix.
	if before != cam.ViewProjectionMatrix() {
		t.Error("matrix changed without camera changes")
	}

	cam.SetEye(math3d.V3(1, 2, 3))
	if before == cam.ViewProjectionMatrix() {
		t.Error("matrix not recomputed after SetEye")
	}
}
