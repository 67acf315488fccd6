package camera

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/orbitview/pkg/math"
)

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func vecNear(a, b math.Vec3, tol float32) bool {
	return absf(a.X-b.X) <= tol && absf(a.Y-b.Y) <= tol && absf(a.Z-b.Z) <= tol
}

func TestNewDefaults(t *testing.T) {
	c := New(16.0 / 9.0)

	if c.Eye != (math.Vec3{X: 0, Y: 1, Z: 2}) {
		t.Errorf("Eye = %v, want (0,1,2)", c.Eye)
	}
	if c.Target != (math.Vec3{}) {
		t.Errorf("Target = %v, want origin", c.Target)
	}
	if c.Up != (math.Vec3{X: 0, Y: 1, Z: 0}) {
		t.Errorf("Up = %v, want +Y", c.Up)
	}
	if c.FovY != 45 || c.Near != 0.1 || c.Far != 100 {
		t.Errorf("lens = (%v, %v, %v), want (45, 0.1, 100)", c.FovY, c.Near, c.Far)
	}
}

func TestViewProjectionDeterministic(t *testing.T) {
	c := New(1.5)
	c.Pan(math.Vec3{X: 0.3, Y: 0.1, Z: -0.2})
	c.RotateH(0.4)

	a := c.ViewProjection()
	b := c.ViewProjection()
	if a != b {
		t.Error("ViewProjection should be a pure function of camera state")
	}
}

func TestViewProjectionAppliesDepthCorrection(t *testing.T) {
	c := New(1)
	corrected := c.ViewProjection()

	c.DepthCorrection = DepthNegOneToOne
	plain := c.ViewProjection()

	// A point on the near plane: depth -1 uncorrected, 0 corrected.
	p := c.Eye.Add(c.Target.Sub(c.Eye).Normalize().Scale(c.Near))
	if got := plain.TransformVec3(p).Z; absf(got+1) > 0.001 {
		t.Errorf("uncorrected near depth = %f, want -1", got)
	}
	if got := corrected.TransformVec3(p).Z; absf(got) > 0.001 {
		t.Errorf("corrected near depth = %f, want 0", got)
	}
}

func TestUniformMatchesViewProjection(t *testing.T) {
	c := New(1.2)
	c.RotateH(0.7)
	c.RotateV(0.3)

	u := c.Uniform()
	m := c.ViewProjection()
	for i := 0; i < 16; i++ {
		if u[i] != m[i] {
			t.Errorf("Uniform[%d] = %f, want %f", i, u[i], m[i])
		}
	}
}

func TestPanZeroIsIdentity(t *testing.T) {
	c := New(1)
	eye, target := c.Eye, c.Target

	c.Pan(math.Vec3{})

	if c.Eye != eye || c.Target != target {
		t.Errorf("Pan(0) moved camera: eye %v target %v", c.Eye, c.Target)
	}
}

func TestPanPreservesDistance(t *testing.T) {
	c := New(1)
	before := c.Eye.Distance(c.Target)

	c.Pan(math.Vec3{X: 2, Y: -1, Z: 3})
	c.Pan(math.Vec3{X: -0.5, Y: 4, Z: 0.25})

	after := c.Eye.Distance(c.Target)
	if absf(after-before) > 0.0001 {
		t.Errorf("pan changed eye-target distance: %f -> %f", before, after)
	}
}

func TestPanForwardMovesTowardTarget(t *testing.T) {
	c := New(1)
	before := c.Eye

	// Negative Z pans toward the target, which sits at -Z on the
	// horizontal plane from the default eye.
	c.Pan(math.Vec3{Z: -1})

	if absf(c.Eye.X-before.X) > 0.0001 || absf(c.Eye.Y-before.Y) > 0.0001 {
		t.Errorf("forward pan should only move along Z, eye %v -> %v", before, c.Eye)
	}
	if c.Eye.Z >= before.Z {
		t.Errorf("forward pan should decrease eye Z, got %f -> %f", before.Z, c.Eye.Z)
	}
}

func TestPanFlattensBeforeNormalizing(t *testing.T) {
	// With a steep vertical offset the horizontal forward component is
	// tiny; flatten-then-normalize still yields a unit step.
	c := New(1)
	c.Eye = math.Vec3{X: 0, Y: 10, Z: 0.1}
	c.Target = math.Vec3{}

	c.Pan(math.Vec3{Z: -1})

	if absf(c.Eye.Z-(0.1-1)) > 0.0001 {
		t.Errorf("eye Z = %f, want %f", c.Eye.Z, 0.1-1)
	}
}

func TestRotateHPreservesOffset(t *testing.T) {
	c := New(1)
	off := c.Target.Sub(c.Eye)

	c.RotateH(0.9)

	got := c.Target.Sub(c.Eye)
	if absf(got.Length()-off.Length()) > 0.0001 {
		t.Errorf("rotation changed offset length: %f -> %f", off.Length(), got.Length())
	}
	if absf(got.Y-off.Y) > 0.0001 {
		t.Errorf("rotation changed offset Y: %f -> %f", off.Y, got.Y)
	}
}

func TestRotateHFullTurn(t *testing.T) {
	c := New(1)
	target := c.Target

	c.RotateH(2 * gomath.Pi)

	if !vecNear(c.Target, target, 0.0001) {
		t.Errorf("full turn should restore target, got %v want %v", c.Target, target)
	}
}

func TestRotateHRoundTrip(t *testing.T) {
	c := New(1)
	target := c.Target

	c.RotateH(1.1)
	c.RotateH(-1.1)

	if !vecNear(c.Target, target, 0.0001) {
		t.Errorf("rotate round trip should restore target, got %v want %v", c.Target, target)
	}
}

func TestRotateVShiftsEyeHeight(t *testing.T) {
	c := New(1)
	y := c.Eye.Y

	c.RotateV(0.25)

	if absf(c.Eye.Y-(y-0.25)) > 0.0001 {
		t.Errorf("Eye.Y = %f, want %f", c.Eye.Y, y-0.25)
	}
}
