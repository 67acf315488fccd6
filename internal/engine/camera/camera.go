// Package camera provides the pan/orbit camera and its view-projection math.
package camera

import (
	gomath "math"

	"github.com/Faultbox/orbitview/pkg/math"
)

// worldUp is the fixed world vertical axis.
var worldUp = math.Vec3{X: 0, Y: 1, Z: 0}

// DepthZeroToOne remaps clip-space depth from [-1,1] to [0,1]. Backends
// that consume a [0,1] depth convention need this applied after the
// projection; it is a constant linear transform (scale z by 0.5,
// translate by 0.5).
var DepthZeroToOne = math.Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 0.5, 0,
	0, 0, 0.5, 1,
}

// DepthNegOneToOne leaves the [-1,1] depth convention untouched.
var DepthNegOneToOne = math.Identity()

// Camera looks from Eye toward Target with the given Up direction and
// perspective lens parameters. Fields are mutated in place by Pan,
// RotateH and RotateV; none of the operations validate degenerate
// state (zero-length look vector, Up collinear with the look
// direction) — degenerate input propagates as NaN output rather than
// erroring.
type Camera struct {
	Eye    math.Vec3
	Target math.Vec3
	Up     math.Vec3

	Aspect float32 // width / height, > 0
	FovY   float32 // vertical field of view, degrees
	Near   float32
	Far    float32

	// DepthCorrection maps the projection's [-1,1] clip depth to the
	// depth convention of the consuming backend.
	DepthCorrection math.Mat4
}

// New returns a camera at (0,1,2) looking at the origin.
func New(aspect float32) *Camera {
	return &Camera{
		Eye:             math.Vec3{X: 0, Y: 1, Z: 2},
		Target:          math.Vec3{},
		Up:              worldUp,
		Aspect:          aspect,
		FovY:            45.0,
		Near:            0.1,
		Far:             100.0,
		DepthCorrection: DepthZeroToOne,
	}
}

// ViewProjection composes the look-at view matrix, the perspective
// projection and the depth correction. It is recomputed on every call
// since Eye and Target mutate between frames.
func (c *Camera) ViewProjection() math.Mat4 {
	view := math.LookAt(c.Eye, c.Target, c.Up)
	proj := math.Perspective(radians(c.FovY), c.Aspect, c.Near, c.Far)
	return c.DepthCorrection.Mul(proj).Mul(view)
}

// Uniform is the GPU-facing snapshot of the view-projection transform:
// 16 packed float32s (64 bytes) in the matrix's memory order.
type Uniform [16]float32

// Uniform returns the current view-projection matrix as a uniform
// buffer snapshot.
func (c *Camera) Uniform() Uniform {
	return Uniform(c.ViewProjection())
}

// Ptr returns a pointer to the first element for uniform upload.
func (u *Uniform) Ptr() *float32 {
	return &u[0]
}

// Pan translates both Eye and Target by a movement given in
// camera-local coordinates: X is sideways, Y is world-vertical, and
// negative Z moves toward the target. The forward direction is the
// look vector flattened onto the horizontal plane and then normalized,
// so panning never changes the view direction or the eye-to-target
// distance.
func (c *Camera) Pan(mov math.Vec3) {
	flat := c.Target.Sub(c.Eye).XZ().Normalize()
	forward := math.Vec3{X: flat.X, Z: flat.Y}
	sideways := forward.Cross(worldUp)

	offset := forward.Scale(-mov.Z).
		Add(sideways.Scale(mov.X)).
		Add(worldUp.Scale(mov.Y))

	c.Eye = c.Eye.Add(offset)
	c.Target = c.Target.Add(offset)
}

// RotateH orbits the gaze: the eye stays put and the target swings
// around it about the world vertical axis by angle radians.
func (c *Camera) RotateH(angle float32) {
	sa := float32(gomath.Sin(float64(angle)))
	ca := float32(gomath.Cos(float64(angle)))

	off := c.Target.Sub(c.Eye)
	rotated := math.Vec3{
		X: off.X*ca - off.Z*sa,
		Y: off.Y,
		Z: off.Z*ca + off.X*sa,
	}
	c.Target = c.Eye.Add(rotated)
}

// RotateV tilts the view by shifting the eye height. This is a
// deliberate approximation rather than a spherical orbit: the look
// vector is not re-normalized and the pitch is not clamped.
func (c *Camera) RotateV(dy float32) {
	c.Eye.Y -= dy
}

func radians(deg float32) float32 {
	return deg * gomath.Pi / 180
}
