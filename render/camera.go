package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/akmonengine/sierpinski/config"
	"github.com/akmonengine/sierpinski/geometry"
)

// tilt turns the template apex (+Z) to point up (+Y)
var tilt = mgl64.QuatRotate(-math.Pi/2, mgl64.Vec3{1, 0, 0})

// Camera looks at the origin from +Z while the model spins around Y
type Camera struct {
	Distance float64
	FovY     float64 // degrees
	Near     float64
	Far      float64
	Spin     float64 // radians per second
	Angle    float64 // current model rotation, radians
}

func NewCamera(cfg config.Camera) Camera {
	return Camera{
		Distance: cfg.Distance,
		FovY:     cfg.FovY,
		Near:     cfg.Near,
		Far:      cfg.Far,
		Spin:     cfg.Spin,
	}
}

// SetElapsed spins the model to where it is after seconds of animation
func (c *Camera) SetElapsed(seconds float64) {
	c.Angle = math.Mod(c.Spin*seconds, 2*math.Pi)
}

// Frame backs the camera off until a sphere around the origin enclosing box
// fits the vertical field of view, whatever the spin angle. It never moves
// the camera closer.
func (c *Camera) Frame(box geometry.AABB) {
	reach := box.Center().Len() + box.Radius()
	fit := reach / math.Sin(mgl64.DegToRad(c.FovY)/2)

	c.Distance = max(c.Distance, fit)
	c.Far = max(c.Far, c.Distance+reach)
}

// Model returns the rotation applied to the fractal before viewing
func (c Camera) Model() mgl64.Quat {
	return mgl64.QuatRotate(c.Angle, mgl64.Vec3{0, 1, 0}).Mul(tilt)
}

// ViewProjection returns projection·view for a viewport of width×height
func (c Camera) ViewProjection(width, height int) mgl64.Mat4 {
	aspect := float64(width) / float64(max(height, 1))
	projection := mgl64.Perspective(mgl64.DegToRad(c.FovY), aspect, c.Near, c.Far)
	view := mgl64.LookAtV(
		mgl64.Vec3{0, 0, c.Distance},
		mgl64.Vec3{0, 0, 0},
		mgl64.Vec3{0, 1, 0},
	)

	return projection.Mul4(view)
}

// project maps a world point to screen pixels and NDC depth. ok is false for
// points behind the camera.
func project(viewProjection mgl64.Mat4, point mgl64.Vec3, width, height int) (screen mgl64.Vec2, depth float64, ok bool) {
	clip := viewProjection.Mul4x1(point.Vec4(1))
	if clip.W() <= 0 {
		return mgl64.Vec2{}, 0, false
	}

	ndc := clip.Vec3().Mul(1 / clip.W())
	screen = mgl64.Vec2{
		(ndc.X() + 1) * 0.5 * float64(width),
		(1 - ndc.Y()) * 0.5 * float64(height),
	}

	return screen, ndc.Z(), true
}
