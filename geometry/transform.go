package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Transform represents a uniform-scale rigid transform in 3D space.
// Points are mapped as Position + Rotation·(Scale·p).
type Transform struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
	Scale    float64
}

// NewTransform creates an identity transform
func NewTransform() Transform {
	return Transform{
		Position: mgl64.Vec3{0, 0, 0},
		Rotation: mgl64.QuatIdent(),
		Scale:    1.0,
	}
}

// Translate creates a transform that only moves by offset
func Translate(offset mgl64.Vec3) Transform {
	t := NewTransform()
	t.Position = offset

	return t
}

// Compose returns t ∘ child: the child transform expressed in t's parent frame.
func (t Transform) Compose(child Transform) Transform {
	return Transform{
		Position: t.Position.Add(t.Rotation.Rotate(child.Position.Mul(t.Scale))),
		Rotation: t.Rotation.Mul(child.Rotation),
		Scale:    t.Scale * child.Scale,
	}
}

// Apply maps a point from local space to the parent frame
func (t Transform) Apply(point mgl64.Vec3) mgl64.Vec3 {
	return t.Position.Add(t.Rotation.Rotate(point.Mul(t.Scale)))
}

// Mat4 returns the homogeneous T·R·S matrix
func (t Transform) Mat4() mgl64.Mat4 {
	translation := mgl64.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z())
	scale := mgl64.Scale3D(t.Scale, t.Scale, t.Scale)

	return translation.Mul4(t.Rotation.Mat4()).Mul4(scale)
}

// Lerp blends t toward to. Position and scale are interpolated linearly,
// rotation with a quaternion slerp. The endpoints are returned unchanged so a
// finished blend is bit-identical to its target.
func (t Transform) Lerp(to Transform, amount float64) Transform {
	if amount <= 0 {
		return t
	}
	if amount >= 1 {
		return to
	}

	rotation := t.Rotation
	if rotation != to.Rotation {
		rotation = mgl64.QuatSlerp(t.Rotation, to.Rotation, amount)
	}

	return Transform{
		Position: t.Position.Add(to.Position.Sub(t.Position).Mul(amount)),
		Rotation: rotation,
		Scale:    t.Scale + (to.Scale-t.Scale)*amount,
	}
}

// ApproxEqual compares two transforms component-wise within threshold
func (t Transform) ApproxEqual(other Transform, threshold float64) bool {
	return t.Position.ApproxEqualThreshold(other.Position, threshold) &&
		t.Rotation.ApproxEqualThreshold(other.Rotation, threshold) &&
		math.Abs(t.Scale-other.Scale) <= threshold
}
