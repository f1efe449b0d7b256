package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// Union returns the smallest AABB enclosing both boxes
func (a AABB) Union(other AABB) AABB {
	return AABB{
		Min: mgl64.Vec3{
			math.Min(a.Min.X(), other.Min.X()),
			math.Min(a.Min.Y(), other.Min.Y()),
			math.Min(a.Min.Z(), other.Min.Z()),
		},
		Max: mgl64.Vec3{
			math.Max(a.Max.X(), other.Max.X()),
			math.Max(a.Max.Y(), other.Max.Y()),
			math.Max(a.Max.Z(), other.Max.Z()),
		},
	}
}

// Center of the box
func (a AABB) Center() mgl64.Vec3 {
	return a.Min.Add(a.Max).Mul(0.5)
}

// Radius returns half the diagonal length
func (a AABB) Radius() float64 {
	return a.Max.Sub(a.Min).Len() * 0.5
}

// Bounds encloses the template placed at every transform.
// It returns false when transforms is empty.
func Bounds(template Tetrahedron, transforms []Transform) (AABB, bool) {
	if len(transforms) == 0 {
		return AABB{}, false
	}

	box := template.ComputeAABB(transforms[0])
	for _, t := range transforms[1:] {
		box = box.Union(template.ComputeAABB(t))
	}

	return box, true
}
