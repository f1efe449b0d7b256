// Package geometry holds the fixed tetrahedron template drawn for every
// fractal instance, the Transform value type placing those instances, and
// axis-aligned bounds over them.
package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Face is a triangle of the template, as indices into its vertices.
// Winding is counter-clockwise seen from outside the solid.
type Face [3]int

// Tetrahedron is a regular tetrahedron centered on the origin
type Tetrahedron struct {
	Vertices [4]mgl64.Vec3
	Faces    [4]Face
}

// Template returns the regular tetrahedron of circumradius 1 used as the
// instanced mesh. The first vertex points along +Z.
func Template() Tetrahedron {
	a := math.Sqrt(8.0 / 9.0)
	b := math.Sqrt(2.0 / 9.0)
	c := math.Sqrt(2.0 / 3.0)
	d := 1.0 / 3.0

	return Tetrahedron{
		Vertices: [4]mgl64.Vec3{
			{0, 0, 1},
			{a, 0, -d},
			{-b, c, -d},
			{-b, -c, -d},
		},
		Faces: [4]Face{
			{0, 1, 2},
			{0, 3, 1},
			{0, 2, 3},
			{1, 3, 2},
		},
	}
}

// EdgeLength of the template (all six edges are equal)
func (t Tetrahedron) EdgeLength() float64 {
	return t.Vertices[0].Sub(t.Vertices[1]).Len()
}

// WorldVertices returns the four vertices placed by transform
func (t Tetrahedron) WorldVertices(transform Transform) [4]mgl64.Vec3 {
	var out [4]mgl64.Vec3
	for i, v := range t.Vertices {
		out[i] = transform.Apply(v)
	}

	return out
}

// Normal returns the outward unit normal of face i in local space
func (t Tetrahedron) Normal(i int) mgl64.Vec3 {
	f := t.Faces[i]
	a, b, c := t.Vertices[f[0]], t.Vertices[f[1]], t.Vertices[f[2]]

	return b.Sub(a).Cross(c.Sub(a)).Normalize()
}

// ComputeAABB calculates the axis-aligned bounding box of the template at
// the given transform
func (t Tetrahedron) ComputeAABB(transform Transform) AABB {
	world := t.WorldVertices(transform)

	min := world[0]
	max := world[0]
	for _, v := range world[1:] {
		min[0] = math.Min(min[0], v[0])
		min[1] = math.Min(min[1], v[1])
		min[2] = math.Min(min[2], v[2])

		max[0] = math.Max(max[0], v[0])
		max[1] = math.Max(max[1], v[1])
		max[2] = math.Max(max[2], v[2])
	}

	return AABB{Min: min, Max: max}
}
