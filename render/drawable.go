package render

import (
	"github.com/akmonengine/sierpinski/geometry"
	"github.com/lucasb-eyer/go-colorful"
)

// DrawableKind tags the variant held by a Drawable
type DrawableKind uint8

const (
	// DrawableMesh is a single template at a transform
	DrawableMesh DrawableKind = iota
	// DrawableAxes draws the X, Y and Z world axes from the origin
	DrawableAxes
	// DrawableInstanced draws the template once per transform
	DrawableInstanced
)

func (k DrawableKind) String() string {
	switch k {
	case DrawableMesh:
		return "mesh"
	case DrawableAxes:
		return "axes"
	case DrawableInstanced:
		return "instanced"
	default:
		return "unknown"
	}
}

// Drawable is one of the fixed set of things a backend can draw. Only the
// fields of its Kind are meaningful.
type Drawable struct {
	Kind DrawableKind

	// DrawableMesh
	Transform geometry.Transform
	Color     colorful.Color

	// DrawableAxes
	AxisLength float64

	// DrawableInstanced
	Transforms []geometry.Transform
	Colors     []colorful.Color
}

func Mesh(transform geometry.Transform, color colorful.Color) Drawable {
	return Drawable{Kind: DrawableMesh, Transform: transform, Color: color}
}

func Axes(length float64) Drawable {
	return Drawable{Kind: DrawableAxes, AxisLength: length}
}

func Instanced(transforms []geometry.Transform, colors []colorful.Color) Drawable {
	return Drawable{Kind: DrawableInstanced, Transforms: transforms, Colors: colors}
}

// axisColors are X red, Y green, Z blue
var axisColors = [3]colorful.Color{
	{R: 1, G: 0, B: 0},
	{R: 0, G: 1, B: 0},
	{R: 0, G: 0, B: 1},
}
