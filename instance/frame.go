package instance

import (
	"github.com/akmonengine/sierpinski/geometry"
	"github.com/lucasb-eyer/go-colorful"
)

// Frame is what gets drawn for one tick. Level is the recursion level the
// frame is heading to; while a level decrease is animating, Instances also
// carries the collapsing leaves after the 4^Level regular ones.
type Frame struct {
	Level     int
	Instances []Instance
}

// Len returns the number of instances to draw
func (f Frame) Len() int {
	return len(f.Instances)
}

// Transforms returns the instance transforms, in draw order
func (f Frame) Transforms() []geometry.Transform {
	out := make([]geometry.Transform, len(f.Instances))
	for i, inst := range f.Instances {
		out[i] = inst.Transform
	}

	return out
}

// Colors returns the instance colors, in draw order
func (f Frame) Colors() []colorful.Color {
	out := make([]colorful.Color, len(f.Instances))
	for i, inst := range f.Instances {
		out[i] = inst.Color
	}

	return out
}
