// Package instance turns generated leaf transforms into colored, drawable
// instances.
package instance

import (
	"github.com/akmonengine/sierpinski/generator"
	"github.com/akmonengine/sierpinski/geometry"
	"github.com/lucasb-eyer/go-colorful"
)

// Instance is one drawable copy of the tetrahedron template
type Instance struct {
	Transform geometry.Transform
	Color     colorful.Color
}

// Set is the ordered list of instances produced for a recursion level.
// It always holds 4^level instances and is never modified after Build.
type Set struct {
	level     int
	instances []Instance
}

// Build generates the leaves of base at depth and colors them with palette
func Build(base geometry.Transform, depth int, palette Palette) *Set {
	leaves := generator.Generate(base, depth)

	instances := make([]Instance, len(leaves))
	for i, leaf := range leaves {
		instances[i] = Instance{Transform: leaf, Color: palette.ColorOf(i)}
	}

	return &Set{level: depth, instances: instances}
}

// Len returns the instance count, 4^level
func (s *Set) Len() int {
	return len(s.instances)
}

// Level returns the recursion level that produced the set
func (s *Set) Level() int {
	return s.level
}

// At returns instance i
func (s *Set) At(i int) Instance {
	return s.instances[i]
}

// Transforms returns a copy of the instance transforms
func (s *Set) Transforms() []geometry.Transform {
	out := make([]geometry.Transform, len(s.instances))
	for i, inst := range s.instances {
		out[i] = inst.Transform
	}

	return out
}

// Colors returns a copy of the instance colors
func (s *Set) Colors() []colorful.Color {
	out := make([]colorful.Color, len(s.instances))
	for i, inst := range s.instances {
		out[i] = inst.Color
	}

	return out
}

// Frame returns a snapshot of the set for rendering
func (s *Set) Frame() Frame {
	instances := make([]Instance, len(s.instances))
	copy(instances, s.instances)

	return Frame{Level: s.level, Instances: instances}
}
