// Package generator computes the leaf transforms of a Sierpinski tetrahedron.
//
// A tetrahedron at depth k is replaced by four half-size copies, one per
// corner of the template. Each copy is placed by a corner offset:
//
//	corner_i = Translate(v_i / 2) ∘ Scale(1/2)
//
// where v_i is the i-th template vertex. Since the scale travels with the
// composition, a leaf at depth k has scale 0.5^k, and the offsets applied at
// step k are shrunk by the same factor: siblings meet at the edge midpoints
// of their parent and never overlap.
//
// Leaves are ordered by corner, most significant step first: leaf i at
// depth k is reached by following the base-4 digits of i from the top.
package generator

import (
	"github.com/akmonengine/sierpinski/geometry"
)

// Branching is the number of children of every node
const Branching = 4

// ChildScale is applied at every recursion step
const ChildScale = 0.5

var corners = computeCorners()

func computeCorners() [Branching]geometry.Transform {
	template := geometry.Template()

	var out [Branching]geometry.Transform
	for i, v := range template.Vertices {
		out[i] = geometry.Translate(v.Mul(ChildScale))
		out[i].Scale = ChildScale
	}

	return out
}

// Corners returns the four corner offsets in generation order
func Corners() [Branching]geometry.Transform {
	return corners
}

// Count returns the number of leaves at depth, 4^depth
func Count(depth int) int {
	return 1 << (2 * depth)
}

// Generate returns the leaf transforms of base subdivided depth times.
// The result always holds Count(depth) transforms and is bit-for-bit
// reproducible for identical inputs. depth must be validated by the caller.
func Generate(base geometry.Transform, depth int) []geometry.Transform {
	if depth < 0 {
		panic("generator: negative depth")
	}

	leaves := make([]geometry.Transform, 0, Count(depth))
	return generate(leaves, base, depth)
}

func generate(leaves []geometry.Transform, node geometry.Transform, depth int) []geometry.Transform {
	if depth == 0 {
		return append(leaves, node)
	}

	for _, corner := range corners {
		leaves = generate(leaves, node.Compose(corner), depth-1)
	}

	return leaves
}

// Leaf evaluates the single leaf at index without generating its siblings.
// It matches Generate(base, depth)[index] exactly.
func Leaf(base geometry.Transform, depth int, index int) geometry.Transform {
	if depth < 0 || index < 0 || index >= Count(depth) {
		panic("generator: leaf out of range")
	}

	node := base
	for _, digit := range Digits(depth, index) {
		node = node.Compose(corners[digit])
	}

	return node
}

// Digits returns the corner chosen at each recursion step to reach leaf
// index, from the top step down.
func Digits(depth int, index int) []int {
	digits := make([]int, depth)
	for step := depth - 1; step >= 0; step-- {
		digits[step] = index % Branching
		index /= Branching
	}

	return digits
}

// Ancestor returns the index of the node, levels steps shallower, that leaf
// index descends from.
func Ancestor(index int, levels int) int {
	return index >> (2 * levels)
}

// FirstDescendant returns the index of the first leaf, levels steps deeper,
// descending from node index.
func FirstDescendant(index int, levels int) int {
	return index << (2 * levels)
}
