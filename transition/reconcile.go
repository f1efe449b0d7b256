package transition

import (
	"fmt"

	"github.com/akmonengine/sierpinski/generator"
	"github.com/akmonengine/sierpinski/geometry"
	"github.com/akmonengine/sierpinski/instance"
)

// Plan pairs every leaf of a target set with the transform it starts from
type Plan struct {
	// From holds one start transform per target leaf
	From []geometry.Transform
	// Dropped lists the old leaves with no counterpart in the target, each
	// with the target leaf it collapses into. Empty unless the level decreased.
	Dropped []Collapse
}

// Collapse maps an old leaf index onto the target leaf it folds into
type Collapse struct {
	Old    int
	Target int
}

// Reconcile builds the plan taking old, the displayed transforms at
// oldLevel, to target.
//
// When the level grows, the 4^(n-m) new leaves descending from an old leaf
// all start from it. When it shrinks, a new leaf starts from its first
// descendant in generation order and the other descendants are dropped.
// old must hold 4^oldLevel transforms.
func Reconcile(old []geometry.Transform, oldLevel int, target *instance.Set) Plan {
	if len(old) != generator.Count(oldLevel) {
		panic(fmt.Sprintf("transition: %d displayed transforms for level %d", len(old), oldLevel))
	}

	newLevel := target.Level()
	from := make([]geometry.Transform, target.Len())

	var dropped []Collapse
	switch {
	case newLevel >= oldLevel:
		levels := newLevel - oldLevel
		for j := range from {
			from[j] = old[generator.Ancestor(j, levels)]
		}
	default:
		levels := oldLevel - newLevel
		for j := range from {
			from[j] = old[generator.FirstDescendant(j, levels)]
		}

		dropped = make([]Collapse, 0, len(old)-len(from))
		for k := range old {
			ancestor := generator.Ancestor(k, levels)
			if k != generator.FirstDescendant(ancestor, levels) {
				dropped = append(dropped, Collapse{Old: k, Target: ancestor})
			}
		}
	}

	if len(from) != target.Len() {
		panic(fmt.Sprintf("transition: reconciled %d slots for %d target leaves", len(from), target.Len()))
	}

	return Plan{From: from, Dropped: dropped}
}
