// Package transition animates the fractal from the displayed instances to a
// newly generated set whenever the recursion level changes.
package transition

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/akmonengine/sierpinski/generator"
	"github.com/akmonengine/sierpinski/geometry"
	"github.com/akmonengine/sierpinski/instance"
)

// State of the controller
type State int

const (
	// Idle: the target set is displayed as is
	Idle State = iota
	// Transitioning: slots are blending toward the target set
	Transitioning
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Transitioning:
		return "transitioning"
	default:
		return "unknown"
	}
}

// collapsing is an old leaf folding into the target leaf that replaces it
type collapsing struct {
	slot      Slot
	fromColor colorful.Color
	toColor   colorful.Color
	// into is the target leaf index
	into int
}

func (l collapsing) color() colorful.Color {
	return l.fromColor.BlendRgb(l.toColor, l.slot.Progress)
}

// rehome maps a leaf index at level from onto the leaf of level to sharing
// its corner path
func rehome(index, from, to int) int {
	if to <= from {
		return generator.Ancestor(index, from-to)
	}

	return generator.FirstDescendant(index, to-from)
}

// Controller blends the displayed frame toward the target set, one slot per
// target leaf. It is driven by a single caller and is not safe for
// concurrent use.
type Controller struct {
	// Rate is the progress gained per second by every slot. A non-positive or
	// infinite rate makes transitions instantaneous.
	Rate float64
	// Workers splits slot advancement over goroutines; 1 runs inline
	Workers int

	state      State
	target     *instance.Set
	slots      []Slot
	collapsing []collapsing
}

// NewController starts Idle, displaying target
func NewController(target *instance.Set, rate float64, workers int) *Controller {
	return &Controller{
		Rate:    rate,
		Workers: workers,
		state:   Idle,
		target:  target,
	}
}

// State returns Idle or Transitioning
func (c *Controller) State() State {
	return c.state
}

// Target returns the set being displayed or animated toward
func (c *Controller) Target() *instance.Set {
	return c.target
}

// Slots returns a copy of the live slots; empty when Idle
func (c *Controller) Slots() []Slot {
	out := make([]Slot, len(c.slots))
	copy(out, c.slots)

	return out
}

// Collapsing returns how many dropped leaves are still folding away
func (c *Controller) Collapsing() int {
	return len(c.collapsing)
}

// displayed returns the transforms currently on screen, excluding leaves
// being collapsed
func (c *Controller) displayed() []geometry.Transform {
	if c.state == Idle {
		return c.target.Transforms()
	}

	out := make([]geometry.Transform, len(c.slots))
	for i, s := range c.slots {
		out[i] = s.Current()
	}

	return out
}

// Start replaces the plan with a transition toward target. When a transition
// is in flight, its interpolated transforms are the new starting point and
// its collapsing leaves keep folding, from where they are, into the target
// leaf on their corner path.
func (c *Controller) Start(target *instance.Set) {
	previous := c.target
	displayed := c.displayed()
	plan := Reconcile(displayed, previous.Level(), target)

	slots := make([]Slot, target.Len())
	moving := false
	for j := range slots {
		slots[j] = Slot{
			From: plan.From[j],
			To:   target.At(j).Transform,
			Rate: c.Rate,
		}
		if slots[j].From != slots[j].To {
			moving = true
		}
	}

	carried := make([]collapsing, 0, len(c.collapsing)+len(plan.Dropped))
	for _, l := range c.collapsing {
		into := rehome(l.into, previous.Level(), target.Level())
		goal := target.At(into)
		carried = append(carried, collapsing{
			slot:      Slot{From: l.slot.Current(), To: goal.Transform, Rate: c.Rate},
			fromColor: l.color(),
			toColor:   goal.Color,
			into:      into,
		})
	}
	c.collapsing = carried

	for _, d := range plan.Dropped {
		goal := target.At(d.Target)
		c.collapsing = append(c.collapsing, collapsing{
			slot:      Slot{From: displayed[d.Old], To: goal.Transform, Rate: c.Rate},
			fromColor: previous.At(d.Old).Color,
			toColor:   goal.Color,
			into:      d.Target,
		})
	}

	c.target = target
	c.slots = slots
	c.state = Transitioning

	if !moving && len(c.collapsing) == 0 {
		c.finish()
		return
	}
	if c.Rate <= 0 || math.IsInf(c.Rate, 1) {
		c.finish()
	}
}

// Tick advances every slot by dt seconds. It reports whether the transition
// completed during this tick; ticks while Idle do nothing.
func (c *Controller) Tick(dt float64) bool {
	if c.state == Idle || dt <= 0 {
		return false
	}

	task(c.Workers, c.slots, func(s *Slot) {
		s.Advance(dt)
	})
	task(c.Workers, c.collapsing, func(l *collapsing) {
		l.slot.Advance(dt)
	})

	for _, s := range c.slots {
		if !s.Done() {
			return false
		}
	}
	for _, l := range c.collapsing {
		if !l.slot.Done() {
			return false
		}
	}

	c.finish()

	return true
}

func (c *Controller) finish() {
	c.state = Idle
	c.slots = nil
	c.collapsing = nil
}

// Frame returns the instances to draw: the interpolated target leaves with
// the target colors, followed by the collapsing leaves.
func (c *Controller) Frame() instance.Frame {
	if c.state == Idle {
		return c.target.Frame()
	}

	instances := make([]instance.Instance, 0, len(c.slots)+len(c.collapsing))
	for j, s := range c.slots {
		instances = append(instances, instance.Instance{
			Transform: s.Current(),
			Color:     c.target.At(j).Color,
		})
	}
	for _, l := range c.collapsing {
		instances = append(instances, instance.Instance{
			Transform: l.slot.Current(),
			Color:     l.color(),
		})
	}

	return instance.Frame{Level: c.target.Level(), Instances: instances}
}
