// Package sierpinski drives an interactive Sierpinski tetrahedron: it owns
// the recursion level, regenerates the instances when the level changes and
// morphs the displayed frame toward them on every tick.
//
// A Fractal is owned by the frame loop; none of its methods are safe for
// concurrent use.
package sierpinski

import (
	"errors"
	"fmt"

	"github.com/akmonengine/sierpinski/config"
	"github.com/akmonengine/sierpinski/geometry"
	"github.com/akmonengine/sierpinski/instance"
	"github.com/akmonengine/sierpinski/transition"
)

// ErrInvalidLevel is returned for a level below 0 or above the ceiling.
// The fractal is left unchanged.
var ErrInvalidLevel = errors.New("invalid level")

// Command is a discrete user input
type Command int

const (
	// LevelUp requests one more recursion level
	LevelUp Command = iota
	// LevelDown requests one less recursion level
	LevelDown
)

func (c Command) String() string {
	switch c {
	case LevelUp:
		return "level-up"
	case LevelDown:
		return "level-down"
	default:
		return fmt.Sprintf("command(%d)", int(c))
	}
}

// Fractal owns the recursion level and the transition toward its instances
type Fractal struct {
	// Base places the whole fractal
	Base     geometry.Transform
	MaxLevel int
	Palette  instance.Palette

	Events Events

	level      int
	elapsed    float64
	transition *transition.Controller
}

// New builds the fractal at cfg.InitialLevel, idle
func New(cfg config.Config) (*Fractal, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	f := &Fractal{
		Base:     geometry.NewTransform(),
		MaxLevel: cfg.MaxLevel,
		Palette:  cfg.ParsedPalette(),
		Events:   NewEvents(),
		level:    cfg.InitialLevel,
	}
	set := instance.Build(f.Base, f.level, f.Palette)
	f.transition = transition.NewController(set, cfg.Rate(), cfg.Workers)

	return f, nil
}

// Level returns the requested recursion level
func (f *Fractal) Level() int {
	return f.level
}

// State returns the transition state
func (f *Fractal) State() transition.State {
	return f.transition.State()
}

// Set returns the instance set of the current level
func (f *Fractal) Set() *instance.Set {
	return f.transition.Target()
}

// Transition exposes the level transition controller
func (f *Fractal) Transition() *transition.Controller {
	return f.transition
}

// Bounds encloses every instance of the target set. All levels share the
// hull of the base tetrahedron, so this does not change with the level.
func (f *Fractal) Bounds() geometry.AABB {
	box, _ := geometry.Bounds(geometry.Template(), f.Set().Transforms())

	return box
}

// Elapsed returns the seconds accumulated by Tick
func (f *Fractal) Elapsed() float64 {
	return f.elapsed
}

// Increment raises the level by one
func (f *Fractal) Increment() error {
	return f.SetLevel(f.level + 1)
}

// Decrement lowers the level by one
func (f *Fractal) Decrement() error {
	return f.SetLevel(f.level - 1)
}

// Handle maps an input command onto Increment or Decrement
func (f *Fractal) Handle(cmd Command) error {
	switch cmd {
	case LevelUp:
		return f.Increment()
	case LevelDown:
		return f.Decrement()
	default:
		return fmt.Errorf("unknown command %v", cmd)
	}
}

// SetLevel regenerates the instances for level and starts a transition
// toward them from whatever is displayed now.
func (f *Fractal) SetLevel(level int) error {
	defer f.Events.flush()

	ceiling := min(f.MaxLevel, config.MaxSupportedLevel)
	if level < 0 || level > ceiling {
		f.Events.emit(LevelRejectedEvent{Current: f.level, Requested: level})
		return fmt.Errorf("%w: %d outside [0, %d]", ErrInvalidLevel, level, ceiling)
	}
	if level == f.level {
		return nil
	}

	from := f.level
	f.level = level
	f.transition.Start(instance.Build(f.Base, level, f.Palette))

	f.Events.emit(LevelChangedEvent{From: from, To: level})
	if f.transition.State() == transition.Transitioning {
		f.Events.emit(TransitionStartedEvent{
			Level:      level,
			Slots:      len(f.transition.Slots()),
			Collapsing: f.transition.Collapsing(),
		})
	} else {
		f.Events.emit(TransitionFinishedEvent{Level: level})
	}

	return nil
}

// Tick advances the animation by dt seconds and returns the frame to draw
func (f *Fractal) Tick(dt float64) instance.Frame {
	defer f.Events.flush()

	if dt > 0 {
		f.elapsed += dt
	}
	if f.transition.Tick(dt) {
		f.Events.emit(TransitionFinishedEvent{Level: f.level})
	}

	return f.transition.Frame()
}
