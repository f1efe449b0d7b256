package sierpinski

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/akmonengine/sierpinski/config"
	"github.com/akmonengine/sierpinski/generator"
	"github.com/akmonengine/sierpinski/geometry"
	"github.com/akmonengine/sierpinski/transition"
)

func newTestFractal(t *testing.T, modify func(*config.Config)) *Fractal {
	t.Helper()

	cfg := config.Default()
	cfg.TransitionSeconds = 1
	if modify != nil {
		modify(&cfg)
	}

	f, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return f
}

// runUntilIdle ticks until the transition settles, failing after max ticks
func runUntilIdle(t *testing.T, f *Fractal, dt float64, max int) {
	t.Helper()

	for i := 0; i < max; i++ {
		if f.State() == transition.Idle {
			return
		}
		f.Tick(dt)
	}
	t.Fatalf("transition still running after %d ticks", max)
}

// =============================================================================
// Construction
// =============================================================================

func TestNew(t *testing.T) {
	f := newTestFractal(t, func(c *config.Config) { c.InitialLevel = 2 })

	if f.Level() != 2 {
		t.Errorf("Level() = %d, want 2", f.Level())
	}
	if f.State() != transition.Idle {
		t.Errorf("State() = %v, want idle", f.State())
	}
	if f.Set().Len() != 16 {
		t.Errorf("Set().Len() = %d, want 16", f.Set().Len())
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.MaxLevel = config.MaxSupportedLevel + 1

	if _, err := New(cfg); !errors.Is(err, config.ErrInvalid) {
		t.Errorf("New() error = %v, want config.ErrInvalid", err)
	}
}

// =============================================================================
// Level Changes
// =============================================================================

func TestIncrement_FromZero(t *testing.T) {
	f := newTestFractal(t, nil)

	if err := f.Increment(); err != nil {
		t.Fatalf("Increment() error = %v", err)
	}
	if f.State() != transition.Transitioning {
		t.Fatalf("State() = %v, want transitioning", f.State())
	}

	frame := f.Tick(0.1)
	if frame.Len() != 4 {
		t.Fatalf("frame.Len() = %d, want 4", frame.Len())
	}

	runUntilIdle(t, f, 0.1, 100)

	frame = f.Tick(0.1)
	want := generator.Generate(geometry.NewTransform(), 1)
	for i, inst := range frame.Instances {
		if inst.Transform != want[i] {
			t.Errorf("instance %d = %v, want %v", i, inst.Transform, want[i])
		}
	}
}

func TestDecrement_FromTwo(t *testing.T) {
	f := newTestFractal(t, func(c *config.Config) { c.InitialLevel = 2 })

	if err := f.Decrement(); err != nil {
		t.Fatalf("Decrement() error = %v", err)
	}
	if f.Set().Len() != 4 {
		t.Errorf("Set().Len() = %d, want 4", f.Set().Len())
	}
	if n := len(f.Transition().Slots()); n != 4 {
		t.Errorf("len(Slots()) = %d, want 4", n)
	}

	runUntilIdle(t, f, 0.1, 100)
	if f.Transition().Collapsing() != 0 {
		t.Errorf("Collapsing() = %d after completion, want 0", f.Transition().Collapsing())
	}
	if frame := f.Tick(0.1); frame.Len() != 4 {
		t.Errorf("frame.Len() = %d, want 4", frame.Len())
	}
}

func TestIncrementDecrement_RoundTrip(t *testing.T) {
	f := newTestFractal(t, func(c *config.Config) { c.InitialLevel = 3 })

	if err := f.Increment(); err != nil {
		t.Fatal(err)
	}
	if err := f.Decrement(); err != nil {
		t.Fatal(err)
	}

	if f.Level() != 3 {
		t.Errorf("Level() = %d, want 3", f.Level())
	}
	if f.Set().Len() != 64 {
		t.Errorf("Set().Len() = %d, want 64", f.Set().Len())
	}
}

func TestSetLevel_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		initial int
		max     int
		action  func(f *Fractal) error
	}{
		{"decrement below zero", 0, 5, (*Fractal).Decrement},
		{"increment above max", 5, 5, (*Fractal).Increment},
		{"set above ceiling", 0, 5, func(f *Fractal) error { return f.SetLevel(config.MaxSupportedLevel + 1) }},
		{"set negative", 2, 5, func(f *Fractal) error { return f.SetLevel(-3) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestFractal(t, func(c *config.Config) {
				c.InitialLevel = tt.initial
				c.MaxLevel = tt.max
			})
			before := f.Set()

			err := tt.action(f)
			if !errors.Is(err, ErrInvalidLevel) {
				t.Fatalf("error = %v, want ErrInvalidLevel", err)
			}
			if f.Level() != tt.initial {
				t.Errorf("Level() = %d, want unchanged %d", f.Level(), tt.initial)
			}
			if f.Set() != before {
				t.Error("rejected request replaced the instance set")
			}
			if f.State() != transition.Idle {
				t.Errorf("State() = %v, want idle", f.State())
			}
		})
	}
}

func TestSetLevel_SameLevelIsNoop(t *testing.T) {
	f := newTestFractal(t, func(c *config.Config) { c.InitialLevel = 1 })
	before := f.Set()

	if err := f.SetLevel(1); err != nil {
		t.Fatalf("SetLevel(1) error = %v", err)
	}
	if f.Set() != before || f.State() != transition.Idle {
		t.Error("SetLevel to the current level should change nothing")
	}
}

func TestIncrementTwice_SupersedesMidFlight(t *testing.T) {
	f := newTestFractal(t, nil)

	if err := f.Increment(); err != nil {
		t.Fatal(err)
	}
	midFlight := f.Tick(0.3).Transforms()

	if err := f.Increment(); err != nil {
		t.Fatal(err)
	}

	slots := f.Transition().Slots()
	if len(slots) != 16 {
		t.Fatalf("len(Slots()) = %d, want 16", len(slots))
	}
	for j, s := range slots {
		if s.From != midFlight[j/4] {
			t.Fatalf("slot %d From = %v, want mid-flight %v", j, s.From, midFlight[j/4])
		}
	}
}

func TestHandle(t *testing.T) {
	f := newTestFractal(t, nil)

	if err := f.Handle(LevelUp); err != nil {
		t.Fatal(err)
	}
	if f.Level() != 1 {
		t.Errorf("Level() after LevelUp = %d, want 1", f.Level())
	}
	if err := f.Handle(LevelDown); err != nil {
		t.Fatal(err)
	}
	if f.Level() != 0 {
		t.Errorf("Level() after LevelDown = %d, want 0", f.Level())
	}
	if err := f.Handle(Command(9)); err == nil {
		t.Error("Handle() of an unknown command should fail")
	}
}

func TestTick_AccumulatesElapsed(t *testing.T) {
	f := newTestFractal(t, nil)

	f.Tick(0.25)
	f.Tick(-1)
	f.Tick(0.5)

	if f.Elapsed() != 0.75 {
		t.Errorf("Elapsed() = %v, want 0.75", f.Elapsed())
	}
}

func TestZeroDurationSnaps(t *testing.T) {
	f := newTestFractal(t, func(c *config.Config) { c.TransitionSeconds = 0 })

	if err := f.SetLevel(3); err != nil {
		t.Fatal(err)
	}
	if f.State() != transition.Idle {
		t.Errorf("State() = %v, want idle", f.State())
	}
	if frame := f.Tick(0); frame.Len() != 64 {
		t.Errorf("frame.Len() = %d, want 64", frame.Len())
	}
}

func TestBounds_SameAtEveryLevel(t *testing.T) {
	f := newTestFractal(t, func(c *config.Config) { c.TransitionSeconds = 0 })
	root := geometry.Template().ComputeAABB(f.Base)

	for level := 0; level <= 4; level++ {
		if err := f.SetLevel(level); err != nil {
			t.Fatal(err)
		}
		box := f.Bounds()
		if !vec3Near(box.Min, root.Min) || !vec3Near(box.Max, root.Max) {
			t.Errorf("level %d: Bounds() = %v, want %v", level, box, root)
		}
	}
}

func vec3Near(a, b mgl64.Vec3) bool {
	return a.Sub(b).Len() < 1e-9
}
