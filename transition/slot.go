package transition

import (
	"github.com/akmonengine/sierpinski/geometry"
)

// Slot animates one instance from a start transform to its target
type Slot struct {
	From     geometry.Transform
	To       geometry.Transform
	Progress float64 // 0 at start, 1 once arrived
	Rate     float64 // progress gained per second
}

// Advance moves the slot forward by dt seconds. Progress never decreases and
// never exceeds 1.
func (s *Slot) Advance(dt float64) {
	if dt <= 0 || s.Progress >= 1 {
		return
	}

	s.Progress = min(1, s.Progress+s.Rate*dt)
}

// Current returns the interpolated transform
func (s Slot) Current() geometry.Transform {
	return s.From.Lerp(s.To, s.Progress)
}

// Done reports whether the slot has reached its target
func (s Slot) Done() bool {
	return s.Progress >= 1
}
