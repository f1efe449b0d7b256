package render

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/akmonengine/sierpinski/geometry"
)

// Stage is the Sink state shared by the backends: the last submitted frame,
// the camera looking at it and the optional axes.
type Stage struct {
	Camera Camera
	// AxisLength draws world axes when positive
	AxisLength float64

	transforms []geometry.Transform
	colors     []colorful.Color

	// err is the last Present failure, until Err collects it
	err error
}

// Submit keeps a copy of the frame for the next Scene
func (s *Stage) Submit(transforms []geometry.Transform, colors []colorful.Color) error {
	if err := CheckLengths(transforms, colors); err != nil {
		return err
	}

	s.transforms = append(s.transforms[:0], transforms...)
	s.colors = append(s.colors[:0], colors...)

	return nil
}

// Instances returns how many instances the last frame holds
func (s *Stage) Instances() int {
	return len(s.transforms)
}

func (s *Stage) drawables() []Drawable {
	drawables := []Drawable{Instanced(s.transforms, s.colors)}
	if s.AxisLength > 0 {
		drawables = append(drawables, Axes(s.AxisLength))
	}

	return drawables
}

// Scene assembles the last frame for a width×height viewport
func (s *Stage) Scene(width, height int) (Scene, error) {
	return Assemble(s.Camera, s.drawables(), width, height)
}

// Present is Scene for draw callbacks that cannot return an error: a failure
// is kept for the next Err and reported as ok == false.
func (s *Stage) Present(width, height int) (scene Scene, ok bool) {
	scene, err := s.Scene(width, height)
	if err != nil {
		s.err = err
		return Scene{}, false
	}

	return scene, true
}

// Err returns the last Present failure and clears it
func (s *Stage) Err() error {
	err := s.err
	s.err = nil

	return err
}
