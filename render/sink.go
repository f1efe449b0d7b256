// Package render projects fractal frames to the screen. A Sink receives the
// per-instance transforms and colors of a frame; the drawing backends turn
// them, plus optional axes and meshes, into depth-sorted flat triangles.
package render

import (
	"errors"
	"fmt"

	"github.com/akmonengine/sierpinski/geometry"
	"github.com/akmonengine/sierpinski/instance"
	"github.com/lucasb-eyer/go-colorful"
)

// ErrLengthMismatch is returned when transforms and colors differ in length
var ErrLengthMismatch = errors.New("transforms and colors differ in length")

// Sink displays one template instance per transform/color pair
type Sink interface {
	Submit(transforms []geometry.Transform, colors []colorful.Color) error
}

// CheckLengths validates a Submit call
func CheckLengths(transforms []geometry.Transform, colors []colorful.Color) error {
	if len(transforms) != len(colors) {
		return fmt.Errorf("%w: %d transforms, %d colors", ErrLengthMismatch, len(transforms), len(colors))
	}

	return nil
}

// Push submits a frame to sink
func Push(sink Sink, frame instance.Frame) error {
	return sink.Submit(frame.Transforms(), frame.Colors())
}

// Background is the clear color of every backend
var Background = colorful.Color{R: 0.8, G: 0.8, B: 0.8}
