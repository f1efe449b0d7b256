// Package viewer opens a desktop window showing the fractal and maps the
// keyboard onto level commands.
package viewer

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/akmonengine/sierpinski"
	"github.com/akmonengine/sierpinski/config"
	"github.com/akmonengine/sierpinski/render"
)

// maxBatchVertices keeps DrawTriangles indices within uint16
const maxBatchVertices = 65535 / 3 * 3

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Window is an ebiten game driving a Fractal once per tick. It is also the
// Sink the fractal frames are pushed to.
type Window struct {
	render.Stage

	fractal *sierpinski.Fractal
	width   int
	height  int
	tps     int

	vertices []ebiten.Vertex
	indices  []uint16
}

// Run opens the window and blocks until it is closed or Escape is pressed
func Run(fractal *sierpinski.Fractal, cfg config.Config) error {
	w := New(fractal, cfg)

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Window.TPS)

	err := ebiten.RunGame(w)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}

	return err
}

// New builds the window game, framing the camera on the fractal
func New(fractal *sierpinski.Fractal, cfg config.Config) *Window {
	w := &Window{
		fractal: fractal,
		width:   cfg.Window.Width,
		height:  cfg.Window.Height,
		tps:     cfg.Window.TPS,
	}
	w.Camera = render.NewCamera(cfg.Camera)
	w.Camera.Frame(fractal.Bounds())
	if cfg.Camera.Axes {
		w.AxisLength = 1.5
	}

	return w
}

func (w *Window) Update() error {
	if err := w.Err(); err != nil {
		return fmt.Errorf("draw: %w", err)
	}
	if quitRequested() {
		return ebiten.Termination
	}

	for _, cmd := range pollCommands() {
		if err := w.fractal.Handle(cmd); err != nil && !errors.Is(err, sierpinski.ErrInvalidLevel) {
			return err
		}
	}

	frame := w.fractal.Tick(1.0 / float64(w.tps))
	w.Camera.SetElapsed(w.fractal.Elapsed())

	return render.Push(w, frame)
}

func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(render.Background)

	bounds := screen.Bounds()
	scene, ok := w.Present(bounds.Dx(), bounds.Dy())
	if !ok {
		return
	}

	w.drawTriangles(screen, scene.Triangles)
	for _, line := range scene.Lines {
		vector.StrokeLine(screen,
			float32(line.From.X()), float32(line.From.Y()),
			float32(line.To.X()), float32(line.To.Y()),
			2, line.Color, true)
	}
}

// drawTriangles batches the scene so each call stays within uint16 indices
func (w *Window) drawTriangles(screen *ebiten.Image, triangles []render.Triangle) {
	w.vertices = w.vertices[:0]
	w.indices = w.indices[:0]

	flush := func() {
		if len(w.vertices) == 0 {
			return
		}
		screen.DrawTriangles(w.vertices, w.indices, whiteSubImage, &ebiten.DrawTrianglesOptions{})
		w.vertices = w.vertices[:0]
		w.indices = w.indices[:0]
	}

	for _, tri := range triangles {
		if len(w.vertices)+3 > maxBatchVertices {
			flush()
		}
		r, g, b := float32(tri.Color.R), float32(tri.Color.G), float32(tri.Color.B)
		for _, p := range tri.Points {
			w.indices = append(w.indices, uint16(len(w.vertices)))
			w.vertices = append(w.vertices, ebiten.Vertex{
				DstX:   float32(p.X()),
				DstY:   float32(p.Y()),
				SrcX:   1,
				SrcY:   1,
				ColorR: r,
				ColorG: g,
				ColorB: b,
				ColorA: 1,
			})
		}
	}
	flush()
}

func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		w.width, w.height = outsideWidth, outsideHeight
	}

	return w.width, w.height
}
