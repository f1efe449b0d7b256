package render

import (
	"image"
	"io"

	"github.com/fogleman/gg"
)

// Snapshot is a headless Sink rasterizing the last submitted frame to an
// image.
type Snapshot struct {
	Stage
	Width  int
	Height int
}

func NewSnapshot(camera Camera, width, height int) *Snapshot {
	return &Snapshot{Stage: Stage{Camera: camera}, Width: width, Height: height}
}

func (s *Snapshot) context() (*gg.Context, error) {
	scene, err := s.Scene(s.Width, s.Height)
	if err != nil {
		return nil, err
	}

	dc := gg.NewContext(s.Width, s.Height)
	dc.SetRGB(Background.R, Background.G, Background.B)
	dc.Clear()

	for _, tri := range scene.Triangles {
		dc.MoveTo(tri.Points[0].X(), tri.Points[0].Y())
		dc.LineTo(tri.Points[1].X(), tri.Points[1].Y())
		dc.LineTo(tri.Points[2].X(), tri.Points[2].Y())
		dc.ClosePath()
		dc.SetRGB(tri.Color.R, tri.Color.G, tri.Color.B)
		dc.Fill()
	}

	dc.SetLineWidth(2)
	for _, line := range scene.Lines {
		dc.SetRGB(line.Color.R, line.Color.G, line.Color.B)
		dc.DrawLine(line.From.X(), line.From.Y(), line.To.X(), line.To.Y())
		dc.Stroke()
	}

	return dc, nil
}

// Render rasterizes the last submitted frame
func (s *Snapshot) Render() (image.Image, error) {
	dc, err := s.context()
	if err != nil {
		return nil, err
	}

	return dc.Image(), nil
}

// EncodePNG writes the rendered frame as PNG
func (s *Snapshot) EncodePNG(w io.Writer) error {
	dc, err := s.context()
	if err != nil {
		return err
	}

	return dc.EncodePNG(w)
}

// SavePNG writes the rendered frame to path
func (s *Snapshot) SavePNG(path string) error {
	dc, err := s.context()
	if err != nil {
		return err
	}

	return dc.SavePNG(path)
}
