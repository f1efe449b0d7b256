package instance

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette holds one color per tetrahedron corner
type Palette [4]colorful.Color

// DefaultPalette returns red, green, blue and white
func DefaultPalette() Palette {
	return Palette{
		{R: 1, G: 0, B: 0},
		{R: 0, G: 1, B: 0},
		{R: 0, G: 0, B: 1},
		{R: 1, G: 1, B: 1},
	}
}

// ParsePalette reads four "#rrggbb" colors
func ParsePalette(hexes []string) (Palette, error) {
	var p Palette
	if len(hexes) != len(p) {
		return p, fmt.Errorf("palette needs %d colors, got %d", len(p), len(hexes))
	}

	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			return p, fmt.Errorf("palette color %d: %w", i, err)
		}
		p[i] = c
	}

	return p, nil
}

// ColorOf returns the color of leaf index: the corner picked at the deepest
// recursion step, palette[index mod 4].
func (p Palette) ColorOf(index int) colorful.Color {
	return p[index%len(p)]
}

// Hex returns the palette as "#rrggbb" strings
func (p Palette) Hex() []string {
	out := make([]string, len(p))
	for i, c := range p {
		out[i] = c.Hex()
	}

	return out
}
