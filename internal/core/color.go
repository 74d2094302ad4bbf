package core

import "fmt"

// RGBA is a color with float components in [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// NewRGBA creates an opaque color.
func NewRGBA(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// Darken returns a darker variant of the color, scaling the RGB channels
// by the given factor while preserving alpha.
func (c RGBA) Darken(factor float64) RGBA {
	factor = ClampF(factor, 0, 1)
	return RGBA{R: c.R * factor, G: c.G * factor, B: c.B * factor, A: c.A}
}

// Hex returns the color as a "#rrggbb" string for terminal styling.
func (c RGBA) Hex() string {
	to255 := func(v float64) int {
		return int(ClampF(v, 0, 1)*255 + 0.5)
	}
	return fmt.Sprintf("#%02x%02x%02x", to255(c.R), to255(c.G), to255(c.B))
}
