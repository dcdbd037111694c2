package gpu

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGBA is a linear color with components in [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Named engine colors. DebugColor is a bright purple reserved for
// debugging; None clears to opaque black when a color is not meaningful
// but the screen must still be cleared.
var (
	Red         = RGBA{1, 0, 0, 1}
	Green       = RGBA{0, 1, 0, 1}
	Blue        = RGBA{0, 0, 1, 1}
	White       = RGBA{1, 1, 1, 1}
	Black       = RGBA{0, 0, 0, 1}
	Yellow      = RGBA{1, 1, 0, 1}
	Cyan        = RGBA{0, 1, 1, 1}
	Magenta     = RGBA{1, 0, 1, 1}
	Gray        = RGBA{0.3, 0.3, 0.3, 1}
	Transparent = RGBA{0, 0, 0, 0}
	DebugColor  = RGBA{1, 0, 1, 1}
	None        = RGBA{0, 0, 0, 1}
)

// FromHSV converts hue (degrees, [0, 360)), saturation and value ([0, 1])
// to an opaque RGBA.
func FromHSV(h, s, v float64) RGBA {
	c := colorful.Hsv(h, s, v)
	return RGBA{R: c.R, G: c.G, B: c.B, A: 1}
}

// FromHex parses a "#rrggbb" or "#rgb" hex string into an opaque RGBA.
func FromHex(hex string) (RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return RGBA{}, fmt.Errorf("gpu: parse color %q: %w", hex, err)
	}
	return RGBA{R: c.R, G: c.G, B: c.B, A: 1}, nil
}

// FromCMYK converts cyan/magenta/yellow/key components in [0, 1] to an
// opaque RGBA.
func FromCMYK(c, m, y, k float64) RGBA {
	return RGBA{
		R: (1 - c) * (1 - k),
		G: (1 - m) * (1 - k),
		B: (1 - y) * (1 - k),
		A: 1,
	}
}
