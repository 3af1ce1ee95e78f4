// Package color recognizes CSS color literals, converts them to a canonical
// RGBA value, and re-serializes them into equivalent textual notations.
package color

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
)

// Color is the canonical color value: red, green, blue and alpha channels,
// each a fraction in [0,1]. Alpha defaults to 1 when the source text carries
// no alpha component.
type Color = csscolorparser.Color

// New builds a Color from channel fractions, clamping each to [0,1].
func New(r, g, b, a float64) Color {
	return Color{
		R: clamp01(r),
		G: clamp01(g),
		B: clamp01(b),
		A: clamp01(a),
	}
}

// Canonical returns the normalized canonical string form of a color: a
// lowercase hex string, with an alpha byte only when the color is not opaque.
func Canonical(c Color) string {
	return c.HexString()
}

// Opaque reports whether the color's alpha channel is 1.
func Opaque(c Color) bool {
	return c.A > 1-1e-9
}

// Channel255 converts a channel fraction to its nearest 0-255 integer.
func Channel255(v float64) int {
	return int(math.Round(clamp01(v) * 255))
}

// HSL returns the color's hue (degrees), saturation and lightness (percent).
func HSL(c Color) (h, s, l float64) {
	h, s, l = colorful.Color{R: c.R, G: c.G, B: c.B}.Hsl()
	return h, s * 100, l * 100
}

// FromHSL builds an opaque-by-default Color from hue in degrees and
// saturation/lightness percentages, clamping inputs to their CSS ranges.
func FromHSL(h, s, l, a float64) Color {
	h = clamp(h, 0, 360)
	if h == 360 {
		h = 0
	}
	rgb := colorful.Hsl(h, clamp(s, 0, 100)/100, clamp(l, 0, 100)/100)
	return New(rgb.R, rgb.G, rgb.B, a)
}

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
