package color

import (
	"fmt"
	"math"
	"strconv"
)

// Serialize renders a color in the requested format. Formats without an
// alpha channel (plain hex, rgb, hsl) refuse non-opaque colors, returning
// ok=false so callers fall through the Priority chain instead.
func Serialize(c Color, format Format) (string, bool) {
	switch format {
	case FormatHex:
		if !Opaque(c) {
			return "", false
		}
		return fmt.Sprintf("#%02x%02x%02x", Channel255(c.R), Channel255(c.G), Channel255(c.B)), true

	case FormatHexAlpha:
		return fmt.Sprintf("#%02x%02x%02x%02x",
			Channel255(c.R), Channel255(c.G), Channel255(c.B), Channel255(c.A)), true

	case FormatRGB:
		if !Opaque(c) {
			return "", false
		}
		return fmt.Sprintf("rgb(%d, %d, %d)", Channel255(c.R), Channel255(c.G), Channel255(c.B)), true

	case FormatRGBA:
		return fmt.Sprintf("rgba(%d, %d, %d, %s)",
			Channel255(c.R), Channel255(c.G), Channel255(c.B), formatAlpha(c.A)), true

	case FormatHSL:
		if !Opaque(c) {
			return "", false
		}
		h, s, l := HSL(c)
		return fmt.Sprintf("hsl(%s, %s%%, %s%%)", formatNumber(h), formatNumber(s), formatNumber(l)), true

	case FormatHSLA:
		h, s, l := HSL(c)
		return fmt.Sprintf("hsla(%s, %s%%, %s%%, %s)",
			formatNumber(h), formatNumber(s), formatNumber(l), formatAlpha(c.A)), true

	case FormatTailwind:
		h, s, l := HSL(c)
		triple := fmt.Sprintf("%s %s%% %s%%", formatNumber(h), formatNumber(s), formatNumber(l))
		if Opaque(c) {
			return triple, true
		}
		return triple + " / " + formatAlpha(c.A), true

	default:
		return "", false
	}
}

// Presentations returns every representable serialization of a color in the
// priority order for the given source format.
func Presentations(c Color, source Format) []string {
	var result []string
	for _, format := range Priority(source) {
		if text, ok := Serialize(c, format); ok {
			result = append(result, text)
		}
	}
	return result
}

// formatNumber renders a hue/saturation/lightness component rounded to two
// decimal places, without trailing zeros.
func formatNumber(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

// formatAlpha renders an alpha channel with exactly two decimal places.
func formatAlpha(a float64) string {
	return fmt.Sprintf("%.2f", clamp01(a))
}
