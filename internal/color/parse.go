package color

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Recognized grammars, tried in this fixed order; the first one that matches
// wins. Each returns the canonical value plus the notation it was written in.
var grammars = []func(string) (Color, Format, bool){
	parseHex,
	parseRGBFunction,
	parseHSLFunction,
	parseBareTriple,
}

// Parse converts a raw textual token to its canonical color value and source
// format. Returns ok=false when the text matches no recognized grammar.
func Parse(text string) (Color, Format, bool) {
	text = strings.TrimSpace(text)
	for _, grammar := range grammars {
		if c, f, ok := grammar(text); ok {
			return c, f, true
		}
	}
	return Color{}, FormatUnknown, false
}

var (
	hexPattern        = regexp.MustCompile(`^#([0-9a-fA-F]{3,4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	rgbPattern        = regexp.MustCompile(`^(rgba?)\(\s*([^()]*?)\s*\)$`)
	hslPattern        = regexp.MustCompile(`^(hsla?)\(\s*([^()]*?)\s*\)$`)
	bareTriplePattern = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s+(\d+(?:\.\d+)?)%\s+(\d+(?:\.\d+)?)%(?:\s*/\s*(\S+))?$`)
)

// parseHex handles #RGB, #RGBA, #RRGGBB and #RRGGBBAA, case-insensitively.
// 3/4-digit forms are channel-doubled before conversion. An alpha nibble
// marks the format as hex-with-alpha.
func parseHex(text string) (Color, Format, bool) {
	m := hexPattern.FindStringSubmatch(text)
	if m == nil {
		return Color{}, FormatUnknown, false
	}

	digits := strings.ToLower(m[1])
	if len(digits) <= 4 {
		var doubled strings.Builder
		for _, r := range digits {
			doubled.WriteRune(r)
			doubled.WriteRune(r)
		}
		digits = doubled.String()
	}

	channel := func(i int) float64 {
		v, _ := strconv.ParseUint(digits[i:i+2], 16, 16)
		return float64(v) / 255
	}

	format := FormatHex
	alpha := 1.0
	if len(digits) == 8 {
		format = FormatHexAlpha
		alpha = channel(6)
	}
	return New(channel(0), channel(2), channel(4), alpha), format, true
}

// parseRGBFunction handles rgb(...) and rgba(...) with comma- or
// space-separated components. A component may be a percentage (scaled to
// 0-255) or a bare number (clamped and rounded). The presence of "rgba", a
// fourth component, or a "/" marks the format as rgba.
func parseRGBFunction(text string) (Color, Format, bool) {
	m := rgbPattern.FindStringSubmatch(text)
	if m == nil {
		return Color{}, FormatUnknown, false
	}

	fields, alphaText, hasAlpha := splitComponents(m[2])
	if len(fields) != 3 {
		return Color{}, FormatUnknown, false
	}

	var channels [3]float64
	for i, field := range fields {
		v, ok := parseRGBChannel(field)
		if !ok {
			return Color{}, FormatUnknown, false
		}
		channels[i] = v
	}

	format := FormatRGB
	if m[1] == "rgba" || hasAlpha {
		format = FormatRGBA
	}
	return New(channels[0]/255, channels[1]/255, channels[2]/255, parseAlpha(alphaText)), format, true
}

// parseHSLFunction handles hsl(...) and hsla(...): hue is a bare number
// clamped to 0-360, saturation and lightness are percentages clamped to
// 0-100. Separator and alpha rules match the rgb grammar.
func parseHSLFunction(text string) (Color, Format, bool) {
	m := hslPattern.FindStringSubmatch(text)
	if m == nil {
		return Color{}, FormatUnknown, false
	}

	fields, alphaText, hasAlpha := splitComponents(m[2])
	if len(fields) != 3 {
		return Color{}, FormatUnknown, false
	}

	h, okH := parseNumber(fields[0])
	s, okS := parseNumber(strings.TrimSuffix(fields[1], "%"))
	l, okL := parseNumber(strings.TrimSuffix(fields[2], "%"))
	if !okH || !okS || !okL {
		return Color{}, FormatUnknown, false
	}

	format := FormatHSL
	if m[1] == "hsla" || hasAlpha {
		format = FormatHSLA
	}
	return FromHSL(h, s, l, parseAlpha(alphaText)), format, true
}

// parseBareTriple handles the compact utility form "H S% L%", optionally
// followed by "/ A", with no enclosing function name. The scanner is
// responsible for the surrounding-context guard; here the token must consist
// of the triple alone.
func parseBareTriple(text string) (Color, Format, bool) {
	m := bareTriplePattern.FindStringSubmatch(text)
	if m == nil {
		return Color{}, FormatUnknown, false
	}

	h, _ := parseNumber(m[1])
	s, _ := parseNumber(m[2])
	l, _ := parseNumber(m[3])
	return FromHSL(h, s, l, parseAlpha(m[4])), FormatTailwind, true
}

// splitComponents splits a functional-notation argument list into its three
// leading components plus an optional alpha component, which may follow
// either a "/" or a fourth comma.
func splitComponents(args string) (fields []string, alphaText string, hasAlpha bool) {
	if slash := strings.Index(args, "/"); slash >= 0 {
		alphaText = strings.TrimSpace(args[slash+1:])
		args = args[:slash]
		hasAlpha = true
	}

	fields = strings.FieldsFunc(args, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if !hasAlpha && len(fields) == 4 {
		alphaText = fields[3]
		fields = fields[:3]
		hasAlpha = true
	}
	return fields, alphaText, hasAlpha
}

// parseRGBChannel converts one rgb() component to a 0-255 value.
func parseRGBChannel(field string) (float64, bool) {
	if strings.HasSuffix(field, "%") {
		v, ok := parseNumber(strings.TrimSuffix(field, "%"))
		if !ok {
			return 0, false
		}
		return clamp(v, 0, 100) * 255 / 100, true
	}
	v, ok := parseNumber(field)
	if !ok {
		return 0, false
	}
	return float64(int(clamp(v, 0, 255) + 0.5)), true
}

// parseAlpha applies the shared alpha rule: absent means 1, a percentage is
// scaled into [0,1], a bare number is clamped to [0,1], and non-numeric text
// fails open to 1 rather than rejecting the whole color.
func parseAlpha(text string) float64 {
	text = strings.TrimSpace(text)
	if text == "" {
		return 1
	}
	if strings.HasSuffix(text, "%") {
		v, ok := parseNumber(strings.TrimSuffix(text, "%"))
		if !ok {
			return 1
		}
		return clamp(v, 0, 100) / 100
	}
	v, ok := parseNumber(text)
	if !ok {
		return 1
	}
	return clamp01(v)
}

func parseNumber(text string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
