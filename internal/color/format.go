package color

// Format identifies the textual notation a color was written in, or should be
// serialized to.
type Format int

const (
	FormatUnknown Format = iota
	// FormatHex is #RGB / #RRGGBB without an alpha channel
	FormatHex
	// FormatHexAlpha is #RGBA / #RRGGBBAA with an alpha channel
	FormatHexAlpha
	// FormatRGB is rgb(...) without an alpha component
	FormatRGB
	// FormatRGBA is rgba(...) or rgb(...) with an alpha component
	FormatRGBA
	// FormatHSL is hsl(...) without an alpha component
	FormatHSL
	// FormatHSLA is hsla(...) or hsl(...) with an alpha component
	FormatHSLA
	// FormatTailwind is the bare "H S% L%" utility triple, optionally "/ A"
	FormatTailwind
)

// String returns the lowercase name used in CLI flags and log output.
func (f Format) String() string {
	switch f {
	case FormatHex:
		return "hex"
	case FormatHexAlpha:
		return "hex-alpha"
	case FormatRGB:
		return "rgb"
	case FormatRGBA:
		return "rgba"
	case FormatHSL:
		return "hsl"
	case FormatHSLA:
		return "hsla"
	case FormatTailwind:
		return "tailwind"
	default:
		return "unknown"
	}
}

// ParseFormat converts a format name to its Format. Unrecognized names
// return FormatUnknown.
func ParseFormat(name string) Format {
	switch name {
	case "hex":
		return FormatHex
	case "hex-alpha", "hexa", "hexAlpha":
		return FormatHexAlpha
	case "rgb":
		return FormatRGB
	case "rgba":
		return FormatRGBA
	case "hsl":
		return FormatHSL
	case "hsla":
		return FormatHSLA
	case "tailwind":
		return FormatTailwind
	default:
		return FormatUnknown
	}
}

// priorities maps each source format to the preferred serialization order for
// round-trip replacements: formats close to what the user originally wrote
// come first, with a deterministic fallback chain over the remaining forms.
var priorities = map[Format][]Format{
	FormatHex:      {FormatHex, FormatRGB, FormatHSL, FormatTailwind, FormatHexAlpha, FormatRGBA, FormatHSLA},
	FormatHexAlpha: {FormatHexAlpha, FormatRGBA, FormatHSLA, FormatHex, FormatRGB, FormatHSL, FormatTailwind},
	FormatRGB:      {FormatRGB, FormatHex, FormatHSL, FormatTailwind, FormatRGBA, FormatHexAlpha, FormatHSLA},
	FormatRGBA:     {FormatRGBA, FormatHexAlpha, FormatHSLA, FormatRGB, FormatHex, FormatHSL, FormatTailwind},
	FormatHSL:      {FormatHSL, FormatHex, FormatRGB, FormatTailwind, FormatHSLA, FormatHexAlpha, FormatRGBA},
	FormatHSLA:     {FormatHSLA, FormatHexAlpha, FormatRGBA, FormatHSL, FormatHex, FormatRGB, FormatTailwind},
	FormatTailwind: {FormatTailwind, FormatHSL, FormatHex, FormatRGB, FormatHSLA, FormatHexAlpha, FormatRGBA},
}

// Priority returns the serialization preference order for a source format,
// duplicates removed. Unknown sources get the hex chain.
func Priority(source Format) []Format {
	order, ok := priorities[source]
	if !ok {
		order = priorities[FormatHex]
	}
	result := make([]Format, 0, len(order))
	seen := map[Format]bool{}
	for _, f := range order {
		if seen[f] {
			continue
		}
		seen[f] = true
		result = append(result, f)
	}
	return result
}
