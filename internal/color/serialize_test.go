package color_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colorpeek/colorpeek/internal/color"
)

// TestHexRoundTrip checks that any 6-digit hex literal survives a parse and
// re-serialize unchanged, normalized to lowercase.
func TestHexRoundTrip(t *testing.T) {
	inputs := []string{
		"#000000", "#ffffff", "#ff0000", "#00ff00", "#0000ff",
		"#1a2b3c", "#deadbe", "#c0ffee", "#ABCDEF",
	}
	for _, input := range inputs {
		c, _, ok := color.Parse(input)
		require.True(t, ok, input)
		got, ok := color.Serialize(c, color.FormatHex)
		require.True(t, ok, input)

		want := input
		if want == "#ABCDEF" {
			want = "#abcdef"
		}
		assert.Equal(t, want, got)
	}
}

// TestHexAlphaRoundTrip checks exact round-tripping of 8-digit hex literals,
// including fully opaque ones.
func TestHexAlphaRoundTrip(t *testing.T) {
	for _, input := range []string{"#ff000080", "#00112233", "#aabbccff", "#12345601"} {
		c, format, ok := color.Parse(input)
		require.True(t, ok, input)
		assert.Equal(t, color.FormatHexAlpha, format)

		got, ok := color.Serialize(c, color.FormatHexAlpha)
		require.True(t, ok, input)
		assert.Equal(t, input, got)
	}
}

// TestOpaqueOnlyFormatsRejectTranslucency checks that plain hex, rgb and hsl
// refuse colors with alpha below 1, forcing callers down the priority chain.
func TestOpaqueOnlyFormatsRejectTranslucency(t *testing.T) {
	c, _, ok := color.Parse("rgba(10, 20, 30, 0.5)")
	require.True(t, ok)

	for _, format := range []color.Format{color.FormatHex, color.FormatRGB, color.FormatHSL} {
		_, ok := color.Serialize(c, format)
		assert.False(t, ok, format.String())
	}
	for _, format := range []color.Format{color.FormatHexAlpha, color.FormatRGBA, color.FormatHSLA, color.FormatTailwind} {
		_, ok := color.Serialize(c, format)
		assert.True(t, ok, format.String())
	}
}

func TestSerializeFormats(t *testing.T) {
	red, _, ok := color.Parse("#ff0000")
	require.True(t, ok)

	tests := []struct {
		format color.Format
		want   string
	}{
		{color.FormatHex, "#ff0000"},
		{color.FormatHexAlpha, "#ff0000ff"},
		{color.FormatRGB, "rgb(255, 0, 0)"},
		{color.FormatRGBA, "rgba(255, 0, 0, 1.00)"},
		{color.FormatHSL, "hsl(0, 100%, 50%)"},
		{color.FormatHSLA, "hsla(0, 100%, 50%, 1.00)"},
		{color.FormatTailwind, "0 100% 50%"},
	}
	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			got, ok := color.Serialize(red, tt.format)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSerializeTailwindWithAlpha(t *testing.T) {
	c, _, ok := color.Parse("0 100% 50% / 0.5")
	require.True(t, ok)
	got, ok := color.Serialize(c, color.FormatTailwind)
	require.True(t, ok)
	assert.Equal(t, "0 100% 50% / 0.50", got)
}

// TestPriorityCoversAllFormats checks that every source format yields a
// deterministic, duplicate-free ordering over all seven formats, starting
// with the source format itself.
func TestPriorityCoversAllFormats(t *testing.T) {
	sources := []color.Format{
		color.FormatHex, color.FormatHexAlpha,
		color.FormatRGB, color.FormatRGBA,
		color.FormatHSL, color.FormatHSLA,
		color.FormatTailwind,
	}
	for _, source := range sources {
		order := color.Priority(source)
		require.Len(t, order, 7, source.String())
		assert.Equal(t, source, order[0], "priority starts with the source format")

		seen := map[color.Format]bool{}
		for _, f := range order {
			assert.False(t, seen[f], fmt.Sprintf("duplicate %s for source %s", f, source))
			seen[f] = true
		}
	}
}

// TestPresentationsFallThrough checks that a translucent color skips the
// opaque-only formats but still offers every representable alternative.
func TestPresentationsFallThrough(t *testing.T) {
	c, source, ok := color.Parse("#ff000080")
	require.True(t, ok)

	presentations := color.Presentations(c, source)
	require.NotEmpty(t, presentations)
	assert.Equal(t, "#ff000080", presentations[0])
	for _, p := range presentations {
		assert.NotEqual(t, "#ff0000", p)
		assert.NotContains(t, p, "rgb(")
		assert.NotContains(t, p, "hsl(")
	}
}

func TestParseFormatNames(t *testing.T) {
	for _, f := range []color.Format{
		color.FormatHex, color.FormatHexAlpha,
		color.FormatRGB, color.FormatRGBA,
		color.FormatHSL, color.FormatHSLA,
		color.FormatTailwind,
	} {
		assert.Equal(t, f, color.ParseFormat(f.String()), f.String())
	}
	assert.Equal(t, color.FormatUnknown, color.ParseFormat("cmyk"))
}
