package colormath

import (
	"image/color"
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Color
	}{
		{"red uppercase with hash", "#FF0000", Color{255, 0, 0}},
		{"no hash", "00ff00", Color{0, 255, 0}},
		{"mixed case", "#aBcDeF", Color{0xab, 0xcd, 0xef}},
		{"black", "#000000", Black},
		{"white", "#ffffff", White},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseHex_InvalidFormat(t *testing.T) {
	for _, in := range []string{
		"",
		"#",
		"#fff",
		"fff",
		"#ZZZZZZ",
		"#12345",
		"#1234567",
		"#ff0000ff",
		"##ff0000",
		" #ff0000",
		"#ff 000",
		"+f0000",
	} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseHex(in)
			assert.ErrorIs(t, err, ErrInvalidFormat)
		})
	}
}

func TestHex_ZeroPadsLowercase(t *testing.T) {
	assert.Equal(t, "#000000", Black.Hex())
	assert.Equal(t, "#ffffff", White.Hex())
	assert.Equal(t, "#0a0b0c", RGB(10, 11, 12).Hex())
	assert.Equal(t, "#333333", Charcoal.String())
}

func TestHex_RoundTrip(t *testing.T) {
	for _, s := range []string{"#FF0000", "3366cc", "#4A90E2", "#00000f", "f5a623"} {
		c, err := ParseHex(s)
		require.NoError(t, err)
		want := "#" + strings.ToLower(strings.TrimPrefix(s, "#"))
		assert.Equal(t, want, c.Hex(), "round trip of %s", s)
	}

	// Every channel value survives formatting and parsing.
	for v := 0; v <= 255; v++ {
		c := RGB(uint8(v), uint8(255-v), uint8(v/2))
		back, err := ParseHex(c.Hex())
		require.NoError(t, err)
		require.Equal(t, c, back)
	}
}

func TestParseHexOr(t *testing.T) {
	c, ok := ParseHexOr("nope", Black)
	assert.False(t, ok)
	assert.Equal(t, Black, c)

	c, ok = ParseHexOr("#ffffff", Black)
	assert.True(t, ok)
	assert.Equal(t, White, c)
}

func TestNormalizeHex(t *testing.T) {
	got, err := NormalizeHex("ABCDEF")
	require.NoError(t, err)
	assert.Equal(t, "#abcdef", got)

	_, err = NormalizeHex("#abc")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestMustParseHex_Panics(t *testing.T) {
	assert.Panics(t, func() { MustParseHex("#12") })
}

func TestColor_ImplementsImageColor(t *testing.T) {
	var c color.Color = RGB(255, 0, 0)
	r, g, b, a := c.RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0), g)
	assert.Equal(t, uint32(0), b)
	assert.Equal(t, uint32(0xffff), a)
}

func TestColorful_RoundTrip(t *testing.T) {
	c := MustParseHex("#4a90e2")
	assert.Equal(t, c, FromColorful(c.Colorful()))
	assert.Equal(t, White, FromColorful(colorful.Color{R: 1.2, G: 1, B: 1}))
	assert.Equal(t, Black, FromColorful(colorful.Color{R: -0.1}))
}
