// Package colormath implements the sRGB color math behind the design guide:
// hex conversion, WCAG luminance and contrast, lighten/darken, complementary
// colors and a linear color-blindness simulation.
//
// Every function is pure. Colors are small values and are passed by value.
package colormath

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	// ErrInvalidFormat is returned for anything that is not "#rrggbb" or "rrggbb".
	ErrInvalidFormat = errors.New("invalid hex color")
	// ErrInvalidArgument is returned for out-of-range numeric parameters.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnknownPreset is returned when a simulation preset name is not recognized.
	ErrUnknownPreset = errors.New("unknown color-blindness preset")
)

// Color is an opaque 24-bit sRGB color.
type Color struct {
	R, G, B uint8
}

// Common colors
var (
	Black    = Color{0, 0, 0}
	White    = Color{255, 255, 255}
	Charcoal = Color{0x33, 0x33, 0x33}
)

// RGB builds a Color from channel values.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// ParseHex parses "#rrggbb" or "rrggbb", case-insensitive.
// Shorthand forms ("#fff"), alpha forms and surrounding whitespace are rejected.
func ParseHex(s string) (Color, error) {
	hex := s
	if len(hex) > 0 && hex[0] == '#' {
		hex = hex[1:]
	}
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	for i := 0; i < len(hex); i++ {
		if !isHexDigit(hex[i]) {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
		}
	}

	var ch [3]uint8
	for i := range ch {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
		}
		ch[i] = uint8(v)
	}
	return Color{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// MustParseHex is like ParseHex but panics on malformed input.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseHexOr parses s and returns fallback when it is malformed.
// The boolean reports whether s parsed.
func ParseHexOr(s string, fallback Color) (Color, bool) {
	c, err := ParseHex(s)
	if err != nil {
		return fallback, false
	}
	return c, true
}

// NormalizeHex returns the canonical lowercase "#rrggbb" form of s.
func NormalizeHex(s string) (string, error) {
	c, err := ParseHex(s)
	if err != nil {
		return "", err
	}
	return c.Hex(), nil
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// Hex formats the color as lowercase "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) String() string {
	return c.Hex()
}

// RGBA implements image/color.Color. The color is always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// Colorful converts to a go-colorful color with channels in [0, 1].
func (c Color) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// FromColorful converts a go-colorful color back to 8-bit channels,
// rounding half away from zero and clamping out-of-gamut values.
func FromColorful(cf colorful.Color) Color {
	return Color{
		R: channel(cf.R * 255),
		G: channel(cf.G * 255),
		B: channel(cf.B * 255),
	}
}

// channel rounds v to the nearest integer and clamps it to [0, 255].
func channel(v float64) uint8 {
	v = math.Round(v)
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
