package colormath

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Lighten moves every channel percent% of the way toward 255.
// percent must be a finite value in [0, 100].
func Lighten(c Color, percent float64) (Color, error) {
	if err := checkPercent(percent); err != nil {
		return Color{}, err
	}
	f := percent / 100
	up := func(v uint8) uint8 {
		return channel(float64(v) + float64((255-float64(v))*f))
	}
	return Color{R: up(c.R), G: up(c.G), B: up(c.B)}, nil
}

// Darken moves every channel percent% of the way toward 0.
// percent must be a finite value in [0, 100].
func Darken(c Color, percent float64) (Color, error) {
	if err := checkPercent(percent); err != nil {
		return Color{}, err
	}
	f := 1 - percent/100
	return Color{
		R: channel(float64(c.R) * f),
		G: channel(float64(c.G) * f),
		B: channel(float64(c.B) * f),
	}, nil
}

func checkPercent(p float64) error {
	if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 || p > 100 {
		return fmt.Errorf("%w: percent %v outside [0, 100]", ErrInvalidArgument, p)
	}
	return nil
}

// Complementary rotates the hue of c by 180 degrees in HSL, keeping
// saturation and lightness. Grays map to themselves.
func Complementary(c Color) Color {
	if c.R == c.G && c.G == c.B {
		return c
	}
	h, s, l := c.Colorful().Hsl()
	return FromColorful(colorful.Hsl(math.Mod(h+180, 360), s, l))
}

// Invert returns the RGB inverse of c (255 minus each channel).
func Invert(c Color) Color {
	return Color{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B}
}
