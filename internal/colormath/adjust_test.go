package colormath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLightenDarken_Golden(t *testing.T) {
	tests := []struct {
		in, light, dark string
	}{
		{"#ff0000", "#ff3333", "#cc0000"},
		{"#3366cc", "#5c85d6", "#2952a3"},
		{"#4a90e2", "#6ea6e8", "#3b73b5"},
		{"#1e3a5f", "#4b617f", "#182e4c"},
		{"#f5a623", "#f7b84f", "#c4851c"},
		{"#777777", "#929292", "#5f5f5f"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c := MustParseHex(tt.in)

			l, err := Lighten(c, 20)
			require.NoError(t, err)
			assert.Equal(t, tt.light, l.Hex())

			d, err := Darken(c, 20)
			require.NoError(t, err)
			assert.Equal(t, tt.dark, d.Hex())
		})
	}
}

func TestLightenDarken_Monotonic(t *testing.T) {
	for _, c := range samples {
		for _, p := range []float64{0, 1, 20, 50, 99.9, 100} {
			l, err := Lighten(c, p)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, l.R, c.R)
			assert.GreaterOrEqual(t, l.G, c.G)
			assert.GreaterOrEqual(t, l.B, c.B)

			d, err := Darken(c, p)
			require.NoError(t, err)
			assert.LessOrEqual(t, d.R, c.R)
			assert.LessOrEqual(t, d.G, c.G)
			assert.LessOrEqual(t, d.B, c.B)
		}
	}
}

func TestLightenDarken_Extremes(t *testing.T) {
	for _, c := range samples {
		l, err := Lighten(c, 100)
		require.NoError(t, err)
		assert.Equal(t, White, l)

		d, err := Darken(c, 100)
		require.NoError(t, err)
		assert.Equal(t, Black, d)

		same, err := Lighten(c, 0)
		require.NoError(t, err)
		assert.Equal(t, c, same)

		same, err = Darken(c, 0)
		require.NoError(t, err)
		assert.Equal(t, c, same)
	}
}

func TestLightenDarken_RejectsBadPercent(t *testing.T) {
	for _, p := range []float64{-1, -0.0001, 100.5, 101, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := Lighten(Black, p)
		assert.ErrorIs(t, err, ErrInvalidArgument, "lighten %v", p)

		_, err = Darken(White, p)
		assert.ErrorIs(t, err, ErrInvalidArgument, "darken %v", p)
	}
}

func TestComplementary_Golden(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"#ff0000", "#00ffff"},
		{"#00ff00", "#ff00ff"},
		{"#0000ff", "#ffff00"},
		{"#3366cc", "#cc9933"},
		{"#808080", "#808080"},
		{"#000000", "#000000"},
		{"#ffffff", "#ffffff"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Complementary(MustParseHex(tt.in)).Hex())
		})
	}
}

func TestComplementary_NearInvolution(t *testing.T) {
	for _, c := range samples {
		back := Complementary(Complementary(c))
		assert.InDelta(t, int(c.R), int(back.R), 1, c.Hex())
		assert.InDelta(t, int(c.G), int(back.G), 1, c.Hex())
		assert.InDelta(t, int(c.B), int(back.B), 1, c.Hex())
	}
}

func TestInvert(t *testing.T) {
	assert.Equal(t, White, Invert(Black))
	assert.Equal(t, "#cc9933", Invert(MustParseHex("#3366cc")).Hex())
	assert.Equal(t, "#00ffff", Invert(MustParseHex("#ff0000")).Hex())
}
