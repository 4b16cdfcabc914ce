package typography

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name           string
		px, base       float64
		pt, rem, sp    string
		wantBase       float64
		wantRenderedPx float64
	}{
		{"root size", 16, DefaultBase, "12.0pt", "1.00rem", "16sp", 16, 16},
		{"explicit base", 24, 16, "18.0pt", "1.50rem", "24sp", 16, 24},
		{"fractional", 17.6, 16, "13.2pt", "1.10rem", "17.6sp", 16, 17.6},
		{"custom base", 20, 10, "15.0pt", "2.00rem", "20sp", 10, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := Convert(tt.px, tt.base)
			require.NoError(t, err)
			assert.Equal(t, tt.pt, u.PtLabel())
			assert.Equal(t, tt.rem, u.RemLabel())
			assert.Equal(t, tt.sp, u.SpLabel())
			assert.Equal(t, tt.wantBase, u.Base)
			assert.InDelta(t, tt.wantRenderedPx, u.RemPx(), 1e-9)
		})
	}
}

func TestConvert_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		px, base float64
	}{
		{"zero size", 0, 16},
		{"negative size", -4, 16},
		{"zero base", 16, 0},
		{"negative base", 16, -1},
		{"nan size", math.NaN(), 16},
		{"inf base", 16, math.Inf(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Convert(tt.px, tt.base)
			assert.ErrorIs(t, err, ErrInvalidSize)
		})
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		in   string
		want Size
	}{
		{"17pt", Size{17, "pt"}},
		{"16sp", Size{16, "sp"}},
		{"14.5px", Size{14.5, "px"}},
		{" 34 PT ", Size{34, "pt"}},
		{"12", Size{12, ""}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSize(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, in := range []string{"", "pt", "abc", "..pt"} {
		_, err := ParseSize(in)
		assert.ErrorIs(t, err, ErrInvalidSize, in)
	}
}

func TestPixelSize(t *testing.T) {
	n, err := PixelSize("17pt")
	require.NoError(t, err)
	assert.Equal(t, 17, n)

	n, err = PixelSize("14.9px")
	require.NoError(t, err)
	assert.Equal(t, 14, n)

	_, err = PixelSize("0sp")
	assert.ErrorIs(t, err, ErrInvalidSize)
}
