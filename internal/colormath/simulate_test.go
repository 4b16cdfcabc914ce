package colormath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulate_Fixtures(t *testing.T) {
	tests := []struct {
		in         string
		redGreen   string
		protanopia string
	}{
		{"#ff0000", "#9fb300", "#918e00"},
		{"#3366cc", "#4642ad", "#494ab3"},
		{"#4a90e2", "#645fc9", "#6869ce"},
		{"#1e3a5f", "#292654", "#2a2a56"},
		{"#f5a623", "#d7dd4a", "#d3d243"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c := MustParseHex(tt.in)
			assert.Equal(t, tt.redGreen, Simulate(c, RedGreen).Hex())
			assert.Equal(t, tt.protanopia, Simulate(c, Protanopia).Hex())
		})
	}
}

func TestSimulate_PresetsDiffer(t *testing.T) {
	red := MustParseHex("#ff0000")
	assert.NotEqual(t, Simulate(red, RedGreen), Simulate(red, Protanopia))
}

func TestSimulate_GraysAndExtremes(t *testing.T) {
	for _, m := range []Matrix{RedGreen, Protanopia} {
		assert.Equal(t, Black, Simulate(Black, m))
		assert.Equal(t, White, Simulate(White, m))
		assert.Equal(t, "#777777", Simulate(MustParseHex("#777777"), m).Hex())
	}
}

func TestSimulate_ClampsOutOfRange(t *testing.T) {
	boost := Matrix{{2, 0, 0}, {0, -1, 0}, {0, 0, 1}}
	got := Simulate(RGB(200, 100, 50), boost)
	assert.Equal(t, RGB(255, 0, 50), got)
}

func TestLookupPreset(t *testing.T) {
	tests := []struct {
		name string
		want Matrix
	}{
		{"red-green", RedGreen},
		{"RedGreen", RedGreen},
		{"deuteranopia", RedGreen},
		{" Protanopia ", Protanopia},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := LookupPreset(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, m)
		})
	}

	_, err := LookupPreset("tritanopia")
	assert.ErrorIs(t, err, ErrUnknownPreset)
	_, err = LookupPreset("")
	assert.ErrorIs(t, err, ErrUnknownPreset)
}

func TestCanonicalPreset(t *testing.T) {
	name, err := CanonicalPreset("RED_GREEN")
	require.NoError(t, err)
	assert.Equal(t, PresetRedGreen, name)

	_, err = CanonicalPreset("x")
	assert.ErrorIs(t, err, ErrUnknownPreset)
	assert.Equal(t, []string{PresetRedGreen, PresetProtanopia}, Presets())
}

func TestSimulatePreset(t *testing.T) {
	got, err := SimulatePreset(MustParseHex("#FF0000"), "protanopia")
	require.NoError(t, err)
	assert.Equal(t, "#918e00", got.Hex())

	_, err = SimulatePreset(White, "nope")
	assert.ErrorIs(t, err, ErrUnknownPreset)
}
