package colormath

import (
	"fmt"
	"strings"
)

// Matrix is a 3x3 channel-mixing transform applied to raw 0-255 sRGB values.
type Matrix [3][3]float64

// Preset names accepted by LookupPreset.
const (
	PresetRedGreen   = "red-green"
	PresetProtanopia = "protanopia"
)

var (
	// RedGreen approximates a combined red-green deficiency.
	RedGreen = Matrix{
		{0.625, 0.375, 0},
		{0.7, 0.3, 0},
		{0, 0.3, 0.7},
	}
	// Protanopia approximates missing L cones.
	Protanopia = Matrix{
		{0.56667, 0.43333, 0},
		{0.55833, 0.44167, 0},
		{0, 0.24167, 0.75833},
	}
)

var presetAliases = map[string]string{
	"red-green":    PresetRedGreen,
	"redgreen":     PresetRedGreen,
	"red_green":    PresetRedGreen,
	"deuteranopia": PresetRedGreen,
	"protanopia":   PresetProtanopia,
}

// Presets returns the canonical preset names.
func Presets() []string {
	return []string{PresetRedGreen, PresetProtanopia}
}

// LookupPreset resolves a preset name, case-insensitively.
func LookupPreset(name string) (Matrix, error) {
	switch presetAliases[strings.ToLower(strings.TrimSpace(name))] {
	case PresetRedGreen:
		return RedGreen, nil
	case PresetProtanopia:
		return Protanopia, nil
	}
	return Matrix{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

// CanonicalPreset returns the canonical spelling of a preset name.
func CanonicalPreset(name string) (string, error) {
	if p, ok := presetAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return p, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

// Simulate applies m to the raw channel values of c.
func Simulate(c Color, m Matrix) Color {
	v := [3]float64{float64(c.R), float64(c.G), float64(c.B)}
	var out [3]uint8
	for i, row := range m {
		// Explicit conversions keep each product rounded so results do not
		// depend on whether the platform fuses multiply-add.
		out[i] = channel(float64(row[0]*v[0]) + float64(row[1]*v[1]) + float64(row[2]*v[2]))
	}
	return Color{R: out[0], G: out[1], B: out[2]}
}

// SimulatePreset looks up a preset by name and applies it.
func SimulatePreset(c Color, preset string) (Color, error) {
	m, err := LookupPreset(preset)
	if err != nil {
		return Color{}, err
	}
	return Simulate(c, m), nil
}
