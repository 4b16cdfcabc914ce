// Package typography converts font sizes between the units the design guide
// talks about: CSS pixels, points, rem and Android sp.
package typography

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultBase is the root font size rem values are relative to.
const DefaultBase = 16.0

// PointsPerPixel is the CSS ratio 1px = 0.75pt.
const PointsPerPixel = 0.75

var ErrInvalidSize = errors.New("invalid font size")

// Units holds one size expressed in every supported unit.
type Units struct {
	Px   float64
	Pt   float64
	Rem  float64
	Sp   float64
	Base float64
}

// Convert expresses px in pt, rem (relative to base) and sp. Both px and
// base must be positive and finite.
func Convert(px, base float64) (Units, error) {
	if !positive(px) {
		return Units{}, fmt.Errorf("%w: size %v", ErrInvalidSize, px)
	}
	if !positive(base) {
		return Units{}, fmt.Errorf("%w: base %v", ErrInvalidSize, base)
	}
	return Units{
		Px:   px,
		Pt:   px * PointsPerPixel,
		Rem:  px / base,
		Sp:   px,
		Base: base,
	}, nil
}

func positive(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

// PtLabel renders the point size with one decimal, e.g. "12.0pt".
func (u Units) PtLabel() string { return strconv.FormatFloat(u.Pt, 'f', 1, 64) + "pt" }

// RemLabel renders the rem size with two decimals, e.g. "1.00rem".
func (u Units) RemLabel() string { return strconv.FormatFloat(u.Rem, 'f', 2, 64) + "rem" }

// SpLabel renders the sp size as entered, e.g. "16sp".
func (u Units) SpLabel() string { return strconv.FormatFloat(u.Sp, 'f', -1, 64) + "sp" }

// RemPx is the rendered pixel size of the rounded rem value.
func (u Units) RemPx() float64 {
	rem, _ := strconv.ParseFloat(strconv.FormatFloat(u.Rem, 'f', 2, 64), 64)
	return rem * u.Base
}

// Size is a number with a unit suffix, as written in platform guidelines.
type Size struct {
	Value float64
	Unit  string
}

// ParseSize splits strings like "17pt", "16sp" or "14.5px" into value and
// unit. A bare number has an empty unit.
func ParseSize(s string) (Size, error) {
	s = strings.TrimSpace(s)
	i := 0
	for i < len(s) && (s[i] == '.' || s[i] == '-' || s[i] == '+' || (s[i] >= '0' && s[i] <= '9')) {
		i++
	}
	if i == 0 {
		return Size{}, fmt.Errorf("%w: %q", ErrInvalidSize, s)
	}
	v, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return Size{}, fmt.Errorf("%w: %q", ErrInvalidSize, s)
	}
	return Size{Value: v, Unit: strings.ToLower(strings.TrimSpace(s[i:]))}, nil
}

// PixelSize returns the leading integer of a guideline size, the way the
// lab seeds its font-size input from a guide ("17pt" -> 17).
func PixelSize(s string) (int, error) {
	size, err := ParseSize(s)
	if err != nil {
		return 0, err
	}
	if !positive(size.Value) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSize, s)
	}
	return int(size.Value), nil
}
