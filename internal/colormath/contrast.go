package colormath

import (
	"fmt"
	"math"
)

// WCAG 2.x thresholds.
const (
	ThresholdAA    = 4.5
	ThresholdAAA   = 7.0
	ThresholdLarge = 3.0
)

// Level is the WCAG conformance level a contrast ratio reaches.
type Level string

const (
	LevelAAA     Level = "AAA"
	LevelAA      Level = "AA"
	LevelAALarge Level = "AA Large"
	LevelFail    Level = "Fail"
)

// RelativeLuminance returns the WCAG relative luminance of c, in [0, 1].
func RelativeLuminance(c Color) float64 {
	r := linearize(float64(c.R) / 255)
	g := linearize(float64(c.G) / 255)
	b := linearize(float64(c.B) / 255)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

func linearize(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio returns the WCAG contrast ratio between a and b, in [1, 21].
// The result does not depend on argument order.
func ContrastRatio(a, b Color) float64 {
	l1 := RelativeLuminance(a)
	l2 := RelativeLuminance(b)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// PassesAA reports whether ratio meets AA for normal text.
func PassesAA(ratio float64) bool { return ratio >= ThresholdAA }

// PassesAAA reports whether ratio meets AAA for normal text.
func PassesAAA(ratio float64) bool { return ratio >= ThresholdAAA }

// PassesLarge reports whether ratio meets AA for large or bold text.
func PassesLarge(ratio float64) bool { return ratio >= ThresholdLarge }

// Classify maps a contrast ratio to the highest level it reaches.
func Classify(ratio float64) Level {
	switch {
	case PassesAAA(ratio):
		return LevelAAA
	case PassesAA(ratio):
		return LevelAA
	case PassesLarge(ratio):
		return LevelAALarge
	default:
		return LevelFail
	}
}

// FormatRatio renders a ratio the way the lab shows it: "4.50 : 1".
func FormatRatio(ratio float64) string {
	return fmt.Sprintf("%.2f : 1", ratio)
}

// FormatRatioCompact renders a ratio for the generated guide: "4.50:1".
func FormatRatioCompact(ratio float64) string {
	return fmt.Sprintf("%.2f:1", ratio)
}

// BestTextColor returns white or black, whichever contrasts more with bg.
// Ties go to black.
func BestTextColor(bg Color) Color {
	return PickTextColor(bg, Black, White)
}

// PickTextColor returns light when it contrasts strictly better with bg than
// dark does, and dark otherwise.
func PickTextColor(bg, dark, light Color) Color {
	if ContrastRatio(bg, light) > ContrastRatio(bg, dark) {
		return light
	}
	return dark
}
