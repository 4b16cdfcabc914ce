package util

import (
	"math"
	"strconv"
	"strings"
)

// ToInt parses a form value as an int, truncating decimals ("55.7" -> 55).
// Returns def for empty or unparseable input.
func ToInt(s string, def int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return def
	}
	return int(f)
}

// ToFloat64 parses a form value as a finite float64.
// Returns def for empty, unparseable, NaN or infinite input.
func ToFloat64(s string, def float64) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return def
	}
	return f
}
