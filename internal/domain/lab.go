package domain

import (
	"github.com/emiliopalmerini/typouniverse/internal/colormath"
	"github.com/emiliopalmerini/typouniverse/internal/typography"
)

const defaultLineHeight = 1.5

// LabStatus summarizes the contrast check for the status line.
type LabStatus string

const (
	StatusExcellent LabStatus = "excellent"
	StatusGood      LabStatus = "good"
	StatusNeedsWork LabStatus = "needs-improvement"
)

// LabInput is what the lab form submits.
type LabInput struct {
	Background string
	Text       string
	LineHeight float64
	FontSize   float64
	BaseSize   float64
	Preset     string
}

// DefaultLabInput is the lab's initial state.
func DefaultLabInput() LabInput {
	return LabInput{
		Background: colormath.White.Hex(),
		Text:       colormath.Charcoal.Hex(),
		LineHeight: defaultLineHeight,
		FontSize:   defaultFontSizePx,
		BaseSize:   typography.DefaultBase,
		Preset:     colormath.PresetRedGreen,
	}
}

// LabInputFromGuide seeds the lab with a generated guide's colors and size.
func LabInputFromGuide(g *Guide) LabInput {
	in := DefaultLabInput()
	in.Background = g.Palette.Primary.Hex
	in.Text = g.Accessibility.TextColorOnPrimary
	in.FontSize = float64(g.Typography.FontSizePx)
	return in
}

type ContrastResult struct {
	Ratio  float64
	Label  string
	AA     bool
	AAA    bool
	Level  colormath.Level
	Status LabStatus
}

type SimulationResult struct {
	Preset     string
	Background colormath.Color
	Text       colormath.Color
	Ratio      float64
	Label      string
	// Warning is set when the simulated pair fails even the large-text threshold.
	Warning bool
}

// LabReport is everything the lab page displays for one input.
type LabReport struct {
	Input           LabInput
	Background      colormath.Color
	Text            colormath.Color
	BackgroundValid bool
	TextValid       bool
	LineHeight      float64
	Contrast        ContrastResult
	// Units is nil when the size inputs are not positive numbers.
	Units      *typography.Units
	Simulation SimulationResult
}

// BuildLabReport evaluates a lab input. Unparseable colors are treated as
// black and flagged; the only error is an unknown simulation preset.
func BuildLabReport(in LabInput) (LabReport, error) {
	preset := in.Preset
	if preset == "" {
		preset = colormath.PresetRedGreen
	}
	preset, err := colormath.CanonicalPreset(preset)
	if err != nil {
		return LabReport{}, err
	}
	matrix, err := colormath.LookupPreset(preset)
	if err != nil {
		return LabReport{}, err
	}

	bg, bgOK := colormath.ParseHexOr(in.Background, colormath.Black)
	fg, fgOK := colormath.ParseHexOr(in.Text, colormath.Black)

	lineHeight := in.LineHeight
	if lineHeight <= 0 {
		lineHeight = defaultLineHeight
	}

	report := LabReport{
		Input:           in,
		Background:      bg,
		Text:            fg,
		BackgroundValid: bgOK,
		TextValid:       fgOK,
		LineHeight:      lineHeight,
		Contrast:        CheckContrast(bg, fg),
	}

	if u, err := typography.Convert(in.FontSize, in.BaseSize); err == nil {
		report.Units = &u
	}

	simBg := colormath.Simulate(bg, matrix)
	simFg := colormath.Simulate(fg, matrix)
	simRatio := colormath.ContrastRatio(simBg, simFg)
	report.Simulation = SimulationResult{
		Preset:     preset,
		Background: simBg,
		Text:       simFg,
		Ratio:      simRatio,
		Label:      colormath.FormatRatio(simRatio),
		Warning:    !colormath.PassesLarge(simRatio),
	}
	return report, nil
}

// CheckContrast classifies the contrast between two colors.
func CheckContrast(bg, fg colormath.Color) ContrastResult {
	ratio := colormath.ContrastRatio(bg, fg)
	res := ContrastResult{
		Ratio: ratio,
		Label: colormath.FormatRatio(ratio),
		AA:    colormath.PassesAA(ratio),
		AAA:   colormath.PassesAAA(ratio),
		Level: colormath.Classify(ratio),
	}
	switch {
	case res.AAA:
		res.Status = StatusExcellent
	case res.AA:
		res.Status = StatusGood
	default:
		res.Status = StatusNeedsWork
	}
	return res
}
