package domain

import (
	"errors"
	"testing"

	"github.com/emiliopalmerini/typouniverse/internal/colormath"
)

func TestBuildLabReport_Defaults(t *testing.T) {
	r, err := BuildLabReport(DefaultLabInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertEqual(t, "label", "12.63 : 1", r.Contrast.Label)
	assertEqual(t, "AA", true, r.Contrast.AA)
	assertEqual(t, "AAA", true, r.Contrast.AAA)
	assertEqual(t, "status", StatusExcellent, r.Contrast.Status)
	assertEqual(t, "line height", 1.5, r.LineHeight)

	if r.Units == nil {
		t.Fatal("expected units")
	}
	assertEqual(t, "pt", "12.0pt", r.Units.PtLabel())
	assertEqual(t, "rem", "1.00rem", r.Units.RemLabel())

	// Grays are fixed points of both matrices.
	assertEqual(t, "sim bg", colormath.White, r.Simulation.Background)
	assertEqual(t, "sim text", colormath.Charcoal, r.Simulation.Text)
	assertEqual(t, "preset", colormath.PresetRedGreen, r.Simulation.Preset)
	assertEqual(t, "warning", false, r.Simulation.Warning)
}

func TestBuildLabReport_StatusThresholds(t *testing.T) {
	tests := []struct {
		bg, fg string
		want   LabStatus
	}{
		{"#ffffff", "#000000", StatusExcellent},
		{"#3366cc", "#ffffff", StatusGood},
		{"#ff0000", "#ffffff", StatusNeedsWork},
	}
	for _, tt := range tests {
		in := DefaultLabInput()
		in.Background, in.Text = tt.bg, tt.fg
		r, err := BuildLabReport(in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assertEqual(t, tt.bg+"/"+tt.fg, tt.want, r.Contrast.Status)
	}
}

func TestBuildLabReport_SimulationWarning(t *testing.T) {
	in := DefaultLabInput()
	in.Background, in.Text = "#ff0000", "#00ff00"

	in.Preset = "red-green"
	r, err := BuildLabReport(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertEqual(t, "red-green bg", "#9fb300", r.Simulation.Background.Hex())
	assertEqual(t, "red-green warning", false, r.Simulation.Warning)

	in.Preset = "Protanopia"
	r, err = BuildLabReport(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertEqual(t, "protanopia preset", colormath.PresetProtanopia, r.Simulation.Preset)
	assertEqual(t, "protanopia warning", true, r.Simulation.Warning)
}

func TestBuildLabReport_InvalidInputs(t *testing.T) {
	in := DefaultLabInput()
	in.Background = "not-a-color"
	in.FontSize = 0
	in.LineHeight = -1

	r, err := BuildLabReport(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertEqual(t, "bg valid", false, r.BackgroundValid)
	assertEqual(t, "bg fallback", colormath.Black, r.Background)
	assertEqual(t, "text valid", true, r.TextValid)
	assertEqual(t, "line height default", 1.5, r.LineHeight)
	if r.Units != nil {
		t.Errorf("expected no units for zero size, got %+v", r.Units)
	}

	in = DefaultLabInput()
	in.Preset = "tritanopia"
	if _, err := BuildLabReport(in); !errors.Is(err, colormath.ErrUnknownPreset) {
		t.Errorf("expected ErrUnknownPreset, got %v", err)
	}
}

func TestLabInputFromGuide(t *testing.T) {
	g, err := testGenerator(t).Generate(State{Platform: "Android", PrimaryColor: "#1e3a5f"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	in := LabInputFromGuide(g)
	assertEqual(t, "bg", "#1e3a5f", in.Background)
	assertEqual(t, "text", "#ffffff", in.Text)
	assertEqual(t, "font size", 16.0, in.FontSize)
}
