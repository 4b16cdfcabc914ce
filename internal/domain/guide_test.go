package domain

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/emiliopalmerini/typouniverse/internal/colormath"
	"github.com/emiliopalmerini/typouniverse/internal/knowledge"
)

func testGenerator(t *testing.T) *Generator {
	t.Helper()
	kb, err := knowledge.Default()
	if err != nil {
		t.Fatalf("knowledge.Default: %v", err)
	}
	fixed := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	return NewGenerator(kb).WithClock(
		func() time.Time { return fixed },
		func() string { return "guide-1" },
	)
}

func TestGenerate_Golden(t *testing.T) {
	s := Restore("학습", "iOS", Mood{Soft: 50, Static: 90}, "Classic", "#3366CC")
	if s.Step != StepReady {
		t.Fatalf("expected ready state, got %v", s.Step)
	}

	g, err := testGenerator(t).Generate(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertEqual(t, "ID", "guide-1", g.ID)
	assertEqual(t, "CreatedAt", time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC), g.CreatedAt)
	assertEqual(t, "MoodGroup", GroupBalanced, g.MoodGroup)

	wantPalette := []Swatch{
		{"Primary", "#3366cc", "#ffffff"},
		{"Primary Light", "#5c85d6", "#ffffff"},
		{"Primary Dark", "#2952a3", "#ffffff"},
		{"Secondary", "#cc9933", "#333333"},
		{"Secondary Light", "#d6ad5c", "#333333"},
		{"Secondary Dark", "#a37a29", "#ffffff"},
	}
	got := g.Palette.Swatches()
	if len(got) != len(wantPalette) {
		t.Fatalf("expected %d swatches, got %d", len(wantPalette), len(got))
	}
	for i, want := range wantPalette {
		assertEqual(t, want.Name, want, got[i])
	}

	assertEqual(t, "BodySize", "17pt", g.Typography.BodySize)
	assertEqual(t, "HeadlineSize", "17pt", g.Typography.HeadlineSize)
	assertEqual(t, "MinimumSize", "11pt", g.Typography.MinimumSize)
	assertEqual(t, "Unit", "pt", g.Typography.Unit)
	assertEqual(t, "FontSizePx", 17, g.Typography.FontSizePx)

	assertEqual(t, "TextColorOnPrimary", "#ffffff", g.Accessibility.TextColorOnPrimary)
	assertEqual(t, "ContrastLabel", "5.37:1", g.Accessibility.ContrastLabel)
	assertEqual(t, "Level", colormath.LevelAA, g.Accessibility.Level)
	assertEqual(t, "PassesAA", true, g.Accessibility.PassesAA)
	if !floatEquals(math.Round(g.Accessibility.ContrastRatio*1000)/1000, 5.366) {
		t.Errorf("unexpected ratio %f", g.Accessibility.ContrastRatio)
	}
}

func TestGenerate_RedUsesWhiteOverCharcoal(t *testing.T) {
	s := Restore("학습", "Web", Mood{Soft: 90, Static: 90}, "Bold", "#FF0000")
	g, err := testGenerator(t).Generate(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertEqual(t, "text", "#ffffff", g.Accessibility.TextColorOnPrimary)
	assertEqual(t, "secondary", "#00ffff", g.Palette.Secondary.Hex)
	assertEqual(t, "headline", "32px", g.Typography.HeadlineSize)
}

func TestGenerate_HeadlineFallsBackToLargeTitle(t *testing.T) {
	s := Restore("학습", "Wearable", Mood{Soft: 10, Static: 10}, "Calm", "#a8dadc")
	g, err := testGenerator(t).Generate(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertEqual(t, "headline", "32pt", g.Typography.HeadlineSize)
}

func TestGenerate_UnknownPlatformUsesWeb(t *testing.T) {
	s := State{Platform: "Smart TV", PrimaryColor: "#264653", Mood: NeutralMood()}
	g, err := testGenerator(t).Generate(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertEqual(t, "body", "16px", g.Typography.BodySize)
	assertEqual(t, "unit", "rem", g.Typography.Unit)
}

func TestGenerate_Incomplete(t *testing.T) {
	gen := testGenerator(t)
	for _, s := range []State{
		{Platform: "iOS"},
		{PrimaryColor: "#ffffff"},
	} {
		if _, err := gen.Generate(s); !errors.Is(err, ErrIncompleteSelection) {
			t.Errorf("expected ErrIncompleteSelection, got %v", err)
		}
	}

	_, err := gen.Generate(State{Platform: "iOS", PrimaryColor: "#fff"})
	if !errors.Is(err, colormath.ErrInvalidFormat) {
		t.Errorf("expected ErrInvalidFormat, got %v", err)
	}
}

func TestNewGenerator_AssignsUniqueIDs(t *testing.T) {
	kb, err := knowledge.Default()
	if err != nil {
		t.Fatal(err)
	}
	gen := NewGenerator(kb)
	s := State{Platform: "Web", PrimaryColor: "#264653"}
	a, _ := gen.Generate(s)
	b, _ := gen.Generate(s)
	if a.ID == "" || a.ID == b.ID {
		t.Errorf("expected distinct non-empty IDs, got %q and %q", a.ID, b.ID)
	}
}

func floatEquals(a, b float64) bool {
	return math.Abs(a-b) < 0.000001
}
