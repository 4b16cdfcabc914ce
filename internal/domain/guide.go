package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/emiliopalmerini/typouniverse/internal/colormath"
	"github.com/emiliopalmerini/typouniverse/internal/knowledge"
	"github.com/emiliopalmerini/typouniverse/internal/typography"
)

// paletteStep is how far light and dark variants move from their base color.
const paletteStep = 20

// defaultFontSizePx seeds the lab when a guideline size cannot be parsed.
const defaultFontSizePx = 16

// Swatch is one palette entry with the text color to label it in.
type Swatch struct {
	Name       string `json:"name"`
	Hex        string `json:"hex"`
	LabelColor string `json:"label_color"`
}

type Palette struct {
	Primary        Swatch `json:"primary"`
	PrimaryLight   Swatch `json:"primary_light"`
	PrimaryDark    Swatch `json:"primary_dark"`
	Secondary      Swatch `json:"secondary"`
	SecondaryLight Swatch `json:"secondary_light"`
	SecondaryDark  Swatch `json:"secondary_dark"`
}

// Swatches returns the palette in display order.
func (p Palette) Swatches() []Swatch {
	return []Swatch{
		p.Primary, p.PrimaryLight, p.PrimaryDark,
		p.Secondary, p.SecondaryLight, p.SecondaryDark,
	}
}

type Typography struct {
	BodySize     string `json:"body_size"`
	HeadlineSize string `json:"headline_size"`
	MinimumSize  string `json:"minimum_size"`
	Unit         string `json:"unit"`
	Source       string `json:"source"`
	Description  string `json:"description"`
	FontSizePx   int    `json:"font_size_px"`
}

type Accessibility struct {
	TextColorOnPrimary string          `json:"text_color_on_primary"`
	ContrastRatio      float64         `json:"contrast_ratio"`
	ContrastLabel      string          `json:"contrast_label"`
	Level              colormath.Level `json:"level"`
	PassesAA           bool            `json:"passes_aa"`
}

// Guide is the generated design guide.
type Guide struct {
	ID            string        `json:"id"`
	CreatedAt     time.Time     `json:"created_at"`
	Service       string        `json:"service"`
	Platform      string        `json:"platform"`
	Keyword       string        `json:"keyword"`
	MoodGroup     string        `json:"mood_group"`
	Palette       Palette       `json:"palette"`
	Typography    Typography    `json:"typography"`
	Accessibility Accessibility `json:"accessibility"`
}

// Generator builds guides from wizard state and a knowledge base.
type Generator struct {
	kb    *knowledge.Base
	now   func() time.Time
	newID func() string
}

// NewGenerator returns a generator using the wall clock and random UUIDs.
func NewGenerator(kb *knowledge.Base) *Generator {
	return &Generator{
		kb:    kb,
		now:   time.Now,
		newID: func() string { return uuid.NewString() },
	}
}

// WithClock replaces the time source and ID generator, for tests.
func (g *Generator) WithClock(now func() time.Time, newID func() string) *Generator {
	return &Generator{kb: g.kb, now: now, newID: newID}
}

// Generate derives palette, typography and accessibility advice from s.
// Only the platform and primary color are required.
func (g *Generator) Generate(s State) (*Guide, error) {
	if s.PrimaryColor == "" || s.Platform == "" {
		return nil, ErrIncompleteSelection
	}
	primary, err := colormath.ParseHex(s.PrimaryColor)
	if err != nil {
		return nil, err
	}

	palette, err := BuildPalette(primary)
	if err != nil {
		return nil, err
	}

	guideline := g.kb.Platform(s.Platform)
	fontPx, err := typography.PixelSize(guideline.DefaultSize)
	if err != nil {
		fontPx = defaultFontSizePx
	}

	text := colormath.PickTextColor(primary, colormath.Charcoal, colormath.White)
	ratio := colormath.ContrastRatio(primary, text)

	return &Guide{
		ID:        g.newID(),
		CreatedAt: g.now().UTC(),
		Service:   s.Service,
		Platform:  s.Platform,
		Keyword:   s.Keyword,
		MoodGroup: s.MoodGroup(),
		Palette:   palette,
		Typography: Typography{
			BodySize:     guideline.DefaultSize,
			HeadlineSize: guideline.Headline(),
			MinimumSize:  guideline.MinimumSize,
			Unit:         guideline.Font.Unit,
			Source:       guideline.Source,
			Description:  guideline.Description,
			FontSizePx:   fontPx,
		},
		Accessibility: Accessibility{
			TextColorOnPrimary: text.Hex(),
			ContrastRatio:      ratio,
			ContrastLabel:      colormath.FormatRatioCompact(ratio),
			Level:              colormath.Classify(ratio),
			PassesAA:           colormath.PassesAA(ratio),
		},
	}, nil
}

// BuildPalette derives the six-color palette from a primary color.
func BuildPalette(primary colormath.Color) (Palette, error) {
	secondary := colormath.Complementary(primary)

	pl, err := colormath.Lighten(primary, paletteStep)
	if err != nil {
		return Palette{}, fmt.Errorf("lighten primary: %w", err)
	}
	pd, err := colormath.Darken(primary, paletteStep)
	if err != nil {
		return Palette{}, fmt.Errorf("darken primary: %w", err)
	}
	sl, err := colormath.Lighten(secondary, paletteStep)
	if err != nil {
		return Palette{}, fmt.Errorf("lighten secondary: %w", err)
	}
	sd, err := colormath.Darken(secondary, paletteStep)
	if err != nil {
		return Palette{}, fmt.Errorf("darken secondary: %w", err)
	}

	return Palette{
		Primary:        swatch("Primary", primary),
		PrimaryLight:   swatch("Primary Light", pl),
		PrimaryDark:    swatch("Primary Dark", pd),
		Secondary:      swatch("Secondary", secondary),
		SecondaryLight: swatch("Secondary Light", sl),
		SecondaryDark:  swatch("Secondary Dark", sd),
	}, nil
}

func swatch(name string, c colormath.Color) Swatch {
	return Swatch{
		Name:       name,
		Hex:        c.Hex(),
		LabelColor: colormath.PickTextColor(c, colormath.Charcoal, colormath.White).Hex(),
	}
}
