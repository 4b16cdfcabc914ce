package theme

import (
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/emiliopalmerini/typouniverse/internal/colormath"
)

// Styles contains the shared terminal styles.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style
	Card     lipgloss.Style

	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style

	MeterOn  lipgloss.Style
	MeterOff lipgloss.Style
}

var (
	defaultStyles *Styles
	once          sync.Once
)

// Default returns the singleton default Styles instance
func Default() *Styles {
	once.Do(func() {
		defaultStyles = newStyles()
	})
	return defaultStyles
}

func newStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(White).
			MarginBottom(1),

		Subtitle: lipgloss.NewStyle().
			Foreground(Indigo).
			Bold(true),

		Body: lipgloss.NewStyle().
			Foreground(LightGray),

		Muted: lipgloss.NewStyle().
			Foreground(DimGray),

		Bold: lipgloss.NewStyle().
			Bold(true).
			Foreground(White),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DarkGray).
			Padding(0, 1),

		Success: lipgloss.NewStyle().
			Foreground(Pass),

		Warning: lipgloss.NewStyle().
			Foreground(Large),

		Error: lipgloss.NewStyle().
			Foreground(Fail),

		Info: lipgloss.NewStyle().
			Foreground(Neutral),

		MeterOn: lipgloss.NewStyle().
			Foreground(BrightIndigo),

		MeterOff: lipgloss.NewStyle().
			Foreground(DimGray),
	}
}

// Level picks the status style for a WCAG level.
func (s *Styles) Level(l colormath.Level) lipgloss.Style {
	switch l {
	case colormath.LevelAAA, colormath.LevelAA:
		return s.Success
	case colormath.LevelAALarge:
		return s.Warning
	default:
		return s.Error
	}
}
