package theme

import "github.com/charmbracelet/lipgloss"

var (
	// Brand
	Indigo       = lipgloss.Color("#4A90E2")
	BrightIndigo = lipgloss.Color("#6EA6E8")
	Navy         = lipgloss.Color("#1E3A5F")

	// Neutrals
	White     = lipgloss.Color("#FFFFFF")
	LightGray = lipgloss.Color("#9CA3AF")
	DimGray   = lipgloss.Color("#6B7280")
	DarkGray  = lipgloss.Color("#374151")
	Charcoal  = lipgloss.Color("#333333")

	// WCAG outcomes
	Pass    = lipgloss.Color("#22C55E")
	Large   = lipgloss.Color("#F59E0B")
	Fail    = lipgloss.Color("#EF4444")
	Neutral = lipgloss.Color("#3B82F6")
)
