package theme

import "github.com/charmbracelet/lipgloss"

const swatchWidth = 18

// Swatch renders label on a block filled with bg, written in fg.
func Swatch(bg, fg, label string) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(bg)).
		Foreground(lipgloss.Color(fg)).
		Width(swatchWidth).
		Padding(0, 1).
		Render(label)
}
