package components

import (
	"math"
	"strings"

	"github.com/emiliopalmerini/typouniverse/internal/colormath"
	"github.com/emiliopalmerini/typouniverse/internal/pkg/tui/theme"
)

// Meter shows a contrast ratio on the 1..21 scale, one cell per unit.
type Meter struct {
	Ratio  float64
	styles *theme.Styles
}

func NewMeter(ratio float64) Meter {
	return Meter{Ratio: ratio, styles: theme.Default()}
}

// Filled is the number of lit cells.
func (m Meter) Filled() int {
	n := int(math.Round(m.Ratio))
	return max(1, min(n, cells))
}

const cells = 21

func (m Meter) View() string {
	filled := m.Filled()
	var b strings.Builder
	for i := 1; i <= cells; i++ {
		if i <= filled {
			b.WriteString(m.styles.MeterOn.Render("■"))
		} else {
			b.WriteString(m.styles.MeterOff.Render("·"))
		}
	}
	b.WriteString(" ")
	b.WriteString(m.styles.Level(colormath.Classify(m.Ratio)).Render(string(colormath.Classify(m.Ratio))))
	return b.String()
}
