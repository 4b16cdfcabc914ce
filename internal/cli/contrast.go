package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/typouniverse/internal/colormath"
	"github.com/emiliopalmerini/typouniverse/internal/pkg/tui/components"
	"github.com/emiliopalmerini/typouniverse/internal/pkg/tui/theme"
)

var contrastCmd = &cobra.Command{
	Use:   "contrast <background> <text>",
	Short: "Check the WCAG contrast of two colors",
	Long: `Check the WCAG contrast ratio between a background and a text color.

Examples:
  typouniverse contrast "#ffffff" "#333333"
  typouniverse contrast 1e3a5f ffffff`,
	Args: cobra.ExactArgs(2),
	RunE: runContrast,
}

func runContrast(cmd *cobra.Command, args []string) error {
	bg, err := colormath.ParseHex(args[0])
	if err != nil {
		return fmt.Errorf("background: %w", err)
	}
	fg, err := colormath.ParseHex(args[1])
	if err != nil {
		return fmt.Errorf("text: %w", err)
	}

	ratio := colormath.ContrastRatio(bg, fg)
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, theme.Swatch(bg.Hex(), fg.Hex(), "Sample text"))
	fmt.Fprintln(out)
	field(out, "Background", bg.Hex())
	field(out, "Text", fg.Hex())
	field(out, "Contrast", colormath.FormatRatio(ratio))
	field(out, "AA", passFail(colormath.PassesAA(ratio)))
	field(out, "AAA", passFail(colormath.PassesAAA(ratio)))
	field(out, "AA large", passFail(colormath.PassesLarge(ratio)))
	field(out, "Best text", colormath.BestTextColor(bg).Hex())
	fmt.Fprintln(out)
	fmt.Fprintln(out, components.NewMeter(ratio).View())
	return nil
}
