package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/typouniverse/internal/colormath"
	"github.com/emiliopalmerini/typouniverse/internal/domain"
	"github.com/emiliopalmerini/typouniverse/internal/pkg/tui/theme"
)

var paletteCmd = &cobra.Command{
	Use:   "palette <color>",
	Short: "Derive a palette from a primary color",
	Long: `Derive light, dark and complementary variants from a primary color.

Examples:
  typouniverse palette "#3366cc"
  typouniverse palette 3366cc --json`,
	Args: cobra.ExactArgs(1),
	RunE: runPalette,
}

var paletteJSON bool

func init() {
	paletteCmd.Flags().BoolVar(&paletteJSON, "json", false, "Print the palette as JSON")
}

func runPalette(cmd *cobra.Command, args []string) error {
	c, err := colormath.ParseHex(args[0])
	if err != nil {
		return err
	}
	p, err := domain.BuildPalette(c)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if paletteJSON {
		return writeJSON(out, p)
	}
	for _, sw := range p.Swatches() {
		fmt.Fprintf(out, "%s %-16s %s\n", theme.Swatch(sw.Hex, sw.LabelColor, sw.Hex), sw.Name, theme.Default().Muted.Render("label "+sw.LabelColor))
	}
	return nil
}
