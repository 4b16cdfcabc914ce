package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/typouniverse/internal/colormath"
	"github.com/emiliopalmerini/typouniverse/internal/pkg/tui/theme"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <color>",
	Short: "Preview a color under color-vision deficiency",
	Long: `Preview how a color looks under the color-vision deficiency presets.
Without --preset every preset is shown.

Examples:
  typouniverse simulate "#ff0000"
  typouniverse simulate "#ff0000" --preset protanopia`,
	Args: cobra.ExactArgs(1),
	RunE: runSimulate,
}

var simulatePreset string

func init() {
	simulateCmd.Flags().StringVar(&simulatePreset, "preset", "", "Preset: red-green, protanopia")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	c, err := colormath.ParseHex(args[0])
	if err != nil {
		return err
	}

	presets := colormath.Presets()
	if simulatePreset != "" {
		p, err := colormath.CanonicalPreset(simulatePreset)
		if err != nil {
			return err
		}
		presets = []string{p}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-12s %s\n", "original", theme.Swatch(c.Hex(), colormath.BestTextColor(c).Hex(), c.Hex()))
	for _, p := range presets {
		sim, err := colormath.SimulatePreset(c, p)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%-12s %s\n", p, theme.Swatch(sim.Hex(), colormath.BestTextColor(sim).Hex(), sim.Hex()))
	}
	return nil
}
