package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "typouniverse",
	Short: "Color and typography guides for UI projects",
	Long: `typouniverse turns a service, platform, mood and primary color into a
design guide: palette, platform typography and accessibility advice.

Run "typouniverse serve" for the web assistant, or use the color and unit
tools directly from the terminal.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(contrastCmd)
	rootCmd.AddCommand(paletteCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(unitsCmd)
	rootCmd.AddCommand(guideCmd)
	rootCmd.AddCommand(kbCmd)
}
