package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/typouniverse/internal/typography"
)

var unitsCmd = &cobra.Command{
	Use:   "units <px>",
	Short: "Convert a pixel size to pt, rem and sp",
	Long: `Convert a CSS pixel size to points, rem and Android sp.

Examples:
  typouniverse units 16
  typouniverse units 24 --base 20`,
	Args: cobra.ExactArgs(1),
	RunE: runUnits,
}

var unitsBase float64

func init() {
	unitsCmd.Flags().Float64Var(&unitsBase, "base", typography.DefaultBase, "Root font size for rem")
}

func runUnits(cmd *cobra.Command, args []string) error {
	px, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("%w: %q", typography.ErrInvalidSize, args[0])
	}
	u, err := typography.Convert(px, unitsBase)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%spx = %s = %s = %s (base %spx)\n",
		strconv.FormatFloat(u.Px, 'f', -1, 64),
		u.PtLabel(), u.RemLabel(), u.SpLabel(),
		strconv.FormatFloat(u.Base, 'f', -1, 64),
	)
	return nil
}
