package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mkarpel/edim/pkg/eseries"
	"github.com/mkarpel/edim/pkg/si"
)

var quantizeUnit string

var quantizeCmd = &cobra.Command{
	Use:   "quantize <value>...",
	Short: "Snap values onto the series",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runQuantize,
}

func init() {
	rootCmd.AddCommand(quantizeCmd)
	quantizeCmd.Flags().StringVarP(&quantizeUnit, "unit", "u", "Ω", "unit for output formatting")
}

func runQuantize(cmd *cobra.Command, args []string) error {
	series, dir, err := searchParams()
	if err != nil {
		return err
	}

	values := make([]float64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return eseries.ErrInvalidArgument.Appendf("%q", arg)
		}
		values[i] = v
	}

	snapped, err := eseries.QuantizeAll(values, series, dir)
	if err != nil {
		return err
	}
	for i, v := range values {
		fmt.Printf("%s -> %s (%s %s)\n",
			si.Format(v, quantizeUnit), si.Format(snapped[i], quantizeUnit), series, dir)
	}
	return nil
}
