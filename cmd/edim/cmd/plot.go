package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mkarpel/edim/internal/config"
	"github.com/mkarpel/edim/internal/plotduty"
)

var (
	plotOut  string
	plotMinC float64
	plotMaxC float64
)

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Render the configured fan duty-cycle curve",
	Args:  cobra.NoArgs,
	RunE:  runPlot,
}

func init() {
	rootCmd.AddCommand(plotCmd)
	plotCmd.Flags().StringVarP(&plotOut, "out", "o", "duty.png", "output file (png, svg or pdf)")
	plotCmd.Flags().Float64Var(&plotMinC, "min", 20, "lower temperature bound, °C")
	plotCmd.Flags().Float64Var(&plotMaxC, "max", 110, "upper temperature bound, °C")
}

func runPlot(cmd *cobra.Command, args []string) error {
	if err := config.Init(); err != nil {
		return err
	}
	curve, err := config.Get().Curve()
	if err != nil {
		return err
	}
	if err := plotduty.Render(curve, plotMinC, plotMaxC, plotOut); err != nil {
		return err
	}
	log.Info("plot written", "file", plotOut)
	return nil
}
