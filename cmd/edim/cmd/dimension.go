package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkarpel/edim/internal/config"
	"github.com/mkarpel/edim/internal/fanctl"
	"github.com/mkarpel/edim/internal/pkg"
	"github.com/mkarpel/edim/pkg/si"
)

var dimensionCmd = &cobra.Command{
	Use:   "dimension",
	Short: "Size the fan controller's resistor network from the config",
	Long: `Size the thermistor divider's top resistor for the configured trip
point and search the series for the comparator reference divider.
Supply rails, trip point and search range come from the config file.`,
	Args: cobra.NoArgs,
	RunE: runDimension,
}

func init() {
	rootCmd.AddCommand(dimensionCmd)
}

func runDimension(cmd *cobra.Command, args []string) error {
	series, dir, err := searchParams()
	if err != nil {
		return err
	}
	if err := config.Init(); err != nil {
		return err
	}
	c := config.Get()
	ntc, err := c.NTC()
	if err != nil {
		return err
	}

	tp, err := fanctl.TripDivider(c.Supply.VCC, c.Supply.VTrip, c.Supply.TripTemp, ntc, series, dir)
	if err != nil {
		return err
	}
	fmt.Printf("thermistor divider: vcc=%s trip %s at %s°C\n",
		si.Format(c.Supply.VCC, "V"), si.Format(c.Supply.VTrip, "V"),
		pkg.FormatFloat(c.Supply.TripTemp, 1))
	fmt.Printf("  r1 = %s (ideal %s), trips %s at %s°C\n",
		si.Format(tp.R1, "Ω"), si.Format(tp.R1Ideal, "Ω"),
		si.Format(tp.VTrip, "V"), pkg.FormatFloat(tp.TripTempC, 2))

	ref, err := fanctl.Reference(c.Supply.VCC, c.Supply.VTrip, c.Span(), series, dir)
	if err != nil {
		return err
	}
	fmt.Printf("reference divider: r1=%s r2=%s vref=%s err=%s\n",
		si.Format(ref.Best.R1, "Ω"), si.Format(ref.Best.R2, "Ω"),
		si.Format(ref.Best.Achieved, "V"), si.Format(ref.Best.AbsError, "V"))
	return nil
}
