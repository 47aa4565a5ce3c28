package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkarpel/edim/internal/config"
	"github.com/mkarpel/edim/internal/pkg"
	"github.com/mkarpel/edim/pkg/si"
)

var ntcInverse bool

var ntcCmd = &cobra.Command{
	Use:   "ntc <tempC | ohm>",
	Short: "Interpolate the configured thermistor table",
	Long: `Interpolate the thermistor resistance at a temperature, or with
--inverse the temperature at a resistance. The table comes from the
config file, falling back to the built-in 10k B3950 one.`,
	Args: cobra.ExactArgs(1),
	RunE: runNTC,
}

func init() {
	rootCmd.AddCommand(ntcCmd)
	ntcCmd.Flags().BoolVarP(&ntcInverse, "inverse", "i", false,
		"argument is a resistance, report the temperature")
}

func runNTC(cmd *cobra.Command, args []string) error {
	if err := config.Init(); err != nil {
		return err
	}
	ntc, err := config.Get().NTC()
	if err != nil {
		return err
	}

	v, err := parseArg(args[0], "value")
	if err != nil {
		return err
	}
	if ntcInverse {
		fmt.Printf("%s -> %s°C\n", si.Format(v, "Ω"), pkg.FormatFloat(ntc.T(v), 2))
		return nil
	}
	fmt.Printf("%s°C -> %s\n", pkg.FormatFloat(v, 2), si.Format(ntc.R(v), "Ω"))
	return nil
}
