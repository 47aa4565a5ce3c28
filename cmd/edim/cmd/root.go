// Package cmd is the edim command tree.
package cmd

import (
	"fmt"
	"os"

	"github.com/powerman/structlog"
	"github.com/spf13/cobra"

	"github.com/mkarpel/edim/internal/pkg"
	"github.com/mkarpel/edim/pkg/eseries"
)

type BuildInfo struct {
	Commit string
	Date   string
}

var (
	seriesFlag    string
	directionFlag string
	verbose       bool
)

var log = structlog.New()

var rootCmd = &cobra.Command{
	Use:   "edim",
	Short: "E-series component dimensioning",
	Long: `edim snaps circuit values onto the standard E-series of preferred
component values and sizes two-component networks (ratios, voltage
dividers, thermistor inputs) from them.

Examples:
  edim quantize 4925                     # nearest E24 value
  edim quantize -s E96 -d up 4925        # next E96 value upwards
  edim divider 10 3.3 10000 30000        # best divider pair for 10V -> 3.3V
  edim dimension                         # size the fan controller network`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute(b BuildInfo) {
	if b.Commit != "" {
		rootCmd.Version = fmt.Sprintf("%s (%s)", b.Commit, b.Date)
	}
	if err := rootCmd.Execute(); err != nil {
		log.PrintErr(err)
		if verbose {
			pkg.LogMerryStacktrace(log, err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&seriesFlag, "series", "s", "E24",
		"E-series to snap to (E1,E3,E6,E12,E24,E48,E96,E192)")
	rootCmd.PersistentFlags().StringVarP(&directionFlag, "direction", "d", "nearest",
		"rounding direction: nearest, up or down")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// searchParams resolves the series and direction flags. An unknown
// direction degrades to nearest with a warning, an unknown series is
// fatal.
func searchParams() (eseries.Series, eseries.Direction, error) {
	s, err := eseries.ParseSeries(seriesFlag)
	if err != nil {
		return 0, 0, err
	}
	d, _ := eseries.ParseDirection(directionFlag)
	return s, d, nil
}
