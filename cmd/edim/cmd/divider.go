package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mkarpel/edim/pkg/eseries"
	"github.com/mkarpel/edim/pkg/si"
)

var dividerTop int

var dividerCmd = &cobra.Command{
	Use:   "divider <vin> <vout> <r1|r1min> [r1max]",
	Short: "Find the divider pair best producing vout from vin",
	Long: `Search the series for the resistor pair (r1 top, r2 to ground) whose
output vin*r2/(r1+r2) comes closest to vout. r1 is either a fixed
anchor or swept over [r1min,r1max].`,
	Args: cobra.RangeArgs(3, 4),
	RunE: runDivider,
}

func init() {
	rootCmd.AddCommand(dividerCmd)
	dividerCmd.Flags().IntVarP(&dividerTop, "top", "t", 5, "number of ranked candidates to print")
}

func runDivider(cmd *cobra.Command, args []string) error {
	series, dir, err := searchParams()
	if err != nil {
		return err
	}
	vIn, err := parseArg(args[0], "vin")
	if err != nil {
		return err
	}
	vOut, err := parseArg(args[1], "vout")
	if err != nil {
		return err
	}
	span, err := parseSpan(args[2:])
	if err != nil {
		return err
	}

	res, err := eseries.MatchDivider(vIn, vOut, span, series, dir)
	if err != nil {
		return err
	}
	printRanked(res, dividerTop, func(c eseries.Candidate) string {
		return fmt.Sprintf("r1=%s r2=%s vout=%s err=%s",
			si.Format(c.R1, "Ω"), si.Format(c.R2, "Ω"),
			si.Format(c.Achieved, "V"), si.Format(c.AbsError, "V"))
	})
	return nil
}

func parseArg(s, name string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, eseries.ErrInvalidArgument.Appendf("%s=%q", name, s)
	}
	return v, nil
}

func parseSpan(args []string) (eseries.Span, error) {
	min, err := parseArg(args[0], "r1")
	if err != nil {
		return eseries.Span{}, err
	}
	if len(args) == 1 {
		return eseries.Point(min), nil
	}
	max, err := parseArg(args[1], "r1max")
	if err != nil {
		return eseries.Span{}, err
	}
	return eseries.Span{Min: min, Max: max}, nil
}

func printRanked(res eseries.MatchResult, top int, format func(eseries.Candidate) string) {
	fmt.Println("best:", format(res.Best))
	if top <= 1 {
		return
	}
	n := min(top, len(res.Ranked))
	for i := 0; i < n; i++ {
		fmt.Printf("%3d. %s\n", i+1, format(res.Ranked[i]))
	}
}
