package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkarpel/edim/internal/pkg"
	"github.com/mkarpel/edim/pkg/eseries"
	"github.com/mkarpel/edim/pkg/si"
)

var ratioTop int

var ratioCmd = &cobra.Command{
	Use:   "ratio <target> <r1|r1min> [r1max]",
	Short: "Find the pair whose r2/r1 best matches a target ratio",
	Args:  cobra.RangeArgs(2, 3),
	RunE:  runRatio,
}

func init() {
	rootCmd.AddCommand(ratioCmd)
	ratioCmd.Flags().IntVarP(&ratioTop, "top", "t", 5, "number of ranked candidates to print")
}

func runRatio(cmd *cobra.Command, args []string) error {
	series, dir, err := searchParams()
	if err != nil {
		return err
	}
	target, err := parseArg(args[0], "ratio")
	if err != nil {
		return err
	}
	span, err := parseSpan(args[1:])
	if err != nil {
		return err
	}

	res, err := eseries.MatchRatio(target, span, series, dir)
	if err != nil {
		return err
	}
	printRanked(res, ratioTop, func(c eseries.Candidate) string {
		return fmt.Sprintf("r1=%s r2=%s ratio=%s err=%s",
			si.Format(c.R1, "Ω"), si.Format(c.R2, "Ω"),
			pkg.FormatFloat(c.Achieved, 4), pkg.FormatFloat(c.AbsError, 4))
	})
	return nil
}
