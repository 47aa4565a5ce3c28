// Package si renders numeric values with SI-prefixed units, e.g.
// 5100 Ω as "5.1 kΩ".
package si

import (
	"math"

	"github.com/mkarpel/edim/internal/pkg"
)

var prefixes = []struct {
	factor float64
	symbol string
}{
	{1e9, "G"},
	{1e6, "M"},
	{1e3, "k"},
	{1, ""},
	{1e-3, "m"},
	{1e-6, "µ"},
	{1e-9, "n"},
	{1e-12, "p"},
}

// Format renders v with the SI prefix bringing the mantissa into
// [1,1000). Zero and infinity are rendered without a prefix.
func Format(v float64, unit string) string {
	switch {
	case v == 0:
		return "0 " + unit
	case math.IsInf(v, 1):
		return "∞ " + unit
	case math.IsInf(v, -1):
		return "-∞ " + unit
	}

	sign := ""
	abs := v
	if abs < 0 {
		sign = "-"
		abs = -abs
	}

	p := prefixes[len(prefixes)-1]
	for _, x := range prefixes {
		if abs >= x.factor {
			p = x
			break
		}
	}
	return sign + pkg.FormatFloat(abs/p.factor, 3) + " " + p.symbol + unit
}
