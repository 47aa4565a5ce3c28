package eseries

import (
	"math"

	"github.com/ansel1/merry"
)

// tolerance for comparing a decade remainder against a table entry, so
// that 4.7 recovered as 4.6999999 still counts as an exact member.
const eps = 1e-9

// Quantize snaps v onto the series under the given rounding direction.
// The result is always entry*10^k for some table entry and integer k.
// Zero quantizes to zero and +Inf stays +Inf, matching their open/short
// circuit meanings. Negative input fails with ErrInvalidArgument.
func Quantize(v float64, series Series, dir Direction) (float64, error) {
	table, err := series.Values()
	if err != nil {
		return 0, err
	}
	if v < 0 || math.IsNaN(v) {
		return 0, ErrInvalidArgument.Appendf("cannot quantize %v", v)
	}
	if v == 0 || math.IsInf(v, 1) {
		return v, nil
	}

	exp := math.Floor(math.Log10(v))
	scale := math.Pow(10, exp)
	rem := v / scale
	// Guard against log10 landing on the wrong side of a decade edge.
	if rem < 1 {
		rem *= 10
		scale /= 10
	} else if rem >= 10 {
		rem /= 10
		scale *= 10
	}

	lo, hi := bracket(table, rem)
	switch dir {
	case Down:
		return lo * scale, nil
	case Up:
		return hi * scale, nil
	default:
		if rem-lo <= hi-rem {
			return lo * scale, nil
		}
		return hi * scale, nil
	}
}

// QuantizeAll applies Quantize element-wise. The whole call fails on the
// first invalid element.
func QuantizeAll(vs []float64, series Series, dir Direction) ([]float64, error) {
	res := make([]float64, len(vs))
	for i, v := range vs {
		q, err := Quantize(v, series, dir)
		if err != nil {
			return nil, merry.Appendf(err, "element %d", i)
		}
		res[i] = q
	}
	return res, nil
}

// bracket returns the greatest table entry <= rem and the least entry
// >= rem. rem is guaranteed in [1,10) and tables span [1,10], so both
// always exist.
func bracket(table []float64, rem float64) (lo, hi float64) {
	lo, hi = table[0], table[len(table)-1]
	for _, t := range table {
		if t <= rem*(1+eps) {
			lo = t
		}
		if t >= rem*(1-eps) {
			hi = t
			break
		}
	}
	return lo, hi
}
