package eseries

import (
	"math"
	"sort"

	"github.com/ansel1/merry"
)

// Candidate is one evaluated component pair. Achieved is the ratio (or
// divider output voltage) the pair actually produces, AbsError its
// absolute distance from the target.
type Candidate struct {
	R1       float64
	R2       float64
	Achieved float64
	AbsError float64
}

// MatchResult is the full outcome of a pair search. Ranked is sorted by
// non-decreasing AbsError and always non-empty; Best is Ranked[0].
type MatchResult struct {
	Best   Candidate
	Ranked []Candidate
}

// MatchRatio searches the series for the pair (r1,r2) whose ratio r2/r1
// best approximates the target ratio, with r1 drawn from span.
//
// Degenerate targets short-circuit without touching the series: a zero
// ratio yields the open pair (r1=0, r2=inf), an infinite ratio the
// shorted pair (r1=inf, r2=0), both with zero error.
func MatchRatio(ratio float64, span Span, series Series, dir Direction) (MatchResult, error) {
	if ratio < 0 || math.IsNaN(ratio) {
		return MatchResult{}, ErrInvalidArgument.Appendf("ratio %v", ratio)
	}
	if ratio == 0 {
		return degenerate(0, math.Inf(1), 0), nil
	}
	if math.IsInf(ratio, 1) {
		return degenerate(math.Inf(1), 0, 0), nil
	}
	return searchPairs(span, series, dir, func(r1 float64) float64 {
		return r1 * ratio
	}, func(r1, r2 float64) (achieved, absErr float64) {
		achieved = r2 / r1
		return achieved, math.Abs(achieved - ratio)
	})
}

// MatchDivider searches for the divider pair (r1 top, r2 to ground)
// whose output vin*r2/(r1+r2) best approximates vout, with r1 drawn
// from span.
//
// vout==0 yields (r1=inf, r2=0) and vout==vin yields (r1=0, r2=inf),
// both with zero error. Note the zero-target sentinel is inverted
// relative to MatchRatio's; both mappings are kept as documented.
func MatchDivider(vIn, vOut float64, span Span, series Series, dir Direction) (MatchResult, error) {
	if vIn <= 0 || vOut < 0 || math.IsNaN(vIn) || math.IsNaN(vOut) {
		return MatchResult{}, ErrInvalidArgument.Appendf("divider %v -> %v", vIn, vOut)
	}
	if vOut > vIn {
		return MatchResult{}, ErrInvalidArgument.Appendf("divider cannot step %v up to %v", vIn, vOut)
	}
	if vOut == 0 {
		return degenerate(math.Inf(1), 0, 0), nil
	}
	if vOut == vIn {
		return degenerate(0, math.Inf(1), vIn), nil
	}
	k := vIn/vOut - 1
	return searchPairs(span, series, dir, func(r1 float64) float64 {
		return r1 / k
	}, func(r1, r2 float64) (achieved, absErr float64) {
		achieved = vIn * r2 / (r1 + r2)
		return achieved, math.Abs(achieved - vOut)
	})
}

func degenerate(r1, r2, achieved float64) MatchResult {
	c := Candidate{R1: r1, R2: r2, Achieved: achieved}
	return MatchResult{Best: c, Ranked: []Candidate{c}}
}

// searchPairs enumerates every r1 of the expanded span, derives the
// ideal r2 via ideal, quantizes it per dir and ranks the resulting
// pairs by eval's absolute error. Under Nearest both the Down and the
// Up quantization of the ideal r2 are kept per r1: the entry nearest
// the raw target is not always the one minimizing the error of the
// resulting ratio.
func searchPairs(span Span, series Series, dir Direction,
	ideal func(r1 float64) float64,
	eval func(r1, r2 float64) (achieved, absErr float64),
) (MatchResult, error) {
	r1s, err := Expand(span, series)
	if err != nil {
		return MatchResult{}, err
	}

	var ranked []Candidate
	add := func(r1, r2 float64) {
		achieved, absErr := eval(r1, r2)
		ranked = append(ranked, Candidate{R1: r1, R2: r2, Achieved: achieved, AbsError: absErr})
	}
	for _, r1 := range r1s {
		want := ideal(r1)
		if dir == Nearest {
			lo, err := Quantize(want, series, Down)
			if err != nil {
				return MatchResult{}, merry.Appendf(err, "r1=%v", r1)
			}
			hi, err := Quantize(want, series, Up)
			if err != nil {
				return MatchResult{}, merry.Appendf(err, "r1=%v", r1)
			}
			add(r1, lo)
			if hi != lo {
				add(r1, hi)
			}
			continue
		}
		r2, err := Quantize(want, series, dir)
		if err != nil {
			return MatchResult{}, merry.Appendf(err, "r1=%v", r1)
		}
		add(r1, r2)
	}
	if len(ranked) == 0 {
		return MatchResult{}, ErrInvalidArgument.Append("empty search range")
	}

	// ties keep decade/entry enumeration order
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].AbsError < ranked[j].AbsError
	})
	return MatchResult{Best: ranked[0], Ranked: ranked}, nil
}
