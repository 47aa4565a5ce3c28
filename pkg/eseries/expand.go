package eseries

import (
	"math"

	"github.com/ansel1/merry"
)

// Span is the first-component search specification: either a single
// anchor value (Min == Max, see Point) or an inclusive [Min,Max] range.
type Span struct {
	Min, Max float64
}

// Point makes the single-anchor form of a Span.
func Point(v float64) Span {
	return Span{Min: v, Max: v}
}

func (s Span) IsPoint() bool {
	return s.Min == s.Max
}

func (s Span) validate() error {
	if s.Min < 0 || s.Max < 0 || math.IsNaN(s.Min) || math.IsNaN(s.Max) {
		return ErrInvalidArgument.Appendf("span [%v,%v]", s.Min, s.Max)
	}
	if s.Min > s.Max {
		return ErrInvalidArgument.Appendf("span [%v,%v]: min > max", s.Min, s.Max)
	}
	if !s.IsPoint() && s.Min == 0 {
		return ErrInvalidArgument.Append("span min must be positive")
	}
	return nil
}

// Expand produces every series value inside the span, across all decades
// the span touches, ascending and deduplicated. A point span yields the
// single nearest-quantized anchor. The bounds themselves are snapped to
// their nearest series entries first, so a range like [9800,31000] on
// E24 behaves as [10000,30000].
func Expand(span Span, series Series) ([]float64, error) {
	table, err := series.Values()
	if err != nil {
		return nil, err
	}
	if err := span.validate(); err != nil {
		return nil, err
	}
	if span.IsPoint() {
		v, err := Quantize(span.Min, series, Nearest)
		if err != nil {
			return nil, merry.Append(err, "anchor")
		}
		return []float64{v}, nil
	}

	lo, err := Quantize(span.Min, series, Nearest)
	if err != nil {
		return nil, merry.Append(err, "min")
	}
	hi, err := Quantize(span.Max, series, Nearest)
	if err != nil {
		return nil, merry.Append(err, "max")
	}
	startExp := decadeOf(lo)
	endExp := decadeOf(hi)

	var values []float64
	for e := startExp; e <= endExp; e++ {
		scale := math.Pow(10, float64(e))
		for _, t := range table {
			v := t * scale
			if v < lo*(1-eps) || v > hi*(1+eps) {
				continue
			}
			// the trailing 10.0 of one decade is the 1.0 of the next
			if n := len(values); n > 0 && v <= values[n-1]*(1+eps) {
				continue
			}
			values = append(values, v)
		}
	}
	return values, nil
}

// decadeOf is floor(log10(v)) with a guard against log10 landing on the
// wrong side of a decade edge.
func decadeOf(v float64) int {
	e := int(math.Floor(math.Log10(v)))
	switch rem := v / math.Pow(10, float64(e)); {
	case rem < 1:
		return e - 1
	case rem >= 10:
		return e + 1
	}
	return e
}
