// Package thermistor interpolates a tabulated NTC resistance over
// temperature curve and its inverse.
package thermistor

import (
	"sort"

	"github.com/ansel1/merry"
	"gonum.org/v1/gonum/interp"
)

var ErrBadTable = merry.New("bad thermistor table")

// TablePoint is one row of a thermistor datasheet table.
type TablePoint struct {
	TempC float64 `yaml:"temp"`
	Ohm   float64 `yaml:"ohm"`
}

// Curve is a monotonic piecewise-linear interpolation of a thermistor
// table. An NTC's resistance falls strictly with temperature, which
// makes the inverse well defined.
type Curve struct {
	rOfT interp.PiecewiseLinear
	tOfR interp.PiecewiseLinear
	min  TablePoint
	max  TablePoint
}

// NewCurve fits a curve to the given table. The table needs at least
// two rows; rows may come in any order but resistance must fall
// strictly as temperature rises.
func NewCurve(table []TablePoint) (*Curve, error) {
	if len(table) < 2 {
		return nil, ErrBadTable.Appendf("need at least 2 points, got %d", len(table))
	}
	pts := make([]TablePoint, len(table))
	copy(pts, table)
	sort.Slice(pts, func(i, j int) bool { return pts[i].TempC < pts[j].TempC })

	temps := make([]float64, len(pts))
	ohms := make([]float64, len(pts))
	ohmsUp := make([]float64, len(pts))
	tempsDown := make([]float64, len(pts))
	for i, p := range pts {
		if p.Ohm <= 0 {
			return nil, ErrBadTable.Appendf("resistance must be positive at %v°C", p.TempC)
		}
		if i > 0 {
			if p.TempC == pts[i-1].TempC {
				return nil, ErrBadTable.Appendf("duplicate temperature %v°C", p.TempC)
			}
			if p.Ohm >= pts[i-1].Ohm {
				return nil, ErrBadTable.Appendf("resistance must fall with temperature at %v°C", p.TempC)
			}
		}
		temps[i] = p.TempC
		ohms[i] = p.Ohm
		// the inverse runs over ascending resistance
		ohmsUp[len(pts)-1-i] = p.Ohm
		tempsDown[len(pts)-1-i] = p.TempC
	}

	var c Curve
	c.min, c.max = pts[0], pts[len(pts)-1]
	if err := c.rOfT.Fit(temps, ohms); err != nil {
		return nil, ErrBadTable.Append(err.Error())
	}
	if err := c.tOfR.Fit(ohmsUp, tempsDown); err != nil {
		return nil, ErrBadTable.Append(err.Error())
	}
	return &c, nil
}

// R interpolates the resistance at temperature t (°C). Outside the
// table the nearest endpoint value is used.
func (c *Curve) R(t float64) float64 {
	switch {
	case t <= c.min.TempC:
		return c.min.Ohm
	case t >= c.max.TempC:
		return c.max.Ohm
	}
	return c.rOfT.Predict(t)
}

// T is the inverse of R: the temperature (°C) at which the thermistor
// has resistance r.
func (c *Curve) T(r float64) float64 {
	switch {
	case r >= c.min.Ohm:
		return c.min.TempC
	case r <= c.max.Ohm:
		return c.max.TempC
	}
	return c.tOfR.Predict(r)
}

// TempRange reports the temperature span covered by the table.
func (c *Curve) TempRange() (minC, maxC float64) {
	return c.min.TempC, c.max.TempC
}
