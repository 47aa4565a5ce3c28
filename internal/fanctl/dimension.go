package fanctl

import (
	"math"

	"github.com/ansel1/merry"
	"github.com/mkarpel/edim/internal/thermistor"
	"github.com/mkarpel/edim/pkg/eseries"
)

var ErrBadSetpoint = merry.New("bad setpoint")

// TripPoint is the outcome of sizing the thermistor divider's fixed top
// resistor for one temperature threshold.
type TripPoint struct {
	R1        float64 // chosen series value of the top resistor
	R1Ideal   float64 // exact value the threshold asks for
	VTrip     float64 // threshold voltage actually reached with R1
	TripTempC float64 // temperature at which VTrip is actually crossed
}

// TripDivider sizes the fixed resistor between the supply and the
// thermistor so that the divider output crosses vTrip at tripTemp:
//
//	vcc ── r1 ── sense ── NTC ── gnd, sense = vcc·Rntc/(r1+Rntc)
//
// The exact r1 is Rntc(tripTemp)·(vcc/vTrip − 1); the returned trip
// point reports the voltage and temperature the snapped series value
// actually trips at.
func TripDivider(vcc, vTrip, tripTemp float64, ntc *thermistor.Curve,
	series eseries.Series, dir eseries.Direction) (TripPoint, error) {

	if vcc <= 0 || vTrip <= 0 {
		return TripPoint{}, ErrBadSetpoint.Appendf("vcc=%v, vTrip=%v", vcc, vTrip)
	}
	if vTrip >= vcc {
		return TripPoint{}, ErrBadSetpoint.Appendf("vTrip=%v must stay below vcc=%v", vTrip, vcc)
	}
	if minC, maxC := ntc.TempRange(); tripTemp < minC || tripTemp > maxC {
		return TripPoint{}, ErrBadSetpoint.Appendf("tripTemp=%v outside table [%v,%v]", tripTemp, minC, maxC)
	}

	rntc := ntc.R(tripTemp)
	ideal := rntc * (vcc/vTrip - 1)
	r1, err := eseries.Quantize(ideal, series, dir)
	if err != nil {
		return TripPoint{}, err
	}

	// with the snapped r1, the threshold moves: solve the divider back
	// for the NTC resistance at which vTrip is reached again
	rAtTrip := r1 / (vcc/vTrip - 1)
	return TripPoint{
		R1:        r1,
		R1Ideal:   ideal,
		VTrip:     vcc * rntc / (r1 + rntc),
		TripTempC: ntc.T(rAtTrip),
	}, nil
}

// Reference sizes the two-resistor divider generating the comparator
// reference vTrip from the supply. It is a direct voltage-divider
// search over the series.
func Reference(vcc, vTrip float64, r1Range eseries.Span,
	series eseries.Series, dir eseries.Direction) (eseries.MatchResult, error) {

	if math.IsNaN(vcc) || vcc <= 0 {
		return eseries.MatchResult{}, ErrBadSetpoint.Appendf("vcc=%v", vcc)
	}
	return eseries.MatchDivider(vcc, vTrip, r1Range, series, dir)
}
