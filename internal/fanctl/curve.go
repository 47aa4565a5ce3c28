// Package fanctl holds the fan-controller dimensioning formulas: the
// temperature to duty-cycle curve and the resistor network sizing
// around the thermistor input.
package fanctl

import (
	"github.com/ansel1/merry"
)

var ErrBadCurve = merry.New("bad fan curve")

// Slot is one configured point of the fan curve. Duty is held flat from
// Temp up to the next slot unless Dynamic is set, in which case it ramps
// linearly towards the next slot's duty.
type Slot struct {
	Temp    float64 `yaml:"temp"`
	Duty    float64 `yaml:"duty"`
	Dynamic bool    `yaml:"dynamic"`
}

// DefaultSlots is the curve the reference firmware ships with.
var DefaultSlots = []Slot{
	{Temp: 0, Duty: 0},
	{Temp: 50, Duty: 15},
	{Temp: 60, Duty: 25},
	{Temp: 70, Duty: 35, Dynamic: true},
	{Temp: 80, Duty: 50, Dynamic: true},
	{Temp: 90, Duty: 90, Dynamic: true},
	{Temp: 95, Duty: 100},
}

type segment struct {
	from, to    float64
	duty, duty2 float64
}

// Curve maps temperature to fan duty cycle in percent.
type Curve []segment

// NewCurve compiles slots into a curve. Slots must be ordered by
// strictly increasing temperature with duties in [0,100].
func NewCurve(slots []Slot) (Curve, error) {
	if len(slots) == 0 {
		return nil, ErrBadCurve.Append("no slots")
	}
	var c Curve
	for i, s := range slots {
		if s.Duty < 0 || s.Duty > 100 {
			return nil, ErrBadCurve.Appendf("slot %d: duty %v out of [0,100]", i, s.Duty)
		}
		if i > 0 && s.Temp <= slots[i-1].Temp {
			return nil, ErrBadCurve.Appendf("slot %d: temperatures must increase", i)
		}
		seg := segment{from: s.Temp, duty: s.Duty, duty2: s.Duty}
		if i < len(slots)-1 {
			seg.to = slots[i+1].Temp
			if s.Dynamic {
				seg.duty2 = slots[i+1].Duty
			}
		} else {
			seg.to = s.Temp + 1
			seg.duty2 = s.Duty
		}
		c = append(c, seg)
	}
	return c, nil
}

// Duty returns the duty cycle in percent commanded at the given
// temperature. Below the first slot the fan is off; above the last it
// runs at the last slot's duty.
func (c Curve) Duty(temp float64) float64 {
	if len(c) == 0 || temp < c[0].from {
		return 0
	}
	last := c[len(c)-1]
	if temp >= last.to {
		return last.duty2
	}
	for _, seg := range c {
		if temp < seg.from || temp >= seg.to {
			continue
		}
		if seg.duty2 > seg.duty {
			k := (temp - seg.from) / (seg.to - seg.from)
			return seg.duty + (seg.duty2-seg.duty)*k
		}
		return seg.duty
	}
	return last.duty2
}
