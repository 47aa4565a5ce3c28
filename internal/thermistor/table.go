package thermistor

import "github.com/mkarpel/edim/internal/pkg/must"

// Default10K is a 10 kΩ @25°C, B≈3950 NTC table, the sensor the fan
// controller reference design ships with.
var Default10K = []TablePoint{
	{TempC: -20, Ohm: 105400},
	{TempC: -10, Ohm: 58270},
	{TempC: 0, Ohm: 33630},
	{TempC: 10, Ohm: 20170},
	{TempC: 20, Ohm: 12540},
	{TempC: 25, Ohm: 10000},
	{TempC: 30, Ohm: 8037},
	{TempC: 40, Ohm: 5301},
	{TempC: 50, Ohm: 3588},
	{TempC: 60, Ohm: 2486},
	{TempC: 70, Ohm: 1761},
	{TempC: 80, Ohm: 1270},
	{TempC: 90, Ohm: 934},
	{TempC: 100, Ohm: 699},
}

// DefaultCurve fits the built-in table.
func DefaultCurve() *Curve {
	c, err := NewCurve(Default10K)
	must.PanicIf(err)
	return c
}
