package fanctl

import (
	"testing"

	"github.com/ansel1/merry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarpel/edim/internal/thermistor"
	"github.com/mkarpel/edim/pkg/eseries"
)

func TestTripDivider(t *testing.T) {
	ntc := thermistor.DefaultCurve()

	// half-supply threshold at 50°C asks for r1 equal to the NTC's
	// 3588 Ω, snapping to 3600 on E24
	tp, err := TripDivider(3.3, 1.65, 50, ntc, eseries.E24, eseries.Nearest)
	require.NoError(t, err)
	assert.InDelta(t, 3600, tp.R1, 1e-6)
	assert.InDelta(t, 3588, tp.R1Ideal, 1e-6)
	assert.InDelta(t, 1.6472, tp.VTrip, 1e-4)
	assert.InDelta(t, 49.93, tp.TripTempC, 0.01)
}

func TestTripDividerDirections(t *testing.T) {
	ntc := thermistor.DefaultCurve()
	down, err := TripDivider(3.3, 1.65, 50, ntc, eseries.E24, eseries.Down)
	require.NoError(t, err)
	up, err := TripDivider(3.3, 1.65, 50, ntc, eseries.E24, eseries.Up)
	require.NoError(t, err)
	assert.LessOrEqual(t, down.R1, up.R1)
	assert.LessOrEqual(t, down.R1, down.R1Ideal)
	assert.GreaterOrEqual(t, up.R1, up.R1Ideal)
}

func TestTripDividerInvalid(t *testing.T) {
	ntc := thermistor.DefaultCurve()
	for name, f := range map[string]func() (TripPoint, error){
		"vTrip above vcc": func() (TripPoint, error) {
			return TripDivider(3.3, 5, 50, ntc, eseries.E24, eseries.Nearest)
		},
		"temp outside table": func() (TripPoint, error) {
			return TripDivider(3.3, 1.65, 200, ntc, eseries.E24, eseries.Nearest)
		},
		"zero vcc": func() (TripPoint, error) {
			return TripDivider(0, 1.65, 50, ntc, eseries.E24, eseries.Nearest)
		},
	} {
		_, err := f()
		require.Error(t, err, name)
		assert.True(t, merry.Is(err, ErrBadSetpoint), name)
	}
}

func TestReference(t *testing.T) {
	res, err := Reference(3.3, 1.65, eseries.Point(10000), eseries.E24, eseries.Nearest)
	require.NoError(t, err)
	assert.InDelta(t, 10000, res.Best.R1, 1e-6)
	assert.InDelta(t, 10000, res.Best.R2, 1e-6)
	assert.InDelta(t, 0, res.Best.AbsError, 1e-9)

	_, err = Reference(3.3, 5, eseries.Point(10000), eseries.E24, eseries.Nearest)
	require.Error(t, err)
	assert.True(t, merry.Is(err, eseries.ErrInvalidArgument))
}
