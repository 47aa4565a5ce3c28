package fanctl

import (
	"testing"

	"github.com/ansel1/merry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurveDuty(t *testing.T) {
	c, err := NewCurve(DefaultSlots)
	require.NoError(t, err)

	for _, x := range []struct {
		temp     float64
		expected float64
	}{
		{-5, 0},
		{25, 0},
		{50, 15},
		{55, 15},
		{65, 25},
		{70, 35},
		{75, 42.5}, // dynamic ramp 35..50 over 70..80
		{80, 50},
		{85, 70},
		{90, 90},
		{92, 94},
		{95, 100},
		{120, 100},
	} {
		assert.InDelta(t, x.expected, c.Duty(x.temp), 1e-9, "temp %v", x.temp)
	}
}

func TestCurveMonotonicDuty(t *testing.T) {
	c, err := NewCurve(DefaultSlots)
	require.NoError(t, err)
	prev := c.Duty(-20)
	for temp := -19.5; temp < 120; temp += 0.5 {
		d := c.Duty(temp)
		assert.GreaterOrEqual(t, d, prev, "temp %v", temp)
		prev = d
	}
}

func TestNewCurveInvalid(t *testing.T) {
	for name, slots := range map[string][]Slot{
		"empty":            nil,
		"duty over 100":    {{Temp: 0, Duty: 120}},
		"negative duty":    {{Temp: 0, Duty: -5}},
		"temps not rising": {{Temp: 50, Duty: 10}, {Temp: 50, Duty: 20}},
	} {
		_, err := NewCurve(slots)
		require.Error(t, err, name)
		assert.True(t, merry.Is(err, ErrBadCurve), name)
	}
}
