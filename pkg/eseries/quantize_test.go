package eseries

import (
	"math"
	"math/rand"
	"testing"

	"github.com/ansel1/merry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuantize(t *testing.T) {
	for _, x := range []struct {
		v        float64
		series   Series
		dir      Direction
		expected float64
	}{
		{2500, E24, Nearest, 2400},
		{2500, E24, Up, 2700},
		{2500, E24, Down, 2400},
		{4925.37, E24, Down, 4700},
		{4925.37, E24, Up, 5100},
		{1, E24, Nearest, 1},
		{10, E24, Nearest, 10},
		{9.8, E24, Up, 10},
		{9.8, E12, Down, 8.2},
		{0.00047, E6, Nearest, 0.00047},
		{3.14e6, E12, Nearest, 3.3e6},
		{1.05, E1, Down, 1},
		{1.05, E1, Up, 10},
	} {
		got, err := Quantize(x.v, x.series, x.dir)
		require.NoError(t, err)
		assert.InDelta(t, x.expected, got, x.expected*1e-9,
			"quantize %v %s %s", x.v, x.series, x.dir)
	}
}

func TestQuantizeZero(t *testing.T) {
	for _, s := range []Series{E1, E12, E24, E192} {
		for _, d := range []Direction{Nearest, Up, Down} {
			got, err := Quantize(0, s, d)
			require.NoError(t, err)
			assert.Zero(t, got)
		}
	}
}

func TestQuantizeInf(t *testing.T) {
	got, err := Quantize(math.Inf(1), E24, Nearest)
	require.NoError(t, err)
	assert.True(t, math.IsInf(got, 1))
}

func TestQuantizeNegative(t *testing.T) {
	_, err := Quantize(-1, E24, Nearest)
	require.Error(t, err)
	assert.True(t, merry.Is(err, ErrInvalidArgument))
}

func TestQuantizeUnknownSeries(t *testing.T) {
	_, err := Quantize(2500, Series(13), Nearest)
	require.Error(t, err)
	assert.True(t, merry.Is(err, ErrInvalidSeries))
}

// quantize(down) <= v <= quantize(up), nearest picks the closer bracket,
// and every result is a table entry scaled by a power of ten
func TestQuantizeBracketing(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for _, s := range []Series{E3, E12, E24, E96} {
		for i := 0; i < 1_000; i++ {
			v := math.Pow(10, rnd.Float64()*12-6)
			down, err := Quantize(v, s, Down)
			require.NoError(t, err)
			up, err := Quantize(v, s, Up)
			require.NoError(t, err)
			near, err := Quantize(v, s, Nearest)
			require.NoError(t, err)

			assert.LessOrEqual(t, down, v*(1+1e-9))
			assert.GreaterOrEqual(t, up, v*(1-1e-9))
			if v-down <= up-v {
				assert.Equal(t, down, near)
			} else {
				assert.Equal(t, up, near)
			}
			assertSeriesMember(t, near, s)
		}
	}
}

func TestQuantizeScaleInvariance(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	for i := 0; i < 1_000; i++ {
		v := 1 + rnd.Float64()*9
		q, err := Quantize(v, E24, Nearest)
		require.NoError(t, err)
		for _, k := range []float64{1e-3, 1e3, 1e6} {
			qk, err := Quantize(v*k, E24, Nearest)
			require.NoError(t, err)
			assert.InDelta(t, q*k, qk, q*k*1e-9)
		}
	}
}

func TestQuantizeAll(t *testing.T) {
	got, err := QuantizeAll([]float64{2500, 4925.37, 0}, E24, Nearest)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.InDelta(t, 2400, got[0], 1e-6)
	assert.InDelta(t, 5100, got[1], 1e-6)
	assert.Zero(t, got[2])

	_, err = QuantizeAll([]float64{100, -1}, E24, Nearest)
	require.Error(t, err)
	assert.True(t, merry.Is(err, ErrInvalidArgument))
}

func assertSeriesMember(t *testing.T, v float64, s Series) {
	t.Helper()
	table, err := s.Values()
	require.NoError(t, err)
	exp := math.Floor(math.Log10(v))
	rem := v / math.Pow(10, exp)
	if rem < 1 {
		rem *= 10
	} else if rem >= 10 {
		rem /= 10
	}
	for _, e := range table {
		if math.Abs(e-rem) < 1e-6 {
			return
		}
	}
	t.Errorf("%v is not a member of %s", v, s)
}
