package eseries

import (
	"testing"

	"github.com/ansel1/merry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeries(t *testing.T) {
	for _, alias := range []string{"E24", "e24", "24", " E24 "} {
		s, err := ParseSeries(alias)
		require.NoError(t, err, alias)
		assert.Equal(t, E24, s)
	}
	for _, alias := range []string{"E13", "13", "", "gold", "E"} {
		_, err := ParseSeries(alias)
		require.Error(t, err, alias)
		assert.True(t, merry.Is(err, ErrInvalidSeries), alias)
	}
}

func TestSeriesTables(t *testing.T) {
	for _, s := range []Series{E1, E3, E6, E12, E24, E48, E96, E192} {
		table, err := s.Values()
		require.NoError(t, err)
		require.NotEmpty(t, table)
		assert.Equal(t, 1.0, table[0], s.String())
		assert.Equal(t, 10.0, table[len(table)-1], s.String())
		assert.Len(t, table, int(s)+1, s.String())
		for i := 1; i < len(table); i++ {
			assert.Greater(t, table[i], table[i-1], s.String())
		}
	}
}

// every E12 entry is also an E24 entry, matching decimal values
func TestSeriesRefinement(t *testing.T) {
	t12, err := E12.Values()
	require.NoError(t, err)
	t24, err := E24.Values()
	require.NoError(t, err)
	for _, v := range t12 {
		assert.Contains(t, t24, v)
	}
}

func TestParseDirection(t *testing.T) {
	for token, expected := range map[string]Direction{
		"nearest": Nearest,
		"up":      Up,
		"UP":      Up,
		"down":    Down,
		"floor":   Down,
		"ceil":    Up,
		"":        Nearest,
	} {
		d, degraded := ParseDirection(token)
		assert.Equal(t, expected, d, token)
		assert.False(t, degraded, token)
	}

	d, degraded := ParseDirection("sideways")
	assert.Equal(t, Nearest, d)
	assert.True(t, degraded)
}
