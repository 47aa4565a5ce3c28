// Package eseries snaps continuous circuit values onto the standard
// E-series of preferred numbers and searches two-component networks
// (ratios, voltage dividers) for the best purchasable approximation.
package eseries

import (
	"strconv"
	"strings"

	"github.com/ansel1/merry"
	"github.com/powerman/structlog"
)

var (
	ErrInvalidArgument = merry.New("invalid argument")
	ErrInvalidSeries   = merry.New("invalid series")
)

var log = structlog.New()

// Series identifies one of the standard E-series. The numeric value is
// the number of entries per decade.
type Series int

const (
	E1   Series = 1
	E3   Series = 3
	E6   Series = 6
	E12  Series = 12
	E24  Series = 24
	E48  Series = 48
	E96  Series = 96
	E192 Series = 192
)

const DefaultSeries = E24

// Values returns the series table for one decade: strictly increasing
// multipliers, first 1.0, last 10.0. The returned slice is shared and
// must not be modified.
func (s Series) Values() ([]float64, error) {
	t, ok := seriesTables[s]
	if !ok {
		return nil, ErrInvalidSeries.Appendf("E%d", int(s))
	}
	return t, nil
}

func (s Series) String() string {
	return "E" + strconv.Itoa(int(s))
}

// ParseSeries resolves the aliases under which a series may be named:
// "E24", "e24" and "24" all mean E24.
func ParseSeries(name string) (Series, error) {
	s := strings.TrimSpace(name)
	s = strings.TrimPrefix(strings.ToUpper(s), "E")
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, ErrInvalidSeries.Appendf("%q", name)
	}
	if _, ok := seriesTables[Series(n)]; !ok {
		return 0, ErrInvalidSeries.Appendf("%q", name)
	}
	return Series(n), nil
}

// Direction selects the rounding policy of a quantization.
type Direction int

const (
	Nearest Direction = iota
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "nearest"
	}
}

// ParseDirection resolves a rounding-direction token. Unknown tokens are
// not fatal: the result degrades to Nearest, degraded is reported true
// and a warning is logged.
func ParseDirection(token string) (d Direction, degraded bool) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "", "nearest", "near", "round":
		return Nearest, false
	case "up", "ceil", "ceiling":
		return Up, false
	case "down", "floor":
		return Down, false
	}
	log.Warn("unknown rounding direction, using nearest", "token", token)
	return Nearest, true
}
