// Package config holds the dimensioning defaults: supply rails, the
// thermistor table, the fan curve and the search range for the divider
// top resistor. The config lives in a yaml file next to the executable.
package config

import (
	"sync"

	"github.com/ansel1/merry"
	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/mkarpel/edim/internal/fanctl"
	"github.com/mkarpel/edim/internal/pkg/cfgfile"
	"github.com/mkarpel/edim/internal/pkg/must"
	"github.com/mkarpel/edim/internal/thermistor"
	"github.com/mkarpel/edim/pkg/eseries"
)

type Config struct {
	FloatPrecision int       `yaml:"float_precision"`
	Series         string    `yaml:"series"`
	Direction      string    `yaml:"direction"`
	Supply         Supply    `yaml:"supply"`
	R1Range        []float64 `yaml:"r1_range"`

	Thermistor []thermistor.TablePoint `yaml:"thermistor,omitempty"`
	FanCurve   []fanctl.Slot           `yaml:"fan_curve,omitempty"`
}

type Supply struct {
	VCC      float64 `yaml:"vcc"`
	VTrip    float64 `yaml:"v_trip"`
	TripTemp float64 `yaml:"trip_temp"`
}

func Default() Config {
	return Config{
		FloatPrecision: 3,
		Series:         eseries.DefaultSeries.String(),
		Direction:      eseries.Nearest.String(),
		Supply: Supply{
			VCC:      3.3,
			VTrip:    1.65,
			TripTemp: 50,
		},
		R1Range: []float64{1000, 100000},
	}
}

func (c Config) Validate() error {
	var mulErr *multierror.Error
	if _, err := eseries.ParseSeries(c.Series); err != nil {
		mulErr = multierror.Append(mulErr, err)
	}
	if c.Supply.VCC <= 0 {
		mulErr = multierror.Append(mulErr, merry.Errorf("supply.vcc=%v: must be positive", c.Supply.VCC))
	}
	if c.Supply.VTrip <= 0 || c.Supply.VTrip >= c.Supply.VCC {
		mulErr = multierror.Append(mulErr,
			merry.Errorf("supply.v_trip=%v: must be inside (0,%v)", c.Supply.VTrip, c.Supply.VCC))
	}
	switch len(c.R1Range) {
	case 1, 2:
		for _, v := range c.R1Range {
			if v <= 0 {
				mulErr = multierror.Append(mulErr, merry.Errorf("r1_range: %v must be positive", v))
			}
		}
		if len(c.R1Range) == 2 && c.R1Range[0] > c.R1Range[1] {
			mulErr = multierror.Append(mulErr, merry.New("r1_range: min above max"))
		}
	default:
		mulErr = multierror.Append(mulErr, merry.Errorf("r1_range: want 1 or 2 bounds, got %d", len(c.R1Range)))
	}
	if len(c.Thermistor) > 0 {
		if _, err := thermistor.NewCurve(c.Thermistor); err != nil {
			mulErr = multierror.Append(mulErr, err)
		}
	}
	if len(c.FanCurve) > 0 {
		if _, err := fanctl.NewCurve(c.FanCurve); err != nil {
			mulErr = multierror.Append(mulErr, err)
		}
	}
	return mulErr.ErrorOrNil()
}

// SeriesValue resolves the configured series alias.
func (c Config) SeriesValue() (eseries.Series, error) {
	return eseries.ParseSeries(c.Series)
}

// DirectionValue resolves the configured rounding direction, degrading
// to nearest on unknown tokens.
func (c Config) DirectionValue() eseries.Direction {
	d, _ := eseries.ParseDirection(c.Direction)
	return d
}

// Span builds the r1 search span from the configured bounds.
func (c Config) Span() eseries.Span {
	if len(c.R1Range) == 1 {
		return eseries.Point(c.R1Range[0])
	}
	return eseries.Span{Min: c.R1Range[0], Max: c.R1Range[1]}
}

// NTC fits the configured thermistor table, or the built-in one when
// none is configured.
func (c Config) NTC() (*thermistor.Curve, error) {
	if len(c.Thermistor) == 0 {
		return thermistor.DefaultCurve(), nil
	}
	return thermistor.NewCurve(c.Thermistor)
}

// Curve compiles the configured fan curve, or the reference one.
func (c Config) Curve() (fanctl.Curve, error) {
	if len(c.FanCurve) == 0 {
		return fanctl.NewCurve(fanctl.DefaultSlots)
	}
	return fanctl.NewCurve(c.FanCurve)
}

var (
	mu   sync.Mutex
	cfg  = Default()
	file = cfgfile.New("edim.yaml", yaml.Marshal, yaml.Unmarshal)
)

// Init loads the config file, creating it with defaults when missing.
func Init() error {
	mu.Lock()
	defer mu.Unlock()
	c := Default()
	if err := file.Get(&c); err != nil {
		return file.Set(cfg)
	}
	if err := c.Validate(); err != nil {
		return merry.Append(err, file.Filename())
	}
	cfg = c
	return nil
}

func Get() (r Config) {
	mu.Lock()
	defer mu.Unlock()
	must.UnmarshalYaml(must.MarshalYaml(cfg), &r)
	return
}

func Set(c Config) error {
	if err := c.Validate(); err != nil {
		return err
	}
	mu.Lock()
	defer mu.Unlock()
	if err := file.Set(c); err != nil {
		return err
	}
	cfg = c
	return nil
}
