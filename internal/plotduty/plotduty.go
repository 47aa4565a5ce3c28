// Package plotduty renders a fan duty-cycle curve to an image file.
package plotduty

import (
	"github.com/ansel1/merry"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/mkarpel/edim/internal/fanctl"
)

// Render samples the curve over [minC,maxC] and writes the plot to
// file. The output format follows the file extension (png, svg, pdf).
func Render(curve fanctl.Curve, minC, maxC float64, file string) error {
	if maxC <= minC {
		return merry.Errorf("bad temperature range [%v,%v]", minC, maxC)
	}

	const samplesPerDegree = 4
	n := int((maxC-minC)*samplesPerDegree) + 1
	pts := make(plotter.XYs, n)
	for i := range pts {
		temp := minC + float64(i)/samplesPerDegree
		pts[i].X = temp
		pts[i].Y = curve.Duty(temp)
	}

	p := plot.New()
	p.Title.Text = "Fan duty cycle"
	p.X.Label.Text = "temperature, °C"
	p.Y.Label.Text = "duty, %"
	p.Y.Min, p.Y.Max = 0, 100

	line, err := plotter.NewLine(pts)
	if err != nil {
		return merry.Wrap(err)
	}
	p.Add(plotter.NewGrid(), line)

	if err := p.Save(16*vg.Centimeter, 10*vg.Centimeter, file); err != nil {
		return merry.Append(err, "save plot")
	}
	return nil
}
