package chart

import (
	"math"

	"github.com/pkg/errors"
	"github.com/uyouii/engagement-charts/common"
	"github.com/uyouii/engagement-charts/model"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// NaturalCurve samples a natural cubic spline through (i, ys[i]) with
// segments points per unit of x. Fewer than three points are returned as is.
func NaturalCurve(ys []float64, segments int) (plotter.XYs, error) {
	if len(ys) < 3 {
		pts := make(plotter.XYs, len(ys))
		for i, y := range ys {
			pts[i] = plotter.XY{X: float64(i), Y: y}
		}
		return pts, nil
	}

	xs := make([]float64, len(ys))
	floats.Span(xs, 0, float64(len(ys)-1))

	var spline interp.NaturalCubic
	if err := spline.Fit(xs, ys); err != nil {
		return nil, errors.Wrap(err, "fit natural cubic")
	}

	if segments < 1 {
		segments = 1
	}
	n := (len(ys)-1)*segments + 1
	pts := make(plotter.XYs, n)
	for i := range pts {
		x := float64(i) / float64(segments)
		pts[i] = plotter.XY{X: x, Y: spline.Predict(x)}
	}
	// land exactly on the data points
	for i, y := range ys {
		pts[i*segments].Y = y
	}
	return pts, nil
}

// LineChart renders a time series as a smooth line through the centers of
// one band per label. Labels are rotated so long dates stay readable.
func LineChart(title, xLabel, yLabel string, series model.TimeSeries) (*plot.Plot, error) {
	if series.IsEmpty() {
		return nil, common.ErrorEmptyData
	}

	ys := make([]float64, len(series.Values))
	for i, v := range series.Values {
		ys[i] = v.Value
	}
	pts, err := NaturalCurve(ys, curveSegments)
	if err != nil {
		return nil, err
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, errors.Wrapf(err, "line for %q", series.Name)
	}
	line.Color = steelBlue
	line.Width = vg.Points(2)

	p := newPlot(title, xLabel, yLabel)
	p.Add(line)
	p.NominalX(series.Labels()...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YTop

	ymin := math.Min(0, floats.Min(ys))
	p.X.Min, p.X.Max = -0.5, float64(len(ys))-0.5
	p.Y.Min, p.Y.Max = ymin, NiceMax(floats.Max(ys), niceTickCount)
	return p, nil
}
