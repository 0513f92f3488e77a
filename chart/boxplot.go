package chart

import (
	"image/color"

	"github.com/uyouii/engagement-charts/common"
	"github.com/uyouii/engagement-charts/model"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// SummaryBoxes draws one box per group from precomputed summaries. Group i
// sits at x = i, so it lines up with plot.NominalX labels.
type SummaryBoxes struct {
	Groups []model.GroupSummary

	// Width is the box width in x data units, 1 is a full band.
	Width float64

	FillColor    color.Color
	WhiskerStyle draw.LineStyle
	MedianStyle  draw.LineStyle
}

func NewSummaryBoxes(groups *model.GroupedSummaries) (*SummaryBoxes, error) {
	if groups.Len() == 0 {
		return nil, common.ErrorEmptyData
	}
	return &SummaryBoxes{
		Groups:       groups.Entries(),
		Width:        1 - bandPadding,
		FillColor:    lightGray,
		WhiskerStyle: draw.LineStyle{Color: black, Width: vg.Points(1)},
		MedianStyle:  draw.LineStyle{Color: black, Width: vg.Points(2)},
	}, nil
}

// Plot implements plot.Plotter. Marks are drawn whisker first, then the
// box over it, then the median.
func (b *SummaryBoxes) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	half := b.Width / 2

	for i, g := range b.Groups {
		center := float64(i)
		x := trX(center)
		if !c.ContainsX(x) {
			continue
		}
		left, right := trX(center-half), trX(center+half)
		s := g.Summary

		whisker := c.ClipLinesY([]vg.Point{{X: x, Y: trY(s.Min)}, {X: x, Y: trY(s.Max)}})
		c.StrokeLines(b.WhiskerStyle, whisker...)

		q1, q3 := trY(s.Q1), trY(s.Q3)
		box := c.ClipPolygonY([]vg.Point{
			{X: left, Y: q1}, {X: right, Y: q1},
			{X: right, Y: q3}, {X: left, Y: q3},
		})
		c.FillPolygon(b.FillColor, box)

		median := c.ClipLinesY([]vg.Point{{X: left, Y: trY(s.Median)}, {X: right, Y: trY(s.Median)}})
		c.StrokeLines(b.MedianStyle, median...)
	}
}

// DataRange implements plot.DataRanger. The y range always starts at 0.
func (b *SummaryBoxes) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = -0.5, float64(len(b.Groups))-0.5
	for _, g := range b.Groups {
		if g.Summary.Max > ymax {
			ymax = g.Summary.Max
		}
		if g.Summary.Min < ymin {
			ymin = g.Summary.Min
		}
	}
	return xmin, xmax, ymin, ymax
}

// BoxPlot renders grouped summaries as a box plot, one band per key in the
// order the keys were first seen.
func BoxPlot(title, xLabel, yLabel string, groups *model.GroupedSummaries) (*plot.Plot, error) {
	boxes, err := NewSummaryBoxes(groups)
	if err != nil {
		return nil, err
	}

	p := newPlot(title, xLabel, yLabel)
	p.Add(boxes)
	p.NominalX(groups.Keys()...)

	_, _, ymin, ymax := boxes.DataRange()
	p.Y.Min, p.Y.Max = ymin, NiceMax(ymax, niceTickCount)
	return p, nil
}

func newPlot(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	return p
}
