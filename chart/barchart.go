package chart

import (
	"github.com/pkg/errors"
	"github.com/uyouii/engagement-charts/common"
	"github.com/uyouii/engagement-charts/model"
	"github.com/uyouii/engagement-charts/summary"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// barSeries holds, for one sub key, the value of every outer key.
type barSeries struct {
	subKey string
	values plotter.Values
}

// splitAverages pivots averages into one series per sub key. Outer keys and
// sub keys keep their first-seen order, missing pairs are 0.
func splitAverages(averages []model.GroupAverage) ([]string, []barSeries) {
	keys, _ := summary.Partition(averages, func(a model.GroupAverage) string { return a.Key })
	subKeys, bySubKey := summary.Partition(averages, func(a model.GroupAverage) string { return a.SubKey })

	index := make(map[string]int, len(keys))
	for i, key := range keys {
		index[key] = i
	}

	series := make([]barSeries, 0, len(subKeys))
	for _, subKey := range subKeys {
		values := make(plotter.Values, len(keys))
		for _, avg := range bySubKey[subKey] {
			values[index[avg.Key]] = avg.Mean
		}
		series = append(series, barSeries{subKey: subKey, values: values})
	}
	return keys, series
}

// GroupedBarChart renders one band per key and, inside it, one bar per sub
// key colored from palette (DefaultPalette when empty). Bar widths are
// derived from layout so the bars fill their bands.
func GroupedBarChart(title, xLabel, yLabel string, averages []model.GroupAverage,
	palette []string, layout Layout) (*plot.Plot, error) {
	if len(averages) == 0 {
		return nil, common.ErrorEmptyData
	}
	colors, err := paletteColors(palette)
	if err != nil {
		return nil, err
	}

	keys, series := splitAverages(averages)
	barWidth, offsets := barGeometry(layout.Width, len(keys), len(series))

	p := newPlot(title, xLabel, yLabel)
	p.Legend.Top = true

	ymax := 0.0
	for i, s := range series {
		bars, err := plotter.NewBarChart(s.values, barWidth)
		if err != nil {
			return nil, errors.Wrapf(err, "bars for %q", s.subKey)
		}
		bars.Color = colors[i%len(colors)]
		bars.LineStyle.Width = 0
		bars.Offset = offsets[i]

		p.Add(bars)
		if s.subKey != "" {
			p.Legend.Add(s.subKey, bars)
		}
		ymax = max(ymax, floats.Max(s.values))
	}

	p.NominalX(keys...)
	p.X.Min, p.X.Max = -0.5, float64(len(keys))-0.5
	p.Y.Min, p.Y.Max = 0, NiceMax(ymax, niceTickCount)
	return p, nil
}

// barGeometry splits an outer band into inner bands and returns the bar
// width plus each bar's offset from the band center.
func barGeometry(width vg.Length, groups, bars int) (vg.Length, []vg.Length) {
	band := width * plotAreaFactor / vg.Length(groups)
	inner := band * (1 - bandPadding) / vg.Length(bars)
	barWidth := inner * (1 - innerPadding)

	offsets := make([]vg.Length, bars)
	for i := range offsets {
		offsets[i] = (vg.Length(i) - vg.Length(bars-1)/2) * inner
	}
	return barWidth, offsets
}
