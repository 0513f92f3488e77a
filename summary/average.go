package summary

import (
	"sort"
	"time"

	"github.com/uyouii/engagement-charts/model"
	"gonum.org/v1/gonum/stat"
)

// AverageBy computes the mean of valueFn for every (key, subKey) pair.
// Pairs are ordered by first-seen key, then first-seen subKey inside the key.
// A nil subKeyFn averages by key only.
func AverageBy[R any](records []R, keyFn, subKeyFn func(R) string, valueFn func(R) float64) []model.GroupAverage {
	res := []model.GroupAverage{}
	if subKeyFn == nil {
		subKeyFn = func(R) string { return "" }
	}

	keys, byKey := Partition(records, keyFn)
	for _, key := range keys {
		subKeys, bySubKey := Partition(byKey[key], subKeyFn)
		for _, subKey := range subKeys {
			group := bySubKey[subKey]
			res = append(res, model.GroupAverage{
				Key:    key,
				SubKey: subKey,
				Mean:   stat.Mean(values(group, valueFn), nil),
				Count:  len(group),
			})
		}
	}
	return res
}

// TimelineBy averages valueFn per date label. When every label carries a
// parsed time the points are ordered chronologically, otherwise they keep
// the first-seen order of the labels.
func TimelineBy[R any](name string, records []R, labelFn func(R) string,
	timeFn func(R) (time.Time, bool), valueFn func(R) float64) model.TimeSeries {
	series := model.TimeSeries{Name: name, Values: []model.TimeValue{}}

	labels, byLabel := Partition(records, labelFn)
	allDated := true
	for _, label := range labels {
		group := byLabel[label]
		point := model.TimeValue{
			Label: label,
			Value: stat.Mean(values(group, valueFn), nil),
		}
		if t, ok := firstTime(group, timeFn); ok {
			point.Time = t
		} else {
			allDated = false
		}
		series.Values = append(series.Values, point)
	}

	if allDated {
		sort.SliceStable(series.Values, func(i, j int) bool {
			return series.Values[i].Before(series.Values[j])
		})
	}
	return series
}

func values[R any](records []R, valueFn func(R) float64) []float64 {
	res := make([]float64, len(records))
	for i, record := range records {
		res[i] = valueFn(record)
	}
	return res
}

func firstTime[R any](records []R, timeFn func(R) (time.Time, bool)) (time.Time, bool) {
	if timeFn == nil {
		return time.Time{}, false
	}
	for _, record := range records {
		if t, ok := timeFn(record); ok {
			return t, true
		}
	}
	return time.Time{}, false
}
