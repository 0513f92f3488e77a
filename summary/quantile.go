package summary

import (
	"math"

	"github.com/uyouii/engagement-charts/model"
)

// Quantile returns the p-quantile of sorted by linear interpolation between
// the order statistics around rank p*(n-1). sorted must be ascending.
func Quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if p <= 0 || n == 1 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	rank := p * float64(n-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

// Summarize computes the five-number summary of a non-empty ascending slice.
func Summarize(sorted []float64) model.Summary {
	return model.Summary{
		Min:    sorted[0],
		Q1:     Quantile(sorted, FirstQuartile),
		Median: Quantile(sorted, Median),
		Q3:     Quantile(sorted, ThirdQuartile),
		Max:    sorted[len(sorted)-1],
	}
}
