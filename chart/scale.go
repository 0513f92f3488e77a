package chart

import "math"

// NiceMax extends max to a round upper bound for a [0, max] axis with about
// ticks ticks. A non-positive max gives 1 so the axis keeps a height.
func NiceMax(max float64, ticks int) float64 {
	if math.IsNaN(max) || math.IsInf(max, 0) {
		return max
	}
	if max <= 0 {
		return 1
	}
	if ticks <= 0 {
		ticks = niceTickCount
	}

	prevStep := 0.0
	for i := 0; i < 10; i++ {
		step := tickStep(0, max, ticks)
		if step == prevStep || step == 0 {
			break
		}
		max = math.Ceil(max/step) * step
		prevStep = step
	}
	return max
}

// tickStep picks a 1, 2, 5 or 10 times power of ten step so that
// [start, stop] is cut into about count intervals.
func tickStep(start, stop float64, count int) float64 {
	step := (stop - start) / float64(count)
	magnitude := math.Pow(10, math.Floor(math.Log10(step)))
	if magnitude*10 <= step {
		magnitude *= 10
	}
	e := step / magnitude

	factor := 1.0
	switch {
	case e >= math.Sqrt(50):
		factor = 10
	case e >= math.Sqrt(10):
		factor = 5
	case e >= math.Sqrt(2):
		factor = 2
	}
	return factor * magnitude
}
