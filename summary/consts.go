package summary

const (
	FirstQuartile = 0.25
	Median        = 0.5
	ThirdQuartile = 0.75
)
