package summary

import (
	"sort"

	"github.com/uyouii/engagement-charts/model"
)

// Partition splits records by keyFn. It returns the keys in the order they
// were first seen and, per key, the records in their input order.
func Partition[R any](records []R, keyFn func(R) string) ([]string, map[string][]R) {
	order := []string{}
	grouped := make(map[string][]R)

	for _, record := range records {
		key := keyFn(record)
		if _, exists := grouped[key]; !exists {
			order = append(order, key)
		}
		grouped[key] = append(grouped[key], record)
	}
	return order, grouped
}

// ComputeGroupSummaries partitions records by keyFn and computes the
// five-number summary of valueFn over every partition. Keys keep their
// first-seen order. An empty input gives an empty result.
func ComputeGroupSummaries[R any](records []R, keyFn func(R) string, valueFn func(R) float64) *model.GroupedSummaries {
	res := model.NewGroupedSummaries()

	order, grouped := Partition(records, keyFn)
	for _, key := range order {
		res.Set(key, Summarize(sortedValues(grouped[key], valueFn)))
	}
	return res
}

func sortedValues[R any](records []R, valueFn func(R) float64) []float64 {
	res := values(records, valueFn)
	sort.Float64s(res)
	return res
}
