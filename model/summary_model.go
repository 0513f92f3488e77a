package model

import (
	"encoding/json"
	"fmt"
)

// Summary is the five-number summary of a group.
type Summary struct {
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
}

// Valid reports whether min <= q1 <= median <= q3 <= max.
func (s Summary) Valid() bool {
	return s.Min <= s.Q1 && s.Q1 <= s.Median && s.Median <= s.Q3 && s.Q3 <= s.Max
}

func (s Summary) String() string {
	return fmt.Sprintf("{min: %v, q1: %v, median: %v, q3: %v, max: %v}", s.Min, s.Q1, s.Median, s.Q3, s.Max)
}

type GroupSummary struct {
	Key     string  `json:"key"`
	Summary Summary `json:"summary"`
}

// GroupedSummaries maps group keys to summaries and remembers the order in
// which keys were added.
type GroupedSummaries struct {
	keys      []string
	summaries map[string]Summary
}

func NewGroupedSummaries() *GroupedSummaries {
	return &GroupedSummaries{
		keys:      []string{},
		summaries: map[string]Summary{},
	}
}

// Set adds key at the end of the order, or replaces its summary in place.
func (g *GroupedSummaries) Set(key string, summary Summary) {
	if _, ok := g.summaries[key]; !ok {
		g.keys = append(g.keys, key)
	}
	g.summaries[key] = summary
}

func (g *GroupedSummaries) Get(key string) (Summary, bool) {
	if g == nil {
		return Summary{}, false
	}
	s, ok := g.summaries[key]
	return s, ok
}

func (g *GroupedSummaries) Len() int {
	if g == nil {
		return 0
	}
	return len(g.keys)
}

// Keys returns a copy of the keys in insertion order.
func (g *GroupedSummaries) Keys() []string {
	if g == nil {
		return nil
	}
	return append([]string(nil), g.keys...)
}

func (g *GroupedSummaries) Each(fn func(key string, summary Summary)) {
	if g == nil {
		return
	}
	for _, key := range g.keys {
		fn(key, g.summaries[key])
	}
}

func (g *GroupedSummaries) Entries() []GroupSummary {
	res := make([]GroupSummary, 0, g.Len())
	g.Each(func(key string, summary Summary) {
		res = append(res, GroupSummary{Key: key, Summary: summary})
	})
	return res
}

// MarshalJSON encodes the summaries as an array so the key order survives.
func (g *GroupedSummaries) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.Entries())
}
