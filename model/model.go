package model

import (
	"fmt"
	"time"
)

// Record is one row of a tabular source.
// Fields keeps the raw text of every column, Numbers and Dates hold the
// columns that were coerced while loading.
type Record struct {
	Fields  map[string]string
	Numbers map[string]float64
	Dates   map[string]time.Time
}

func NewRecord() Record {
	return Record{
		Fields:  map[string]string{},
		Numbers: map[string]float64{},
		Dates:   map[string]time.Time{},
	}
}

func (r Record) Str(name string) string {
	return r.Fields[name]
}

// Number returns the coerced value of a numeric column, 0 when absent.
func (r Record) Number(name string) float64 {
	return r.Numbers[name]
}

func (r Record) Date(name string) (time.Time, bool) {
	t, ok := r.Dates[name]
	return t, ok
}

func (r Record) DebugString() string {
	return fmt.Sprintf("fields: %+v, numbers: %+v", r.Fields, r.Numbers)
}

type TimeValue struct {
	// Label is the raw date text, used as the band label on the chart
	Label string    `json:"label"`
	Time  time.Time `json:"time"`
	Value float64   `json:"value"`
}

func (v *TimeValue) Before(timeValue TimeValue) bool {
	return v.Time.Before(timeValue.Time)
}

type TimeSeries struct {
	Name   string      `json:"name"`
	Values []TimeValue `json:"values"`
}

func (s *TimeSeries) DebugString() string {
	res := fmt.Sprintf("name: %+v, valueCount: %+v", s.Name, len(s.Values))
	return res
}

func (s *TimeSeries) IsEmpty() bool {
	if s == nil {
		return true
	}
	return len(s.Values) == 0
}

func (s *TimeSeries) Labels() []string {
	res := make([]string, len(s.Values))
	for i, v := range s.Values {
		res[i] = v.Label
	}
	return res
}

// GroupAverage is the mean of a measure for one (Key, SubKey) pair,
// e.g. the average likes of video posts on one platform.
type GroupAverage struct {
	Key    string  `json:"key"`
	SubKey string  `json:"sub_key,omitempty"`
	Mean   float64 `json:"mean"`
	Count  int     `json:"count"`
}
