package pipeline

import (
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/uyouii/engagement-charts/common"
	"github.com/uyouii/engagement-charts/dataset"
)

type Kind string

const (
	KindBox  Kind = "box"
	KindBar  Kind = "bar"
	KindLine Kind = "line"
)

func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindBox, KindBar, KindLine:
		return k, nil
	}
	return "", errors.Wrapf(common.ErrorInvalidValue, "unknown chart kind %q", s)
}

// Job describes one chart: where its table comes from, which columns feed
// it and where the image goes.
type Job struct {
	Name   string
	Kind   Kind
	Source dataset.Source
	// Output is the image path, its extension selects the format.
	Output string

	GroupColumn    string
	SubGroupColumn string
	DateColumn     string
	ValueColumn    string

	Title  string
	XLabel string
	YLabel string
}

func (j Job) Validate() error {
	if j.Source == nil {
		return errors.Wrapf(common.ErrorInvalidValue, "job %q has no source", j.Name)
	}
	if j.ValueColumn == "" {
		return errors.Wrapf(common.ErrorInvalidValue, "job %q has no value column", j.Name)
	}
	switch j.Kind {
	case KindBox:
		if j.GroupColumn == "" {
			return errors.Wrapf(common.ErrorInvalidValue, "box job %q needs a group column", j.Name)
		}
	case KindBar:
		if j.GroupColumn == "" || j.SubGroupColumn == "" {
			return errors.Wrapf(common.ErrorInvalidValue, "bar job %q needs group and sub group columns", j.Name)
		}
	case KindLine:
		if j.DateColumn == "" {
			return errors.Wrapf(common.ErrorInvalidValue, "line job %q needs a date column", j.Name)
		}
	default:
		return errors.Wrapf(common.ErrorInvalidValue, "job %q has unknown kind %q", j.Name, j.Kind)
	}
	return nil
}

func (j Job) options() dataset.Options {
	opts := dataset.Options{NumericColumns: []string{j.ValueColumn}}
	switch j.Kind {
	case KindBox:
		opts.Required = []string{j.GroupColumn}
	case KindBar:
		opts.Required = []string{j.GroupColumn, j.SubGroupColumn}
	case KindLine:
		opts.Required = []string{j.DateColumn}
	}
	return opts
}

// Files names the csv files the default jobs read.
type Files struct {
	Posts    string
	Averages string
	Timeline string
}

var DefaultFiles = Files{
	Posts:    "socialMedia.csv",
	Averages: "SocialMediaAvg.csv",
	Timeline: "SocialMediaTime.csv",
}

// DefaultJobs returns the three engagement charts: likes per platform as a
// box plot, average likes per platform and post type as grouped bars, and
// average likes per day as a line.
func DefaultJobs(dataDir, outputDir, format string, files Files) []Job {
	return []Job{
		{
			Name:        "likes-by-platform",
			Kind:        KindBox,
			Source:      dataset.NewSource(Location(dataDir, files.Posts)),
			Output:      filepath.Join(outputDir, "likes-by-platform."+format),
			GroupColumn: "Platform",
			ValueColumn: "Likes",
			Title:       "Likes by Platform",
			XLabel:      "Platform",
			YLabel:      "Likes",
		},
		{
			Name:           "average-likes",
			Kind:           KindBar,
			Source:         dataset.NewSource(Location(dataDir, files.Averages)),
			Output:         filepath.Join(outputDir, "average-likes."+format),
			GroupColumn:    "Platform",
			SubGroupColumn: "PostType",
			ValueColumn:    "AvgLikes",
			Title:          "Average Likes by Platform and Post Type",
			XLabel:         "Platform",
			YLabel:         "Average Likes",
		},
		{
			Name:        "likes-over-time",
			Kind:        KindLine,
			Source:      dataset.NewSource(Location(dataDir, files.Timeline)),
			Output:      filepath.Join(outputDir, "likes-over-time."+format),
			DateColumn:  "Date",
			ValueColumn: "AvgLikes",
			Title:       "Average Likes over Time",
			XLabel:      "Date",
			YLabel:      "Average Number of Likes",
		},
	}
}

// Location joins dir and name unless name is a URL or absolute path, or dir
// is itself a URL.
func Location(dir, name string) string {
	if isRemote(name) || filepath.IsAbs(name) {
		return name
	}
	if isRemote(dir) {
		return dir + "/" + name
	}
	return filepath.Join(dir, name)
}

func isRemote(location string) bool {
	_, ok := dataset.NewSource(location).(*dataset.HTTPSource)
	return ok
}
