package dataset

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/uyouii/engagement-charts/common"
	"github.com/uyouii/engagement-charts/model"
	"github.com/uyouii/engagement-charts/summary"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

const socialMediaCSV = `Platform,PostType,Date,Likes
Instagram,Video,3/1/2024 (Friday),256
Facebook,Link,3/1/2024 (Friday),n/a
Twitter,Image,3/2/2024 (Saturday),
LinkedIn,Video,bad date, 88
`

var socialMediaOptions = Options{
	NumericColumns: []string{"Likes"},
	DateColumns:    []string{"Date"},
	Required:       []string{"Platform", "PostType"},
}

func TestReadCSV(t *testing.T) {
	records, err := ReadCSV(context.Background(), strings.NewReader(socialMediaCSV), socialMediaOptions)
	assert.NilError(t, err)
	assert.Assert(t, is.Len(records, 4))

	assert.Check(t, is.Equal(records[0].Str("Platform"), "Instagram"))
	assert.Check(t, is.Equal(records[0].Number("Likes"), 256.0))
	d, ok := records[0].Date("Date")
	assert.Check(t, ok)
	assert.Check(t, d.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))

	// unparsable and empty measures are zero, the raw text is kept
	assert.Check(t, is.Equal(records[1].Number("Likes"), 0.0))
	assert.Check(t, is.Equal(records[1].Str("Likes"), "n/a"))
	assert.Check(t, is.Equal(records[2].Number("Likes"), 0.0))

	assert.Check(t, is.Equal(records[3].Number("Likes"), 88.0))
	_, ok = records[3].Date("Date")
	assert.Check(t, !ok)
}

func TestReadCSVShortRow(t *testing.T) {
	data := "Platform,Likes\nInstagram\nTwitter,5\n"
	records, err := ReadCSV(context.Background(), strings.NewReader(data), Options{NumericColumns: []string{"Likes"}})
	assert.NilError(t, err)
	assert.Assert(t, is.Len(records, 2))
	assert.Check(t, is.Equal(records[0].Str("Likes"), ""))
	assert.Check(t, is.Equal(records[0].Number("Likes"), 0.0))
	assert.Check(t, is.Equal(records[1].Number("Likes"), 5.0))
}

func TestReadCSVHeaderOnly(t *testing.T) {
	records, err := ReadCSV(context.Background(), strings.NewReader("Platform,Likes\n"), Options{NumericColumns: []string{"Likes"}})
	assert.NilError(t, err)
	assert.Check(t, is.Len(records, 0))
}

func TestReadCSVEmpty(t *testing.T) {
	_, err := ReadCSV(context.Background(), strings.NewReader(""), Options{})
	assert.Check(t, errors.Is(err, common.ErrorEmptyData))
}

func TestReadCSVMissingColumn(t *testing.T) {
	_, err := ReadCSV(context.Background(), strings.NewReader("Platform,Shares\nx,1\n"), Options{NumericColumns: []string{"Likes"}})
	assert.Check(t, errors.Is(err, common.ErrorMissingColumn))
	assert.Check(t, is.ErrorContains(err, `"Likes"`))
}

func TestReadCSVByteOrderMark(t *testing.T) {
	data := "\ufeffPlatform,Likes\nInstagram,3\n"
	records, err := ReadCSV(context.Background(), strings.NewReader(data), Options{
		NumericColumns: []string{"Likes"},
		Required:       []string{"Platform"},
	})
	assert.NilError(t, err)
	assert.Check(t, is.Equal(records[0].Str("Platform"), "Instagram"))
}

func TestReadCSVStrayQuote(t *testing.T) {
	data := "Platform,Likes\nA,1\nA \"x\",5\nA,3\n"
	records, err := ReadCSV(context.Background(), strings.NewReader(data), Options{NumericColumns: []string{"Likes"}})
	assert.NilError(t, err)
	assert.Assert(t, is.Len(records, 3))
	assert.Check(t, is.Equal(records[1].Str("Platform"), `A "x"`))

	// the quoted key is its own group, its like still counts
	groups := summary.ComputeGroupSummaries(records,
		func(r model.Record) string { return r.Str("Platform") },
		func(r model.Record) float64 { return r.Number("Likes") })
	assert.Check(t, is.DeepEqual(groups.Keys(), []string{"A", `A "x"`}))
	a, _ := groups.Get("A")
	assert.Check(t, is.DeepEqual(a, model.Summary{Min: 1, Q1: 1.5, Median: 2, Q3: 2.5, Max: 3}))
	quoted, _ := groups.Get(`A "x"`)
	assert.Check(t, is.DeepEqual(quoted, model.Summary{Min: 5, Q1: 5, Median: 5, Q3: 5, Max: 5}))

	merged := summary.ComputeGroupSummaries(records,
		func(model.Record) string { return "all" },
		func(r model.Record) float64 { return r.Number("Likes") })
	all, _ := merged.Get("all")
	assert.Check(t, is.DeepEqual(all, model.Summary{Min: 1, Q1: 2, Median: 3, Q3: 4, Max: 5}))
}

func TestReadCSVSemicolon(t *testing.T) {
	records, err := ReadCSV(context.Background(), strings.NewReader("Platform;Likes\nTwitter;7\n"), Options{
		NumericColumns: []string{"Likes"},
		Comma:          ';',
	})
	assert.NilError(t, err)
	assert.Check(t, is.Equal(records[0].Number("Likes"), 7.0))
}

func TestWriteAverages(t *testing.T) {
	var buf bytes.Buffer
	err := WriteAverages(&buf, [3]string{"Platform", "PostType", "AvgLikes"}, []model.GroupAverage{
		{Key: "Instagram", SubKey: "Video", Mean: 200.3333333},
		{Key: "Facebook", SubKey: "Link", Mean: 10},
	})
	assert.NilError(t, err)
	assert.Check(t, is.Equal(buf.String(), "Platform,PostType,AvgLikes\nInstagram,Video,200.33\nFacebook,Link,10\n"))
}

func TestWriteTimeline(t *testing.T) {
	var buf bytes.Buffer
	err := WriteTimeline(&buf, [2]string{"Date", "AvgLikes"}, model.TimeSeries{Values: []model.TimeValue{
		{Label: "3/1/2024 (Friday)", Value: 12.5},
		{Label: "3/2/2024 (Saturday)", Value: 7},
	}})
	assert.NilError(t, err)
	assert.Check(t, is.Equal(buf.String(), "Date,AvgLikes\n3/1/2024 (Friday),12.5\n3/2/2024 (Saturday),7\n"))
}
