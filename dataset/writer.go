package dataset

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"github.com/uyouii/engagement-charts/model"
	"github.com/uyouii/engagement-charts/utils"
)

const writePrecision = 2

// WriteAverages writes one row per average: key, sub key, mean.
func WriteAverages(w io.Writer, header [3]string, averages []model.GroupAverage) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header[:]); err != nil {
		return errors.Wrap(err, "write averages header")
	}
	for _, avg := range averages {
		if err := cw.Write([]string{avg.Key, avg.SubKey, formatNumber(avg.Mean)}); err != nil {
			return errors.Wrap(err, "write averages row")
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "flush averages")
}

// WriteTimeline writes one row per point: date label, value.
func WriteTimeline(w io.Writer, header [2]string, series model.TimeSeries) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header[:]); err != nil {
		return errors.Wrap(err, "write timeline header")
	}
	for _, v := range series.Values {
		if err := cw.Write([]string{v.Label, formatNumber(v.Value)}); err != nil {
			return errors.Wrap(err, "write timeline row")
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "flush timeline")
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(utils.FormatFloat(v, writePrecision), 'f', -1, 64)
}
