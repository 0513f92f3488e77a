package dataset

import (
	"context"
	"encoding/csv"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/uyouii/engagement-charts/common"
	"github.com/uyouii/engagement-charts/model"
	"github.com/uyouii/engagement-charts/utils"
	"go.uber.org/zap"
)

const ctxCheckInterval = 1024

// Options tells ReadCSV which columns to coerce. Every numeric and date
// column is required to exist in the header.
type Options struct {
	NumericColumns []string
	DateColumns    []string
	// DateLayouts overrides DefaultDateLayouts.
	DateLayouts []string
	// Required lists extra columns that must be present, e.g. group keys.
	Required []string
	// Comma is the field delimiter, ',' when zero.
	Comma rune
}

func (o Options) required() []string {
	res := append([]string{}, o.Required...)
	res = append(res, o.NumericColumns...)
	return append(res, o.DateColumns...)
}

// ReadCSV reads a header row followed by data rows. Numeric columns go
// through ParseNumber, date columns through ParseDate. Quotes are read
// leniently, so a stray quote inside a field stays part of its text. Rows
// the csv reader still rejects are skipped and counted.
func ReadCSV(ctx context.Context, r io.Reader, opts Options) ([]model.Record, error) {
	logger := utils.GetLogger(ctx)

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true
	if opts.Comma != 0 {
		reader.Comma = opts.Comma
	}

	headers, err := reader.Read()
	if err == io.EOF {
		return nil, errors.Wrap(common.ErrorEmptyData, "csv has no header row")
	}
	if err != nil {
		return nil, errors.Wrap(err, "read csv header")
	}
	for i, h := range headers {
		headers[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}

	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[h] = i
	}
	for _, name := range opts.required() {
		if _, ok := index[name]; !ok {
			return nil, errors.Wrapf(common.ErrorMissingColumn, "column %q not in header %v", name, headers)
		}
	}

	records := []model.Record{}
	skipped := 0
	for line := 1; ; line++ {
		if line%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			skipped++
			logger.Debug("skip malformed csv row", zap.Int("line", line), zap.Error(err))
			continue
		}

		rec := model.NewRecord()
		for i, h := range headers {
			if i < len(row) {
				rec.Fields[h] = row[i]
			} else {
				rec.Fields[h] = ""
			}
		}
		coerced := false
		for _, name := range opts.NumericColumns {
			f, ok := parseNumber(rec.Fields[name])
			rec.Numbers[name] = f
			coerced = coerced || !ok
		}
		for _, name := range opts.DateColumns {
			if t, ok := ParseDate(rec.Fields[name], opts.DateLayouts...); ok {
				rec.Dates[name] = t
			}
		}
		if coerced {
			logger.Debug("coerce invalid number to zero", zap.Int("line", line), zap.String("record", rec.DebugString()))
		}
		records = append(records, rec)
	}

	if skipped > 0 {
		logger.Warn("skipped malformed csv rows", zap.Int("skipped", skipped))
	}
	logger.Debug("read csv success", zap.Int("records", len(records)), zap.Strings("columns", headers))
	return records, nil
}
