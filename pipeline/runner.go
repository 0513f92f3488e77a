package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/uyouii/engagement-charts/chart"
	"github.com/uyouii/engagement-charts/dataset"
	"github.com/uyouii/engagement-charts/model"
	"github.com/uyouii/engagement-charts/summary"
	"github.com/uyouii/engagement-charts/utils"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gonum.org/v1/plot"
)

type Result struct {
	Job    string
	Output string
	Err    error
}

// Runner renders jobs one by one. Every job does its own load, compute and
// render, so a failing job never stops or changes the others.
type Runner struct {
	Layout  chart.Layout
	Palette []string
}

func NewRunner(layout chart.Layout, palette []string) *Runner {
	return &Runner{Layout: layout, Palette: palette}
}

// Run renders every job and returns one Result per job. The error combines
// the errors of all failed jobs.
func (r *Runner) Run(ctx context.Context, jobs ...Job) ([]Result, error) {
	logger := utils.GetLogger(ctx)

	var errs error
	results := make([]Result, 0, len(jobs))
	for _, job := range jobs {
		jobCtx := utils.WithLogger(ctx, logger.With(zap.String("chart", job.Name)))
		err := r.runJob(jobCtx, job)
		if err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, "chart %s", job.Name))
		}
		results = append(results, Result{Job: job.Name, Output: job.Output, Err: err})
	}

	logger.Info("render charts finished", zap.Int("jobs", len(jobs)),
		zap.Int("failed", len(multierr.Errors(errs))))
	return results, errs
}

func (r *Runner) runJob(ctx context.Context, job Job) (err error) {
	logger := utils.GetLogger(ctx)

	defer func() {
		if rec := recover(); rec != nil {
			logger.Error("render chart recover panic error!", zap.Any("err", rec),
				zap.String("panic info", utils.GetPanicInfo()))
			err = errors.Errorf("panic: %v", rec)
		}
	}()

	p, err := r.Plot(ctx, job)
	if err != nil {
		logger.Error("build chart failed", zap.Error(err))
		return err
	}

	if dir := filepath.Dir(job.Output); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logger.Error("create output dir failed", zap.Error(err))
			return errors.Wrap(err, "create output dir")
		}
	}
	if err := chart.Save(p, job.Output, r.Layout); err != nil {
		logger.Error("save chart failed", zap.Error(err))
		return err
	}

	logger.Info("render chart success", zap.String("output", job.Output))
	return nil
}

// Plot loads the job's table and builds its chart without saving it.
func (r *Runner) Plot(ctx context.Context, job Job) (*plot.Plot, error) {
	if err := job.Validate(); err != nil {
		return nil, err
	}
	records, err := dataset.Load(ctx, job.Source, job.options())
	if err != nil {
		return nil, err
	}

	switch job.Kind {
	case KindBox:
		return chart.BoxPlot(job.Title, job.XLabel, job.YLabel, groupSummaries(ctx, job, records))
	case KindBar:
		return chart.GroupedBarChart(job.Title, job.XLabel, job.YLabel, averages(job, records), r.Palette, r.Layout)
	default:
		series := timeline(job, records)
		utils.GetLogger(ctx).Debug("timeline", zap.String("series", series.DebugString()))
		return chart.LineChart(job.Title, job.XLabel, job.YLabel, series)
	}
}

// Summaries loads the job's table and returns the per group five-number
// summaries of its value column.
func (r *Runner) Summaries(ctx context.Context, job Job) (*model.GroupedSummaries, error) {
	job.Kind = KindBox
	if err := job.Validate(); err != nil {
		return nil, err
	}
	records, err := dataset.Load(ctx, job.Source, job.options())
	if err != nil {
		return nil, err
	}
	return groupSummaries(ctx, job, records), nil
}

func groupSummaries(ctx context.Context, job Job, records []model.Record) *model.GroupedSummaries {
	res := summary.ComputeGroupSummaries(records, column(job.GroupColumn), measure(job.ValueColumn))
	res.Each(func(key string, s model.Summary) {
		utils.GetLogger(ctx).Debug("group summary", zap.String("group", key), zap.Stringer("summary", s))
	})
	return res
}

func averages(job Job, records []model.Record) []model.GroupAverage {
	return summary.AverageBy(records, column(job.GroupColumn), column(job.SubGroupColumn), measure(job.ValueColumn))
}

// timeline keeps the dates in file order, one band per date as the rows
// list them.
func timeline(job Job, records []model.Record) model.TimeSeries {
	return summary.TimelineBy(job.ValueColumn, records, column(job.DateColumn), nil, measure(job.ValueColumn))
}

// chronologicalTimeline orders the dates by time when every date parses.
func chronologicalTimeline(job Job, records []model.Record) model.TimeSeries {
	return summary.TimelineBy(job.ValueColumn, records, column(job.DateColumn),
		func(rec model.Record) (time.Time, bool) { return rec.Date(job.DateColumn) },
		measure(job.ValueColumn))
}

func column(name string) func(model.Record) string {
	return func(rec model.Record) string { return rec.Str(name) }
}

func measure(name string) func(model.Record) float64 {
	return func(rec model.Record) float64 { return rec.Number(name) }
}
