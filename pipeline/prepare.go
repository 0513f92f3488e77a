package pipeline

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/uyouii/engagement-charts/common"
	"github.com/uyouii/engagement-charts/dataset"
	"github.com/uyouii/engagement-charts/utils"
	"go.uber.org/zap"
)

// PrepareJob derives the averaged tables the bar and line charts read from
// the raw per-post table.
type PrepareJob struct {
	Source dataset.Source

	GroupColumn    string
	SubGroupColumn string
	DateColumn     string
	ValueColumn    string
	// ValueHeader names the averaged column in both outputs.
	ValueHeader string

	// Empty outputs are skipped.
	AveragesOutput string
	TimelineOutput string
}

// DefaultPrepareJob writes SocialMediaAvg.csv and SocialMediaTime.csv next
// to socialMedia.csv. A remote dataDir cannot be written to, the tables then
// go to outputDir.
func DefaultPrepareJob(dataDir, outputDir string, files Files) PrepareJob {
	writeDir := dataDir
	if isRemote(dataDir) {
		writeDir = outputDir
	}
	return PrepareJob{
		Source:         dataset.NewSource(Location(dataDir, files.Posts)),
		GroupColumn:    "Platform",
		SubGroupColumn: "PostType",
		DateColumn:     "Date",
		ValueColumn:    "Likes",
		ValueHeader:    "AvgLikes",
		AveragesOutput: filepath.Join(writeDir, files.Averages),
		TimelineOutput: filepath.Join(writeDir, files.Timeline),
	}
}

func (j PrepareJob) options() dataset.Options {
	opts := dataset.Options{NumericColumns: []string{j.ValueColumn}}
	if j.AveragesOutput != "" {
		opts.Required = append(opts.Required, j.GroupColumn, j.SubGroupColumn)
	}
	if j.TimelineOutput != "" {
		opts.DateColumns = []string{j.DateColumn}
	}
	return opts
}

func Prepare(ctx context.Context, job PrepareJob) error {
	logger := utils.GetLogger(ctx)

	if job.Source == nil || job.ValueColumn == "" {
		return errors.Wrap(common.ErrorInvalidValue, "prepare needs a source and a value column")
	}
	for _, output := range []string{job.AveragesOutput, job.TimelineOutput} {
		if isRemote(output) {
			return errors.Wrapf(common.ErrorInvalidValue, "cannot write prepared table to %s", output)
		}
	}
	if job.ValueHeader == "" {
		job.ValueHeader = job.ValueColumn
	}

	records, err := dataset.Load(ctx, job.Source, job.options())
	if err != nil {
		return err
	}

	if job.AveragesOutput != "" {
		avgJob := Job{GroupColumn: job.GroupColumn, SubGroupColumn: job.SubGroupColumn, ValueColumn: job.ValueColumn}
		header := [3]string{job.GroupColumn, job.SubGroupColumn, job.ValueHeader}
		err := writeFile(job.AveragesOutput, func(f *os.File) error {
			return dataset.WriteAverages(f, header, averages(avgJob, records))
		})
		if err != nil {
			logger.Error("write averages failed", zap.String("output", job.AveragesOutput), zap.Error(err))
			return err
		}
		logger.Info("write averages success", zap.String("output", job.AveragesOutput))
	}

	if job.TimelineOutput != "" {
		lineJob := Job{DateColumn: job.DateColumn, ValueColumn: job.ValueColumn}
		header := [2]string{job.DateColumn, job.ValueHeader}
		err := writeFile(job.TimelineOutput, func(f *os.File) error {
			return dataset.WriteTimeline(f, header, chronologicalTimeline(lineJob, records))
		})
		if err != nil {
			logger.Error("write timeline failed", zap.String("output", job.TimelineOutput), zap.Error(err))
			return err
		}
		logger.Info("write timeline success", zap.String("output", job.TimelineOutput))
	}
	return nil
}

func writeFile(path string, write func(f *os.File) error) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "create output dir")
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrapf(cerr, "close %s", path)
		}
	}()
	return write(f)
}
