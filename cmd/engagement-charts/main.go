package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/uyouii/engagement-charts/config"
	"github.com/uyouii/engagement-charts/pipeline"
	"github.com/uyouii/engagement-charts/utils"
	"go.uber.org/zap"
)

type rootOptions struct {
	envFiles  []string
	dataDir   string
	outputDir string
	format    string
	logLevel  string
	width     float64
	height    float64
	files     pipeline.Files
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{files: pipeline.DefaultFiles}

	cmd := &cobra.Command{
		Use:           "engagement-charts [OPTIONS] COMMAND",
		Short:         "Render engagement charts from social media CSV exports",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringSliceVar(&opts.envFiles, "env-file", []string{".env"}, "Env files to read configuration from")
	flags.StringVar(&opts.dataDir, "data-dir", "", "Directory or base URL of the CSV files (default "+config.EnvDataDir+" or data)")
	flags.StringVar(&opts.outputDir, "output-dir", "", "Directory for rendered charts")
	flags.StringVar(&opts.format, "format", "", "Chart format: svg, png or pdf")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	flags.Float64Var(&opts.width, "width", 0, "Chart width in points")
	flags.Float64Var(&opts.height, "height", 0, "Chart height in points")
	installFileFlags(flags, &opts.files)

	cmd.AddCommand(
		newRenderCommand(opts),
		newSummaryCommand(opts),
		newPrepareCommand(opts),
	)
	return cmd
}

func installFileFlags(flags *pflag.FlagSet, files *pipeline.Files) {
	flags.StringVar(&files.Posts, "posts", files.Posts, "Per post CSV (Platform, PostType, Date, Likes)")
	flags.StringVar(&files.Averages, "averages", files.Averages, "Average likes CSV (Platform, PostType, AvgLikes)")
	flags.StringVar(&files.Timeline, "timeline", files.Timeline, "Average likes per day CSV (Date, AvgLikes)")
}

// config merges env files, environment and flags, flags win.
func (o *rootOptions) config() (*config.Config, error) {
	cfg, err := config.Load(o.envFiles...)
	if err != nil {
		return nil, err
	}
	if o.dataDir != "" {
		cfg.DataDir = o.dataDir
	}
	if o.outputDir != "" {
		cfg.OutputDir = o.outputDir
	}
	if o.format != "" {
		cfg.Format = o.format
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	if o.width > 0 {
		cfg.Width = o.width
	}
	if o.height > 0 {
		cfg.Height = o.height
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := utils.SetLevel(cfg.LogLevel); err != nil {
		return nil, err
	}
	return cfg, nil
}

func main() {
	ctx := context.Background()
	defer utils.GetLogger(ctx).Sync()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		utils.GetLogger(ctx).Debug("command failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
