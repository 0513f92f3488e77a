package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/uyouii/engagement-charts/pipeline"
)

type prepareOptions struct {
	group       string
	subGroup    string
	date        string
	value       string
	valueHeader string
}

func newPrepareCommand(root *rootOptions) *cobra.Command {
	var opts prepareOptions

	cmd := &cobra.Command{
		Use:   "prepare",
		Short: "Derive the average likes and timeline CSVs from the per post CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrepare(cmd, root, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.group, "group", "Platform", "Outer group column")
	flags.StringVar(&opts.subGroup, "sub-group", "PostType", "Inner group column")
	flags.StringVar(&opts.date, "date", "Date", "Date column")
	flags.StringVar(&opts.value, "value", "Likes", "Numeric column to average")
	flags.StringVar(&opts.valueHeader, "value-header", "AvgLikes", "Header of the averaged column")
	return cmd
}

func runPrepare(cmd *cobra.Command, root *rootOptions, opts prepareOptions) error {
	cfg, err := root.config()
	if err != nil {
		return err
	}

	job := pipeline.DefaultPrepareJob(cfg.DataDir, cfg.OutputDir, root.files)
	job.GroupColumn = opts.group
	job.SubGroupColumn = opts.subGroup
	job.DateColumn = opts.date
	job.ValueColumn = opts.value
	job.ValueHeader = opts.valueHeader

	if err := pipeline.Prepare(cmd.Context(), job); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", job.AveragesOutput, job.TimelineOutput)
	return nil
}
