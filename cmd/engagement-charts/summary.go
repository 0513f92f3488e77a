package main

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/uyouii/engagement-charts/dataset"
	"github.com/uyouii/engagement-charts/model"
	"github.com/uyouii/engagement-charts/pipeline"
	"github.com/uyouii/engagement-charts/utils"
)

type summaryOptions struct {
	group     string
	value     string
	precision int32
	pretty    bool
}

func newSummaryCommand(root *rootOptions) *cobra.Command {
	var opts summaryOptions

	cmd := &cobra.Command{
		Use:   "summary [FILE]",
		Short: "Print the five-number summary of each group as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummary(cmd, root, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.group, "group", "Platform", "Column to group by")
	flags.StringVar(&opts.value, "value", "Likes", "Numeric column to summarize")
	flags.Int32Var(&opts.precision, "precision", 3, "Decimal places in the output")
	flags.BoolVar(&opts.pretty, "pretty", false, "Indent the JSON output")
	return cmd
}

func runSummary(cmd *cobra.Command, root *rootOptions, opts summaryOptions, args []string) error {
	cfg, err := root.config()
	if err != nil {
		return err
	}

	location := pipeline.Location(cfg.DataDir, root.files.Posts)
	if len(args) > 0 {
		location = args[0]
	}

	job := pipeline.Job{
		Name:        "summary",
		Source:      dataset.NewSource(location),
		GroupColumn: opts.group,
		ValueColumn: opts.value,
	}
	groups, err := pipeline.NewRunner(cfg.Layout(), cfg.Palette).Summaries(cmd.Context(), job)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	if opts.pretty {
		enc.SetIndent("", "  ")
	}
	return errors.Wrap(enc.Encode(rounded(groups, opts.precision)), "encode summaries")
}

func rounded(groups *model.GroupedSummaries, precision int32) *model.GroupedSummaries {
	res := model.NewGroupedSummaries()
	groups.Each(func(key string, s model.Summary) {
		res.Set(key, model.Summary{
			Min:    utils.FormatFloat(s.Min, precision),
			Q1:     utils.FormatFloat(s.Q1, precision),
			Median: utils.FormatFloat(s.Median, precision),
			Q3:     utils.FormatFloat(s.Q3, precision),
			Max:    utils.FormatFloat(s.Max, precision),
		})
	})
	return res
}
