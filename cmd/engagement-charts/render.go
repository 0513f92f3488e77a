package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/uyouii/engagement-charts/pipeline"
)

const kindAll = "all"

func newRenderCommand(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "render [box|bar|line|all]...",
		Short:     "Render charts, all of them by default",
		ValidArgs: []string{string(pipeline.KindBox), string(pipeline.KindBar), string(pipeline.KindLine), kindAll},
		Args:      cobra.OnlyValidArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, root, args)
		},
	}
	return cmd
}

func runRender(cmd *cobra.Command, root *rootOptions, kinds []string) error {
	cfg, err := root.config()
	if err != nil {
		return err
	}

	jobs, err := selectJobs(pipeline.DefaultJobs(cfg.DataDir, cfg.OutputDir, cfg.Format, root.files), kinds)
	if err != nil {
		return err
	}

	results, err := pipeline.NewRunner(cfg.Layout(), cfg.Palette).Run(cmd.Context(), jobs...)
	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: failed: %v\n", res.Job, res.Err)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", res.Job, res.Output)
	}
	return err
}

func selectJobs(jobs []pipeline.Job, kinds []string) ([]pipeline.Job, error) {
	if len(kinds) == 0 {
		return jobs, nil
	}

	wanted := map[pipeline.Kind]bool{}
	for _, k := range kinds {
		if k == kindAll {
			return jobs, nil
		}
		kind, err := pipeline.ParseKind(k)
		if err != nil {
			return nil, err
		}
		wanted[kind] = true
	}

	res := []pipeline.Job{}
	for _, job := range jobs {
		if wanted[job.Kind] {
			res = append(res, job)
		}
	}
	return res, nil
}
