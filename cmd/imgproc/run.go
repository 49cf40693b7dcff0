package main

import (
	"fmt"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/chjenniferhede/image-transformation-csf-proj2/internal/pipeline"
	"github.com/chjenniferhede/image-transformation-csf-proj2/internal/raw"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Apply a chain of transforms (--op may be repeated)",
		Example: `  imgproc run -i in.raw -o out.raw --op squash:2,2 --op blur:1
  imgproc run -i in.raw -o out.raw.zst --op expand --op color-rot`,
		RunE: runRun,
	}
	addIOFlags(cmd)
	cmd.Flags().StringArray("op", nil, "Transform to apply: squash:XFAC,YFAC, color-rot, blur:DIST or expand")
	cmd.MarkFlagRequired("op")
	return cmd
}

func runRun(cmd *cobra.Command, args []string) error {
	specs, _ := cmd.Flags().GetStringArray("op")

	ops := make([]pipeline.Op, 0, len(specs))
	for _, s := range specs {
		op, err := pipeline.ParseOp(s)
		if err != nil {
			return err
		}
		ops = append(ops, op)
	}
	return execute(cmd, ops)
}

func addIOFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("input", "i", "", "Input raw pixel file (with JSON sidecar)")
	cmd.Flags().StringP("output", "o", "", "Output raw pixel file (.zst suffix compresses)")
	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("output")
}

// execute loads the input, runs ops and stores the result.
func execute(cmd *cobra.Command, ops []pipeline.Op) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")

	src, err := raw.Load(inputPath)
	if err != nil {
		return fmt.Errorf("loading input: %w", err)
	}
	glog.V(1).Infof("loaded %s: %dx%d", inputPath, src.Width, src.Height)

	result, err := pipeline.Run(src, ops)
	if err != nil {
		return fmt.Errorf("transform: %w", err)
	}

	if err := raw.Store(outputPath, result.Image); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	for _, s := range result.Steps {
		fmt.Fprintf(cmd.OutOrStdout(), "%-14s %dx%d → %dx%d\n", s.Op, s.InWidth, s.InHeight, s.OutWidth, s.OutHeight)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Output: %s (sidecar %s)\n", outputPath, raw.SidecarPath(outputPath))
	return nil
}
