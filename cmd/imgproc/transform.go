package main

import (
	"github.com/spf13/cobra"

	"github.com/chjenniferhede/image-transformation-csf-proj2/internal/pipeline"
)

func newSquashCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "squash",
		Short: "Shrink by keeping every xfac-th column and yfac-th row",
		RunE: func(cmd *cobra.Command, args []string) error {
			xfac, _ := cmd.Flags().GetInt("xfac")
			yfac, _ := cmd.Flags().GetInt("yfac")
			return execute(cmd, []pipeline.Op{{Kind: pipeline.KindSquash, XFac: xfac, YFac: yfac}})
		},
	}
	addIOFlags(cmd)
	cmd.Flags().Int("xfac", 1, "Horizontal squash factor (positive)")
	cmd.Flags().Int("yfac", 1, "Vertical squash factor (positive)")
	return cmd
}

func newColorRotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "color-rot",
		Short: "Rotate color channels (red → green → blue → red)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(cmd, []pipeline.Op{{Kind: pipeline.KindColorRot}})
		},
	}
	addIOFlags(cmd)
	return cmd
}

func newBlurCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blur",
		Short: "Box blur with the given half-width",
		RunE: func(cmd *cobra.Command, args []string) error {
			dist, _ := cmd.Flags().GetInt("dist")
			return execute(cmd, []pipeline.Op{{Kind: pipeline.KindBlur, Dist: dist}})
		},
	}
	addIOFlags(cmd)
	cmd.Flags().Int("dist", 0, "Blur distance (non-negative)")
	return cmd
}

func newExpandCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expand",
		Short: "Double width and height, averaging the new pixels",
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(cmd, []pipeline.Op{{Kind: pipeline.KindExpand}})
		},
	}
	addIOFlags(cmd)
	return cmd
}
