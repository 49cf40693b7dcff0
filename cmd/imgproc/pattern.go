package main

import (
	"fmt"
	"image"
	stdcolor "image/color"

	"github.com/spf13/cobra"
	"golang.org/x/image/draw"

	"github.com/chjenniferhede/image-transformation-csf-proj2/internal/ir"
	"github.com/chjenniferhede/image-transformation-csf-proj2/internal/raw"
)

var palette = []stdcolor.NRGBA{
	{R: 0xFF, A: 0xFF},
	{G: 0xFF, A: 0xFF},
	{B: 0xFF, A: 0xFF},
	{R: 0xFF, G: 0xFF, B: 0xFF, A: 0x80},
	{A: 0xFF},
}

func newPatternCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pattern",
		Short: "Write a block test pattern as a raw pixel file",
		RunE:  runPattern,
	}
	cmd.Flags().StringP("output", "o", "", "Output raw pixel file (.zst suffix compresses)")
	cmd.Flags().Int("width", 0, "Image width")
	cmd.Flags().Int("height", 0, "Image height")
	cmd.Flags().Int("cells", 2, "Number of color cells per side")
	cmd.MarkFlagRequired("output")
	cmd.MarkFlagRequired("width")
	cmd.MarkFlagRequired("height")
	return cmd
}

func runPattern(cmd *cobra.Command, args []string) error {
	outputPath, _ := cmd.Flags().GetString("output")
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")
	cells, _ := cmd.Flags().GetInt("cells")

	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ir.ErrInvalidDimensions, width, height)
	}
	if cells <= 0 {
		return fmt.Errorf("cells must be positive, got %d", cells)
	}

	img, err := ir.FromImage(blockPattern(width, height, cells))
	if err != nil {
		return err
	}
	if err := raw.Store(outputPath, img); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Pattern %dx%d (%d cells per side) → %s\n", width, height, cells, outputPath)
	return nil
}

// blockPattern scales a cells x cells tile, one palette color per cell,
// up to width x height.
func blockPattern(width, height, cells int) image.Image {
	tile := image.NewNRGBA(image.Rect(0, 0, cells, cells))
	for y := 0; y < cells; y++ {
		for x := 0; x < cells; x++ {
			tile.SetNRGBA(x, y, palette[(x+y*cells)%len(palette)])
		}
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), tile, tile.Bounds(), draw.Src, nil)
	return dst
}
