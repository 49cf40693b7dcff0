package imgproc

import (
	"fmt"

	"github.com/chjenniferhede/image-transformation-csf-proj2/internal/color"
	"github.com/chjenniferhede/image-transformation-csf-proj2/internal/ir"
)

// Expand doubles the width and height of src. Output pixel (i, j) maps to
// source pixel (i/2, j/2):
//
//   - i and j even: copied exactly.
//   - j odd: averaged with the pixel to the right.
//   - i odd: averaged with the pixel below.
//   - both odd: averaged with the right, lower and lower-right pixels.
//
// Neighbours that fall outside src are left out of the average; they are
// not clamped to the edge. All four channels, alpha included, are averaged.
// dst must be sized with ExpandSize.
func Expand(dst, src *ir.Image) error {
	w, h := ExpandSize(src.Width, src.Height)
	if err := check(dst, src, w, h, false); err != nil {
		return err
	}

	var buf [4]color.Pixel
	for i := 0; i < dst.Height; i++ {
		for j := 0; j < dst.Width; j++ {
			r, c := i/2, j/2
			px := append(buf[:0], src.At(r, c))

			right := j%2 == 1 && c+1 < src.Width
			down := i%2 == 1 && r+1 < src.Height
			if right {
				px = append(px, src.At(r, c+1))
			}
			if down {
				px = append(px, src.At(r+1, c))
			}
			if right && down {
				px = append(px, src.At(r+1, c+1))
			}

			p, err := color.Average(px...)
			if err != nil {
				return fmt.Errorf("expand (%d,%d): %w", i, j, err)
			}
			dst.Set(i, j, p)
		}
	}
	return nil
}
