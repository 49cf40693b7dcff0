package imgproc

import (
	"fmt"

	"github.com/chjenniferhede/image-transformation-csf-proj2/internal/color"
	"github.com/chjenniferhede/image-transformation-csf-proj2/internal/ir"
)

// Blur replaces each pixel with the mean color of the square of side
// 2*dist+1 centred on it. The square is clamped to the image, so pixels
// outside the image never contribute. Alpha is copied from the source pixel.
// dst must be the same size as src.
func Blur(dst, src *ir.Image, dist int) error {
	if dist < 0 {
		return fmt.Errorf("%w: blur distance %d is negative", ErrInvalidFactor, dist)
	}
	if err := check(dst, src, src.Width, src.Height, false); err != nil {
		return err
	}

	for row := 0; row < src.Height; row++ {
		for col := 0; col < src.Width; col++ {
			dst.Set(row, col, BlurPixel(src, row, col, dist))
		}
	}
	return nil
}

// BlurPixel computes one output pixel of Blur. The R, G and B channels are
// floor-averaged over rows [row-dist, row+dist] and columns
// [col-dist, col+dist], each bound clamped into the image. The alpha of
// (row, col) is kept as is.
func BlurPixel(img *ir.Image, row, col, dist int) color.Pixel {
	// A window wider than the image covers all of it; capping keeps
	// row+dist and col+dist from overflowing.
	dist = min(dist, max(img.Width, img.Height))

	r0, r1 := clamp(row-dist, img.Height), clamp(row+dist, img.Height)
	c0, c1 := clamp(col-dist, img.Width), clamp(col+dist, img.Width)

	var rs, gs, bs, n uint64
	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			p := img.At(r, c)
			rs += uint64(p.R())
			gs += uint64(p.G())
			bs += uint64(p.B())
			n++
		}
	}

	return color.MakePixel(uint8(rs/n), uint8(gs/n), uint8(bs/n), img.At(row, col).A())
}

// clamp pulls v into [0, n-1].
func clamp(v, n int) int {
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}
