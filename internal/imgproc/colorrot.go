package imgproc

import (
	"github.com/chjenniferhede/image-transformation-csf-proj2/internal/color"
	"github.com/chjenniferhede/image-transformation-csf-proj2/internal/ir"
)

// ColorRot writes src to dst with each pixel's channels rotated
// (r,g,b,a) -> (b,r,g,a). dst must be the same size as src. Since every
// output pixel depends only on the input pixel at the same offset, dst may
// be src itself.
func ColorRot(dst, src *ir.Image) error {
	if err := check(dst, src, src.Width, src.Height, true); err != nil {
		return err
	}
	for i, p := range src.Pixels {
		dst.Pixels[i] = color.Rotate(p)
	}
	return nil
}
