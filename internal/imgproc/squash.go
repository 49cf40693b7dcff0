package imgproc

import (
	"fmt"

	"github.com/chjenniferhede/image-transformation-csf-proj2/internal/ir"
)

// Squash shrinks src by keeping only the pixels whose row is a multiple of
// yfac and whose column is a multiple of xfac. No averaging is done.
//
// For example, squashing
//
//	XAAAYBBB
//	AAAABBBB
//	ZCCCWDDD
//	CCCCDDDD
//
// with xfac=4, yfac=2 gives
//
//	XY
//	ZW
//
// dst must be sized with SquashSize.
func Squash(dst, src *ir.Image, xfac, yfac int) error {
	if xfac <= 0 || yfac <= 0 {
		return fmt.Errorf("%w: squash factors %d,%d must be positive", ErrInvalidFactor, xfac, yfac)
	}
	w, h := SquashSize(src.Width, src.Height, xfac, yfac)
	if err := check(dst, src, w, h, false); err != nil {
		return err
	}

	for row := 0; row < dst.Height; row++ {
		for col := 0; col < dst.Width; col++ {
			dst.Set(row, col, src.At(row*yfac, col*xfac))
		}
	}
	return nil
}
