// Package imgproc implements the integer pixel transforms: squash
// (point-sampled shrink), color rotation, box blur and 2x expand.
//
// Every transform reads a source image and fills a destination the caller
// has already sized with SquashSize, ExpandSize or the source's own size.
// Preconditions are checked up front. Once they pass, a transform cannot
// fail and writes every destination pixel exactly once.
package imgproc

import (
	"errors"
	"fmt"

	"github.com/chjenniferhede/image-transformation-csf-proj2/internal/ir"
)

var (
	ErrInvalidFactor   = errors.New("imgproc: invalid factor")
	ErrDestinationSize = errors.New("imgproc: destination has wrong size")
	ErrAliasedBuffers  = errors.New("imgproc: source and destination share a buffer")
)

// SquashSize returns the destination size for Squash:
// ceil(w/xfac) x ceil(h/yfac). w and h must be positive.
func SquashSize(w, h, xfac, yfac int) (int, int) {
	return (w-1)/xfac + 1, (h-1)/yfac + 1
}

// ExpandSize returns the destination size for Expand.
func ExpandSize(w, h int) (int, int) {
	return 2 * w, 2 * h
}

// check validates both images and that dst is exactly wantW x wantH.
func check(dst, src *ir.Image, wantW, wantH int, allowAlias bool) error {
	if err := src.Validate(); err != nil {
		return fmt.Errorf("source: %w", err)
	}
	if err := dst.Validate(); err != nil {
		return fmt.Errorf("destination: %w", err)
	}
	if dst.Width != wantW || dst.Height != wantH {
		return fmt.Errorf("%w: got %dx%d, want %dx%d", ErrDestinationSize, dst.Width, dst.Height, wantW, wantH)
	}
	if !allowAlias && ir.SharesBuffer(dst, src) {
		return ErrAliasedBuffers
	}
	return nil
}
