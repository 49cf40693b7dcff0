package pipeline

import (
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/golang/glog"

	"github.com/chjenniferhede/image-transformation-csf-proj2/internal/imgproc"
	"github.com/chjenniferhede/image-transformation-csf-proj2/internal/ir"
)

// Step records the sizes seen by one op of a run.
type Step struct {
	Op        Op
	InWidth   int
	InHeight  int
	OutWidth  int
	OutHeight int
}

// Result holds the output of a pipeline run.
type Result struct {
	Image *ir.Image
	Steps []Step
}

// Run applies ops to src in order: each op gets a freshly allocated
// destination of exactly the size it needs, and its output feeds the next
// op. src itself is never written.
func Run(src *ir.Image, ops []Op) (*Result, error) {
	if len(ops) == 0 {
		return nil, errors.New("no transforms given")
	}
	if err := src.Validate(); err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}

	res := &Result{Image: src}
	for i, op := range ops {
		start := time.Now()
		cur := res.Image

		dst, err := Apply(op, cur)
		if err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i+1, op, err)
		}

		res.Steps = append(res.Steps, Step{
			Op:        op,
			InWidth:   cur.Width,
			InHeight:  cur.Height,
			OutWidth:  dst.Width,
			OutHeight: dst.Height,
		})
		res.Image = dst

		glog.V(1).Infof("step %d %s: %dx%d -> %dx%d", i+1, op, cur.Width, cur.Height, dst.Width, dst.Height)
		glog.V(2).Infof("[%.3fs] step %d done", time.Since(start).Seconds(), i+1)
	}
	return res, nil
}

// Apply runs a single op on src and returns the new image.
func Apply(op Op, src *ir.Image) (*ir.Image, error) {
	w, h, err := OutputSize(op, src.Width, src.Height)
	if err != nil {
		return nil, err
	}
	dst, err := ir.New(w, h)
	if err != nil {
		return nil, err
	}

	switch op.Kind {
	case KindSquash:
		err = imgproc.Squash(dst, src, op.XFac, op.YFac)
	case KindColorRot:
		err = imgproc.ColorRot(dst, src)
	case KindBlur:
		err = imgproc.Blur(dst, src, op.Dist)
	case KindExpand:
		err = imgproc.Expand(dst, src)
	}
	if err != nil {
		return nil, err
	}
	return dst, nil
}

// RunImage is Run for callers holding a standard library image. The result
// is returned as NRGBA.
func RunImage(src image.Image, ops []Op) (*image.NRGBA, error) {
	img, err := ir.FromImage(src)
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	res, err := Run(img, ops)
	if err != nil {
		return nil, err
	}
	return res.Image.ToNRGBA(), nil
}
