package pipeline

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chjenniferhede/image-transformation-csf-proj2/internal/imgproc"
)

// Kind names a transform.
type Kind string

const (
	KindSquash   Kind = "squash"
	KindColorRot Kind = "color-rot"
	KindBlur     Kind = "blur"
	KindExpand   Kind = "expand"
)

// Op is one step of a pipeline. XFac/YFac are used by squash, Dist by blur.
type Op struct {
	Kind Kind
	XFac int
	YFac int
	Dist int
}

func (op Op) String() string {
	switch op.Kind {
	case KindSquash:
		return fmt.Sprintf("squash:%d,%d", op.XFac, op.YFac)
	case KindBlur:
		return fmt.Sprintf("blur:%d", op.Dist)
	default:
		return string(op.Kind)
	}
}

// ParseOp parses an op in the form used on the command line:
// "squash:XFAC,YFAC", "color-rot", "blur:DIST" or "expand".
func ParseOp(s string) (Op, error) {
	name, args, hasArgs := strings.Cut(strings.TrimSpace(s), ":")
	switch Kind(name) {
	case KindSquash:
		x, y, ok := strings.Cut(args, ",")
		if !hasArgs || !ok {
			return Op{}, fmt.Errorf("squash needs XFAC,YFAC: %q", s)
		}
		xfac, err := parsePositive(x)
		if err != nil {
			return Op{}, fmt.Errorf("squash xfac: %w", err)
		}
		yfac, err := parsePositive(y)
		if err != nil {
			return Op{}, fmt.Errorf("squash yfac: %w", err)
		}
		return Op{Kind: KindSquash, XFac: xfac, YFac: yfac}, nil
	case KindBlur:
		if !hasArgs {
			return Op{}, fmt.Errorf("blur needs DIST: %q", s)
		}
		dist, err := strconv.Atoi(args)
		if err != nil {
			return Op{}, fmt.Errorf("blur distance: %w", err)
		}
		if dist < 0 {
			return Op{}, fmt.Errorf("%w: blur distance %d is negative", imgproc.ErrInvalidFactor, dist)
		}
		return Op{Kind: KindBlur, Dist: dist}, nil
	case KindColorRot, KindExpand:
		if hasArgs {
			return Op{}, fmt.Errorf("%s takes no arguments: %q", name, s)
		}
		return Op{Kind: Kind(name)}, nil
	default:
		return Op{}, fmt.Errorf("unknown transform: %q", name)
	}
}

func parsePositive(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: %d must be positive", imgproc.ErrInvalidFactor, n)
	}
	return n, nil
}

// OutputSize returns the size of the image op produces from a w x h input.
func OutputSize(op Op, w, h int) (int, int, error) {
	switch op.Kind {
	case KindSquash:
		if op.XFac <= 0 || op.YFac <= 0 {
			return 0, 0, fmt.Errorf("%w: squash factors %d,%d", imgproc.ErrInvalidFactor, op.XFac, op.YFac)
		}
		sw, sh := imgproc.SquashSize(w, h, op.XFac, op.YFac)
		return sw, sh, nil
	case KindExpand:
		ew, eh := imgproc.ExpandSize(w, h)
		return ew, eh, nil
	case KindColorRot, KindBlur:
		return w, h, nil
	default:
		return 0, 0, fmt.Errorf("unknown transform: %q", op.Kind)
	}
}
