package color

import "errors"

// ErrEmptyAverageSet is returned when Average is called with no pixels.
var ErrEmptyAverageSet = errors.New("color: average of empty pixel set")

// Average returns the per-channel mean of px, alpha included. Each channel
// is divided with integer (floor) division; nothing is rounded.
func Average(px ...Pixel) (Pixel, error) {
	if len(px) == 0 {
		return 0, ErrEmptyAverageSet
	}

	var r, g, b, a uint64
	for _, p := range px {
		r += uint64(p.R())
		g += uint64(p.G())
		b += uint64(p.B())
		a += uint64(p.A())
	}

	n := uint64(len(px))
	return MakePixel(uint8(r/n), uint8(g/n), uint8(b/n), uint8(a/n)), nil
}
