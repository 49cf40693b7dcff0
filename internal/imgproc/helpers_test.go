package imgproc

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/chjenniferhede/image-transformation-csf-proj2/internal/color"
	"github.com/chjenniferhede/image-transformation-csf-proj2/internal/ir"
)

func image(t *testing.T, w, h int, px ...color.Pixel) *ir.Image {
	t.Helper()
	img, err := ir.Wrap(w, h, px)
	if err != nil {
		t.Fatalf("Wrap: %v", err)
	}
	return img
}

func blank(t *testing.T, w, h int) *ir.Image {
	t.Helper()
	img, err := ir.New(w, h)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return img
}

func noise(t *testing.T, seed int64, w, h int) *ir.Image {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	img := blank(t, w, h)
	for i := range img.Pixels {
		img.Pixels[i] = color.Pixel(rng.Uint32())
	}
	return img
}

func assertImage(t *testing.T, want, got *ir.Image) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("image mismatch (-want +got):\n%s", diff)
	}
}

// dot is a 3x3 black image with a white centre.
func dot(t *testing.T) *ir.Image {
	return image(t, 3, 3,
		0x000000FF, 0x000000FF, 0x000000FF,
		0x000000FF, 0xFFFFFFFF, 0x000000FF,
		0x000000FF, 0x000000FF, 0x000000FF,
	)
}
