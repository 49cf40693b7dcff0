package ir

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/chjenniferhede/image-transformation-csf-proj2/internal/color"
)

var (
	ErrInvalidDimensions = errors.New("ir: width and height must be positive")
	ErrBufferSize        = errors.New("ir: pixel buffer does not match dimensions")
)

// Image is the in-memory raster every transform reads and writes. Pixels are
// packed RGBA values stored row-major (len = Width * Height).
type Image struct {
	Width  int
	Height int
	Pixels []color.Pixel
}

// New allocates a zeroed Image of the given size.
func New(width, height int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return &Image{
		Width:  width,
		Height: height,
		Pixels: make([]color.Pixel, width*height),
	}, nil
}

// Wrap adopts pixels as the buffer of a width x height Image without copying.
func Wrap(width, height int, pixels []color.Pixel) (*Image, error) {
	img := &Image{Width: width, Height: height, Pixels: pixels}
	if err := img.Validate(); err != nil {
		return nil, err
	}
	return img, nil
}

// Validate reports whether the dimensions are positive and the buffer holds
// exactly Width*Height pixels.
func (img *Image) Validate() error {
	if img.Width <= 0 || img.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, img.Width, img.Height)
	}
	if len(img.Pixels) != img.Width*img.Height {
		return fmt.Errorf("%w: %dx%d needs %d pixels, got %d",
			ErrBufferSize, img.Width, img.Height, img.Width*img.Height, len(img.Pixels))
	}
	return nil
}

// Index returns the offset into Pixels of (row, col). It does no bounds
// checking.
func (img *Image) Index(row, col int) int {
	return row*img.Width + col
}

// At returns the pixel at (row, col).
func (img *Image) At(row, col int) color.Pixel {
	return img.Pixels[img.Index(row, col)]
}

// Set stores p at (row, col).
func (img *Image) Set(row, col int, p color.Pixel) {
	img.Pixels[img.Index(row, col)] = p
}

// Clone returns a deep copy.
func (img *Image) Clone() *Image {
	pix := make([]color.Pixel, len(img.Pixels))
	copy(pix, img.Pixels)
	return &Image{Width: img.Width, Height: img.Height, Pixels: pix}
}

// Equal reports whether a and b have the same size and identical pixels.
func Equal(a, b *Image) bool {
	if a.Width != b.Width || a.Height != b.Height || len(a.Pixels) != len(b.Pixels) {
		return false
	}
	for i := range a.Pixels {
		if a.Pixels[i] != b.Pixels[i] {
			return false
		}
	}
	return true
}

// SharesBuffer reports whether the pixel storage of a and b overlaps,
// including sub-slices of one backing array at different offsets.
func SharesBuffer(a, b *Image) bool {
	if len(a.Pixels) == 0 || len(b.Pixels) == 0 {
		return false
	}
	aStart, aEnd := span(a.Pixels)
	bStart, bEnd := span(b.Pixels)
	return aStart < bEnd && bStart < aEnd
}

// span returns the address range [start, end) covered by px.
func span(px []color.Pixel) (uintptr, uintptr) {
	start := uintptr(unsafe.Pointer(unsafe.SliceData(px)))
	return start, start + uintptr(len(px))*unsafe.Sizeof(px[0])
}
