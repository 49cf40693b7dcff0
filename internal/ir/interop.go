package ir

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/chjenniferhede/image-transformation-csf-proj2/internal/color"
)

// ToNRGBA copies img into a standard library NRGBA image. Channels are copied
// as-is.
func (img *Image) ToNRGBA() *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, img.Width, img.Height))
	o := 0
	for _, p := range img.Pixels {
		out.Pix[o+0] = p.R()
		out.Pix[o+1] = p.G()
		out.Pix[o+2] = p.B()
		out.Pix[o+3] = p.A()
		o += 4
	}
	return out
}

// FromImage builds an Image from any image.Image. Sources that are not
// already NRGBA are first drawn into one.
func FromImage(src image.Image) (*Image, error) {
	b := src.Bounds()
	nrgba, ok := src.(*image.NRGBA)
	if !ok || nrgba.Rect.Min != (image.Point{}) {
		nrgba = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(nrgba, nrgba.Bounds(), src, b.Min, draw.Src)
	}

	img, err := New(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}
	for row := 0; row < img.Height; row++ {
		i := nrgba.PixOffset(0, row)
		for col := 0; col < img.Width; col++ {
			img.Set(row, col, color.MakePixel(nrgba.Pix[i], nrgba.Pix[i+1], nrgba.Pix[i+2], nrgba.Pix[i+3]))
			i += 4
		}
	}
	return img, nil
}
