package color

import "fmt"

// Pixel is a packed RGBA value: red in bits 31-24, green in 23-16,
// blue in 15-8 and alpha in 7-0.
type Pixel uint32

// MakePixel packs four 8-bit channels into a Pixel.
func MakePixel(r, g, b, a uint8) Pixel {
	return Pixel(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a))
}

// R returns the red channel.
func (p Pixel) R() uint8 { return uint8(p >> 24) }

// G returns the green channel.
func (p Pixel) G() uint8 { return uint8(p >> 16) }

// B returns the blue channel.
func (p Pixel) B() uint8 { return uint8(p >> 8) }

// A returns the alpha channel.
func (p Pixel) A() uint8 { return uint8(p) }

// RGBA returns all four channels at once.
func (p Pixel) RGBA() (r, g, b, a uint8) {
	return p.R(), p.G(), p.B(), p.A()
}

func (p Pixel) String() string {
	return fmt.Sprintf("0x%08X", uint32(p))
}

// Rotate moves red into green, green into blue and blue into red.
// Alpha is untouched. Three rotations give back the original pixel.
func Rotate(p Pixel) Pixel {
	return MakePixel(p.B(), p.R(), p.G(), p.A())
}
