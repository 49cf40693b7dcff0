package raw

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/klauspost/compress/zstd"

	"github.com/chjenniferhede/image-transformation-csf-proj2/internal/color"
	"github.com/chjenniferhede/image-transformation-csf-proj2/internal/ir"
)

// Decode unpacks big-endian 32-bit pixel words into a width x height Image.
func Decode(data []byte, width, height int) (*ir.Image, error) {
	img, err := ir.New(width, height)
	if err != nil {
		return nil, err
	}
	if len(data) != width*height*bytesPerPixel {
		return nil, fmt.Errorf("%w: expected %d bytes for %dx%d, got %d",
			ErrShortData, width*height*bytesPerPixel, width, height, len(data))
	}
	for i := range img.Pixels {
		img.Pixels[i] = color.Pixel(binary.BigEndian.Uint32(data[i*bytesPerPixel:]))
	}
	return img, nil
}

// Load reads a raw pixel file and its sidecar from disk.
func Load(path string) (*ir.Image, error) {
	info, err := GetInfo(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading pixels: %w", err)
	}

	if info.Compression == CompressionZstd {
		data, err = decompress(data)
		if err != nil {
			return nil, fmt.Errorf("decompressing %s: %w", path, err)
		}
	}

	img, err := Decode(data, info.Width, info.Height)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, nil
}

func decompress(data []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	return dec.DecodeAll(data, nil)
}
