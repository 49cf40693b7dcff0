package raw

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/klauspost/compress/zstd"

	"github.com/chjenniferhede/image-transformation-csf-proj2/internal/ir"
)

// Encode packs img into big-endian 32-bit words, row-major.
func Encode(img *ir.Image) []byte {
	out := make([]byte, len(img.Pixels)*bytesPerPixel)
	for i, p := range img.Pixels {
		binary.BigEndian.PutUint32(out[i*bytesPerPixel:], uint32(p))
	}
	return out
}

// Store writes img to path and its JSON sidecar next to it. Paths ending
// in ".zst" are zstd-compressed.
func Store(path string, img *ir.Image) error {
	if err := img.Validate(); err != nil {
		return err
	}

	data := Encode(img)
	comp := compressionFor(path)
	if comp == CompressionZstd {
		var err error
		data, err = compress(data)
		if err != nil {
			return fmt.Errorf("compressing: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing pixels: %w", err)
	}
	return writeInfo(path, Info{
		Width:       img.Width,
		Height:      img.Height,
		Format:      FormatRGBA8888,
		Compression: comp,
	})
}

func compress(data []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil,
		zstd.WithEncoderConcurrency(1),
		zstd.WithEncoderLevel(zstd.SpeedBetterCompression),
	)
	if err != nil {
		return nil, err
	}
	defer enc.Close()
	return enc.EncodeAll(data, nil), nil
}
