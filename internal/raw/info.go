package raw

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

const (
	FormatRGBA8888 = "RGBA8888"

	CompressionNone = "none"
	CompressionZstd = "zstd"

	bytesPerPixel = 4
	zstdExt       = ".zst"
)

var (
	ErrShortData     = errors.New("raw: pixel data does not match dimensions")
	ErrUnknownFormat = errors.New("raw: unknown pixel format")
)

// Info is the JSON sidecar stored next to every raw pixel file.
type Info struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Format      string `json:"format"`
	Compression string `json:"compression"`
}

// SidecarPath returns the path of the JSON sidecar for a raw pixel file:
// "img.raw" and "img.raw.zst" both map to "img.json".
func SidecarPath(path string) string {
	base := strings.TrimSuffix(path, zstdExt)
	base = strings.TrimSuffix(base, ".raw")
	return base + ".json"
}

func compressionFor(path string) string {
	if strings.HasSuffix(path, zstdExt) {
		return CompressionZstd
	}
	return CompressionNone
}

// GetInfo reads and validates the sidecar of the raw pixel file at path.
func GetInfo(path string) (*Info, error) {
	data, err := os.ReadFile(SidecarPath(path))
	if err != nil {
		return nil, fmt.Errorf("reading sidecar: %w", err)
	}

	var info Info
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("parsing sidecar: %w", err)
	}
	if info.Format != FormatRGBA8888 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, info.Format)
	}
	if info.Compression == "" {
		info.Compression = CompressionNone
	}
	return &info, nil
}

func writeInfo(path string, info Info) error {
	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(SidecarPath(path), data, 0644); err != nil {
		return fmt.Errorf("writing sidecar: %w", err)
	}
	return nil
}
