package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chjenniferhede/image-transformation-csf-proj2/internal/color"
	"github.com/chjenniferhede/image-transformation-csf-proj2/internal/ir"
	"github.com/chjenniferhede/image-transformation-csf-proj2/internal/raw"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeInput(t *testing.T, dir string) string {
	t.Helper()
	img, err := ir.Wrap(3, 1, []color.Pixel{0x40000020, 0x00400020, 0x00004020})
	require.NoError(t, err)
	path := filepath.Join(dir, "in.raw")
	require.NoError(t, raw.Store(path, img))
	return path
}

func TestExpandCommand(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir)
	out := filepath.Join(dir, "out.raw")

	stdout, err := runCLI(t, "expand", "-i", in, "-o", out)
	require.NoError(t, err)
	require.Contains(t, stdout, "3x1 → 6x2")

	img, err := raw.Load(out)
	require.NoError(t, err)
	require.Equal(t, color.Pixel(0x00004020), img.At(1, 5))
	require.Equal(t, color.Pixel(0x20200020), img.At(0, 1))
}

func TestRunCommand(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir)
	out := filepath.Join(dir, "out.raw.zst")

	_, err := runCLI(t, "run", "-i", in, "-o", out, "--op", "squash:2,1", "--op", "color-rot")
	require.NoError(t, err)

	img, err := raw.Load(out)
	require.NoError(t, err)
	require.Equal(t, 2, img.Width)
	require.Equal(t, []color.Pixel{0x00400020, 0x40000020}, img.Pixels)

	stdout, err := runCLI(t, "identify", out)
	require.NoError(t, err)
	require.Contains(t, stdout, "Compression: zstd")
	require.True(t, strings.Contains(stdout, "Pixel data:  ok"), stdout)
}

func TestRunCommandBadOp(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir)

	_, err := runCLI(t, "run", "-i", in, "-o", filepath.Join(dir, "x.raw"), "--op", "shear:2")
	require.ErrorContains(t, err, "unknown transform")
}

func TestRunCommandFlagsDoNotCarryOver(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir)
	first := filepath.Join(dir, "first.raw")
	second := filepath.Join(dir, "second.raw")

	_, err := runCLI(t, "run", "-i", in, "-o", first, "--op", "expand")
	require.NoError(t, err)

	stdout, err := runCLI(t, "run", "-i", in, "-o", second, "--op", "color-rot")
	require.NoError(t, err)
	require.NotContains(t, stdout, "expand")

	img, err := raw.Load(second)
	require.NoError(t, err)
	require.Equal(t, 3, img.Width)
	require.Equal(t, 1, img.Height)

	_, err = runCLI(t, "run", "-o", second, "--op", "color-rot")
	require.ErrorContains(t, err, "input")
}

func TestPatternCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "pattern.raw")

	stdout, err := runCLI(t, "pattern", "-o", out, "--width", "4", "--height", "4", "--cells", "2")
	require.NoError(t, err)
	require.Contains(t, stdout, "Pattern 4x4")

	img, err := raw.Load(out)
	require.NoError(t, err)
	require.Equal(t, color.Pixel(0xFF0000FF), img.At(0, 0))
	require.Equal(t, color.Pixel(0x00FF00FF), img.At(0, 3))
	require.Equal(t, color.Pixel(0x0000FFFF), img.At(3, 0))
	require.Equal(t, color.Pixel(0xFFFFFF80), img.At(3, 3))

	_, err = runCLI(t, "pattern", "-o", out, "--width", "0", "--height", "4")
	require.ErrorIs(t, err, ir.ErrInvalidDimensions)
}
