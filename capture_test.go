package surfaces_test

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prideout/surfaces"
)

func TestFlipRows(t *testing.T) {
	pix := []byte{1, 1, 2, 2, 3, 3}
	surfaces.FlipRows(pix, 2, 3)
	assert.Equal(t, []byte{3, 3, 2, 2, 1, 1}, pix)

	even := []byte{1, 2, 3, 4}
	surfaces.FlipRows(even, 2, 2)
	assert.Equal(t, []byte{3, 4, 1, 2}, even)
}

func readPNG(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	return img
}

func TestWritePNG_TopRowFirst(t *testing.T) {
	dev := newFakeDevice()
	path := filepath.Join(t.TempDir(), "frame.png")

	fb := dev.framebuffer
	before := append([]byte(nil), fb.Pix...)
	require.NoError(t, surfaces.WritePNG(path, fb))
	assert.Equal(t, before, fb.Pix)

	img := readPNG(t, path)
	assert.Equal(t, image.Rect(0, 0, 2, 2), img.Bounds())
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, color.RGBAModel.Convert(img.At(0, 0)))
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, color.RGBAModel.Convert(img.At(1, 1)))
}

func TestWritePNG_ShortBuffer(t *testing.T) {
	err := surfaces.WritePNG(filepath.Join(t.TempDir(), "x.png"), surfaces.Framebuffer{Width: 4, Height: 4})
	assert.Error(t, err)
}

func TestCapturer_Disabled(t *testing.T) {
	dev := newFakeDevice()
	c := surfaces.NewCapturer(dev, false, t.TempDir())

	c.Request("SimpleTorus")
	assert.Empty(t, c.Pending())
	require.NoError(t, c.Flush())
	assert.Zero(t, dev.reads)
	assert.Empty(t, c.Written())
}

func TestCapturer_OneFilePerRequest(t *testing.T) {
	dev := newFakeDevice()
	dir := filepath.Join(t.TempDir(), "shots")
	c := surfaces.NewCapturer(dev, true, dir)

	require.NoError(t, c.Flush())
	assert.Zero(t, dev.reads)

	c.Request("SimpleTorus")
	c.Request("RidgedTorus")
	assert.Equal(t, "RidgedTorus", c.Pending())
	require.NoError(t, c.Flush())
	require.NoError(t, c.Flush())

	assert.Equal(t, 1, dev.reads)
	assert.Equal(t, []string{filepath.Join(dir, "RidgedTorus.png")}, c.Written())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "RidgedTorus.png", entries[0].Name())
}

func TestCapturer_OutputError(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	c := surfaces.NewCapturer(newFakeDevice(), true, filepath.Join(blocker, "shots"))
	c.Request("SimpleTorus")
	assert.ErrorIs(t, c.Flush(), surfaces.ErrCaptureOutput)
}
