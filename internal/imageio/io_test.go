package imageio

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func checker(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 0 {
				img.SetNRGBA(x, y, color.NRGBA{R: 255, G: 100, B: 30, A: 200})
			}
		}
	}
	return img
}

func TestSaveLoadPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checker.png")
	src := checker(6, 4)
	require.NoError(t, SavePNG(path, src))

	img, format, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, src.Bounds(), img.Bounds())

	got := ToNRGBA(img)
	assert.Equal(t, src.Pix, got.Pix)
}

func TestLoadJPEG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, checker(8, 8), nil))

	path := filepath.Join(t.TempDir(), "photo.jpg")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))

	img, format, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 8, img.Bounds().Dx())
}

func TestLoadBytesRegisteredFormats(t *testing.T) {
	tests := []struct {
		format string
		encode func(*bytes.Buffer, image.Image) error
	}{
		{"gif", func(b *bytes.Buffer, img image.Image) error { return gif.Encode(b, img, nil) }},
		{"jpeg", func(b *bytes.Buffer, img image.Image) error { return jpeg.Encode(b, img, nil) }},
		{"bmp", func(b *bytes.Buffer, img image.Image) error { return bmp.Encode(b, img) }},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, tt.encode(&buf, checker(5, 3)))

			img, format, err := LoadBytes(buf.Bytes())
			require.NoError(t, err)
			assert.Equal(t, tt.format, format)
			assert.Equal(t, image.Rect(0, 0, 5, 3), img.Bounds())
		})
	}

	// WebP has no encoder in x/image; a RIFF header without a valid VP8
	// chunk must reach the WebP decoder rather than fail format sniffing.
	_, _, err := LoadBytes([]byte("RIFF\x00\x00\x00\x00WEBPVP8 "))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoadBytesErrors(t *testing.T) {
	_, _, err := LoadBytes(nil)
	assert.ErrorIs(t, err, ErrEmptyData)

	_, _, err = LoadBytes([]byte("definitely not an image"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoadMissingFile(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "nope.png"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.png")
	require.NoError(t, SavePNG(path, checker(5, 3)))

	cfg, format, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 5, cfg.Width)
	assert.Equal(t, 3, cfg.Height)
}

func TestToNRGBAOffsetBounds(t *testing.T) {
	src := checker(4, 4).SubImage(image.Rect(1, 1, 3, 4)).(*image.NRGBA)
	out := ToNRGBA(src)
	assert.Equal(t, image.Rect(0, 0, 2, 3), out.Bounds())
	assert.Equal(t, src.NRGBAAt(1, 1), out.NRGBAAt(0, 0))

	same := checker(2, 2)
	assert.Same(t, same, ToNRGBA(same))
}
