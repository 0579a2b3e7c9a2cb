package imagesource

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/chai2010/webp"
	"github.com/stretchr/testify/require"
)

func testImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 7, A: 255})
		}
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestFile_LoadPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.png")
	require.NoError(t, os.WriteFile(path, encodePNG(t, testImage(30, 20)), 0o644))

	src := File{Path: path}
	require.Equal(t, "in.png", src.Name())
	img, err := src.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, 30, img.Bounds().Dx())
	require.Equal(t, 20, img.Bounds().Dy())
}

func TestFile_LoadWebP(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, webp.Encode(&buf, testImage(16, 9), &webp.Options{Lossless: true}))
	path := filepath.Join(t.TempDir(), "in.webp")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	img, err := File{Path: path}.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 16, 9), img.Bounds())
}

func TestFile_Errors(t *testing.T) {
	_, err := File{}.Load(context.Background())
	require.ErrorIs(t, err, ErrNoImage)

	_, err = File{Path: filepath.Join(t.TempDir(), "missing.png")}.Load(context.Background())
	require.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = File{Path: "x.png"}.Load(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestBytes_Load(t *testing.T) {
	img, err := Bytes{Label: "mem", Data: encodePNG(t, testImage(5, 4))}.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, 5, img.Bounds().Dx())

	_, err = Bytes{Label: "empty"}.Load(context.Background())
	require.ErrorIs(t, err, ErrNoImage)

	_, err = Bytes{Label: "junk", Data: []byte("not an image")}.Load(context.Background())
	require.Error(t, err)
}

func TestStatic_RejectsEmpty(t *testing.T) {
	_, err := Static{Label: "nil"}.Load(context.Background())
	require.ErrorIs(t, err, ErrNoImage)
	_, err = Static{Label: "zero", Image: image.NewRGBA(image.Rect(0, 0, 0, 5))}.Load(context.Background())
	require.ErrorIs(t, err, ErrNoImage)
}

func TestScreen_CancelledContextSkipsCapture(t *testing.T) {
	require.Equal(t, "screen", Screen{}.Name())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Screen{}.Load(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
