package images

import (
	"bytes"
	"image"
	"image/png"
	"testing"
)

func TestScaleToFit_KeepsSmallImages(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 40, 30))
	if got := ScaleToFit(src, 100, 100); got != image.Image(src) {
		t.Fatalf("expected original image to be returned")
	}
}

func TestScaleToFit_PreservesAspect(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 400, 100))
	got := ScaleToFit(src, 200, 200)
	if b := got.Bounds(); b.Dx() != 200 || b.Dy() != 50 {
		t.Fatalf("expected 200x50, got %v", b)
	}
	got = ScaleToFit(image.NewRGBA(image.Rect(0, 0, 100, 400)), 200, 200)
	if b := got.Bounds(); b.Dx() != 50 || b.Dy() != 200 {
		t.Fatalf("expected 50x200, got %v", b)
	}
}

func TestEncodePNG(t *testing.T) {
	if EncodePNG(nil) != nil {
		t.Fatalf("nil image should encode to nil")
	}
	data := EncodePNG(Placeholder(7, 5))
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cfg.Width != 7 || cfg.Height != 5 {
		t.Fatalf("unexpected size %dx%d", cfg.Width, cfg.Height)
	}
}

func TestFitSize(t *testing.T) {
	cases := []struct{ w, h, maxW, maxH, wantW, wantH int }{
		{100, 50, 200, 200, 100, 50},
		{400, 100, 200, 200, 200, 50},
		{100, 400, 200, 200, 50, 200},
		{300, 300, 150, 100, 100, 100},
		{1000, 1, 10, 10, 10, 1},
	}
	for _, c := range cases {
		w, h := FitSize(c.w, c.h, c.maxW, c.maxH)
		if w != c.wantW || h != c.wantH {
			t.Fatalf("FitSize(%d,%d,%d,%d) = %d,%d want %d,%d", c.w, c.h, c.maxW, c.maxH, w, h, c.wantW, c.wantH)
		}
	}
}

func TestThumbnailMatchesFitSize(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 333, 211))
	got := Thumbnail(src, 120, 120)
	w, h := FitSize(333, 211, 120, 120)
	if got.Bounds().Dx() != w || got.Bounds().Dy() != h {
		t.Fatalf("thumbnail %v differs from FitSize %dx%d", got.Bounds(), w, h)
	}
}
