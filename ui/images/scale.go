package images

import (
	"bytes"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
)

// Photos are re-encoded on every pointer event, so favour speed over size.
var pngEncoder = png.Encoder{CompressionLevel: png.BestSpeed}

// EncodePNG encodes an image to PNG bytes. Errors are ignored and may return an empty slice.
func EncodePNG(img image.Image) []byte {
	if img == nil {
		return nil
	}
	var buf bytes.Buffer
	_ = pngEncoder.Encode(&buf, img)
	return buf.Bytes()
}

// FitSize returns the size w x h scales to so it fits within maxW x maxH
// preserving aspect ratio. Sizes that already fit are returned unchanged.
func FitSize(w, h, maxW, maxH int) (int, int) {
	if w <= 0 || h <= 0 || (w <= maxW && h <= maxH) {
		return w, h
	}
	if maxW < 1 {
		maxW = 1
	}
	if maxH < 1 {
		maxH = 1
	}
	srcAspect := float64(w) / float64(h)
	if srcAspect > float64(maxW)/float64(maxH) {
		return maxW, max(1, int(float64(maxW)/srcAspect+0.5))
	}
	return max(1, int(float64(maxH)*srcAspect+0.5)), maxH
}

// ScaleToFit returns src scaled down so it fits within maxW x maxH. If the
// source already fits, the original is returned. The box filter keeps this
// fast enough to run per pointer event.
func ScaleToFit(src image.Image, maxW, maxH int) image.Image {
	return fit(src, maxW, maxH, imaging.Box)
}

// Thumbnail is ScaleToFit with a higher quality filter.
func Thumbnail(src image.Image, maxW, maxH int) image.Image {
	return fit(src, maxW, maxH, imaging.Lanczos)
}

func fit(src image.Image, maxW, maxH int, filter imaging.ResampleFilter) image.Image {
	if src == nil {
		return nil
	}
	b := src.Bounds()
	w, h := FitSize(b.Dx(), b.Dy(), maxW, maxH)
	if w == b.Dx() && h == b.Dy() {
		return src
	}
	return imaging.Resize(src, w, h, filter)
}

// Placeholder returns a blank w x h image used before any content exists.
func Placeholder(w, h int) image.Image {
	return image.NewNRGBA(image.Rect(0, 0, w, h))
}
