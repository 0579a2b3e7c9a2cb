// Package export extracts the cropped pixels from a source image and encodes
// them for the export consumer.
package export

import (
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

var (
	ErrNoSource    = errors.New("export: no source image")
	ErrEmptyRegion = errors.New("export: crop region has zero area")
	ErrOutOfBounds = errors.New("export: crop region outside source image")
)

// Extract copies the pixels of r out of src. r is in surface space, which is
// the source image's native pixel space offset by src.Bounds().Min. The
// result has bounds (0,0)-(r.Dx(),r.Dy()).
//
// A zero-area region cannot come out of the crop model and is reported as
// ErrEmptyRegion rather than an empty buffer.
func Extract(src image.Image, r image.Rectangle) (*image.NRGBA, error) {
	if src == nil {
		return nil, ErrNoSource
	}
	if r.Empty() {
		return nil, fmt.Errorf("%w: %v", ErrEmptyRegion, r)
	}
	b := src.Bounds()
	region := r.Add(b.Min)
	if !region.In(b) {
		return nil, fmt.Errorf("%w: %v not within %v", ErrOutOfBounds, r, b.Sub(b.Min))
	}
	return imaging.Crop(src, region), nil
}
