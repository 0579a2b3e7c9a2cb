// Package imagesource loads the raster image the crop editor binds to its
// surface.
package imagesource

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"

	// Decoders beyond the ones imaging registers.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrNoImage is returned when a source produced no usable pixels.
var ErrNoImage = errors.New("imagesource: no image")

// Source produces one image per Load call.
type Source interface {
	Name() string
	Load(ctx context.Context) (image.Image, error)
}

// File decodes an image from disk. JPEG EXIF orientation is applied so the
// surface shows the image upright.
type File struct {
	Path string
}

func (f File) Name() string { return filepath.Base(f.Path) }

func (f File) Load(ctx context.Context) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.Path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrNoImage)
	}
	img, err := imaging.Open(f.Path, imaging.AutoOrientation(true))
	if err != nil && strings.EqualFold(filepath.Ext(f.Path), ".webp") {
		img, err = decodeWebP(f.Path)
	}
	if err != nil {
		return nil, fmt.Errorf("imagesource: open %s: %w", f.Path, err)
	}
	return checked(img)
}

// decodeWebP covers the extended webp variants x/image/webp rejects.
func decodeWebP(path string) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return webp.Decode(bytes.NewReader(data))
}

// Bytes decodes an in-memory encoded image.
type Bytes struct {
	Label string
	Data  []byte
}

func (b Bytes) Name() string { return b.Label }

func (b Bytes) Load(ctx context.Context) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(b.Data) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", ErrNoImage, b.Label)
	}
	img, err := imaging.Decode(bytes.NewReader(b.Data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("imagesource: decode %s: %w", b.Label, err)
	}
	return checked(img)
}

// Static wraps an already decoded image.
type Static struct {
	Label string
	Image image.Image
}

func (s Static) Name() string { return s.Label }

func (s Static) Load(ctx context.Context) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return checked(s.Image)
}

func checked(img image.Image) (image.Image, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, ErrNoImage
	}
	return img, nil
}
