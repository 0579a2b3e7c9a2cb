package imagesource

import (
	"context"
	"fmt"
	"image"
)

// Screen captures the primary display.
type Screen struct{}

func (Screen) Name() string { return "screen" }

func (Screen) Load(ctx context.Context) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	img, err := grab()
	if err != nil {
		return nil, fmt.Errorf("imagesource: capture: %w", err)
	}
	if img == nil {
		return nil, ErrNoImage
	}
	return checked(img)
}
