//go:build !windows

package imagesource

import (
	"image"

	"github.com/vova616/screenshot"
)

func grab() (*image.RGBA, error) {
	return screenshot.CaptureScreen()
}
