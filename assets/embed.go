package assets

import (
	_ "embed"

	"github.com/soocke/pixel-crop-go/domain/imagesource"
)

// SamplePNG contains the raw PNG bytes of the image shown when no image was
// given on the command line.
//
//go:embed sample.png
var SamplePNG []byte

// Sample returns the embedded image as a source.
func Sample() imagesource.Source {
	return imagesource.Bytes{Label: "sample.png", Data: SamplePNG}
}
