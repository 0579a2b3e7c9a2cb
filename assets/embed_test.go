package assets

import (
	"context"
	"testing"
)

func TestSampleDecodes(t *testing.T) {
	img, err := Sample().Load(context.Background())
	if err != nil {
		t.Fatalf("decode sample: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 480 || b.Dy() != 320 {
		t.Fatalf("unexpected sample bounds %v", b)
	}
}
