package model

import (
	"image"
	"testing"
)

func TestImageModel_Lifecycle(t *testing.T) {
	m := NewImageModel()
	if m.HasImage() || m.Size() != (image.Point{}) {
		t.Fatalf("new model should be empty")
	}
	m.SetLoading(true)
	if !m.Loading() {
		t.Fatalf("expected loading")
	}
	m.SetImage("a.png", image.NewRGBA(image.Rect(0, 0, 30, 20)))
	if m.Loading() || !m.HasImage() || m.Name() != "a.png" || m.Size() != image.Pt(30, 20) {
		t.Fatalf("unexpected state after SetImage: name=%q size=%v", m.Name(), m.Size())
	}
	m.SetImage("empty", image.NewRGBA(image.Rect(0, 0, 0, 0)))
	if m.HasImage() || m.Name() != "" {
		t.Fatalf("empty image should clear the model")
	}
	m.SetImage("b.png", image.NewRGBA(image.Rect(0, 0, 1, 1)))
	m.Clear()
	if m.Image() != nil {
		t.Fatalf("Clear should drop the image")
	}
	var nilModel *ImageModel
	nilModel.SetImage("x", nil)
	if nilModel.HasImage() || nilModel.Name() != "" {
		t.Fatalf("nil model should be empty")
	}
}
