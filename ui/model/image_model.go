package model

import (
	"image"
)

// ImageModel holds the image bound to the crop surface. The zero value has no
// image and is usable. No synchronization needed: updates occur on the UI
// thread tick.
type ImageModel struct {
	name    string
	img     image.Image
	loading bool
}

func NewImageModel() *ImageModel { return &ImageModel{} }

// SetImage stores a decoded image. A nil or empty image clears the model.
func (m *ImageModel) SetImage(name string, img image.Image) {
	if m == nil {
		return
	}
	m.loading = false
	if img == nil || img.Bounds().Empty() {
		m.name, m.img = "", nil
		return
	}
	m.name, m.img = name, img
}

func (m *ImageModel) Clear() { m.SetImage("", nil) }

// Image returns the bound image, or nil.
func (m *ImageModel) Image() image.Image {
	if m == nil {
		return nil
	}
	return m.img
}

func (m *ImageModel) Name() string {
	if m == nil {
		return ""
	}
	return m.name
}

// Size returns the native pixel size of the bound image.
func (m *ImageModel) Size() image.Point {
	if m == nil || m.img == nil {
		return image.Point{}
	}
	return m.img.Bounds().Size()
}

func (m *ImageModel) HasImage() bool { return m != nil && m.img != nil }

func (m *ImageModel) SetLoading(b bool) {
	if m == nil {
		return
	}
	m.loading = b
}

func (m *ImageModel) Loading() bool { return m != nil && m.loading }
