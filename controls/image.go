package controls

import "image"

// ImageView displays an image. Its zero value shows nothing.
type ImageView struct {
	Base
	img image.Image
}

// NewImageView returns an empty image view.
func NewImageView() *ImageView { return &ImageView{} }

// Image returns the displayed image, nil when none.
func (v *ImageView) Image() image.Image { return v.img }

// Value is Image.
func (v *ImageView) Value() image.Image { return v.img }

// SetValue displays img.
func (v *ImageView) SetValue(img image.Image) { v.img = img }
