package scene

import "image"

// Texture wraps decoded pixels with an explicit lifetime. Whoever owns
// the texture calls Release exactly when the pixels are no longer shown;
// shared cache entries are never released.
type Texture struct {
	img      *image.NRGBA
	released bool
}

// NewTexture wraps an image as a texture.
func NewTexture(img *image.NRGBA) *Texture {
	return &Texture{img: img}
}

// Image returns the pixel data, or nil once the texture is released.
func (texture *Texture) Image() *image.NRGBA {
	return texture.img
}

// Size returns the pixel dimensions, or zero once the texture is released.
func (texture *Texture) Size() (int, int) {
	if texture.img == nil {
		return 0, 0
	}

	return texture.img.Rect.Dx(), texture.img.Rect.Dy()
}

// Released reports whether Release has been called.
func (texture *Texture) Released() bool {
	return texture.released
}

// Release drops the pixel data. Calling it again is a no-op.
func (texture *Texture) Release() {
	texture.img = nil
	texture.released = true
}
