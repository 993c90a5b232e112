package scene

import "image/color"

// Material controls how a mesh is shaded. The zero BaseColor draws black;
// NewMaterial starts from white.
type Material struct {
	Texture     *Texture
	BaseColor   color.NRGBA
	Unlit       bool
	DoubleSided bool
}

// NewMaterial creates a white, lit, single-sided material.
func NewMaterial() *Material {
	return &Material{BaseColor: color.NRGBA{R: 255, G: 255, B: 255, A: 255}}
}

// Release frees the material texture, if any. Safe to call on every
// teardown path, including materials that never had a texture.
func (material *Material) Release() {
	if material.Texture != nil {
		material.Texture.Release()
	}
}
