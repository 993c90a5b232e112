package gallery

import (
	"hash/fnv"
	"image"
	"image/color"

	"github.com/akmonengine/tableau/scene"
)

const placeholderSize = 256

// placeholderTexture paints a stand-in picture for frames without an
// image file: a vertical gradient tinted from the picture id, with a
// light passe-partout border. The same id always yields the same
// picture.
func placeholderTexture(id string) *scene.Texture {
	hash := fnv.New32a()
	hash.Write([]byte(id))
	seed := hash.Sum32()

	r := float64(70 + seed%130)
	g := float64(70 + (seed>>8)%130)
	b := float64(70 + (seed>>16)%130)
	border := color.NRGBA{R: 236, G: 231, B: 219, A: 255}

	img := image.NewNRGBA(image.Rect(0, 0, placeholderSize, placeholderSize))
	for y := 0; y < placeholderSize; y++ {
		shade := 1 - 0.45*float64(y)/float64(placeholderSize-1)
		row := color.NRGBA{
			R: uint8(r * shade),
			G: uint8(g * shade),
			B: uint8(b * shade),
			A: 255,
		}
		for x := 0; x < placeholderSize; x++ {
			if x < 8 || x >= placeholderSize-8 || y < 8 || y >= placeholderSize-8 {
				img.SetNRGBA(x, y, border)
			} else {
				img.SetNRGBA(x, y, row)
			}
		}
	}

	return scene.NewTexture(img)
}
