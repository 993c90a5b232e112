package asset

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "github.com/ftrvxmtrx/tga"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/akmonengine/tableau/scene"
)

// MaxTextureDim bounds the loaded image extents. Larger photos are
// downscaled with Catmull-Rom so the sampler does not crawl through
// camera-sized originals.
const MaxTextureDim = 2048

// LoadTexture decodes an image file (PNG, JPEG, WebP or TGA) into a
// texture. Every call returns a fresh texture: the caller owns it and is
// responsible for releasing it.
func LoadTexture(path string) (*scene.Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("asset: open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("asset: decode %s: %w", path, err)
	}

	return scene.NewTexture(clampSize(toNRGBA(img), MaxTextureDim)), nil
}

func toNRGBA(src image.Image) *image.NRGBA {
	if nrgba, ok := src.(*image.NRGBA); ok && nrgba.Rect.Min == (image.Point{}) {
		return nrgba
	}

	bounds := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	xdraw.Draw(dst, dst.Bounds(), src, bounds.Min, xdraw.Src)

	return dst
}

func clampSize(img *image.NRGBA, maxDim int) *image.NRGBA {
	width := img.Rect.Dx()
	height := img.Rect.Dy()
	if width <= maxDim && height <= maxDim {
		return img
	}

	scale := float64(maxDim) / float64(max(width, height))
	dst := image.NewNRGBA(image.Rect(0, 0, max(1, int(float64(width)*scale)), max(1, int(float64(height)*scale))))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)

	return dst
}
