package render

import (
	"image"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// projVert is one projected mesh position: screen pixels, view distance
// and the inverse clip w used for perspective-correct interpolation.
type projVert struct {
	x, y  float64
	depth float64
	invW  float64
	ok    bool
}

// edge is the signed parallelogram area of (a, b, p), used both for the
// triangle area and the barycentric weights.
func edge(ax, ay, bx, by, px, py float64) float64 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

// rasterTriangle fills one triangle into the framebuffer rows
// [yMin, yMax). Attributes are interpolated perspective-correct; pixels
// only land when they beat the depth buffer.
func rasterTriangle(fb *FrameBuffer, v0, v1, v2 projVert, uv0, uv1, uv2 mgl64.Vec2, tex *image.NRGBA, base color.NRGBA, shade float64, doubleSided bool, yMin, yMax int) {
	area := edge(v0.x, v0.y, v1.x, v1.y, v2.x, v2.y)
	if area == 0 {
		return
	}
	// Screen y grows downward, so triangles wound counter-clockwise in
	// world space come out with a negative area. Positive means we are
	// looking at the back face.
	if area > 0 && !doubleSided {
		return
	}
	invArea := 1 / area

	xStart := max(0, int(math.Floor(min(v0.x, v1.x, v2.x))))
	xEnd := min(fb.Width-1, int(math.Ceil(max(v0.x, v1.x, v2.x))))
	yStart := max(yMin, int(math.Floor(min(v0.y, v1.y, v2.y))))
	yEnd := min(yMax-1, int(math.Ceil(max(v0.y, v1.y, v2.y))))
	if xStart > xEnd || yStart > yEnd {
		return
	}

	u0, v0t := uv0.X()*v0.invW, uv0.Y()*v0.invW
	u1, v1t := uv1.X()*v1.invW, uv1.Y()*v1.invW
	u2, v2t := uv2.X()*v2.invW, uv2.Y()*v2.invW

	for y := yStart; y <= yEnd; y++ {
		py := float64(y) + 0.5
		for x := xStart; x <= xEnd; x++ {
			px := float64(x) + 0.5

			w0 := edge(v1.x, v1.y, v2.x, v2.y, px, py) * invArea
			w1 := edge(v2.x, v2.y, v0.x, v0.y, px, py) * invArea
			w2 := edge(v0.x, v0.y, v1.x, v1.y, px, py) * invArea
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			invW := w0*v0.invW + w1*v1.invW + w2*v2.invW
			if invW <= 0 {
				continue
			}
			depth := 1 / invW

			index := y*fb.Width + x
			if depth >= fb.Depth[index] {
				continue
			}

			sample := base
			if tex != nil {
				u := (w0*u0 + w1*u1 + w2*u2) * depth
				v := (w0*v0t + w1*v1t + w2*v2t) * depth
				sample = modulate(sampleBilinear(tex, u, v), base)
			}
			if sample.A < 8 {
				continue
			}

			fb.Depth[index] = depth
			offset := index * 4
			fb.Color[offset] = shadeChannel(sample.R, shade)
			fb.Color[offset+1] = shadeChannel(sample.G, shade)
			fb.Color[offset+2] = shadeChannel(sample.B, shade)
			fb.Color[offset+3] = 255
		}
	}
}

func shadeChannel(value uint8, shade float64) uint8 {
	shaded := float64(value) * shade
	if shaded > 255 {
		return 255
	}

	return uint8(shaded)
}

func modulate(sample, base color.NRGBA) color.NRGBA {
	return color.NRGBA{
		R: uint8(int(sample.R) * int(base.R) / 255),
		G: uint8(int(sample.G) * int(base.G) / 255),
		B: uint8(int(sample.B) * int(base.B) / 255),
		A: uint8(int(sample.A) * int(base.A) / 255),
	}
}

// sampleBilinear samples the texture with clamped coordinates. The v
// axis grows upward while image rows grow downward.
func sampleBilinear(img *image.NRGBA, u, v float64) color.NRGBA {
	width := img.Rect.Dx()
	height := img.Rect.Dy()
	if width == 0 || height == 0 {
		return color.NRGBA{}
	}

	fx := mgl64.Clamp(u, 0, 1) * float64(width-1)
	fy := (1 - mgl64.Clamp(v, 0, 1)) * float64(height-1)
	x0 := int(fx)
	y0 := int(fy)
	x1 := min(x0+1, width-1)
	y1 := min(y0+1, height-1)
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	c00 := img.NRGBAAt(img.Rect.Min.X+x0, img.Rect.Min.Y+y0)
	c10 := img.NRGBAAt(img.Rect.Min.X+x1, img.Rect.Min.Y+y0)
	c01 := img.NRGBAAt(img.Rect.Min.X+x0, img.Rect.Min.Y+y1)
	c11 := img.NRGBAAt(img.Rect.Min.X+x1, img.Rect.Min.Y+y1)

	lerp := func(a, b uint8, t float64) float64 {
		return float64(a) + (float64(b)-float64(a))*t
	}
	blend := func(a, b, c, d uint8) uint8 {
		top := lerp(a, b, tx)
		bottom := lerp(c, d, tx)
		return uint8(top + (bottom-top)*ty)
	}

	return color.NRGBA{
		R: blend(c00.R, c10.R, c01.R, c11.R),
		G: blend(c00.G, c10.G, c01.G, c11.G),
		B: blend(c00.B, c10.B, c01.B, c11.B),
		A: blend(c00.A, c10.A, c01.A, c11.A),
	}
}
