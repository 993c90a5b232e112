// Package render rasterizes a scene graph into a software framebuffer,
// with flat shading and a z-buffer.
package render

import (
	"image"
	"image/color"
	"math"
)

// FrameBuffer holds the render target as flat slices: RGBA bytes and one
// view-space distance per pixel.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8
	Depth  []float64
}

// NewFrameBuffer allocates a buffer of the given pixel size.
func NewFrameBuffer(width, height int) *FrameBuffer {
	return &FrameBuffer{
		Width:  width,
		Height: height,
		Color:  make([]uint8, width*height*4),
		Depth:  make([]float64, width*height),
	}
}

// Clear fills every pixel with the background color and empties the
// depth buffer.
func (fb *FrameBuffer) Clear(background color.NRGBA) {
	for i := 0; i < len(fb.Color); i += 4 {
		fb.Color[i] = background.R
		fb.Color[i+1] = background.G
		fb.Color[i+2] = background.B
		fb.Color[i+3] = background.A
	}
	for i := range fb.Depth {
		fb.Depth[i] = math.Inf(1)
	}
}

// Image wraps the color buffer as an NRGBA image. The pixels are shared
// with the buffer, not copied.
func (fb *FrameBuffer) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    fb.Color,
		Stride: fb.Width * 4,
		Rect:   image.Rect(0, 0, fb.Width, fb.Height),
	}
}
