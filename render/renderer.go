package render

import (
	"image"
	"image/color"
	"math"
	"runtime"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/akmonengine/tableau/scene"
)

// LightConfig holds the fixed directional studio light.
type LightConfig struct {
	Direction mgl64.Vec3 // toward the light, normalized
	Ambient   float64
	Diffuse   float64
}

// DefaultLightConfig is a soft key light from above the viewer's right
// shoulder.
func DefaultLightConfig() LightConfig {
	return LightConfig{
		Direction: mgl64.Vec3{0.35, 0.8, 0.45}.Normalize(),
		Ambient:   0.42,
		Diffuse:   0.58,
	}
}

// Renderer projects a node tree onto a fixed-size framebuffer. A
// renderer is not safe for concurrent Render calls; it parallelizes
// internally instead.
type Renderer struct {
	Workers    int
	Background color.NRGBA
	Light      LightConfig

	fb *FrameBuffer
}

// NewRenderer creates a renderer with one worker per CPU.
func NewRenderer(width, height int) *Renderer {
	return &Renderer{
		Workers:    runtime.NumCPU(),
		Background: color.NRGBA{R: 24, G: 24, B: 28, A: 255},
		Light:      DefaultLightConfig(),
		fb:         NewFrameBuffer(width, height),
	}
}

// Size returns the framebuffer dimensions.
func (renderer *Renderer) Size() (int, int) {
	return renderer.fb.Width, renderer.fb.Height
}

// drawCall carries one mesh node through the two render phases: project
// fills the vertex and shade slices, rasterize consumes them.
type drawCall struct {
	mesh  *scene.Mesh
	mat   *scene.Material
	world mgl64.Mat4

	verts  []projVert
	shades []float64
}

// Render draws every visible mesh node under root as seen from camera.
// The returned image aliases the internal buffer: it is valid until the
// next Render call.
func (renderer *Renderer) Render(root *scene.Node, camera *scene.Camera) *image.NRGBA {
	renderer.fb.Clear(renderer.Background)

	aspect := float64(renderer.fb.Width) / float64(renderer.fb.Height)
	viewProj := camera.ProjMatrix(aspect).Mul4(camera.ViewMatrix())

	var calls []*drawCall
	root.Visit(func(node *scene.Node) bool {
		if node.Mesh != nil && node.Material != nil {
			calls = append(calls, &drawCall{
				mesh:  node.Mesh,
				mat:   node.Material,
				world: node.WorldMatrix(),
			})
		}

		return true
	})

	workers := max(1, renderer.Workers)
	task(workers, calls, func(call *drawCall) {
		renderer.project(call, viewProj, camera.Near)
	})

	task(workers, splitBands(renderer.fb.Height, workers), func(b band) {
		for _, call := range calls {
			renderer.rasterize(call, b)
		}
	})

	return renderer.fb.Image()
}

// project transforms the call's positions to screen space and computes
// one flat shade per triangle.
func (renderer *Renderer) project(call *drawCall, viewProj mgl64.Mat4, near float64) {
	width := float64(renderer.fb.Width)
	height := float64(renderer.fb.Height)
	mvp := viewProj.Mul4(call.world)

	call.verts = make([]projVert, len(call.mesh.Positions))
	worldPositions := make([]mgl64.Vec3, len(call.mesh.Positions))
	for i, position := range call.mesh.Positions {
		worldPositions[i] = call.world.Mul4x1(position.Vec4(1)).Vec3()

		clip := mvp.Mul4x1(position.Vec4(1))
		w := clip.W()
		if w <= near {
			continue
		}

		call.verts[i] = projVert{
			x:     (clip.X()/w + 1) / 2 * width,
			y:     (1 - clip.Y()/w) / 2 * height,
			depth: w,
			invW:  1 / w,
			ok:    true,
		}
	}

	call.shades = make([]float64, len(call.mesh.Tris))
	for i, tri := range call.mesh.Tris {
		if call.mat.Unlit {
			call.shades[i] = 1
			continue
		}

		a := worldPositions[tri.V[0]]
		b := worldPositions[tri.V[1]]
		c := worldPositions[tri.V[2]]
		normal := b.Sub(a).Cross(c.Sub(a))
		if normal.Len() == 0 {
			call.shades[i] = renderer.Light.Ambient
			continue
		}

		incidence := normal.Normalize().Dot(renderer.Light.Direction)
		if call.mat.DoubleSided {
			incidence = math.Abs(incidence)
		} else {
			incidence = math.Max(0, incidence)
		}
		call.shades[i] = mgl64.Clamp(renderer.Light.Ambient+renderer.Light.Diffuse*incidence, 0, 1)
	}
}

// rasterize draws the call's triangles into one framebuffer band.
func (renderer *Renderer) rasterize(call *drawCall, b band) {
	var tex *image.NRGBA
	if call.mat.Texture != nil {
		tex = call.mat.Texture.Image()
	}

	for i, tri := range call.mesh.Tris {
		v0 := call.verts[tri.V[0]]
		v1 := call.verts[tri.V[1]]
		v2 := call.verts[tri.V[2]]
		if !v0.ok || !v1.ok || !v2.ok {
			continue
		}

		// A triangle without UVs falls back to the flat base color.
		triTex := tex
		var uv0, uv1, uv2 mgl64.Vec2
		if triTex != nil && tri.T[0] >= 0 && tri.T[1] >= 0 && tri.T[2] >= 0 {
			uv0 = call.mesh.UVs[tri.T[0]]
			uv1 = call.mesh.UVs[tri.T[1]]
			uv2 = call.mesh.UVs[tri.T[2]]
		} else {
			triTex = nil
		}

		rasterTriangle(renderer.fb, v0, v1, v2, uv0, uv1, uv2, triTex, call.mat.BaseColor, call.shades[i], call.mat.DoubleSided, b.yMin, b.yMax)
	}
}
