// Package viewer hosts a stage inside an ebiten window. It bridges the
// mouse to stage pointer events, steps the stage at the fixed tick rate
// and blits the software-rendered frames.
package viewer

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/akmonengine/tableau"
	"github.com/akmonengine/tableau/render"
)

// Options configures the window and the render pipeline. Zero fields
// fall back to a 960x540 window with one render worker per CPU.
type Options struct {
	Width       int
	Height      int
	Title       string
	Workers     int
	SnapshotDir string
}

// Viewer drives a stage as an ebiten game: input, stepping, drawing.
type Viewer struct {
	stage    *tableau.Stage
	renderer *render.Renderer
	frame    *ebiten.Image
	options  Options
}

// New creates a viewer for the stage.
func New(stage *tableau.Stage, options Options) *Viewer {
	if options.Width <= 0 {
		options.Width = 960
	}
	if options.Height <= 0 {
		options.Height = 540
	}
	if options.Title == "" {
		options.Title = "tableau"
	}
	if options.SnapshotDir == "" {
		options.SnapshotDir = "."
	}

	renderer := render.NewRenderer(options.Width, options.Height)
	if options.Workers > 0 {
		renderer.Workers = options.Workers
	}

	return &Viewer{
		stage:    stage,
		renderer: renderer,
		frame:    ebiten.NewImage(options.Width, options.Height),
		options:  options,
	}
}

// Update implements ebiten.Game: pointer routing, then one stage step.
func (viewer *Viewer) Update() error {
	x, y := ebiten.CursorPosition()
	ray := viewer.stage.Camera.ScreenRay(float64(x), float64(y), viewer.options.Width, viewer.options.Height)

	viewer.stage.PointerMove(ray)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		viewer.stage.PointerDown(ray)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		viewer.stage.PointerUp(ray)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		if err := viewer.Snapshot(); err != nil {
			log.Printf("[Viewer] snapshot failed: %v", err)
		}
	}

	tps := ebiten.TPS()
	if tps <= 0 {
		tps = 60
	}
	viewer.stage.Step(1 / float64(tps))

	return nil
}

// Draw implements ebiten.Game.
func (viewer *Viewer) Draw(screen *ebiten.Image) {
	img := viewer.renderer.Render(viewer.stage.Root, viewer.stage.Camera)
	viewer.frame.WritePixels(img.Pix)
	screen.DrawImage(viewer.frame, nil)
}

// Layout implements ebiten.Game with a fixed internal resolution.
func (viewer *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return viewer.options.Width, viewer.options.Height
}

// Run opens the window and drives the stage until the window closes.
func (viewer *Viewer) Run() error {
	ebiten.SetWindowSize(viewer.options.Width, viewer.options.Height)
	ebiten.SetWindowTitle(viewer.options.Title)
	log.Printf("[Viewer] %dx%d, %d render workers", viewer.options.Width, viewer.options.Height, viewer.renderer.Workers)

	return ebiten.RunGame(viewer)
}

// Snapshot renders the stage once and writes the frame to a timestamped
// WebP file in the snapshot directory.
func (viewer *Viewer) Snapshot() error {
	img := viewer.renderer.Render(viewer.stage.Root, viewer.stage.Camera)

	path := filepath.Join(viewer.options.SnapshotDir, fmt.Sprintf("tableau-%s.webp", time.Now().Format("20060102-150405")))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("viewer: create %s: %w", path, err)
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		return fmt.Errorf("viewer: encode %s: %w", path, err)
	}
	log.Printf("[Viewer] snapshot saved to %s", path)

	return nil
}
