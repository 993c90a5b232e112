package gallery

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/akmonengine/tableau"
	"github.com/akmonengine/tableau/asset"
	"github.com/akmonengine/tableau/scene"
)

// Built-in frame model proportions, used when a picture names no model
// file.
const (
	defaultFrameWidth  = 0.42
	defaultFrameHeight = 0.52
	defaultFrameDepth  = 0.035
	defaultFrameBorder = 0.045
)

// Gallery assembles frame widgets on a stage and owns the single active
// selection the widgets are forbidden to manage themselves.
type Gallery struct {
	stage  *tableau.Stage
	frames map[string]*tableau.Frame
	order  []string
	active string
}

// Build constructs the stage described by the config: camera, table and
// one frame widget per picture. Frame models come from the shared cache;
// picture textures are loaded unshared, every frame owns the release of
// its own.
func Build(config Config, assets *asset.Cache) (*Gallery, error) {
	camera := scene.NewCamera()
	camera.FOV = mgl64.DegToRad(config.Camera.FOV)
	camera.LookAt(vec3(config.Camera.Position), vec3(config.Camera.LookAt))

	gallery := &Gallery{
		stage:  tableau.NewStage(camera),
		frames: make(map[string]*tableau.Frame, len(config.Pictures)),
	}

	tableColor, err := parseHexColor(config.Table.Color)
	if err != nil {
		return nil, fmt.Errorf("gallery: table color: %w", err)
	}
	table := scene.NewNode("table")
	table.Mesh = scene.NewBox(config.Table.Size[0], config.Table.Size[1], config.Table.Size[2])
	table.Material = scene.NewMaterial()
	table.Material.BaseColor = tableColor
	table.Transform.Position = vec3(config.Table.Position)
	gallery.stage.Add(table)

	for _, picture := range config.Pictures {
		frame, err := gallery.buildFrame(picture, assets)
		if err != nil {
			gallery.Dispose()
			return nil, err
		}
		gallery.frames[picture.ID] = frame
		gallery.order = append(gallery.order, picture.ID)
	}

	return gallery, nil
}

func (gallery *Gallery) buildFrame(picture PictureConfig, assets *asset.Cache) (*tableau.Frame, error) {
	var model *scene.Mesh
	if picture.Model != "" {
		loaded, err := assets.Mesh(picture.Model)
		if err != nil {
			return nil, fmt.Errorf("gallery: picture %s: %w", picture.ID, err)
		}
		model = loaded
	} else {
		model = scene.NewPictureFrame(defaultFrameWidth, defaultFrameHeight, defaultFrameDepth, defaultFrameBorder)
	}

	var texture *scene.Texture
	if picture.Image != "" {
		loaded, err := asset.LoadTexture(picture.Image)
		if err != nil {
			return nil, fmt.Errorf("gallery: picture %s: %w", picture.ID, err)
		}
		texture = loaded
	} else {
		texture = placeholderTexture(picture.ID)
	}

	options := tableau.FrameOptions{
		ID:            picture.ID,
		Model:         model,
		ModelMaterial: woodMaterial(),
		Image:         texture,
		Inset:         picture.Inset,
		TablePosition: vec3(picture.Position),
		TableRotation: radians(picture.Rotation),
		OnToggle:      gallery.Toggle,
	}
	if picture.Scale != nil {
		options.Scale = mgl64.Vec2{picture.Scale.X, picture.Scale.Y}
	}
	if picture.Offset != nil {
		offset := vec3(*picture.Offset)
		options.Offset = &offset
	}

	frame := tableau.NewFrame(options)
	frame.AttachTo(gallery.stage)

	return frame, nil
}

// Stage returns the assembled stage, for a host to drive.
func (gallery *Gallery) Stage() *tableau.Stage {
	return gallery.stage
}

// Toggle flips one frame by id: toggling the active frame sends it back
// to the table, toggling any other floats it and parks the previous one.
// Frames report their clicks here and this is the only place their
// active flag is changed.
func (gallery *Gallery) Toggle(id string) {
	frame, ok := gallery.frames[id]
	if !ok {
		return
	}

	if gallery.active == id {
		frame.SetActive(false)
		gallery.active = ""
		return
	}

	if previous, ok := gallery.frames[gallery.active]; ok {
		previous.SetActive(false)
	}
	frame.SetActive(true)
	gallery.active = id
}

// Active returns the floating frame id, empty while every frame rests.
func (gallery *Gallery) Active() string {
	return gallery.active
}

// Frame returns one widget by id, nil when unknown.
func (gallery *Gallery) Frame(id string) *tableau.Frame {
	return gallery.frames[id]
}

// Frames returns the widgets in configuration order.
func (gallery *Gallery) Frames() []*tableau.Frame {
	frames := make([]*tableau.Frame, 0, len(gallery.order))
	for _, id := range gallery.order {
		frames = append(frames, gallery.frames[id])
	}

	return frames
}

// Dispose tears every frame down, releasing all picture textures. The
// gallery is empty afterwards.
func (gallery *Gallery) Dispose() {
	for _, id := range gallery.order {
		gallery.frames[id].Dispose()
		delete(gallery.frames, id)
	}
	gallery.order = nil
	gallery.active = ""
}

func woodMaterial() *scene.Material {
	material := scene.NewMaterial()
	material.BaseColor = color.NRGBA{R: 133, G: 94, B: 62, A: 255}

	return material
}

func vec3(values [3]float64) mgl64.Vec3 {
	return mgl64.Vec3{values[0], values[1], values[2]}
}

func radians(degrees [3]float64) mgl64.Vec3 {
	return mgl64.Vec3{
		mgl64.DegToRad(degrees[0]),
		mgl64.DegToRad(degrees[1]),
		mgl64.DegToRad(degrees[2]),
	}
}
