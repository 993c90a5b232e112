package tableau

import (
	"github.com/akmonengine/tableau/scene"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	// ACTIVE_DISTANCE is how far in front of the camera an active frame floats
	ACTIVE_DISTANCE = 1.5
	// ACTIVE_DROP lowers the floating pose slightly under the eye line
	ACTIVE_DROP = -0.05
	// ACTIVE_FLOOR_Y is the lowest height the floating pose may reach
	ACTIVE_FLOOR_Y = 0.8
	// HOVER_LIFT raises a hovered frame off its table anchor
	HOVER_LIFT = 0.05
	// POSITION_DAMP and ROTATION_DAMP are exponential decay rates, per second
	POSITION_DAMP = 12.0
	ROTATION_DAMP = 10.0

	// DEFAULT_IMAGE_SCALE sizes the picture plane relative to the model bounds
	DEFAULT_IMAGE_SCALE = 0.82
	// DEFAULT_IMAGE_INSET is reserved for trimming the picture edges
	DEFAULT_IMAGE_INSET = 0.01
)

// DefaultImageOffset places the picture plane relative to the model
// center: slightly up and pulled toward the front face.
var DefaultImageOffset = mgl64.Vec3{0, 0.05, -0.27}

// UniformScale expands a single factor to both picture plane axes.
func UniformScale(factor float64) mgl64.Vec2 {
	return mgl64.Vec2{factor, factor}
}

// Layout is the picture plane placement derived from the model bounds.
type Layout struct {
	Width    float64
	Height   float64
	Position mgl64.Vec3
}

// ComputeLayout derives the picture plane from the model bounds: the
// plane extents scale the box footprint and the plane sits at the box
// center plus the configured offset. Bounds are taken as-is, a flat or
// empty model simply yields a degenerate plane.
func ComputeLayout(bounds scene.AABB, scale mgl64.Vec2, offset mgl64.Vec3) Layout {
	size := bounds.Size()

	return Layout{
		Width:    size.X() * scale.X(),
		Height:   size.Y() * scale.Y(),
		Position: bounds.Center().Add(offset),
	}
}

// FrameOptions configures a picture frame widget.
type FrameOptions struct {
	// ID names the frame in toggle callbacks.
	ID string

	// Model is the frame geometry. It may arrive later through SetModel;
	// the widget stays dormant until it does.
	Model *scene.Mesh
	// ModelMaterial shades the frame geometry, NewMaterial() when nil.
	ModelMaterial *scene.Material
	// Image is the picture shown on the plane. The widget owns it and
	// releases it on replacement and on Dispose.
	Image *scene.Texture

	// Scale stretches the picture plane relative to the model bounds.
	// The zero value means the default uniform scale.
	Scale mgl64.Vec2
	// Offset moves the picture plane away from the model center. Nil
	// means DefaultImageOffset.
	Offset *mgl64.Vec3
	// Inset is reserved for trimming the picture edges. Zero means the
	// default inset.
	Inset float64

	// TablePosition and TableRotation anchor the resting pose. The
	// rotation is an XYZ Euler triple in radians.
	TablePosition mgl64.Vec3
	TableRotation mgl64.Vec3

	// OnToggle is invoked with the frame ID when the frame is clicked.
	// The owner decides whether the frame activates; the widget never
	// flips its own state.
	OnToggle func(id string)
}

// Frame is an interactive picture frame: it rests on a table anchor,
// lifts slightly while hovered, and floats in front of the camera while
// its owner marks it active. All pose changes are exponentially damped.
type Frame struct {
	id       string
	scale    mgl64.Vec2
	offset   mgl64.Vec3
	inset    float64
	tablePos mgl64.Vec3
	tableRot mgl64.Quat
	onToggle func(id string)

	group     *scene.Node
	modelNode *scene.Node
	planeNode *scene.Node

	model         *scene.Mesh
	imageMaterial *scene.Material
	layout        Layout

	active         bool
	hovered        bool
	rotationTarget mgl64.Quat

	stage *Stage
}

// NewFrame builds a frame widget from its options. The widget starts at
// its table anchor and stays hidden until a model is attached.
func NewFrame(options FrameOptions) *Frame {
	scale := options.Scale
	if scale.X() == 0 && scale.Y() == 0 {
		scale = UniformScale(DEFAULT_IMAGE_SCALE)
	}
	offset := DefaultImageOffset
	if options.Offset != nil {
		offset = *options.Offset
	}
	inset := options.Inset
	if inset == 0 {
		inset = DEFAULT_IMAGE_INSET
	}

	rotation := options.TableRotation
	frame := &Frame{
		id:       options.ID,
		scale:    scale,
		offset:   offset,
		inset:    inset,
		tablePos: options.TablePosition,
		tableRot: mgl64.AnglesToQuat(rotation.X(), rotation.Y(), rotation.Z(), mgl64.XYZ),
		onToggle: options.OnToggle,
	}
	frame.rotationTarget = frame.tableRot

	frame.group = scene.NewNode("frame:" + options.ID)
	frame.group.Transform.Position = frame.tablePos
	frame.group.Transform.Rotation = frame.tableRot
	frame.group.Visible = false

	frame.modelNode = scene.NewNode("model")
	frame.modelNode.Material = options.ModelMaterial
	if frame.modelNode.Material == nil {
		frame.modelNode.Material = scene.NewMaterial()
	}
	frame.group.AddChild(frame.modelNode)

	frame.planeNode = scene.NewNode("picture")
	frame.planeNode.Mesh = scene.NewPlane()
	frame.group.AddChild(frame.planeNode)

	if options.Model != nil {
		frame.SetModel(options.Model)
	}
	if options.Image != nil {
		frame.SetImage(options.Image)
	}

	return frame
}

// ID returns the identifier handed to toggle callbacks.
func (frame *Frame) ID() string {
	return frame.id
}

// Group returns the widget root node, for hosts composing the graph.
func (frame *Frame) Group() *scene.Node {
	return frame.group
}

// Active reports whether the owner marked the frame active.
func (frame *Frame) Active() bool {
	return frame.active
}

// Hovered reports whether the pointer rests on the frame.
func (frame *Frame) Hovered() bool {
	return frame.hovered
}

// Layout returns the current picture plane placement.
func (frame *Frame) Layout() Layout {
	return frame.layout
}

// Inset returns the configured picture inset.
func (frame *Frame) Inset() float64 {
	return frame.inset
}

// AttachTo mounts the widget on a stage: node under the root, pointer
// routing and the per-frame update.
func (frame *Frame) AttachTo(stage *Stage) {
	frame.stage = stage
	stage.Add(frame.group)
	stage.Handle(frame.group, frame)
	stage.AddUpdater(frame)
}

// SetModel attaches the frame geometry and recomputes the picture
// layout. The widget becomes visible with its first model.
func (frame *Frame) SetModel(model *scene.Mesh) {
	frame.model = model
	frame.modelNode.Mesh = model
	frame.group.Visible = model != nil
	frame.relayout()
}

// Model returns the current frame geometry, nil while dormant.
func (frame *Frame) Model() *scene.Mesh {
	return frame.model
}

func (frame *Frame) relayout() {
	if frame.model == nil {
		return
	}

	frame.layout = ComputeLayout(frame.model.BoundingBox(), frame.scale, frame.offset)
	frame.planeNode.Transform.Position = frame.layout.Position
	frame.planeNode.Transform.Scale = mgl64.Vec3{frame.layout.Width, frame.layout.Height, 1}
}

// SetImage swaps the displayed picture. The previous image material is
// released before the replacement is installed; a nil texture leaves the
// plane bare.
func (frame *Frame) SetImage(texture *scene.Texture) {
	if frame.imageMaterial != nil {
		frame.imageMaterial.Release()
		frame.imageMaterial = nil
	}

	if texture != nil {
		material := scene.NewMaterial()
		material.Texture = texture
		material.Unlit = true
		material.DoubleSided = true
		frame.imageMaterial = material
	}
	frame.planeNode.Material = frame.imageMaterial
}

// Image returns the currently displayed picture, nil when the plane is
// bare.
func (frame *Frame) Image() *scene.Texture {
	if frame.imageMaterial == nil {
		return nil
	}

	return frame.imageMaterial.Texture
}

// SetActive is the owner side of the toggle handshake. Returning to the
// table clears any hover so a stale lift cannot survive the trip back.
func (frame *Frame) SetActive(active bool) {
	if frame.active == active {
		return
	}

	frame.active = active
	if !active {
		frame.hovered = false
	}
}

// targetPosition returns the position the pose is currently pulled
// toward.
func (frame *Frame) targetPosition(camera *scene.Camera) mgl64.Vec3 {
	if frame.active {
		position := camera.Transform.Position.
			Add(camera.Forward().Mul(ACTIVE_DISTANCE)).
			Add(mgl64.Vec3{0, ACTIVE_DROP, 0})
		if position.Y() < ACTIVE_FLOOR_Y {
			position[1] = ACTIVE_FLOOR_Y
		}

		return position
	}

	position := frame.tablePos
	if frame.hovered {
		position = position.Add(mgl64.Vec3{0, HOVER_LIFT, 0})
	}

	return position
}

// Update blends the pose toward its current target. While active only
// the position follows the camera; the rotation target is left on its
// last resting value and the slerp keeps converging there.
func (frame *Frame) Update(dt float64, camera *scene.Camera) {
	if frame.model == nil {
		return
	}

	if !frame.active {
		frame.rotationTarget = frame.tableRot
	}

	transform := &frame.group.Transform
	transform.Position = DampVec3(transform.Position, frame.targetPosition(camera), POSITION_DAMP, dt)
	transform.Rotation = DampQuat(transform.Rotation, frame.rotationTarget, ROTATION_DAMP, dt)
}

// OnPointerOver marks the frame hovered, but only while it rests on the
// table.
func (frame *Frame) OnPointerOver(event *PointerEvent) {
	if !frame.active {
		frame.hovered = true
	}
	event.StopPropagation()
}

// OnPointerOut clears the hover wherever the pointer went, active or not.
func (frame *Frame) OnPointerOut(event *PointerEvent) {
	frame.hovered = false
	event.StopPropagation()
}

// OnPointerDown claims the press so handlers behind the frame stay quiet.
func (frame *Frame) OnPointerDown(event *PointerEvent) {
	event.StopPropagation()
}

// OnPointerClick asks the owner to toggle this frame.
func (frame *Frame) OnPointerClick(event *PointerEvent) {
	event.StopPropagation()
	if frame.onToggle != nil {
		frame.onToggle(frame.id)
	}
}

// Dispose releases the picture material and detaches the widget from its
// stage. Safe to call more than once.
func (frame *Frame) Dispose() {
	if frame.imageMaterial != nil {
		frame.imageMaterial.Release()
		frame.imageMaterial = nil
		frame.planeNode.Material = nil
	}

	if frame.stage != nil {
		frame.stage.Unhandle(frame.group)
		frame.stage.RemoveUpdater(frame)
		if frame.group.Parent() != nil {
			frame.group.Parent().RemoveChild(frame.group)
		}
		frame.stage = nil
	}
}
