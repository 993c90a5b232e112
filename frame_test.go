package tableau

import (
	"image"
	"testing"

	"github.com/akmonengine/tableau/scene"
	"github.com/go-gl/mathgl/mgl64"
)

// ============================================================================
// Helpers
// ============================================================================

// frameModel is a typical tabletop frame: 0.5 wide, 0.625 tall, 0.04 deep.
func frameModel() *scene.Mesh {
	return scene.NewBox(0.5, 0.625, 0.04)
}

func cameraAt(position mgl64.Vec3) *scene.Camera {
	camera := scene.NewCamera()
	camera.Transform.Position = position

	return camera
}

func testTexture() *scene.Texture {
	return scene.NewTexture(image.NewNRGBA(image.Rect(0, 0, 8, 8)))
}

// ============================================================================
// Layout
// ============================================================================

func TestComputeLayout(t *testing.T) {
	bounds := scene.AABB{
		Min: mgl64.Vec3{-0.25, -0.3125, -0.02},
		Max: mgl64.Vec3{0.25, 0.3125, 0.02},
	}

	layout := ComputeLayout(bounds, UniformScale(0.82), mgl64.Vec3{0, 0.05, -0.27})

	if !near(layout.Width, 0.41, 1e-9) {
		t.Errorf("Width = %v, expected 0.41", layout.Width)
	}
	if !near(layout.Height, 0.5125, 1e-9) {
		t.Errorf("Height = %v, expected 0.5125", layout.Height)
	}
	if !vec3Near(layout.Position, mgl64.Vec3{0, 0.05, -0.27}, 1e-9) {
		t.Errorf("Position = %v, expected {0 0.05 -0.27}", layout.Position)
	}
}

func TestComputeLayout_OffCenterBounds(t *testing.T) {
	bounds := scene.AABB{
		Min: mgl64.Vec3{1, 2, 3},
		Max: mgl64.Vec3{3, 6, 4},
	}

	layout := ComputeLayout(bounds, mgl64.Vec2{0.5, 0.25}, mgl64.Vec3{0.1, 0, 0})

	if !near(layout.Width, 1, 1e-9) {
		t.Errorf("Width = %v, expected 1", layout.Width)
	}
	if !near(layout.Height, 1, 1e-9) {
		t.Errorf("Height = %v, expected 1", layout.Height)
	}
	if !vec3Near(layout.Position, mgl64.Vec3{2.1, 4, 3.5}, 1e-9) {
		t.Errorf("Position = %v, expected {2.1 4 3.5}", layout.Position)
	}
}

func TestComputeLayout_DegenerateBounds(t *testing.T) {
	// A flat or empty model is taken as-is and yields a degenerate plane.
	layout := ComputeLayout(scene.AABB{}, UniformScale(0.82), mgl64.Vec3{})

	if layout.Width != 0 || layout.Height != 0 {
		t.Errorf("Expected a zero-size plane, got %vx%v", layout.Width, layout.Height)
	}
}

func TestFrame_LayoutDefaults(t *testing.T) {
	frame := NewFrame(FrameOptions{ID: "a", Model: frameModel()})

	layout := frame.Layout()
	if !near(layout.Width, 0.5*0.82, 1e-9) {
		t.Errorf("Width = %v, expected %v", layout.Width, 0.5*0.82)
	}
	if !near(layout.Height, 0.625*0.82, 1e-9) {
		t.Errorf("Height = %v, expected %v", layout.Height, 0.625*0.82)
	}
	if !vec3Near(layout.Position, DefaultImageOffset, 1e-9) {
		t.Errorf("Position = %v, expected the default offset", layout.Position)
	}
	if frame.Inset() != DEFAULT_IMAGE_INSET {
		t.Errorf("Inset = %v, expected %v", frame.Inset(), DEFAULT_IMAGE_INSET)
	}
}

func TestFrame_LayoutOverrides(t *testing.T) {
	offset := mgl64.Vec3{0, 0, 0}
	frame := NewFrame(FrameOptions{
		ID:     "a",
		Model:  frameModel(),
		Scale:  mgl64.Vec2{0.9, 0.7},
		Offset: &offset,
		Inset:  0.02,
	})

	layout := frame.Layout()
	if !near(layout.Width, 0.45, 1e-9) {
		t.Errorf("Width = %v, expected 0.45", layout.Width)
	}
	if !near(layout.Height, 0.4375, 1e-9) {
		t.Errorf("Height = %v, expected 0.4375", layout.Height)
	}
	if !vec3Near(layout.Position, mgl64.Vec3{0, 0, 0}, 1e-9) {
		t.Errorf("Position = %v, expected the explicit zero offset", layout.Position)
	}
	if frame.Inset() != 0.02 {
		t.Errorf("Inset = %v, expected 0.02", frame.Inset())
	}
}

func TestFrame_LayoutIdempotent(t *testing.T) {
	model := frameModel()
	frame := NewFrame(FrameOptions{ID: "a", Model: model})

	first := frame.Layout()
	frame.SetModel(model)
	second := frame.Layout()

	if first != second {
		t.Errorf("Expected identical layouts, got %+v then %+v", first, second)
	}
}

func TestFrame_LayoutDrivesPlaneNode(t *testing.T) {
	frame := NewFrame(FrameOptions{ID: "a", Model: frameModel()})

	layout := frame.Layout()
	if !vec3Near(frame.planeNode.Transform.Position, layout.Position, 1e-9) {
		t.Errorf("Plane position = %v, expected %v", frame.planeNode.Transform.Position, layout.Position)
	}
	expectedScale := mgl64.Vec3{layout.Width, layout.Height, 1}
	if !vec3Near(frame.planeNode.Transform.Scale, expectedScale, 1e-9) {
		t.Errorf("Plane scale = %v, expected %v", frame.planeNode.Transform.Scale, expectedScale)
	}
}

// ============================================================================
// Pose Targets
// ============================================================================

func TestFrame_TargetPosition_Active(t *testing.T) {
	frame := NewFrame(FrameOptions{ID: "a", Model: frameModel()})
	frame.SetActive(true)

	target := frame.targetPosition(cameraAt(mgl64.Vec3{0, 1, 0}))

	if !vec3Near(target, mgl64.Vec3{0, 0.95, -1.5}, 1e-9) {
		t.Errorf("Target = %v, expected {0 0.95 -1.5}", target)
	}
}

func TestFrame_TargetPosition_FloorClamp(t *testing.T) {
	frame := NewFrame(FrameOptions{ID: "a", Model: frameModel()})
	frame.SetActive(true)

	camera := scene.NewCamera()
	camera.LookAt(mgl64.Vec3{0, 0.9, 0}, mgl64.Vec3{0, -0.1, -1})
	target := frame.targetPosition(camera)

	if target.Y() != ACTIVE_FLOOR_Y {
		t.Errorf("Target height = %v, expected exactly %v", target.Y(), ACTIVE_FLOOR_Y)
	}
}

func TestFrame_TargetPosition_Resting(t *testing.T) {
	anchor := mgl64.Vec3{1, 0, 2}
	frame := NewFrame(FrameOptions{ID: "a", Model: frameModel(), TablePosition: anchor})

	target := frame.targetPosition(cameraAt(mgl64.Vec3{0, 1, 5}))

	if target != anchor {
		t.Errorf("Target = %v, expected the table anchor %v", target, anchor)
	}
}

func TestFrame_TargetPosition_HoverLift(t *testing.T) {
	anchor := mgl64.Vec3{1, 0, 2}
	frame := NewFrame(FrameOptions{ID: "a", Model: frameModel(), TablePosition: anchor})

	frame.OnPointerOver(&PointerEvent{})
	target := frame.targetPosition(cameraAt(mgl64.Vec3{0, 1, 5}))

	if target != anchor.Add(mgl64.Vec3{0, HOVER_LIFT, 0}) {
		t.Errorf("Target = %v, expected the anchor lifted by %v", target, HOVER_LIFT)
	}
}

func TestFrame_TargetPosition_ActiveIgnoresHover(t *testing.T) {
	frame := NewFrame(FrameOptions{ID: "a", Model: frameModel()})
	frame.OnPointerOver(&PointerEvent{})
	frame.SetActive(true)

	target := frame.targetPosition(cameraAt(mgl64.Vec3{0, 1, 0}))

	if !vec3Near(target, mgl64.Vec3{0, 0.95, -1.5}, 1e-9) {
		t.Errorf("Target = %v, expected the floating pose", target)
	}
}

// ============================================================================
// Animation
// ============================================================================

func TestFrame_Update_ConvergesToAnchor(t *testing.T) {
	anchor := mgl64.Vec3{1, 0, 2}
	frame := NewFrame(FrameOptions{ID: "a", Model: frameModel(), TablePosition: anchor})
	frame.group.Transform.Position = mgl64.Vec3{0, 5, 0}
	camera := cameraAt(mgl64.Vec3{0, 1, 5})

	// Two seconds at sixty frames per second.
	for i := 0; i < 120; i++ {
		frame.Update(1.0/60, camera)
	}

	if frame.group.Transform.Position.Sub(anchor).Len() > 1e-3 {
		t.Errorf("Expected the pose to settle at %v, got %v", anchor, frame.group.Transform.Position)
	}
}

func TestFrame_Update_FollowsCameraWhileActive(t *testing.T) {
	frame := NewFrame(FrameOptions{ID: "a", Model: frameModel()})
	frame.SetActive(true)
	camera := cameraAt(mgl64.Vec3{0, 1, 0})

	for i := 0; i < 120; i++ {
		frame.Update(1.0/60, camera)
	}

	if frame.group.Transform.Position.Sub(mgl64.Vec3{0, 0.95, -1.5}).Len() > 1e-3 {
		t.Errorf("Expected the pose to settle in front of the camera, got %v", frame.group.Transform.Position)
	}
}

func TestFrame_Update_RotationKeepsRestingTarget(t *testing.T) {
	frame := NewFrame(FrameOptions{ID: "a", Model: frameModel()})
	// Knock the pose off its resting orientation, then activate: the
	// position tracks the camera but the rotation still settles back on
	// the table orientation.
	frame.group.Transform.Rotation = mgl64.AnglesToQuat(0, mgl64.DegToRad(90), 0, mgl64.XYZ)
	frame.SetActive(true)
	camera := cameraAt(mgl64.Vec3{0, 1, 0})

	for i := 0; i < 240; i++ {
		frame.Update(1.0/60, camera)
	}

	dot := frame.group.Transform.Rotation.Dot(frame.tableRot)
	if dot < 0 {
		dot = -dot
	}
	if dot < 1-1e-6 {
		t.Errorf("Expected the rotation to settle on the resting orientation, dot = %v", dot)
	}
}

func TestFrame_Update_DormantWithoutModel(t *testing.T) {
	frame := NewFrame(FrameOptions{ID: "a", TablePosition: mgl64.Vec3{1, 0, 2}})
	frame.SetActive(true)
	before := frame.group.Transform.Position

	frame.Update(1.0/60, cameraAt(mgl64.Vec3{0, 1, 0}))

	if frame.group.Transform.Position != before {
		t.Error("Expected no motion before a model is attached")
	}
	if frame.group.Visible {
		t.Error("Expected the widget to stay hidden before a model is attached")
	}
}

func TestFrame_SetModel_WakesTheWidget(t *testing.T) {
	frame := NewFrame(FrameOptions{ID: "a"})

	frame.SetModel(frameModel())

	if !frame.group.Visible {
		t.Error("Expected the widget to become visible with its model")
	}
	if frame.Layout().Width == 0 {
		t.Error("Expected the layout to be computed with the model")
	}
}

// ============================================================================
// Interaction
// ============================================================================

func TestFrame_PointerOver_OnlyWhileResting(t *testing.T) {
	frame := NewFrame(FrameOptions{ID: "a", Model: frameModel()})

	frame.OnPointerOver(&PointerEvent{})
	if !frame.Hovered() {
		t.Error("Expected a resting frame to take the hover")
	}

	frame.OnPointerOut(&PointerEvent{})
	frame.SetActive(true)
	frame.OnPointerOver(&PointerEvent{})
	if frame.Hovered() {
		t.Error("Expected an active frame to refuse the hover")
	}
}

func TestFrame_PointerOut_AlwaysClears(t *testing.T) {
	frame := NewFrame(FrameOptions{ID: "a", Model: frameModel()})
	frame.OnPointerOver(&PointerEvent{})
	frame.SetActive(true)

	frame.OnPointerOut(&PointerEvent{})

	if frame.Hovered() {
		t.Error("Expected the hover to clear on pointer out")
	}
}

func TestFrame_StopsPropagation(t *testing.T) {
	frame := NewFrame(FrameOptions{ID: "a", Model: frameModel()})

	tests := []struct {
		name string
		fire func(*PointerEvent)
	}{
		{"over", frame.OnPointerOver},
		{"out", frame.OnPointerOut},
		{"down", frame.OnPointerDown},
		{"click", frame.OnPointerClick},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := &PointerEvent{}
			tt.fire(event)
			if !event.Stopped() {
				t.Error("Expected the frame to stop propagation")
			}
		})
	}
}

func TestFrame_Click_DelegatesToOwner(t *testing.T) {
	var toggled []string
	frame := NewFrame(FrameOptions{
		ID:       "left",
		Model:    frameModel(),
		OnToggle: func(id string) { toggled = append(toggled, id) },
	})

	frame.OnPointerClick(&PointerEvent{})

	if len(toggled) != 1 || toggled[0] != "left" {
		t.Errorf("Expected one toggle callback for \"left\", got %v", toggled)
	}
	if frame.Active() {
		t.Error("Expected the frame to leave its own state untouched")
	}
}

func TestFrame_Click_WithoutCallback(t *testing.T) {
	frame := NewFrame(FrameOptions{ID: "a", Model: frameModel()})

	// Must not panic.
	frame.OnPointerClick(&PointerEvent{})
}

func TestFrame_Deactivation_ClearsHover(t *testing.T) {
	frame := NewFrame(FrameOptions{ID: "a", Model: frameModel()})
	frame.OnPointerOver(&PointerEvent{})
	frame.SetActive(true)

	if !frame.Hovered() {
		t.Fatal("Expected the hover to survive activation")
	}

	frame.SetActive(false)

	if frame.Hovered() {
		t.Error("Expected deactivation to clear the hover")
	}
}

// ============================================================================
// Resource Lifetime
// ============================================================================

func TestFrame_SetImage_ReleasesPrevious(t *testing.T) {
	first := testTexture()
	second := testTexture()
	frame := NewFrame(FrameOptions{ID: "a", Model: frameModel(), Image: first})

	frame.SetImage(second)

	if !first.Released() {
		t.Error("Expected the replaced picture to be released")
	}
	if second.Released() {
		t.Error("Expected the new picture to stay live")
	}

	frame.SetImage(nil)

	if !second.Released() {
		t.Error("Expected clearing the picture to release it")
	}
	if frame.planeNode.Material != nil {
		t.Error("Expected the plane to be left bare")
	}
}

func TestFrame_Dispose_ReleasesAndDetaches(t *testing.T) {
	picture := testTexture()
	stage := NewStage(scene.NewCamera())
	frame := NewFrame(FrameOptions{
		ID:            "a",
		Model:         frameModel(),
		Image:         picture,
		TablePosition: mgl64.Vec3{1, 0, 2},
	})
	frame.AttachTo(stage)

	frame.Dispose()

	if !picture.Released() {
		t.Error("Expected Dispose to release the picture")
	}
	if frame.group.Parent() != nil {
		t.Error("Expected Dispose to detach the widget from the stage")
	}
	if len(stage.updaters) != 0 {
		t.Errorf("Expected no updaters left, got %d", len(stage.updaters))
	}
	if len(stage.handlers) != 0 {
		t.Errorf("Expected no handlers left, got %d", len(stage.handlers))
	}

	// A second Dispose must be a no-op.
	frame.Dispose()
}

func TestFrame_AttachTo_RoutesPointerAndStep(t *testing.T) {
	stage := NewStage(scene.NewCamera())
	anchor := mgl64.Vec3{0, 0, 0}
	frame := NewFrame(FrameOptions{ID: "a", Model: frameModel(), TablePosition: anchor})
	frame.AttachTo(stage)

	stage.PointerMove(rayAt(anchor))
	if !frame.Hovered() {
		t.Error("Expected the stage to route the hover to the frame")
	}

	frame.group.Transform.Position = mgl64.Vec3{0, 3, 0}
	for i := 0; i < 120; i++ {
		stage.Step(1.0 / 60)
	}
	lifted := anchor.Add(mgl64.Vec3{0, HOVER_LIFT, 0})
	if frame.group.Transform.Position.Sub(lifted).Len() > 1e-3 {
		t.Errorf("Expected the stepped pose to settle at %v, got %v", lifted, frame.group.Transform.Position)
	}
}
