package tableau

import (
	"math"

	"github.com/akmonengine/tableau/scene"
	"github.com/go-gl/mathgl/mgl64"
)

// ============================================================================
// Test Helpers
// ============================================================================

func near(a, b, epsilon float64) bool {
	return math.Abs(a-b) <= epsilon
}

func vec3Near(a, b mgl64.Vec3, epsilon float64) bool {
	return near(a.X(), b.X(), epsilon) && near(a.Y(), b.Y(), epsilon) && near(a.Z(), b.Z(), epsilon)
}

// eventRecorder captures every pointer event routed to a node.
type eventRecorder struct {
	overs  []*PointerEvent
	outs   []*PointerEvent
	downs  []*PointerEvent
	clicks []*PointerEvent
	stop   bool
}

func (recorder *eventRecorder) OnPointerOver(event *PointerEvent) {
	recorder.overs = append(recorder.overs, event)
	if recorder.stop {
		event.StopPropagation()
	}
}

func (recorder *eventRecorder) OnPointerOut(event *PointerEvent) {
	recorder.outs = append(recorder.outs, event)
	if recorder.stop {
		event.StopPropagation()
	}
}

func (recorder *eventRecorder) OnPointerDown(event *PointerEvent) {
	recorder.downs = append(recorder.downs, event)
	if recorder.stop {
		event.StopPropagation()
	}
}

func (recorder *eventRecorder) OnPointerClick(event *PointerEvent) {
	recorder.clicks = append(recorder.clicks, event)
	if recorder.stop {
		event.StopPropagation()
	}
}

// boxNode creates a handler target: a unit cube mesh at a position.
func boxNode(name string, position mgl64.Vec3) *scene.Node {
	node := scene.NewNode(name)
	node.Mesh = scene.NewBox(1, 1, 1)
	node.Transform.Position = position

	return node
}

// rayAt aims a ray straight down -Z from in front of a position.
func rayAt(position mgl64.Vec3) scene.Ray {
	return scene.Ray{
		Origin:    position.Add(mgl64.Vec3{0, 0, 10}),
		Direction: mgl64.Vec3{0, 0, -1},
	}
}
