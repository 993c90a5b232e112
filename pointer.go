package tableau

import (
	"github.com/akmonengine/tableau/scene"
	"github.com/go-gl/mathgl/mgl64"
)

// PointerKind identifies the kind of pointer event
type PointerKind int

const (
	POINTER_OVER PointerKind = iota
	POINTER_OUT
	POINTER_DOWN
	POINTER_CLICK
)

// PointerEvent carries one pointer interaction aimed at a stage node.
// Events bubble from the hit node toward the root until a handler calls
// StopPropagation.
type PointerEvent struct {
	Kind     PointerKind
	Target   *scene.Node
	Point    mgl64.Vec3
	Distance float64

	stopped bool
}

// StopPropagation keeps the event from reaching handlers on ancestors of
// the current node.
func (event *PointerEvent) StopPropagation() {
	event.stopped = true
}

// Stopped reports whether propagation has been stopped.
func (event *PointerEvent) Stopped() bool {
	return event.stopped
}

// PointerHandler receives the pointer events routed to a registered node
// or to any of its descendants.
type PointerHandler interface {
	OnPointerOver(event *PointerEvent)
	OnPointerOut(event *PointerEvent)
	OnPointerDown(event *PointerEvent)
	OnPointerClick(event *PointerEvent)
}

// dispatch bubbles an event from its target toward the root.
func (stage *Stage) dispatch(event *PointerEvent) {
	for node := event.Target; node != nil; node = node.Parent() {
		handler, ok := stage.handlers[node]
		if !ok {
			continue
		}

		switch event.Kind {
		case POINTER_OVER:
			handler.OnPointerOver(event)
		case POINTER_OUT:
			handler.OnPointerOut(event)
		case POINTER_DOWN:
			handler.OnPointerDown(event)
		case POINTER_CLICK:
			handler.OnPointerClick(event)
		}

		if event.stopped {
			return
		}
	}
}

// PointerMove retargets the hover from the current pointer ray. Leaving
// the previous node emits POINTER_OUT, entering a new one POINTER_OVER.
func (stage *Stage) PointerMove(ray scene.Ray) {
	var target *scene.Node
	hit, ok := stage.pick(ray)
	if ok {
		target = hit.node
	}

	if target == stage.hoverNode {
		return
	}

	if stage.hoverNode != nil {
		stage.dispatch(&PointerEvent{Kind: POINTER_OUT, Target: stage.hoverNode})
	}
	if target != nil {
		stage.dispatch(&PointerEvent{Kind: POINTER_OVER, Target: target, Point: hit.point, Distance: hit.distance})
	}
	stage.hoverNode = target
}

// PointerDown starts a press on the node under the ray.
func (stage *Stage) PointerDown(ray scene.Ray) {
	hit, ok := stage.pick(ray)
	if !ok {
		stage.pressNode = nil
		return
	}

	stage.pressNode = hit.node
	stage.dispatch(&PointerEvent{Kind: POINTER_DOWN, Target: hit.node, Point: hit.point, Distance: hit.distance})
}

// PointerUp completes a press. Releasing over the pressed node emits a
// POINTER_CLICK on it.
func (stage *Stage) PointerUp(ray scene.Ray) {
	hit, ok := stage.pick(ray)
	if ok && stage.pressNode == hit.node {
		stage.dispatch(&PointerEvent{Kind: POINTER_CLICK, Target: hit.node, Point: hit.point, Distance: hit.distance})
	}
	stage.pressNode = nil
}
