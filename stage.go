package tableau

import "github.com/akmonengine/tableau/scene"

// Updater is stepped once per frame with the elapsed seconds and the
// stage camera.
type Updater interface {
	Update(dt float64, camera *scene.Camera)
}

// Stage owns the scene graph, the camera and the pointer routing state.
// Everything here runs on the host frame loop: Step and the Pointer entry
// points must be called from a single goroutine.
type Stage struct {
	Root   *scene.Node
	Camera *scene.Camera

	handlers map[*scene.Node]PointerHandler
	updaters []Updater

	hoverNode *scene.Node
	pressNode *scene.Node
}

// NewStage creates an empty stage viewed by the given camera.
func NewStage(camera *scene.Camera) *Stage {
	return &Stage{
		Root:     scene.NewNode("root"),
		Camera:   camera,
		handlers: make(map[*scene.Node]PointerHandler),
	}
}

// Add puts a node under the stage root.
func (stage *Stage) Add(node *scene.Node) {
	stage.Root.AddChild(node)
}

// Handle registers a pointer handler for a node. Events targeting the
// node or any of its descendants reach the handler, unless a handler
// closer to the target stops them first.
func (stage *Stage) Handle(node *scene.Node, handler PointerHandler) {
	stage.handlers[node] = handler
}

// Unhandle drops the handler registered for a node and forgets any
// pointer state aimed at it.
func (stage *Stage) Unhandle(node *scene.Node) {
	delete(stage.handlers, node)
	if stage.hoverNode == node {
		stage.hoverNode = nil
	}
	if stage.pressNode == node {
		stage.pressNode = nil
	}
}

// AddUpdater registers an updater to run on every Step.
func (stage *Stage) AddUpdater(updater Updater) {
	stage.updaters = append(stage.updaters, updater)
}

// RemoveUpdater removes an updater from the stage.
func (stage *Stage) RemoveUpdater(updater Updater) {
	key := -1
	for i, u := range stage.updaters {
		if u == updater {
			key = i
			break
		}
	}

	if key != -1 {
		stage.updaters = append(stage.updaters[:key], stage.updaters[key+1:]...)
	}
}

// Step advances every registered updater by dt seconds.
func (stage *Stage) Step(dt float64) {
	for _, updater := range stage.updaters {
		updater.Update(dt, stage.Camera)
	}
}
