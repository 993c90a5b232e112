package tableau

import (
	"math"

	"github.com/akmonengine/tableau/scene"
	"github.com/go-gl/mathgl/mgl64"
)

type pointerHit struct {
	node     *scene.Node
	point    mgl64.Vec3
	distance float64
	depth    int
}

// pick returns the nearest handler node whose world bounds the ray
// crosses. Only nodes visible all the way up to their root qualify. An
// ancestor and a descendant can share the same bounds and hit distance;
// the deeper node wins so events start at the most specific target and
// bubble up from there.
func (stage *Stage) pick(ray scene.Ray) (pointerHit, bool) {
	best := pointerHit{distance: math.Inf(1), depth: -1}
	found := false

	for node := range stage.handlers {
		if !visibleInTree(node) {
			continue
		}
		bounds, ok := node.WorldAABB()
		if !ok {
			continue
		}
		distance, ok := ray.IntersectAABB(bounds)
		if !ok {
			continue
		}
		depth := nodeDepth(node)
		if distance > best.distance || (distance == best.distance && depth <= best.depth) {
			continue
		}

		best = pointerHit{node: node, point: ray.At(distance), distance: distance, depth: depth}
		found = true
	}

	return best, found
}

func nodeDepth(node *scene.Node) int {
	depth := 0
	for n := node.Parent(); n != nil; n = n.Parent() {
		depth++
	}

	return depth
}

func visibleInTree(node *scene.Node) bool {
	for n := node; n != nil; n = n.Parent() {
		if !n.Visible {
			return false
		}
	}

	return true
}
