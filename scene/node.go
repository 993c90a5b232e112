package scene

import "github.com/go-gl/mathgl/mgl64"

// Node is one element of the scene graph: a transform, optional drawable
// geometry and a list of children. Nodes are mutated from the frame loop
// only, there is a single writer at any time.
type Node struct {
	Name      string
	Transform Transform
	Mesh      *Mesh
	Material  *Material
	Visible   bool

	parent   *Node
	children []*Node
}

// NewNode creates a visible, empty node with an identity transform.
func NewNode(name string) *Node {
	return &Node{
		Name:      name,
		Transform: NewTransform(),
		Visible:   true,
	}
}

// Parent returns the containing node, nil at the root.
func (node *Node) Parent() *Node {
	return node.parent
}

// Children returns the direct children. The slice is owned by the node.
func (node *Node) Children() []*Node {
	return node.children
}

// AddChild moves child under node, detaching it from any previous parent.
func (node *Node) AddChild(child *Node) {
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = node
	node.children = append(node.children, child)
}

// RemoveChild detaches child from node.
func (node *Node) RemoveChild(child *Node) {
	key := -1
	for i, c := range node.children {
		if c == child {
			key = i
			break
		}
	}

	if key != -1 {
		node.children = append(node.children[:key], node.children[key+1:]...)
		child.parent = nil
	}
}

// WorldMatrix composes the transforms from the root down to node.
func (node *Node) WorldMatrix() mgl64.Mat4 {
	matrix := node.Transform.Mat4()
	if node.parent != nil {
		return node.parent.WorldMatrix().Mul4(matrix)
	}

	return matrix
}

// Visit walks the subtree depth-first, skipping invisible branches. The
// callback returns false to abort the walk.
func (node *Node) Visit(fn func(*Node) bool) bool {
	if !node.Visible {
		return true
	}
	if !fn(node) {
		return false
	}
	for _, child := range node.children {
		if !child.Visit(fn) {
			return false
		}
	}

	return true
}

// WorldAABB returns the world-space bounds of every visible mesh in the
// subtree. The second value is false when the subtree holds no geometry.
func (node *Node) WorldAABB() (AABB, bool) {
	var bounds AABB
	found := false
	node.Visit(func(child *Node) bool {
		if child.Mesh == nil {
			return true
		}
		box := child.Mesh.BoundingBox().Transformed(child.WorldMatrix())
		if !found {
			bounds = box
			found = true
		} else {
			bounds = bounds.Union(box)
		}

		return true
	})

	return bounds, found
}
