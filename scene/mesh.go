package scene

import "github.com/go-gl/mathgl/mgl64"

// Triangle indexes the attribute arrays of a mesh for one face corner by
// corner. Normal and UV indices are -1 when the attribute is absent.
type Triangle struct {
	V [3]int
	N [3]int
	T [3]int
}

// Mesh holds indexed triangle geometry. The attribute slices are shared
// by every node referencing the mesh and must not be mutated once built.
type Mesh struct {
	Positions []mgl64.Vec3
	Normals   []mgl64.Vec3
	UVs       []mgl64.Vec2
	Tris      []Triangle

	bounds      AABB
	boundsValid bool
}

// BoundingBox returns the bounds of all mesh positions. The result is
// cached on first call; callers sharing a mesh between goroutines should
// warm it before publishing.
func (mesh *Mesh) BoundingBox() AABB {
	if !mesh.boundsValid {
		mesh.bounds = AABBFromPoints(mesh.Positions)
		mesh.boundsValid = true
	}

	return mesh.bounds
}

// appendQuad adds the rectangle (a, b, c, d), given in counter-clockwise
// order seen from the front, as two triangles with a shared flat normal.
// UVs span the quad with v growing from a toward d.
func (mesh *Mesh) appendQuad(a, b, c, d, normal mgl64.Vec3) {
	base := len(mesh.Positions)
	mesh.Positions = append(mesh.Positions, a, b, c, d)
	mesh.UVs = append(mesh.UVs, mgl64.Vec2{0, 0}, mgl64.Vec2{1, 0}, mgl64.Vec2{1, 1}, mgl64.Vec2{0, 1})
	normalIndex := len(mesh.Normals)
	mesh.Normals = append(mesh.Normals, normal)

	mesh.Tris = append(mesh.Tris,
		Triangle{
			V: [3]int{base, base + 1, base + 2},
			N: [3]int{normalIndex, normalIndex, normalIndex},
			T: [3]int{base, base + 1, base + 2},
		},
		Triangle{
			V: [3]int{base, base + 2, base + 3},
			N: [3]int{normalIndex, normalIndex, normalIndex},
			T: [3]int{base, base + 2, base + 3},
		},
	)
}

// NewPlane builds a unit quad in the XY plane, centred on the origin and
// facing +Z. Scale the node to stretch it.
func NewPlane() *Mesh {
	mesh := &Mesh{}
	mesh.appendQuad(
		mgl64.Vec3{-0.5, -0.5, 0},
		mgl64.Vec3{0.5, -0.5, 0},
		mgl64.Vec3{0.5, 0.5, 0},
		mgl64.Vec3{-0.5, 0.5, 0},
		mgl64.Vec3{0, 0, 1},
	)

	return mesh
}

// NewBox builds a box of the given full extents, centred on the origin.
func NewBox(width, height, depth float64) *Mesh {
	x := width / 2
	y := height / 2
	z := depth / 2

	mesh := &Mesh{}
	// front, back
	mesh.appendQuad(mgl64.Vec3{-x, -y, z}, mgl64.Vec3{x, -y, z}, mgl64.Vec3{x, y, z}, mgl64.Vec3{-x, y, z}, mgl64.Vec3{0, 0, 1})
	mesh.appendQuad(mgl64.Vec3{x, -y, -z}, mgl64.Vec3{-x, -y, -z}, mgl64.Vec3{-x, y, -z}, mgl64.Vec3{x, y, -z}, mgl64.Vec3{0, 0, -1})
	// right, left
	mesh.appendQuad(mgl64.Vec3{x, -y, z}, mgl64.Vec3{x, -y, -z}, mgl64.Vec3{x, y, -z}, mgl64.Vec3{x, y, z}, mgl64.Vec3{1, 0, 0})
	mesh.appendQuad(mgl64.Vec3{-x, -y, -z}, mgl64.Vec3{-x, -y, z}, mgl64.Vec3{-x, y, z}, mgl64.Vec3{-x, y, -z}, mgl64.Vec3{-1, 0, 0})
	// top, bottom
	mesh.appendQuad(mgl64.Vec3{-x, y, z}, mgl64.Vec3{x, y, z}, mgl64.Vec3{x, y, -z}, mgl64.Vec3{-x, y, -z}, mgl64.Vec3{0, 1, 0})
	mesh.appendQuad(mgl64.Vec3{-x, -y, -z}, mgl64.Vec3{x, -y, -z}, mgl64.Vec3{x, -y, z}, mgl64.Vec3{-x, -y, z}, mgl64.Vec3{0, -1, 0})

	return mesh
}

// NewPictureFrame builds a rectangular picture frame standing in the XY
// plane: four border slats around an opening and a backing panel behind
// it. Width and height are the outer extents, border is the slat width
// and depth the frame thickness along Z.
func NewPictureFrame(width, height, depth, border float64) *Mesh {
	x := width / 2
	y := height / 2
	ix := x - border
	iy := y - border
	z := depth / 2

	mesh := &Mesh{}
	front := mgl64.Vec3{0, 0, 1}
	// front slats: bottom, top, left, right
	mesh.appendQuad(mgl64.Vec3{-x, -y, z}, mgl64.Vec3{x, -y, z}, mgl64.Vec3{x, -iy, z}, mgl64.Vec3{-x, -iy, z}, front)
	mesh.appendQuad(mgl64.Vec3{-x, iy, z}, mgl64.Vec3{x, iy, z}, mgl64.Vec3{x, y, z}, mgl64.Vec3{-x, y, z}, front)
	mesh.appendQuad(mgl64.Vec3{-x, -iy, z}, mgl64.Vec3{-ix, -iy, z}, mgl64.Vec3{-ix, iy, z}, mgl64.Vec3{-x, iy, z}, front)
	mesh.appendQuad(mgl64.Vec3{ix, -iy, z}, mgl64.Vec3{x, -iy, z}, mgl64.Vec3{x, iy, z}, mgl64.Vec3{ix, iy, z}, front)
	// outer sides: right, left, top, bottom
	mesh.appendQuad(mgl64.Vec3{x, -y, z}, mgl64.Vec3{x, -y, -z}, mgl64.Vec3{x, y, -z}, mgl64.Vec3{x, y, z}, mgl64.Vec3{1, 0, 0})
	mesh.appendQuad(mgl64.Vec3{-x, -y, -z}, mgl64.Vec3{-x, -y, z}, mgl64.Vec3{-x, y, z}, mgl64.Vec3{-x, y, -z}, mgl64.Vec3{-1, 0, 0})
	mesh.appendQuad(mgl64.Vec3{-x, y, z}, mgl64.Vec3{x, y, z}, mgl64.Vec3{x, y, -z}, mgl64.Vec3{-x, y, -z}, mgl64.Vec3{0, 1, 0})
	mesh.appendQuad(mgl64.Vec3{-x, -y, -z}, mgl64.Vec3{x, -y, -z}, mgl64.Vec3{x, -y, z}, mgl64.Vec3{-x, -y, z}, mgl64.Vec3{0, -1, 0})
	// opening sides: right, left, top, bottom, facing inward
	mesh.appendQuad(mgl64.Vec3{ix, -iy, -z}, mgl64.Vec3{ix, -iy, z}, mgl64.Vec3{ix, iy, z}, mgl64.Vec3{ix, iy, -z}, mgl64.Vec3{-1, 0, 0})
	mesh.appendQuad(mgl64.Vec3{-ix, -iy, z}, mgl64.Vec3{-ix, -iy, -z}, mgl64.Vec3{-ix, iy, -z}, mgl64.Vec3{-ix, iy, z}, mgl64.Vec3{1, 0, 0})
	mesh.appendQuad(mgl64.Vec3{-ix, iy, -z}, mgl64.Vec3{ix, iy, -z}, mgl64.Vec3{ix, iy, z}, mgl64.Vec3{-ix, iy, z}, mgl64.Vec3{0, -1, 0})
	mesh.appendQuad(mgl64.Vec3{-ix, -iy, z}, mgl64.Vec3{ix, -iy, z}, mgl64.Vec3{ix, -iy, -z}, mgl64.Vec3{-ix, -iy, -z}, mgl64.Vec3{0, 1, 0})
	// backing panel
	mesh.appendQuad(mgl64.Vec3{x, -y, -z}, mgl64.Vec3{-x, -y, -z}, mgl64.Vec3{-x, y, -z}, mgl64.Vec3{x, y, -z}, mgl64.Vec3{0, 0, -1})

	return mesh
}
