package scene

import "github.com/go-gl/mathgl/mgl64"

// Transform represents a position, orientation and scale in 3D space
type Transform struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
	Scale    mgl64.Vec3
}

// NewTransform creates an identity transform
func NewTransform() Transform {
	return Transform{
		Position: mgl64.Vec3{0, 0, 0},
		Rotation: mgl64.QuatIdent(),
		Scale:    mgl64.Vec3{1, 1, 1},
	}
}

// Mat4 composes the transform into a matrix: scale, then rotation, then
// translation.
func (t Transform) Mat4() mgl64.Mat4 {
	m := t.Rotation.Mat4().Mul4(mgl64.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z()))
	return mgl64.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z()).Mul4(m)
}

// Apply transforms a point from local space into the parent space.
func (t Transform) Apply(point mgl64.Vec3) mgl64.Vec3 {
	scaled := mgl64.Vec3{point.X() * t.Scale.X(), point.Y() * t.Scale.Y(), point.Z() * t.Scale.Z()}
	return t.Rotation.Rotate(scaled).Add(t.Position)
}
