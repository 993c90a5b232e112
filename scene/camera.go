package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera views the stage from its transform, looking down its local -Z
// axis with +Y up.
type Camera struct {
	Transform Transform
	FOV       float64 // vertical field of view, in radians
	Near      float64
	Far       float64
}

// NewCamera creates a camera at the origin with a 60 degree field of view.
func NewCamera() *Camera {
	return &Camera{
		Transform: NewTransform(),
		FOV:       mgl64.DegToRad(60),
		Near:      0.1,
		Far:       100,
	}
}

// Forward returns the world-space view direction.
func (camera *Camera) Forward() mgl64.Vec3 {
	return camera.Transform.Rotation.Rotate(mgl64.Vec3{0, 0, -1})
}

// LookAt places the camera at eye, oriented toward target with +Y up.
func (camera *Camera) LookAt(eye, target mgl64.Vec3) {
	camera.Transform.Position = eye

	forward := target.Sub(eye).Normalize()
	right := forward.Cross(mgl64.Vec3{0, 1, 0})
	if right.Len() < 1e-9 {
		right = mgl64.Vec3{1, 0, 0}
	}
	right = right.Normalize()
	up := right.Cross(forward)

	camera.Transform.Rotation = mgl64.Mat4ToQuat(mgl64.Mat4{
		right.X(), right.Y(), right.Z(), 0,
		up.X(), up.Y(), up.Z(), 0,
		-forward.X(), -forward.Y(), -forward.Z(), 0,
		0, 0, 0, 1,
	})
}

// ViewMatrix returns the world to camera matrix.
func (camera *Camera) ViewMatrix() mgl64.Mat4 {
	rotation := camera.Transform.Rotation.Inverse().Mat4()
	position := camera.Transform.Position

	return rotation.Mul4(mgl64.Translate3D(-position.X(), -position.Y(), -position.Z()))
}

// ProjMatrix returns the perspective projection for an aspect ratio.
func (camera *Camera) ProjMatrix(aspect float64) mgl64.Mat4 {
	return mgl64.Perspective(camera.FOV, aspect, camera.Near, camera.Far)
}

// ScreenRay builds the world-space picking ray through a pixel. The
// coordinates are in pixels with the origin at the top-left corner.
func (camera *Camera) ScreenRay(x, y float64, width, height int) Ray {
	aspect := float64(width) / float64(height)
	tanHalf := math.Tan(camera.FOV / 2)
	ndcX := 2*x/float64(width) - 1
	ndcY := 1 - 2*y/float64(height)

	local := mgl64.Vec3{ndcX * tanHalf * aspect, ndcY * tanHalf, -1}

	return Ray{
		Origin:    camera.Transform.Position,
		Direction: camera.Transform.Rotation.Rotate(local).Normalize(),
	}
}
