package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// AABB represents an Axis-Aligned Bounding Box
type AABB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// AABBFromPoints computes the bounds of a point cloud. An empty cloud
// yields a zero box at the origin.
func AABBFromPoints(points []mgl64.Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}

	aabb := AABB{Min: points[0], Max: points[0]}
	for _, point := range points[1:] {
		for axis := 0; axis < 3; axis++ {
			aabb.Min[axis] = math.Min(aabb.Min[axis], point[axis])
			aabb.Max[axis] = math.Max(aabb.Max[axis], point[axis])
		}
	}

	return aabb
}

// ContainsPoint checks if a point is inside the AABB
func (aabb AABB) ContainsPoint(point mgl64.Vec3) bool {
	return point.X() >= aabb.Min.X() && point.X() <= aabb.Max.X() &&
		point.Y() >= aabb.Min.Y() && point.Y() <= aabb.Max.Y() &&
		point.Z() >= aabb.Min.Z() && point.Z() <= aabb.Max.Z()
}

// Center returns the midpoint of the box.
func (aabb AABB) Center() mgl64.Vec3 {
	return aabb.Min.Add(aabb.Max).Mul(0.5)
}

// Size returns the extent of the box along each axis.
func (aabb AABB) Size() mgl64.Vec3 {
	return aabb.Max.Sub(aabb.Min)
}

// Union returns the smallest box enclosing both boxes.
func (aabb AABB) Union(other AABB) AABB {
	union := aabb
	for axis := 0; axis < 3; axis++ {
		union.Min[axis] = math.Min(union.Min[axis], other.Min[axis])
		union.Max[axis] = math.Max(union.Max[axis], other.Max[axis])
	}

	return union
}

// Transformed returns the axis-aligned box enclosing the eight corners of
// the box after applying the given matrix.
func (aabb AABB) Transformed(matrix mgl64.Mat4) AABB {
	corners := [8]mgl64.Vec3{
		{aabb.Min.X(), aabb.Min.Y(), aabb.Min.Z()},
		{aabb.Max.X(), aabb.Min.Y(), aabb.Min.Z()},
		{aabb.Min.X(), aabb.Max.Y(), aabb.Min.Z()},
		{aabb.Max.X(), aabb.Max.Y(), aabb.Min.Z()},
		{aabb.Min.X(), aabb.Min.Y(), aabb.Max.Z()},
		{aabb.Max.X(), aabb.Min.Y(), aabb.Max.Z()},
		{aabb.Min.X(), aabb.Max.Y(), aabb.Max.Z()},
		{aabb.Max.X(), aabb.Max.Y(), aabb.Max.Z()},
	}

	world := matrix.Mul4x1(corners[0].Vec4(1)).Vec3()
	transformed := AABB{Min: world, Max: world}
	for _, corner := range corners[1:] {
		world = matrix.Mul4x1(corner.Vec4(1)).Vec3()
		for axis := 0; axis < 3; axis++ {
			transformed.Min[axis] = math.Min(transformed.Min[axis], world[axis])
			transformed.Max[axis] = math.Max(transformed.Max[axis], world[axis])
		}
	}

	return transformed
}
