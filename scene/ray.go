package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Ray is a half-line used for picking, with a normalized direction.
type Ray struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
}

// At returns the point at the given distance along the ray.
func (ray Ray) At(distance float64) mgl64.Vec3 {
	return ray.Origin.Add(ray.Direction.Mul(distance))
}

// IntersectAABB returns the distance along the ray to the nearest face of
// the box. A ray starting inside the box reports distance 0.
func (ray Ray) IntersectAABB(aabb AABB) (float64, bool) {
	if aabb.ContainsPoint(ray.Origin) {
		return 0, true
	}

	tMin := math.Inf(-1)
	tMax := math.Inf(1)
	for axis := 0; axis < 3; axis++ {
		if ray.Direction[axis] == 0 {
			if ray.Origin[axis] < aabb.Min[axis] || ray.Origin[axis] > aabb.Max[axis] {
				return 0, false
			}
			continue
		}

		tNear := (aabb.Min[axis] - ray.Origin[axis]) / ray.Direction[axis]
		tFar := (aabb.Max[axis] - ray.Origin[axis]) / ray.Direction[axis]
		if tNear > tFar {
			tNear, tFar = tFar, tNear
		}
		tMin = math.Max(tMin, tNear)
		tMax = math.Min(tMax, tFar)
	}

	if tMax < tMin || tMax < 0 {
		return 0, false
	}
	if tMin < 0 {
		return 0, true
	}

	return tMin, true
}
