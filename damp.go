package tableau

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// DampFactor returns the fraction of the remaining distance covered in dt
// seconds under an exponential decay of the given rate: 1 - e^(-rate*dt).
// The factor is 0 at dt = 0 and approaches 1 for long frames, so motion
// converges at the same speed whatever the tick length.
func DampFactor(rate, dt float64) float64 {
	return 1 - math.Exp(-rate*dt)
}

// Damp moves current toward target by the frame-rate independent factor.
func Damp(current, target, rate, dt float64) float64 {
	return current + (target-current)*DampFactor(rate, dt)
}

// DampVec3 moves current toward target component-wise.
func DampVec3(current, target mgl64.Vec3, rate, dt float64) mgl64.Vec3 {
	return current.Add(target.Sub(current).Mul(DampFactor(rate, dt)))
}

// DampQuat rotates current toward target along the shortest arc. The
// target is negated when the quaternions sit in opposite hemispheres, as
// both signs encode the same orientation.
func DampQuat(current, target mgl64.Quat, rate, dt float64) mgl64.Quat {
	if current.Dot(target) < 0 {
		target = target.Scale(-1)
	}

	return mgl64.QuatSlerp(current, target, DampFactor(rate, dt))
}
