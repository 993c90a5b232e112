package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ============================================================================
// Test Helpers
// ============================================================================

func near(a, b, epsilon float64) bool {
	return math.Abs(a-b) <= epsilon
}

func vec3Near(a, b mgl64.Vec3, epsilon float64) bool {
	return near(a.X(), b.X(), epsilon) && near(a.Y(), b.Y(), epsilon) && near(a.Z(), b.Z(), epsilon)
}
