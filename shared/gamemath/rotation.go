package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// AngleBetween returns the angle of the rotation taking a to b, in [0, pi].
func AngleBetween(a, b mgl64.Quat) float64 {
	d := math.Abs(a.Dot(b))
	return 2 * math.Acos(Clamp(d, -1, 1))
}

// RotateTowards turns from toward to by at most step radians.
// Once the remaining angle is within step the result is exactly to.
func RotateTowards(from, to mgl64.Quat, step float64) mgl64.Quat {
	angle := AngleBetween(from, to)
	if angle == 0 {
		return from
	}
	t := math.Min(1, step/angle)
	if t == 1 {
		return to
	}
	// q and -q encode the same rotation; slerp along the shorter arc.
	if from.Dot(to) < 0 {
		to = to.Scale(-1)
	}
	return mgl64.QuatSlerp(from, to, t).Normalize()
}

// Yaw extracts the heading of q around Up, measured from +Z toward +X.
func Yaw(q mgl64.Quat) float64 {
	facing := q.Rotate(mgl64.Vec3{0, 0, 1})
	return math.Atan2(facing.X(), facing.Z())
}
