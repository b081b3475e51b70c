package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Up is the world vertical axis. All headings are yaw rotations around it.
var Up = mgl64.Vec3{0, 1, 0}

// DirectionOffset returns the yaw offset from camera-forward implied by the
// directional intents. Forward wins over backward, and within each the left
// flag wins over right. ok is false when no directional intent is set.
func DirectionOffset(forward, backward, left, right bool) (offset float64, ok bool) {
	switch {
	case forward:
		if left {
			return math.Pi / 4, true
		}
		if right {
			return -math.Pi / 4, true
		}
		return 0, true
	case backward:
		if left {
			return math.Pi/4 + math.Pi/2, true
		}
		if right {
			return -math.Pi/4 - math.Pi/2, true
		}
		return math.Pi, true
	case left:
		return math.Pi / 2, true
	case right:
		return -math.Pi / 2, true
	}
	return 0, false
}

// CameraHeading returns the yaw from the camera to the actor in the horizontal
// plane. Coincident X/Z positions yield 0.
func CameraHeading(actor, camera mgl64.Vec3) float64 {
	return math.Atan2(actor.X()-camera.X(), actor.Z()-camera.Z())
}

// YawRotation builds the rotation of yaw radians around Up.
func YawRotation(yaw float64) mgl64.Quat {
	return mgl64.QuatRotate(yaw, Up)
}

// FlatForward drops the vertical component of forward and normalizes it.
// A vertical or zero forward has no horizontal direction and returns ok=false.
func FlatForward(forward mgl64.Vec3) (mgl64.Vec3, bool) {
	flat := mgl64.Vec3{forward.X(), 0, forward.Z()}
	if flat.Len() < mgl64.Epsilon {
		return mgl64.Vec3{}, false
	}
	return flat.Normalize(), true
}

// MoveDirection rotates the flattened camera forward by offset around Up.
func MoveDirection(cameraForward mgl64.Vec3, offset float64) (mgl64.Vec3, bool) {
	flat, ok := FlatForward(cameraForward)
	if !ok {
		return mgl64.Vec3{}, false
	}
	return YawRotation(offset).Rotate(flat), true
}
