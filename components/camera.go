package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// CameraData is the camera pose plus the point it orbits.
type CameraData struct {
	Position mgl64.Vec3
	Forward  mgl64.Vec3 // unit view direction
	Target   mgl64.Vec3 // camera-follow target, kept in sync with the actor

	// Pending orbit input, consumed by the camera system
	DeltaAzimuth float64
	DeltaPolar   float64
	DeltaZoom    float64
}

var Camera = donburi.NewComponentType[CameraData]()

// LookAtTarget points Forward at Target. A camera sitting on its target keeps its heading.
func (c *CameraData) LookAtTarget() {
	dir := c.Target.Sub(c.Position)
	if dir.Len() < mgl64.Epsilon {
		return
	}
	c.Forward = dir.Normalize()
}
