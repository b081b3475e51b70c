package systems

import (
	"math"

	"github.com/automoto/strider/components"
	cfg "github.com/automoto/strider/config"
	"github.com/automoto/strider/shared/gamemath"
	"github.com/automoto/strider/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Last cursor position while dragging
var (
	dragging     bool
	lastX, lastY int
)

// UpdateOrbitInput turns mouse drags and wheel motion into pending orbit deltas.
func UpdateOrbitInput(ecs *ecs.ECS) {
	cameraEntry, ok := tags.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	x, y := ebiten.CursorPosition()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if dragging {
			camera.DeltaAzimuth += float64(x-lastX) * cfg.Camera.OrbitSensitivity
			camera.DeltaPolar += float64(y-lastY) * cfg.Camera.OrbitSensitivity
		}
		dragging = true
	} else {
		dragging = false
	}
	lastX, lastY = x, y

	_, wheelY := ebiten.Wheel()
	camera.DeltaZoom -= wheelY * cfg.Camera.ZoomStep
}

// UpdateCamera applies pending orbit input around the follow target and
// re-aims the camera at it. Runs after movement so it sees the new target.
func UpdateCamera(ecs *ecs.ECS) {
	cameraEntry, ok := tags.Camera.First(ecs.World)
	if !ok {
		return
	}
	Orbit(components.Camera.Get(cameraEntry))
}

// Orbit rotates the camera around its target by the pending deltas, keeping
// the polar angle and distance within the configured limits.
func Orbit(camera *components.CameraData) {
	if camera.DeltaAzimuth != 0 || camera.DeltaPolar != 0 || camera.DeltaZoom != 0 {
		offset := camera.Position.Sub(camera.Target)
		radius := offset.Len()
		if radius > mgl64.Epsilon {
			azimuth := math.Atan2(offset.X(), offset.Z()) - camera.DeltaAzimuth
			polar := math.Acos(gamemath.Clamp(offset.Y()/radius, -1, 1)) - camera.DeltaPolar
			polar = gamemath.Clamp(polar, cfg.Camera.MinPolar, cfg.Camera.MaxPolar)
			radius = gamemath.Clamp(radius+camera.DeltaZoom, cfg.Camera.MinDistance, cfg.Camera.MaxDistance)

			sinPolar := math.Sin(polar)
			camera.Position = camera.Target.Add(mgl64.Vec3{
				radius * sinPolar * math.Sin(azimuth),
				radius * math.Cos(polar),
				radius * sinPolar * math.Cos(azimuth),
			})
		}
		camera.DeltaAzimuth, camera.DeltaPolar, camera.DeltaZoom = 0, 0, 0
	}
	camera.LookAtTarget()
}
