package factory

import (
	"github.com/automoto/strider/archetypes"
	"github.com/automoto/strider/components"
	cfg "github.com/automoto/strider/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera spawns the orbit camera at its configured start, looking at the origin.
func CreateCamera(ecs *ecs.ECS) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	data := &components.CameraData{
		Position: mgl64.Vec3(cfg.Camera.Start),
		Forward:  mgl64.Vec3{0, 0, -1},
	}
	data.LookAtTarget()
	components.Camera.Set(camera, data)
	return camera
}
