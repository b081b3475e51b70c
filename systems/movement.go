package systems

import (
	"github.com/automoto/strider/components"
	cfg "github.com/automoto/strider/config"
	"github.com/automoto/strider/shared/gamemath"
	"github.com/automoto/strider/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMovement moves and turns the actor relative to the camera.
func UpdateMovement(ecs *ecs.ECS) {
	cameraEntry, ok := tags.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	input := GetInput(ecs)
	dt := GetClock(ecs).DeltaTime

	tags.Actor.Each(ecs.World, func(e *donburi.Entry) {
		actor := components.Actor.Get(e)
		transform := components.Transform.Get(e)
		actor.Moved = MoveActor(input, transform, camera, dt)
	})
}

// MoveActor applies one tick of movement and reports whether the actor was
// updated. Without a directional intent nothing changes.
func MoveActor(input *components.InputData, actor *components.TransformData, camera *components.CameraData, dt float64) bool {
	offset, ok := gamemath.DirectionOffset(
		input.Pressed(cfg.ActionForward),
		input.Pressed(cfg.ActionBackward),
		input.Pressed(cfg.ActionLeft),
		input.Pressed(cfg.ActionRight),
	)
	if !ok {
		return false
	}

	heading := gamemath.CameraHeading(actor.Position, camera.Position)
	target := gamemath.YawRotation(heading + offset)
	actor.Rotation = gamemath.RotateTowards(actor.Rotation, target, cfg.Movement.TurnStep)

	// A camera looking straight down has no horizontal forward: turn in place.
	dir, ok := gamemath.MoveDirection(camera.Forward, offset)
	if ok {
		step := dir.Mul(moveSpeed(input) * dt)
		displacement := mgl64.Vec3{step.X(), 0, step.Z()}
		actor.Position = actor.Position.Add(displacement)
		// The camera translates with the actor so the orbit angle holds.
		camera.Position = camera.Position.Add(displacement)
	}

	UpdateFollowTarget(actor, camera)
	return true
}

func moveSpeed(input *components.InputData) float64 {
	speed := cfg.Movement.Speed
	if input.Pressed(cfg.ActionSprint) {
		speed *= cfg.Movement.SprintMultiplier
	}
	return speed
}

// UpdateFollowTarget places the camera-follow target above the actor.
func UpdateFollowTarget(actor *components.TransformData, camera *components.CameraData) {
	camera.Target = mgl64.Vec3{
		actor.Position.X(),
		actor.Position.Y() + cfg.Movement.FollowHeight,
		actor.Position.Z(),
	}
}
