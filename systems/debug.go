package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/strider/components"
	cfg "github.com/automoto/strider/config"
	"github.com/automoto/strider/shared/gamemath"
	"github.com/automoto/strider/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/yohamta/donburi/ecs"
)

var (
	axisX       = color.RGBA{255, 60, 60, 255}
	axisZ       = color.RGBA{60, 120, 255, 255}
	headingRay  = color.RGBA{0, 255, 255, 255} // camera to actor
	moveDirRay  = color.RGBA{0, 255, 0, 255}   // where input would move the actor
	debugLength = 1.5
)

// DrawDebug draws the world axes, the camera heading and the current move
// direction, plus a numeric readout. Toggled with F3.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settingsEntry, ok := components.Settings.First(ecs.World)
	if !ok || !components.Settings.Get(settingsEntry).Debug {
		return
	}
	cameraEntry, ok := tags.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	view := sceneViewport(camera, width, height)

	strokeSegment(screen, view, mgl64.Vec3{}, mgl64.Vec3{debugLength, 0, 0}, axisX)
	strokeSegment(screen, view, mgl64.Vec3{}, mgl64.Vec3{0, 0, debugLength}, axisZ)

	actorEntry, ok := tags.Actor.First(ecs.World)
	if !ok {
		return
	}
	transform := components.Transform.Get(actorEntry)
	heading := gamemath.CameraHeading(transform.Position, camera.Position)
	feet := transform.Position
	strokeSegment(screen, view, feet,
		feet.Add(gamemath.YawRotation(heading).Rotate(mgl64.Vec3{0, 0, debugLength})), headingRay)

	if inputEntry, ok := components.Input.First(ecs.World); ok {
		in := components.Input.Get(inputEntry)
		offset, ok := gamemath.DirectionOffset(
			in.Pressed(cfg.ActionForward),
			in.Pressed(cfg.ActionBackward),
			in.Pressed(cfg.ActionLeft),
			in.Pressed(cfg.ActionRight),
		)
		if ok {
			if dir, ok := gamemath.MoveDirection(camera.Forward, offset); ok {
				strokeSegment(screen, view, feet, feet.Add(dir.Mul(debugLength)), moveDirRay)
			}
		}
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
		"TPS %.0f  pos (%.2f, %.2f, %.2f)  yaw %.1f°  heading %.1f°  cam dist %.2f",
		ebiten.ActualTPS(),
		feet.X(), feet.Y(), feet.Z(),
		mgl64.RadToDeg(gamemath.Yaw(transform.Rotation)),
		mgl64.RadToDeg(heading),
		camera.Position.Sub(camera.Target).Len(),
	), int(cfg.Overlay.Margin), int(cfg.Overlay.StatusOffsetY+cfg.Overlay.Margin))
}
