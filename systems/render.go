package systems

import (
	"image/color"

	"github.com/automoto/strider/components"
	cfg "github.com/automoto/strider/config"
	"github.com/automoto/strider/shared/gamemath"
	"github.com/automoto/strider/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	actorHeight  = 1.0 // world units, before model scale
	facingLength = 0.6
	markerSize   = 4
)

// Fallback tint for actors whose model has not loaded
var unloadedColor = color.RGBA{R: 128, G: 128, B: 128, A: 255}

// DrawScene renders the ground grid and every actor from the camera's view.
func DrawScene(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := tags.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	view := sceneViewport(camera, width, height)

	drawGround(screen, view)

	tags.Actor.Each(ecs.World, func(e *donburi.Entry) {
		drawActor(screen, view, e)
	})

	// Follow target marker
	if x, y, ok := view.Project(camera.Target); ok {
		vector.DrawFilledRect(screen, float32(x)-markerSize/2, float32(y)-markerSize/2,
			markerSize, markerSize, cfg.BrightYellow, false)
	}
}

func drawGround(screen *ebiten.Image, view gamemath.Viewport) {
	for _, line := range groundLines() {
		strokeSegment(screen, view, line[0], line[1], cfg.Ground.LineColor)
	}
}

// groundLines returns the grid on the y=0 plane, one line per spacing step
// along each axis.
func groundLines() [][2]mgl64.Vec3 {
	extent := float64(cfg.Ground.HalfExtent)
	var lines [][2]mgl64.Vec3
	for d := -extent; d <= extent; d += cfg.Ground.Spacing {
		lines = append(lines,
			[2]mgl64.Vec3{{d, 0, -extent}, {d, 0, extent}},
			[2]mgl64.Vec3{{-extent, 0, d}, {extent, 0, d}},
		)
	}
	return lines
}

// sceneViewport is the camera's view for a screen of the given size.
func sceneViewport(camera *components.CameraData, width, height int) gamemath.Viewport {
	return gamemath.NewViewport(camera.Position, camera.Forward,
		cfg.Camera.FieldOfView, cfg.Camera.Near, cfg.Camera.Far, width, height)
}

func strokeSegment(screen *ebiten.Image, view gamemath.Viewport, a, b mgl64.Vec3, clr color.Color) {
	x0, y0, x1, y1, ok := view.ProjectSegment(a, b)
	if !ok {
		return
	}
	vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, clr, false)
}

// drawActor draws the actor as a billboarded body sized by perspective, a
// facing stroke and the current clip's root bob.
func drawActor(screen *ebiten.Image, view gamemath.Viewport, e *donburi.Entry) {
	transform := components.Transform.Get(e)
	anim := components.Animation.Get(e)

	scale, clr := 1.0, color.Color(unloadedColor)
	bob := 0.0
	if anim.Mixer != nil {
		model := anim.Mixer.Model
		scale = model.Scale
		clr = color.RGBA{R: model.Color[0], G: model.Color[1], B: model.Color[2], A: 255}
		bob = anim.Mixer.RootOffset()
	}

	feet := transform.Position.Add(mgl64.Vec3{0, bob, 0})
	head := feet.Add(mgl64.Vec3{0, actorHeight * scale, 0})
	_, yFeet, okFeet := view.Project(feet)
	hx, yHead, okHead := view.Project(head)
	if !okFeet || !okHead {
		return
	}

	center := feet.Add(mgl64.Vec3{0, actorHeight * scale / 2, 0})
	cx, cy, ok := view.Project(center)
	if !ok {
		return
	}
	radius := float32(yFeet-yHead) / 4
	if radius < 2 {
		radius = 2
	}
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), radius, clr, true)
	vector.DrawFilledCircle(screen, float32(hx), float32(yHead), radius/2, clr, true)

	facing := transform.Rotation.Rotate(mgl64.Vec3{0, 0, 1}).Mul(facingLength * scale)
	strokeSegment(screen, view, feet, feet.Add(facing), cfg.White)
}
