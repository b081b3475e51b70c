package scenes

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/automoto/strider/assets"
	"github.com/automoto/strider/components"
	cfg "github.com/automoto/strider/config"
	"github.com/automoto/strider/systems"
	"github.com/automoto/strider/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ControllerScene is the single scene: one actor on a ground grid, driven by
// the keyboard and viewed through an orbit camera.
type ControllerScene struct {
	ecs    *ecs.ECS
	loader *assets.Loader
	once   sync.Once
	err    error
}

func NewControllerScene() *ControllerScene {
	return &ControllerScene{}
}

// Update runs one tick. Startup failures surface from the first call.
func (cs *ControllerScene) Update() error {
	cs.once.Do(func() { cs.err = cs.configure() })
	if cs.err != nil {
		return cs.err
	}
	cs.ecs.Update()
	return nil
}

func (cs *ControllerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if cs.ecs == nil {
		return
	}
	cs.ecs.Draw(screen)
}

// Close releases the loader's workers.
func (cs *ControllerScene) Close() {
	if cs.loader != nil {
		cs.loader.Close()
	}
}

func (cs *ControllerScene) configure() error {
	loader, err := assets.NewLoader(assets.Data, cfg.Animation.LoadWorkers)
	if err != nil {
		return fmt.Errorf("start asset loader: %w", err)
	}
	cs.loader = loader

	ecs := ecs.NewECS(donburi.NewWorld())

	// Order matters: intents are committed before anything reads them, and
	// the camera re-aims after the actor has moved.
	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateMovement)
	ecs.AddSystem(systems.UpdateLocomotion)
	ecs.AddSystem(systems.NewAnimationSystem(loader))
	ecs.AddSystem(systems.UpdateOrbitInput)
	ecs.AddSystem(systems.UpdateCamera)

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawScene)
	ecs.AddRenderer(cfg.Default, systems.DrawKeyOverlay)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	cs.ecs = ecs

	systems.GetInput(ecs)
	systems.GetClock(ecs)
	settings := systems.GetSettings(ecs)
	ebiten.SetFullscreen(settings.Fullscreen)

	camera := factory.CreateCamera(ecs)
	actor, err := factory.CreateActor(ecs, "character", mgl64.Vec3{})
	if err != nil {
		return err
	}

	// The camera frames the actor before the first input arrives.
	cameraData := components.Camera.Get(camera)
	systems.UpdateFollowTarget(components.Transform.Get(actor), cameraData)
	cameraData.LookAtTarget()
	return nil
}
