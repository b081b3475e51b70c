package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/strider/config"
	"github.com/automoto/strider/fonts"
	"github.com/automoto/strider/scenes"
	"github.com/automoto/strider/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(scene Scene) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scene,
	}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding movement, camera and animation tuning")
	flag.BoolVar(&config.Debug.ShowOverlay, "overlay", false, "Show the key overlay on startup")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence; settings are applied when the scene starts
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	scene := scenes.NewControllerScene()
	defer scene.Close()

	if err := ebiten.RunGame(NewGame(scene)); err != nil {
		log.Fatal(err)
	}
}
