package systems

import (
	"fmt"
	"strings"

	"github.com/automoto/strider/components"
	cfg "github.com/automoto/strider/config"
	"github.com/automoto/strider/fonts"
	"github.com/automoto/strider/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// keyTile is one on-screen key in the overlay grid. Col and Row are in tile
// units from the bottom-left corner, Width in tiles.
type keyTile struct {
	Label  string
	Action cfg.ActionID
	Col    float32
	Row    float32
	Width  float32
}

var keyTiles = []keyTile{
	{"W", cfg.ActionForward, 1, 2, 1},
	{"A", cfg.ActionLeft, 0, 1, 1},
	{"S", cfg.ActionBackward, 1, 1, 1},
	{"D", cfg.ActionRight, 2, 1, 1},
	{"Shift", cfg.ActionSprint, 0, 0, 3},
}

// DrawKeyOverlay shows which movement keys are held, the current locomotion
// state and the clips bound so far. Toggled with F1.
func DrawKeyOverlay(ecs *ecs.ECS, screen *ebiten.Image) {
	settingsEntry, ok := components.Settings.First(ecs.World)
	if !ok || !components.Settings.Get(settingsEntry).ShowKeyOverlay {
		return
	}
	inputEntry, ok := components.Input.First(ecs.World)
	if !ok {
		return
	}
	input := components.Input.Get(inputEntry)

	o := cfg.Overlay
	step := o.TileSize + o.TileGap
	originX := o.Margin
	originY := float32(screen.Bounds().Dy()) - o.Margin - o.TileSize
	face := fonts.Regular.Get()

	for _, tile := range keyTiles {
		x := originX + tile.Col*step
		y := originY - tile.Row*step
		w := tile.Width*step - o.TileGap

		clr := o.TileColor
		if input.Pressed(tile.Action) {
			clr = o.ActiveColor
		}
		vector.DrawFilledRect(screen, x, y, w, o.TileSize, clr, false)

		bounds := text.BoundString(face, tile.Label)
		tx := int(x + (w-float32(bounds.Dx()))/2)
		ty := int(y + (o.TileSize+float32(bounds.Dy()))/2)
		text.Draw(screen, tile.Label, face, tx, ty, o.TextColor)
	}

	drawLocomotionStatus(ecs, screen)
}

func drawLocomotionStatus(ecs *ecs.ECS, screen *ebiten.Image) {
	actorEntry, ok := tags.Actor.First(ecs.World)
	if !ok {
		return
	}
	status := locomotionStatus(components.Locomotion.Get(actorEntry), components.Animation.Get(actorEntry))

	o := cfg.Overlay
	vector.DrawFilledRect(screen, 0, 0, float32(screen.Bounds().Dx()), o.StatusOffsetY+o.Margin/2, o.PanelColor, false)
	text.Draw(screen, status, fonts.Small.Get(), int(o.Margin), int(o.StatusOffsetY), o.TextColor)
}

// locomotionStatus renders the one-line overlay status for an actor.
func locomotionStatus(loco *components.LocomotionData, anim *components.AnimationData) string {
	state := "inactive"
	if loco.Machine != nil && loco.Machine.Current() != nil {
		state = loco.Machine.Current().Name()
	}

	clips := "none"
	switch {
	case anim.Failed:
		clips = "model failed"
	case anim.Binding != nil && anim.Binding.Len() > 0:
		clips = strings.Join(anim.Binding.Names(), ", ")
	case anim.Mixer == nil:
		clips = "loading"
	}
	return fmt.Sprintf("state: %s  clips: %s  [F1] overlay  [F11] fullscreen", state, clips)
}
