package systems

import (
	"github.com/automoto/strider/archetypes"
	"github.com/automoto/strider/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Reusable buffers to avoid allocations
var (
	pressedKeys  []ebiten.Key
	releasedKeys []ebiten.Key
	keyEvents    []components.KeyEvent
)

// UpdateInput collects this tick's key edges and commits them to the Input
// component in one step. Must run BEFORE any system that reads intents.
func UpdateInput(ecs *ecs.ECS) {
	input := GetInput(ecs)

	// Held keys never see their release edge while unfocused.
	if !ebiten.IsFocused() {
		input.Reset()
		return
	}

	pressedKeys = inpututil.AppendJustPressedKeys(pressedKeys[:0])
	releasedKeys = inpututil.AppendJustReleasedKeys(releasedKeys[:0])
	input.Apply(collectKeyEvents(pressedKeys, releasedKeys))
}

// collectKeyEvents orders a tick's edges. A key reported both pressed and
// released in one tick was pressed first, so releases go last.
func collectKeyEvents(pressed, released []ebiten.Key) []components.KeyEvent {
	keyEvents = keyEvents[:0]
	for _, key := range pressed {
		keyEvents = append(keyEvents, components.KeyEvent{Key: key, Down: true})
	}
	for _, key := range released {
		keyEvents = append(keyEvents, components.KeyEvent{Key: key, Down: false})
	}
	return keyEvents
}

// GetInput returns the singleton Input component, creating it if needed
func GetInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = archetypes.Input.Spawn(ecs)
		// Zero-value InputData is correct (all intents released)
	}
	return components.Input.Get(entry)
}
