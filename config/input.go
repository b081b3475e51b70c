package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical controller action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionForward
	ActionBackward
	ActionLeft
	ActionRight
	ActionSprint
	ActionToggleOverlay
	ActionToggleFullscreen
	ActionToggleDebug
	ActionCount // Must be last - used for array sizing
)

// DirectionalActions are the intents that produce motion. Sprint is a modifier
// and is deliberately absent.
var DirectionalActions = [...]ActionID{
	ActionForward,
	ActionBackward,
	ActionLeft,
	ActionRight,
}

var actionNames = map[ActionID]string{
	ActionForward:          "forward",
	ActionBackward:         "backward",
	ActionLeft:             "left",
	ActionRight:            "right",
	ActionSprint:           "sprint",
	ActionToggleOverlay:    "overlay",
	ActionToggleFullscreen: "fullscreen",
	ActionToggleDebug:      "debug",
}

func (a ActionID) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "none"
}

// InputBinding represents the keys bound to a single action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

// keyActions is the reverse lookup built from Input.Bindings.
var keyActions map[ebiten.Key]ActionID

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionForward: {
				Keys: []ebiten.Key{ebiten.KeyW, ebiten.KeyUp},
			},
			ActionBackward: {
				Keys: []ebiten.Key{ebiten.KeyS, ebiten.KeyDown},
			},
			ActionLeft: {
				Keys: []ebiten.Key{ebiten.KeyA, ebiten.KeyLeft},
			},
			ActionRight: {
				Keys: []ebiten.Key{ebiten.KeyD, ebiten.KeyRight},
			},
			ActionSprint: {
				Keys: []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyShiftRight},
			},
			ActionToggleOverlay: {
				Keys: []ebiten.Key{ebiten.KeyF1},
			},
			ActionToggleFullscreen: {
				Keys: []ebiten.Key{ebiten.KeyF11},
			},
			ActionToggleDebug: {
				Keys: []ebiten.Key{ebiten.KeyF3},
			},
		},
	}
	RebuildKeyActions()
}

// RebuildKeyActions refreshes the key -> action table after Input.Bindings changes.
func RebuildKeyActions() {
	keyActions = make(map[ebiten.Key]ActionID)
	for action, binding := range Input.Bindings {
		for _, key := range binding.Keys {
			keyActions[key] = action
		}
	}
}

// ActionForKey returns the action bound to key. Unmapped keys report false.
func ActionForKey(key ebiten.Key) (ActionID, bool) {
	action, ok := keyActions[key]
	return action, ok
}
