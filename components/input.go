package components

import (
	cfg "github.com/automoto/strider/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this tick
	JustReleased bool // Released this tick
}

// KeyEvent is a single key edge delivered by the input collaborator.
type KeyEvent struct {
	Key  ebiten.Key
	Down bool
}

// InputData is the controller's InputState: one intent flag per action.
// Current is only written by Apply; everything downstream reads it.
type InputData struct {
	Current  [cfg.ActionCount]bool // This tick's intents
	Previous [cfg.ActionCount]bool // Last tick's intents

	held map[ebiten.Key]bool
}

var Input = donburi.NewComponentType[InputData]()

// Apply commits one tick's key edges in arrival order, so the last edge for a
// key wins. An intent stays set while any of its bound keys is held.
// Unmapped keys are ignored.
func (in *InputData) Apply(events []KeyEvent) {
	in.Previous = in.Current
	for _, ev := range events {
		action, ok := cfg.ActionForKey(ev.Key)
		if !ok {
			continue
		}
		if in.held == nil {
			in.held = make(map[ebiten.Key]bool)
		}
		if ev.Down {
			in.held[ev.Key] = true
		} else {
			delete(in.held, ev.Key)
		}
		in.Current[action] = in.anyHeld(action)
	}
}

func (in *InputData) anyHeld(action cfg.ActionID) bool {
	for _, key := range cfg.Input.Bindings[action].Keys {
		if in.held[key] {
			return true
		}
	}
	return false
}

// Reset releases every key, e.g. when the window loses focus.
func (in *InputData) Reset() {
	in.Previous = in.Current
	in.Current = [cfg.ActionCount]bool{}
	clear(in.held)
}

// Pressed reports whether the intent for id is currently held.
func (in *InputData) Pressed(id cfg.ActionID) bool {
	return in.Current[id]
}

// Action returns the full ActionState for an action ID.
func (in *InputData) Action(id cfg.ActionID) ActionState {
	curr := in.Current[id]
	prev := in.Previous[id]
	return ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// AnyDirection reports whether any movement intent is held. Sprint does not count.
func (in *InputData) AnyDirection() bool {
	for _, id := range cfg.DirectionalActions {
		if in.Current[id] {
			return true
		}
	}
	return false
}
