package locomotion

import (
	"testing"

	"github.com/automoto/strider/assets/animations"
	cfg "github.com/automoto/strider/config"
)

func bindClip(b *animations.Binding, mixer *animations.Mixer, name string) *animations.Action {
	clip := &animations.Clip{Name: name, Duration: 1, Frames: 4, Loop: true}
	action := mixer.ClipAction(clip)
	b.Set(name, animations.Entry{Clip: clip, Action: action})
	return action
}

func newDefault(t *testing.T) (*Machine, *animations.Binding, *animations.Mixer) {
	t.Helper()
	binding := animations.NewBinding()
	mixer := animations.NewMixer(&animations.Model{Name: "ty", Scale: 1, Bones: []string{"hips"}})
	m, err := NewMachine(DefaultTable(), binding)
	if err != nil {
		t.Fatalf("NewMachine() error = %v", err)
	}
	m.CrossFade = 0
	return m, binding, mixer
}

func TestDefaultTableCoversEveryState(t *testing.T) {
	table := DefaultTable()
	for id := cfg.StateID(0); id < cfg.StateCount; id++ {
		if table[id] == nil {
			t.Errorf("DefaultTable() has no entry for %v", id)
		}
	}
}

func TestEnterStartsBoundClip(t *testing.T) {
	m, binding, mixer := newDefault(t)
	idle := bindClip(binding, mixer, "idle")
	walking := bindClip(binding, mixer, "walking")

	m.SetState(cfg.Idle)
	m.SetState(cfg.Walking)
	if !walking.Running() {
		t.Error("entering walking did not start its clip")
	}
	if idle.Running() {
		t.Error("exiting idle left its clip running")
	}
}

func TestFirstActivationStartsOnUpdate(t *testing.T) {
	m, binding, mixer := newDefault(t)
	idle := bindClip(binding, mixer, "idle")

	m.SetState(cfg.Idle)
	if idle.Running() {
		t.Fatal("bare first activation started playback")
	}
	m.Update(0.1, held())
	if !idle.Running() {
		t.Error("idle update did not start its bound clip")
	}
}

func TestLateBindingPlaysOnReentry(t *testing.T) {
	m, binding, mixer := newDefault(t)

	m.SetState(cfg.Idle)
	m.SetState(cfg.Walking) // no clip bound yet
	if m.Current().Action() != nil {
		t.Fatal("walking started playback without a binding")
	}

	walking := bindClip(binding, mixer, "walking")
	if walking.Running() {
		t.Fatal("binding a clip started playback by itself")
	}

	m.SetState(cfg.Idle)
	m.SetState(cfg.Walking)
	if !walking.Running() {
		t.Error("re-entering walking after the clip resolved did not start playback")
	}
	if m.Current().Action() != walking {
		t.Error("walking state does not hold the bound action")
	}
}

func TestReboundClipReplacesPlayback(t *testing.T) {
	m, binding, mixer := newDefault(t)
	m.SetState(cfg.Idle)
	old := bindClip(binding, mixer, "idle")
	m.Update(0.1, held())
	if !old.Running() {
		t.Fatal("idle clip not running")
	}

	fresh := bindClip(binding, mixer, "idle")
	m.Update(0.1, held())
	if !fresh.Running() {
		t.Error("rebound idle clip did not start")
	}
	if old.Running() {
		t.Error("replaced idle clip still running")
	}
}

func TestWalkingSprintScalesClip(t *testing.T) {
	m, binding, mixer := newDefault(t)
	walking := bindClip(binding, mixer, "walking")

	m.SetState(cfg.Idle)
	m.Update(0.1, held(cfg.ActionForward, cfg.ActionSprint))
	if walking.TimeScale != cfg.Movement.SprintMultiplier {
		t.Errorf("TimeScale while sprinting = %v, want %v", walking.TimeScale, cfg.Movement.SprintMultiplier)
	}
	m.Update(0.1, held(cfg.ActionForward))
	if walking.TimeScale != 1 {
		t.Errorf("TimeScale after sprint release = %v, want 1", walking.TimeScale)
	}
}
