package systems

import (
	"errors"
	"testing"

	"github.com/automoto/strider/assets"
	"github.com/automoto/strider/assets/animations"
	"github.com/automoto/strider/components"
	cfg "github.com/automoto/strider/config"
	"github.com/automoto/strider/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// fakeLoader records requests and hands back whatever the test queues.
type fakeLoader struct {
	models []uuid.UUID
	clips  map[string]uuid.UUID
	queued []assets.Result
}

func newFakeLoader() *fakeLoader {
	return &fakeLoader{clips: map[string]uuid.UUID{}}
}

func (f *fakeLoader) LoadModel(path string) uuid.UUID {
	ticket := uuid.New()
	f.models = append(f.models, ticket)
	return ticket
}

func (f *fakeLoader) LoadClip(name, path string) uuid.UUID {
	ticket := uuid.New()
	f.clips[name] = ticket
	return ticket
}

func (f *fakeLoader) Poll() []assets.Result {
	out := f.queued
	f.queued = nil
	return out
}

func (f *fakeLoader) completeModel(err error) {
	r := assets.Result{Ticket: f.models[len(f.models)-1], Kind: assets.KindModel, Err: err}
	if err == nil {
		r.Model = &animations.Model{Name: "ty", Scale: 1, Bones: []string{"hips"}}
	}
	f.queued = append(f.queued, r)
}

func (f *fakeLoader) completeClip(name string, err error) {
	r := assets.Result{Ticket: f.clips[name], Kind: assets.KindClip, Name: name, Err: err}
	if err == nil {
		r.Clip = &animations.Clip{Name: name, Duration: 1, Frames: 10, Loop: true}
	}
	f.queued = append(f.queued, r)
}

func newAnimationWorld(t *testing.T) (*ecs.ECS, *donburi.Entry) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	GetClock(e).DeltaTime = 0.1
	actor, err := factory.CreateActor(e, "character", mgl64.Vec3{})
	if err != nil {
		t.Fatalf("CreateActor() error = %v", err)
	}
	return e, actor
}

func TestAnimationSystemLoadsModelThenClips(t *testing.T) {
	e, actor := newAnimationWorld(t)
	loader := newFakeLoader()
	update := NewAnimationSystem(loader)
	anim := components.Animation.Get(actor)
	machine := components.Locomotion.Get(actor).Machine

	update(e)
	update(e)
	if len(loader.models) != 1 {
		t.Fatalf("issued %d model loads, want 1", len(loader.models))
	}
	if anim.Mixer != nil || machine.Current() != nil {
		t.Fatal("actor animated before its model resolved")
	}

	loader.completeModel(nil)
	update(e)
	if anim.Mixer == nil {
		t.Fatal("mixer not built from the loaded model")
	}
	if machine.CurrentID() != cfg.Idle {
		t.Errorf("machine state = %v, want idle", machine.CurrentID())
	}
	for state := range cfg.CharacterClips["character"] {
		if _, ok := loader.clips[state.String()]; !ok {
			t.Errorf("no clip load issued for %v", state)
		}
	}
	if anim.Binding.Len() != 0 {
		t.Errorf("binding has %d entries before any clip resolved", anim.Binding.Len())
	}

	loader.completeClip("walking", nil)
	loader.completeClip("idle", nil)
	update(e)
	if anim.Binding.Len() != 2 {
		t.Fatalf("binding has %d entries, want 2", anim.Binding.Len())
	}
	entry, ok := anim.Binding.Get("idle")
	if !ok || entry.Action == nil || entry.Clip.Name != "idle" {
		t.Fatalf("idle binding = %+v, %v", entry, ok)
	}

	// Idle picks up its clip on its next update.
	machine.Update(0.1, &components.InputData{})
	if !entry.Action.Running() {
		t.Error("idle clip not playing once bound")
	}
}

func TestAnimationSystemModelFailure(t *testing.T) {
	e, actor := newAnimationWorld(t)
	loader := newFakeLoader()
	update := NewAnimationSystem(loader)

	update(e)
	loader.completeModel(errors.New("missing file"))
	update(e)

	anim := components.Animation.Get(actor)
	if !anim.Failed || anim.Mixer != nil {
		t.Errorf("animation = %+v, want failed without mixer", anim)
	}
	if len(loader.clips) != 0 {
		t.Errorf("issued clip loads after a failed model: %v", loader.clips)
	}
	if got := components.Locomotion.Get(actor).Machine.CurrentID(); got != cfg.Idle {
		t.Errorf("machine state = %v, want idle even without a model", got)
	}
}

func TestAnimationSystemIgnoresStrayResults(t *testing.T) {
	e, actor := newAnimationWorld(t)
	loader := newFakeLoader()
	update := NewAnimationSystem(loader)

	update(e)
	loader.queued = append(loader.queued, assets.Result{Ticket: uuid.New(), Kind: assets.KindModel})
	update(e)
	anim := components.Animation.Get(actor)
	if anim.Mixer != nil || anim.Failed {
		t.Fatal("result for an unknown ticket was applied")
	}

	loader.completeModel(nil)
	update(e)
	loader.completeClip("idle", errors.New("bad yaml"))
	loader.queued = append(loader.queued, assets.Result{
		Kind: assets.KindClip,
		Name: "jump",
		Clip: &animations.Clip{Name: "jump", Duration: 1, Frames: 1},
	})
	update(e)

	if anim.Binding.Len() != 0 {
		t.Errorf("binding = %v, want empty", anim.Binding.Names())
	}
}
