package systems

import (
	"log"

	"github.com/automoto/strider/assets"
	"github.com/automoto/strider/assets/animations"
	"github.com/automoto/strider/components"
	cfg "github.com/automoto/strider/config"
	"github.com/automoto/strider/tags"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// AssetLoader is the asynchronous loading collaborator.
type AssetLoader interface {
	LoadModel(path string) uuid.UUID
	LoadClip(name, path string) uuid.UUID
	Poll() []assets.Result
}

// NewAnimationSystem returns the system that issues model loads, applies
// completed loads and advances every mixer.
func NewAnimationSystem(loader AssetLoader) func(*ecs.ECS) {
	// Model loads in flight, by ticket
	requests := make(map[uuid.UUID]donburi.Entity)

	return func(ecs *ecs.ECS) {
		tags.Actor.Each(ecs.World, func(e *donburi.Entry) {
			anim := components.Animation.Get(e)
			if anim.Requested {
				return
			}
			anim.Requested = true
			requests[loader.LoadModel(cfg.Animation.ModelPath)] = e.Entity()
		})

		for _, r := range loader.Poll() {
			applyLoad(ecs, loader, requests, r)
		}

		dt := GetClock(ecs).DeltaTime
		components.Animation.Each(ecs.World, func(e *donburi.Entry) {
			if mixer := components.Animation.Get(e).Mixer; mixer != nil {
				mixer.Update(dt)
			}
		})
	}
}

func applyLoad(ecs *ecs.ECS, loader AssetLoader, requests map[uuid.UUID]donburi.Entity, r assets.Result) {
	switch r.Kind {
	case assets.KindModel:
		entity, ok := requests[r.Ticket]
		if !ok {
			return
		}
		delete(requests, r.Ticket)
		if !ecs.World.Valid(entity) {
			return
		}
		applyModel(ecs.World.Entry(entity), loader, r)

	case assets.KindClip:
		if r.Err != nil {
			// Absent binding, same as not yet loaded
			return
		}
		tags.Actor.Each(ecs.World, func(e *donburi.Entry) {
			bindClip(components.Animation.Get(e), r.Name, r.Clip)
		})
	}
}

// applyModel builds the mixer, issues the clip loads and activates the
// locomotion machine. A failed model still activates locomotion.
func applyModel(e *donburi.Entry, loader AssetLoader, r assets.Result) {
	anim := components.Animation.Get(e)
	if r.Err != nil {
		anim.Failed = true
	} else {
		anim.Mixer = animations.NewMixer(r.Model)
		for state, def := range cfg.CharacterClips[anim.Key] {
			loader.LoadClip(state.String(), def.Path)
		}
		log.Printf("[animation] model %q ready for %s", r.Model.Name, anim.Key)
	}

	if loco := components.Locomotion.Get(e); loco.Machine != nil && loco.Machine.Current() == nil {
		loco.Machine.SetState(cfg.Idle)
	}
}

// bindClip publishes a resolved clip under name. Actors without a mixer, or
// whose character does not use name, ignore it.
func bindClip(anim *components.AnimationData, name string, clip *animations.Clip) {
	if anim.Mixer == nil {
		return
	}
	if _, ok := cfg.CharacterClips[anim.Key][cfg.StateFromName(name)]; !ok {
		return
	}
	anim.Binding.Set(name, animations.Entry{
		Clip:   clip,
		Action: anim.Mixer.ClipAction(clip),
	})
}
