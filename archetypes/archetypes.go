package archetypes

import (
	"github.com/automoto/strider/components"
	cfg "github.com/automoto/strider/config"
	"github.com/automoto/strider/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Actor = newArchetype(
		tags.Actor,
		components.Actor,
		components.Transform,
		components.Locomotion,
		components.Animation,
	)
	Camera = newArchetype(
		tags.Camera,
		components.Camera,
	)
	Input = newArchetype(
		components.Input,
	)
	Clock = newArchetype(
		components.Clock,
	)
	Settings = newArchetype(
		components.Settings,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
