package factory

import (
	"fmt"

	"github.com/automoto/strider/archetypes"
	"github.com/automoto/strider/assets/animations"
	"github.com/automoto/strider/components"
	cfg "github.com/automoto/strider/config"
	"github.com/automoto/strider/locomotion"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateActor spawns the controlled character at pos. The actor's model and
// clips resolve later; until then it moves but does not animate.
func CreateActor(ecs *ecs.ECS, key string, pos mgl64.Vec3) (*donburi.Entry, error) {
	if _, ok := cfg.CharacterClips[key]; !ok {
		return nil, fmt.Errorf("no clip definitions for character %q", key)
	}

	binding := animations.NewBinding()
	machine, err := locomotion.NewMachine(locomotion.DefaultTable(), binding)
	if err != nil {
		return nil, fmt.Errorf("create %s locomotion: %w", key, err)
	}

	actor := archetypes.Actor.Spawn(ecs)
	components.Actor.SetValue(actor, components.ActorData{Name: key})
	components.Transform.SetValue(actor, components.TransformData{
		Position: pos,
		Rotation: mgl64.QuatIdent(),
	})
	components.Locomotion.SetValue(actor, components.LocomotionData{Machine: machine})
	components.Animation.SetValue(actor, components.AnimationData{
		Key:     key,
		Binding: binding,
	})
	return actor, nil
}
