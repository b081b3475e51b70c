package systems

import (
	"github.com/automoto/strider/archetypes"
	"github.com/automoto/strider/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances the shared tick clock. Must run first.
func UpdateClock(ecs *ecs.ECS) {
	clock := GetClock(ecs)
	clock.DeltaTime = 1 / float64(ebiten.TPS())
	clock.Elapsed += clock.DeltaTime
	clock.Ticks++
}

// GetClock returns the singleton Clock component, creating it if needed
func GetClock(ecs *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		entry = archetypes.Clock.Spawn(ecs)
	}
	return components.Clock.Get(entry)
}
