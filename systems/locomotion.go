package systems

import (
	"github.com/automoto/strider/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLocomotion feeds the tick's input to every actor's state machine.
// Machines stay inactive until the animation system activates them.
func UpdateLocomotion(ecs *ecs.ECS) {
	input := GetInput(ecs)
	dt := GetClock(ecs).DeltaTime

	components.Locomotion.Each(ecs.World, func(e *donburi.Entry) {
		loco := components.Locomotion.Get(e)
		if loco.Machine == nil {
			return
		}
		loco.Machine.Update(dt, input)
	})
}
