package components

import (
	"github.com/automoto/strider/locomotion"
	"github.com/yohamta/donburi"
)

// LocomotionData owns the actor's locomotion state machine.
type LocomotionData struct {
	Machine *locomotion.Machine
}

var Locomotion = donburi.NewComponentType[LocomotionData]()
