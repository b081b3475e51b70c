package components

import "github.com/yohamta/donburi"

// ActorData describes the controlled character.
type ActorData struct {
	Name  string
	Moved bool // the actor moved during the last tick
}

var Actor = donburi.NewComponentType[ActorData]()
