package components

import (
	"github.com/automoto/strider/assets/animations"
	"github.com/yohamta/donburi"
)

// AnimationData holds the actor's clip bindings and, once its model has
// loaded, the mixer that plays them.
type AnimationData struct {
	Key       string // character key into config.CharacterClips
	Binding   *animations.Binding
	Mixer     *animations.Mixer // nil until the model resolves
	Requested bool              // the model load has been issued
	Failed    bool              // the model load failed; the actor stays unanimated
}

var Animation = donburi.NewComponentType[AnimationData]()
