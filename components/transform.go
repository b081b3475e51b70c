package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// TransformData is the actor's world transform. Only the movement system writes it.
type TransformData struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

var Transform = donburi.NewComponentType[TransformData]()
