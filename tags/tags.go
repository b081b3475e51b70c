package tags

import "github.com/yohamta/donburi"

var (
	Actor  = donburi.NewTag().SetName("Actor")
	Camera = donburi.NewTag().SetName("Camera")
)
