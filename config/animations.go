package config

// ClipDef points a locomotion state at its clip descriptor.
type ClipDef struct {
	Path string
}

// CharacterClips maps a character key (e.g., "character")
// to the clip each locomotion state plays.
var CharacterClips = map[string]map[StateID]ClipDef{
	"character": {
		Idle:    {Path: "clips/idle.yaml"},
		Walking: {Path: "clips/walking.yaml"},
	},
}
