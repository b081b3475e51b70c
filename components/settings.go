package components

import "github.com/yohamta/donburi"

// SettingsData holds user-facing toggles that persist across sessions.
type SettingsData struct {
	ShowKeyOverlay bool
	Fullscreen     bool
	Debug          bool // heading and camera overlay, not persisted
}

var Settings = donburi.NewComponentType[SettingsData]()
