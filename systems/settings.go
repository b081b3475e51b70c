package systems

import (
	"github.com/automoto/strider/archetypes"
	"github.com/automoto/strider/components"
	cfg "github.com/automoto/strider/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings handles the overlay and fullscreen toggles and persists
// every change.
func UpdateSettings(ecs *ecs.ECS) {
	input := GetInput(ecs)
	settings := GetSettings(ecs)

	if ToggleSettings(input, settings) {
		ebiten.SetFullscreen(settings.Fullscreen)
		SaveCurrentSettings(settings)
	}
}

// ToggleSettings flips settings on this tick's toggle presses and reports
// whether anything changed.
func ToggleSettings(input *components.InputData, settings *components.SettingsData) bool {
	changed := false
	if input.Action(cfg.ActionToggleOverlay).JustPressed {
		settings.ShowKeyOverlay = !settings.ShowKeyOverlay
		changed = true
	}
	if input.Action(cfg.ActionToggleFullscreen).JustPressed {
		settings.Fullscreen = !settings.Fullscreen
		changed = true
	}
	if input.Action(cfg.ActionToggleDebug).JustPressed {
		settings.Debug = !settings.Debug
	}
	return changed
}

// GetSettings returns the singleton Settings component. A new one starts from
// the saved settings; the -overlay flag forces the overlay on.
func GetSettings(ecs *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		entry = archetypes.Settings.Spawn(ecs)
		settings := components.Settings.Get(entry)
		if saved, err := LoadSettings(); err == nil {
			ApplySavedSettings(settings, saved)
		}
		if cfg.Debug.ShowOverlay {
			settings.ShowKeyOverlay = true
		}
	}
	return components.Settings.Get(entry)
}
