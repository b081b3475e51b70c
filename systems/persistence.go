package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/strider/components"
	cfg "github.com/automoto/strider/config"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	ShowKeyOverlay bool `json:"showKeyOverlay"`
	Fullscreen     bool `json:"fullscreen"`
}

// itemStore is the part of gdata.Manager the settings layer relies on.
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var store itemStore

// InitPersistence opens the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Overlay.AppName,
	})
	if err != nil {
		log.Printf("[persistence] could not initialize: %v", err)
		return err
	}
	store = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil when nothing was
// saved yet or persistence is unavailable.
func LoadSettings() (*SavedSettings, error) {
	if store == nil {
		return nil, nil
	}

	data, err := store.LoadItem(cfg.Overlay.PersistKey)
	if err != nil {
		log.Printf("[persistence] could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("[persistence] could not parse saved settings: %v", err)
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if store == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("[persistence] could not serialize settings: %v", err)
		return err
	}
	if err := store.SaveItem(cfg.Overlay.PersistKey, data); err != nil {
		log.Printf("[persistence] could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings stores the live settings component.
func SaveCurrentSettings(s *components.SettingsData) {
	_ = SaveSettings(&SavedSettings{
		ShowKeyOverlay: s.ShowKeyOverlay,
		Fullscreen:     s.Fullscreen,
	})
}

// ApplySavedSettings copies saved values onto the settings component.
func ApplySavedSettings(s *components.SettingsData, saved *SavedSettings) {
	if saved == nil {
		return
	}
	s.ShowKeyOverlay = saved.ShowKeyOverlay
	s.Fullscreen = saved.Fullscreen
}
