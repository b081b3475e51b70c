package config

import "image/color"

// OverlayConfig contains the key overlay layout
type OverlayConfig struct {
	TileSize      float32
	TileGap       float32
	Margin        float32
	TileColor     color.RGBA
	ActiveColor   color.RGBA
	TextColor     color.RGBA
	PanelColor    color.RGBA
	PersistKey    string
	AppName       string
	StatusOffsetY float32
}

// Overlay is the global key overlay configuration
var Overlay OverlayConfig

func init() {
	Overlay = OverlayConfig{
		TileSize:      36,
		TileGap:       6,
		Margin:        16,
		TileColor:     DarkBlue,
		ActiveColor:   LightBlue,
		TextColor:     White,
		PanelColor:    BlackOverlay,
		PersistKey:    "settings",
		AppName:       "strider",
		StatusOffsetY: 24,
	}
}
