package config

import (
	"image/color"
	"math"
)

// MovementConfig contains the actor movement tuning values
type MovementConfig struct {
	Speed            float64 `yaml:"speed"`             // units per second
	SprintMultiplier float64 `yaml:"sprint_multiplier"` // applied to Speed while sprint is held
	TurnStep         float64 `yaml:"turn_step"`         // max radians turned per tick, not scaled by delta time
	FollowHeight     float64 `yaml:"follow_height"`     // camera-follow target offset above the actor
}

// CameraConfig contains the orbit camera configuration
type CameraConfig struct {
	Start            [3]float64 `yaml:"start"`
	FieldOfView      float64    `yaml:"fov"` // degrees
	Near             float64    `yaml:"near"`
	Far              float64    `yaml:"far"`
	OrbitSensitivity float64    `yaml:"orbit_sensitivity"` // radians per dragged pixel
	MinPolar         float64    `yaml:"min_polar"`         // radians from +Y
	MaxPolar         float64    `yaml:"max_polar"`
	MinDistance      float64    `yaml:"min_distance"`
	MaxDistance      float64    `yaml:"max_distance"`
	ZoomStep         float64    `yaml:"zoom_step"` // distance change per wheel notch
}

// AnimationConfig contains clip playback configuration
type AnimationConfig struct {
	CrossFade   float64 `yaml:"cross_fade"` // seconds
	ModelPath   string  `yaml:"model"`
	LoadWorkers int     `yaml:"load_workers"`
}

// GroundConfig describes the reference grid drawn under the actor
type GroundConfig struct {
	HalfExtent int
	Spacing    float64
	LineColor  color.RGBA
}

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowOverlay bool // Force the key overlay on regardless of saved settings
}

// Global configuration instances
var C *Config
var Movement MovementConfig
var Camera CameraConfig
var Animation AnimationConfig
var Ground GroundConfig
var Debug DebugConfig

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "Strider",
	}

	Movement = MovementConfig{
		Speed:            3,
		SprintMultiplier: 2,
		TurnStep:         0.1,
		FollowHeight:     1,
	}

	Camera = CameraConfig{
		Start:            [3]float64{2, 0.7, 1.1},
		FieldOfView:      75,
		Near:             0.1,
		Far:              1000,
		OrbitSensitivity: 0.005,
		MinPolar:         0.05,
		MaxPolar:         math.Pi - 0.05,
		MinDistance:      1,
		MaxDistance:      20,
		ZoomStep:         0.5,
	}

	Animation = AnimationConfig{
		CrossFade:   0.2,
		ModelPath:   "models/character.yaml",
		LoadWorkers: 4,
	}

	Ground = GroundConfig{
		HalfExtent: 50,
		Spacing:    1,
		LineColor:  color.RGBA{R: 0x87, G: 0x68, B: 0x53, A: 0xff},
	}
}

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	BrightYellow = color.RGBA{R: 255, G: 255, B: 100, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)
