package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk override format. Absent sections keep their defaults.
type FileConfig struct {
	Movement  *MovementConfig  `yaml:"movement"`
	Camera    *CameraConfig    `yaml:"camera"`
	Animation *AnimationConfig `yaml:"animation"`
}

// LoadFile reads a YAML override file and applies it to the global configuration.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return Apply(data)
}

// Apply decodes YAML overrides on top of the current global values.
func Apply(data []byte) error {
	// Seed with the current values so partial sections only touch named fields.
	movement := Movement
	camera := Camera
	animation := Animation
	fc := FileConfig{
		Movement:  &movement,
		Camera:    &camera,
		Animation: &animation,
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	if err := validate(movement, camera, animation); err != nil {
		return err
	}
	Movement = movement
	Camera = camera
	Animation = animation
	return nil
}

func validate(m MovementConfig, c CameraConfig, a AnimationConfig) error {
	if m.Speed < 0 {
		return fmt.Errorf("movement.speed must not be negative, got %v", m.Speed)
	}
	if m.SprintMultiplier < 0 {
		return fmt.Errorf("movement.sprint_multiplier must not be negative, got %v", m.SprintMultiplier)
	}
	if m.TurnStep <= 0 {
		return fmt.Errorf("movement.turn_step must be positive, got %v", m.TurnStep)
	}
	if c.MinPolar > c.MaxPolar {
		return fmt.Errorf("camera.min_polar %v exceeds camera.max_polar %v", c.MinPolar, c.MaxPolar)
	}
	if c.MinDistance > c.MaxDistance {
		return fmt.Errorf("camera.min_distance %v exceeds camera.max_distance %v", c.MinDistance, c.MaxDistance)
	}
	if a.CrossFade < 0 {
		return fmt.Errorf("animation.cross_fade must not be negative, got %v", a.CrossFade)
	}
	if a.LoadWorkers < 1 {
		return fmt.Errorf("animation.load_workers must be at least 1, got %d", a.LoadWorkers)
	}
	return nil
}
