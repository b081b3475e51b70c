package animations

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Clip is an animation clip descriptor. Time runs from 0 to Duration seconds
// and is sampled into Frames discrete poses.
type Clip struct {
	Name     string  `yaml:"name"`
	Duration float64 `yaml:"duration"`
	Frames   int     `yaml:"frames"`
	Loop     bool    `yaml:"loop"`
	Bob      float64 `yaml:"bob"` // vertical root motion amplitude in world units
}

// ParseClip decodes and validates a YAML clip descriptor.
func ParseClip(data []byte) (*Clip, error) {
	var c Clip
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode clip: %w", err)
	}
	if c.Name == "" {
		return nil, errors.New("clip has no name")
	}
	if c.Duration <= 0 {
		return nil, fmt.Errorf("clip %q: duration must be positive, got %v", c.Name, c.Duration)
	}
	if c.Frames < 1 {
		c.Frames = 1
	}
	return &c, nil
}

// Model is the skeletal model descriptor the playback engine is built from.
type Model struct {
	Name  string   `yaml:"name"`
	Scale float64  `yaml:"scale"`
	Bones []string `yaml:"bones"`
	Color [3]uint8 `yaml:"color"`
}

// ParseModel decodes and validates a YAML model descriptor.
func ParseModel(data []byte) (*Model, error) {
	var m Model
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode model: %w", err)
	}
	if m.Name == "" {
		return nil, errors.New("model has no name")
	}
	if len(m.Bones) == 0 {
		return nil, fmt.Errorf("model %q has no bones", m.Name)
	}
	if m.Scale <= 0 {
		m.Scale = 1
	}
	return &m, nil
}
