package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// CharacterSpec is the tuning of the player character.
type CharacterSpec struct {
	Name             string  `yaml:"name"`
	MoveAcceleration float64 `yaml:"move_acceleration"`
	MaxMoveSpeed     float64 `yaml:"max_move_speed"`
	Friction         float64 `yaml:"friction"`
	JumpAcceleration float64 `yaml:"jump_acceleration"`
	MaxJumpVelocity  float64 `yaml:"max_jump_velocity"`
	Health           int     `yaml:"health"`
	SpawnOffsetY     float64 `yaml:"spawn_offset_y"`
	Color            string  `yaml:"color"`
	LineWidth        float64 `yaml:"line_width"`
}

// WorldSpec holds the forces applied by the level.
type WorldSpec struct {
	Name             string  `yaml:"name"`
	Gravity          float64 `yaml:"gravity"`
	TerminalVelocity float64 `yaml:"terminal_velocity"`
	// TimeScale multiplies the per-frame time step.
	TimeScale float64 `yaml:"time_scale"`
}

const (
	CharacterSpecFile = "character.yaml"
	WorldSpecFile     = "world.yaml"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

func LoadCharacterSpec() (*CharacterSpec, error) {
	spec, err := LoadSpec[CharacterSpec](CharacterSpecFile)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", CharacterSpecFile, err)
	}
	return &spec, nil
}

func LoadWorldSpec() (*WorldSpec, error) {
	spec, err := LoadSpec[WorldSpec](WorldSpecFile)
	if err != nil {
		return nil, err
	}
	if spec.TimeScale == 0 {
		spec.TimeScale = 1
	}
	if spec.Gravity < 0 || spec.TerminalVelocity <= 0 || spec.TimeScale < 0 {
		return nil, fmt.Errorf("prefabs: %s: gravity, terminal_velocity and time_scale must be positive", WorldSpecFile)
	}
	return &spec, nil
}

// Validate rejects values the movement rules cannot work with.
func (s CharacterSpec) Validate() error {
	switch {
	case s.MaxMoveSpeed <= 0:
		return fmt.Errorf("max_move_speed must be positive, got %v", s.MaxMoveSpeed)
	case s.MaxJumpVelocity <= 0:
		return fmt.Errorf("max_jump_velocity must be positive, got %v", s.MaxJumpVelocity)
	case s.JumpAcceleration >= 0:
		return fmt.Errorf("jump_acceleration must be negative (upward), got %v", s.JumpAcceleration)
	case s.Friction < 0 || s.Friction >= 1:
		return fmt.Errorf("friction must be in [0, 1), got %v", s.Friction)
	case s.Health <= 0:
		return fmt.Errorf("health must be positive, got %d", s.Health)
	}
	return nil
}
