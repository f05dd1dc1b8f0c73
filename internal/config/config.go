// Package config provides YAML-based game configuration loading,
// validation and difficulty presets.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// RunnerConfig contains all tunables of the runner core.
// Distances are in play-field units; the renderer maps units to cells.
type RunnerConfig struct {
	Timing   TimingConfig   `yaml:"timing"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Spawn    SpawnConfig    `yaml:"spawn"`
	Player   BoxConfig      `yaml:"player"`
	Elements ElementsConfig `yaml:"elements"`
	Field    FieldConfig    `yaml:"field"`
}

// TimingConfig defines the jump sub-tick clock.
// The main tick rate comes from the runtime (--fps).
type TimingConfig struct {
	JumpIntervalMS int `yaml:"jump_interval_ms"`
}

// PhysicsConfig defines scrolling and jump parameters.
type PhysicsConfig struct {
	BaseSpeed   float64 `yaml:"base_speed"`   // Units scrolled per tick
	Boost       float64 `yaml:"boost"`        // Extra units per tick while accelerating
	JumpHeight  float64 `yaml:"jump_height"`  // Apex above ground level
	GravityStep float64 `yaml:"gravity_step"` // Units moved per jump sub-tick
	GroundLevel float64 `yaml:"ground_level"` // Player's resting vertical offset
}

// SpawnConfig defines the spawner's countdown and kind distribution.
type SpawnConfig struct {
	InitialThreshold int          `yaml:"initial_threshold"` // Ticks before the first spawn
	MinInterval      int          `yaml:"min_interval"`      // Re-rolled threshold, inclusive
	MaxInterval      int          `yaml:"max_interval"`      // Re-rolled threshold, exclusive
	StartOffset      float64      `yaml:"start_offset"`      // Offset of a fresh element (negative = off-screen right)
	RetireMargin     float64      `yaml:"retire_margin"`     // Elements past fieldWidth+margin are removed
	HistorySize      int          `yaml:"history_size"`
	Weights          SpawnWeights `yaml:"weights"`
}

// SpawnWeights are relative probabilities for each element kind.
type SpawnWeights struct {
	Obstacle float64 `yaml:"obstacle"`
	Coin     float64 `yaml:"coin"`
	Heart    float64 `yaml:"heart"`
}

// Total returns the sum of all weights.
func (w SpawnWeights) Total() float64 {
	return w.Obstacle + w.Coin + w.Heart
}

// BoxConfig is the collision box of an actor.
// X is only meaningful for the player; Elevation only for elements.
type BoxConfig struct {
	X         float64 `yaml:"x"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Elevation float64 `yaml:"elevation"` // Bottom edge above ground level
}

// ElementsConfig holds the box of each element kind.
type ElementsConfig struct {
	Obstacle BoxConfig `yaml:"obstacle"`
	Coin     BoxConfig `yaml:"coin"`
	Heart    BoxConfig `yaml:"heart"`
}

// FieldConfig maps play-field units to terminal cells.
type FieldConfig struct {
	UnitsPerColumn float64 `yaml:"units_per_column"`
	UnitsPerRow    float64 `yaml:"units_per_row"`
}

// Validate checks that the configuration can drive a session.
func (c RunnerConfig) Validate() error {
	switch {
	case c.Timing.JumpIntervalMS <= 0:
		return invalid("timing.jump_interval_ms must be positive, got %d", c.Timing.JumpIntervalMS)
	case c.Physics.BaseSpeed <= 0:
		return invalid("physics.base_speed must be positive, got %v", c.Physics.BaseSpeed)
	case c.Physics.Boost < 0:
		return invalid("physics.boost must not be negative, got %v", c.Physics.Boost)
	case c.Physics.JumpHeight <= 0:
		return invalid("physics.jump_height must be positive, got %v", c.Physics.JumpHeight)
	case c.Physics.GravityStep <= 0:
		return invalid("physics.gravity_step must be positive, got %v", c.Physics.GravityStep)
	case c.Spawn.InitialThreshold < 1:
		return invalid("spawn.initial_threshold must be at least 1, got %d", c.Spawn.InitialThreshold)
	case c.Spawn.MinInterval < 1 || c.Spawn.MaxInterval <= c.Spawn.MinInterval:
		return invalid("spawn interval [%d, %d) is empty", c.Spawn.MinInterval, c.Spawn.MaxInterval)
	case c.Spawn.RetireMargin < 0:
		return invalid("spawn.retire_margin must not be negative, got %v", c.Spawn.RetireMargin)
	case c.Spawn.HistorySize < 2:
		return invalid("spawn.history_size must be at least 2, got %d", c.Spawn.HistorySize)
	case c.Spawn.Weights.Obstacle < 0 || c.Spawn.Weights.Coin < 0 || c.Spawn.Weights.Heart < 0:
		return invalid("spawn.weights must not be negative")
	case c.Spawn.Weights.Total() <= 0:
		return invalid("spawn.weights must not all be zero")
	case c.Field.UnitsPerColumn <= 0 || c.Field.UnitsPerRow <= 0:
		return invalid("field scale must be positive")
	}

	boxes := []struct {
		name string
		box  BoxConfig
	}{
		{"player", c.Player},
		{"elements.obstacle", c.Elements.Obstacle},
		{"elements.coin", c.Elements.Coin},
		{"elements.heart", c.Elements.Heart},
	}
	for _, b := range boxes {
		if b.box.Width <= 0 || b.box.Height <= 0 {
			return invalid("%s box must have positive size, got %vx%v", b.name, b.box.Width, b.box.Height)
		}
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("config: %w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}
