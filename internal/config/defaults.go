package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in configuration.
// It mirrors defaults/runner.yaml and is used if the embedded file cannot be parsed.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Timing: TimingConfig{
			JumpIntervalMS: 20,
		},
		Physics: PhysicsConfig{
			BaseSpeed:   4,
			Boost:       1.4,
			JumpHeight:  120,
			GravityStep: 6,
			GroundLevel: 5,
		},
		Spawn: SpawnConfig{
			InitialThreshold: 80,
			MinInterval:      60,
			MaxInterval:      140,
			StartOffset:      -150,
			RetireMargin:     200,
			HistorySize:      6,
			Weights: SpawnWeights{
				Obstacle: 0.65,
				Coin:     0.25,
				Heart:    0.10,
			},
		},
		Player: BoxConfig{X: 50, Width: 40, Height: 40},
		Elements: ElementsConfig{
			Obstacle: BoxConfig{Width: 30, Height: 40},
			Coin:     BoxConfig{Width: 30, Height: 30},
			Heart:    BoxConfig{Width: 30, Height: 30},
		},
		Field: FieldConfig{
			UnitsPerColumn: 8,
			UnitsPerRow:    16,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
