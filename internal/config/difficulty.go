package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
// Presets are applied once when a game is built; speed stays constant within a session.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value into a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPreset scales scroll speed and spawn spacing for the preset.
func ApplyPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Physics.BaseSpeed *= 0.75
		cfg.Spawn.MinInterval += 20
		cfg.Spawn.MaxInterval += 20
	case DifficultyHard:
		cfg.Physics.BaseSpeed *= 1.5
		// Keep room for a full jump arc between elements
		cfg.Spawn.MinInterval = max(cfg.Spawn.MinInterval-15, 45)
		cfg.Spawn.MaxInterval = max(cfg.Spawn.MaxInterval-30, cfg.Spawn.MinInterval+1)
	}
}
