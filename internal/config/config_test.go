package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := read("")
	if err != nil {
		t.Fatalf("read() failed: %v", err)
	}
	// The working directory of the test has no configs/ folder, but a user
	// config could exist on the machine; only check when it does not.
	if p := userConfigPath("runner.yaml"); p != "" {
		if _, statErr := os.Stat(p); statErr == nil {
			t.Skip("user config present")
		}
	}

	if cfg != DefaultRunnerConfig() {
		t.Errorf("embedded YAML differs from DefaultRunnerConfig():\n%+v\n%+v", cfg, DefaultRunnerConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.yaml")
	data := []byte("physics:\n  base_speed: 7\nspawn:\n  initial_threshold: 60\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Physics.BaseSpeed != 7 {
		t.Errorf("BaseSpeed = %v, expected 7", cfg.Physics.BaseSpeed)
	}
	if cfg.Spawn.InitialThreshold != 60 {
		t.Errorf("InitialThreshold = %d, expected 60", cfg.Spawn.InitialThreshold)
	}
	// Keys missing from the file keep defaults
	if cfg.Physics.JumpHeight != 120 {
		t.Errorf("JumpHeight = %v, expected default 120", cfg.Physics.JumpHeight)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing custom config")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected wrapped ErrNotExist, got %v", err)
	}
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.yaml")
	data := []byte("spawn:\n  min_interval: 100\n  max_interval: 100\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RunnerConfig)
	}{
		{"zero speed", func(c *RunnerConfig) { c.Physics.BaseSpeed = 0 }},
		{"negative boost", func(c *RunnerConfig) { c.Physics.Boost = -1 }},
		{"zero gravity step", func(c *RunnerConfig) { c.Physics.GravityStep = 0 }},
		{"zero jump interval", func(c *RunnerConfig) { c.Timing.JumpIntervalMS = 0 }},
		{"short history", func(c *RunnerConfig) { c.Spawn.HistorySize = 1 }},
		{"all weights zero", func(c *RunnerConfig) { c.Spawn.Weights = SpawnWeights{} }},
		{"negative weight", func(c *RunnerConfig) { c.Spawn.Weights.Heart = -0.1 }},
		{"flat coin", func(c *RunnerConfig) { c.Elements.Coin.Height = 0 }},
		{"zero scale", func(c *RunnerConfig) { c.Field.UnitsPerRow = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultRunnerConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestPresets(t *testing.T) {
	base := DefaultRunnerConfig()

	easy := DefaultRunnerConfig()
	ApplyPreset(&easy, DifficultyEasy)
	if easy.Physics.BaseSpeed >= base.Physics.BaseSpeed {
		t.Errorf("easy speed %v should be below %v", easy.Physics.BaseSpeed, base.Physics.BaseSpeed)
	}

	hard := DefaultRunnerConfig()
	ApplyPreset(&hard, DifficultyHard)
	if hard.Physics.BaseSpeed <= base.Physics.BaseSpeed {
		t.Errorf("hard speed %v should be above %v", hard.Physics.BaseSpeed, base.Physics.BaseSpeed)
	}
	if err := hard.Validate(); err != nil {
		t.Errorf("hard preset should stay valid: %v", err)
	}

	normal := DefaultRunnerConfig()
	ApplyPreset(&normal, DifficultyNormal)
	if normal != base {
		t.Error("normal preset should not change the config")
	}
}

func TestParsePreset(t *testing.T) {
	for in, want := range map[string]DifficultyPreset{
		"":       DifficultyNormal,
		"easy":   DifficultyEasy,
		"normal": DifficultyNormal,
		"hard":   DifficultyHard,
	} {
		got, err := ParsePreset(in)
		if err != nil || got != want {
			t.Errorf("ParsePreset(%q) = %q, %v; expected %q", in, got, err, want)
		}
	}
	if _, err := ParsePreset("fixed"); err == nil {
		t.Error("ParsePreset(fixed) should fail")
	}
}
