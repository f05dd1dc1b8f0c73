package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/factrunner/factrunner/internal/config"
	"github.com/factrunner/factrunner/internal/content"
	"github.com/factrunner/factrunner/internal/core"
	"github.com/factrunner/factrunner/internal/platform/tui"
)

var (
	flagConfig     string
	flagContent    string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game in the terminal.

Controls:
  Enter        - Start
  Space/W/Tap  - Jump, or close a popup
  Right (hold) - Speed up
  R            - Restart (after game over)
  C            - Works cited (after game over)
  Esc/B        - Back
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower scrolling, more room between elements
  normal - Default configuration
  hard   - Faster scrolling, elements packed closer

Examples:
  factrunner play
  factrunner play --difficulty easy
  factrunner play --config ./my-runner.yaml --content ./facts.yaml
  factrunner play --log-file runner.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	for _, cmd := range []*cobra.Command{playCmd, simulateCmd} {
		cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
		cmd.Flags().StringVar(&flagContent, "content", "", "Path to custom facts and citations YAML")
		cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	}
}

// loadGameData resolves the runner config, difficulty and content from flags.
func loadGameData() (config.RunnerConfig, content.Dataset, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.RunnerConfig{}, content.Dataset{}, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.RunnerConfig{}, content.Dataset{}, err
	}
	config.ApplyPreset(&cfg, preset)

	ds, err := content.Load(flagContent)
	if err != nil {
		return config.RunnerConfig{}, content.Dataset{}, err
	}
	return cfg, ds, nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, ds, err := loadGameData()
	if err != nil {
		return err
	}

	// Logs never go to the alt screen
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close

	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	rt.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	logger.Info("starting", "width", rt.ScreenW, "height", rt.ScreenH, "fps", rt.TickRate, "difficulty", flagDifficulty)
	if err := tui.Run(cfg, ds, rt, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
