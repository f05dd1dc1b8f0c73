// factrunner is a terminal endless runner that teaches sarcoma facts.
//
// Usage:
//
//	factrunner play          - Play in the terminal
//	factrunner citations     - Print the works cited
//	factrunner simulate      - Run a headless autopilot session
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--log-file <path>   - Write logs to a file (discarded when empty)
//	--log-level <level> - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "factrunner",
	Short: "Fact Runner - jump cones, collect coins, learn facts",
	Long: `Fact Runner is a single-lane endless runner for the terminal.

Jump over traffic cones, collect coins to read a fact about sarcoma and
find hearts to see how to support research.

Available commands:
  play       - Play the game
  citations  - Print the works cited
  simulate   - Run a headless session driven by an autopilot

Examples:
  factrunner play
  factrunner play --difficulty hard
  factrunner citations
  factrunner simulate --ticks 10000 --seed 42`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(citationsCmd)
	rootCmd.AddCommand(simulateCmd)
}

// newLogger creates a logger writing to w, or to --log-file when set.
// The returned close function must be called when done.
func newLogger(w io.Writer) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	closeFn := func() error { return nil }
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "factrunner",
		Level:           level,
	})
	return logger, closeFn, nil
}
