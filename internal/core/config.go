package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Main loop ticks per second (display refresh rate)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the coarse session status the platform needs each frame.
type GameState struct {
	Score    int  // Current score
	Running  bool // Whether a session is in progress
	GameOver bool // Whether the last session has ended
	Paused   bool // Whether a popup is holding the main loop
}
