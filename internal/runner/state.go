package runner

// Phase is the top-level session state. Paused is an orthogonal flag.
type Phase uint8

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not-started"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// SessionState is everything that lives for exactly one session.
// It is owned by Game and passed explicitly to each component;
// starting a session replaces it wholesale.
type SessionState struct {
	Phase  Phase
	Paused bool
	Score  int
	Speed  float64
	Tick   int // Main ticks processed this session

	TicksSinceLastSpawn int
	NextSpawnThreshold  int
	History             []Kind // Most recent spawn last

	Elements []Element
	Player   Player
	Popup    *Popup // Visible popup, nil when none
}

// Running reports whether the session is in progress (paused or not).
func (s *SessionState) Running() bool {
	return s.Phase == PhaseRunning
}

// Active reports whether main ticks should be processed.
func (s *SessionState) Active() bool {
	return s.Running() && !s.Paused
}
