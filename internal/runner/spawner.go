package runner

import (
	"github.com/factrunner/factrunner/internal/config"
)

// Roller is the randomness source used by the core. *rand.Rand satisfies it.
type Roller interface {
	Float64() float64
	Intn(n int) int
}

// Spawner decides once per tick whether a new element enters the field.
type Spawner struct {
	cfg config.SpawnConfig
	rng Roller
}

// NewSpawner creates a spawner for the given configuration.
func NewSpawner(cfg config.SpawnConfig, rng Roller) *Spawner {
	return &Spawner{cfg: cfg, rng: rng}
}

// Step advances the spawn countdown and spawns at most one element.
// It reports the kind spawned, if any.
func (s *Spawner) Step(st *SessionState) (Kind, bool) {
	st.TicksSinceLastSpawn++
	if st.TicksSinceLastSpawn < st.NextSpawnThreshold {
		return 0, false
	}

	kind := s.breakRepeat(st.History, s.draw())

	st.Elements = append(st.Elements, Element{
		Kind:      kind,
		Offset:    s.cfg.StartOffset,
		SpawnedAt: st.Tick,
	})

	st.History = append(st.History, kind)
	if len(st.History) > s.cfg.HistorySize {
		st.History = st.History[len(st.History)-s.cfg.HistorySize:]
	}

	st.TicksSinceLastSpawn = 0
	st.NextSpawnThreshold = s.rollThreshold()
	return kind, true
}

// draw picks a kind by the configured weights.
func (s *Spawner) draw() Kind {
	w := s.cfg.Weights
	r := s.rng.Float64() * w.Total()
	switch {
	case r < w.Obstacle:
		return KindObstacle
	case r < w.Obstacle+w.Coin:
		return KindCoin
	default:
		return KindHeart
	}
}

// breakRepeat forces an obstacle when drawn would be the third
// identical kind in a row.
func (s *Spawner) breakRepeat(history []Kind, drawn Kind) Kind {
	n := len(history)
	if n < 2 {
		return drawn
	}
	if history[n-1] == history[n-2] && history[n-1] == drawn {
		return KindObstacle
	}
	return drawn
}

// rollThreshold samples the next countdown uniformly in [MinInterval, MaxInterval).
func (s *Spawner) rollThreshold() int {
	return s.cfg.MinInterval + s.rng.Intn(s.cfg.MaxInterval-s.cfg.MinInterval)
}
