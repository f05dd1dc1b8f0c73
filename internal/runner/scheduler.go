package runner

import "time"

// Scheduler drives the main per-frame tick. At most one frame timer is
// current; Start supersedes any timer still in flight, so a stale
// callback from before a pause or restart can never run a second loop.
type Scheduler struct {
	clock    Clock
	interval time.Duration
	gen      uint64
	current  uint64 // token of the armed frame timer, 0 when stopped
}

// NewScheduler creates a stopped scheduler ticking tickRate times per second.
func NewScheduler(clock Clock, tickRate int) *Scheduler {
	return &Scheduler{
		clock:    clock,
		interval: time.Second / time.Duration(tickRate),
	}
}

// Interval returns the time between ticks.
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// Start arms the next tick.
func (s *Scheduler) Start() {
	s.gen++
	s.current = s.gen
	s.clock.Arm(Timer{Kind: TimerFrame, Token: s.current, Delay: s.interval})
}

// Stop cancels the armed tick, if any.
func (s *Scheduler) Stop() {
	s.current = 0
}

// Armed reports whether a tick is scheduled.
func (s *Scheduler) Armed() bool {
	return s.current != 0
}

// accept consumes the armed tick if token matches it.
func (s *Scheduler) accept(token uint64) bool {
	if token == 0 || token != s.current {
		return false
	}
	s.current = 0
	return true
}
