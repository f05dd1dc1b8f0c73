package runner

import "time"

// TimerKind tells which periodic source a timer belongs to.
type TimerKind uint8

const (
	TimerFrame TimerKind = iota // main loop tick
	TimerJump                   // jump arc sub-tick
)

// String returns a human-readable name for the timer kind.
func (k TimerKind) String() string {
	if k == TimerFrame {
		return "frame"
	}
	return "jump"
}

// Timer is a one-shot callback request. The clock hands it back to
// Game.Fire after Delay; Token lets the receiver drop superseded timers.
type Timer struct {
	Kind  TimerKind
	Token uint64
	Delay time.Duration
}

// Clock arms one-shot timers. Implementations must deliver every timer
// on the goroutine that drives the Game; the core does no locking.
type Clock interface {
	Arm(t Timer)
}

// ManualClock is a virtual-time Clock. Timers fire only when the driver
// pulls them with Next, which makes sessions fully deterministic.
type ManualClock struct {
	now     time.Duration
	seq     uint64
	pending []scheduledTimer
}

type scheduledTimer struct {
	due   time.Duration
	seq   uint64
	timer Timer
}

// NewManualClock creates a clock at virtual time zero.
func NewManualClock() *ManualClock {
	return &ManualClock{}
}

// Arm schedules t at now+t.Delay.
func (c *ManualClock) Arm(t Timer) {
	c.seq++
	c.pending = append(c.pending, scheduledTimer{due: c.now + t.Delay, seq: c.seq, timer: t})
}

// Now returns the current virtual time.
func (c *ManualClock) Now() time.Duration {
	return c.now
}

// Pending returns the number of armed timers of the given kind.
func (c *ManualClock) Pending(kind TimerKind) int {
	n := 0
	for _, p := range c.pending {
		if p.timer.Kind == kind {
			n++
		}
	}
	return n
}

// Next removes the earliest timer, advances virtual time to its due time
// and returns it. Timers due at the same instant come out in arming order.
func (c *ManualClock) Next() (Timer, bool) {
	if len(c.pending) == 0 {
		return Timer{}, false
	}
	best := 0
	for i, p := range c.pending[1:] {
		b := c.pending[best]
		if p.due < b.due || (p.due == b.due && p.seq < b.seq) {
			best = i + 1
		}
	}
	next := c.pending[best]
	c.pending = append(c.pending[:best], c.pending[best+1:]...)
	if next.due > c.now {
		c.now = next.due
	}
	return next.timer, true
}
