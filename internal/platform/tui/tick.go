// Package tui provides the Bubble Tea integration for Fact Runner.
// It maps terminal keys, mouse presses and window sizes onto the runner
// core and turns the core's timer requests into Bubble Tea commands.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/factrunner/factrunner/internal/runner"
)

// TimerMsg delivers an expired core timer back to the model.
type TimerMsg struct {
	Timer runner.Timer
}

// Clock implements runner.Clock on top of tea.Tick. Armed timers are
// collected until the model drains them into the command it returns.
type Clock struct {
	pending []tea.Cmd
}

// NewClock creates an empty clock.
func NewClock() *Clock {
	return &Clock{}
}

// Arm queues a tick command for t.
func (c *Clock) Arm(t runner.Timer) {
	c.pending = append(c.pending, tea.Tick(t.Delay, func(time.Time) tea.Msg {
		return TimerMsg{Timer: t}
	}))
}

// Drain returns every queued tick as one command, or nil.
func (c *Clock) Drain() tea.Cmd {
	if len(c.pending) == 0 {
		return nil
	}
	cmds := c.pending
	c.pending = nil
	return tea.Batch(cmds...)
}

// accelReleaseMsg ends an accelerate hold unless a newer key press extended it.
type accelReleaseMsg struct {
	gen uint64
}

// accelHold is how long one right-arrow press keeps accelerate held.
// Terminal key repeat arrives well within it.
const accelHold = 150 * time.Millisecond

func accelReleaseCmd(gen uint64) tea.Cmd {
	return tea.Tick(accelHold, func(time.Time) tea.Msg {
		return accelReleaseMsg{gen: gen}
	})
}
