package runner

import (
	"time"

	"github.com/factrunner/factrunner/internal/config"
	"github.com/factrunner/factrunner/internal/core"
)

// JumpController animates the two-leg jump arc on its own sub-tick timer.
// The timer is not gated by pause: an arc started before a popup keeps
// animating while the main loop is frozen.
type JumpController struct {
	clock    Clock
	interval time.Duration
	height   float64
	step     float64
	gen      uint64
}

// NewJumpController creates a controller using the physics and timing config.
func NewJumpController(clock Clock, timing config.TimingConfig, physics config.PhysicsConfig) *JumpController {
	return &JumpController{
		clock:    clock,
		interval: time.Duration(timing.JumpIntervalMS) * time.Millisecond,
		height:   physics.JumpHeight,
		step:     physics.GravityStep,
	}
}

// Start begins an arc if the player is grounded and no arc timer is pending.
func (j *JumpController) Start(p *Player) bool {
	if p.Phase != Grounded || p.token != 0 {
		return false
	}
	j.gen++
	p.token = j.gen
	p.Phase = Ascending
	j.arm(p.token)
	return true
}

// SubTick advances the arc by one step if token belongs to the player's
// current arc. It reports whether the player moved or changed phase.
func (j *JumpController) SubTick(p *Player, ground float64, token uint64) bool {
	if token == 0 || token != p.token {
		return false
	}

	switch p.Phase {
	case Ascending:
		apex := ground + j.height
		p.Offset = core.ClampF(p.Offset+j.step, ground, apex)
		if p.Offset >= apex {
			p.Phase = Descending
		}
	case Descending:
		p.Offset = core.ClampF(p.Offset-j.step, ground, ground+j.height)
		if p.Offset <= ground {
			p.Phase = Grounded
			p.token = 0
			return true
		}
	default:
		p.token = 0
		return false
	}

	j.arm(p.token)
	return true
}

// StepsPerLeg returns how many sub-ticks each leg of the arc takes.
func (j *JumpController) StepsPerLeg() int {
	steps := int(j.height / j.step)
	if float64(steps)*j.step < j.height {
		steps++
	}
	return steps
}

// Interval returns the sub-tick period.
func (j *JumpController) Interval() time.Duration {
	return j.interval
}

func (j *JumpController) arm(token uint64) {
	j.clock.Arm(Timer{Kind: TimerJump, Token: token, Delay: j.interval})
}
