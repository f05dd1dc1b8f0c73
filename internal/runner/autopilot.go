package runner

import (
	"math"
	"time"
)

// Autopilot plays the game headlessly: it closes popups right away and
// jumps when the nearest obstacle enters its lead distance.
type Autopilot struct {
	lead float64 // Jump when an obstacle's left edge is this close to the player
}

// NewAutopilot derives the lead distance from the game's physics: the
// player must be above the obstacle by the time it arrives.
func NewAutopilot(g *Game) *Autopilot {
	cfg := g.cfg
	clearance := cfg.Elements.Obstacle.Elevation + cfg.Elements.Obstacle.Height
	subTicks := math.Ceil(clearance / cfg.Physics.GravityStep)
	riseTime := time.Duration(subTicks) * g.jump.Interval()
	frames := float64(riseTime)/float64(g.scheduler.Interval()) + 2

	return &Autopilot{lead: cfg.Physics.BaseSpeed * frames}
}

// Lead returns the jump trigger distance in field units.
func (a *Autopilot) Lead() float64 {
	return a.lead
}

// Act feeds at most one input into g based on its current state.
func (a *Autopilot) Act(g *Game) {
	st := g.state
	if !st.Running() {
		return
	}
	if st.Paused {
		g.PrimaryAction()
		return
	}
	if st.Player.Airborne() {
		return
	}

	playerRight := g.collisions.PlayerRect(st.Player).Right()
	for _, el := range st.Elements {
		if el.Kind != KindObstacle {
			continue
		}
		gap := g.collisions.ElementRect(el, g.field).X - playerRight
		if gap > 0 && gap <= a.lead {
			g.PrimaryAction()
			return
		}
	}
}
