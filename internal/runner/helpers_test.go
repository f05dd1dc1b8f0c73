package runner

import (
	"fmt"
	"testing"

	"github.com/factrunner/factrunner/internal/config"
	"github.com/factrunner/factrunner/internal/content"
	"github.com/factrunner/factrunner/internal/core"
)

// scriptRoller replays fixed values. Float64 walks floats and then keeps
// returning the last one; Intn walks ints the same way, reduced mod n.
type scriptRoller struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (r *scriptRoller) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[min(r.fi, len(r.floats)-1)]
	r.fi++
	return v
}

func (r *scriptRoller) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[min(r.ii, len(r.ints)-1)]
	r.ii++
	return v % n
}

// Draw values for the default 0.65/0.25/0.10 weights.
const (
	drawObstacle = 0.0
	drawCoin     = 0.7
	drawHeart    = 0.95
)

// recorder captures listener notifications in order.
type recorder struct {
	events []string
}

func (r *recorder) ScoreChanged(score int)   { r.add("score:%d", score) }
func (r *recorder) GameOver(finalScore int)  { r.add("gameover:%d", finalScore) }
func (r *recorder) PopupShown(p Popup)       { r.add("popup:%s", p.Kind) }
func (r *recorder) PopupHidden()             { r.add("hidden") }
func (r *recorder) ScreenChanged(s ScreenID) { r.add("screen:%s", s) }

func (r *recorder) add(format string, args ...any) {
	r.events = append(r.events, fmt.Sprintf(format, args...))
}

func (r *recorder) count(event string) int {
	n := 0
	for _, e := range r.events {
		if e == event {
			n++
		}
	}
	return n
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
}

// newTestGame builds a game with a scripted roller on a manual clock.
// The default field is 80 columns * 8 units = 640 units wide.
func newTestGame(t *testing.T, roller Roller, mutate func(*config.RunnerConfig)) (*Game, *ManualClock, *recorder) {
	t.Helper()

	cfg := config.DefaultRunnerConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	ds, err := content.Default()
	if err != nil {
		t.Fatalf("content.Default() failed: %v", err)
	}

	clk := NewManualClock()
	rec := &recorder{}
	g, err := New(cfg, ds, testRuntime(), clk, WithListener(rec), WithRoller(roller))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return g, clk, rec
}

// runUntil fires timers until done reports true or the clock runs dry.
func runUntil(g *Game, clk *ManualClock, done func() bool) bool {
	for !done() {
		tm, ok := clk.Next()
		if !ok {
			return false
		}
		g.Fire(tm)
	}
	return true
}

// runTicks fires timers until n more main ticks have been processed.
func runTicks(g *Game, clk *ManualClock, n int) bool {
	target := g.state.Tick + n
	return runUntil(g, clk, func() bool { return g.state.Tick >= target })
}
