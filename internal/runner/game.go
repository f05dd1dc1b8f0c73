// Package runner implements the endless-runner core: spawn scheduling,
// scrolling, the jump arc, collision outcomes, popups and the session
// state machine. It owns the authoritative position model; presentation
// layers only render what it computes and feed input back in.
package runner

import (
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/factrunner/factrunner/internal/config"
	"github.com/factrunner/factrunner/internal/content"
	"github.com/factrunner/factrunner/internal/core"
)

// Game wires the components around one SessionState.
type Game struct {
	cfg     config.RunnerConfig
	content content.Dataset
	field   Field
	screen  ScreenID

	state        *SessionState
	accelerating bool

	scheduler  *Scheduler
	spawner    *Spawner
	scroll     *ScrollEngine
	jump       *JumpController
	collisions *CollisionDetector
	popups     *PopupGate

	listener Listener
	logger   *log.Logger
}

// Option customizes a Game.
type Option func(*Game)

// WithListener registers the presentation-layer listener.
func WithListener(l Listener) Option {
	return func(g *Game) { g.listener = l }
}

// WithLogger sets the logger for session events. A nil logger is ignored.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithRoller replaces the seeded RNG, mainly for tests.
func WithRoller(r Roller) Option {
	return func(g *Game) {
		g.spawner.rng = r
		g.popups.rng = r
	}
}

// New builds a game in the NotStarted state. It fails fast on invalid
// configuration or content instead of failing mid-session.
func New(cfg config.RunnerConfig, ds content.Dataset, rt core.RuntimeConfig, clock Clock, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	if rt.TickRate <= 0 {
		return nil, fmt.Errorf("runner: tick rate must be positive, got %d", rt.TickRate)
	}
	if clock == nil {
		return nil, errors.New("runner: nil clock")
	}

	rng := rand.New(rand.NewSource(rt.Seed))
	g := &Game{
		cfg:        cfg,
		content:    ds,
		screen:     ScreenStart,
		scheduler:  NewScheduler(clock, rt.TickRate),
		spawner:    NewSpawner(cfg.Spawn, rng),
		scroll:     NewScrollEngine(cfg.Physics.Boost, cfg.Spawn.RetireMargin),
		jump:       NewJumpController(clock, cfg.Timing, cfg.Physics),
		collisions: NewCollisionDetector(cfg.Player, cfg.Elements),
		popups:     NewPopupGate(ds, rng),
		listener:   NopListener{},
		logger:     log.New(io.Discard),
	}
	g.Resize(rt.ScreenW, rt.ScreenH)
	g.state = g.freshState(PhaseNotStarted)

	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

func (g *Game) freshState(phase Phase) *SessionState {
	return &SessionState{
		Phase:              phase,
		Speed:              g.cfg.Physics.BaseSpeed,
		NextSpawnThreshold: g.cfg.Spawn.InitialThreshold,
		History:            make([]Kind, 0, g.cfg.Spawn.HistorySize),
		Elements:           make([]Element, 0, 8),
		Player:             Player{Offset: g.cfg.Physics.GroundLevel},
	}
}

// StartSession resets all per-session state and starts running.
// It is valid from any phase; calling it twice fully resets twice.
func (g *Game) StartSession() {
	// A fresh player has no arc token, so timers of an old arc are dropped.
	if g.popups.Hide(g.state) {
		g.listener.PopupHidden()
	}

	g.state = g.freshState(PhaseRunning)
	g.scheduler.Start()

	g.logger.Info("session started", "field", g.field.Width, "speed", g.state.Speed)
	g.listener.ScoreChanged(0)
	g.setScreen(ScreenPlaying)
}

// RestartSession is StartSession invoked from the game-over screen.
func (g *Game) RestartSession() {
	g.StartSession()
}

// endSession moves to GameOver and stops the main tick.
func (g *Game) endSession() {
	st := g.state
	st.Phase = PhaseGameOver
	g.scheduler.Stop()
	if g.popups.Hide(st) {
		g.listener.PopupHidden()
	}

	g.logger.Info("game over", "score", st.Score, "tick", st.Tick)
	g.listener.GameOver(st.Score)
	g.setScreen(ScreenGameOver)
}

// Fire delivers an expired timer. Superseded timers are ignored.
func (g *Game) Fire(t Timer) {
	switch t.Kind {
	case TimerFrame:
		g.frame(t.Token)
	case TimerJump:
		g.jump.SubTick(&g.state.Player, g.field.GroundLevel, t.Token)
	}
}

// frame runs one main tick: spawn, scroll, collide, in that order.
// The next tick is armed only while the session stays active.
func (g *Game) frame(token uint64) {
	if !g.scheduler.accept(token) {
		g.logger.Debug("dropped stale frame timer", "token", token)
		return
	}
	st := g.state
	if !st.Active() {
		return
	}

	st.Tick++
	if kind, ok := g.spawner.Step(st); ok {
		g.logger.Debug("spawned", "kind", kind, "tick", st.Tick)
	}
	g.scroll.Step(st, g.field, g.accelerating)
	for _, kind := range g.collisions.Step(st, g.field) {
		g.collide(kind)
	}

	if st.Active() {
		g.scheduler.Start()
	}
}

func (g *Game) collide(kind Kind) {
	st := g.state
	switch kind {
	case KindObstacle:
		g.endSession()
	case KindCoin:
		st.Score++
		g.listener.ScoreChanged(st.Score)
		g.showPopup(PopupFact)
	case KindHeart:
		g.showPopup(PopupDonation)
	}
}

func (g *Game) showPopup(kind PopupKind) {
	p, ok := g.popups.Show(g.state, kind)
	if !ok {
		g.logger.Debug("popup already visible, request ignored", "kind", kind)
		return
	}
	g.logger.Debug("popup shown", "kind", kind, "tick", g.state.Tick)
	g.listener.PopupShown(p)
}

// PrimaryAction handles the jump-or-dismiss control.
func (g *Game) PrimaryAction() {
	if g.state.Paused {
		g.Dismiss()
		return
	}
	g.Jump()
}

// Dismiss hides the visible popup and re-arms the main tick.
// It reports false, doing nothing, when no popup is visible.
func (g *Game) Dismiss() bool {
	if !g.state.Paused {
		return false
	}
	g.popups.Hide(g.state)
	g.listener.PopupHidden()
	if g.state.Active() {
		g.scheduler.Start()
	}
	return true
}

// Jump starts an arc when grounded in an active session.
func (g *Game) Jump() bool {
	if !g.state.Active() {
		return false
	}
	return g.jump.Start(&g.state.Player)
}

// SetAccelerate records whether the accelerate control is held.
func (g *Game) SetAccelerate(held bool) {
	g.accelerating = held
}

// ShowCitations opens the works cited from the game-over screen.
func (g *Game) ShowCitations() bool {
	if g.screen != ScreenGameOver {
		return false
	}
	g.setScreen(ScreenCitations)
	return true
}

// CloseCitations returns from the works cited to the game-over screen.
func (g *Game) CloseCitations() bool {
	if g.screen != ScreenCitations {
		return false
	}
	g.setScreen(ScreenGameOver)
	return true
}

func (g *Game) setScreen(s ScreenID) {
	if g.screen == s {
		return
	}
	g.screen = s
	g.listener.ScreenChanged(s)
}

// Resize updates the field from the presentation surface size in cells.
// A running session keeps going; only retirement and collision math change.
func (g *Game) Resize(cols, _ int) {
	g.field = Field{
		Width:       float64(cols) * g.cfg.Field.UnitsPerColumn,
		GroundLevel: g.cfg.Physics.GroundLevel,
	}
}

// Field returns the current play-field geometry.
func (g *Game) Field() Field {
	return g.field
}

// Screen returns the panel currently shown.
func (g *Game) Screen() ScreenID {
	return g.screen
}

// Content returns the injected dataset.
func (g *Game) Content() content.Dataset {
	return g.content
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.RunnerConfig {
	return g.cfg
}

// Tick returns the number of main ticks processed this session.
func (g *Game) Tick() int {
	return g.state.Tick
}

// Ticking reports whether a main tick is armed.
func (g *Game) Ticking() bool {
	return g.scheduler.Armed()
}

// State returns the coarse status for the platform.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score,
		Running:  g.state.Running(),
		GameOver: g.state.Phase == PhaseGameOver,
		Paused:   g.state.Paused,
	}
}

// Snapshot is a read-only copy of the session for renderers, bots and tests.
type Snapshot struct {
	Phase    Phase
	Screen   ScreenID
	Paused   bool
	Score    int
	Tick     int
	Player   Player
	Elements []Element
	History  []Kind
	Popup    *Popup
}

// Snapshot copies the current session.
func (g *Game) Snapshot() Snapshot {
	st := g.state
	s := Snapshot{
		Phase:    st.Phase,
		Screen:   g.screen,
		Paused:   st.Paused,
		Score:    st.Score,
		Tick:     st.Tick,
		Player:   st.Player,
		Elements: append([]Element(nil), st.Elements...),
		History:  append([]Kind(nil), st.History...),
	}
	if st.Popup != nil {
		p := *st.Popup
		s.Popup = &p
	}
	return s
}
