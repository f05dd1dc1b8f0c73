package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/factrunner/factrunner/internal/config"
	"github.com/factrunner/factrunner/internal/content"
	"github.com/factrunner/factrunner/internal/core"
	"github.com/factrunner/factrunner/internal/runner"
)

// Model is the Bubble Tea model hosting one runner.Game.
type Model struct {
	game      *runner.Game
	clock     *Clock
	screen    *core.Screen
	keys      KeyMap
	citations citationsView
	accelGen  uint64 // Latest accelerate press; older releases are ignored
	quitting  bool
}

// NewModel creates a model for game. clock must be the Clock the game was built with.
func NewModel(game *runner.Game, clock *Clock, cfg core.RuntimeConfig) Model {
	keys := DefaultKeyMap()
	return Model{
		game:      game,
		clock:     clock,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keys:      keys,
		citations: newCitationsView(game.Content(), keys, cfg.ScreenW, cfg.ScreenH),
	}
}

// Init sets the window title. The game waits on the start screen.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("Fact Runner")
}

// Update handles messages and returns any timers the game armed meanwhile.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		m, cmd = m.handleKey(msg)

	case tea.MouseMsg:
		m, cmd = m.dispatch(MapMouse(msg))

	case tea.WindowSizeMsg:
		m.handleResize(msg)

	case TimerMsg:
		m.game.Fire(msg.Timer)

	case accelReleaseMsg:
		if msg.gen == m.accelGen {
			m.game.SetAccelerate(false)
		}
	}

	return m, tea.Batch(cmd, m.clock.Drain())
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	action := m.keys.MapKey(msg)
	if action == core.ActionNone && m.game.Screen() == runner.ScreenCitations {
		var cmd tea.Cmd
		m.citations, cmd = m.citations.update(msg)
		return m, cmd
	}
	return m.dispatch(action)
}

// dispatch applies an action according to the visible screen.
func (m Model) dispatch(action core.Action) (Model, tea.Cmd) {
	screen := m.game.Screen()

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionPrimary:
		switch screen {
		case runner.ScreenStart:
			m.game.StartSession()
		case runner.ScreenPlaying:
			m.game.PrimaryAction()
		}

	case core.ActionAccelerate:
		if screen != runner.ScreenPlaying {
			return m, nil
		}
		m.game.SetAccelerate(true)
		m.accelGen++
		return m, accelReleaseCmd(m.accelGen)

	case core.ActionStart:
		if screen == runner.ScreenStart {
			m.game.StartSession()
		}

	case core.ActionRestart:
		if screen == runner.ScreenGameOver || screen == runner.ScreenCitations {
			m.game.RestartSession()
		}

	case core.ActionCitations:
		if m.game.ShowCitations() {
			m.citations.table.GotoTop()
		}

	case core.ActionBack:
		m.game.CloseCitations()
	}

	return m, nil
}

// handleResize follows the terminal size without resetting the session.
func (m *Model) handleResize(msg tea.WindowSizeMsg) {
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	m.citations.resize(msg.Width, msg.Height)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.game.Screen() == runner.ScreenCitations {
		return m.citations.View()
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run builds a game from the given configuration and plays it until the user quits.
func Run(cfg config.RunnerConfig, ds content.Dataset, rt core.RuntimeConfig, logger *log.Logger) error {
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	if logger == nil {
		logger = log.New(io.Discard)
	}

	clock := NewClock()
	game, err := runner.New(cfg, ds, rt, clock,
		runner.WithLogger(logger),
		runner.WithListener(NewLogListener(logger)),
	)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		NewModel(game, clock, rt),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()
	return err
}
