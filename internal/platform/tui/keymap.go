package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/factrunner/factrunner/internal/core"
)

// KeyMap defines the key bindings of the game.
type KeyMap struct {
	Primary    key.Binding
	Accelerate key.Binding
	Start      key.Binding
	Restart    key.Binding
	Citations  key.Binding
	Back       key.Binding
	Quit       key.Binding
	Up         key.Binding // citations table only
	Down       key.Binding // citations table only
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Primary: key.NewBinding(
			key.WithKeys(" ", "w"),
			key.WithHelp("space", "jump / close popup"),
		),
		Accelerate: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→", "speed up"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Citations: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "works cited"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Primary, k.Accelerate, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Primary, k.Accelerate},
		{k.Start, k.Restart, k.Citations},
		{k.Back, k.Quit},
	}
}

// citationsHelp is the help shown under the works cited table.
type citationsHelp struct {
	KeyMap
}

func (k citationsHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Restart, k.Quit}
}

// MapKey translates a key message to a game action.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Primary):
		return core.ActionPrimary
	case key.Matches(msg, k.Accelerate):
		return core.ActionAccelerate
	case key.Matches(msg, k.Start):
		return core.ActionStart
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Citations):
		return core.ActionCitations
	case key.Matches(msg, k.Back):
		return core.ActionBack
	}
	return core.ActionNone
}

// MapMouse treats a button press as a touch, which is the primary action.
// Wheel events and releases are ignored.
func MapMouse(msg tea.MouseMsg) core.Action {
	if msg.Action != tea.MouseActionPress || tea.MouseEvent(msg).IsWheel() {
		return core.ActionNone
	}
	return core.ActionPrimary
}
