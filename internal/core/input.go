package core

// Action is a semantic input event, abstracted from physical keys and touches.
type Action int

const (
	ActionNone       Action = iota
	ActionPrimary           // Space, tap - jump, or dismiss a popup
	ActionAccelerate        // Right arrow held - scroll faster
	ActionStart             // Enter - start from the title screen
	ActionRestart           // R - restart after game over
	ActionCitations         // C - open works cited from game over
	ActionBack              // Esc, B - leave the citations screen
	ActionQuit              // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPrimary:
		return "Primary"
	case ActionAccelerate:
		return "Accelerate"
	case ActionStart:
		return "Start"
	case ActionRestart:
		return "Restart"
	case ActionCitations:
		return "Citations"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
