package runner

// ScreenID names a panel of the presentation layer.
type ScreenID uint8

const (
	ScreenStart ScreenID = iota
	ScreenPlaying
	ScreenGameOver
	ScreenCitations
)

// String returns a human-readable name for the screen.
func (s ScreenID) String() string {
	switch s {
	case ScreenStart:
		return "start"
	case ScreenPlaying:
		return "playing"
	case ScreenGameOver:
		return "game-over"
	case ScreenCitations:
		return "citations"
	default:
		return "unknown"
	}
}

// Listener receives the notifications the core reports to the presentation layer.
// All calls happen synchronously on the goroutine driving the Game.
type Listener interface {
	ScoreChanged(score int)
	GameOver(finalScore int)
	PopupShown(p Popup)
	PopupHidden()
	ScreenChanged(s ScreenID)
}

// NopListener ignores every notification. Embed it to implement only some methods.
type NopListener struct{}

func (NopListener) ScoreChanged(int)       {}
func (NopListener) GameOver(int)           {}
func (NopListener) PopupShown(Popup)       {}
func (NopListener) PopupHidden()           {}
func (NopListener) ScreenChanged(ScreenID) {}
