package tui

import (
	"github.com/charmbracelet/log"

	"github.com/factrunner/factrunner/internal/runner"
)

// LogListener reports core notifications to a logger.
type LogListener struct {
	logger *log.Logger
}

// NewLogListener creates a listener writing to logger.
func NewLogListener(logger *log.Logger) *LogListener {
	return &LogListener{logger: logger}
}

func (l *LogListener) ScoreChanged(score int) {
	l.logger.Debug("score changed", "score", score)
}

func (l *LogListener) GameOver(finalScore int) {
	l.logger.Info("final score", "score", finalScore)
}

func (l *LogListener) PopupShown(p runner.Popup) {
	l.logger.Debug("popup shown", "kind", p.Kind, "title", p.Title)
}

func (l *LogListener) PopupHidden() {
	l.logger.Debug("popup hidden")
}

func (l *LogListener) ScreenChanged(s runner.ScreenID) {
	l.logger.Debug("screen changed", "screen", s)
}
