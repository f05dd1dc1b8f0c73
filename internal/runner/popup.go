package runner

import (
	"github.com/factrunner/factrunner/internal/content"
)

// PopupKind distinguishes the two popups.
type PopupKind uint8

const (
	PopupFact     PopupKind = iota // shown after collecting a coin
	PopupDonation                  // shown after collecting a heart
)

// String returns a human-readable name for the popup kind.
func (k PopupKind) String() string {
	if k == PopupFact {
		return "fact"
	}
	return "donation"
}

// Instruction is the resume hint shown on every popup.
const Instruction = "Press space or touch to resume"

// Popup is the content handed to the presentation layer.
type Popup struct {
	Kind        PopupKind
	Title       string
	Text        string
	Citation    string // Fact popups only
	URL         string // Donation popups only
	Instruction string
}

// PopupGate shows at most one popup at a time and keeps the session's
// paused flag equal to "a popup is visible".
type PopupGate struct {
	content content.Dataset
	rng     Roller
}

// NewPopupGate creates a gate serving the given dataset.
func NewPopupGate(ds content.Dataset, rng Roller) *PopupGate {
	return &PopupGate{content: ds, rng: rng}
}

// Show pauses the session and makes a popup visible. A request while
// another popup is visible is ignored and reports false.
func (g *PopupGate) Show(st *SessionState, kind PopupKind) (Popup, bool) {
	if st.Popup != nil {
		return Popup{}, false
	}

	var p Popup
	switch kind {
	case PopupFact:
		fact := g.content.Facts[g.rng.Intn(len(g.content.Facts))]
		p = Popup{
			Kind:     PopupFact,
			Title:    "DID YOU KNOW?",
			Text:     fact.Text,
			Citation: fact.Citation,
		}
	default:
		p = Popup{
			Kind:  PopupDonation,
			Title: "♥ YOU FOUND A HEART ♥",
			Text:  g.content.DonationMessage,
			URL:   g.content.DonationURL,
		}
	}
	p.Instruction = Instruction

	st.Popup = &p
	st.Paused = true
	return p, true
}

// Hide removes the visible popup and unpauses. It reports false if no
// popup was visible.
func (g *PopupGate) Hide(st *SessionState) bool {
	if st.Popup == nil {
		return false
	}
	st.Popup = nil
	st.Paused = false
	return true
}
