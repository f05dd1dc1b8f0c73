package runner

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/factrunner/factrunner/internal/core"
)

// Visual characters for rendering
const (
	RunnerChar = '█'
	RunnerHead = '◆'
	RunnerLeg1 = '╱'
	RunnerLeg2 = '╲'
	ConeChar   = '▲'
	CoinChar   = '●'
	HeartChar  = '♥'
	GroundChar = '═'
)

const popupMaxWidth = 56

// Render draws the current screen into dst. The citations panel is drawn
// by the platform; underneath it the game-over panel stays visible.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	switch g.screen {
	case ScreenStart:
		g.drawPanel(dst, []string{
			"FACT RUNNER",
			"",
			"Jump the traffic cones. Grab coins to learn a fact.",
			"Space or tap: jump / close popup   Right (hold): speed up",
			"",
			"Press Enter to start",
		})
	case ScreenPlaying:
		g.drawField(dst)
		if p := g.state.Popup; p != nil {
			g.drawPopup(dst, *p)
		}
	case ScreenGameOver, ScreenCitations:
		g.drawPanel(dst, []string{
			"GAME OVER",
			"",
			fmt.Sprintf("Final score: %d", g.state.Score),
			"",
			"R restart   C works cited   Q quit",
		})
	}
}

// cellMapper converts play-field units to screen cells.
type cellMapper struct {
	unitsPerCol float64
	unitsPerRow float64
	ground      float64
	groundRow   int
}

func (g *Game) mapper(dst *core.Screen) cellMapper {
	return cellMapper{
		unitsPerCol: g.cfg.Field.UnitsPerColumn,
		unitsPerRow: g.cfg.Field.UnitsPerRow,
		ground:      g.field.GroundLevel,
		groundRow:   dst.Height() - 2,
	}
}

func (m cellMapper) col(x float64) int {
	return int(math.Floor(x / m.unitsPerCol))
}

func (m cellMapper) row(y float64) int {
	return m.groundRow - 1 - int(math.Floor((y-m.ground)/m.unitsPerRow))
}

// cells returns the inclusive cell span covered by r.
func (m cellMapper) cells(r core.Rect) (left, top, right, bottom int) {
	const eps = 1e-6
	return m.col(r.X), m.row(r.Top() - eps), m.col(r.Right() - eps), m.row(r.Y)
}

func (g *Game) drawField(dst *core.Screen) {
	m := g.mapper(dst)

	dst.DrawHLine(0, m.groundRow, dst.Width(), GroundChar, core.ColorGray)

	for _, el := range g.state.Elements {
		g.drawElement(dst, m, el)
	}
	g.drawRunner(dst, m)

	dst.DrawTextColor(2, 0, fmt.Sprintf(" SCORE: %d ", g.state.Score), core.ColorGreen)
	if g.accelerating {
		hint := " >> "
		dst.DrawTextColor(dst.Width()-len(hint)-2, 0, hint, core.ColorYellow)
	}
}

func (g *Game) drawElement(dst *core.Screen, m cellMapper, el Element) {
	r := g.collisions.ElementRect(el, g.field)
	left, top, right, bottom := m.cells(r)

	ch, color := ConeChar, core.ColorOrange
	switch el.Kind {
	case KindCoin:
		ch, color = CoinChar, core.ColorYellow
	case KindHeart:
		ch, color = HeartChar, core.ColorRed
	}
	dst.FillBox(left, top, right-left+1, bottom-top+1, ch, color)
}

func (g *Game) drawRunner(dst *core.Screen, m cellMapper) {
	p := g.state.Player
	left, top, right, bottom := m.cells(g.collisions.PlayerRect(p))

	dst.FillBox(left, top, right-left+1, bottom-top+1, RunnerChar, core.ColorCyan)
	dst.SetColor(right, top, RunnerHead, core.ColorCyan)

	// Legs alternate while running, tuck in the air
	legs := []rune{RunnerLeg1, ' ', RunnerLeg2}
	if p.Airborne() {
		legs = []rune{RunnerLeg1, RunnerLeg2, ' '}
	} else if (g.state.Tick/6)%2 == 1 {
		legs = []rune{' ', RunnerLeg1, RunnerLeg2}
	}
	for x := left; x <= right; x++ {
		dst.SetColor(x, bottom, legs[(x-left)%len(legs)], core.ColorCyan)
	}
}

func (g *Game) drawPopup(dst *core.Screen, p Popup) {
	width := core.Clamp(dst.Width()-4, 0, popupMaxWidth)
	inner := width - 4

	lines := []string{p.Title, ""}
	lines = append(lines, wrap(p.Text, inner)...)
	switch p.Kind {
	case PopupFact:
		if p.Citation != "" {
			lines = append(lines, "")
			lines = append(lines, wrap("Source: "+p.Citation, inner)...)
		}
	case PopupDonation:
		lines = append(lines, "", p.URL)
	}
	lines = append(lines, "", p.Instruction)

	height := len(lines) + 2
	x := (dst.Width() - width) / 2
	y := max((dst.Height()-height)/2, 0)

	dst.FillBox(x, y, width, height, ' ', core.ColorDefault)
	dst.DrawBox(x, y, width, height, core.ColorWhite)
	for i, line := range lines {
		color := core.ColorWhite
		switch {
		case i == 0:
			color = core.ColorYellow
		case i == len(lines)-1:
			color = core.ColorGreen
		}
		lx := x + (width-ansi.StringWidth(line))/2
		dst.DrawTextColor(lx, y+1+i, line, color)
	}
}

// drawPanel draws centered text lines, first line highlighted.
func (g *Game) drawPanel(dst *core.Screen, lines []string) {
	y := max((dst.Height()-len(lines))/2, 0)
	for i, line := range lines {
		color := core.ColorWhite
		if i == 0 {
			color = core.ColorYellow
		}
		dst.DrawTextCentered(y+i, line, color)
	}
}

// wrap breaks text into lines of at most width cells on word boundaries.
// Words longer than width are split.
func wrap(text string, width int) []string {
	if width < 1 || strings.TrimSpace(text) == "" {
		return nil
	}
	wrapped := ansi.Wrap(strings.Join(strings.Fields(text), " "), width, "")
	lines := strings.Split(wrapped, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return lines
}
