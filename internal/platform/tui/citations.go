package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/factrunner/factrunner/internal/content"
)

// Citations layout constants
const (
	labelColumnWidth = 14
	detailHeight     = 7 // Wrapped text and source of the selected row
	chromeHeight     = 6 // Title, subtitle, table border and help
)

var (
	citationsTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("229"))
	citationsHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("220")).
				MarginBottom(1)
	detailStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	sourceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Italic(true)
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// citationsView is the works cited screen: a table of every entry and the
// full text of the selected one underneath.
type citationsView struct {
	lines  []content.CitedLine
	table  table.Model
	help   help.Model
	keys   citationsHelp
	width  int
	height int
}

func newCitationsView(ds content.Dataset, keys KeyMap, width, height int) citationsView {
	v := citationsView{
		lines: ds.WorksCited(),
		help:  help.New(),
		keys:  citationsHelp{keys},
	}
	v.resize(width, height)
	return v
}

// resize rebuilds the table for a new terminal size, keeping the cursor.
func (v *citationsView) resize(width, height int) {
	v.width, v.height = width, height
	v.help.Width = width

	textWidth := max(width-labelColumnWidth-8, 20)
	columns := []table.Column{
		{Title: "Entry", Width: labelColumnWidth},
		{Title: "Text", Width: textWidth},
	}

	rows := make([]table.Row, len(v.lines))
	for i, l := range v.lines {
		rows[i] = table.Row{l.Label, l.Text}
	}

	cursor := v.table.Cursor()
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(height-detailHeight-chromeHeight, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	t.SetCursor(cursor)

	v.table = t
}

func (v citationsView) update(msg tea.KeyMsg) (citationsView, tea.Cmd) {
	var cmd tea.Cmd
	v.table, cmd = v.table.Update(msg)
	return v, cmd
}

// selected returns the entry under the cursor.
func (v citationsView) selected() (content.CitedLine, bool) {
	i := v.table.Cursor()
	if i < 0 || i >= len(v.lines) {
		return content.CitedLine{}, false
	}
	return v.lines[i], true
}

func (v citationsView) View() string {
	var b strings.Builder

	b.WriteString(citationsTitleStyle.Render("WORKS CITED"))
	b.WriteString("\n")
	b.WriteString(citationsHeaderStyle.Render("FUN FACTS"))
	b.WriteString("\n")
	b.WriteString(v.table.View())
	b.WriteString("\n")

	if line, ok := v.selected(); ok {
		detail := line.Label + ": " + line.Text
		if line.Source != "" {
			detail += "\n" + sourceStyle.Render("Source: "+line.Source)
		}
		b.WriteString(detailStyle.Width(max(v.width-4, 20)).Render(detail))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(v.help.View(v.keys)))
	return b.String()
}
