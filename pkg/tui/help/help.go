// Package help renders the key reference shown over the dashboard.
package help

import (
	_ "embed"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/growth/pkg/tui/theme"
)

//go:embed help.md
var helpMarkdown string

// Model renders the help page inside a bordered, scrollable viewport.
type Model struct {
	viewport viewport.Model
	width    int
	height   int

	frame lipgloss.Style
	err   error
}

// New constructs a help page sized to the provided bounds.
func New(width, height int) Model {
	m := Model{
		viewport: viewport.New(1, 1),
		frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Primary),
	}
	m.SetSize(width, height)
	return m
}

// Update forwards scrolling to the viewport.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	body := m.viewport.View()
	if m.err != nil {
		body = "help unavailable: " + m.err.Error()
	}
	return m.frame.Render(body)
}

// SetSize fits the page into width by height cells and re-renders the
// markdown to the new width.
func (m *Model) SetSize(width, height int) {
	width = max(width, 32)
	height = max(height, 8)
	if m.width == width && m.height == height {
		return
	}
	m.width = width
	m.height = height

	innerWidth := max(width-m.frame.GetHorizontalFrameSize(), 1)
	innerHeight := max(height-m.frame.GetVerticalFrameSize(), 1)
	m.viewport.Width = innerWidth
	m.viewport.Height = innerHeight
	m.render(innerWidth)
}

func (m *Model) render(wrap int) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("notty"),
		glamour.WithWordWrap(max(wrap-2, 10)),
	)
	if err != nil {
		m.err = err
		return
	}
	out, err := r.Render(strings.TrimSpace(helpMarkdown))
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.viewport.SetContent(strings.Trim(out, "\n"))
	m.viewport.SetYOffset(0)
}
