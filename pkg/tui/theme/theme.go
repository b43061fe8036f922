package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	primaryHex   = "#6C63FF"
	secondaryHex = "#FF6584"
)

var (
	Primary   = lipgloss.Color(primaryHex)
	Secondary = lipgloss.Color(secondaryHex)
	Accent    = lipgloss.Color("#43B97F")
	Warm      = lipgloss.Color("#FF9D6C")
	Muted     = lipgloss.Color("244")
)

// Theme centralizes Lip Gloss styles for the dashboard and the stats card.
type Theme struct {
	Header  lipgloss.Style
	Footer  FooterTheme
	Panel   PanelTheme
	Streak  CardTheme
	Quote   CardTheme
	Counter CardTheme
	Form    FormTheme
}

// FooterTheme groups styles used by the bottom status bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
}

// PanelTheme styles framed panels and headings.
type PanelTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
	Faint lipgloss.Style
}

// CardTheme styles a small boxed figure.
type CardTheme struct {
	Frame lipgloss.Style
	Label lipgloss.Style
	Value lipgloss.Style
}

// FormTheme styles the entry forms.
type FormTheme struct {
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Prompt    lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	tab := lipgloss.NewStyle().Padding(0, 1).Foreground(Muted)

	return Theme{
		Header: lipgloss.NewStyle().Bold(true).Foreground(Primary),
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(Accent),
			Error:  lipgloss.NewStyle().Foreground(Secondary),
		},
		Panel: PanelTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(Primary).
				Padding(0, 1),
			Title: lipgloss.NewStyle().Bold(true),
			Body:  lipgloss.NewStyle(),
			Faint: lipgloss.NewStyle().Foreground(Muted),
		},
		Streak: CardTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(Warm).
				Padding(0, 2).
				Align(lipgloss.Center),
			Label: lipgloss.NewStyle().Foreground(Muted),
			Value: lipgloss.NewStyle().Bold(true).Foreground(Secondary),
		},
		Quote: CardTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.DoubleBorder()).
				BorderForeground(Primary).
				Padding(0, 2),
			Label: lipgloss.NewStyle().Foreground(Muted).Align(lipgloss.Right),
			Value: lipgloss.NewStyle().Italic(true),
		},
		Counter: CardTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(Muted).
				Padding(0, 1).
				Align(lipgloss.Center),
			Label: lipgloss.NewStyle().Foreground(Muted),
			Value: lipgloss.NewStyle().Bold(true).Foreground(Accent),
		},
		Form: FormTheme{
			Tab:       tab,
			ActiveTab: tab.Foreground(Primary).Bold(true).Underline(true),
			Prompt:    lipgloss.NewStyle().Foreground(Primary),
		},
	}
}

// StreakCard renders the current streak.
func (t Theme) StreakCard(days int) string {
	unit := "Days"
	if days == 1 {
		unit = "Day"
	}
	body := lipgloss.JoinVertical(lipgloss.Center,
		t.Streak.Label.Render("Current Streak"),
		t.Streak.Value.Render(fmt.Sprintf("%d", days)),
		t.Streak.Label.Render(unit),
	)
	return t.Streak.Frame.Render(body)
}

// Counter is one labelled figure in a CountersRow.
type Counter struct {
	Label string
	Value int
}

// CountersRow renders counters side by side.
func (t Theme) CountersRow(counters ...Counter) string {
	cards := make([]string, 0, len(counters))
	for _, c := range counters {
		body := lipgloss.JoinVertical(lipgloss.Center,
			t.Counter.Label.Render(c.Label),
			t.Counter.Value.Render(fmt.Sprintf("%d", c.Value)),
		)
		cards = append(cards, t.Counter.Frame.Render(body))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// QuoteCard renders a quote wrapped to width columns, 0 meaning unbounded.
func (t Theme) QuoteCard(text, author string, width int) string {
	value := t.Quote.Value
	label := t.Quote.Label
	if width > 0 {
		value = value.Width(width)
		label = label.Width(width)
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		value.Render(text),
		label.Render("- "+strings.TrimSpace(author)),
	)
	return t.Quote.Frame.Render(body)
}

// Title renders text in the header style, shaded from Primary to Secondary.
func (t Theme) Title(text string) string {
	return gradient(t.Header, text, primaryHex, secondaryHex)
}

// gradient colors each rune of text on a Luv blend between two hex colors.
func gradient(base lipgloss.Style, text, from, to string) string {
	a, errA := colorful.Hex(from)
	b, errB := colorful.Hex(to)
	runes := []rune(text)
	if errA != nil || errB != nil || len(runes) < 2 {
		return base.Render(text)
	}
	var sb strings.Builder
	last := float64(len(runes) - 1)
	for i, r := range runes {
		c := a.BlendLuv(b, float64(i)/last)
		sb.WriteString(base.Foreground(lipgloss.Color(c.Hex())).Render(string(r)))
	}
	return sb.String()
}
