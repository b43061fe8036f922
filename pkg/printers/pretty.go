package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/growth/pkg/content"
	"tableflip.dev/growth/pkg/journal"
	"tableflip.dev/growth/pkg/timeutil"
)

const (
	// LayoutTimeline is used for timeline rows.
	LayoutTimeline = "Jan 02, 2006 15:04"
	// LayoutList is used for per-kind lists.
	LayoutList = "Jan 02, 2006"
)

type PrettyPrint struct {
	ShowID bool
	// Width wraps entry text; 0 disables wrapping.
	Width int
	// Out defaults to color.Output.
	Out io.Writer
}

var (
	spacing = strings.Repeat(" ", len("8a3f2c1e  "))
)

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out())
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)
	w := pp.out()

	if pp.ShowID {
		_, _ = t.Fprint(w, spacing)
	}
	_, _ = t.Fprint(w, title)
	_, _ = c.Fprintf(w, " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(w, " entry")
	default:
		_, _ = c.Fprintln(w, " entries")
	}
}

func (pp *PrettyPrint) none(msg string) {
	f := color.New(color.Faint, color.Italic)
	if pp.ShowID {
		_, _ = f.Fprint(pp.out(), spacing)
	}
	_, _ = f.Fprintf(pp.out(), " %s\n\n", msg)
}

func (pp *PrettyPrint) id(e journal.Entry) {
	if !pp.ShowID {
		return
	}
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	short := e.ShortID()
	_, _ = y.Fprint(pp.out(), short)
	if pad := len(spacing) - len(short); pad > 0 {
		_, _ = y.Fprint(pp.out(), strings.Repeat(" ", pad))
	}
}

// wrap wraps text and indents continuation lines by indent columns.
func (pp *PrettyPrint) wrap(text string, indent int) string {
	if pp.Width <= indent {
		return text
	}
	lines := strings.Split(wordwrap.String(text, pp.Width-indent), "\n")
	return strings.Join(lines, "\n"+strings.Repeat(" ", indent))
}

// Timeline prints items newest first, as returned by journal.State.Timeline.
func (pp *PrettyPrint) Timeline(items ...journal.Item) {
	if len(items) == 0 {
		pp.none("No entries yet. Start your journey with growth add.")
		return
	}
	faint := color.New(color.Faint)
	indent := 3
	if pp.ShowID {
		indent += len(spacing)
	}
	for _, it := range items {
		pp.id(it.Entry)
		_, _ = fmt.Fprintf(pp.out(), "%s %s\n", it.Kind.Symbol(), pp.wrap(it.Entry.Text, indent))
		_, _ = faint.Fprintf(pp.out(), "%s%s\n", strings.Repeat(" ", indent), it.Entry.Date.Local().Format(LayoutTimeline))
	}
	pp.NewLine()
}

// Entries prints one list, newest first.
func (pp *PrettyPrint) Entries(k journal.Kind, entries ...journal.Entry) {
	if len(entries) == 0 {
		pp.none(fmt.Sprintf("No %s recorded yet", k.Plural()))
		return
	}
	faint := color.New(color.Faint)
	prompt := color.New(color.FgCyan, color.Italic)
	indent := 3
	if pp.ShowID {
		indent += len(spacing)
	}
	pad := strings.Repeat(" ", indent)
	for _, e := range entries {
		pp.id(e)
		_, _ = fmt.Fprintf(pp.out(), "%s %s\n", k.Symbol(), pp.wrap(e.Text, indent))
		if e.Prompt != "" {
			_, _ = prompt.Fprintf(pp.out(), "%s%s\n", pad, e.Prompt)
		}
		_, _ = faint.Fprintf(pp.out(), "%s%s\n", pad, e.Date.Local().Format(LayoutList))
	}
	pp.NewLine()
}

// Added confirms a new entry, or reports that empty text recorded nothing.
func (pp *PrettyPrint) Added(k journal.Kind, e *journal.Entry) {
	if e == nil {
		pp.none(fmt.Sprintf("Nothing recorded, the %s was empty.", k))
		return
	}
	g := color.New(color.FgGreen)
	msg := map[journal.Kind]string{
		journal.Challenge:   "Challenge recorded! 💪",
		journal.Reflection:  "Reflection saved! ✨",
		journal.Achievement: "Achievement added! 🎉",
	}[k]
	_, _ = g.Fprintln(pp.out(), msg)
}

// Streak prints the visit result line.
func (pp *PrettyPrint) Streak(days int, lastVisit *timeutil.Date) {
	b := color.New(color.Bold, color.FgHiMagenta)
	unit := "days"
	if days == 1 {
		unit = "day"
	}
	_, _ = b.Fprintf(pp.out(), "🔥 %d %s", days, unit)
	if lastVisit != nil {
		_, _ = color.New(color.Faint).Fprintf(pp.out(), "  last visit %s", lastVisit)
	}
	pp.NewLine()
}

// Counts prints the quick stats table.
func (pp *PrettyPrint) Counts(streak int, c journal.Counts) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Streak"), streak)
	tbl.AddRow(bold.Sprint(journal.Challenge.Title()+"s"), c.Challenges)
	tbl.AddRow(bold.Sprint(journal.Reflection.Title()+"s"), c.Reflections)
	tbl.AddRow(bold.Sprint(journal.Achievement.Title()+"s"), c.Achievements)
	tbl.RightAlign(1)

	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Quote prints a quote with its author.
func (pp *PrettyPrint) Quote(q content.Quote) {
	i := color.New(color.Italic)
	_, _ = i.Fprintln(pp.out(), pp.wrap(q.Text, 0))
	_, _ = color.New(color.Faint).Fprintf(pp.out(), "  - %s\n", q.Author)
}

// Resources prints the recommended books and videos.
func (pp *PrettyPrint) Resources(books []content.Book, videos []content.Video) {
	pp.Title("📚 Recommended Books")
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 50
	tbl.Wrap = true
	for _, b := range books {
		tbl.AddRow(color.New(color.Bold).Sprint(b.Title), "by "+b.Author)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()

	pp.Title("🎥 Video Resources")
	for _, v := range videos {
		_, _ = fmt.Fprintf(pp.out(), "  %s\n", v.URL)
	}
	pp.NewLine()
}
