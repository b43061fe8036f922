package resources

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"

	"tableflip.dev/growth/pkg/content"
	"tableflip.dev/growth/pkg/printers"
	"tableflip.dev/growth/pkg/tui/theme"
)

func output(w io.Writer) io.Writer {
	if w == nil {
		return color.Output
	}
	return w
}

// Quote prints a random motivational quote.
type Quote struct {
	Picker content.Picker
	Plain  bool
	Width  int
	Out    io.Writer
}

func (q *Quote) Do(_ context.Context) error {
	quote := q.Picker.Quote()
	if q.Plain {
		pp := printers.PrettyPrint{Out: q.Out, Width: q.Width}
		pp.Quote(quote)
		return nil
	}
	width := q.Width
	if width > 8 {
		width -= 8
	}
	_, err := fmt.Fprintln(output(q.Out), theme.Default().QuoteCard(quote.Text, quote.Author, width))
	return err
}

// Resources prints the recommended books and videos.
type Resources struct {
	Out io.Writer
}

func (r *Resources) Do(_ context.Context) error {
	pp := printers.PrettyPrint{Out: r.Out}
	pp.Resources(content.Books(), content.Videos())
	return nil
}

// About renders the about page.
type About struct {
	// Style is a glamour standard style; empty means "dark".
	Style string
	Width int
	Out   io.Writer
}

func (a *About) Do(_ context.Context) error {
	style := a.Style
	if style == "" {
		style = "dark"
	}
	width := a.Width
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return fmt.Errorf("about: renderer: %w", err)
	}
	md, err := r.Render(content.About())
	if err != nil {
		return fmt.Errorf("about: render: %w", err)
	}
	_, err = fmt.Fprint(output(a.Out), md)
	return err
}

// Assess prints the result of a mindset self-assessment.
type Assess struct {
	Score int
	Out   io.Writer
}

func (a *Assess) Do(_ context.Context) error {
	res, err := content.Assess(a.Score)
	if err != nil {
		return err
	}
	_, err = color.New(color.Bold).Fprintln(output(a.Out), res.String())
	return err
}
