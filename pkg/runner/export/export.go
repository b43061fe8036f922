package export

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/growth/pkg/app"
	"tableflip.dev/growth/pkg/journal"
	"tableflip.dev/growth/pkg/logging"
)

// Export writes the journal to Output, or to Out when Output is empty.
type Export struct {
	Service *app.Service
	Format  Format
	Output  string
	Out     io.Writer
}

func (e *Export) Do(ctx context.Context) error {
	if e.Service == nil {
		return app.ErrNoStore
	}
	st, err := e.Service.Snapshot(ctx)
	if err != nil {
		return err
	}

	if e.Output == "" {
		w := e.Out
		if w == nil {
			w = os.Stdout
		}
		return Encode(w, st, e.Format)
	}

	f, err := os.Create(e.Output)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", e.Output, err)
	}
	if err := Encode(f, st, e.Format); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("export: close %s: %w", e.Output, err)
	}
	logging.Logger().Debug("journal exported", "path", e.Output, "format", e.Format)
	return nil
}

// Import replaces the journal with the contents of Input.
type Import struct {
	Service *app.Service
	Input   string
	// Format defaults to the one implied by the file extension.
	Format Format
	Out    io.Writer
}

func (i *Import) Do(ctx context.Context) error {
	if i.Service == nil {
		return app.ErrNoStore
	}
	format := i.Format
	if format == "" {
		format = FormatFor(i.Input)
	}

	f, err := os.Open(i.Input)
	if err != nil {
		return fmt.Errorf("export: open %s: %w", i.Input, err)
	}
	defer f.Close()

	st, err := Decode(f, format)
	if err != nil {
		return fmt.Errorf("export: %s is not a %s journal: %w", i.Input, format, err)
	}
	if err := i.Service.Replace(ctx, st); err != nil {
		return err
	}

	out := i.Out
	if out == nil {
		out = color.Output
	}
	c := st.Counts()
	_, _ = color.New(color.FgGreen).Fprintf(out, "Imported %d %s, %d %s and %d %s with a %d day streak.\n",
		c.Challenges, journal.Challenge.Plural(),
		c.Reflections, journal.Reflection.Plural(),
		c.Achievements, journal.Achievement.Plural(),
		st.Streak)
	return nil
}
