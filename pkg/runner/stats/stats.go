package stats

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/fatih/color"

	"tableflip.dev/growth/pkg/app"
	"tableflip.dev/growth/pkg/assets"
	"tableflip.dev/growth/pkg/printers"
	"tableflip.dev/growth/pkg/tui/theme"
)

// Stats prints the dashboard card. Plain renders a table instead of boxes.
type Stats struct {
	Plain bool
	// Fetcher loads the banner animation; nil skips it.
	Fetcher *assets.Fetcher

	Service *app.Service
	Out     io.Writer
}

func (s *Stats) Do(ctx context.Context) error {
	if s.Service == nil {
		return app.ErrNoStore
	}
	st, err := s.Service.Stats(ctx)
	if err != nil {
		return err
	}

	out := s.Out
	if out == nil {
		out = color.Output
	}

	if s.Fetcher != nil {
		if anim, ok := s.Fetcher.Fetch(ctx, assets.GrowthURL); ok {
			_, _ = fmt.Fprintln(out, anim.Banner())
		}
	}

	if s.Plain {
		pp := printers.PrettyPrint{Out: out}
		pp.Title("Your Growth Journey")
		pp.Counts(st.Streak, st.Counts)
		return nil
	}

	th := theme.Default()
	card := lipgloss.JoinHorizontal(lipgloss.Center,
		th.StreakCard(st.Streak),
		"  ",
		th.CountersRow(
			theme.Counter{Label: "Challenges", Value: st.Counts.Challenges},
			theme.Counter{Label: "Reflections", Value: st.Counts.Reflections},
			theme.Counter{Label: "Achievements", Value: st.Counts.Achievements},
		),
	)
	_, _ = fmt.Fprintln(out, card)
	if st.LastVisit != nil {
		_, _ = color.New(color.Faint).Fprintf(out, "last visit %s\n", st.LastVisit)
	}
	return nil
}
