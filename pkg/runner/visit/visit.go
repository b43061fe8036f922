package visit

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/growth/pkg/app"
	"tableflip.dev/growth/pkg/printers"
)

// Visit records a visit for the service's current day.
type Visit struct {
	Service *app.Service
	Out     io.Writer
}

func (v *Visit) Do(ctx context.Context) error {
	if v.Service == nil {
		return app.ErrNoStore
	}
	sess, err := v.Service.Start(ctx)
	if err != nil {
		return err
	}
	res := sess.Visit

	out := v.Out
	if out == nil {
		out = color.Output
	}
	faint := color.New(color.Faint)
	switch {
	case res.FirstVisit:
		_, _ = fmt.Fprintln(out, "Welcome! Your growth journey starts today.")
	case res.Reset:
		_, _ = faint.Fprintf(out, "It has been %d days, starting a new streak.\n", res.DaysDiff)
	case res.Changed:
		_, _ = fmt.Fprintln(out, "Welcome back, streak extended.")
	default:
		_, _ = faint.Fprintln(out, "Already visited today.")
	}

	stats, err := v.Service.Stats(ctx)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{Out: out}
	pp.Streak(stats.Streak, stats.LastVisit)
	return nil
}
