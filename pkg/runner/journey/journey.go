package journey

import (
	"context"
	"io"
	"time"

	"tableflip.dev/growth/pkg/app"
	"tableflip.dev/growth/pkg/journal"
	"tableflip.dev/growth/pkg/printers"
)

// DefaultLimit is the number of timeline entries shown.
const DefaultLimit = 10

// Journey prints the timeline across kinds, or a single kind as a list when
// List is set.
type Journey struct {
	ShowID bool
	Kinds  []journal.Kind
	Since  time.Time
	Limit  int
	List   bool
	Width  int

	Service *app.Service
	Out     io.Writer
}

func (n *Journey) Do(ctx context.Context) error {
	if n.Service == nil {
		return app.ErrNoStore
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID, Width: n.Width, Out: n.Out}

	if n.List && len(n.Kinds) == 1 {
		k := n.Kinds[0]
		all, err := n.Service.Entries(ctx, k)
		if err != nil {
			return err
		}
		if !n.Since.IsZero() {
			all = since(all, n.Since)
		}
		if n.Limit > 0 && len(all) > n.Limit {
			all = all[:n.Limit]
		}
		pp.TitleWithCount(k.Title()+"s", len(all))
		pp.Entries(k, all...)
		return nil
	}

	limit := n.Limit
	if limit == 0 {
		limit = DefaultLimit
	}
	items, err := n.Service.Timeline(ctx, journal.TimelineOptions{
		Kinds: n.Kinds,
		Since: n.Since,
		Limit: limit,
	})
	if err != nil {
		return err
	}
	pp.Title("📅 My Journey")
	pp.Timeline(items...)
	return nil
}

func since(all []journal.Entry, t time.Time) []journal.Entry {
	out := make([]journal.Entry, 0, len(all))
	for _, e := range all {
		if !e.Date.Before(t) {
			out = append(out, e)
		}
	}
	return out
}
