package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/growth/pkg/journal"
	"tableflip.dev/growth/pkg/timeutil"
)

// JourneyOptions filter timelines and lists.
type JourneyOptions struct {
	Limit  int
	Last   string
	Kinds  []string
	ShowID bool
}

func AddJourneyArgs(cmd *cobra.Command, o *JourneyOptions, limit int) {
	cmd.Flags().IntVarP(&o.Limit, "limit", "n", limit,
		"Maximum number of entries to show.")
	cmd.Flags().StringVar(&o.Last, "last", "",
		`Only show entries from the last window, example: --last=1w, --last=3d or --last=1mo.`)
	cmd.Flags().BoolVar(&o.ShowID, "show-id", false,
		"Show entry ids.")
}

func AddKindArgs(cmd *cobra.Command, o *JourneyOptions) {
	cmd.Flags().StringSliceVarP(&o.Kinds, "kind", "k", nil,
		"Restrict to challenge, reflection or achievement. Repeatable.")
}

// GetKinds resolves --kind values.
func (o *JourneyOptions) GetKinds() ([]journal.Kind, error) {
	kinds := make([]journal.Kind, 0, len(o.Kinds))
	for _, s := range o.Kinds {
		k, err := journal.ParseKind(s)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

// GetSince resolves --last relative to now.
func (o *JourneyOptions) GetSince(now time.Time) (time.Time, error) {
	if o.Last == "" {
		return time.Time{}, nil
	}
	w, err := timeutil.ParseWindow(o.Last)
	if err != nil {
		return time.Time{}, err
	}
	return w.Since(now), nil
}
