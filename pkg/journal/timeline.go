package journal

import (
	"sort"
	"time"
)

// Item is an entry tagged with the list it came from.
type Item struct {
	Kind  Kind  `json:"kind"`
	Entry Entry `json:"entry"`
}

// TimelineOptions filters a timeline. Zero values mean no filter.
type TimelineOptions struct {
	Kinds []Kind
	Since time.Time
	Limit int
}

func (o TimelineOptions) wants(k Kind) bool {
	if len(o.Kinds) == 0 {
		return true
	}
	for _, want := range o.Kinds {
		if want == k {
			return true
		}
	}
	return false
}

// Timeline merges every list into one sequence, newest first. Entries sharing
// a timestamp keep their insertion order reversed, so the last one added shows
// first.
func (s *State) Timeline(opts TimelineOptions) []Item {
	items := make([]Item, 0, s.Counts().Total())
	for _, k := range Kinds() {
		if !opts.wants(k) {
			continue
		}
		list, _ := s.List(k)
		for _, e := range list {
			if !opts.Since.IsZero() && e.Date.Before(opts.Since) {
				continue
			}
			items = append(items, Item{Kind: k, Entry: e})
		}
	}
	// Reverse first so the stable sort keeps later insertions ahead on ties.
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Entry.Date.After(items[j].Entry.Date.Time)
	})
	if opts.Limit > 0 && len(items) > opts.Limit {
		items = items[:opts.Limit]
	}
	return items
}

// Newest returns the entries of kind k, most recent insertion first.
func (s *State) Newest(k Kind) []Entry {
	list, _ := s.List(k)
	out := make([]Entry, len(list))
	for i, e := range list {
		out[len(list)-1-i] = e
	}
	return out
}
