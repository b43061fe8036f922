// Package streak maintains the consecutive-day visit counter of a journal.
package streak

import (
	"tableflip.dev/growth/pkg/journal"
	"tableflip.dev/growth/pkg/timeutil"
)

// Result describes what a call to Update did.
type Result struct {
	// Changed is false when today was already recorded.
	Changed    bool `json:"changed"`
	Previous   int  `json:"previous"`
	Streak     int  `json:"streak"`
	FirstVisit bool `json:"firstVisit"`
	// Reset is set when at least one full day was missed.
	Reset bool `json:"reset"`
	// DaysDiff is the days since the previous visit; zero on the first visit
	// and on a same-day no-op.
	DaysDiff int `json:"daysDiff"`
}

// Update records a visit on today. A second call on the same date is a no-op.
// The caller persists the state when Result.Changed is set.
//
// A negative gap (the clock moved backwards) counts as consecutive.
func Update(s *journal.State, today timeutil.Date) Result {
	res := Result{Previous: s.Streak, Streak: s.Streak}
	if s.LastVisit != nil && *s.LastVisit == today {
		return res
	}

	switch {
	case s.LastVisit == nil:
		res.FirstVisit = true
		s.Streak = 1
	default:
		res.DaysDiff = s.LastVisit.DaysUntil(today)
		if res.DaysDiff > 1 {
			res.Reset = true
			s.Streak = 1
		} else {
			s.Streak++
		}
	}

	visited := today
	s.LastVisit = &visited
	res.Changed = true
	res.Streak = s.Streak
	return res
}
