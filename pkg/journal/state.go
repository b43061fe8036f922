// Package journal holds the growth journal record: the three entry lists and
// the visit streak.
package journal

import (
	"encoding/json"

	"tableflip.dev/growth/pkg/timeutil"
)

// State is the whole journal for one user. It is not safe for concurrent use.
type State struct {
	Challenges   []Entry        `json:"challenges"`
	Reflections  []Entry        `json:"reflections"`
	Achievements []Entry        `json:"achievements"`
	Streak       int            `json:"streak"`
	LastVisit    *timeutil.Date `json:"last_visit"`
}

// NewState returns an empty journal that has never been visited.
func NewState() *State {
	return &State{
		Challenges:   []Entry{},
		Reflections:  []Entry{},
		Achievements: []Entry{},
	}
}

// Normalize replaces nil lists with empty ones so the record always
// serialises with all of its fields.
func (s *State) Normalize() {
	if s.Challenges == nil {
		s.Challenges = []Entry{}
	}
	if s.Reflections == nil {
		s.Reflections = []Entry{}
	}
	if s.Achievements == nil {
		s.Achievements = []Entry{}
	}
	if s.Streak < 0 {
		s.Streak = 0
	}
}

// List returns the entries of the given kind.
func (s *State) List(k Kind) ([]Entry, error) {
	switch k {
	case Challenge:
		return s.Challenges, nil
	case Reflection:
		return s.Reflections, nil
	case Achievement:
		return s.Achievements, nil
	}
	return nil, ErrUnknownKind
}

// Append adds e to the list for k. Entries with empty text are dropped and
// Append reports false; whitespace is kept as written.
func (s *State) Append(k Kind, e Entry) (bool, error) {
	if !k.Valid() {
		return false, ErrUnknownKind
	}
	if e.Text == "" {
		return false, nil
	}
	switch k {
	case Challenge:
		s.Challenges = append(s.Challenges, e)
	case Reflection:
		s.Reflections = append(s.Reflections, e)
	case Achievement:
		s.Achievements = append(s.Achievements, e)
	}
	return true, nil
}

// Counts is the number of entries per kind.
type Counts struct {
	Challenges   int `json:"challenges"`
	Reflections  int `json:"reflections"`
	Achievements int `json:"achievements"`
}

// Total is the sum over all kinds.
func (c Counts) Total() int {
	return c.Challenges + c.Reflections + c.Achievements
}

func (s *State) Counts() Counts {
	return Counts{
		Challenges:   len(s.Challenges),
		Reflections:  len(s.Reflections),
		Achievements: len(s.Achievements),
	}
}

// Clone returns a deep copy of s.
func (s *State) Clone() *State {
	out := &State{
		Challenges:   append([]Entry{}, s.Challenges...),
		Reflections:  append([]Entry{}, s.Reflections...),
		Achievements: append([]Entry{}, s.Achievements...),
		Streak:       s.Streak,
	}
	if s.LastVisit != nil {
		lv := *s.LastVisit
		out.LastVisit = &lv
	}
	return out
}

// UnmarshalJSON also accepts the camelCase "lastVisit" key.
func (s *State) UnmarshalJSON(b []byte) error {
	type plain State
	aux := struct {
		*plain
		LastVisitCamel *timeutil.Date `json:"lastVisit"`
	}{plain: (*plain)(s)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	if s.LastVisit == nil && aux.LastVisitCamel != nil {
		s.LastVisit = aux.LastVisitCamel
	}
	s.Normalize()
	return nil
}
