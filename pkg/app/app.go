package app

import (
	"context"
	"errors"
	"sync"
	"time"

	"tableflip.dev/growth/pkg/journal"
	"tableflip.dev/growth/pkg/logging"
	"tableflip.dev/growth/pkg/store"
	"tableflip.dev/growth/pkg/streak"
	"tableflip.dev/growth/pkg/timeutil"
)

// Service owns one session over the journal. It wraps persistence, the
// streak rule and entry creation so the CLI, the TUI and the MCP server share
// the same logic. Methods are safe for concurrent use within one process.
type Service struct {
	Persistence store.Persistence
	// Now is the clock; nil means time.Now.
	Now func() time.Time

	mu      sync.Mutex
	state   *journal.State
	started bool
	load    store.LoadResult
	visit   streak.Result
	// startDay is the day recorded by Start; visitReported is set once that
	// result has been handed to a Visit caller.
	startDay      timeutil.Date
	visitReported bool
}

// ErrNoStore is returned when the service has no persistence.
var ErrNoStore = errors.New("app: no persistence configured")

// Session summarises session start.
type Session struct {
	Load  store.LoadResult
	Visit streak.Result
}

func (s *Service) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

// Today is the service clock's local calendar date.
func (s *Service) Today() timeutil.Date {
	return timeutil.Today(s.Now)
}

// Start loads the journal and records today's visit. It runs once; later
// calls return the first session's summary.
func (s *Service) Start(ctx context.Context) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.startLocked(); err != nil {
		return Session{}, err
	}
	return Session{Load: s.load, Visit: s.visit}, nil
}

// startLocked loads the journal and records today's visit. The session only
// counts as started once that visit is persisted, so a failed save is retried
// from a fresh load on the next call.
func (s *Service) startLocked() error {
	if s.started {
		return nil
	}
	if s.Persistence == nil {
		return ErrNoStore
	}
	load := s.Persistence.Load()
	if load.Recovered() && !load.Missing() {
		logging.Logger().Warn("journal unreadable, starting fresh", "reason", load.Reason)
	} else if load.Missing() {
		logging.Logger().Debug("no journal yet, starting fresh")
	}
	s.state = load.State

	day := s.Today()
	res, err := s.visitLocked(day)
	if err != nil {
		return err
	}
	s.load = load
	s.visit = res
	s.startDay = day
	s.started = true
	return nil
}

// Visit records a visit on day. It is a no-op when day is already recorded,
// except that the first Visit for the start day reports what Start recorded.
func (s *Service) Visit(ctx context.Context, day timeutil.Date) (streak.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.startLocked(); err != nil {
		return streak.Result{}, err
	}
	if !s.visitReported && day == s.startDay {
		s.visitReported = true
		return s.visit, nil
	}
	return s.visitLocked(day)
}

func (s *Service) visitLocked(day timeutil.Date) (streak.Result, error) {
	res := streak.Update(s.state, day)
	if !res.Changed {
		return res, nil
	}
	if err := s.Persistence.Save(s.state); err != nil {
		return res, err
	}
	logging.Logger().Debug("visit recorded", "day", day.String(), "streak", res.Streak, "reset", res.Reset)
	return res, nil
}

// AddOptions describe a new entry.
type AddOptions struct {
	Kind journal.Kind
	Text string
	// Prompt is only kept for reflections.
	Prompt string
	// At overrides the creation time.
	At *time.Time
}

// Add appends an entry and persists the journal. Empty text is ignored and
// reported as (nil, nil).
func (s *Service) Add(ctx context.Context, opts AddOptions) (*journal.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.startLocked(); err != nil {
		return nil, err
	}

	at := s.now()
	if opts.At != nil {
		at = *opts.At
	}
	e := journal.New(opts.Text, at)
	if opts.Kind == journal.Reflection {
		e.Prompt = opts.Prompt
	}
	ok, err := store.Append(s.Persistence, s.state, opts.Kind, e)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &e, nil
}

// AddChallenge records what is challenging the user.
func (s *Service) AddChallenge(ctx context.Context, text string) (*journal.Entry, error) {
	return s.Add(ctx, AddOptions{Kind: journal.Challenge, Text: text})
}

// AddReflection records an answer to prompt.
func (s *Service) AddReflection(ctx context.Context, text, prompt string) (*journal.Entry, error) {
	return s.Add(ctx, AddOptions{Kind: journal.Reflection, Text: text, Prompt: prompt})
}

// AddAchievement records a win.
func (s *Service) AddAchievement(ctx context.Context, text string) (*journal.Entry, error) {
	return s.Add(ctx, AddOptions{Kind: journal.Achievement, Text: text})
}

// Snapshot returns a copy of the current journal.
func (s *Service) Snapshot(ctx context.Context) (*journal.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.startLocked(); err != nil {
		return nil, err
	}
	return s.state.Clone(), nil
}

// Timeline lists entries across kinds, newest first.
func (s *Service) Timeline(ctx context.Context, opts journal.TimelineOptions) ([]journal.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.startLocked(); err != nil {
		return nil, err
	}
	return s.state.Timeline(opts), nil
}

// Entries lists one kind, newest first.
func (s *Service) Entries(ctx context.Context, k journal.Kind) ([]journal.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.startLocked(); err != nil {
		return nil, err
	}
	if _, err := s.state.List(k); err != nil {
		return nil, err
	}
	return s.state.Newest(k), nil
}

// Stats is the dashboard summary.
type Stats struct {
	Streak    int            `json:"streak"`
	LastVisit *timeutil.Date `json:"lastVisit,omitempty"`
	Counts    journal.Counts `json:"counts"`
}

func (s *Service) Stats(ctx context.Context) (Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.startLocked(); err != nil {
		return Stats{}, err
	}
	st := Stats{Streak: s.state.Streak, Counts: s.state.Counts()}
	if s.state.LastVisit != nil {
		lv := *s.state.LastVisit
		st.LastVisit = &lv
	}
	return st, nil
}

// Reload discards the in-memory journal and reads it again without recording
// a visit. Used when another process changed the file.
func (s *Service) Reload(ctx context.Context) (store.LoadResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		if err := s.startLocked(); err != nil {
			return store.LoadResult{}, err
		}
		return s.load, nil
	}
	res := s.Persistence.Load()
	if res.Recovered() && !res.Missing() {
		// Keep what we have; a torn write from another session will be
		// followed by a complete one.
		logging.Logger().Warn("journal reload failed, keeping current state", "reason", res.Reason)
		return res, nil
	}
	s.state = res.State
	return res, nil
}

// ErrNoWatch is returned by Watch when the persistence cannot be watched.
var ErrNoWatch = errors.New("app: persistence does not support watching")

// Watch streams change notifications from the underlying store.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	w, ok := s.Persistence.(store.Watcher)
	if !ok {
		return nil, ErrNoWatch
	}
	return w.Watch(ctx)
}

// Replace swaps the whole journal for st and persists it.
func (s *Service) Replace(ctx context.Context, st *journal.State) error {
	if st == nil {
		return errors.New("app: nil journal")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Persistence == nil {
		return ErrNoStore
	}
	next := st.Clone()
	next.Normalize()
	if err := s.Persistence.Save(next); err != nil {
		return err
	}
	s.state = next
	s.started = true
	return nil
}
