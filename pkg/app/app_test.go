package app

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"tableflip.dev/growth/pkg/journal"
	"tableflip.dev/growth/pkg/store"
	"tableflip.dev/growth/pkg/timeutil"
)

type memoryPersistence struct {
	mu      sync.Mutex
	data    []byte
	saves   int
	loadErr error
	saveErr error
}

func (m *memoryPersistence) Load() store.LoadResult {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return store.LoadResult{State: journal.NewState(), Status: store.StatusRecovered, Reason: m.loadErr}
	}
	if m.data == nil {
		return store.LoadResult{State: journal.NewState(), Status: store.StatusRecovered, Reason: os.ErrNotExist}
	}
	st, err := store.Decode(m.data)
	if err != nil {
		return store.LoadResult{State: journal.NewState(), Status: store.StatusRecovered, Reason: err}
	}
	return store.LoadResult{State: st, Status: store.StatusOK}
}

func (m *memoryPersistence) Save(st *journal.State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	data, err := store.Encode(st)
	if err != nil {
		return err
	}
	m.data = data
	m.saves++
	return nil
}

func (m *memoryPersistence) stored(t *testing.T) *journal.State {
	t.Helper()
	res := m.Load()
	if res.Status != store.StatusOK {
		t.Fatalf("expected stored journal, got %s: %v", res.Status, res.Reason)
	}
	return res.State
}

type clock struct{ t time.Time }

func (c *clock) Now() time.Time { return c.t }

func newService(start time.Time) (*Service, *memoryPersistence, *clock) {
	mp := &memoryPersistence{}
	c := &clock{t: start}
	return &Service{Persistence: mp, Now: c.Now}, mp, c
}

func TestStartRecordsFirstVisit(t *testing.T) {
	svc, mp, _ := newService(time.Date(2025, time.January, 1, 8, 0, 0, 0, time.Local))
	sess, err := svc.Start(context.Background())
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if !sess.Load.Missing() {
		t.Fatalf("expected missing journal on first run")
	}
	if !sess.Visit.FirstVisit || sess.Visit.Streak != 1 {
		t.Fatalf("unexpected visit %+v", sess.Visit)
	}
	st := mp.stored(t)
	if st.Streak != 1 || st.LastVisit.String() != "2025-01-01" {
		t.Fatalf("expected persisted streak, got %d %v", st.Streak, st.LastVisit)
	}
}

func TestStartIsOncePerSession(t *testing.T) {
	svc, mp, _ := newService(time.Date(2025, time.January, 1, 8, 0, 0, 0, time.Local))
	ctx := context.Background()
	if _, err := svc.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := svc.Start(ctx); err != nil {
		t.Fatalf("start again: %v", err)
	}
	if mp.saves != 1 {
		t.Fatalf("expected a single save, got %d", mp.saves)
	}
}

func TestSessionsAcrossDays(t *testing.T) {
	mp := &memoryPersistence{}
	ctx := context.Background()
	days := []struct {
		at   time.Time
		want int
	}{
		{time.Date(2025, time.January, 1, 9, 0, 0, 0, time.Local), 1},
		{time.Date(2025, time.January, 2, 23, 59, 0, 0, time.Local), 2},
		{time.Date(2025, time.January, 2, 7, 0, 0, 0, time.Local), 2},
		{time.Date(2025, time.January, 5, 12, 0, 0, 0, time.Local), 1},
	}
	for _, day := range days {
		at := day.at
		svc := &Service{Persistence: mp, Now: func() time.Time { return at }}
		sess, err := svc.Start(ctx)
		if err != nil {
			t.Fatalf("start %v: %v", at, err)
		}
		if sess.Visit.Streak != day.want {
			t.Fatalf("%v: expected streak %d, got %d", at, day.want, sess.Visit.Streak)
		}
	}
}

func TestSameDayVisitDoesNotSave(t *testing.T) {
	svc, mp, _ := newService(time.Date(2025, time.January, 1, 8, 0, 0, 0, time.Local))
	ctx := context.Background()
	if _, err := svc.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := svc.Visit(ctx, svc.Today()); err != nil {
		t.Fatalf("visit: %v", err)
	}
	res, err := svc.Visit(ctx, svc.Today())
	if err != nil {
		t.Fatalf("visit: %v", err)
	}
	if res.Changed {
		t.Fatalf("expected no change on another visit today")
	}
	if mp.saves != 1 {
		t.Fatalf("expected only the start save, got %d", mp.saves)
	}

	next, _ := timeutil.ParseDate("2025-01-02")
	res, err = svc.Visit(ctx, next)
	if err != nil {
		t.Fatalf("visit: %v", err)
	}
	if !res.Changed || res.Streak != 2 || mp.saves != 2 {
		t.Fatalf("expected next-day increment, got %+v saves=%d", res, mp.saves)
	}
}

func TestFirstVisitReportsSessionStart(t *testing.T) {
	svc, mp, _ := newService(time.Date(2025, time.January, 2, 9, 0, 0, 0, time.Local))
	ctx := context.Background()
	if _, err := svc.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	res, err := svc.Visit(ctx, svc.Today())
	if err != nil {
		t.Fatalf("visit: %v", err)
	}
	if !res.Changed || !res.FirstVisit || res.Streak != 1 || res.Previous != 0 {
		t.Fatalf("expected the start visit to be reported, got %+v", res)
	}
	again, err := svc.Visit(ctx, svc.Today())
	if err != nil {
		t.Fatalf("visit: %v", err)
	}
	if again.Changed || again.FirstVisit || again.Streak != 1 {
		t.Fatalf("expected unchanged visit, got %+v", again)
	}
	if mp.saves != 1 {
		t.Fatalf("expected one save, got %d", mp.saves)
	}
}

func TestStartSaveFailureIsNotSticky(t *testing.T) {
	svc, mp, _ := newService(time.Date(2025, time.January, 1, 8, 0, 0, 0, time.Local))
	ctx := context.Background()
	boom := errors.New("disk full")
	mp.saveErr = boom

	if _, err := svc.Start(ctx); !errors.Is(err, boom) {
		t.Fatalf("expected save error, got %v", err)
	}
	if _, err := svc.Start(ctx); !errors.Is(err, boom) {
		t.Fatalf("expected save error on the next start, got %v", err)
	}
	if _, err := svc.Stats(ctx); !errors.Is(err, boom) {
		t.Fatalf("expected save error from stats, got %v", err)
	}
	if _, err := svc.AddChallenge(ctx, "Learn Go"); !errors.Is(err, boom) {
		t.Fatalf("expected save error from add, got %v", err)
	}

	mp.saveErr = nil
	sess, err := svc.Start(ctx)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if !sess.Visit.Changed || !sess.Visit.FirstVisit || sess.Visit.Streak != 1 {
		t.Fatalf("expected the visit to be recorded once saving works, got %+v", sess.Visit)
	}
	if st := mp.stored(t); st.Streak != 1 || len(st.Challenges) != 0 {
		t.Fatalf("unexpected stored journal %+v", st)
	}
}

func TestAddChallengeScenario(t *testing.T) {
	at := time.Date(2025, time.January, 1, 10, 0, 0, 0, time.Local)
	svc, mp, _ := newService(at)
	ctx := context.Background()

	e, err := svc.AddChallenge(ctx, "Learn Go")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if e == nil || e.Text != "Learn Go" || !e.Date.Equal(at) || e.ID == "" {
		t.Fatalf("unexpected entry %+v", e)
	}

	e, err = svc.AddChallenge(ctx, "")
	if err != nil {
		t.Fatalf("add empty: %v", err)
	}
	if e != nil {
		t.Fatalf("expected empty challenge to be ignored")
	}

	st := mp.stored(t)
	if len(st.Challenges) != 1 {
		t.Fatalf("expected 1 persisted challenge, got %d", len(st.Challenges))
	}
	if st.Challenges[0].Text != "Learn Go" || !st.Challenges[0].Date.Equal(at) {
		t.Fatalf("unexpected persisted challenge %+v", st.Challenges[0])
	}
}

func TestAddReflectionKeepsPrompt(t *testing.T) {
	svc, mp, _ := newService(time.Now())
	ctx := context.Background()
	if _, err := svc.AddReflection(ctx, "Ask for help sooner", "How did you overcome a challenge?"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.Add(ctx, AddOptions{Kind: journal.Achievement, Text: "Done", Prompt: "ignored"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	st := mp.stored(t)
	if st.Reflections[0].Prompt != "How did you overcome a challenge?" {
		t.Fatalf("unexpected prompt %q", st.Reflections[0].Prompt)
	}
	if st.Achievements[0].Prompt != "" {
		t.Fatalf("prompt must only be kept on reflections")
	}
}

func TestAddSaveErrorSurfaces(t *testing.T) {
	svc, mp, _ := newService(time.Now())
	ctx := context.Background()
	if _, err := svc.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	boom := errors.New("disk full")
	mp.saveErr = boom
	if _, err := svc.AddAchievement(ctx, "Ran 5k"); !errors.Is(err, boom) {
		t.Fatalf("expected save error, got %v", err)
	}
}

func TestStartRecoversCorruptJournal(t *testing.T) {
	mp := &memoryPersistence{data: []byte(`{"challenges": [`)}
	svc := &Service{Persistence: mp, Now: time.Now}
	sess, err := svc.Start(context.Background())
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if !sess.Load.Recovered() || sess.Load.Missing() {
		t.Fatalf("expected corrupt recovery, got %+v", sess.Load)
	}
	if sess.Visit.Streak != 1 {
		t.Fatalf("expected fresh streak, got %d", sess.Visit.Streak)
	}
}

func TestNoPersistence(t *testing.T) {
	svc := &Service{}
	if _, err := svc.Start(context.Background()); !errors.Is(err, ErrNoStore) {
		t.Fatalf("expected ErrNoStore, got %v", err)
	}
}

func TestStatsAndTimeline(t *testing.T) {
	at := time.Date(2025, time.February, 3, 9, 0, 0, 0, time.Local)
	svc, _, c := newService(at)
	ctx := context.Background()
	_, _ = svc.AddChallenge(ctx, "c")
	c.t = at.Add(time.Hour)
	_, _ = svc.AddReflection(ctx, "r", "What are you grateful for?")
	c.t = at.Add(2 * time.Hour)
	_, _ = svc.AddAchievement(ctx, "a")

	stats, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Streak != 1 || stats.Counts.Total() != 3 || stats.LastVisit.String() != "2025-02-03" {
		t.Fatalf("unexpected stats %+v", stats)
	}

	items, err := svc.Timeline(ctx, journal.TimelineOptions{Limit: 10})
	if err != nil {
		t.Fatalf("timeline: %v", err)
	}
	if len(items) != 3 || items[0].Kind != journal.Achievement || items[2].Kind != journal.Challenge {
		t.Fatalf("unexpected timeline %+v", items)
	}

	if _, err := svc.Entries(ctx, journal.Kind("goal")); !errors.Is(err, journal.ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}

func TestReloadPicksUpExternalWrites(t *testing.T) {
	svc, mp, _ := newService(time.Now())
	ctx := context.Background()
	if _, err := svc.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}

	other := mp.stored(t)
	_, _ = other.Append(journal.Challenge, journal.New("from another session", time.Now()))
	if err := mp.Save(other); err != nil {
		t.Fatalf("save: %v", err)
	}

	if _, err := svc.Reload(ctx); err != nil {
		t.Fatalf("reload: %v", err)
	}
	entries, _ := svc.Entries(ctx, journal.Challenge)
	if len(entries) != 1 {
		t.Fatalf("expected reloaded challenge, got %d", len(entries))
	}

	mp.data = []byte("garbage")
	if _, err := svc.Reload(ctx); err != nil {
		t.Fatalf("reload: %v", err)
	}
	entries, _ = svc.Entries(ctx, journal.Challenge)
	if len(entries) != 1 {
		t.Fatalf("corrupt reload must keep current state")
	}
}

func TestReplace(t *testing.T) {
	svc, mp, _ := newService(time.Now())
	ctx := context.Background()
	next := journal.NewState()
	next.Streak = 12
	_, _ = next.Append(journal.Achievement, journal.New("imported", time.Now()))
	if err := svc.Replace(ctx, next); err != nil {
		t.Fatalf("replace: %v", err)
	}
	if st := mp.stored(t); st.Streak != 12 || len(st.Achievements) != 1 {
		t.Fatalf("unexpected stored state %+v", st)
	}
	snap, _ := svc.Snapshot(ctx)
	if snap.Streak != 12 {
		t.Fatalf("expected replaced in-memory state, got %d", snap.Streak)
	}
}

func TestWatchRequiresWatcher(t *testing.T) {
	svc, _, _ := newService(time.Now())
	if _, err := svc.Watch(context.Background()); !errors.Is(err, ErrNoWatch) {
		t.Fatalf("expected ErrNoWatch, got %v", err)
	}
}
