package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"tableflip.dev/growth/pkg/logging"
)

// EventType describes the nature of a persistence change notification.
type EventType int

const (
	// EventJournalChanged indicates the journal file was written, replaced or
	// removed by some process, possibly this one.
	EventJournalChanged EventType = iota

	// EventWatchError signals the watcher reported an error; callers should
	// reload to stay in sync.
	EventWatchError
)

// Watcher is implemented by persistence that can report external changes.
type Watcher interface {
	Watch(ctx context.Context) (<-chan Event, error)
}

// Event is emitted by Store.Watch when underlying storage changes.
type Event struct {
	Type EventType
	Path string
}

// Watch streams change events for the journal file until ctx is cancelled.
// The directory is watched, not the file, so the first write of a
// new journal and editors that replace the file are both seen. The channel is
// closed once ctx is done.
func (s *Store) Watch(ctx context.Context) (<-chan Event, error) {
	if err := os.MkdirAll(s.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	if err := watcher.Add(s.basePath); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("store: watch %s: %w", s.basePath, err)
	}

	target := filepath.Clean(s.Path())
	events := make(chan Event, 16)

	go func() {
		var (
			mu     sync.Mutex
			closed bool
		)
		defer func() {
			mu.Lock()
			closed = true
			close(events)
			mu.Unlock()
		}()
		defer func() {
			if err := watcher.Close(); err != nil {
				logging.Logger().Warn("watcher close", "err", err)
			}
		}()

		send := func(ev Event) {
			mu.Lock()
			defer mu.Unlock()
			if closed {
				return
			}
			select {
			case events <- ev:
			default:
				// A pending event already tells the consumer to reload.
			}
		}

		throttle := newEventThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logging.Logger().Warn("journal watcher", "err", err)
				throttle.Enqueue(Event{Type: EventWatchError, Path: target}, send)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(evt.Name) != target {
					continue
				}
				if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}
				throttle.Enqueue(Event{Type: EventJournalChanged, Path: target}, send)
			}
		}
	}()

	return events, nil
}

// eventThrottle coalesces a burst of writes into one notification.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending map[EventType]Event
	delay   time.Duration
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{
		delay:   delay,
		pending: make(map[EventType]Event),
	}
}

func (t *eventThrottle) Enqueue(ev Event, send func(Event)) {
	t.mu.Lock()
	t.pending[ev.Type] = ev
	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
	t.mu.Unlock()
}

func (t *eventThrottle) flush(send func(Event)) {
	t.mu.Lock()
	pending := t.pending
	t.pending = make(map[EventType]Event)
	t.timer = nil
	t.mu.Unlock()

	for _, ev := range pending {
		send(ev)
	}
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
