package journal

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestAppendChallenge(t *testing.T) {
	s := NewState()
	at := time.Date(2025, time.January, 1, 10, 0, 0, 0, time.Local)

	ok, err := s.Append(Challenge, New("Learn Go", at))
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if !ok {
		t.Fatalf("expected entry to be recorded")
	}
	if len(s.Challenges) != 1 {
		t.Fatalf("expected 1 challenge, got %d", len(s.Challenges))
	}
	got := s.Challenges[0]
	if got.Text != "Learn Go" {
		t.Fatalf("unexpected text %q", got.Text)
	}
	if !got.Date.Equal(at) {
		t.Fatalf("unexpected timestamp %v", got.Date)
	}

	ok, err = s.Append(Challenge, New("", at))
	if err != nil {
		t.Fatalf("append empty: %v", err)
	}
	if ok {
		t.Fatalf("expected empty entry to be dropped")
	}
	if len(s.Challenges) != 1 {
		t.Fatalf("expected challenges to stay at 1, got %d", len(s.Challenges))
	}
}

func TestAppendKeepsWhitespaceText(t *testing.T) {
	s := NewState()
	ok, err := s.Append(Reflection, New("  ", time.Now()))
	if err != nil || !ok {
		t.Fatalf("expected whitespace entry to be kept, got ok=%v err=%v", ok, err)
	}
	if len(s.Reflections) != 1 || s.Reflections[0].Text != "  " {
		t.Fatalf("unexpected reflections %+v", s.Reflections)
	}
}

func TestAppendUnknownKind(t *testing.T) {
	s := NewState()
	if _, err := s.Append(Kind("goal"), New("x", time.Now())); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
	if _, err := s.Append(Kind("goal"), New("", time.Now())); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind for empty text, got %v", err)
	}
}

func TestParseKind(t *testing.T) {
	for in, want := range map[string]Kind{
		"challenge":    Challenge,
		"Reflections":  Reflection,
		" achievement": Achievement,
		"a":            Achievement,
	} {
		got, err := ParseKind(in)
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		if got != want {
			t.Fatalf("%q: expected %s, got %s", in, want, got)
		}
	}
	if _, err := ParseKind("goal"); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}

func TestTimelineNewestFirst(t *testing.T) {
	s := NewState()
	base := time.Date(2025, time.January, 1, 9, 0, 0, 0, time.Local)
	_, _ = s.Append(Challenge, New("c1", base))
	_, _ = s.Append(Reflection, NewReflection("r1", "What did you learn today?", base.Add(2*time.Hour)))
	_, _ = s.Append(Achievement, New("a1", base.Add(time.Hour)))
	_, _ = s.Append(Challenge, New("c2", base.Add(3*time.Hour)))

	items := s.Timeline(TimelineOptions{})
	want := []string{"c2", "r1", "a1", "c1"}
	if len(items) != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), len(items))
	}
	for i, w := range want {
		if items[i].Entry.Text != w {
			t.Fatalf("item %d: expected %s, got %s", i, w, items[i].Entry.Text)
		}
	}
	if items[1].Kind != Reflection || items[1].Entry.Prompt == "" {
		t.Fatalf("expected reflection with prompt, got %+v", items[1])
	}

	limited := s.Timeline(TimelineOptions{Limit: 2, Kinds: []Kind{Challenge}})
	if len(limited) != 2 || limited[0].Entry.Text != "c2" || limited[1].Entry.Text != "c1" {
		t.Fatalf("unexpected filtered timeline %+v", limited)
	}

	since := s.Timeline(TimelineOptions{Since: base.Add(90 * time.Minute)})
	if len(since) != 2 {
		t.Fatalf("expected 2 recent items, got %d", len(since))
	}
}

func TestTimelineTiesKeepLatestInsertionFirst(t *testing.T) {
	s := NewState()
	at := time.Date(2025, time.January, 1, 9, 0, 0, 0, time.Local)
	_, _ = s.Append(Challenge, New("first", at))
	_, _ = s.Append(Challenge, New("second", at))

	items := s.Timeline(TimelineOptions{})
	if items[0].Entry.Text != "second" {
		t.Fatalf("expected latest insertion first, got %s", items[0].Entry.Text)
	}
}

func TestNewest(t *testing.T) {
	s := NewState()
	now := time.Now()
	_, _ = s.Append(Achievement, New("one", now))
	_, _ = s.Append(Achievement, New("two", now))
	got := s.Newest(Achievement)
	if got[0].Text != "two" || got[1].Text != "one" {
		t.Fatalf("unexpected order %+v", got)
	}
	if s.Achievements[0].Text != "one" {
		t.Fatalf("Newest must not reorder the state")
	}
}

func TestStateJSONLayout(t *testing.T) {
	s := NewState()
	b, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"challenges":[],"reflections":[],"achievements":[],"streak":0,"last_visit":null}`
	if string(b) != want {
		t.Fatalf("unexpected layout\nwant %s\ngot  %s", want, b)
	}
}

func TestStateUnmarshalNaiveTimestamps(t *testing.T) {
	raw := `{
		"challenges": [{"text": "Learn Go", "date": "2025-01-01T10:00:00.123456"}],
		"reflections": [{"text": "Patience", "date": "2025-01-02T08:30:00", "prompt": "What did you learn today?"}],
		"achievements": [],
		"streak": 3,
		"last_visit": "2025-01-02"
	}`
	var s State
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if s.Streak != 3 {
		t.Fatalf("expected streak 3, got %d", s.Streak)
	}
	if s.LastVisit == nil || s.LastVisit.String() != "2025-01-02" {
		t.Fatalf("unexpected last visit %v", s.LastVisit)
	}
	if s.Challenges[0].Date.Hour() != 10 || s.Challenges[0].ID != "" {
		t.Fatalf("unexpected challenge %+v", s.Challenges[0])
	}
	if s.Reflections[0].Prompt != "What did you learn today?" {
		t.Fatalf("unexpected prompt %q", s.Reflections[0].Prompt)
	}
}

func TestStateUnmarshalCamelCaseLastVisit(t *testing.T) {
	var s State
	if err := json.Unmarshal([]byte(`{"streak": 1, "lastVisit": "2025-03-04"}`), &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if s.LastVisit == nil || s.LastVisit.String() != "2025-03-04" {
		t.Fatalf("unexpected last visit %v", s.LastVisit)
	}
	if s.Challenges == nil || s.Reflections == nil || s.Achievements == nil {
		t.Fatalf("expected lists to be normalised")
	}
}

func TestClone(t *testing.T) {
	s := NewState()
	_, _ = s.Append(Challenge, New("x", time.Now()))
	c := s.Clone()
	_, _ = c.Append(Challenge, New("y", time.Now()))
	if len(s.Challenges) != 1 {
		t.Fatalf("clone shares backing list")
	}
}
