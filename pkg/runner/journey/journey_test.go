package journey

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"tableflip.dev/growth/pkg/app"
	"tableflip.dev/growth/pkg/journal"
	"tableflip.dev/growth/pkg/store"
)

type dirConfig string

func (d dirConfig) BasePath() string { return string(d) }
func (d dirConfig) FileName() string { return store.DefaultFileName }
func (d dirConfig) Animations() bool { return false }
func (d dirConfig) LogLevel() string { return "error" }

type clock struct{ t time.Time }

func (c *clock) Now() time.Time { return c.t }

func seeded(t *testing.T) (*app.Service, time.Time) {
	t.Helper()
	s, err := store.Load(dirConfig(t.TempDir()))
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	start := time.Date(2025, time.April, 1, 8, 0, 0, 0, time.Local)
	c := &clock{t: start}
	svc := &app.Service{Persistence: s, Now: c.Now}
	ctx := context.Background()
	for i, add := range []struct {
		k    journal.Kind
		text string
	}{
		{journal.Challenge, "old challenge"},
		{journal.Achievement, "first win"},
		{journal.Challenge, "new challenge"},
		{journal.Reflection, "slow down"},
	} {
		c.t = start.AddDate(0, 0, i*3)
		if _, err := svc.Add(ctx, app.AddOptions{Kind: add.k, Text: add.text}); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	return svc, c.t
}

func TestTimelineNewestFirst(t *testing.T) {
	svc, _ := seeded(t)
	var out bytes.Buffer
	j := Journey{Service: svc, Out: &out}
	if err := j.Do(context.Background()); err != nil {
		t.Fatalf("journey: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "My Journey") {
		t.Fatalf("missing title:\n%s", got)
	}
	if strings.Index(got, "slow down") > strings.Index(got, "old challenge") {
		t.Fatalf("expected newest first:\n%s", got)
	}
}

func TestTimelineFilters(t *testing.T) {
	svc, last := seeded(t)
	var out bytes.Buffer
	j := Journey{
		Kinds:   []journal.Kind{journal.Challenge},
		Since:   last.AddDate(0, 0, -4),
		Service: svc,
		Out:     &out,
	}
	if err := j.Do(context.Background()); err != nil {
		t.Fatalf("journey: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "new challenge") || strings.Contains(got, "old challenge") || strings.Contains(got, "slow down") {
		t.Fatalf("unexpected filtered timeline:\n%s", got)
	}
}

func TestListOneKind(t *testing.T) {
	svc, _ := seeded(t)
	var out bytes.Buffer
	j := Journey{
		Kinds:   []journal.Kind{journal.Challenge},
		List:    true,
		Limit:   1,
		ShowID:  true,
		Service: svc,
		Out:     &out,
	}
	if err := j.Do(context.Background()); err != nil {
		t.Fatalf("list: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "Challenges - 1 entry") {
		t.Fatalf("missing title:\n%s", got)
	}
	if !strings.Contains(got, "new challenge") || strings.Contains(got, "old challenge") {
		t.Fatalf("expected only the newest challenge:\n%s", got)
	}
}

func TestEmptyList(t *testing.T) {
	s, err := store.Load(dirConfig(t.TempDir()))
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	var out bytes.Buffer
	j := Journey{Kinds: []journal.Kind{journal.Achievement}, List: true, Service: &app.Service{Persistence: s}, Out: &out}
	if err := j.Do(context.Background()); err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out.String(), "No achievements recorded yet") {
		t.Fatalf("unexpected empty list:\n%s", out.String())
	}
}
