package options

import (
	"testing"
	"time"
)

func TestGetOn(t *testing.T) {
	now := func() time.Time { return time.Date(2025, time.March, 10, 12, 0, 0, 0, time.Local) }
	for in, want := range map[string]string{
		"":           "",
		"2025-1-2":   "2025-01-02",
		"2024-12-31": "2024-12-31",
		"3/9":        "2025-03-09",
		"3/10":       "2025-03-10",
		"12/25":      "2024-12-25",
	} {
		o := OnOptions{OnString: in, Now: now}
		got, err := o.GetOn()
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		if want == "" {
			if got != nil {
				t.Fatalf("%q: expected no date, got %s", in, got)
			}
			continue
		}
		if got == nil || got.String() != want {
			t.Fatalf("%q: expected %s, got %v", in, want, got)
		}
	}

	o := OnOptions{OnString: "yesterday"}
	if _, err := o.GetOn(); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestClock(t *testing.T) {
	o := OnOptions{}
	if c, err := o.Clock(); err != nil || c != nil {
		t.Fatalf("expected no clock without --on, got %v", err)
	}
	o.OnString = "2025-1-2"
	c, err := o.Clock()
	if err != nil || c == nil {
		t.Fatalf("clock: %v", err)
	}
	at := c()
	if at.Year() != 2025 || at.Month() != time.January || at.Day() != 2 {
		t.Fatalf("unexpected clock time %v", at)
	}
}
