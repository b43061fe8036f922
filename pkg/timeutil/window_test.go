package timeutil

import (
	"testing"
	"time"
)

func TestParseWindow(t *testing.T) {
	tests := []struct {
		in   string
		want Window
		str  string
	}{
		{"1w", Window{Days: 7}, "1w"},
		{"3 days", Window{Days: 3}, "3d"},
		{"1mo2w", Window{Months: 1, Days: 14}, "1mo2w"},
		{"9d12h", Window{Days: 9, Hours: 12}, "1w2d12h"},
	}
	for _, tt := range tests {
		got, err := ParseWindow(tt.in)
		if err != nil {
			t.Fatalf("%q: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("%q: expected %+v, got %+v", tt.in, tt.want, got)
		}
		if got.String() != tt.str {
			t.Fatalf("%q: expected %s, got %s", tt.in, tt.str, got.String())
		}
	}
}

func TestParseWindowInvalid(t *testing.T) {
	for _, in := range []string{"", "week", "3y", "0d", "2d!"} {
		if _, err := ParseWindow(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}

func TestWindowSinceUsesCalendar(t *testing.T) {
	now := time.Date(2025, time.March, 31, 10, 0, 0, 0, time.UTC)
	w, _ := ParseWindow("1w1h")
	want := time.Date(2025, time.March, 24, 9, 0, 0, 0, time.UTC)
	if got := w.Since(now); !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
