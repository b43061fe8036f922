package content

import (
	"strings"
	"testing"
)

func TestPickerUsesSource(t *testing.T) {
	for i, want := range Prompts() {
		i := i
		p := Picker{IntN: func(n int) int {
			if n != 4 {
				t.Fatalf("expected 4 prompts, got %d", n)
			}
			return i
		}}
		if got := p.Prompt(); got != want {
			t.Fatalf("prompt %d: expected %q, got %q", i, want, got)
		}
	}

	p := Picker{IntN: func(n int) int { return n - 1 }}
	if q := p.Quote(); q.Author != "Winston Churchill" {
		t.Fatalf("unexpected quote %+v", q)
	}
}

func TestDefaultPickerStaysInRange(t *testing.T) {
	var p Picker
	seen := map[string]bool{}
	for _, prompt := range Prompts() {
		seen[prompt] = true
	}
	for i := 0; i < 50; i++ {
		if got := p.Prompt(); !seen[got] {
			t.Fatalf("unexpected prompt %q", got)
		}
	}
}

func TestListsAreCopies(t *testing.T) {
	q := Quotes()
	q[0].Text = "changed"
	if Quotes()[0].Text == "changed" {
		t.Fatalf("quotes must not be shared")
	}
	if len(Books()) != 3 || len(Videos()) != 2 {
		t.Fatalf("unexpected resources %d books %d videos", len(Books()), len(Videos()))
	}
}

func TestAssess(t *testing.T) {
	a, err := Assess(4)
	if err != nil {
		t.Fatalf("assess: %v", err)
	}
	if a.String() != "Your growth mindset score: 4/5" {
		t.Fatalf("unexpected %q", a.String())
	}
	for _, bad := range []int{0, 6, -1} {
		if _, err := Assess(bad); !IsScoreRange(err) {
			t.Fatalf("score %d: expected range error, got %v", bad, err)
		}
	}
}

func TestAbout(t *testing.T) {
	if !strings.Contains(About(), "Carol Dweck") {
		t.Fatalf("about page missing content")
	}
}
