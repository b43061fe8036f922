package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Window is a look-back span such as "3d" or "1w2d". Days, weeks and months
// are calendar steps, so a window stays aligned across DST changes.
type Window struct {
	Months int
	Days   int
	Hours  int
}

var (
	segment = regexp.MustCompile(`^(\d+)([a-z]+)`)
	units   = map[string]func(*Window, int){
		"h":      func(w *Window, n int) { w.Hours += n },
		"hour":   func(w *Window, n int) { w.Hours += n },
		"hours":  func(w *Window, n int) { w.Hours += n },
		"d":      func(w *Window, n int) { w.Days += n },
		"day":    func(w *Window, n int) { w.Days += n },
		"days":   func(w *Window, n int) { w.Days += n },
		"w":      func(w *Window, n int) { w.Days += 7 * n },
		"wk":     func(w *Window, n int) { w.Days += 7 * n },
		"week":   func(w *Window, n int) { w.Days += 7 * n },
		"weeks":  func(w *Window, n int) { w.Days += 7 * n },
		"mo":     func(w *Window, n int) { w.Months += n },
		"month":  func(w *Window, n int) { w.Months += n },
		"months": func(w *Window, n int) { w.Months += n },
	}
)

// ParseWindow reads one or more count+unit segments, for example "1w",
// "3 days" or "1mo2w". Units are h, d, w and mo with their long forms.
func ParseWindow(input string) (Window, error) {
	rest := strings.ToLower(strings.Join(strings.Fields(input), ""))
	if rest == "" {
		return Window{}, fmt.Errorf("timeutil: empty window")
	}
	var w Window
	for rest != "" {
		m := segment.FindStringSubmatch(rest)
		if m == nil {
			return Window{}, fmt.Errorf("timeutil: invalid window segment %q", rest)
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return Window{}, fmt.Errorf("timeutil: invalid window count %q: %w", m[1], err)
		}
		add, ok := units[m[2]]
		if !ok {
			return Window{}, fmt.Errorf("timeutil: unsupported window unit %q", m[2])
		}
		add(&w, n)
		rest = rest[len(m[0]):]
	}
	if w.IsZero() {
		return Window{}, fmt.Errorf("timeutil: window must be greater than zero")
	}
	return w, nil
}

func (w Window) IsZero() bool {
	return w.Months == 0 && w.Days == 0 && w.Hours == 0
}

// Since is the start of the window ending at now.
func (w Window) Since(now time.Time) time.Time {
	return now.AddDate(0, -w.Months, -w.Days).Add(-time.Duration(w.Hours) * time.Hour)
}

// String renders the window compactly, weeks folded out of days.
func (w Window) String() string {
	if w.IsZero() {
		return "0d"
	}
	var b strings.Builder
	if w.Months > 0 {
		fmt.Fprintf(&b, "%dmo", w.Months)
	}
	if weeks := w.Days / 7; weeks > 0 {
		fmt.Fprintf(&b, "%dw", weeks)
	}
	if days := w.Days % 7; days > 0 {
		fmt.Fprintf(&b, "%dd", days)
	}
	if w.Hours > 0 {
		fmt.Fprintf(&b, "%dh", w.Hours)
	}
	return b.String()
}
