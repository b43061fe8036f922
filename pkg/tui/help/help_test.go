package help

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss/v2"
)

func TestViewFitsSize(t *testing.T) {
	m := New(60, 12)
	out := m.View()
	if lipgloss.Width(out) != 60 {
		t.Fatalf("expected width 60, got %d:\n%s", lipgloss.Width(out), out)
	}
	if lipgloss.Height(out) != 12 {
		t.Fatalf("expected height 12, got %d:\n%s", lipgloss.Height(out), out)
	}
	if !strings.Contains(out, "Keys") {
		t.Fatalf("expected help heading:\n%s", out)
	}
}

func TestScrolls(t *testing.T) {
	m := New(40, 8)
	before := m.View()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	if m.View() == before {
		t.Fatalf("expected page down to scroll")
	}
}

func TestMinimumSize(t *testing.T) {
	m := New(1, 1)
	if m.width != 32 || m.height != 8 {
		t.Fatalf("expected minimum size, got %dx%d", m.width, m.height)
	}
}
