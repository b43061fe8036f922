package journal

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Kind names one of the three journal lists.
type Kind string

const (
	Challenge   Kind = "challenge"
	Reflection  Kind = "reflection"
	Achievement Kind = "achievement"
)

// ErrUnknownKind is returned when a kind name does not match any list.
var ErrUnknownKind = errors.New("journal: unknown kind")

// Kinds lists every kind in display order.
func Kinds() []Kind {
	return []Kind{Challenge, Reflection, Achievement}
}

// ParseKind resolves a kind from its name or plural, case-insensitively.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "challenge", "challenges", "c":
		return Challenge, nil
	case "reflection", "reflections", "r":
		return Reflection, nil
	case "achievement", "achievements", "a":
		return Achievement, nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownKind, s)
}

// Valid reports whether k is one of the three lists.
func (k Kind) Valid() bool {
	switch k {
	case Challenge, Reflection, Achievement:
		return true
	}
	return false
}

// Symbol is the marker shown next to entries of this kind.
func (k Kind) Symbol() string {
	switch k {
	case Challenge:
		return "🔄"
	case Reflection:
		return "💡"
	case Achievement:
		return "🏆"
	}
	return "•"
}

// Title is the capitalised kind name.
func (k Kind) Title() string {
	if k == "" {
		return ""
	}
	return strings.ToUpper(string(k[:1])) + string(k[1:])
}

// Plural is the list name for the kind.
func (k Kind) Plural() string {
	return string(k) + "s"
}

// Entry is a single user-submitted record.
type Entry struct {
	ID     string    `json:"id,omitempty"`
	Text   string    `json:"text"`
	Date   Timestamp `json:"date"`
	Prompt string    `json:"prompt,omitempty"`
}

// New builds an entry stamped at the given time with a fresh id.
func New(text string, at time.Time) Entry {
	return Entry{
		ID:   uuid.NewString(),
		Text: text,
		Date: Timestamp{Time: at},
	}
}

// NewReflection builds a reflection entry answering prompt.
func NewReflection(text, prompt string, at time.Time) Entry {
	e := New(text, at)
	e.Prompt = prompt
	return e
}

// ShortID is the first block of the id, enough to tell entries apart on screen.
func (e Entry) ShortID() string {
	if i := strings.IndexByte(e.ID, '-'); i > 0 {
		return e.ID[:i]
	}
	return e.ID
}
