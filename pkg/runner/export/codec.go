package export

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"tableflip.dev/growth/pkg/journal"
	"tableflip.dev/growth/pkg/store"
	"tableflip.dev/growth/pkg/timeutil"
)

// Format is a dump encoding.
type Format string

const (
	JSON    Format = "json"
	YAML    Format = "yaml"
	MsgPack Format = "msgpack"
)

var ErrUnknownFormat = errors.New("export: unknown format")

// Formats lists the supported encodings.
func Formats() []Format { return []Format{JSON, YAML, MsgPack} }

// ParseFormat resolves a format name.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "msgpack", "mp", "mpk":
		return MsgPack, nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownFormat, s)
}

// FormatFor guesses the format from a file extension, defaulting to JSON.
func FormatFor(path string) Format {
	if f, err := ParseFormat(strings.TrimPrefix(filepath.Ext(path), ".")); err == nil {
		return f
	}
	return JSON
}

// document is the portable shape used by yaml and msgpack. Dates are kept as
// strings so both encoders round trip them without custom marshallers.
type document struct {
	Challenges   []record `yaml:"challenges" msgpack:"challenges"`
	Reflections  []record `yaml:"reflections" msgpack:"reflections"`
	Achievements []record `yaml:"achievements" msgpack:"achievements"`
	Streak       int      `yaml:"streak" msgpack:"streak"`
	LastVisit    string   `yaml:"last_visit,omitempty" msgpack:"last_visit,omitempty"`
}

type record struct {
	ID     string `yaml:"id,omitempty" msgpack:"id,omitempty"`
	Text   string `yaml:"text" msgpack:"text"`
	Date   string `yaml:"date" msgpack:"date"`
	Prompt string `yaml:"prompt,omitempty" msgpack:"prompt,omitempty"`
}

func toDocument(st *journal.State) document {
	conv := func(in []journal.Entry) []record {
		out := make([]record, 0, len(in))
		for _, e := range in {
			r := record{ID: e.ID, Text: e.Text, Prompt: e.Prompt}
			if !e.Date.IsZero() {
				r.Date = e.Date.Format(time.RFC3339Nano)
			}
			out = append(out, r)
		}
		return out
	}
	doc := document{
		Challenges:   conv(st.Challenges),
		Reflections:  conv(st.Reflections),
		Achievements: conv(st.Achievements),
		Streak:       st.Streak,
	}
	if st.LastVisit != nil {
		doc.LastVisit = st.LastVisit.String()
	}
	return doc
}

func (d document) state() (*journal.State, error) {
	conv := func(k journal.Kind, in []record) ([]journal.Entry, error) {
		out := make([]journal.Entry, 0, len(in))
		for i, r := range in {
			e := journal.Entry{ID: r.ID, Text: r.Text, Prompt: r.Prompt}
			if r.Date != "" {
				t, err := journal.ParseTime(r.Date)
				if err != nil {
					return nil, fmt.Errorf("export: %s %d: %w", k, i, err)
				}
				e.Date = journal.Timestamp{Time: t}
			}
			out = append(out, e)
		}
		return out, nil
	}

	st := journal.NewState()
	var err error
	if st.Challenges, err = conv(journal.Challenge, d.Challenges); err != nil {
		return nil, err
	}
	if st.Reflections, err = conv(journal.Reflection, d.Reflections); err != nil {
		return nil, err
	}
	if st.Achievements, err = conv(journal.Achievement, d.Achievements); err != nil {
		return nil, err
	}
	st.Streak = d.Streak
	if d.LastVisit != "" {
		lv, err := timeutil.ParseDate(d.LastVisit)
		if err != nil {
			return nil, fmt.Errorf("export: last_visit: %w", err)
		}
		st.LastVisit = &lv
	}
	st.Normalize()
	return st, nil
}

// Encode writes st to w.
func Encode(w io.Writer, st *journal.State, f Format) error {
	switch f {
	case JSON:
		data, err := store.Encode(st)
		if err != nil {
			return err
		}
		_, err = w.Write(append(data, '\n'))
		return err
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(toDocument(st)); err != nil {
			return fmt.Errorf("export: yaml: %w", err)
		}
		return enc.Close()
	case MsgPack:
		if err := msgpack.NewEncoder(w).Encode(toDocument(st)); err != nil {
			return fmt.Errorf("export: msgpack: %w", err)
		}
		return nil
	}
	return fmt.Errorf("%w %q", ErrUnknownFormat, f)
}

// Decode reads a journal written by Encode.
func Decode(r io.Reader, f Format) (*journal.State, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("export: read: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("export: empty input")
	}

	var doc document
	switch f {
	case JSON:
		return store.Decode(data)
	case YAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("export: yaml: %w", err)
		}
	case MsgPack:
		if err := msgpack.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("export: msgpack: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownFormat, f)
	}
	return doc.state()
}
