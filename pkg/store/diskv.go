package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/growth/pkg/journal"
)

// Persistence defines the persistence contract for the journal record.
type Persistence interface {
	Load() LoadResult
	Save(s *journal.State) error
}

// Status tells whether a load found a usable record.
type Status int

const (
	// StatusOK means the record was read and parsed.
	StatusOK Status = iota
	// StatusRecovered means the record was missing or unreadable and a fresh
	// journal was substituted.
	StatusRecovered
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusRecovered:
		return "recovered"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// LoadResult is the outcome of Load. State is never nil.
type LoadResult struct {
	State  *journal.State
	Status Status
	// Reason explains a recovery; nil when Status is StatusOK.
	Reason error
}

// Recovered reports whether the state was freshly initialised.
func (r LoadResult) Recovered() bool {
	return r.Status == StatusRecovered
}

// Missing reports whether recovery happened because no record existed yet.
func (r LoadResult) Missing() bool {
	return r.Recovered() && errors.Is(r.Reason, os.ErrNotExist)
}

var errEmptyRecord = errors.New("store: empty record")

// Store keeps the journal as a single JSON file under the configured base path.
type Store struct {
	d        *diskv.Diskv
	basePath string
	key      string
}

// Load creates a Store backed by diskv using the provided config.
func Load(cfg Config) (*Store, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	key := cfg.FileName()
	if key == "" || filepath.Base(key) != key {
		return nil, fmt.Errorf("store: invalid file name %q", key)
	}
	return &Store{d: diskv.New(diskv.Options{
		BasePath: basePath,
		// No cache: another session may rewrite the file underneath us.
		CacheSizeMax: 0,
		FilePerm:     0o644,
		PathPerm:     0o755,
	}), basePath: basePath, key: key}, nil
}

// Path is the location of the journal file.
func (s *Store) Path() string {
	return filepath.Join(s.basePath, s.key)
}

// Load reads the journal. Missing, unreadable or malformed content yields a
// fresh journal with StatusRecovered; the bad file is left in place until
// the next Save overwrites it.
func (s *Store) Load() LoadResult {
	data, err := s.d.Read(s.key)
	if err != nil {
		return recovered(fmt.Errorf("store: read %s: %w", s.Path(), err))
	}
	st, err := Decode(data)
	if err != nil {
		return recovered(fmt.Errorf("store: parse %s: %w", s.Path(), err))
	}
	return LoadResult{State: st, Status: StatusOK}
}

// Save overwrites the journal file with the full state. The write is not
// atomic; a torn file is recovered by the next Load.
func (s *Store) Save(st *journal.State) error {
	data, err := Encode(st)
	if err != nil {
		return fmt.Errorf("store: encode: %w", err)
	}
	if err := s.d.Write(s.key, data); err != nil {
		return fmt.Errorf("store: save: %w", err)
	}
	return nil
}

// Append adds e to the list for k and persists the whole record immediately.
// Empty entries are ignored without touching storage.
func Append(p Persistence, st *journal.State, k journal.Kind, e journal.Entry) (bool, error) {
	ok, err := st.Append(k, e)
	if err != nil || !ok {
		return false, err
	}
	if err := p.Save(st); err != nil {
		return true, err
	}
	return true, nil
}

// Encode renders the state in the on-disk layout.
func Encode(st *journal.State) ([]byte, error) {
	if st == nil {
		st = journal.NewState()
	}
	st.Normalize()
	return json.MarshalIndent(st, "", "  ")
}

// Decode parses the on-disk layout. Anything but a JSON object is rejected.
func Decode(data []byte) (*journal.State, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, errEmptyRecord
	}
	if trimmed[0] != '{' {
		return nil, errors.New("store: record is not an object")
	}
	st := journal.NewState()
	if err := json.Unmarshal(trimmed, st); err != nil {
		return nil, err
	}
	return st, nil
}

func recovered(reason error) LoadResult {
	return LoadResult{
		State:  journal.NewState(),
		Status: StatusRecovered,
		Reason: reason,
	}
}
