// Package mcp provides the Model Context Protocol server integration for growth.
package mcp

import (
	"context"
	"errors"
	"strings"
	"time"

	"tableflip.dev/growth/pkg/app"
	"tableflip.dev/growth/pkg/content"
	"tableflip.dev/growth/pkg/journal"
)

// Service adapts the journal service to transport-friendly projections.
type Service struct {
	App    *app.Service
	Picker content.Picker
}

// ErrEmptyText is returned when a tool is asked to record blank text.
var ErrEmptyText = errors.New("text is required")

// EntryDTO is a transport-friendly projection of an entry.
type EntryDTO struct {
	ID          string `json:"id,omitempty"`
	Kind        string `json:"kind"`
	Symbol      string `json:"symbol"`
	Text        string `json:"text"`
	Prompt      string `json:"prompt,omitempty"`
	CreatedISO  string `json:"created"`
	CreatedUnix int64  `json:"createdUnix"`
}

// VisitDTO reports the outcome of recording a visit.
type VisitDTO struct {
	Streak     int    `json:"streak"`
	Previous   int    `json:"previous"`
	Changed    bool   `json:"changed"`
	FirstVisit bool   `json:"firstVisit"`
	Reset      bool   `json:"reset"`
	Day        string `json:"day"`
}

// NewService builds a service wrapper around the journal service.
func NewService(a *app.Service) *Service {
	return &Service{App: a}
}

func (s *Service) app() (*app.Service, error) {
	if s.App == nil {
		return nil, app.ErrNoStore
	}
	return s.App, nil
}

// Visit records a visit for today. The first call in a session reports the
// visit recorded when the session started.
func (s *Service) Visit(ctx context.Context) (VisitDTO, error) {
	a, err := s.app()
	if err != nil {
		return VisitDTO{}, err
	}
	day := a.Today()
	res, err := a.Visit(ctx, day)
	if err != nil {
		return VisitDTO{}, err
	}
	return VisitDTO{
		Streak:     res.Streak,
		Previous:   res.Previous,
		Changed:    res.Changed,
		FirstVisit: res.FirstVisit,
		Reset:      res.Reset,
		Day:        day.String(),
	}, nil
}

// Add records an entry. Reflections without a prompt get a random one.
func (s *Service) Add(ctx context.Context, k journal.Kind, text, prompt string) (EntryDTO, error) {
	a, err := s.app()
	if err != nil {
		return EntryDTO{}, err
	}
	if strings.TrimSpace(text) == "" {
		return EntryDTO{}, ErrEmptyText
	}
	if k == journal.Reflection && strings.TrimSpace(prompt) == "" {
		prompt = s.Picker.Prompt()
	}
	e, err := a.Add(ctx, app.AddOptions{Kind: k, Text: text, Prompt: prompt})
	if err != nil {
		return EntryDTO{}, err
	}
	if e == nil {
		return EntryDTO{}, ErrEmptyText
	}
	return toDTO(k, *e), nil
}

// Timeline lists entries newest first, optionally restricted to one kind.
func (s *Service) Timeline(ctx context.Context, kind string, limit int) ([]EntryDTO, error) {
	a, err := s.app()
	if err != nil {
		return nil, err
	}
	opts := journal.TimelineOptions{Limit: limit}
	if strings.TrimSpace(kind) != "" {
		k, err := journal.ParseKind(kind)
		if err != nil {
			return nil, err
		}
		opts.Kinds = []journal.Kind{k}
	}
	items, err := a.Timeline(ctx, opts)
	if err != nil {
		return nil, err
	}
	out := make([]EntryDTO, 0, len(items))
	for _, it := range items {
		out = append(out, toDTO(it.Kind, it.Entry))
	}
	return out, nil
}

// Stats returns the streak and per-kind counts.
func (s *Service) Stats(ctx context.Context) (app.Stats, error) {
	a, err := s.app()
	if err != nil {
		return app.Stats{}, err
	}
	return a.Stats(ctx)
}

// Journal returns the whole journal.
func (s *Service) Journal(ctx context.Context) (*journal.State, error) {
	a, err := s.app()
	if err != nil {
		return nil, err
	}
	return a.Snapshot(ctx)
}

// RandomPrompt picks a reflection prompt.
func (s *Service) RandomPrompt() string {
	return s.Picker.Prompt()
}

func toDTO(k journal.Kind, e journal.Entry) EntryDTO {
	dto := EntryDTO{
		ID:     e.ID,
		Kind:   string(k),
		Symbol: k.Symbol(),
		Text:   e.Text,
		Prompt: e.Prompt,
	}
	if !e.Date.IsZero() {
		dto.CreatedISO = e.Date.Format(time.RFC3339)
		dto.CreatedUnix = e.Date.Unix()
	}
	return dto
}
