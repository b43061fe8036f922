package assets

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"tableflip.dev/growth/pkg/logging"
)

// Lottie documents shown alongside the dashboard.
const (
	GrowthURL      = "https://assets5.lottiefiles.com/packages/lf20_rnnlxazi.json"
	AchievementURL = "https://assets3.lottiefiles.com/packages/lf20_touohxv0.json"
	ReflectionURL  = "https://assets1.lottiefiles.com/private_files/lf30_GjhcdO.json"
)

// DefaultTimeout bounds a single fetch.
const DefaultTimeout = 3 * time.Second

// maxBody caps the document size; Lottie files are small.
const maxBody = 4 << 20

// Animation is the header of a Lottie document.
type Animation struct {
	Name      string  `json:"nm"`
	Version   string  `json:"v"`
	FrameRate float64 `json:"fr"`
	InPoint   float64 `json:"ip"`
	OutPoint  float64 `json:"op"`
	Width     int     `json:"w"`
	Height    int     `json:"h"`
}

// Duration is the playback length.
func (a Animation) Duration() time.Duration {
	if a.FrameRate <= 0 || a.OutPoint <= a.InPoint {
		return 0
	}
	secs := (a.OutPoint - a.InPoint) / a.FrameRate
	return time.Duration(secs * float64(time.Second))
}

// Banner is a one line summary for text output.
func (a Animation) Banner() string {
	name := a.Name
	if name == "" {
		name = "animation"
	}
	return fmt.Sprintf("✨ %s (%dx%d, %s)", name, a.Width, a.Height, a.Duration().Round(100*time.Millisecond))
}

// Fetcher downloads Lottie documents. Failures never reach the caller.
type Fetcher struct {
	client *http.Client
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.client = c
	}
}

// WithTimeout sets the per-request timeout of the default client.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.client = &http.Client{Timeout: d}
	}
}

// NewFetcher returns a Fetcher using a client with DefaultTimeout.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{client: &http.Client{Timeout: DefaultTimeout}}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch retrieves url and decodes its header. It reports false on any
// failure; the cause is logged at debug level.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*Animation, bool) {
	log := logging.With("url", url)
	anim, err := f.fetch(ctx, url)
	if err != nil {
		log.Debug("animation unavailable", "err", err)
		return nil, false
	}
	return anim, true
}

func (f *Fetcher) fetch(ctx context.Context, url string) (*Animation, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("assets: request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("assets: get: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("assets: unexpected status %s", resp.Status)
	}

	var anim Animation
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBody)).Decode(&anim); err != nil {
		return nil, fmt.Errorf("assets: decode: %w", err)
	}
	return &anim, nil
}
