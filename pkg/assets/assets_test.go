package assets

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const sample = `{"v":"5.5.7","fr":30,"ip":0,"op":90,"w":400,"h":300,"nm":"growth","layers":[]}`

func TestFetchDecodesHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sample))
	}))
	defer srv.Close()

	anim, ok := NewFetcher(WithHTTPClient(srv.Client())).Fetch(context.Background(), srv.URL)
	if !ok {
		t.Fatalf("expected animation")
	}
	if anim.Name != "growth" || anim.Width != 400 || anim.Height != 300 {
		t.Fatalf("unexpected animation %+v", anim)
	}
	if anim.Duration() != 3*time.Second {
		t.Fatalf("expected 3s, got %s", anim.Duration())
	}
	if !strings.Contains(anim.Banner(), "growth (400x300, 3s)") {
		t.Fatalf("unexpected banner %q", anim.Banner())
	}
}

func TestFetchDegradesGracefully(t *testing.T) {
	cases := map[string]http.HandlerFunc{
		"not found": func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		},
		"bad json": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>"))
		},
		"slow": func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(time.Second):
			}
			_, _ = w.Write([]byte(sample))
		},
	}
	for name, h := range cases {
		srv := httptest.NewServer(h)
		f := NewFetcher(WithTimeout(50 * time.Millisecond))
		anim, ok := f.Fetch(context.Background(), srv.URL)
		srv.Close()
		if ok || anim != nil {
			t.Fatalf("%s: expected graceful failure, got %+v", name, anim)
		}
	}
}

func TestFetchUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	if _, ok := NewFetcher().Fetch(context.Background(), url); ok {
		t.Fatalf("expected failure for closed server")
	}
	if _, ok := NewFetcher().Fetch(context.Background(), "://bad"); ok {
		t.Fatalf("expected failure for bad url")
	}
}

func TestFetchCancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(sample))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, ok := NewFetcher(WithHTTPClient(srv.Client())).Fetch(ctx, srv.URL); ok {
		t.Fatalf("expected failure for cancelled context")
	}
}
