package mcp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/growth/pkg/app"
	"tableflip.dev/growth/pkg/logging"
)

// Transport selects how the server is exposed.
type Transport string

const (
	TransportHTTP  Transport = "http"
	TransportStdio Transport = "stdio"
)

const (
	defaultPath = "/mcp"
	defaultAddr = "127.0.0.1:8080"
)

// Runner serves the journal over MCP until its context ends.
type Runner struct {
	Service *app.Service
	Name    string
	Version string

	Transport Transport

	// Stdin and Stdout default to the process streams.
	Stdin  io.Reader
	Stdout io.Writer

	HTTPListenAddr   string
	HTTPEndpointPath string
	HTTPServerCert   string
	HTTPServerKey    string
	OnHTTPListening  func(net.Addr)
}

// NewServer builds an MCP server exposing the journal tools and resources.
func NewServer(name, version string, svc *Service) *server.MCPServer {
	srv := server.NewMCPServer(
		name+" MCP",
		version,
		server.WithResourceCapabilities(false, false),
		server.WithToolCapabilities(false),
		server.WithInstructions("Record growth journal challenges, reflections and achievements, and read the visit streak."),
		server.WithResourceRecovery(),
		server.WithRecovery(),
	)
	registerResources(srv, svc)
	registerTools(srv, svc)
	return srv
}

func (r Runner) Do(ctx context.Context) error {
	if r.Service == nil {
		return app.ErrNoStore
	}
	srv := NewServer(orDefault(r.Name, "growth"), orDefault(r.Version, "dev"), NewService(r.Service))

	switch r.Transport {
	case "", TransportHTTP:
		return r.serveHTTP(ctx, srv)
	case TransportStdio:
		return r.serveStdio(ctx, srv)
	default:
		return fmt.Errorf("mcp: unknown transport %q", r.Transport)
	}
}

func (r Runner) serveStdio(ctx context.Context, srv *server.MCPServer) error {
	var in io.Reader = os.Stdin
	if r.Stdin != nil {
		in = r.Stdin
	}
	var out io.Writer = os.Stdout
	if r.Stdout != nil {
		out = r.Stdout
	}

	stdio := server.NewStdioServer(srv)
	stdio.SetErrorLogger(slog.NewLogLogger(logging.Logger().Handler(), slog.LevelError))
	logging.Logger().Info("serving MCP over stdio")

	err := stdio.Listen(ctx, in, out)
	if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (r Runner) serveHTTP(ctx context.Context, srv *server.MCPServer) error {
	useTLS, err := r.tls()
	if err != nil {
		return err
	}

	path := orDefault(r.HTTPEndpointPath, defaultPath)
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	mux := http.NewServeMux()
	mux.Handle(path, server.NewStreamableHTTPServer(srv,
		server.WithEndpointPath(path),
		server.WithLogger(httpLogger{logging.With("component", "mcp")}),
	))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "ok\n")
	})

	ln, err := net.Listen("tcp", orDefault(r.HTTPListenAddr, defaultAddr))
	if err != nil {
		return fmt.Errorf("mcp: %w", err)
	}
	logging.Logger().Info("serving MCP over http", "addr", ln.Addr().String(), "path", path, "tls", useTLS)
	if r.OnHTTPListening != nil {
		r.OnHTTPListening(ln.Addr())
	}

	hs := &http.Server{Handler: mux, ReadHeaderTimeout: 10 * time.Second}
	stop := context.AfterFunc(ctx, func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = hs.Shutdown(sctx)
	})
	defer stop()

	if useTLS {
		err = hs.ServeTLS(ln, r.HTTPServerCert, r.HTTPServerKey)
	} else {
		err = hs.Serve(ln)
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// tls reports whether a certificate pair was configured; half a pair is an error.
func (r Runner) tls() (bool, error) {
	switch cert, key := r.HTTPServerCert != "", r.HTTPServerKey != ""; {
	case cert && key:
		return true, nil
	case cert || key:
		return false, errors.New("mcp: both http tls cert and key must be provided")
	}
	return false, nil
}

// httpLogger adapts slog to the streamable HTTP server's logger.
type httpLogger struct{ l *slog.Logger }

func (h httpLogger) Infof(format string, v ...any)  { h.l.Info(fmt.Sprintf(format, v...)) }
func (h httpLogger) Errorf(format string, v ...any) { h.l.Error(fmt.Sprintf(format, v...)) }

func orDefault(s, def string) string {
	if s = strings.TrimSpace(s); s != "" {
		return s
	}
	return def
}
