package commands

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/growth/pkg/runner/mcp"
)

// MCPOptions configure the MCP server transport.
type MCPOptions struct {
	Transport string
	Host      string
	Port      int
	Path      string
	TLSCert   string
	TLSKey    string
}

func addMCP(topLevel *cobra.Command) {
	mo := &MCPOptions{}

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start the Model Context Protocol server.",
		Long: `Launch an MCP server that lets an assistant record challenges, reflections
and achievements and read the streak and the journey.`,
		Example: `
growth mcp
growth mcp --transport stdio
growth mcp --http-host 0.0.0.0 --http-port 0
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := openSession(nil)
			if err != nil {
				return err
			}
			runner, err := mo.runner()
			if err != nil {
				return err
			}
			runner.Service = s.service
			runner.Version = version
			if runner.Transport == mcp.TransportHTTP {
				runner.OnHTTPListening = func(a net.Addr) {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "MCP HTTP server listening on %s\n", mo.listenURL(a))
				}
			}
			return runner.Do(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&mo.Transport, "transport", string(mcp.TransportHTTP), "transport to use: http or stdio")
	cmd.Flags().StringVar(&mo.Host, "http-host", "127.0.0.1", "host/interface for HTTP transport")
	cmd.Flags().IntVar(&mo.Port, "http-port", 8080, "port for HTTP transport (use 0 for random)")
	cmd.Flags().StringVar(&mo.Path, "http-path", "/mcp", "HTTP endpoint path")
	cmd.Flags().StringVar(&mo.TLSCert, "http-tls-cert", "", "TLS certificate file for HTTPS")
	cmd.Flags().StringVar(&mo.TLSKey, "http-tls-key", "", "TLS private key file for HTTPS")

	topLevel.AddCommand(cmd)
}

func (o *MCPOptions) path() string {
	p := strings.TrimSpace(o.Path)
	if p == "" {
		p = "/mcp"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}

func (o *MCPOptions) host() string {
	if h := strings.TrimSpace(o.Host); h != "" {
		return h
	}
	return "127.0.0.1"
}

// runner validates the flags into an mcp.Runner without a service.
func (o *MCPOptions) runner() (mcp.Runner, error) {
	r := mcp.Runner{
		Name:             "growth",
		HTTPEndpointPath: o.path(),
		HTTPServerCert:   strings.TrimSpace(o.TLSCert),
		HTTPServerKey:    strings.TrimSpace(o.TLSKey),
	}
	switch strings.ToLower(strings.TrimSpace(o.Transport)) {
	case "", string(mcp.TransportHTTP):
		if o.Port < 0 || o.Port > 65535 {
			return r, fmt.Errorf("invalid http-port %d", o.Port)
		}
		r.Transport = mcp.TransportHTTP
		r.HTTPListenAddr = net.JoinHostPort(o.host(), strconv.Itoa(o.Port))
	case string(mcp.TransportStdio):
		r.Transport = mcp.TransportStdio
	default:
		return r, fmt.Errorf("unsupported transport %q (expected http or stdio)", o.Transport)
	}
	return r, nil
}

// listenURL is the address clients should use once the server listens on a.
// Wildcard hosts are shown as the bound IP, or loopback when that is
// unspecified too.
func (o *MCPOptions) listenURL(a net.Addr) string {
	scheme := "http"
	if strings.TrimSpace(o.TLSCert) != "" && strings.TrimSpace(o.TLSKey) != "" {
		scheme = "https"
	}
	tcp, ok := a.(*net.TCPAddr)
	if !ok {
		return scheme + "://" + a.String() + o.path()
	}

	host := o.host()
	if host == "0.0.0.0" || host == "::" {
		host = "127.0.0.1"
		if tcp.IP != nil && !tcp.IP.IsUnspecified() {
			host = tcp.IP.String()
		}
	}
	u := url.URL{
		Scheme: scheme,
		Host:   net.JoinHostPort(host, strconv.Itoa(tcp.Port)),
		Path:   o.path(),
	}
	return u.String()
}
