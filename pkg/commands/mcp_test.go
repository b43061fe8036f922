package commands

import (
	"net"
	"testing"

	"tableflip.dev/growth/pkg/runner/mcp"
)

func TestMCPRunnerFromFlags(t *testing.T) {
	mo := &MCPOptions{Transport: "HTTP", Host: " ", Port: 9000, Path: "tools"}
	r, err := mo.runner()
	if err != nil {
		t.Fatalf("runner: %v", err)
	}
	if r.Transport != mcp.TransportHTTP || r.HTTPListenAddr != "127.0.0.1:9000" || r.HTTPEndpointPath != "/tools" {
		t.Fatalf("unexpected runner %+v", r)
	}

	mo = &MCPOptions{Transport: "stdio"}
	if r, err := mo.runner(); err != nil || r.Transport != mcp.TransportStdio {
		t.Fatalf("expected stdio runner, got %+v %v", r, err)
	}

	for _, bad := range []*MCPOptions{{Transport: "grpc"}, {Port: 70000}} {
		if _, err := bad.runner(); err == nil {
			t.Fatalf("expected error for %+v", bad)
		}
	}
}

func TestMCPListenURL(t *testing.T) {
	for _, tc := range []struct {
		opts MCPOptions
		addr net.Addr
		want string
	}{
		{MCPOptions{Host: "127.0.0.1"}, &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 8080}, "http://127.0.0.1:8080/mcp"},
		{MCPOptions{Host: "0.0.0.0"}, &net.TCPAddr{IP: net.IPv4zero, Port: 4321}, "http://127.0.0.1:4321/mcp"},
		{MCPOptions{Host: "::1", Path: "x"}, &net.TCPAddr{IP: net.IPv6loopback, Port: 1}, "http://[::1]:1/x"},
		{MCPOptions{Host: "localhost", TLSCert: "c", TLSKey: "k"}, &net.TCPAddr{Port: 443}, "https://localhost:443/mcp"},
	} {
		if got := tc.opts.listenURL(tc.addr); got != tc.want {
			t.Fatalf("%+v: expected %s, got %s", tc.opts, tc.want, got)
		}
	}
}
