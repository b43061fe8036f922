package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	JournalURI = "growth://journal"
	StatsURI   = "growth://stats"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerJournalResource(srv, svc)
	registerStatsResource(srv, svc)
}

func registerJournalResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		JournalURI,
		"Journal",
		mcp.WithResourceDescription("The whole growth journal: challenges, reflections, achievements and streak."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		st, err := svc.Journal(ctx)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, st)
	})
}

func registerStatsResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		StatsURI,
		"Stats",
		mcp.WithResourceDescription("Current streak and entry counts."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		stats, err := svc.Stats(ctx)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, stats)
	})
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
