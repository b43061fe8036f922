package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/growth/pkg/journal"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerVisitTool(srv, svc)
	registerAddTool(srv, svc, journal.Challenge, "add_challenge", "Record what is challenging the user today.")
	registerAddReflectionTool(srv, svc)
	registerAddTool(srv, svc, journal.Achievement, "add_achievement", "Celebrate a win.")
	registerTimelineTool(srv, svc)
	registerStatsTool(srv, svc)
	registerRandomPromptTool(srv, svc)
}

func registerVisitTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"visit",
		mcp.WithDescription("Record today's visit and return the current streak. Repeating it on the same day changes nothing."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dto, err := svc.Visit(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerAddTool(srv *server.MCPServer, svc *Service, k journal.Kind, name, description string) {
	tool := mcp.NewTool(
		name,
		mcp.WithDescription(description),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description(fmt.Sprintf("Text of the %s.", k)),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text, err := request.RequireString("text")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dto, err := svc.Add(ctx, k, text, "")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerAddReflectionTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"add_reflection",
		mcp.WithDescription("Save a reflection answering a prompt."),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("The reflection."),
		),
		mcp.WithString("prompt",
			mcp.Description("Prompt being answered. A random prompt is used when omitted."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Text   string `json:"text"`
			Prompt string `json:"prompt"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		dto, err := svc.Add(ctx, journal.Reflection, args.Text, args.Prompt)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerTimelineTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"timeline",
		mcp.WithDescription("List journal entries, newest first."),
		mcp.WithString("kind",
			mcp.Description("Restrict to one kind of entry."),
			mcp.Enum("challenge", "reflection", "achievement"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of entries to return (default 10)."),
			mcp.Min(1),
			mcp.Max(100),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		kind := request.GetString("kind", "")
		limit := request.GetInt("limit", 10)

		entries, err := svc.Timeline(ctx, kind, limit)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"entries": entries,
			"count":   len(entries),
		})
	})
}

func registerStatsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"stats",
		mcp.WithDescription("Current streak and the number of entries of each kind."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		stats, err := svc.Stats(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(stats)
	})
}

func registerRandomPromptTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"random_prompt",
		mcp.WithDescription("Pick a reflection prompt."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText(svc.RandomPrompt()), nil
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}
