package api

import (
	"context"
	"encoding/json"
	"taxmemo/app/model"
	"taxmemo/app/service/memo"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/samber/do"
)

// MCPServer exposes memo generation as a stdio tool for agent hosts. It
// runs instead of the HTTP server, never alongside it.
type MCPServer struct {
	memo memoRunner
}

func NewMCP(di *do.Injector) (*MCPServer, error) {
	orchestrator := do.MustInvoke[*memo.Service](di)

	return &MCPServer{memo: orchestrator}, nil
}

func (s *MCPServer) Run(_ context.Context) error {
	mcpServer := server.NewMCPServer(
		"taxmemo",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	tool := mcp.NewTool("generate_memo",
		mcp.WithDescription("Generate a multi-section market entry tax memo from a business profile. "+
			"Returns a JSON object keyed by section title."),
		mcp.WithString("profile",
			mcp.Required(),
			mcp.Description("The business profile as a JSON object (camelCase keys, e.g. businessName, primaryJurisdiction, taxQueries)."),
		),
	)
	mcpServer.AddTool(tool, s.handleGenerateMemo)

	return server.ServeStdio(mcpServer)
}

func (s *MCPServer) handleGenerateMemo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw := req.GetString("profile", "")
	if raw == "" {
		return mcp.NewToolResultError("'profile' is required"), nil
	}

	var profile model.Profile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		return mcp.NewToolResultError("'profile' is not valid JSON: " + err.Error()), nil
	}

	result := s.memo.GenerateMemo(ctx, &profile)

	encoded, err := json.Marshal(result)
	if err != nil {
		return mcp.NewToolResultError("failed to encode memo: " + err.Error()), nil
	}

	return mcp.NewToolResultText(string(encoded)), nil
}
