package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"attachsweep/internal/application/commands"
	"attachsweep/internal/domain"
	"attachsweep/internal/ports"
)

// RegisterReadTools adds the read-only attachment tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, store ports.FileStore, index ports.LinkIndex, settings domain.Settings) {
	s.AddTool(refsTool(), refsHandler(store, index))
	s.AddTool(planTool(), planHandler(store, settings))
}

// --- refs ---

func refsTool() mcp.Tool {
	return mcp.NewTool("refs",
		mcp.WithDescription("Count corpus-wide references to an attachment. Returns the total occurrence count and the referencing notes."),
		mcp.WithString("target",
			mcp.Description("Attachment path or link text (e.g. assets/photo.png)"),
			mcp.Required(),
		),
	)
}

func refsHandler(store ports.FileStore, index ports.LinkIndex) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := &commands.RefsCommand{
			Store:  store,
			Index:  index,
			Target: req.GetString("target", ""),
		}
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var b strings.Builder
		fmt.Fprintf(&b, "%s: %d occurrence(s) in %d note(s)\n",
			result.TargetPath, result.Summary.TotalCount, result.Summary.FileCount)
		for _, f := range result.Summary.Files {
			fmt.Fprintf(&b, "- %s\n", f)
		}
		return mcp.NewToolResultText(b.String()), nil
	}
}

// --- plan ---

func planTool() mcp.Tool {
	return mcp.NewTool("plan",
		mcp.WithDescription("Dry-run the cascade plan for an attachment: which ancestor folders would become empty if it were deleted, and whether confirmation would be required."),
		mcp.WithString("target",
			mcp.Description("Attachment path or link text"),
			mcp.Required(),
		),
	)
}

func planHandler(store ports.FileStore, settings domain.Settings) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := &commands.PlanCommand{
			Store:    store,
			Settings: settings,
			Target:   req.GetString("target", ""),
		}
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var b strings.Builder
		fmt.Fprintf(&b, "%s: %d folder(s), decision %s\n",
			result.TargetPath, len(result.Folders), result.Decision)
		for _, f := range result.Folders {
			fmt.Fprintf(&b, "- %s\n", f)
		}
		return mcp.NewToolResultText(b.String()), nil
	}
}

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
