package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"attachsweep/internal/adapters/editor"
	"attachsweep/internal/adapters/filesystem"
	mcpadapter "attachsweep/internal/adapters/mcp"
	"attachsweep/internal/adapters/settings"
	"attachsweep/internal/adapters/sqlite"
	"attachsweep/internal/config"
)

func main() {
	vaultFlag := flag.String("vault", config.VaultPath(), "path to the vault")
	flag.Parse()

	commonlog.Configure(1, nil)

	store := filesystem.NewStore(*vaultFlag)
	index := sqlite.NewIndex(store)
	if err := index.Open(*vaultFlag); err != nil {
		log.Fatalf("attachsweep-mcp: %v", err)
	}
	defer index.Close()

	userSettings, err := settings.NewStore(*vaultFlag).Load()
	if err != nil {
		log.Fatalf("attachsweep-mcp: %v", err)
	}

	mcpServer := server.NewMCPServer(
		"attachsweep-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, store, index, userSettings)
	mcpadapter.RegisterWriteTools(mcpServer, store, index, editor.NewEditor(*vaultFlag), userSettings)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("attachsweep-mcp: %v", err)
	}
}
