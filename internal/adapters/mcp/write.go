package mcp

import (
	"context"
	"fmt"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"attachsweep/internal/application/commands"
	"attachsweep/internal/domain"
	"attachsweep/internal/ports"
)

// RegisterWriteTools adds the deletion tool to the MCP server. One Deleter is
// shared across calls so the single-flight lock holds for the whole server.
func RegisterWriteTools(
	s *server.MCPServer,
	store ports.FileStore,
	index ports.LinkIndex,
	editor ports.Editor,
	settings domain.Settings,
) {
	notifier := &captureNotifier{}
	confirmer := &choiceConfirmer{}
	deleter := commands.NewDeleter(store, index, editor, notifier, confirmer, settings)

	s.AddTool(deleteTool(), deleteHandler(deleter, notifier, confirmer))
}

func deleteTool() mcp.Tool {
	return mcp.NewTool("delete_attachment",
		mcp.WithDescription("Delete the attachment linked at a cursor position, removing the link text and cascading through now-empty folders per the configured policy. Requires an explicit cascade choice; there is no interactive confirmation over MCP."),
		mcp.WithString("doc",
			mcp.Description("Vault-relative path of the note containing the link"),
			mcp.Required(),
		),
		mcp.WithNumber("line",
			mcp.Description("Zero-based line of the cursor"),
			mcp.Required(),
		),
		mcp.WithNumber("ch",
			mcp.Description("Zero-based character offset of the cursor"),
			mcp.Required(),
		),
		mcp.WithString("choice",
			mcp.Description("Answer used if the cascade needs confirmation: all, file-only, or cancel (default cancel)"),
		),
	)
}

func deleteHandler(deleter *commands.Deleter, notifier *captureNotifier, confirmer *choiceConfirmer) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		choice := domain.ChoiceCancel
		switch req.GetString("choice", "cancel") {
		case "all":
			choice = domain.ChoiceAll
		case "file-only":
			choice = domain.ChoiceFileOnly
		case "cancel":
		default:
			return toolError(fmt.Errorf("invalid choice (want all, file-only, or cancel)"))
		}
		confirmer.set(choice)

		result, err := deleter.Execute(ctx, commands.DeleteRequest{
			DocPath: req.GetString("doc", ""),
			Cursor: domain.Pos{
				Line: req.GetInt("line", -1),
				Ch:   req.GetInt("ch", -1),
			},
		})
		if err != nil {
			return toolError(err)
		}

		switch result.Outcome {
		case commands.OutcomeSkipped:
			return mcp.NewToolResultText("Another deletion is already in progress; request dropped."), nil
		case commands.OutcomeNoLink:
			return mcp.NewToolResultText("No link at the given cursor position."), nil
		case commands.OutcomeCancelled:
			return mcp.NewToolResultText("Cascade requires confirmation; re-run with choice=all or choice=file-only."), nil
		}
		return mcp.NewToolResultText(notifier.last()), nil
	}
}

// captureNotifier keeps the most recent notification so the handler can
// return it as the tool result.
type captureNotifier struct {
	mu  sync.Mutex
	msg string
}

func (n *captureNotifier) Notify(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.msg = message
}

func (n *captureNotifier) last() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.msg
}

// choiceConfirmer answers confirmations with the choice supplied in the
// current request. Requests are served sequentially over stdio, so a plain
// mutex-guarded field is enough.
type choiceConfirmer struct {
	mu     sync.Mutex
	choice domain.Choice
}

func (c *choiceConfirmer) set(choice domain.Choice) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.choice = choice
}

func (c *choiceConfirmer) Confirm(attachment string, folderPaths []string) (domain.Choice, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.choice, nil
}
