// Package mcp exposes monshift's monitor topology and window moves as MCP
// tools over stdio, so AI agents can relocate windows.
package mcp

import (
	"context"
	"log/slog"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/monshift/internal/mover"
)

const (
	ServerName    = "monshift"
	ServerVersion = "0.1.0"
)

// Server is the MCP server wrapping a Mover.
type Server struct {
	mcpServer *mcpsdk.Server
	mover     *mover.Mover
	logger    *slog.Logger
}

// NewServer creates the MCP server and registers its tools.
func NewServer(m *mover.Mover, logger *slog.Logger) *Server {
	s := &Server{
		mover:  m,
		logger: logger,
	}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_monitors",
		Description: "List all connected monitors with their raw and usable geometry (usable excludes panels and docks), the detected arrangement (horizontal, vertical, irregular), and the rotational order used by next/prev moves.",
	}, s.handleListMonitors)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "get_active_window",
		Description: "Get the currently focused window: its frame geometry, the monitor it is on, and whether it is maximized or fullscreen.",
	}, s.handleGetActiveWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "move_window",
		Description: "Move the active window to another monitor. Direction is one of: left, right, up, down (directional adjacency), next, prev (rotational order), here (re-fit on the current monitor). Set dry_run to preview the resulting geometry without moving anything.",
	}, s.handleMoveWindow)
}
