package mcp

import (
	"context"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/monshift/internal/geometry"
	"github.com/1broseidon/monshift/internal/planner"
	"github.com/1broseidon/monshift/internal/topology"
)

func rectInfo(r geometry.Rect) RectInfo {
	return RectInfo{X: r.X, Y: r.Y, Width: r.W, Height: r.H}
}

func (s *Server) handleListMonitors(_ context.Context, _ *mcpsdk.CallToolRequest, _ ListMonitorsInput) (*mcpsdk.CallToolResult, ListMonitorsOutput, error) {
	snap, err := s.mover.Snapshot()
	if err != nil {
		return nil, ListMonitorsOutput{}, err
	}

	out := ListMonitorsOutput{
		Arrangement: string(snap.Shape),
		Order:       snap.Order,
	}
	for _, mon := range snap.Monitors {
		out.Monitors = append(out.Monitors, MonitorInfo{
			Tag:    mon.Tag,
			Rect:   rectInfo(mon.Rect),
			Usable: rectInfo(mon.Usable),
		})
	}
	return nil, out, nil
}

func (s *Server) handleGetActiveWindow(_ context.Context, _ *mcpsdk.CallToolRequest, _ GetActiveWindowInput) (*mcpsdk.CallToolResult, GetActiveWindowOutput, error) {
	snap, err := s.mover.Snapshot()
	if err != nil {
		return nil, GetActiveWindowOutput{}, err
	}
	if snap.Active == nil {
		return nil, GetActiveWindowOutput{}, fmt.Errorf("no active window")
	}

	active := snap.Active
	return nil, GetActiveWindowOutput{
		WindowID: active.ID,
		Rect:     rectInfo(active.Rect),
		Monitor:  active.Monitor,
		Maximized: active.State.Has(planner.StateMaximizedHorz) ||
			active.State.Has(planner.StateMaximizedVert),
		Fullscreen: active.State.Has(planner.StateFullscreen),
	}, nil
}

func (s *Server) handleMoveWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args MoveWindowInput) (*mcpsdk.CallToolResult, MoveWindowOutput, error) {
	dir, err := topology.ParseDirection(args.Direction)
	if err != nil {
		return nil, MoveWindowOutput{}, err
	}

	req := s.mover.RequestFromConfig(dir)
	if args.PreserveRatio != nil {
		req.PreserveRatio = *args.PreserveRatio
	}
	if args.AdjustForPanels != nil {
		req.AdjustForPanels = *args.AdjustForPanels
	}
	req.DryRun = args.DryRun

	res, err := s.mover.Move(req)
	if err != nil {
		return nil, MoveWindowOutput{}, err
	}

	s.logger.Info("mcp move",
		"direction", dir,
		"from", res.From,
		"to", res.To,
		"dry_run", args.DryRun)

	return nil, MoveWindowOutput{
		WindowID: uint32(res.Window),
		From:     res.From,
		To:       res.To,
		OldRect:  rectInfo(res.OldRect),
		NewRect:  rectInfo(res.NewRect),
		Moved:    res.Moved,
	}, nil
}
