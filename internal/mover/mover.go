// Package mover wires the X11 shim to the pure geometry pipeline: gather
// monitors and panels, trim, build the topology, locate the active window,
// plan its new rect, and apply it.
package mover

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/1broseidon/monshift/internal/config"
	"github.com/1broseidon/monshift/internal/display"
	"github.com/1broseidon/monshift/internal/geometry"
	"github.com/1broseidon/monshift/internal/planner"
	"github.com/1broseidon/monshift/internal/topology"
	"github.com/1broseidon/monshift/internal/x11"
)

// Request describes one move invocation with its per-call overrides.
type Request struct {
	Direction       topology.Direction
	PreserveRatio   bool
	AdjustForPanels bool
	Axis            topology.SortAxis
	// DryRun plans the move but does not touch the window.
	DryRun bool
}

// Result reports what a move did (or, dry-run, would do).
type Result struct {
	Window  xproto.Window
	From    string
	To      string
	OldRect geometry.Rect
	NewRect geometry.Rect
	Moved   bool
}

// Mover executes window moves against one X connection.
type Mover struct {
	conn   *x11.Connection
	logger *slog.Logger

	mu     sync.Mutex
	cfg    *config.Config
	scale  int
	panels []string
}

// New builds a Mover; the desktop profile is resolved from the config.
func New(conn *x11.Connection, cfg *config.Config, logger *slog.Logger) *Mover {
	m := &Mover{
		conn:   conn,
		logger: logger,
	}
	m.UpdateConfig(cfg)
	return m
}

// UpdateConfig swaps in a new configuration, re-resolving the desktop
// profile. Used by the daemon's SIGHUP reload.
func (m *Mover) UpdateConfig(cfg *config.Config) {
	desktop, profile := cfg.ActiveProfile()
	m.logger.Debug("desktop profile resolved",
		"desktop", desktop,
		"scale", profile.Scale(),
		"panel_classes", profile.PanelClasses)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.cfg = cfg
	m.scale = profile.Scale()
	m.panels = profile.PanelClasses
}

// RequestFromConfig builds a Request with the config's defaults.
func (m *Mover) RequestFromConfig(dir topology.Direction) Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Request{
		Direction:       dir,
		PreserveRatio:   m.cfg.PreserveRatio,
		AdjustForPanels: m.cfg.GetAdjustForPanels(),
		Axis:            m.cfg.SortAxis(),
	}
}

// Move relocates the active window in the requested direction. Moves are
// serialized; a reload through UpdateConfig waits for an in-flight move.
func (m *Mover) Move(req Request) (*Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	win, err := m.conn.ActiveWindow()
	if err != nil {
		return nil, err
	}

	winRect, err := m.conn.WindowGeometry(win, m.scale)
	if err != nil {
		return nil, err
	}

	state, err := m.conn.WindowState(win)
	if err != nil {
		// A window without readable state is still movable; treat it as
		// plain.
		m.logger.Debug("window state unreadable", "window", win, "error", err)
		state = nil
	}

	reg, err := m.registry(req.AdjustForPanels && !state.Has(planner.StateFullscreen))
	if err != nil {
		return nil, err
	}

	sourceTag, err := planner.Locate(reg, winRect)
	if err != nil {
		return nil, err
	}

	topo := topology.Build(reg, req.Axis)
	targetTag := topo.Resolve(sourceTag, req.Direction)

	res, err := planner.Plan(reg, planner.MoveRequest{
		Window:        winRect,
		SourceTag:     sourceTag,
		TargetTag:     targetTag,
		PreserveRatio: req.PreserveRatio,
		States:        state,
	})
	if err != nil {
		return nil, err
	}

	m.logger.Debug("move planned",
		"window", win,
		"direction", req.Direction,
		"from", sourceTag,
		"to", res.TargetTag,
		"old_rect", winRect,
		"new_rect", res.Rect,
		"dry_run", req.DryRun)

	result := &Result{
		Window:  win,
		From:    sourceTag,
		To:      res.TargetTag,
		OldRect: winRect,
		NewRect: res.Rect,
	}
	if req.DryRun {
		return result, nil
	}

	if err := m.apply(win, res.Rect); err != nil {
		return nil, err
	}
	result.Moved = true
	return result, nil
}

// apply performs the actual X11 move: strip move-blocking states, place the
// frame, restore the states so the window manager reapplies them on the new
// monitor, then raise and warp per config.
func (m *Mover) apply(win xproto.Window, rect geometry.Rect) error {
	stripped, err := m.conn.ClearBlockingStates(win)
	if err != nil {
		return fmt.Errorf("failed to prepare window for move: %w", err)
	}

	if err := m.conn.MoveResize(win, rect, m.scale); err != nil {
		return fmt.Errorf("failed to move window: %w", err)
	}

	if err := m.conn.RestoreStates(win, stripped); err != nil {
		return fmt.Errorf("failed to restore window state: %w", err)
	}

	if m.cfg.GetRaiseWindow() {
		if err := m.conn.Raise(win); err != nil {
			m.logger.Warn("failed to raise window", "window", win, "error", err)
		}
	}
	if m.cfg.WarpPointer {
		if err := m.conn.WarpPointer(rect.Center(), m.scale); err != nil {
			m.logger.Warn("failed to warp pointer", "error", err)
		}
	}
	return nil
}

// registry gathers the current monitor and panel set.
func (m *Mover) registry(trim bool) (*display.Registry, error) {
	monitors, err := m.conn.Monitors(m.scale)
	if err != nil {
		return nil, err
	}

	var panels []geometry.Rect
	if trim {
		panels, err = m.conn.Panels(m.panels, m.scale)
		if err != nil {
			// Panel discovery failing only loses the trim, not the move.
			m.logger.Warn("panel discovery failed", "error", err)
			panels = nil
		}
	}

	reg, err := display.New(monitors, panels)
	if err != nil {
		return nil, err
	}
	if trim {
		reg.TrimPanels()
	}
	return reg, nil
}
