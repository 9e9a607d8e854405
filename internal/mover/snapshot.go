package mover

import (
	"github.com/1broseidon/monshift/internal/display"
	"github.com/1broseidon/monshift/internal/geometry"
	"github.com/1broseidon/monshift/internal/planner"
	"github.com/1broseidon/monshift/internal/topology"
)

// Snapshot is a read-only view of the current desktop: monitors with their
// trimmed usable rects, the panels that trimmed them, the rotational order,
// and the active window if one exists. The monitors command, the MCP tools
// and the TUI all render from this.
type Snapshot struct {
	Monitors []display.Monitor
	Panels   []display.Panel
	Order    []string
	Shape    topology.Arrangement
	Active   *ActiveWindow
}

// ActiveWindow describes the focused window within a Snapshot.
type ActiveWindow struct {
	ID      uint32
	Rect    geometry.Rect
	Monitor string
	State   planner.WindowState
}

// Snapshot gathers the current desktop state without touching anything.
func (m *Mover) Snapshot() (*Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	reg, err := m.registry(m.cfg.GetAdjustForPanels())
	if err != nil {
		return nil, err
	}
	topo := topology.Build(reg, m.cfg.SortAxis())

	snap := &Snapshot{
		Monitors: reg.Monitors(),
		Panels:   reg.Panels(),
		Order:    topo.Order(),
		Shape:    topo.Shape(),
	}

	// No active window is not an error for a snapshot: an empty desktop
	// still has monitors worth showing.
	win, err := m.conn.ActiveWindow()
	if err != nil {
		return snap, nil
	}
	rect, err := m.conn.WindowGeometry(win, m.scale)
	if err != nil {
		return snap, nil
	}
	active := &ActiveWindow{ID: uint32(win), Rect: rect}
	if state, err := m.conn.WindowState(win); err == nil {
		active.State = state
	}
	if tag, err := planner.Locate(reg, rect); err == nil {
		active.Monitor = tag
	}
	snap.Active = active
	return snap, nil
}
