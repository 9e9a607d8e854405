// Package display assembles the per-invocation view of the desktop: the set
// of monitors with their raw and usable rectangles, and the panels (docks,
// taskbars) that carve space out of them.
package display

import (
	"fmt"

	"github.com/1broseidon/monshift/internal/geometry"
)

// Monitor is one physical display area. Usable starts equal to Rect and is
// narrowed by TrimPanels; it never grows back.
type Monitor struct {
	Tag    string
	Rect   geometry.Rect
	Usable geometry.Rect
}

// Panel is a desktop-chrome strip owned by exactly one monitor: the monitor
// whose raw rect fully contains it.
type Panel struct {
	Rect  geometry.Rect
	Owner string
}

// Registry holds the monitor and panel set for one invocation. It is built
// fresh from raw data, consumed once, and discarded.
type Registry struct {
	monitors []Monitor
	panels   []Panel
}

// New builds a Registry from raw monitor rects and panel rects. Monitor order
// is preserved (it drives adjacency tie-breaking later). Panels not fully
// contained in any monitor are dropped: they cannot affect usable area.
func New(monitors []Monitor, panelRects []geometry.Rect) (*Registry, error) {
	if len(monitors) == 0 {
		return nil, fmt.Errorf("no monitors")
	}

	reg := &Registry{monitors: make([]Monitor, len(monitors))}
	for i, m := range monitors {
		if m.Tag == "" {
			m.Tag = fmt.Sprintf("monitor%d", i)
		}
		m.Usable = m.Rect
		reg.monitors[i] = m
	}

	for _, pr := range panelRects {
		if owner, ok := reg.ownerOf(pr); ok {
			reg.panels = append(reg.panels, Panel{Rect: pr, Owner: owner})
		}
	}

	return reg, nil
}

// ownerOf finds the monitor whose raw rect fully contains the panel.
// Containment, not overlap: a strip straddling two monitors belongs to
// neither.
func (r *Registry) ownerOf(panel geometry.Rect) (string, bool) {
	for i := range r.monitors {
		if geometry.In(panel, r.monitors[i].Rect) {
			return r.monitors[i].Tag, true
		}
	}
	return "", false
}

// Monitors returns the monitor set in registry order.
func (r *Registry) Monitors() []Monitor {
	return r.monitors
}

// Panels returns the owned panels.
func (r *Registry) Panels() []Panel {
	return r.panels
}

// Find returns the monitor with the given tag.
func (r *Registry) Find(tag string) (Monitor, bool) {
	for i := range r.monitors {
		if r.monitors[i].Tag == tag {
			return r.monitors[i], true
		}
	}
	return Monitor{}, false
}

// Center returns the centroid of the whole arrangement: the integer mean of
// the per-monitor centroids.
func (r *Registry) Center() geometry.Point {
	var sx, sy int
	for i := range r.monitors {
		c := r.monitors[i].Rect.Center()
		sx += c.X
		sy += c.Y
	}
	n := len(r.monitors)
	return geometry.Point{X: sx / n, Y: sy / n}
}
