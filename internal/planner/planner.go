// Package planner computes where a window lands when moved between monitors:
// it locates the window's current monitor, scales or re-centers the window
// into the destination's usable rect, and clamps the result so it never
// escapes the destination.
package planner

import (
	"errors"
	"fmt"

	"github.com/1broseidon/monshift/internal/display"
	"github.com/1broseidon/monshift/internal/geometry"
)

var (
	// ErrNoMonitors indicates an empty monitor set.
	ErrNoMonitors = errors.New("no monitors")

	// ErrWindowOffscreen indicates the window overlaps no monitor at all.
	ErrWindowOffscreen = errors.New("window overlaps no monitor")

	// ErrDegenerateGeometry indicates a zero-area usable rect where the
	// ratio-preserving path would divide by it.
	ErrDegenerateGeometry = errors.New("zero-area usable rect")
)

// MoveRequest describes one window move between two monitors.
type MoveRequest struct {
	// Window is the window's frame-inclusive rectangle.
	Window geometry.Rect
	// SourceTag and TargetTag name the monitors involved. They may be equal
	// (same-monitor re-fit).
	SourceTag string
	TargetTag string
	// PreserveRatio scales the window to keep its monitor-relative
	// proportions; otherwise the size is kept and the offset re-centered.
	PreserveRatio bool
	// States carries the window's EWMH state flags. Fullscreen windows are
	// remapped to cover the destination monitor entirely.
	States WindowState
}

// MoveResult is the computed placement, frame-inclusive.
type MoveResult struct {
	Rect      geometry.Rect
	TargetTag string
}

// Locate returns the tag of the monitor whose usable rect has the largest
// overlap with the window. A window overlapping no monitor is an input
// error: it must be reported, never silently defaulted.
func Locate(reg *display.Registry, window geometry.Rect) (string, error) {
	monitors := reg.Monitors()
	if len(monitors) == 0 {
		return "", ErrNoMonitors
	}

	best := -1
	bestArea := 0
	for i := range monitors {
		if ov := geometry.OverlapArea(window, monitors[i].Usable); ov > bestArea {
			best, bestArea = i, ov
		}
	}
	if best < 0 {
		return "", fmt.Errorf("window %+v: %w", window, ErrWindowOffscreen)
	}
	return monitors[best].Tag, nil
}

// Plan computes the window's new rectangle on the target monitor.
func Plan(reg *display.Registry, req MoveRequest) (MoveResult, error) {
	source, ok := reg.Find(req.SourceTag)
	if !ok {
		return MoveResult{}, fmt.Errorf("source monitor %q: %w", req.SourceTag, ErrNoMonitors)
	}
	target, ok := reg.Find(req.TargetTag)
	if !ok {
		return MoveResult{}, fmt.Errorf("target monitor %q: %w", req.TargetTag, ErrNoMonitors)
	}

	// Fullscreen windows cover the whole destination monitor. Panel
	// trimming was skipped upstream for them, so raw and usable agree;
	// using the raw rect makes the intent explicit.
	if req.States.Has(StateFullscreen) {
		return MoveResult{Rect: target.Rect, TargetTag: target.Tag}, nil
	}

	var w, h, offX, offY int
	if req.PreserveRatio {
		if source.Usable.W == 0 || source.Usable.H == 0 {
			return MoveResult{}, fmt.Errorf("source %q: %w", source.Tag, ErrDegenerateGeometry)
		}
		if target.Usable.W == 0 || target.Usable.H == 0 {
			return MoveResult{}, fmt.Errorf("target %q: %w", target.Tag, ErrDegenerateGeometry)
		}
		w = scaleRound(req.Window.W, target.Usable.W, source.Usable.W)
		h = scaleRound(req.Window.H, target.Usable.H, source.Usable.H)
		offX = scaleRound(req.Window.X-source.Usable.X, target.Usable.W, source.Usable.W)
		offY = scaleRound(req.Window.Y-source.Usable.Y, target.Usable.H, source.Usable.H)
	} else {
		w = req.Window.W
		h = req.Window.H
		offX = (req.Window.X - source.Usable.X) + (target.Usable.W-source.Usable.W)/2
		offY = (req.Window.Y - source.Usable.Y) + (target.Usable.H-source.Usable.H)/2
	}

	// A negative offset means the window hung off its source monitor's
	// top-left; never carry that past the destination's own origin.
	rect := geometry.Rect{
		X: target.Usable.X + max(0, offX),
		Y: target.Usable.Y + max(0, offY),
		W: w,
		H: h,
	}
	rect = clamp(rect, target.Usable)

	return MoveResult{Rect: rect, TargetTag: target.Tag}, nil
}

// clamp keeps r inside bounds: overshoot past the right/bottom edge first
// shifts the rect back (never past the bounds origin), then caps the size.
func clamp(r, bounds geometry.Rect) geometry.Rect {
	if excess := r.Right() - bounds.Right(); excess > 0 {
		r.X -= min(r.X-bounds.X, excess)
	}
	if r.Right() > bounds.Right() {
		r.W = bounds.Right() - r.X
	}

	if excess := r.Bottom() - bounds.Bottom(); excess > 0 {
		r.Y -= min(r.Y-bounds.Y, excess)
	}
	if r.Bottom() > bounds.Bottom() {
		r.H = bounds.Bottom() - r.Y
	}
	return r
}

// scaleRound computes v * num / den with round-half-up, valid for negative
// v (offsets of windows hanging off a monitor edge).
func scaleRound(v, num, den int) int {
	return floorDiv(2*v*num+den, 2*den)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
