package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/xwindow"

	"github.com/1broseidon/monshift/internal/geometry"
	"github.com/1broseidon/monshift/internal/planner"
)

// EWMH state atoms that block a window manager from honoring a move request.
const (
	atomMaximizedHorz = "_NET_WM_STATE_MAXIMIZED_HORZ"
	atomMaximizedVert = "_NET_WM_STATE_MAXIMIZED_VERT"
	atomFullscreen    = "_NET_WM_STATE_FULLSCREEN"
)

// ActiveWindow returns the currently focused window.
func (c *Connection) ActiveWindow() (xproto.Window, error) {
	win, err := ewmh.ActiveWindowGet(c.XUtil)
	if err != nil {
		return 0, fmt.Errorf("failed to get active window: %w", err)
	}
	if win == 0 {
		return 0, fmt.Errorf("no active window")
	}
	return win, nil
}

// WindowGeometry returns the window's frame-inclusive rect in root
// coordinates. Decorations count: the planner positions frames, not clients.
func (c *Connection) WindowGeometry(win xproto.Window, scale int) (geometry.Rect, error) {
	geom, err := xwindow.New(c.XUtil, win).DecorGeometry()
	if err != nil {
		return geometry.Rect{}, fmt.Errorf("failed to get window geometry: %w", err)
	}
	return scaleRect(geometry.Rect{
		X: geom.X(),
		Y: geom.Y(),
		W: geom.Width(),
		H: geom.Height(),
	}, scale), nil
}

// WindowState reads the window's EWMH state and maps the move-relevant
// flags.
func (c *Connection) WindowState(win xproto.Window) (planner.WindowState, error) {
	atoms, err := ewmh.WmStateGet(c.XUtil, win)
	if err != nil {
		return nil, fmt.Errorf("failed to get window state: %w", err)
	}

	var state planner.WindowState
	for _, atom := range atoms {
		switch atom {
		case atomMaximizedHorz:
			state = append(state, planner.StateMaximizedHorz)
		case atomMaximizedVert:
			state = append(state, planner.StateMaximizedVert)
		case atomFullscreen:
			state = append(state, planner.StateFullscreen)
		}
	}
	return state, nil
}

// ClearBlockingStates strips the maximized and fullscreen state atoms from
// the window so the window manager will honor the upcoming move, and returns
// the stripped atoms for RestoreStates.
func (c *Connection) ClearBlockingStates(win xproto.Window) ([]string, error) {
	atoms, err := ewmh.WmStateGet(c.XUtil, win)
	if err != nil {
		return nil, fmt.Errorf("failed to get window state: %w", err)
	}

	var stripped []string
	for _, atom := range atoms {
		switch atom {
		case atomMaximizedHorz, atomMaximizedVert, atomFullscreen:
			stripped = append(stripped, atom)
		}
	}

	for _, atom := range stripped {
		if err := ewmh.WmStateReq(c.XUtil, win, ewmh.StateRemove, atom); err != nil {
			return nil, fmt.Errorf("failed to remove %s: %w", atom, err)
		}
	}
	return stripped, nil
}

// RestoreStates re-adds state atoms stripped by ClearBlockingStates. The
// window manager reapplies them against the window's new monitor.
func (c *Connection) RestoreStates(win xproto.Window, atoms []string) error {
	for _, atom := range atoms {
		if err := ewmh.WmStateReq(c.XUtil, win, ewmh.StateAdd, atom); err != nil {
			return fmt.Errorf("failed to restore %s: %w", atom, err)
		}
	}
	return nil
}

// MoveResize places the window's frame at the given rect. The rect is
// frame-inclusive, so the client size passed to the window manager is
// reduced by the decoration extents.
func (c *Connection) MoveResize(win xproto.Window, rect geometry.Rect, scale int) error {
	if scale > 1 {
		rect = geometry.Rect{X: rect.X * scale, Y: rect.Y * scale, W: rect.W * scale, H: rect.H * scale}
	}

	w, h := c.clientSize(win, rect.W, rect.H)
	if err := ewmh.MoveresizeWindow(c.XUtil, win, rect.X, rect.Y, w, h); err != nil {
		// Fallback for window managers without EWMH moveresize support.
		xwindow.New(c.XUtil, win).MoveResize(rect.X, rect.Y, w, h)
	}
	return nil
}

// clientSize shrinks a frame-inclusive size by the window's decoration
// extents. The window manager interprets size requests as client sizes;
// sending the frame size would grow the window by the decorations.
func (c *Connection) clientSize(win xproto.Window, w, h int) (int, int) {
	extents, err := ewmh.FrameExtentsGet(c.XUtil, win)
	if err != nil {
		return w, h
	}
	w -= int(extents.Left) + int(extents.Right)
	h -= int(extents.Top) + int(extents.Bottom)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// Raise activates and raises a window via a _NET_ACTIVE_WINDOW client
// message. Built manually because the xgbutil ewmh helper panics on this
// library version (uint vs int type assertion).
func (c *Connection) Raise(win xproto.Window) error {
	atomReply, err := xproto.InternAtom(c.XUtil.Conn(), false,
		uint16(len("_NET_ACTIVE_WINDOW")), "_NET_ACTIVE_WINDOW").Reply()
	if err != nil {
		return fmt.Errorf("failed to intern _NET_ACTIVE_WINDOW: %w", err)
	}

	const sourceIndication = 2 // pager/direct action
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: win,
		Type:   atomReply.Atom,
		Data:   xproto.ClientMessageDataUnionData32New([]uint32{sourceIndication, 0, 0, 0, 0}),
	}

	return xproto.SendEventChecked(
		c.XUtil.Conn(),
		false,
		c.Root,
		xproto.EventMaskSubstructureRedirect|xproto.EventMaskSubstructureNotify,
		string(ev.Bytes()),
	).Check()
}

// WarpPointer moves the mouse pointer to the given root coordinates.
func (c *Connection) WarpPointer(p geometry.Point, scale int) error {
	if scale > 1 {
		p = geometry.Point{X: p.X * scale, Y: p.Y * scale}
	}
	return xproto.WarpPointerChecked(
		c.XUtil.Conn(),
		xproto.WindowNone,
		c.Root,
		0, 0, 0, 0,
		int16(p.X), int16(p.Y),
	).Check()
}
