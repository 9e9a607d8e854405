package x11

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"

	"github.com/1broseidon/monshift/internal/geometry"
)

// allDesktops is the _NET_WM_DESKTOP value of sticky windows.
const allDesktops = 0xFFFFFFFF

// Panels collects the rectangles of desktop chrome on the current virtual
// desktop: windows flagged _NET_WM_WINDOW_TYPE_DOCK, plus windows whose
// WM_CLASS matches one of the profile's panel classes (some desktop panels
// never set the dock hint). Sticky windows count on every desktop.
func (c *Connection) Panels(panelClasses []string, scale int) ([]geometry.Rect, error) {
	clients, err := ewmh.ClientListGet(c.XUtil)
	if err != nil {
		return nil, fmt.Errorf("failed to get client list: %w", err)
	}

	currentDesktop := -1
	if d, err := ewmh.CurrentDesktopGet(c.XUtil); err == nil {
		currentDesktop = int(d)
	}

	var panels []geometry.Rect
	for _, win := range clients {
		if !c.isPanel(win, panelClasses) {
			continue
		}
		if !c.onDesktop(win, currentDesktop) {
			continue
		}
		rect, ok := c.rootGeometry(win)
		if !ok {
			continue
		}
		panels = append(panels, scaleRect(rect, scale))
	}

	return panels, nil
}

func (c *Connection) isPanel(win xproto.Window, panelClasses []string) bool {
	if types, err := ewmh.WmWindowTypeGet(c.XUtil, win); err == nil {
		for _, t := range types {
			if t == "_NET_WM_WINDOW_TYPE_DOCK" {
				return true
			}
		}
	}

	if len(panelClasses) == 0 {
		return false
	}
	wmClass, err := icccm.WmClassGet(c.XUtil, win)
	if err != nil {
		return false
	}
	for _, class := range panelClasses {
		if strings.EqualFold(wmClass.Instance, class) || strings.EqualFold(wmClass.Class, class) {
			return true
		}
	}
	return false
}

// onDesktop reports whether the window is visible on the given desktop.
// Windows without a desktop property and sticky windows both count.
func (c *Connection) onDesktop(win xproto.Window, desktop int) bool {
	if desktop < 0 {
		return true
	}
	d, err := ewmh.WmDesktopGet(c.XUtil, win)
	if err != nil {
		return true
	}
	return d == allDesktops || int(d) == desktop
}

// rootGeometry returns a window's rect in root coordinates.
func (c *Connection) rootGeometry(win xproto.Window) (geometry.Rect, bool) {
	geom, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(win)).Reply()
	if err != nil {
		return geometry.Rect{}, false
	}

	translate, err := xproto.TranslateCoordinates(
		c.XUtil.Conn(),
		win,
		c.Root,
		0, 0,
	).Reply()
	if err != nil {
		return geometry.Rect{}, false
	}

	return geometry.Rect{
		X: int(translate.DstX),
		Y: int(translate.DstY),
		W: int(geom.Width),
		H: int(geom.Height),
	}, true
}
