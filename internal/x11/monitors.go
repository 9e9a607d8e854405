package x11

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/xgb/randr"

	"github.com/1broseidon/monshift/internal/display"
	"github.com/1broseidon/monshift/internal/geometry"
)

// Monitors enumerates active monitors via XRandR CRTCs. Coordinates are
// divided by scale for desktops that report physical pixels while windows
// are placed in logical ones (scale 1 is the identity).
func (c *Connection) Monitors(scale int) ([]display.Monitor, error) {
	if err := randr.Init(c.XUtil.Conn()); err != nil {
		return nil, fmt.Errorf("randr init failed: %w", err)
	}

	resources, err := randr.GetScreenResources(c.XUtil.Conn(), c.Root).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get screen resources: %w", err)
	}

	var monitors []display.Monitor
	for i, crtc := range resources.Crtcs {
		crtcInfo, err := randr.GetCrtcInfo(c.XUtil.Conn(), crtc, resources.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}
		// Disabled CRTCs report zero size and no outputs.
		if crtcInfo.Width == 0 || crtcInfo.Height == 0 || len(crtcInfo.Outputs) == 0 {
			continue
		}

		tag := fmt.Sprintf("monitor%d", i)
		if outputInfo, err := randr.GetOutputInfo(c.XUtil.Conn(), crtcInfo.Outputs[0], resources.ConfigTimestamp).Reply(); err == nil {
			if name := strings.TrimSpace(string(outputInfo.Name)); name != "" {
				tag = name
			}
		}

		rect := scaleRect(geometry.Rect{
			X: int(crtcInfo.X),
			Y: int(crtcInfo.Y),
			W: int(crtcInfo.Width),
			H: int(crtcInfo.Height),
		}, scale)
		monitors = append(monitors, display.Monitor{Tag: tag, Rect: rect})
	}

	return monitors, nil
}

func scaleRect(r geometry.Rect, scale int) geometry.Rect {
	if scale <= 1 {
		return r
	}
	return geometry.Rect{X: r.X / scale, Y: r.Y / scale, W: r.W / scale, H: r.H / scale}
}
