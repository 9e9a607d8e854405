package config

import (
	"fmt"
	"sort"

	"github.com/1broseidon/monshift/internal/topology"
)

// DesktopProfile carries per-desktop quirks: which window classes are panels
// even when the window manager does not flag them as docks, and the integer
// scale applied to coordinates reported by the desktop (HiDPI desktops that
// report logical pixels need scale 2).
type DesktopProfile struct {
	PanelClasses    []string `yaml:"panel_classes,omitempty"`
	CoordinateScale int      `yaml:"coordinate_scale,omitempty"`
}

// Config is the effective monshift configuration.
type Config struct {
	// PreserveRatio scales windows to keep monitor-relative proportions on
	// move; false keeps the pixel size and re-centers.
	PreserveRatio bool `yaml:"preserve_ratio"`

	// AdjustForPanels trims panel space from monitor usable rects.
	// Default: true. Pointer so an explicit `false` survives the merge.
	AdjustForPanels *bool `yaml:"adjust_for_panels"`

	// PostSortAxis overrides the rotational ordering of monitors for
	// next/prev: "" (geometric), "x", or "y".
	PostSortAxis string `yaml:"post_sort_axis,omitempty"`

	// WarpPointer moves the mouse pointer to the window after a move.
	WarpPointer bool `yaml:"warp_pointer"`

	// RaiseWindow re-activates the window after a move. Default: true.
	RaiseWindow *bool `yaml:"raise_window"`

	// LogLevel controls daemon verbosity: debug, info, warning, error.
	LogLevel string `yaml:"log_level"`

	// Desktop forces a desktop profile instead of autodetecting from
	// XDG_CURRENT_DESKTOP. Empty means autodetect.
	Desktop string `yaml:"desktop,omitempty"`

	// Hotkeys maps move directions to key sequences for daemon mode.
	Hotkeys map[string]string `yaml:"hotkeys"`

	// DesktopProfiles extends or overrides the builtin per-desktop quirks.
	DesktopProfiles map[string]DesktopProfile `yaml:"desktop_profiles,omitempty"`
}

// ValidationError reports the YAML path that failed validation.
type ValidationError struct {
	Path string
	Err  error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error { return e.Err }

// DefaultConfig returns the builtin configuration: offset-preserving moves,
// panel trimming on, Super+Shift hotkeys for the daemon.
func DefaultConfig() *Config {
	return &Config{
		PreserveRatio: false,
		PostSortAxis:  "",
		WarpPointer:   false,
		LogLevel:      "info",
		Hotkeys: map[string]string{
			"left":  "Mod4-Shift-Left",
			"right": "Mod4-Shift-Right",
			"up":    "Mod4-Shift-Up",
			"down":  "Mod4-Shift-Down",
			"next":  "Mod4-Shift-Next",
			"prev":  "Mod4-Shift-Prior",
		},
		DesktopProfiles: BuiltinProfiles(),
	}
}

// GetAdjustForPanels returns the effective value, defaulting to true.
func (c *Config) GetAdjustForPanels() bool {
	if c == nil || c.AdjustForPanels == nil {
		return true
	}
	return *c.AdjustForPanels
}

// GetRaiseWindow returns the effective value, defaulting to true.
func (c *Config) GetRaiseWindow() bool {
	if c == nil || c.RaiseWindow == nil {
		return true
	}
	return *c.RaiseWindow
}

// SortAxis maps the configured post_sort_axis onto the topology axis.
func (c *Config) SortAxis() topology.SortAxis {
	switch c.PostSortAxis {
	case "x":
		return topology.AxisX
	case "y":
		return topology.AxisY
	}
	return topology.AxisNone
}

// ProfileNames lists the configured desktop profile names, sorted.
func (c *Config) ProfileNames() []string {
	names := make([]string, 0, len(c.DesktopProfiles))
	for name := range c.DesktopProfiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks the configuration for internal consistency.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warning", "error":
	default:
		return &ValidationError{Path: "log_level", Err: fmt.Errorf("log_level must be one of: debug, info, warning, error")}
	}

	switch c.PostSortAxis {
	case "", "x", "y":
	default:
		return &ValidationError{Path: "post_sort_axis", Err: fmt.Errorf("post_sort_axis must be one of: x, y (or empty for geometric ordering)")}
	}

	for dir, seq := range c.Hotkeys {
		if _, err := topology.ParseDirection(dir); err != nil {
			return &ValidationError{Path: "hotkeys." + dir, Err: err}
		}
		if seq == "" {
			return &ValidationError{Path: "hotkeys." + dir, Err: fmt.Errorf("key sequence must not be empty")}
		}
	}

	if c.Desktop != "" {
		if _, ok := c.DesktopProfiles[c.Desktop]; !ok {
			return &ValidationError{Path: "desktop", Err: fmt.Errorf("desktop %q not found in desktop_profiles", c.Desktop)}
		}
	}

	for name, profile := range c.DesktopProfiles {
		if name == "" {
			return &ValidationError{Path: "desktop_profiles", Err: fmt.Errorf("desktop_profiles contains an empty profile name")}
		}
		if profile.CoordinateScale < 0 {
			return &ValidationError{Path: "desktop_profiles." + name + ".coordinate_scale", Err: fmt.Errorf("coordinate_scale must be >= 0 (0 means 1)")}
		}
		for _, class := range profile.PanelClasses {
			if class == "" {
				return &ValidationError{Path: "desktop_profiles." + name + ".panel_classes", Err: fmt.Errorf("panel_classes contains an empty class name")}
			}
		}
	}

	return nil
}
