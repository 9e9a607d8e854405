package config

import (
	"os"
	"strings"
)

// DetectDesktop identifies the running desktop environment from
// XDG_CURRENT_DESKTOP (a colon-separated list, e.g. "ubuntu:GNOME") with
// DESKTOP_SESSION as fallback. Returns "" when nothing matches a known
// profile.
func DetectDesktop(profiles map[string]DesktopProfile) string {
	for _, env := range []string{"XDG_CURRENT_DESKTOP", "DESKTOP_SESSION"} {
		value := strings.ToLower(os.Getenv(env))
		if value == "" {
			continue
		}
		for _, part := range strings.Split(value, ":") {
			for name := range profiles {
				if strings.Contains(part, name) {
					return name
				}
			}
		}
	}
	return ""
}

// ActiveProfile resolves the effective desktop profile: the configured
// override wins, otherwise environment detection. The zero profile (no extra
// panel classes, scale 1) applies when no desktop is recognized.
func (c *Config) ActiveProfile() (string, DesktopProfile) {
	name := c.Desktop
	if name == "" {
		name = DetectDesktop(c.DesktopProfiles)
	}
	if profile, ok := c.DesktopProfiles[name]; ok {
		return name, profile
	}
	return "", DesktopProfile{}
}

// Scale returns the profile's coordinate scale, never below 1.
func (p DesktopProfile) Scale() int {
	if p.CoordinateScale < 1 {
		return 1
	}
	return p.CoordinateScale
}
