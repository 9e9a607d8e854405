package config

// BuiltinProfiles returns the per-desktop quirk table shipped with monshift.
// Panel classes are the WM_CLASS instance names each desktop's bars report;
// they supplement _NET_WM_WINDOW_TYPE_DOCK detection for desktops whose
// panels predate or ignore the EWMH dock hint.
func BuiltinProfiles() map[string]DesktopProfile {
	return map[string]DesktopProfile{
		"gnome": {
			PanelClasses: []string{"gnome-panel", "gnome-shell"},
		},
		"kde": {
			PanelClasses: []string{"plasmashell", "plasma-desktop", "lattedock"},
		},
		"xfce": {
			PanelClasses: []string{"xfce4-panel"},
		},
		"mate": {
			PanelClasses: []string{"mate-panel"},
		},
		"lxde": {
			PanelClasses: []string{"lxpanel"},
		},
		"cinnamon": {
			PanelClasses: []string{"cinnamon"},
		},
	}
}
