package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigValidates(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
}

func TestValidateRejectsBadLogLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogLevel = "verbose"

	var verr *ValidationError
	err := cfg.Validate()
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Path != "log_level" {
		t.Fatalf("expected path log_level, got %s", verr.Path)
	}
}

func TestValidateRejectsBadAxis(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PostSortAxis = "z"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for post_sort_axis z")
	}
}

func TestValidateRejectsUnknownHotkeyDirection(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Hotkeys["sideways"] = "Mod4-s"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown hotkey direction")
	}
}

func TestValidateRejectsUnknownDesktopOverride(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Desktop = "haiku"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown desktop override")
	}
}

func TestLoadFromPath_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.GetAdjustForPanels() != true {
		t.Fatal("adjust_for_panels must default to true")
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("expected default log level info, got %s", cfg.LogLevel)
	}
}

func TestLoadFromPath_OverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
preserve_ratio: true
adjust_for_panels: false
post_sort_axis: x
hotkeys:
  here: Mod4-Shift-Home
desktop_profiles:
  sway:
    panel_classes: [waybar]
    coordinate_scale: 2
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.PreserveRatio {
		t.Fatal("preserve_ratio not applied")
	}
	if cfg.GetAdjustForPanels() {
		t.Fatal("explicit adjust_for_panels: false must survive the merge")
	}
	if cfg.PostSortAxis != "x" {
		t.Fatalf("expected axis x, got %q", cfg.PostSortAxis)
	}
	// User keys extend the default maps.
	if cfg.Hotkeys["here"] != "Mod4-Shift-Home" {
		t.Fatalf("user hotkey missing: %v", cfg.Hotkeys)
	}
	if cfg.Hotkeys["left"] != "Mod4-Shift-Left" {
		t.Fatalf("default hotkey lost: %v", cfg.Hotkeys)
	}
	profile, ok := cfg.DesktopProfiles["sway"]
	if !ok {
		t.Fatal("user profile missing")
	}
	if profile.Scale() != 2 {
		t.Fatalf("expected scale 2, got %d", profile.Scale())
	}
	if _, ok := cfg.DesktopProfiles["xfce"]; !ok {
		t.Fatal("builtin profile lost in merge")
	}
}

func TestLoadFromPath_InvalidContentFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("log_level: shouting\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadFromPath(path); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestDetectDesktop(t *testing.T) {
	profiles := BuiltinProfiles()

	t.Setenv("XDG_CURRENT_DESKTOP", "ubuntu:GNOME")
	t.Setenv("DESKTOP_SESSION", "")
	if got := DetectDesktop(profiles); got != "gnome" {
		t.Fatalf("expected gnome, got %q", got)
	}

	t.Setenv("XDG_CURRENT_DESKTOP", "")
	t.Setenv("DESKTOP_SESSION", "xfce")
	if got := DetectDesktop(profiles); got != "xfce" {
		t.Fatalf("expected xfce, got %q", got)
	}

	t.Setenv("DESKTOP_SESSION", "")
	if got := DetectDesktop(profiles); got != "" {
		t.Fatalf("expected no detection, got %q", got)
	}
}

func TestActiveProfile_OverrideWins(t *testing.T) {
	t.Setenv("XDG_CURRENT_DESKTOP", "KDE")
	cfg := DefaultConfig()
	cfg.Desktop = "xfce"

	name, profile := cfg.ActiveProfile()
	if name != "xfce" {
		t.Fatalf("expected xfce, got %q", name)
	}
	if len(profile.PanelClasses) == 0 {
		t.Fatal("expected xfce panel classes")
	}
	if profile.Scale() != 1 {
		t.Fatalf("unset coordinate_scale must read as 1, got %d", profile.Scale())
	}
}
