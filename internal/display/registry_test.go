package display

import (
	"testing"

	"github.com/1broseidon/monshift/internal/geometry"
)

func grid2x2() []Monitor {
	return []Monitor{
		{Tag: "DP-1", Rect: geometry.Rect{X: 0, Y: 0, W: 1920, H: 1080}},
		{Tag: "DP-2", Rect: geometry.Rect{X: 1920, Y: 0, W: 1920, H: 1080}},
		{Tag: "DP-3", Rect: geometry.Rect{X: 0, Y: 1080, W: 1920, H: 1080}},
		{Tag: "DP-4", Rect: geometry.Rect{X: 1920, Y: 1080, W: 1920, H: 1080}},
	}
}

func TestNew_EmptyMonitorSetFails(t *testing.T) {
	if _, err := New(nil, nil); err == nil {
		t.Fatalf("expected error for empty monitor set")
	}
}

func TestNew_SynthesizesMissingTags(t *testing.T) {
	reg, err := New([]Monitor{
		{Rect: geometry.Rect{X: 0, Y: 0, W: 1920, H: 1080}},
		{Rect: geometry.Rect{X: 1920, Y: 0, W: 1920, H: 1080}},
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mons := reg.Monitors()
	if mons[0].Tag != "monitor0" || mons[1].Tag != "monitor1" {
		t.Fatalf("expected synthetic tags, got %q and %q", mons[0].Tag, mons[1].Tag)
	}
}

func TestNew_UsableStartsEqualToRaw(t *testing.T) {
	reg, err := New(grid2x2(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, m := range reg.Monitors() {
		if m.Usable != m.Rect {
			t.Fatalf("monitor %s: usable %+v != raw %+v", m.Tag, m.Usable, m.Rect)
		}
	}
}

func TestNew_PanelOwnership(t *testing.T) {
	panels := []geometry.Rect{
		{X: 0, Y: 0, W: 1920, H: 30},      // contained in DP-1
		{X: 1900, Y: 0, W: 100, H: 30},    // straddles DP-1/DP-2: dropped
		{X: 1920, Y: 1050, W: 1920, H: 30}, // contained in DP-2's bottom edge
	}
	reg, err := New([]Monitor{
		{Tag: "DP-1", Rect: geometry.Rect{X: 0, Y: 0, W: 1920, H: 1080}},
		{Tag: "DP-2", Rect: geometry.Rect{X: 1920, Y: 0, W: 1920, H: 1080}},
	}, panels)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	owned := reg.Panels()
	if len(owned) != 2 {
		t.Fatalf("expected 2 owned panels, got %d", len(owned))
	}
	if owned[0].Owner != "DP-1" {
		t.Fatalf("expected first panel owned by DP-1, got %s", owned[0].Owner)
	}
	if owned[1].Owner != "DP-2" {
		t.Fatalf("expected second panel owned by DP-2, got %s", owned[1].Owner)
	}
}

func TestCenter_GridArrangement(t *testing.T) {
	reg, err := New(grid2x2(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Centroids: (960,540) (2880,540) (960,1620) (2880,1620) -> mean (1920,1080).
	c := reg.Center()
	if c.X != 1920 || c.Y != 1080 {
		t.Fatalf("expected arrangement center (1920,1080), got (%d,%d)", c.X, c.Y)
	}
}

func TestFind(t *testing.T) {
	reg, err := New(grid2x2(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := reg.Find("DP-3"); !ok {
		t.Fatalf("expected to find DP-3")
	}
	if _, ok := reg.Find("HDMI-9"); ok {
		t.Fatalf("did not expect to find HDMI-9")
	}
}
