package tui

import (
	"strings"
	"testing"

	"github.com/1broseidon/monshift/internal/display"
	"github.com/1broseidon/monshift/internal/geometry"
	"github.com/1broseidon/monshift/internal/mover"
)

func TestToCanvasSideBySide(t *testing.T) {
	bounds := geometry.Rect{X: 0, Y: 0, W: 3840, H: 1080}

	left := toCanvas(geometry.Rect{X: 0, Y: 0, W: 1920, H: 1080}, bounds, 80, 24)
	if left != (geometry.Rect{X: 0, Y: 0, W: 40, H: 24}) {
		t.Fatalf("left cell = %+v, want {0 0 40 24}", left)
	}

	right := toCanvas(geometry.Rect{X: 1920, Y: 0, W: 1920, H: 1080}, bounds, 80, 24)
	if right != (geometry.Rect{X: 40, Y: 0, W: 40, H: 24}) {
		t.Fatalf("right cell = %+v, want {40 0 40 24}", right)
	}
	if left.Right() != right.X {
		t.Fatalf("cells should abut: left right edge %d, right left edge %d", left.Right(), right.X)
	}
}

func TestToCanvasMinimumBox(t *testing.T) {
	bounds := geometry.Rect{X: 0, Y: 0, W: 3840, H: 1080}
	cell := toCanvas(geometry.Rect{X: 0, Y: 0, W: 10, H: 10}, bounds, 80, 24)
	if cell.W < 2 || cell.H < 2 {
		t.Fatalf("tiny monitor cell = %+v, want at least 2x2", cell)
	}
}

func TestUnion(t *testing.T) {
	got := union(
		geometry.Rect{X: 0, Y: 0, W: 1920, H: 1080},
		geometry.Rect{X: 1920, Y: 0, W: 1920, H: 1080},
	)
	if got != (geometry.Rect{X: 0, Y: 0, W: 3840, H: 1080}) {
		t.Fatalf("union = %+v, want {0 0 3840 1080}", got)
	}

	got = union(
		geometry.Rect{X: -100, Y: -50, W: 10, H: 10},
		geometry.Rect{X: 0, Y: 0, W: 20, H: 20},
	)
	if got != (geometry.Rect{X: -100, Y: -50, W: 120, H: 70}) {
		t.Fatalf("union with negative origin = %+v, want {-100 -50 120 70}", got)
	}
}

func TestRenderMonitorMapShowsTags(t *testing.T) {
	snap := &mover.Snapshot{
		Monitors: []display.Monitor{
			{Tag: "eDP-1", Rect: geometry.Rect{X: 0, Y: 0, W: 1920, H: 1080}},
			{Tag: "HDMI-1", Rect: geometry.Rect{X: 1920, Y: 0, W: 1920, H: 1080}},
		},
	}
	out := renderMonitorMap(snap, 80, 24)
	for _, tag := range []string{"eDP-1", "HDMI-1"} {
		if !strings.Contains(out, tag) {
			t.Fatalf("map output missing monitor tag %q", tag)
		}
	}
	if lines := strings.Count(out, "\n") + 1; lines != 24 {
		t.Fatalf("map height = %d lines, want 24", lines)
	}
}
