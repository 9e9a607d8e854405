package topology

import (
	"testing"

	"github.com/1broseidon/monshift/internal/display"
	"github.com/1broseidon/monshift/internal/geometry"
)

func registry(t *testing.T, monitors ...display.Monitor) *display.Registry {
	t.Helper()
	reg, err := display.New(monitors, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return reg
}

func grid2x2(t *testing.T) *display.Registry {
	t.Helper()
	return registry(t,
		display.Monitor{Tag: "TL", Rect: geometry.Rect{X: 0, Y: 0, W: 1920, H: 1080}},
		display.Monitor{Tag: "TR", Rect: geometry.Rect{X: 1920, Y: 0, W: 1920, H: 1080}},
		display.Monitor{Tag: "BL", Rect: geometry.Rect{X: 0, Y: 1080, W: 1920, H: 1080}},
		display.Monitor{Tag: "BR", Rect: geometry.Rect{X: 1920, Y: 1080, W: 1920, H: 1080}},
	)
}

func TestBuild_GridAdjacency(t *testing.T) {
	topo := Build(grid2x2(t), AxisNone)

	cases := []struct {
		from string
		dir  Direction
		want string
	}{
		{"TL", DirRight, "TR"},
		{"TL", DirDown, "BL"},
		{"TR", DirLeft, "TL"},
		{"TR", DirDown, "BR"},
		{"BR", DirUp, "TR"},
		{"BR", DirLeft, "BL"},
		{"BL", DirUp, "TL"},
		{"BL", DirRight, "BR"},
	}
	for _, c := range cases {
		if got := topo.Resolve(c.from, c.dir); got != c.want {
			t.Errorf("%s %s: expected %s, got %s", c.from, c.dir, c.want, got)
		}
	}
}

func TestBuild_EdgesResolveToSelf(t *testing.T) {
	topo := Build(grid2x2(t), AxisNone)

	for _, c := range []struct {
		from string
		dir  Direction
	}{
		{"TL", DirLeft},
		{"TL", DirUp},
		{"BR", DirRight},
		{"BR", DirDown},
	} {
		if got := topo.Resolve(c.from, c.dir); got != c.from {
			t.Errorf("%s %s: expected self, got %s", c.from, c.dir, got)
		}
	}
	if got := topo.Resolve("TL", DirHere); got != "TL" {
		t.Errorf("here: expected TL, got %s", got)
	}
}

func TestBuild_GridClockwiseOrder(t *testing.T) {
	topo := Build(grid2x2(t), AxisNone)

	if topo.Shape() != ArrangementIrregular {
		t.Fatalf("expected irregular arrangement, got %v", topo.Shape())
	}
	want := []string{"TL", "TR", "BR", "BL"}
	got := topo.Order()
	if len(got) != len(want) {
		t.Fatalf("expected %d monitors in order, got %d", len(want), len(got))
	}
	// The cycle may start anywhere; rotate to TL before comparing.
	start := -1
	for i, tag := range got {
		if tag == "TL" {
			start = i
			break
		}
	}
	if start < 0 {
		t.Fatalf("TL missing from order %v", got)
	}
	for i, tag := range want {
		if got[(start+i)%len(got)] != tag {
			t.Fatalf("expected clockwise order %v, got %v", want, got)
		}
	}
}

func TestBuild_NextPrevAreInverse(t *testing.T) {
	topo := Build(grid2x2(t), AxisNone)

	for _, tag := range topo.Order() {
		next := topo.Resolve(tag, DirNext)
		if back := topo.Resolve(next, DirPrev); back != tag {
			t.Errorf("prev(next(%s)) = %s", tag, back)
		}
		prev := topo.Resolve(tag, DirPrev)
		if fwd := topo.Resolve(prev, DirNext); fwd != tag {
			t.Errorf("next(prev(%s)) = %s", tag, fwd)
		}
	}

	// Following next four times walks the full cycle back to the start.
	tag := "TL"
	for i := 0; i < 4; i++ {
		tag = topo.Resolve(tag, DirNext)
	}
	if tag != "TL" {
		t.Fatalf("next cycle did not close: ended at %s", tag)
	}
}

func TestBuild_RowArrangement(t *testing.T) {
	reg := registry(t,
		display.Monitor{Tag: "L", Rect: geometry.Rect{X: 0, Y: 0, W: 1920, H: 1080}},
		display.Monitor{Tag: "M", Rect: geometry.Rect{X: 1920, Y: 0, W: 2560, H: 1440}},
		display.Monitor{Tag: "R", Rect: geometry.Rect{X: 4480, Y: 0, W: 1920, H: 1080}},
	)
	topo := Build(reg, AxisNone)

	if topo.Shape() != ArrangementHorizontal {
		t.Fatalf("expected horizontal arrangement, got %v", topo.Shape())
	}
	if got := topo.Resolve("L", DirRight); got != "M" {
		t.Fatalf("L right: expected M, got %s", got)
	}
	if got := topo.Resolve("M", DirRight); got != "R" {
		t.Fatalf("M right: expected R, got %s", got)
	}
	if got := topo.Resolve("M", DirUp); got != "M" {
		t.Fatalf("M up: expected self, got %s", got)
	}

	want := []string{"L", "M", "R"}
	for i, tag := range topo.Order() {
		if tag != want[i] {
			t.Fatalf("expected row order %v, got %v", want, topo.Order())
		}
	}
}

func TestBuild_ColumnArrangement(t *testing.T) {
	reg := registry(t,
		display.Monitor{Tag: "T", Rect: geometry.Rect{X: 0, Y: 0, W: 1920, H: 1080}},
		display.Monitor{Tag: "B", Rect: geometry.Rect{X: 0, Y: 1080, W: 1920, H: 1080}},
	)
	topo := Build(reg, AxisNone)

	if topo.Shape() != ArrangementVertical {
		t.Fatalf("expected vertical arrangement, got %v", topo.Shape())
	}
	if got := topo.Resolve("T", DirDown); got != "B" {
		t.Fatalf("T down: expected B, got %s", got)
	}
	if got := topo.Resolve("B", DirUp); got != "T" {
		t.Fatalf("B up: expected T, got %s", got)
	}
}

func TestBuild_SingleMonitor(t *testing.T) {
	reg := registry(t,
		display.Monitor{Tag: "only", Rect: geometry.Rect{X: 0, Y: 0, W: 1920, H: 1080}},
	)
	topo := Build(reg, AxisNone)

	for _, dir := range Directions {
		if got := topo.Resolve("only", dir); got != "only" {
			t.Errorf("%s: expected self, got %s", dir, got)
		}
	}
}

func TestBuild_StaggeredRowsUseMaxOverlap(t *testing.T) {
	// The wide bottom monitor overlaps both top monitors; the larger
	// horizontal projection overlap wins.
	reg := registry(t,
		display.Monitor{Tag: "TL", Rect: geometry.Rect{X: 0, Y: 0, W: 1000, H: 1080}},
		display.Monitor{Tag: "TR", Rect: geometry.Rect{X: 1000, Y: 0, W: 2000, H: 1080}},
		display.Monitor{Tag: "B", Rect: geometry.Rect{X: 0, Y: 1080, W: 3000, H: 1080}},
	)
	topo := Build(reg, AxisNone)

	// B projected upward overlaps TL by 1000 and TR by 2000.
	if got := topo.Resolve("B", DirUp); got != "TR" {
		t.Fatalf("B up: expected TR, got %s", got)
	}
	// Symmetric partner assignment points both top monitors back down at B.
	if got := topo.Resolve("TL", DirDown); got != "B" {
		t.Fatalf("TL down: expected B, got %s", got)
	}
	if got := topo.Resolve("TR", DirDown); got != "B" {
		t.Fatalf("TR down: expected B, got %s", got)
	}
}

func TestBuild_AxisOverrideOrdersByCentroid(t *testing.T) {
	topo := Build(grid2x2(t), AxisY)

	// Sorting on y puts both top monitors before both bottom monitors,
	// ties broken by x.
	want := []string{"TL", "TR", "BL", "BR"}
	got := topo.Order()
	for i, tag := range want {
		if got[i] != tag {
			t.Fatalf("expected y-axis order %v, got %v", want, got)
		}
	}
}

func TestParseDirection(t *testing.T) {
	if dir, err := ParseDirection("right"); err != nil || dir != DirRight {
		t.Fatalf("right: got %v, %v", dir, err)
	}
	if _, err := ParseDirection("sideways"); err == nil {
		t.Fatal("expected error for unknown direction")
	}
}
