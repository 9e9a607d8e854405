// Package topology infers the spatial structure of a monitor arrangement:
// which monitor sits left/right/above/below which, whether the arrangement
// is a single row, a single column or irregular, and a deterministic
// rotational next/prev ordering over all monitors.
package topology

import (
	"sort"

	"github.com/1broseidon/monshift/internal/display"
	"github.com/1broseidon/monshift/internal/geometry"
)

// SortAxis optionally forces the rotational ordering onto one axis.
type SortAxis string

const (
	AxisNone SortAxis = ""
	AxisX    SortAxis = "x"
	AxisY    SortAxis = "y"
)

// Arrangement classifies the overall monitor layout.
type Arrangement string

const (
	ArrangementHorizontal Arrangement = "horizontal" // single row
	ArrangementVertical   Arrangement = "vertical"   // single column
	ArrangementIrregular  Arrangement = "irregular"  // anything 2-D
)

// Adjacency holds the resolved neighbor tags for one monitor. Cardinal
// fields are empty when the arrangement has no neighbor that way; Next and
// Prev are always set (they cycle) and Here is the monitor itself.
type Adjacency struct {
	Left  string
	Right string
	Up    string
	Down  string
	Next  string
	Prev  string
	Here  string
}

// Topology is the computed adjacency graph and rotational order.
type Topology struct {
	adj   map[string]*Adjacency
	order []string
	shape Arrangement
}

// Build computes directional adjacency and the rotational ordering over the
// registry's monitors. Adjacency works on raw monitor rects; panel trimming
// only affects fitting, not the arrangement's shape.
func Build(reg *display.Registry, axis SortAxis) *Topology {
	monitors := reg.Monitors()

	t := &Topology{adj: make(map[string]*Adjacency, len(monitors))}
	for i := range monitors {
		t.adj[monitors[i].Tag] = &Adjacency{Here: monitors[i].Tag}
	}

	anyHorizontal := false
	anyVertical := false

	// For each monitor, project its rect one full width right and one full
	// height down; the candidate with the largest projection overlap is the
	// neighbor. First maximal wins, so enumeration order breaks ties
	// deterministically. The partner's opposite pointer is set in the same
	// step, keeping overlap-based adjacency symmetric by construction.
	for i := range monitors {
		a := &monitors[i]
		rightProj := a.Rect.Translate(a.Rect.W, 0)
		downProj := a.Rect.Translate(0, a.Rect.H)

		bestRight, bestRightArea := -1, 0
		bestDown, bestDownArea := -1, 0
		for j := range monitors {
			if i == j {
				continue
			}
			b := &monitors[j]
			if ov := geometry.OverlapArea(rightProj, b.Rect); ov > bestRightArea {
				bestRight, bestRightArea = j, ov
			}
			if ov := geometry.OverlapArea(downProj, b.Rect); ov > bestDownArea {
				bestDown, bestDownArea = j, ov
			}
		}

		if bestRight >= 0 {
			anyHorizontal = true
			t.adj[a.Tag].Right = monitors[bestRight].Tag
			t.adj[monitors[bestRight].Tag].Left = a.Tag
		}
		if bestDown >= 0 {
			anyVertical = true
			t.adj[a.Tag].Down = monitors[bestDown].Tag
			t.adj[monitors[bestDown].Tag].Up = a.Tag
		}
	}

	switch {
	case anyHorizontal && !anyVertical:
		t.shape = ArrangementHorizontal
	case anyVertical && !anyHorizontal:
		t.shape = ArrangementVertical
	default:
		t.shape = ArrangementIrregular
	}

	t.order = rotationalOrder(monitors, reg.Center(), axis, t.shape)
	for i, tag := range t.order {
		t.adj[tag].Next = t.order[(i+1)%len(t.order)]
		t.adj[tag].Prev = t.order[(i-1+len(t.order))%len(t.order)]
	}

	return t
}

// rotationalOrder sorts monitor tags into the cycle next/prev walks.
func rotationalOrder(monitors []display.Monitor, center geometry.Point, axis SortAxis, shape Arrangement) []string {
	sorted := make([]display.Monitor, len(monitors))
	copy(sorted, monitors)

	switch {
	case axis == AxisX:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Rect.X < sorted[j].Rect.X
		})
	case axis == AxisY:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Rect.Y < sorted[j].Rect.Y
		})
	case shape == ArrangementHorizontal:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Rect.Center().X < sorted[j].Rect.Center().X
		})
	case shape == ArrangementVertical:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Rect.Center().Y < sorted[j].Rect.Center().Y
		})
	default:
		sort.SliceStable(sorted, func(i, j int) bool {
			return clockwiseLess(sorted[i].Rect.Center(), sorted[j].Rect.Center(), center)
		})
	}

	order := make([]string, len(sorted))
	for i := range sorted {
		order[i] = sorted[i].Tag
	}
	return order
}

// clockwiseLess orders two points clockwise around center, starting in the
// upper-left quadrant. Coarse ordering by quadrant, fine ordering within a
// quadrant by the 2-D cross product of the center-relative vectors;
// collinear points sort closer-to-center first.
func clockwiseLess(a, b, center geometry.Point) bool {
	ax, ay := a.X-center.X, a.Y-center.Y
	bx, by := b.X-center.X, b.Y-center.Y

	qa, qb := quadrant(ax, ay), quadrant(bx, by)
	if qa != qb {
		return qa < qb
	}

	// Screen coordinates have y growing downward, so a positive cross
	// product means b lies clockwise of a.
	cross := ax*by - ay*bx
	if cross != 0 {
		return cross > 0
	}
	return ax*ax+ay*ay < bx*bx+by*by
}

// quadrant ranks a center-relative offset for clockwise traversal:
// upper-left, upper-right, lower-right, lower-left.
func quadrant(dx, dy int) int {
	if dy < 0 {
		if dx < 0 {
			return 0
		}
		return 1
	}
	if dx >= 0 {
		return 2
	}
	return 3
}

// Shape reports the arrangement classification.
func (t *Topology) Shape() Arrangement {
	return t.shape
}

// Order returns the rotational ordering of monitor tags.
func (t *Topology) Order() []string {
	return t.order
}

// Neighbors returns the adjacency record for a monitor tag.
func (t *Topology) Neighbors(tag string) (Adjacency, bool) {
	adj, ok := t.adj[tag]
	if !ok {
		return Adjacency{}, false
	}
	return *adj, true
}

// Resolve maps a direction from the given monitor to a target monitor tag.
// An unresolved direction (edge of the arrangement, here, or rotation on a
// single-monitor desktop) resolves to the monitor itself: the move becomes
// a same-monitor re-fit.
func (t *Topology) Resolve(tag string, dir Direction) string {
	adj, ok := t.adj[tag]
	if !ok {
		return tag
	}

	target := ""
	switch dir {
	case DirLeft:
		target = adj.Left
	case DirRight:
		target = adj.Right
	case DirUp:
		target = adj.Up
	case DirDown:
		target = adj.Down
	case DirNext:
		target = adj.Next
	case DirPrev:
		target = adj.Prev
	case DirHere:
		target = adj.Here
	}
	if target == "" {
		return tag
	}
	return target
}
