package geometry

import "testing"

func TestOverlapArea_DisjointIsZero(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 100, H: 100}
	b := Rect{X: 100, Y: 0, W: 100, H: 100} // shares an edge, no interior overlap
	if got := OverlapArea(a, b); got != 0 {
		t.Fatalf("expected 0 overlap for edge-adjacent rects, got %d", got)
	}

	c := Rect{X: 500, Y: 500, W: 10, H: 10}
	if got := OverlapArea(a, c); got != 0 {
		t.Fatalf("expected 0 overlap for disjoint rects, got %d", got)
	}
}

func TestOverlapArea_PartialOverlap(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 100, H: 100}
	b := Rect{X: 50, Y: 50, W: 100, H: 100}
	// Intersection is 50x50.
	if got := OverlapArea(a, b); got != 2500 {
		t.Fatalf("expected 2500, got %d", got)
	}
	if got := OverlapArea(b, a); got != 2500 {
		t.Fatalf("overlap is not symmetric: got %d", got)
	}
}

func TestIn_FullContainment(t *testing.T) {
	inner := Rect{X: 10, Y: 10, W: 20, H: 20}
	outer := Rect{X: 0, Y: 0, W: 100, H: 100}

	if !In(inner, outer) {
		t.Fatalf("expected inner to be contained in outer")
	}
	if In(outer, inner) {
		t.Fatalf("containment must not be symmetric")
	}
	if got := OverlapArea(inner, outer); got != inner.Area() {
		t.Fatalf("contained rect must overlap by its own area: got %d, want %d", got, inner.Area())
	}
}

func TestIn_StraddlingEdgeIsNotContained(t *testing.T) {
	straddle := Rect{X: 90, Y: 10, W: 20, H: 20}
	outer := Rect{X: 0, Y: 0, W: 100, H: 100}
	if In(straddle, outer) {
		t.Fatalf("rect crossing the boundary must not be contained")
	}
}

func TestCenter(t *testing.T) {
	r := Rect{X: 1920, Y: 0, W: 1920, H: 1080}
	c := r.Center()
	if c.X != 2880 || c.Y != 540 {
		t.Fatalf("expected center (2880,540), got (%d,%d)", c.X, c.Y)
	}
}

func TestTranslate(t *testing.T) {
	r := Rect{X: 5, Y: 5, W: 10, H: 10}
	moved := r.Translate(10, -5)
	if moved.X != 15 || moved.Y != 0 || moved.W != 10 || moved.H != 10 {
		t.Fatalf("unexpected translate result: %+v", moved)
	}
	if r.X != 5 || r.Y != 5 {
		t.Fatalf("translate must not mutate the receiver: %+v", r)
	}
}
