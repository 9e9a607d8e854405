// Package geometry provides the integer rectangle arithmetic the rest of
// monshift is built on. All desktop coordinates are absolute pixels with the
// origin at the top-left and y growing downward.
package geometry

// Rect is an axis-aligned rectangle in desktop-pixel coordinates.
// It is a value type; transformations return a new Rect.
type Rect struct {
	X int
	Y int
	W int
	H int
}

// Point is a desktop-pixel coordinate pair.
type Point struct {
	X int
	Y int
}

// Right returns the x coordinate one past the rectangle's right edge.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the y coordinate one past the rectangle's bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// Area returns the rectangle's area in square pixels.
func (r Rect) Area() int { return r.W * r.H }

// Center returns the rectangle's centroid (integer division).
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Translate returns r shifted by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// OverlapArea returns the area of the axis-aligned intersection of a and b,
// or 0 when they are disjoint.
func OverlapArea(a, b Rect) int {
	w := min(a.Right(), b.Right()) - max(a.X, b.X)
	h := min(a.Bottom(), b.Bottom()) - max(a.Y, b.Y)
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}

// In reports whether a lies entirely within b. A zero-area a inside b's
// bounds counts as contained.
func In(a, b Rect) bool {
	return OverlapArea(a, b) == a.Area() &&
		a.X >= b.X && a.Y >= b.Y && a.Right() <= b.Right() && a.Bottom() <= b.Bottom()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
