package topology

import "fmt"

// Direction is one of the seven move requests: four cardinal, two rotational
// (next/prev) and here (re-fit in place).
type Direction string

const (
	DirLeft  Direction = "left"
	DirRight Direction = "right"
	DirUp    Direction = "up"
	DirDown  Direction = "down"
	DirNext  Direction = "next"
	DirPrev  Direction = "prev"
	DirHere  Direction = "here"
)

// Directions lists all valid directions in display order.
var Directions = []Direction{DirLeft, DirRight, DirUp, DirDown, DirNext, DirPrev, DirHere}

// ParseDirection validates a direction keyword.
func ParseDirection(s string) (Direction, error) {
	d := Direction(s)
	switch d {
	case DirLeft, DirRight, DirUp, DirDown, DirNext, DirPrev, DirHere:
		return d, nil
	}
	return "", fmt.Errorf("invalid direction %q (want one of left, right, up, down, next, prev, here)", s)
}
