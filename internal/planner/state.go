package planner

// StateFlag is a window state relevant to cross-monitor moves.
type StateFlag string

const (
	StateMaximizedHorz StateFlag = "maximized_horizontal"
	StateMaximizedVert StateFlag = "maximized_vertical"
	StateFullscreen    StateFlag = "fullscreen"
)

// WindowState is an order-preserving set of state flags. Duplicates carry no
// meaning.
type WindowState []StateFlag

// Has reports whether the flag is present.
func (s WindowState) Has(flag StateFlag) bool {
	for _, f := range s {
		if f == flag {
			return true
		}
	}
	return false
}
