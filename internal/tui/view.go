package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/1broseidon/monshift/internal/geometry"
	"github.com/1broseidon/monshift/internal/mover"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			Background(lipgloss.Color("235")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")).
			Padding(0, 1)

	mapStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	activeMapStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Padding(0, 1)
)

// View implements tea.Model.
func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	title := titleStyle.Render("monshift")

	var status string
	switch {
	case m.loadErr != nil:
		status = errorStyle.Render(fmt.Sprintf("error: %v", m.loadErr))
	case m.status != "":
		status = statusStyle.Width(m.width).Render(m.status)
	default:
		status = statusStyle.Width(m.width).Render(summarize(m.snap, m.preserveRatio))
	}

	helpBar := helpStyle.Render(m.help.View(m.keys))

	usedHeight := lipgloss.Height(title) + lipgloss.Height(status) + lipgloss.Height(helpBar)
	mapHeight := m.height - usedHeight - 1
	if mapHeight < 3 {
		mapHeight = 3
	}

	monitorMap := renderMonitorMap(m.snap, m.width-2, mapHeight)

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		monitorMap,
		status,
		helpBar,
	)
}

func summarize(snap *mover.Snapshot, preserveRatio bool) string {
	if snap == nil {
		return "no desktop state"
	}
	mode := "keep size"
	if preserveRatio {
		mode = "preserve ratio"
	}
	parts := []string{
		fmt.Sprintf("%d monitors", len(snap.Monitors)),
		string(snap.Shape),
		"order: " + strings.Join(snap.Order, " → "),
		"scaling: " + mode,
	}
	if snap.Active != nil && snap.Active.Monitor != "" {
		parts = append(parts, "window on "+snap.Active.Monitor)
	}
	return strings.Join(parts, "  •  ")
}

// renderMonitorMap draws the monitor arrangement to scale on a rune canvas.
// The monitor holding the active window is highlighted and the window itself
// drawn as a shaded box.
func renderMonitorMap(snap *mover.Snapshot, width, height int) string {
	if snap == nil || len(snap.Monitors) == 0 || width < 8 || height < 3 {
		return mapStyle.Render("(no monitors)")
	}

	bounds := snap.Monitors[0].Rect
	for _, mon := range snap.Monitors[1:] {
		bounds = union(bounds, mon.Rect)
	}

	canvas := make([][]rune, height)
	owner := make([][]int, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
		owner[i] = make([]int, width)
		for j := range canvas[i] {
			canvas[i][j] = ' '
			owner[i][j] = -1
		}
	}

	activeIdx := -1
	for i, mon := range snap.Monitors {
		cell := toCanvas(mon.Rect, bounds, width, height)
		drawBox(canvas, owner, cell, i)
		label := mon.Tag
		if len(label) > cell.W-2 {
			label = label[:max(0, cell.W-2)]
		}
		for j, r := range label {
			if cell.Y+1 < height && cell.X+1+j < width && cell.X+1+j < cell.Right()-1 {
				canvas[cell.Y+1][cell.X+1+j] = r
			}
		}
		if snap.Active != nil && snap.Active.Monitor == mon.Tag {
			activeIdx = i
		}
	}

	if snap.Active != nil {
		win := toCanvas(snap.Active.Rect, bounds, width, height)
		fillBox(canvas, win, '░')
	}

	lines := make([]string, height)
	for i, row := range canvas {
		if activeIdx < 0 {
			lines[i] = mapStyle.Render(string(row))
			continue
		}
		// Re-style the active monitor's cells line by line.
		var b strings.Builder
		runStart := 0
		runActive := owner[i][0] == activeIdx
		flush := func(end int) {
			segment := string(row[runStart:end])
			if runActive {
				b.WriteString(activeMapStyle.Render(segment))
			} else {
				b.WriteString(mapStyle.Render(segment))
			}
		}
		for j := 1; j < width; j++ {
			active := owner[i][j] == activeIdx
			if active != runActive {
				flush(j)
				runStart = j
				runActive = active
			}
		}
		flush(width)
		lines[i] = b.String()
	}
	return strings.Join(lines, "\n")
}

func union(a, b geometry.Rect) geometry.Rect {
	x := min(a.X, b.X)
	y := min(a.Y, b.Y)
	r := max(a.Right(), b.Right())
	bt := max(a.Bottom(), b.Bottom())
	return geometry.Rect{X: x, Y: y, W: r - x, H: bt - y}
}

// toCanvas maps a desktop rect onto canvas cells, keeping at least a 2x2
// box so tiny monitors stay visible.
func toCanvas(r, bounds geometry.Rect, width, height int) geometry.Rect {
	x1 := (r.X - bounds.X) * width / bounds.W
	y1 := (r.Y - bounds.Y) * height / bounds.H
	x2 := (r.Right() - bounds.X) * width / bounds.W
	y2 := (r.Bottom() - bounds.Y) * height / bounds.H
	if x2 > width {
		x2 = width
	}
	if y2 > height {
		y2 = height
	}
	if x2-x1 < 2 {
		x2 = min(x1+2, width)
	}
	if y2-y1 < 2 {
		y2 = min(y1+2, height)
	}
	return geometry.Rect{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}
}

func drawBox(canvas [][]rune, owner [][]int, r geometry.Rect, idx int) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			if y < 0 || y >= len(canvas) || x < 0 || x >= len(canvas[y]) {
				continue
			}
			owner[y][x] = idx
			top := y == r.Y
			bottom := y == r.Bottom()-1
			left := x == r.X
			right := x == r.Right()-1
			switch {
			case top && left:
				canvas[y][x] = '┌'
			case top && right:
				canvas[y][x] = '┐'
			case bottom && left:
				canvas[y][x] = '└'
			case bottom && right:
				canvas[y][x] = '┘'
			case top || bottom:
				canvas[y][x] = '─'
			case left || right:
				canvas[y][x] = '│'
			}
		}
	}
}

// fillBox shades the interior cells of r without touching box borders.
func fillBox(canvas [][]rune, r geometry.Rect, fill rune) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			if y < 0 || y >= len(canvas) || x < 0 || x >= len(canvas[y]) {
				continue
			}
			if canvas[y][x] == ' ' {
				canvas[y][x] = fill
			}
		}
	}
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
