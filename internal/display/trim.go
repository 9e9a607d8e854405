package display

// Panel classification heuristics. Empirically chosen, not derived from any
// formal model; the first place to tune if a new desktop's panels are
// misclassified (see the trim tests).
const (
	// panelAspectDivisor: a strip counts as a vertical bar only when its
	// width is under a third of its height (and symmetrically for
	// horizontal bars). Anything chunkier is a floating widget, not a panel.
	panelAspectDivisor = 3

	// panelSpanPercent: a bar must span more than 70% of the monitor edge it
	// sits on to trim the usable rect. Shorter bars (launchers, applets) are
	// ignored. Some real panels are missed by this heuristic; that is an
	// accepted limitation, not an error.
	panelSpanPercent = 70
)

// TrimPanels narrows each monitor's usable rect by the space occupied by
// panels docked along its edges. Trimming is cumulative: every qualifying
// panel narrows the already-narrowed rect. Callers skip this step entirely
// for fullscreen windows or when panel adjustment is disabled.
func (r *Registry) TrimPanels() {
	for i := range r.monitors {
		mon := &r.monitors[i]
		for _, p := range r.panels {
			if p.Owner != mon.Tag {
				continue
			}
			trimPanel(mon, p)
		}
	}
}

func trimPanel(mon *Monitor, p Panel) {
	switch {
	case p.Rect.W*panelAspectDivisor < p.Rect.H:
		// Vertical bar: must span most of the monitor's height.
		if p.Rect.H*100 <= mon.Rect.H*panelSpanPercent {
			return
		}
		switch {
		case p.Rect.X == mon.Rect.X:
			mon.Usable.X += p.Rect.W
			mon.Usable.W -= p.Rect.W
		case p.Rect.Right() == mon.Rect.Right():
			mon.Usable.W -= p.Rect.W
		}
	case p.Rect.H*panelAspectDivisor < p.Rect.W:
		// Horizontal bar: must span most of the monitor's width.
		if p.Rect.W*100 <= mon.Rect.W*panelSpanPercent {
			return
		}
		switch {
		case p.Rect.Y == mon.Rect.Y:
			mon.Usable.Y += p.Rect.H
			mon.Usable.H -= p.Rect.H
		case p.Rect.Bottom() == mon.Rect.Bottom():
			mon.Usable.H -= p.Rect.H
		}
	}
	// Neither-aspect strips and panels touching no edge leave the rect alone.

	if mon.Usable.W < 0 {
		mon.Usable.W = 0
	}
	if mon.Usable.H < 0 {
		mon.Usable.H = 0
	}
}
