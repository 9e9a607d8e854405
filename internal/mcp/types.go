package mcp

// RectInfo is a rectangle in root coordinates.
type RectInfo struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// MonitorInfo describes one monitor.
type MonitorInfo struct {
	Tag    string   `json:"tag"`
	Rect   RectInfo `json:"rect"`
	Usable RectInfo `json:"usable"`
}

// ListMonitorsInput is the input for the list_monitors tool.
type ListMonitorsInput struct{}

// ListMonitorsOutput is the output for the list_monitors tool.
type ListMonitorsOutput struct {
	Monitors    []MonitorInfo `json:"monitors"`
	Arrangement string        `json:"arrangement"`
	Order       []string      `json:"order"`
}

// GetActiveWindowInput is the input for the get_active_window tool.
type GetActiveWindowInput struct{}

// GetActiveWindowOutput is the output for the get_active_window tool.
type GetActiveWindowOutput struct {
	WindowID   uint32   `json:"window_id"`
	Rect       RectInfo `json:"rect"`
	Monitor    string   `json:"monitor"`
	Maximized  bool     `json:"maximized"`
	Fullscreen bool     `json:"fullscreen"`
}

// MoveWindowInput is the input for the move_window tool.
type MoveWindowInput struct {
	Direction       string `json:"direction" jsonschema:"required,Where to move the active window: left, right, up, down, next, prev, or here"`
	PreserveRatio   *bool  `json:"preserve_ratio,omitempty" jsonschema:"Scale the window to keep its monitor-relative proportions instead of keeping its pixel size (default: from config)"`
	AdjustForPanels *bool  `json:"adjust_for_panels,omitempty" jsonschema:"Keep the window clear of desktop panels on the destination monitor (default: from config)"`
	DryRun          bool   `json:"dry_run,omitempty" jsonschema:"When true, compute the target geometry but do not move the window"`
}

// MoveWindowOutput is the output for the move_window tool.
type MoveWindowOutput struct {
	WindowID uint32   `json:"window_id"`
	From     string   `json:"from"`
	To       string   `json:"to"`
	OldRect  RectInfo `json:"old_rect"`
	NewRect  RectInfo `json:"new_rect"`
	Moved    bool     `json:"moved"`
}
