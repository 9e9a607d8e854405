// Package tui is the interactive monitor map: it draws the arrangement,
// marks the active window, and moves it with the arrow keys.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/1broseidon/monshift/internal/mover"
	"github.com/1broseidon/monshift/internal/topology"
)

// model is the root bubbletea model.
type model struct {
	mover *mover.Mover
	snap  *mover.Snapshot

	keys KeyMap
	help help.Model

	preserveRatio bool
	status        string
	loadErr       error

	width  int
	height int
}

func newModel(m *mover.Mover, preserveRatio bool) model {
	md := model{
		mover:         m,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		preserveRatio: preserveRatio,
	}
	md.refresh()
	return md
}

func (m *model) refresh() {
	snap, err := m.mover.Snapshot()
	if err != nil {
		m.loadErr = err
		return
	}
	m.loadErr = nil
	m.snap = snap
}

func (m *model) move(dir topology.Direction) {
	req := m.mover.RequestFromConfig(dir)
	req.PreserveRatio = m.preserveRatio

	res, err := m.mover.Move(req)
	if err != nil {
		m.status = fmt.Sprintf("move %s failed: %v", dir, err)
		return
	}
	if res.From == res.To {
		m.status = fmt.Sprintf("%s: re-fit on %s", dir, res.To)
	} else {
		m.status = fmt.Sprintf("%s: %s → %s", dir, res.From, res.To)
	}
	m.refresh()
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Refresh):
			m.refresh()
			m.status = "refreshed"
		case key.Matches(msg, m.keys.Ratio):
			m.preserveRatio = !m.preserveRatio
			if m.preserveRatio {
				m.status = "scaling: preserve ratio"
			} else {
				m.status = "scaling: keep size"
			}
		case key.Matches(msg, m.keys.Left):
			m.move(topology.DirLeft)
		case key.Matches(msg, m.keys.Right):
			m.move(topology.DirRight)
		case key.Matches(msg, m.keys.Up):
			m.move(topology.DirUp)
		case key.Matches(msg, m.keys.Down):
			m.move(topology.DirDown)
		case key.Matches(msg, m.keys.Next):
			m.move(topology.DirNext)
		case key.Matches(msg, m.keys.Prev):
			m.move(topology.DirPrev)
		case key.Matches(msg, m.keys.Here):
			m.move(topology.DirHere)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}
