package tui

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/1broseidon/monshift/internal/mover"
)

// Run starts the interactive monitor map, blocking until the user quits.
func Run(m *mover.Mover, preserveRatio bool) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("tui requires an interactive terminal (stdin/stdout must be TTYs)")
	}

	p := tea.NewProgram(newModel(m, preserveRatio), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
