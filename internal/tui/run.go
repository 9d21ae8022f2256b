package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the dashboard and blocks until the user quits. The
// session's refresh hook is wired to the program so any mutation,
// including ones made by the dashboard itself, re-renders the summary.
func Run(cfg Config) error {
	p := tea.NewProgram(newModel(cfg), tea.WithAltScreen())

	cfg.Session.OnRefresh(func() {
		p.Send(refreshMsg{})
	})

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard failed: %w", err)
	}
	return nil
}
