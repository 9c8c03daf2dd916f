package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/codewarden/codewarden/internal/types"
)

// Run starts the interactive findings browser over an ordered report
// sequence and blocks until the user quits.
func Run(reports []types.FileReport, hideMatches bool) error {
	m := NewModel(reports, hideMatches)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}
