package cli

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/AlaxSwum/focus-cli/internal/app"
	"github.com/AlaxSwum/focus-cli/internal/tui"
)

// launchTUI starts the interactive day view.
func launchTUI(c *app.Container) error {
	model := tui.NewModel(c)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
