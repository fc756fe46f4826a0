// Package cli provides the command-line interface for focus.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/AlaxSwum/focus-cli/internal/app"
)

// Command group IDs.
const (
	groupSetup = "setup"
	groupTask  = "task"
	groupView  = "view"
)

// NewRootCommand creates the root command for focus.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "focus",
		Short: "Unified day planner CLI",
		Long: `focus merges time blocks, meetings, and todos from your remote
workspace into one timeline you can view and edit from the terminal.

Running focus without arguments opens the interactive day view.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.RequireRemote(); err != nil {
				return err
			}
			return launchTUI(c)
		},
	}

	root.AddGroup(
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
		&cobra.Group{ID: groupTask, Title: "Task Commands:"},
		&cobra.Group{ID: groupView, Title: "View Commands:"},
	)

	root.AddCommand(
		newInitCommand(c),
		newSyncCommand(c),
		newListCommand(c),
		newAgendaCommand(c),
		newNextCommand(c),
		newExportCommand(c),
		newAddCommand(c),
		newMoveCommand(c),
		newResizeCommand(c),
		newDoneCommand(c),
		newSkipCommand(c),
		newRmCommand(c),
		newDupCommand(c),
	)

	return root
}
