package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/AlaxSwum/focus-cli/internal/app"
)

// newNextCommand creates the next command for showing what starts next.
func newNextCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "next",
		Short:   "Show the next upcoming task",
		GroupID: groupView,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.RequireRemote(); err != nil {
				return err
			}
			refreshQuiet(cmd, c)

			task, ok := c.Scheduler.Next()
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing scheduled ahead")
				return nil
			}

			now := c.Clock.Now()
			until := task.StartAt(now.Location()).Sub(now).Round(time.Minute)
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s (in %s)\n", formatSlot(task), task.Title, until)

			if soon := c.Scheduler.Upcoming(); len(soon) > 1 {
				fmt.Fprintf(cmd.OutOrStdout(), "%d more starting within %d minutes\n",
					len(soon)-1, c.Config.Notify.LeadMinutes)
			}
			return nil
		},
	}
	return cmd
}
