package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AlaxSwum/focus-cli/internal/app"
	"github.com/AlaxSwum/focus-cli/internal/domain"
	"github.com/AlaxSwum/focus-cli/internal/usecase"
)

// newSyncCommand creates the sync command for fetching the remote tables.
func newSyncCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "sync",
		Short:   "Fetch all remote tables and rebuild the timeline",
		GroupID: groupSetup,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.RequireRemote(); err != nil {
				return err
			}
			out, err := refresh(cmd, c)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Synced %d tasks\n", len(out.Tasks))
			return nil
		},
	}
	return cmd
}

// refresh runs one aggregation pass and reports partial failures on
// stderr. A total failure falls back to whatever the timeline already
// holds (the cached snapshot) and surfaces the error to the caller.
func refresh(cmd *cobra.Command, c *app.Container) (*usecase.AggregateOutput, error) {
	out, err := c.AggregateTasksUseCase().Execute(cmd.Context(), usecase.AggregateInput{
		UserID: c.Config.Remote.UserID,
	})
	if err != nil {
		if errors.Is(err, domain.ErrSourceUnavailable) {
			fmt.Fprintln(cmd.ErrOrStderr(), "Warning: all sources unreachable, showing cached data")
		}
		return nil, err
	}
	if out.FailedSources > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %d source(s) unreachable, results may be incomplete\n", out.FailedSources)
	}
	return out, nil
}

// refreshQuiet is refresh for commands that can still proceed on stale
// data; total failure degrades to the cached snapshot.
func refreshQuiet(cmd *cobra.Command, c *app.Container) {
	if _, err := refresh(cmd, c); err != nil && !errors.Is(err, domain.ErrSourceUnavailable) {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: sync failed: %v\n", err)
	}
}
