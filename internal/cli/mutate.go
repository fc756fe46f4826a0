package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AlaxSwum/focus-cli/internal/app"
	"github.com/AlaxSwum/focus-cli/internal/usecase"
)

// newMoveCommand creates the move command for shifting a task in time.
func newMoveCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "move <id> <delta>",
		Short:   "Shift a task by a number of minutes",
		GroupID: groupTask,
		Args:    cobra.ExactArgs(2),
		Example: `  # Push a block half an hour later
  focus move tb-12 +30

  # Pull it 15 minutes earlier
  focus move tb-12 -15`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.RequireRemote(); err != nil {
				return err
			}
			delta, err := parseDelta(args[1])
			if err != nil {
				return err
			}
			refreshQuiet(cmd, c)

			out, err := c.MoveTaskUseCase().Execute(cmd.Context(), usecase.MoveTaskInput{
				UserID:       c.Config.Remote.UserID,
				TaskID:       args[0],
				DeltaMinutes: delta,
			})
			if err != nil {
				return err
			}
			if !out.Applied {
				fmt.Fprintln(cmd.OutOrStdout(), "Delta too small, nothing moved")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Moved %s to %s\n", out.Task.ID, formatSlot(out.Task))
			return nil
		},
	}
	return cmd
}

// newResizeCommand creates the resize command for changing a task's
// duration.
func newResizeCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "resize <id> <delta>",
		Short:   "Grow or shrink a task by a number of minutes",
		GroupID: groupTask,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.RequireRemote(); err != nil {
				return err
			}
			delta, err := parseDelta(args[1])
			if err != nil {
				return err
			}
			refreshQuiet(cmd, c)

			out, err := c.ResizeTaskUseCase().Execute(cmd.Context(), usecase.ResizeTaskInput{
				UserID:       c.Config.Remote.UserID,
				TaskID:       args[0],
				DeltaMinutes: delta,
			})
			if err != nil {
				return err
			}
			if !out.Applied {
				fmt.Fprintln(cmd.OutOrStdout(), "Delta too small or below the 15-minute minimum, nothing changed")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Resized %s to %s\n", out.Task.ID, formatSlot(out.Task))
			return nil
		},
	}
	return cmd
}

// newDoneCommand creates the done command for toggling completion.
func newDoneCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "done <id>",
		Short:   "Toggle a task's completion flag",
		GroupID: groupTask,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.RequireRemote(); err != nil {
				return err
			}
			refreshQuiet(cmd, c)

			out, err := c.ToggleCompleteUseCase().Execute(cmd.Context(), usecase.ToggleCompleteInput{
				UserID: c.Config.Remote.UserID,
				TaskID: args[0],
			})
			if err != nil {
				return err
			}
			if out.Task.IsCompleted {
				fmt.Fprintf(cmd.OutOrStdout(), "Completed %s\n", out.Task.ID)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Reopened %s\n", out.Task.ID)
			}
			return nil
		},
	}
	return cmd
}

// newSkipCommand creates the skip command for marking a task skipped.
func newSkipCommand(c *app.Container) *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:     "skip <id>",
		Short:   "Mark a task as skipped",
		GroupID: groupTask,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.RequireRemote(); err != nil {
				return err
			}
			refreshQuiet(cmd, c)

			out, err := c.SkipTaskUseCase().Execute(cmd.Context(), usecase.SkipTaskInput{
				UserID: c.Config.Remote.UserID,
				TaskID: args[0],
				Reason: reason,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Skipped %s\n", out.Task.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&reason, "reason", "r", "", "Why the task is being skipped")
	return cmd
}

// newRmCommand creates the rm command for deleting a task.
func newRmCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rm <id>",
		Short:   "Delete a task",
		GroupID: groupTask,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.RequireRemote(); err != nil {
				return err
			}
			refreshQuiet(cmd, c)

			out, err := c.DeleteTaskUseCase().Execute(cmd.Context(), usecase.DeleteTaskInput{
				UserID: c.Config.Remote.UserID,
				TaskID: args[0],
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s: %s\n", out.Task.ID, out.Task.Title)
			return nil
		},
	}
	return cmd
}

// newDupCommand creates the dup command for duplicating a task.
func newDupCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "dup <id>",
		Short:   "Duplicate a task into a fresh record",
		GroupID: groupTask,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.RequireRemote(); err != nil {
				return err
			}
			refreshQuiet(cmd, c)

			out, err := c.DuplicateTaskUseCase().Execute(cmd.Context(), usecase.DuplicateTaskInput{
				UserID: c.Config.Remote.UserID,
				TaskID: args[0],
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Duplicated %s as %s\n", args[0], out.Task.ID)
			return nil
		},
	}
	return cmd
}
