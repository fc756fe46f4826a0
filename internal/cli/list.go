package cli

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/AlaxSwum/focus-cli/internal/app"
	"github.com/AlaxSwum/focus-cli/internal/domain"
)

// newListCommand creates the list command for a tabular day listing.
func newListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Date string
		All  bool
	}

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List tasks for a day",
		GroupID: groupView,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.RequireRemote(); err != nil {
				return err
			}
			refreshQuiet(cmd, c)

			var tasks []domain.Task
			if opts.All {
				tasks = c.Timeline.Snapshot()
			} else {
				date, err := resolveDate(opts.Date, c.Clock)
				if err != nil {
					return err
				}
				tasks = c.Timeline.Day(date)
				tasks = append(tasks, undatedTodos(c.Timeline.Snapshot())...)
			}
			if len(tasks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No tasks")
				return nil
			}

			sort.SliceStable(tasks, func(i, j int) bool {
				if tasks[i].Date != tasks[j].Date {
					return tasks[i].Date.String() < tasks[j].Date.String()
				}
				return tasks[i].StartMinutes() < tasks[j].StartMinutes()
			})

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTIME\tKIND\tSTATUS\tTITLE")
			for _, t := range tasks {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					t.ID, formatSlot(t), t.Kind, formatStatus(t), t.Title)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&opts.Date, "date", "d", "today", "Day to list (today, tomorrow, 2006-01-02)")
	cmd.Flags().BoolVarP(&opts.All, "all", "a", false, "List every synced task")
	return cmd
}

// undatedTodos picks out todos that have no due date; they belong to
// every day's listing.
func undatedTodos(tasks []domain.Task) []domain.Task {
	var out []domain.Task
	for _, t := range tasks {
		if t.Kind == domain.KindTodo && t.Date.IsZero() {
			out = append(out, t)
		}
	}
	return out
}
