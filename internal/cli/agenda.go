package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/AlaxSwum/focus-cli/internal/app"
	"github.com/AlaxSwum/focus-cli/internal/domain"
)

var (
	agendaDayStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	agendaTimeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	agendaDoneStyle = lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("8"))
	agendaSkipStyle = lipgloss.NewStyle().Faint(true)
	agendaColStyle  = lipgloss.NewStyle().PaddingRight(2)
)

// newAgendaCommand creates the agenda command for a styled day or week
// view.
func newAgendaCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Date string
		Week bool
	}

	cmd := &cobra.Command{
		Use:     "agenda",
		Short:   "Show a styled agenda for a day or week",
		GroupID: groupView,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.RequireRemote(); err != nil {
				return err
			}
			refreshQuiet(cmd, c)

			date, err := resolveDate(opts.Date, c.Clock)
			if err != nil {
				return err
			}

			if opts.Week {
				fmt.Fprintln(cmd.OutOrStdout(), renderWeek(c.Timeline, date))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderDay(c.Timeline.Day(date), date))
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Date, "date", "d", "today", "Day to show (today, tomorrow, 2006-01-02)")
	cmd.Flags().BoolVarP(&opts.Week, "week", "w", false, "Show the whole week starting from the date")
	return cmd
}

// renderDay lays out one day's tasks, indenting tasks by their overlap
// column so concurrent slots read side by side.
func renderDay(tasks []domain.Task, date domain.Date) string {
	var b strings.Builder
	b.WriteString(agendaDayStyle.Render(date.String()))
	b.WriteString("\n")

	if len(tasks) == 0 {
		b.WriteString("  (nothing scheduled)")
		return b.String()
	}

	layouts := domain.LayoutDay(tasks)
	byID := make(map[string]domain.TaskLayout, len(layouts))
	for _, l := range layouts {
		byID[l.TaskID] = l
	}

	timed := make([]domain.Task, 0, len(tasks))
	var todos []domain.Task
	for _, t := range tasks {
		if t.Kind == domain.KindTodo {
			todos = append(todos, t)
			continue
		}
		timed = append(timed, t)
	}
	sort.SliceStable(timed, func(i, j int) bool {
		return timed[i].StartMinutes() < timed[j].StartMinutes()
	})

	for _, t := range timed {
		l := byID[t.ID]
		indent := strings.Repeat("  ", l.Column)
		line := fmt.Sprintf("  %s %s%s", agendaTimeStyle.Render(formatSlot(t)), indent, styledTitle(t))
		if l.TotalColumns > 1 {
			line += agendaTimeStyle.Render(fmt.Sprintf("  [%d/%d]", l.Column+1, l.TotalColumns))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	for _, t := range todos {
		b.WriteString(fmt.Sprintf("  %s %s\n", agendaTimeStyle.Render("--:--"), styledTitle(t)))
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderWeek joins seven day columns horizontally.
func renderWeek(tl *domain.Timeline, start domain.Date) string {
	cols := make([]string, 0, 7)
	for i := 0; i < 7; i++ {
		d := start.AddDays(i)
		cols = append(cols, agendaColStyle.Render(renderDay(tl.Day(d), d)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func styledTitle(t domain.Task) string {
	switch {
	case t.IsCompleted:
		return agendaDoneStyle.Render(t.Title)
	case t.IsSkipped:
		return agendaSkipStyle.Render(t.Title + " (skipped)")
	default:
		return t.Title
	}
}
