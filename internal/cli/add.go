package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/AlaxSwum/focus-cli/internal/app"
	"github.com/AlaxSwum/focus-cli/internal/domain"
	"github.com/AlaxSwum/focus-cli/internal/usecase"
)

// newAddCommand creates the add command for creating a task. Without
// --title it opens an interactive form.
func newAddCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Title       string
		Description string
		Notes       string
		Kind        string
		Subtype     string
		Date        string
		Start       string
		Duration    int
		Priority    string
		MeetingLink string
	}

	cmd := &cobra.Command{
		Use:     "add",
		Short:   "Create a new task",
		GroupID: groupTask,
		Args:    cobra.NoArgs,
		Example: `  # Block 9:00-10:30 tomorrow for writing
  focus add --title "Write report" --date tomorrow --start 09:00 --duration 90

  # Quick todo, no time slot
  focus add --title "Buy stamps" --kind todo

  # Interactive form
  focus add`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.RequireRemote(); err != nil {
				return err
			}

			if opts.Title == "" {
				if err := runAddForm(&opts); err != nil {
					return err
				}
			}

			in := usecase.CreateTaskInput{
				UserID:          c.Config.Remote.UserID,
				Title:           opts.Title,
				Description:     opts.Description,
				Notes:           opts.Notes,
				Kind:            domain.Kind(opts.Kind),
				Subtype:         opts.Subtype,
				DurationMinutes: opts.Duration,
				Priority:        domain.Priority(opts.Priority),
				MeetingLink:     opts.MeetingLink,
			}
			if in.Kind != domain.KindTodo || opts.Date != "" {
				date, err := resolveDate(opts.Date, c.Clock)
				if err != nil {
					return err
				}
				in.Date = date
			}
			if in.Kind != domain.KindTodo {
				h, m, err := parseClockArg(opts.Start)
				if err != nil {
					return err
				}
				in.StartHour, in.StartMinute = h, m
			}

			out, err := c.CreateTaskUseCase().Execute(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s: %s\n", out.Task.ID, out.Task.Title)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Title, "title", "t", "", "Task title")
	cmd.Flags().StringVar(&opts.Description, "description", "", "Longer description")
	cmd.Flags().StringVar(&opts.Notes, "notes", "", "Free-form notes")
	cmd.Flags().StringVarP(&opts.Kind, "kind", "k", string(domain.KindTimeBlock), "Task kind (time_block, meeting, social, todo)")
	cmd.Flags().StringVar(&opts.Subtype, "subtype", "", "Kind-specific subtype")
	cmd.Flags().StringVarP(&opts.Date, "date", "d", "today", "Day (today, tomorrow, 2006-01-02)")
	cmd.Flags().StringVarP(&opts.Start, "start", "s", "09:00", "Start time (HH:MM)")
	cmd.Flags().IntVar(&opts.Duration, "duration", 30, "Duration in minutes")
	cmd.Flags().StringVarP(&opts.Priority, "priority", "p", string(domain.PriorityNormal), "Priority (low, normal, high, urgent)")
	cmd.Flags().StringVar(&opts.MeetingLink, "link", "", "Meeting link URL")
	return cmd
}

func runAddForm(opts *struct {
	Title       string
	Description string
	Notes       string
	Kind        string
	Subtype     string
	Date        string
	Start       string
	Duration    int
	Priority    string
	MeetingLink string
}) error {
	duration := fmt.Sprintf("%d", opts.Duration)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Title").Value(&opts.Title).Validate(func(s string) error {
				if s == "" {
					return fmt.Errorf("title is required")
				}
				return nil
			}),
			huh.NewSelect[string]().Title("Kind").
				Options(
					huh.NewOption("Time block", string(domain.KindTimeBlock)),
					huh.NewOption("Meeting", string(domain.KindMeeting)),
					huh.NewOption("Social", string(domain.KindSocial)),
					huh.NewOption("Todo", string(domain.KindTodo)),
				).Value(&opts.Kind),
			huh.NewInput().Title("Date").Description("today, tomorrow, or 2006-01-02").Value(&opts.Date),
			huh.NewInput().Title("Start (HH:MM)").Value(&opts.Start),
			huh.NewInput().Title("Duration (minutes)").Value(&duration),
			huh.NewSelect[string]().Title("Priority").
				Options(
					huh.NewOption("Low", string(domain.PriorityLow)),
					huh.NewOption("Normal", string(domain.PriorityNormal)),
					huh.NewOption("High", string(domain.PriorityHigh)),
					huh.NewOption("Urgent", string(domain.PriorityUrgent)),
				).Value(&opts.Priority),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}
	if _, err := fmt.Sscanf(duration, "%d", &opts.Duration); err != nil {
		return fmt.Errorf("invalid duration %q", duration)
	}
	return nil
}
