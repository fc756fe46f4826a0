package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AlaxSwum/focus-cli/internal/app"
	"github.com/AlaxSwum/focus-cli/internal/domain"
	"github.com/AlaxSwum/focus-cli/internal/export"
)

// newExportCommand creates the export command for dumping tasks as
// JSON or YAML.
func newExportCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Date   string
		All    bool
		Format string
		Out    string
	}

	cmd := &cobra.Command{
		Use:     "export",
		Short:   "Export tasks as JSON or YAML",
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
			}

			out := cmd.OutOrStdout()
			if opts.Out != "" {
				f, err := os.Create(opts.Out)
				if err != nil {
					return fmt.Errorf("create output file: %w", err)
				}
				defer f.Close()
				out = f
			}

			switch opts.Format {
			case "json":
				return export.WriteJSON(out, tasks, c.Clock.Now())
			case "yaml":
				return export.WriteYAML(out, tasks, c.Clock.Now())
			default:
				return fmt.Errorf("unknown format %q (use json or yaml)", opts.Format)
			}
		},
	}

	cmd.Flags().StringVarP(&opts.Date, "date", "d", "today", "Day to export (today, tomorrow, 2006-01-02)")
	cmd.Flags().BoolVarP(&opts.All, "all", "a", false, "Export every synced task")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "json", "Output format (json, yaml)")
	cmd.Flags().StringVarP(&opts.Out, "out", "o", "", "Write to a file instead of stdout")
	return cmd
}
