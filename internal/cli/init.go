package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AlaxSwum/focus-cli/internal/app"
	"github.com/AlaxSwum/focus-cli/internal/domain"
)

// newInitCommand creates the init command for writing a starter config.
func newInitCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "init",
		Short:   "Write a starter config file",
		GroupID: groupSetup,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := c.ConfigLoader.WriteDefault()
			if errors.Is(err, domain.ErrConfigExists) {
				fmt.Fprintf(cmd.OutOrStdout(), "Config already exists at %s\n", c.ConfigLoader.Path())
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", c.ConfigLoader.Path())
			fmt.Fprintln(cmd.OutOrStdout(), "Fill in the [remote] section, then run 'focus sync'.")
			return nil
		},
	}
	return cmd
}
