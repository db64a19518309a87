package cli

import (
	"fmt"

	"github.com/bianca-git/fylgja-tasks/internal/app"
	"github.com/spf13/cobra"
)

// newConfigCommand creates the config command showing the resolved
// configuration. It needs no credential and performs no tracker call.
func newConfigCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the resolved configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "GitHub Repository: %s\n", c.Config.Slug())
			_, _ = fmt.Fprintf(out, "Tasks File: %s\n", c.Config.TasksFile)
			_, _ = fmt.Fprintf(out, "API URL: %s\n", c.Config.APIURL)
			_, _ = fmt.Fprintf(out, "GitHub Token: %s\n", c.Config.MaskedToken())
			_, _ = fmt.Fprintf(out, "Log Level: %s\n", c.Config.LogLevel)
			_, _ = fmt.Fprintf(out, "Catalog: %d labels, %d milestones\n",
				len(c.Catalog.Labels), len(c.Catalog.Milestones))
			return nil
		},
	}
}
