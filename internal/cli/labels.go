package cli

import (
	"fmt"

	"github.com/bianca-git/fylgja-tasks/internal/app"
	"github.com/bianca-git/fylgja-tasks/internal/usecase"
	"github.com/spf13/cobra"
)

// newLabelsCommand creates the labels command for the label bootstrap alone.
func newLabelsCommand(c *app.Container) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "labels",
		Short: "Create the label catalog in the repository",
		Long: `Create the label catalog (priority, phase, status, automation, role,
and the generic task label) without touching issues or milestones.
Labels that already exist are reported and left unchanged.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.Config.ValidateToken(); err != nil {
				return err
			}
			title := fmt.Sprintf("Create %d labels in %s?", len(c.Catalog.Labels), c.Config.Slug())
			ok, err := confirm(cmd.OutOrStdout(), c.Config, title, yes)
			if err != nil {
				return err
			}
			if !ok {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Operation cancelled.")
				return nil
			}

			out, err := c.BootstrapLabelsUseCase().Execute(cmd.Context(), usecase.BootstrapLabelsInput{
				Labels: c.Catalog.Labels,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Labels: %d created, %d existing, %d failed\n",
				out.Created, out.Existing, out.Failed)
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the interactive confirmation")
	return cmd
}
