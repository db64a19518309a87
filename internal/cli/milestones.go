package cli

import (
	"fmt"

	"github.com/bianca-git/fylgja-tasks/internal/app"
	"github.com/bianca-git/fylgja-tasks/internal/usecase"
	"github.com/spf13/cobra"
)

// newMilestonesCommand creates the milestones command for the milestone
// bootstrap alone.
func newMilestonesCommand(c *app.Container) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "milestones",
		Short: "Create the phase milestones in the repository",
		Long: `Create the phase milestones with their descriptions and due dates.
Milestones that already exist are reported and left unchanged.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.Config.ValidateToken(); err != nil {
				return err
			}
			title := fmt.Sprintf("Create %d milestones in %s?", len(c.Catalog.Milestones), c.Config.Slug())
			ok, err := confirm(cmd.OutOrStdout(), c.Config, title, yes)
			if err != nil {
				return err
			}
			if !ok {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Operation cancelled.")
				return nil
			}

			out, err := c.BootstrapMilestonesUseCase().Execute(cmd.Context(), usecase.BootstrapMilestonesInput{
				Milestones: c.Catalog.Milestones,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Milestones: %d created, %d existing, %d failed\n",
				out.Created, out.Existing, out.Failed)
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the interactive confirmation")
	return cmd
}
