package cli

import (
	"fmt"
	"io"

	"github.com/bianca-git/fylgja-tasks/internal/app"
	"github.com/bianca-git/fylgja-tasks/internal/domain"
	"github.com/bianca-git/fylgja-tasks/internal/infra/csvfile"
	"github.com/bianca-git/fylgja-tasks/internal/usecase"
	"github.com/spf13/cobra"
)

// newRunCommand creates the run command for the full batch.
func newRunCommand(c *app.Container) *cobra.Command {
	var opts struct {
		File   string
		Yes    bool
		DryRun bool
	}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Create issues, labels, and milestones from the tasks file",
		Long: `Run the full batch: bootstrap the label and milestone catalogs, then
create one issue per CSV row in file order.

A label or milestone that already exists is reported and counted as
success. A row whose issue creation fails is reported, counted, and
skipped; the batch never stops early.

Examples:
  # Seed the configured repository
  fylgja-tasks run

  # Preview the payloads without touching the tracker
  fylgja-tasks run --dry-run

  # Non-interactive run with an explicit tasks file
  fylgja-tasks run --yes --file plan.csv`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.File != "" {
				c.Config.TasksFile = opts.File
				c.Records = csvfile.NewReader(opts.File)
			}

			// Dry runs perform no mutating call and need no credential
			// or confirmation.
			if !opts.DryRun {
				if err := c.Config.ValidateToken(); err != nil {
					return err
				}
				title := fmt.Sprintf("Create GitHub issues in %s?", c.Config.Slug())
				ok, err := confirm(cmd.OutOrStdout(), c.Config, title, opts.Yes)
				if err != nil {
					return err
				}
				if !ok {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Operation cancelled.")
					return nil
				}
			}

			out, err := c.SeedTrackerUseCase().Execute(cmd.Context(), usecase.SeedTrackerInput{
				Catalog: c.Catalog,
				DryRun:  opts.DryRun,
			})
			if err != nil {
				return err
			}

			printSummary(cmd.OutOrStdout(), out.Summary)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.File, "file", "", "Tasks CSV file (overrides TASKS_CSV_FILE)")
	cmd.Flags().BoolVar(&opts.Yes, "yes", false, "Skip the interactive confirmation")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Format payloads without calling the tracker")

	return cmd
}

// printSummary emits the final counters of a batch run.
func printSummary(w io.Writer, s domain.RunSummary) {
	_, _ = fmt.Fprintln(w, "\nSummary:")
	_, _ = fmt.Fprintf(w, "✓ Successfully created: %d issues\n", s.Succeeded)
	_, _ = fmt.Fprintf(w, "✗ Failed to create: %d issues\n", s.Failed)
	_, _ = fmt.Fprintf(w, "Total processed: %d tasks\n", s.Processed)
}
