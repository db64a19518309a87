// Package cli provides the command-line interface for fylgja-tasks.
package cli

import (
	"github.com/bianca-git/fylgja-tasks/internal/app"
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command for fylgja-tasks.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "fylgja-tasks",
		Short: "Seed a GitHub repository from a project tasks CSV",
		Long: `fylgja-tasks converts rows of the project-tracking CSV into GitHub
issues, labels, and milestones via the GitHub REST API.

Configuration is environment-provided:
  GITHUB_TOKEN       personal access token (required for mutating commands)
  GITHUB_REPO_OWNER  target repository owner
  GITHUB_REPO_NAME   target repository name
  TASKS_CSV_FILE     path to the tasks CSV
  GITHUB_API_URL     API root, for GitHub Enterprise
  LOG_LEVEL          debug, info, warn, or error

When owner and name are not set, they are inferred from the origin remote
of the enclosing git repository.

Running the same input twice creates duplicate issues; the tool keeps no
record of what it already submitted.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
	}

	root.AddCommand(
		newRunCommand(c),
		newLabelsCommand(c),
		newMilestonesCommand(c),
		newConfigCommand(c),
	)

	return root
}
