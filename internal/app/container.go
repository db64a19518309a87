// Package app provides the dependency injection container for the application.
package app

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/bianca-git/fylgja-tasks/internal/domain"
	"github.com/bianca-git/fylgja-tasks/internal/infra/config"
	"github.com/bianca-git/fylgja-tasks/internal/infra/console"
	"github.com/bianca-git/fylgja-tasks/internal/infra/csvfile"
	"github.com/bianca-git/fylgja-tasks/internal/infra/github"
	"github.com/bianca-git/fylgja-tasks/internal/infra/gitremote"
	"github.com/bianca-git/fylgja-tasks/internal/infra/logging"
	"github.com/bianca-git/fylgja-tasks/internal/usecase"
)

// Container holds the resolved configuration and every port implementation.
// Commands pull use cases from it through the factory methods.
type Container struct {
	Tracker  domain.Tracker
	Records  domain.RecordSource
	Reporter domain.Reporter
	Logger   *slog.Logger
	Config   *domain.Config
	Catalog  *domain.Catalog
}

// New builds the production container for the given working directory.
// Repository coordinates come from the environment, the origin remote of
// the enclosing git repository, or the built-in defaults, in that order.
func New(dir string) (*Container, error) {
	// Not being in a git repository is fine; the remote is only a fallback
	// source for owner/repo.
	var remote domain.RemoteDetector
	if client, err := gitremote.NewClient(dir); err == nil {
		remote = client
	}

	cfg := config.NewLoader(remote).Load()

	catalog, err := config.LoadCatalog(filepath.Join(dir, domain.CatalogFileName))
	if err != nil {
		return nil, err
	}

	return &Container{
		Tracker:  github.NewClient(cfg.APIURL, cfg.Token, cfg.Owner, cfg.Repo),
		Records:  csvfile.NewReader(cfg.TasksFile),
		Reporter: console.NewReporter(os.Stdout),
		Logger:   logging.New(os.Stderr, cfg.LogLevel),
		Config:   cfg,
		Catalog:  catalog,
	}, nil
}

// NewWithDeps creates a Container with custom dependencies for testing.
func NewWithDeps(
	cfg *domain.Config,
	catalog *domain.Catalog,
	tracker domain.Tracker,
	records domain.RecordSource,
	reporter domain.Reporter,
	logger *slog.Logger,
) *Container {
	return &Container{
		Tracker:  tracker,
		Records:  records,
		Reporter: reporter,
		Logger:   logger,
		Config:   cfg,
		Catalog:  catalog,
	}
}

// UseCase factory methods

// BootstrapLabelsUseCase returns a new BootstrapLabels use case.
func (c *Container) BootstrapLabelsUseCase() *usecase.BootstrapLabels {
	return usecase.NewBootstrapLabels(c.Tracker, c.Reporter, c.Logger)
}

// BootstrapMilestonesUseCase returns a new BootstrapMilestones use case.
func (c *Container) BootstrapMilestonesUseCase() *usecase.BootstrapMilestones {
	return usecase.NewBootstrapMilestones(c.Tracker, c.Reporter, c.Logger)
}

// PublishIssuesUseCase returns a new PublishIssues use case.
func (c *Container) PublishIssuesUseCase() *usecase.PublishIssues {
	return usecase.NewPublishIssues(c.Tracker, c.Reporter, c.Logger)
}

// SeedTrackerUseCase returns a new SeedTracker use case.
func (c *Container) SeedTrackerUseCase() *usecase.SeedTracker {
	return usecase.NewSeedTracker(
		c.Records,
		c.BootstrapLabelsUseCase(),
		c.BootstrapMilestonesUseCase(),
		c.PublishIssuesUseCase(),
		c.Reporter,
		c.Logger,
	)
}
