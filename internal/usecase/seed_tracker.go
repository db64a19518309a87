package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/bianca-git/fylgja-tasks/internal/domain"
)

// SeedTrackerInput configures one batch run.
type SeedTrackerInput struct {
	Catalog *domain.Catalog
	DryRun  bool // Format payloads and report them without any tracker call
}

// SeedTrackerOutput contains the results of every step.
type SeedTrackerOutput struct {
	Labels     BootstrapLabelsOutput
	Milestones BootstrapMilestonesOutput
	Summary    domain.RunSummary
}

// SeedTracker is the batch orchestrator: load records, bootstrap the label
// and milestone catalogs, then create one issue per record in file order.
// Labels and milestones go first so issues can reference them; apart from
// that ordering every tracker call is independent.
type SeedTracker struct {
	records    domain.RecordSource
	labels     *BootstrapLabels
	milestones *BootstrapMilestones
	issues     *PublishIssues
	reporter   domain.Reporter
	logger     *slog.Logger
}

// NewSeedTracker creates a new SeedTracker use case.
func NewSeedTracker(
	records domain.RecordSource,
	labels *BootstrapLabels,
	milestones *BootstrapMilestones,
	issues *PublishIssues,
	reporter domain.Reporter,
	logger *slog.Logger,
) *SeedTracker {
	return &SeedTracker{
		records:    records,
		labels:     labels,
		milestones: milestones,
		issues:     issues,
		reporter:   reporter,
		logger:     logger,
	}
}

// Execute runs the batch. Input errors are fatal and returned before any
// tracker call; per-item tracker failures are only reflected in the output
// counters.
func (uc *SeedTracker) Execute(ctx context.Context, in SeedTrackerInput) (*SeedTrackerOutput, error) {
	records, err := uc.records.Load()
	if err != nil {
		return nil, err
	}
	uc.reporter.Infof("Found %d tasks to process.\n", len(records))

	out := &SeedTrackerOutput{}

	if in.DryRun {
		for _, record := range records {
			payload := domain.NewIssuePayload(record)
			uc.reporter.Infof("Would create issue: %s", payload.Title)
			uc.reporter.Infof("  labels: %s", strings.Join(payload.Labels, ", "))
			out.Summary.Processed++
		}
		return out, nil
	}

	labelsOut, err := uc.labels.Execute(ctx, BootstrapLabelsInput{Labels: in.Catalog.Labels})
	if err != nil {
		return nil, err
	}
	out.Labels = *labelsOut

	milestonesOut, err := uc.milestones.Execute(ctx, BootstrapMilestonesInput{Milestones: in.Catalog.Milestones})
	if err != nil {
		return nil, err
	}
	out.Milestones = *milestonesOut

	uc.reporter.Infof("Creating GitHub issues...")
	issuesOut, err := uc.issues.Execute(ctx, PublishIssuesInput{Records: records})
	if err != nil {
		return nil, err
	}
	out.Summary = issuesOut.Summary

	uc.logger.Info("run finished",
		"processed", out.Summary.Processed,
		"succeeded", out.Summary.Succeeded,
		"failed", out.Summary.Failed,
	)
	return out, nil
}
