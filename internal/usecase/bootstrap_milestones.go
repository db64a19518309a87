package usecase

import (
	"context"
	"log/slog"

	"github.com/bianca-git/fylgja-tasks/internal/domain"
)

// BootstrapMilestonesInput contains the milestone catalog to create.
type BootstrapMilestonesInput struct {
	Milestones []domain.Milestone
}

// BootstrapMilestonesOutput counts the outcome per catalog entry.
type BootstrapMilestonesOutput struct {
	Created  int
	Existing int
	Failed   int
}

// BootstrapMilestones creates the phase milestones with the same
// already-exists tolerance as BootstrapLabels.
type BootstrapMilestones struct {
	tracker  domain.Tracker
	reporter domain.Reporter
	logger   *slog.Logger
}

// NewBootstrapMilestones creates a new BootstrapMilestones use case.
func NewBootstrapMilestones(tracker domain.Tracker, reporter domain.Reporter, logger *slog.Logger) *BootstrapMilestones {
	return &BootstrapMilestones{
		tracker:  tracker,
		reporter: reporter,
		logger:   logger,
	}
}

// Execute submits every milestone in order. It returns early only when the
// context is canceled.
func (uc *BootstrapMilestones) Execute(ctx context.Context, in BootstrapMilestonesInput) (*BootstrapMilestonesOutput, error) {
	uc.reporter.Infof("Creating milestones...")

	out := &BootstrapMilestonesOutput{}
	for _, milestone := range in.Milestones {
		if err := ctx.Err(); err != nil {
			return out, err
		}

		result, err := uc.tracker.CreateMilestone(ctx, milestone)
		switch result {
		case domain.Created:
			out.Created++
			uc.reporter.Successf("Created milestone: %s", milestone.Title)
		case domain.AlreadyExists:
			out.Existing++
			uc.reporter.Skipf("Milestone already exists: %s", milestone.Title)
		case domain.Failed:
			out.Failed++
			uc.reporter.Failuref("Failed to create milestone %s: %v", milestone.Title, err)
			uc.logger.Warn("milestone creation failed", "milestone", milestone.Title, "error", err)
		}
	}

	uc.reporter.Infof("Milestones creation completed.\n")
	return out, nil
}
