// Package usecase contains application use cases.
package usecase

import (
	"context"
	"log/slog"

	"github.com/bianca-git/fylgja-tasks/internal/domain"
)

// BootstrapLabelsInput contains the label catalog to create.
type BootstrapLabelsInput struct {
	Labels []domain.Label
}

// BootstrapLabelsOutput counts the outcome per catalog entry.
type BootstrapLabelsOutput struct {
	Created  int
	Existing int
	Failed   int
}

// BootstrapLabels creates the label catalog in the repository before any
// issue references a label. An existing label is success, not failure, and
// no failure halts the run.
type BootstrapLabels struct {
	tracker  domain.Tracker
	reporter domain.Reporter
	logger   *slog.Logger
}

// NewBootstrapLabels creates a new BootstrapLabels use case.
func NewBootstrapLabels(tracker domain.Tracker, reporter domain.Reporter, logger *slog.Logger) *BootstrapLabels {
	return &BootstrapLabels{
		tracker:  tracker,
		reporter: reporter,
		logger:   logger,
	}
}

// Execute submits every label in order. It returns early only when the
// context is canceled.
func (uc *BootstrapLabels) Execute(ctx context.Context, in BootstrapLabelsInput) (*BootstrapLabelsOutput, error) {
	uc.reporter.Infof("Creating labels...")

	out := &BootstrapLabelsOutput{}
	for _, label := range in.Labels {
		if err := ctx.Err(); err != nil {
			return out, err
		}

		result, err := uc.tracker.CreateLabel(ctx, label)
		switch result {
		case domain.Created:
			out.Created++
			uc.reporter.Successf("Created label: %s", label.Name)
		case domain.AlreadyExists:
			out.Existing++
			uc.reporter.Skipf("Label already exists: %s", label.Name)
		case domain.Failed:
			out.Failed++
			uc.reporter.Failuref("Failed to create label %s: %v", label.Name, err)
			uc.logger.Warn("label creation failed", "label", label.Name, "error", err)
		}
	}

	uc.reporter.Infof("Labels creation completed.\n")
	return out, nil
}
