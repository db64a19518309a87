package usecase

import (
	"context"
	"log/slog"

	"github.com/bianca-git/fylgja-tasks/internal/domain"
)

// PublishIssuesInput contains the records to submit.
type PublishIssuesInput struct {
	Records []domain.TaskRecord
}

// PublishIssuesOutput carries the run counters.
type PublishIssuesOutput struct {
	Summary domain.RunSummary
}

// PublishIssues formats one payload per record and submits it through the
// tracker in input order. A failed record is counted and skipped; nothing
// short-circuits the batch. Rerunning against a live tracker creates
// duplicate issues: there is no idempotence detection.
type PublishIssues struct {
	tracker  domain.Tracker
	reporter domain.Reporter
	logger   *slog.Logger
}

// NewPublishIssues creates a new PublishIssues use case.
func NewPublishIssues(tracker domain.Tracker, reporter domain.Reporter, logger *slog.Logger) *PublishIssues {
	return &PublishIssues{
		tracker:  tracker,
		reporter: reporter,
		logger:   logger,
	}
}

// Execute submits every record in order. It returns early only when the
// context is canceled.
func (uc *PublishIssues) Execute(ctx context.Context, in PublishIssuesInput) (*PublishIssuesOutput, error) {
	out := &PublishIssuesOutput{}
	for _, record := range in.Records {
		if err := ctx.Err(); err != nil {
			return out, err
		}

		out.Summary.Processed++
		payload := domain.NewIssuePayload(record)

		issue, err := uc.tracker.CreateIssue(ctx, payload)
		if err != nil {
			out.Summary.Failed++
			uc.reporter.Failuref("Failed to create issue for %s: %v", record.ID, err)
			uc.logger.Warn("issue creation failed", "task", record.ID, "error", err)
			continue
		}

		out.Summary.Succeeded++
		uc.reporter.Successf("Created issue #%d: %s - %s", issue.Number, record.ID, record.Name)
		uc.logger.Debug("issue created", "task", record.ID, "number", issue.Number)
	}

	return out, nil
}
