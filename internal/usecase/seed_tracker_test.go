package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/bianca-git/fylgja-tasks/internal/domain"
	"github.com/bianca-git/fylgja-tasks/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeedTracker(tracker *testutil.MockTracker, records domain.RecordSource, reporter domain.Reporter) *SeedTracker {
	logger := nopLogger()
	return NewSeedTracker(
		records,
		NewBootstrapLabels(tracker, reporter, logger),
		NewBootstrapMilestones(tracker, reporter, logger),
		NewPublishIssues(tracker, reporter, logger),
		reporter,
		logger,
	)
}

func TestSeedTracker_Execute(t *testing.T) {
	tracker := testutil.NewMockTracker()
	records := &testutil.MockRecordSource{Records: []domain.TaskRecord{
		{ID: "T-001", Name: "Set up CI", Status: "To Do", Automation: "Human"},
		{ID: "T-002", Name: "Generate scaffolding", Status: "Closed", Automation: "Manus"},
	}}
	reporter := &testutil.MockReporter{}
	uc := newSeedTracker(tracker, records, reporter)

	out, err := uc.Execute(context.Background(), SeedTrackerInput{Catalog: domain.DefaultCatalog()})

	require.NoError(t, err)
	assert.Equal(t, domain.RunSummary{Processed: 2, Succeeded: 2, Failed: 0}, out.Summary)
	assert.Equal(t, 20, out.Labels.Created)
	assert.Equal(t, 4, out.Milestones.Created)

	// Bootstrap runs before any issue is created, issues follow input order.
	require.Len(t, tracker.CreatedIssues, 2)
	assert.True(t, strings.HasPrefix(tracker.CreatedIssues[0].Title, "T-001"))
	assert.True(t, strings.HasPrefix(tracker.CreatedIssues[1].Title, "T-002"))
}

func TestSeedTracker_Execute_LoadErrorIsFatal(t *testing.T) {
	tracker := testutil.NewMockTracker()
	records := &testutil.MockRecordSource{Err: domain.ErrInputNotFound}
	uc := newSeedTracker(tracker, records, &testutil.MockReporter{})

	_, err := uc.Execute(context.Background(), SeedTrackerInput{Catalog: domain.DefaultCatalog()})

	assert.ErrorIs(t, err, domain.ErrInputNotFound)
	assert.Empty(t, tracker.CreatedLabels, "no tracker call before input is read")
	assert.Empty(t, tracker.CreatedIssues)
}

func TestSeedTracker_Execute_BootstrapFailuresDoNotBlockIssues(t *testing.T) {
	tracker := testutil.NewMockTracker()
	tracker.LabelResults = map[string]domain.CreateResult{"task": domain.Failed}
	records := &testutil.MockRecordSource{Records: []domain.TaskRecord{
		{ID: "T-001", Name: "Set up CI"},
	}}
	uc := newSeedTracker(tracker, records, &testutil.MockReporter{})

	out, err := uc.Execute(context.Background(), SeedTrackerInput{Catalog: domain.DefaultCatalog()})

	require.NoError(t, err)
	assert.Equal(t, 1, out.Labels.Failed)
	assert.Equal(t, 1, out.Summary.Succeeded)
}

func TestSeedTracker_Execute_DryRun(t *testing.T) {
	tracker := testutil.NewMockTracker()
	records := &testutil.MockRecordSource{Records: []domain.TaskRecord{
		{ID: "T-001", Name: "Set up CI", Automation: "Human"},
	}}
	reporter := &testutil.MockReporter{}
	uc := newSeedTracker(tracker, records, reporter)

	out, err := uc.Execute(context.Background(), SeedTrackerInput{
		Catalog: domain.DefaultCatalog(),
		DryRun:  true,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.RunSummary{Processed: 1}, out.Summary)
	assert.Empty(t, tracker.CreatedLabels)
	assert.Empty(t, tracker.CreatedMilestones)
	assert.Empty(t, tracker.CreatedIssues)
	assert.Contains(t, reporter.Lines, "Would create issue: T-001: [HUMAN] Set up CI")
}
