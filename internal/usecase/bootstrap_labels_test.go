package usecase

import (
	"context"
	"log/slog"
	"testing"

	"github.com/bianca-git/fylgja-tasks/internal/domain"
	"github.com/bianca-git/fylgja-tasks/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nopLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestBootstrapLabels_Execute(t *testing.T) {
	tracker := testutil.NewMockTracker()
	reporter := &testutil.MockReporter{}
	uc := NewBootstrapLabels(tracker, reporter, nopLogger())

	out, err := uc.Execute(context.Background(), BootstrapLabelsInput{
		Labels: domain.DefaultCatalog().Labels,
	})

	require.NoError(t, err)
	assert.Equal(t, 20, out.Created)
	assert.Zero(t, out.Existing)
	assert.Zero(t, out.Failed)
	assert.Len(t, tracker.CreatedLabels, 20)
	assert.Contains(t, reporter.Lines, "✓ Created label: task")
}

func TestBootstrapLabels_Execute_ExistingIsNotFailure(t *testing.T) {
	tracker := testutil.NewMockTracker()
	tracker.LabelResults = map[string]domain.CreateResult{
		"task":          domain.AlreadyExists,
		"priority:high": domain.Failed,
	}
	reporter := &testutil.MockReporter{}
	uc := NewBootstrapLabels(tracker, reporter, nopLogger())

	out, err := uc.Execute(context.Background(), BootstrapLabelsInput{
		Labels: domain.DefaultCatalog().Labels,
	})

	require.NoError(t, err)
	assert.Equal(t, 18, out.Created)
	assert.Equal(t, 1, out.Existing)
	assert.Equal(t, 1, out.Failed)
	assert.Contains(t, reporter.Lines, "→ Label already exists: task")

	// Every catalog entry was still submitted; a failure never halts.
	assert.Len(t, tracker.CreatedLabels, 20)
}

func TestBootstrapLabels_Execute_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	uc := NewBootstrapLabels(testutil.NewMockTracker(), &testutil.MockReporter{}, nopLogger())
	_, err := uc.Execute(ctx, BootstrapLabelsInput{Labels: domain.DefaultCatalog().Labels})

	assert.ErrorIs(t, err, context.Canceled)
}
