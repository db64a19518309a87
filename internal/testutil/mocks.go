// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"fmt"

	"github.com/bianca-git/fylgja-tasks/internal/domain"
)

// MockTracker is a test double for domain.Tracker. By default every call
// succeeds; per-name results and errors can be configured.
type MockTracker struct {
	LabelResults     map[string]domain.CreateResult // by label name, default Created
	MilestoneResults map[string]domain.CreateResult // by title, default Created
	IssueErrs        map[string]error               // by payload title
	LabelErr         error                          // returned with Failed for every label
	NextIssueNumber  int

	CreatedLabels     []domain.Label
	CreatedMilestones []domain.Milestone
	CreatedIssues     []domain.IssuePayload
}

// NewMockTracker creates a MockTracker whose first issue is number 1.
func NewMockTracker() *MockTracker {
	return &MockTracker{NextIssueNumber: 1}
}

// CreateLabel records the label and returns the configured result.
func (m *MockTracker) CreateLabel(_ context.Context, label domain.Label) (domain.CreateResult, error) {
	m.CreatedLabels = append(m.CreatedLabels, label)
	if m.LabelErr != nil {
		return domain.Failed, m.LabelErr
	}
	if result, ok := m.LabelResults[label.Name]; ok {
		if result == domain.Failed {
			return domain.Failed, &domain.RequestError{StatusCode: 500, Body: "mock failure"}
		}
		return result, nil
	}
	return domain.Created, nil
}

// CreateMilestone records the milestone and returns the configured result.
func (m *MockTracker) CreateMilestone(_ context.Context, milestone domain.Milestone) (domain.CreateResult, error) {
	m.CreatedMilestones = append(m.CreatedMilestones, milestone)
	if result, ok := m.MilestoneResults[milestone.Title]; ok {
		if result == domain.Failed {
			return domain.Failed, &domain.RequestError{StatusCode: 500, Body: "mock failure"}
		}
		return result, nil
	}
	return domain.Created, nil
}

// CreateIssue records the payload and returns sequential issue numbers.
func (m *MockTracker) CreateIssue(_ context.Context, payload domain.IssuePayload) (*domain.CreatedIssue, error) {
	if err, ok := m.IssueErrs[payload.Title]; ok {
		return nil, err
	}
	m.CreatedIssues = append(m.CreatedIssues, payload)
	number := m.NextIssueNumber
	m.NextIssueNumber++
	return &domain.CreatedIssue{Number: number}, nil
}

// MockRecordSource is a test double for domain.RecordSource.
type MockRecordSource struct {
	Records []domain.TaskRecord
	Err     error
}

// Load returns the configured records or error.
func (m *MockRecordSource) Load() ([]domain.TaskRecord, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Records, nil
}

// MockReporter is a test double for domain.Reporter that records every
// rendered line with its marker.
type MockReporter struct {
	Lines []string
}

func (m *MockReporter) Successf(format string, args ...any) { m.record("✓", format, args...) }
func (m *MockReporter) Skipf(format string, args ...any)    { m.record("→", format, args...) }
func (m *MockReporter) Failuref(format string, args ...any) { m.record("✗", format, args...) }
func (m *MockReporter) Infof(format string, args ...any)    { m.record("", format, args...) }

func (m *MockReporter) record(marker, format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	if marker != "" {
		line = marker + " " + line
	}
	m.Lines = append(m.Lines, line)
}

// MockRemote is a test double for domain.RemoteDetector.
type MockRemote struct {
	Owner string
	Repo  string
	Err   error
}

// OwnerRepo returns the configured coordinates or error.
func (m *MockRemote) OwnerRepo() (string, string, error) {
	if m.Err != nil {
		return "", "", m.Err
	}
	return m.Owner, m.Repo, nil
}
