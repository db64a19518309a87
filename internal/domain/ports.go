package domain

import "context"

// CreateResult is the outcome of a bootstrap creation call. AlreadyExists
// is not a failure: a rerun against a seeded repository reports it for
// every catalog entry.
type CreateResult int

const (
	Created CreateResult = iota
	AlreadyExists
	Failed
)

// CreatedIssue is the tracker's answer to a successful issue creation.
type CreatedIssue struct {
	Number int
}

// Tracker is the remote issue tracker boundary. Implementations own
// authentication, serialization, and transport; callers only see the
// three logical operations.
type Tracker interface {
	// CreateLabel creates a repository label. A conflict with an existing
	// label reports AlreadyExists with a nil error.
	CreateLabel(ctx context.Context, label Label) (CreateResult, error)

	// CreateMilestone creates a repository milestone, with the same
	// conflict tolerance as CreateLabel.
	CreateMilestone(ctx context.Context, milestone Milestone) (CreateResult, error)

	// CreateIssue creates an issue and returns its number.
	CreateIssue(ctx context.Context, payload IssuePayload) (*CreatedIssue, error)
}

// RecordSource loads task records from the configured input.
type RecordSource interface {
	// Load returns all records in input order.
	Load() ([]TaskRecord, error)
}

// RemoteDetector infers repository coordinates from the environment the
// tool runs in, typically the origin remote of the enclosing git repo.
type RemoteDetector interface {
	// OwnerRepo returns the owner and repository name.
	OwnerRepo() (owner, repo string, err error)
}

// Reporter renders per-item progress to the user. The markers mirror the
// console conventions: success, skip (already exists), failure, plain info.
type Reporter interface {
	Successf(format string, args ...any)
	Skipf(format string, args ...any)
	Failuref(format string, args ...any)
	Infof(format string, args ...any)
}

// RunSummary counts the outcome of one batch run. Mutated monotonically
// during a run, reset each invocation, never persisted.
type RunSummary struct {
	Processed int
	Succeeded int
	Failed    int
}
