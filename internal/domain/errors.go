package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrTokenMissing  = errors.New("GITHUB_TOKEN environment variable is required (export GITHUB_TOKEN=<personal access token>)")
	ErrInputNotFound = errors.New("tasks file not found")
	ErrMissingColumn = errors.New("tasks file is missing a required column")
	ErrNoRemote      = errors.New("no GitHub remote found")
)

// RequestError is a non-success tracker response for a single item. It
// carries the status code and response text for the per-item failure line;
// it never aborts a run.
type RequestError struct {
	StatusCode int
	Body       string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("tracker returned %d: %s", e.StatusCode, e.Body)
}
