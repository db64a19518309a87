// Package github is a thin HTTP client for the GitHub REST API v3,
// covering the three operations the seeder needs: create label, create
// milestone, create issue.
package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bianca-git/fylgja-tasks/internal/domain"
)

// Ensure Client implements domain.Tracker.
var _ domain.Tracker = (*Client)(nil)

// Client performs blocking request-response calls against one repository.
// There is no retry or rate-limit handling: a run submits each item once.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a client for the given repository. baseURL is the API
// root (https://api.github.com for github.com).
func NewClient(baseURL, token, owner, repo string) *Client {
	return &Client{
		baseURL: fmt.Sprintf("%s/repos/%s/%s", strings.TrimRight(baseURL, "/"), owner, repo),
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// labelRequest is the POST /labels payload.
type labelRequest struct {
	Name        string `json:"name"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

// milestoneRequest is the POST /milestones payload.
type milestoneRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	State       string `json:"state"`
	DueOn       string `json:"due_on,omitempty"`
}

// issueRequest is the POST /issues payload.
type issueRequest struct {
	Title  string   `json:"title"`
	Body   string   `json:"body"`
	Labels []string `json:"labels"`
}

// issueResponse is the subset of the created-issue response we consume.
type issueResponse struct {
	Number int `json:"number"`
}

// CreateLabel creates a repository label. HTTP 422 means the label already
// exists and is reported as AlreadyExists with no error.
func (c *Client) CreateLabel(ctx context.Context, label domain.Label) (domain.CreateResult, error) {
	return c.createCatalogItem(ctx, "/labels", labelRequest{
		Name:        label.Name,
		Color:       label.Color,
		Description: label.Description,
	})
}

// CreateMilestone creates a repository milestone with the same conflict
// tolerance as CreateLabel.
func (c *Client) CreateMilestone(ctx context.Context, milestone domain.Milestone) (domain.CreateResult, error) {
	return c.createCatalogItem(ctx, "/milestones", milestoneRequest{
		Title:       milestone.Title,
		Description: milestone.Description,
		State:       "open",
		DueOn:       milestone.DueOn,
	})
}

// createCatalogItem posts a bootstrap payload and maps the status code to
// the three-valued result.
func (c *Client) createCatalogItem(ctx context.Context, path string, body any) (domain.CreateResult, error) {
	status, respBody, err := c.post(ctx, path, body)
	if err != nil {
		return domain.Failed, err
	}
	switch status {
	case http.StatusCreated:
		return domain.Created, nil
	case http.StatusUnprocessableEntity:
		return domain.AlreadyExists, nil
	default:
		return domain.Failed, &domain.RequestError{StatusCode: status, Body: respBody}
	}
}

// CreateIssue creates an issue and returns its number.
func (c *Client) CreateIssue(ctx context.Context, payload domain.IssuePayload) (*domain.CreatedIssue, error) {
	status, respBody, err := c.post(ctx, "/issues", issueRequest{
		Title:  payload.Title,
		Body:   payload.Body,
		Labels: payload.Labels,
	})
	if err != nil {
		return nil, err
	}
	if status != http.StatusCreated {
		return nil, &domain.RequestError{StatusCode: status, Body: respBody}
	}

	var issue issueResponse
	if err := json.Unmarshal([]byte(respBody), &issue); err != nil {
		return nil, fmt.Errorf("decoding issue response: %w", err)
	}
	return &domain.CreatedIssue{Number: issue.Number}, nil
}

// post performs one JSON POST and returns the status code and raw response
// body. Transport failures are returned as errors; non-2xx statuses are
// left to the caller to interpret.
func (c *Client) post(ctx context.Context, path string, body any) (int, string, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return 0, "", fmt.Errorf("marshaling request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return 0, "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "token "+c.token)
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, "", fmt.Errorf("executing request POST %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, "", fmt.Errorf("reading response body: %w", err)
	}

	return resp.StatusCode, string(respBody), nil
}
