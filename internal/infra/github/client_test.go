package github

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bianca-git/fylgja-tasks/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv, NewClient(srv.URL, "tok-1234", "octo", "project")
}

func TestClient_CreateLabel(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		want    domain.CreateResult
		wantErr bool
	}{
		{name: "created", status: http.StatusCreated, want: domain.Created},
		{name: "already exists", status: http.StatusUnprocessableEntity, want: domain.AlreadyExists},
		{name: "forbidden", status: http.StatusForbidden, want: domain.Failed, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPath, gotAuth string
			var gotBody labelRequest
			_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				gotAuth = r.Header.Get("Authorization")
				require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
				w.WriteHeader(tt.status)
			})

			result, err := client.CreateLabel(context.Background(), domain.Label{
				Name: "task", Color: "7057ff", Description: "General task",
			})

			assert.Equal(t, tt.want, result)
			if tt.wantErr {
				var reqErr *domain.RequestError
				require.ErrorAs(t, err, &reqErr)
				assert.Equal(t, tt.status, reqErr.StatusCode)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, "/repos/octo/project/labels", gotPath)
			assert.Equal(t, "token tok-1234", gotAuth)
			assert.Equal(t, "task", gotBody.Name)
		})
	}
}

func TestClient_CreateMilestone(t *testing.T) {
	var gotBody milestoneRequest
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/octo/project/milestones", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
	})

	result, err := client.CreateMilestone(context.Background(), domain.Milestone{
		Title:       "Phase 1: Core Backend Development",
		Description: "Foundation setup",
		DueOn:       "2025-08-14T23:59:59Z",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.Created, result)
	assert.Equal(t, "open", gotBody.State)
	assert.Equal(t, "2025-08-14T23:59:59Z", gotBody.DueOn)
}

func TestClient_CreateIssue(t *testing.T) {
	var gotBody issueRequest
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/octo/project/issues", r.URL.Path)
		assert.Equal(t, "application/vnd.github.v3+json", r.Header.Get("Accept"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"number": 42}`))
	})

	issue, err := client.CreateIssue(context.Background(), domain.IssuePayload{
		Title:  "T-001: [MANUS] Set up CI",
		Body:   "body",
		Labels: []string{"task"},
	})

	require.NoError(t, err)
	assert.Equal(t, 42, issue.Number)
	assert.Equal(t, "T-001: [MANUS] Set up CI", gotBody.Title)
	assert.Equal(t, []string{"task"}, gotBody.Labels)
}

func TestClient_CreateIssue_Failure(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"Validation Failed"}`))
	})

	issue, err := client.CreateIssue(context.Background(), domain.IssuePayload{Title: "t"})

	assert.Nil(t, issue)
	var reqErr *domain.RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusUnprocessableEntity, reqErr.StatusCode)
	assert.Contains(t, reqErr.Body, "Validation Failed")
}

func TestClient_TransportError(t *testing.T) {
	srv, client := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	srv.Close()

	result, err := client.CreateLabel(context.Background(), domain.Label{Name: "task"})
	assert.Equal(t, domain.Failed, result)
	require.Error(t, err)

	var reqErr *domain.RequestError
	assert.False(t, errors.As(err, &reqErr), "transport errors are not request errors")
}
