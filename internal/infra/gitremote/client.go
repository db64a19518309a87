// Package gitremote infers GitHub repository coordinates from the origin
// remote of the enclosing git repository.
package gitremote

import (
	"fmt"
	"strings"

	"github.com/bianca-git/fylgja-tasks/internal/domain"
	git "github.com/go-git/go-git/v5"
)

// Ensure Client implements domain.RemoteDetector.
var _ domain.RemoteDetector = (*Client)(nil)

// Client reads the origin remote of one repository.
type Client struct {
	repo *git.Repository
}

// NewClient opens the repository enclosing dir. Returns an error when dir
// is not inside a git repository; callers treat that as "no remote" and
// fall back to configured defaults.
func NewClient(dir string) (*Client, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("open git repository: %w", err)
	}
	return &Client{repo: repo}, nil
}

// OwnerRepo returns the owner and repository name of the origin remote,
// when it points at GitHub.
func (c *Client) OwnerRepo() (string, string, error) {
	remote, err := c.repo.Remote(git.DefaultRemoteName)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", domain.ErrNoRemote, err)
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", "", domain.ErrNoRemote
	}
	return parseGitHubURL(urls[0])
}

// parseGitHubURL extracts owner and repo from an HTTPS or SSH GitHub
// remote URL. Non-GitHub hosts yield ErrNoRemote.
func parseGitHubURL(url string) (string, string, error) {
	var path string
	switch {
	case strings.HasPrefix(url, "https://github.com/"):
		path = strings.TrimPrefix(url, "https://github.com/")
	case strings.HasPrefix(url, "git@github.com:"):
		path = strings.TrimPrefix(url, "git@github.com:")
	case strings.HasPrefix(url, "ssh://git@github.com/"):
		path = strings.TrimPrefix(url, "ssh://git@github.com/")
	default:
		return "", "", fmt.Errorf("%w: %s is not a github.com remote", domain.ErrNoRemote, url)
	}

	path = strings.TrimSuffix(strings.TrimSuffix(path, "/"), ".git")
	parts := strings.Split(path, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("%w: cannot parse %s", domain.ErrNoRemote, url)
	}
	return parts[0], parts[1], nil
}
