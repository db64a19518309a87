package domain

import "strings"

// Configuration defaults. Owner and repo may be overridden by environment
// variables or inferred from the origin remote; the literals are the last
// fallback.
const (
	DefaultOwner     = "bianca-git"
	DefaultRepo      = "fylgja"
	DefaultTasksFile = "tasks_redesigned.csv"
	DefaultAPIURL    = "https://api.github.com"
	CatalogFileName  = ".fylgja-tasks.toml"
)

// Config holds the resolved run configuration. It is built once at startup
// and passed explicitly into the container; nothing reads the environment
// after that.
type Config struct {
	Token     string // GITHUB_TOKEN
	Owner     string // GITHUB_REPO_OWNER
	Repo      string // GITHUB_REPO_NAME
	TasksFile string // TASKS_CSV_FILE
	APIURL    string // GITHUB_API_URL
	LogLevel  string // LOG_LEVEL
}

// NewDefaultConfig returns the configuration with every fallback applied
// and no credential set.
func NewDefaultConfig() *Config {
	return &Config{
		Owner:     DefaultOwner,
		Repo:      DefaultRepo,
		TasksFile: DefaultTasksFile,
		APIURL:    DefaultAPIURL,
		LogLevel:  "info",
	}
}

// ValidateToken reports ErrTokenMissing when no credential is configured.
// Commands that mutate the tracker call this before any work.
func (c *Config) ValidateToken() error {
	if c.Token == "" {
		return ErrTokenMissing
	}
	return nil
}

// MaskedToken renders the credential for display, keeping only the last
// four characters.
func (c *Config) MaskedToken() string {
	if c.Token == "" {
		return "(not set)"
	}
	if len(c.Token) <= 4 {
		return strings.Repeat("*", len(c.Token))
	}
	return strings.Repeat("*", len(c.Token)-4) + c.Token[len(c.Token)-4:]
}

// Slug returns "owner/repo" for display.
func (c *Config) Slug() string {
	return c.Owner + "/" + c.Repo
}
