// Package config resolves the run configuration from the environment and
// loads the optional catalog file.
package config

import (
	"github.com/bianca-git/fylgja-tasks/internal/domain"
	"github.com/spf13/viper"
)

// Loader resolves configuration with the precedence
// environment > origin remote > built-in defaults.
type Loader struct {
	remote domain.RemoteDetector
}

// NewLoader creates a Loader. remote may be nil when the working directory
// is not a git repository; the fixed defaults then apply.
func NewLoader(remote domain.RemoteDetector) *Loader {
	return &Loader{remote: remote}
}

// Load returns the resolved configuration. It never fails: a missing
// credential is diagnosed later by the commands that need one.
func (l *Loader) Load() *domain.Config {
	cfg := domain.NewDefaultConfig()

	if l.remote != nil {
		if owner, repo, err := l.remote.OwnerRepo(); err == nil {
			cfg.Owner = owner
			cfg.Repo = repo
		}
	}

	v := viper.New()
	_ = v.BindEnv("token", "GITHUB_TOKEN")
	_ = v.BindEnv("repo_owner", "GITHUB_REPO_OWNER")
	_ = v.BindEnv("repo_name", "GITHUB_REPO_NAME")
	_ = v.BindEnv("tasks_file", "TASKS_CSV_FILE")
	_ = v.BindEnv("api_url", "GITHUB_API_URL")
	_ = v.BindEnv("log_level", "LOG_LEVEL")

	setIfPresent(v, "token", &cfg.Token)
	setIfPresent(v, "repo_owner", &cfg.Owner)
	setIfPresent(v, "repo_name", &cfg.Repo)
	setIfPresent(v, "tasks_file", &cfg.TasksFile)
	setIfPresent(v, "api_url", &cfg.APIURL)
	setIfPresent(v, "log_level", &cfg.LogLevel)

	return cfg
}

// setIfPresent overwrites dst when the bound variable is set and non-empty.
func setIfPresent(v *viper.Viper, key string, dst *string) {
	if s := v.GetString(key); s != "" {
		*dst = s
	}
}
