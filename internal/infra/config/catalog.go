package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/bianca-git/fylgja-tasks/internal/domain"
	"github.com/pelletier/go-toml/v2"
)

// LoadCatalog returns the label/milestone catalog, merging the optional
// TOML file at path over the built-in defaults. A missing file yields the
// defaults; a present but malformed file is an error. Either list in the
// file replaces the corresponding built-in list wholesale.
func LoadCatalog(path string) (*domain.Catalog, error) {
	catalog := domain.DefaultCatalog()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return catalog, nil
		}
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var overrides domain.Catalog
	if err := toml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("parse catalog file %s: %w", path, err)
	}

	if len(overrides.Labels) > 0 {
		catalog.Labels = overrides.Labels
	}
	if len(overrides.Milestones) > 0 {
		catalog.Milestones = overrides.Milestones
	}
	return catalog, nil
}
