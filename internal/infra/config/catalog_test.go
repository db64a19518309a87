package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bianca-git/fylgja-tasks/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCatalog_MissingFileYieldsDefaults(t *testing.T) {
	catalog, err := LoadCatalog(filepath.Join(t.TempDir(), domain.CatalogFileName))
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultCatalog(), catalog)
}

func TestLoadCatalog_LabelOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), domain.CatalogFileName)
	content := `
[[labels]]
name = "task"
color = "7057ff"
description = "General task"

[[labels]]
name = "priority:urgent"
color = "ff0000"
description = "Drop everything"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	catalog, err := LoadCatalog(path)
	require.NoError(t, err)

	require.Len(t, catalog.Labels, 2)
	assert.Equal(t, "priority:urgent", catalog.Labels[1].Name)
	// Milestones keep the built-in catalog.
	assert.Equal(t, domain.DefaultCatalog().Milestones, catalog.Milestones)
}

func TestLoadCatalog_MilestoneOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), domain.CatalogFileName)
	content := `
[[milestones]]
title = "Sprint 1"
description = "First sprint"
due_on = "2026-01-31T23:59:59Z"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	catalog, err := LoadCatalog(path)
	require.NoError(t, err)

	require.Len(t, catalog.Milestones, 1)
	assert.Equal(t, "Sprint 1", catalog.Milestones[0].Title)
	assert.Len(t, catalog.Labels, 20)
}

func TestLoadCatalog_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), domain.CatalogFileName)
	require.NoError(t, os.WriteFile(path, []byte("[[labels]\nname="), 0o644))

	_, err := LoadCatalog(path)
	assert.Error(t, err)
}
