package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		raw  string
		want Category
	}{
		{"human", CategoryHuman},
		{"HUMAN", CategoryHuman},
		{"Manus", CategoryManus},
		{" split ", CategorySplit},
		{"", CategoryOther},
		{"robot", CategoryOther},
		{"human-ish", CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCategory(tt.raw))
		})
	}
}

func TestCategoryContent(t *testing.T) {
	for _, c := range []Category{CategoryHuman, CategoryManus, CategorySplit} {
		assert.NotEmpty(t, c.Section(), "section for %s", c)
		assert.NotEmpty(t, c.DefinitionOfDone(), "definition of done for %s", c)
	}

	assert.Empty(t, CategoryOther.Section())
	assert.Empty(t, CategoryOther.DefinitionOfDone())
}
