package domain

import "strings"

// Category classifies who performs a task: a human, the Manus automation,
// or a split between both. Any unrecognized value maps to CategoryOther.
type Category string

const (
	CategoryHuman Category = "human"
	CategoryManus Category = "manus"
	CategorySplit Category = "split"
	CategoryOther Category = "other"
)

// ParseCategory maps a raw automation-category value to a Category.
// Matching is case-insensitive; unknown values yield CategoryOther.
func ParseCategory(raw string) Category {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "HUMAN":
		return CategoryHuman
	case "MANUS":
		return CategoryManus
	case "SPLIT":
		return CategorySplit
	default:
		return CategoryOther
	}
}

// categoryContent holds the fixed issue-body boilerplate for a category.
type categoryContent struct {
	section          string
	definitionOfDone string
}

// categoryContents maps each known category to its boilerplate. The
// checklists are fixed text, not derived from record data. CategoryOther
// deliberately has no entry: unknown categories render empty sections.
var categoryContents = map[Category]categoryContent{
	CategoryHuman: {
		section: `
## Description
Brief description of what needs to be done by a human team member.

**HUMAN Only:** This task requires human intervention for strategic decisions, user research, or quality validation.

## Human Actions Required
- [ ] Account setup/management
- [ ] Strategic decisions
- [ ] User research
- [ ] Quality validation
- [ ] Legal/compliance review
- [ ] Other: ___________`,
		definitionOfDone: `
## Definition of Done
- [ ] Documentation updated
- [ ] All required actions completed
- [ ] Next steps identified
- [ ] Stakeholders notified`,
	},
	CategoryManus: {
		section: `
## Description
Brief description of what needs to be implemented using AI automation.

**MANUS Only:** This task can be fully automated using AI tools and does not require human intervention.

## Manus Implementation Required
- [ ] Code generation
- [ ] Configuration files
- [ ] Documentation
- [ ] Testing framework
- [ ] Other: ___________`,
		definitionOfDone: `
## Definition of Done
- [ ] Code implemented and tested
- [ ] Tests passing
- [ ] Ready for human review`,
	},
	CategorySplit: {
		section: `
## Description
Brief description of what needs to be done through combined human and AI efforts.

**SPLIT Only:** This task is split between human and AI efforts.

## Split Implementation Required
- [ ] Manus automation
- [ ] Human oversight
- [ ] Integration validation
- [ ] Other: ___________`,
		definitionOfDone: `
## Definition of Done
- [ ] Manus automation completed
- [ ] Human oversight completed
- [ ] Integration validated
- [ ] Ready for next phase`,
	},
}

// Section returns the category-specific description block for issue bodies.
// Empty for CategoryOther.
func (c Category) Section() string {
	return categoryContents[c].section
}

// DefinitionOfDone returns the category-specific completion checklist.
// Empty for CategoryOther.
func (c Category) DefinitionOfDone() string {
	return categoryContents[c].definitionOfDone
}
