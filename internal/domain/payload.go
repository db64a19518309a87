package domain

import (
	"fmt"
	"strings"
)

// IssuePayload is the formatted title/body/labels bundle submitted for one
// issue. It is derived from exactly one TaskRecord and not retained after
// submission.
type IssuePayload struct {
	Title  string
	Body   string
	Labels []string
}

// NewIssuePayload builds the issue payload for a record. Pure function:
// same record, same payload.
func NewIssuePayload(r TaskRecord) IssuePayload {
	return IssuePayload{
		Title:  r.IssueTitle(),
		Body:   r.IssueBody(),
		Labels: r.IssueLabels(),
	}
}

// IssueTitle renders "{id}: [{CATEGORY}] {name}". The raw category value is
// upper-cased verbatim, including values outside the known vocabulary.
func (r TaskRecord) IssueTitle() string {
	return fmt.Sprintf("%s: [%s] %s", r.ID, strings.ToUpper(r.Automation), r.Name)
}

// bodyTemplate is the fixed markdown layout of an issue body. The category
// section and Definition of Done are injected from the Category content
// table; every other slot is record data or a literal placeholder.
const bodyTemplate = `## Task Overview
**Task ID:** %s
**Phase:** %s
**Week:** %s
**Duration:** %s days
**Priority:** %s
%s

## Deliverables
%s

## Acceptance Criteria
%s

## Dependencies
List any tasks that must be completed before this one:
%s

## Resources Needed
- Access to: ___________
- Credentials for: ___________
- Approval from: ___________

## Notes
%s
%s

---

**Start Date:** %s  
**End Date:** %s  
**Assignee:** %s  
**Status:** %s  
`

// IssueBody renders the markdown body for a record.
func (r TaskRecord) IssueBody() string {
	category := ParseCategory(r.Automation)

	dependencies := "None"
	if r.Dependencies != "" {
		dependencies = "- " + r.Dependencies
	}

	notes := r.Notes
	if notes == "" {
		notes = "No additional notes"
	}

	return fmt.Sprintf(bodyTemplate,
		r.ID,
		r.Phase,
		r.Week,
		r.Duration,
		r.Priority,
		category.Section(),
		checklist(r.Deliverables),
		checklist(r.AcceptanceCriteria),
		dependencies,
		notes,
		category.DefinitionOfDone(),
		r.StartDate,
		r.EndDate,
		r.Assignee,
		r.Status,
	)
}

// checklist renders a comma-separated field as markdown checkbox lines.
// An empty field yields a single "To be defined" checkbox.
func checklist(field string) string {
	var lines []string
	for _, item := range strings.Split(field, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		lines = append(lines, "- [ ] "+item)
	}
	if len(lines) == 0 {
		return "- [ ] To be defined"
	}
	return strings.Join(lines, "\n")
}

// roleLabels maps assignee keywords to role labels. The assignee text is
// matched case-insensitively as a substring against each keyword; every
// match contributes its label. New roles are added here, not in code.
var roleLabels = []struct {
	keyword string
	label   string
}{
	{"technical lead", "role:technical-lead"},
	{"ai/ml engineer", "role:ai-ml-engineer"},
	{"frontend developer", "role:frontend-developer"},
	{"product manager", "role:product-manager"},
	{"devops engineer", "role:devops-engineer"},
}

// IssueLabels derives the label set for a record. Order is stable for
// display: status, phase, automation, roles, then the literal "task" label,
// which is always present. Empty fields contribute no label.
func (r TaskRecord) IssueLabels() []string {
	var labels []string

	if r.Status != "" {
		labels = append(labels, "status:"+slug(r.Status))
	}
	if r.Phase != "" {
		labels = append(labels, "phase:"+r.Phase)
	}
	if r.Automation != "" {
		labels = append(labels, "automation:"+strings.ToLower(r.Automation))
	}
	if r.Assignee != "" {
		assignee := strings.ToLower(r.Assignee)
		for _, role := range roleLabels {
			if strings.Contains(assignee, role.keyword) {
				labels = append(labels, role.label)
			}
		}
	}

	return append(labels, "task")
}

// slug lower-cases a value and replaces spaces with hyphens.
func slug(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "-")
}
