// Package domain contains the core types and pure logic for seeding a
// GitHub repository from a project-tracking CSV.
package domain

// Column names expected in the tasks CSV header.
const (
	ColTaskID             = "Task ID"
	ColTaskName           = "Task Name"
	ColPhase              = "Phase"
	ColWeek               = "Week"
	ColDuration           = "Duration (Days)"
	ColAssignee           = "Assignee"
	ColDependencies       = "Dependencies"
	ColPriority           = "Priority"
	ColStatus             = "Status"
	ColStartDate          = "Start Date"
	ColEndDate            = "End Date"
	ColDeliverables       = "Deliverables"
	ColAcceptanceCriteria = "Acceptance Criteria"
	ColAutomationCategory = "Automation Category"
	ColManusTasks         = "Manus Tasks"
	ColHumanTasks         = "Human Tasks"
	ColNotes              = "Notes"
)

// RequiredColumns lists every column the tasks CSV header must contain.
// Values may be empty; the columns themselves may not be absent.
func RequiredColumns() []string {
	return []string{
		ColTaskID,
		ColTaskName,
		ColPhase,
		ColWeek,
		ColDuration,
		ColAssignee,
		ColDependencies,
		ColPriority,
		ColStatus,
		ColStartDate,
		ColEndDate,
		ColDeliverables,
		ColAcceptanceCriteria,
		ColAutomationCategory,
		ColManusTasks,
		ColHumanTasks,
		ColNotes,
	}
}

// TaskRecord is one parsed row of the tasks CSV. It is constructed once at
// load time and immutable thereafter. All fields are free text; the reader
// does not validate values, only the presence of columns.
type TaskRecord struct {
	ID                 string
	Name               string
	Phase              string
	Week               string
	Duration           string
	Assignee           string
	Dependencies       string
	Priority           string
	Status             string
	StartDate          string
	EndDate            string
	Deliverables       string
	AcceptanceCriteria string
	Automation         string
	ManusTasks         string
	HumanTasks         string
	Notes              string
}
