// Package csvfile reads task records from a delimited tasks file.
package csvfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/bianca-git/fylgja-tasks/internal/domain"
)

// Ensure Reader implements domain.RecordSource.
var _ domain.RecordSource = (*Reader)(nil)

// Reader loads task records from a CSV file.
type Reader struct {
	path string
}

// NewReader creates a Reader for the given file path.
func NewReader(path string) *Reader {
	return &Reader{path: path}
}

// Load parses the file into records in row order. The header must contain
// every required column; values are passed through unvalidated.
func (r *Reader) Load() ([]domain.TaskRecord, error) {
	f, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrInputNotFound, r.path)
		}
		return nil, fmt.Errorf("open tasks file: %w", err)
	}
	defer func() { _ = f.Close() }()

	cr := csv.NewReader(f)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header of %s: %w", r.path, err)
	}

	index := make(map[string]int, len(header))
	for i, col := range header {
		index[col] = i
	}
	for _, col := range domain.RequiredColumns() {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("%w: %q", domain.ErrMissingColumn, col)
		}
	}

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read rows of %s: %w", r.path, err)
	}

	records := make([]domain.TaskRecord, 0, len(rows))
	for _, row := range rows {
		field := func(col string) string {
			i := index[col]
			if i >= len(row) {
				return ""
			}
			return row[i]
		}
		records = append(records, domain.TaskRecord{
			ID:                 field(domain.ColTaskID),
			Name:               field(domain.ColTaskName),
			Phase:              field(domain.ColPhase),
			Week:               field(domain.ColWeek),
			Duration:           field(domain.ColDuration),
			Assignee:           field(domain.ColAssignee),
			Dependencies:       field(domain.ColDependencies),
			Priority:           field(domain.ColPriority),
			Status:             field(domain.ColStatus),
			StartDate:          field(domain.ColStartDate),
			EndDate:            field(domain.ColEndDate),
			Deliverables:       field(domain.ColDeliverables),
			AcceptanceCriteria: field(domain.ColAcceptanceCriteria),
			Automation:         field(domain.ColAutomationCategory),
			ManusTasks:         field(domain.ColManusTasks),
			HumanTasks:         field(domain.ColHumanTasks),
			Notes:              field(domain.ColNotes),
		})
	}

	return records, nil
}
