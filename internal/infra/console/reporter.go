// Package console renders per-item progress lines for batch runs.
package console

import (
	"fmt"
	"io"

	"github.com/bianca-git/fylgja-tasks/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Ensure Reporter implements domain.Reporter.
var _ domain.Reporter = (*Reporter)(nil)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	skipStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// Reporter writes marker-prefixed progress lines to a single writer.
type Reporter struct {
	out io.Writer
}

// NewReporter creates a Reporter writing to out.
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

// Successf reports a completed item.
func (r *Reporter) Successf(format string, args ...any) {
	r.line(successStyle.Render("✓"), format, args...)
}

// Skipf reports an item that already existed.
func (r *Reporter) Skipf(format string, args ...any) {
	r.line(skipStyle.Render("→"), format, args...)
}

// Failuref reports a failed item.
func (r *Reporter) Failuref(format string, args ...any) {
	r.line(failureStyle.Render("✗"), format, args...)
}

// Infof reports a plain informational line with no marker.
func (r *Reporter) Infof(format string, args ...any) {
	_, _ = fmt.Fprintf(r.out, format+"\n", args...)
}

func (r *Reporter) line(marker, format string, args ...any) {
	_, _ = fmt.Fprintf(r.out, marker+" "+format+"\n", args...)
}
